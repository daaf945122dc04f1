package rest

import (
	"context"
	"net/http"
	"time"

	"curatorMarket/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	SnapshotService interface {
		Current(ctx context.Context) (domain.Snapshot, error)
		Refresh(ctx context.Context) (domain.Snapshot, error)
	}

	SnapshotHandler struct {
		snapshotService SnapshotService
		timeout         time.Duration
	}
)

func NewSnapshotHandler(svc SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: svc,
		timeout:         2 * time.Minute,
	}
}

// POST /api/v1/admin/snapshots/refresh
func (h *SnapshotHandler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	snap, err := h.snapshotService.Refresh(ctx)
	if err != nil {
		return writeError(c, "Failed to refresh snapshot", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(snap))
}

// GET /api/v1/admin/snapshots/current
func (h *SnapshotHandler) Current(c echo.Context) error {
	snap, err := h.snapshotService.Current(c.Request().Context())
	if err != nil {
		return writeError(c, "Failed to load snapshot", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snap))
}
