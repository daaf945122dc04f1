package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"curatorMarket/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationService interface {
		RecommendGeneric(ctx context.Context, snap domain.Snapshot, k int) (domain.Recommendation, error)
		Recommend(ctx context.Context, snap domain.Snapshot, customerID uint, k int) (domain.Recommendation, error)
	}

	SnapshotProvider interface {
		Current(ctx context.Context) (domain.Snapshot, error)
	}

	RecommendationHandler struct {
		recommendService RecommendationService
		snapshots        SnapshotProvider
		defaultK         int
		maxK             int
		timeout          time.Duration
	}
)

func NewRecommendationHandler(svc RecommendationService, snapshots SnapshotProvider, defaultK, maxK int) *RecommendationHandler {
	return &RecommendationHandler{
		recommendService: svc,
		snapshots:        snapshots,
		defaultK:         defaultK,
		maxK:             maxK,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/recommendations?k=5
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	return h.recommendFor(c, customerID)
}

// GET /api/v1/admin/customers/:id/recommendations?k=5
func (h *RecommendationHandler) RecommendForCustomer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	return h.recommendFor(c, uint(id))
}

// GET /api/v1/recommendations/generic?k=5
func (h *RecommendationHandler) RecommendGeneric(c echo.Context) error {
	k, err := h.parseK(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	snap, err := h.snapshots.Current(ctx)
	if err != nil {
		return writeError(c, "Failed to load snapshot", err)
	}

	rec, err := h.recommendService.RecommendGeneric(ctx, snap, k)
	if err != nil {
		return writeError(c, "Failed to build generic recommendations", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

func (h *RecommendationHandler) recommendFor(c echo.Context, customerID uint) error {
	k, err := h.parseK(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	snap, err := h.snapshots.Current(ctx)
	if err != nil {
		return writeError(c, "Failed to load snapshot", err)
	}

	rec, err := h.recommendService.Recommend(ctx, snap, customerID, k)
	if err != nil {
		return writeError(c, "Failed to build recommendations", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

// parseK reads the optional k query parameter. Values above the configured
// maximum are rejected; non-positive values are left to the service.
func (h *RecommendationHandler) parseK(c echo.Context) (int, error) {
	raw := c.QueryParam("k")
	if raw == "" {
		return h.defaultK, nil
	}

	k, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("k must be an integer")
	}
	if k > h.maxK {
		return 0, fmt.Errorf("k must not exceed %d", h.maxK)
	}

	return k, nil
}
