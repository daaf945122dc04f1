package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"curatorMarket/domain"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type fakeSnapshotService struct {
	current    domain.Snapshot
	currentErr error
	refreshErr error
}

func (f fakeSnapshotService) Current(context.Context) (domain.Snapshot, error) {
	return f.current, f.currentErr
}

func (f fakeSnapshotService) Refresh(context.Context) (domain.Snapshot, error) {
	if f.refreshErr != nil {
		return domain.Snapshot{}, f.refreshErr
	}
	return domain.Snapshot{ID: uuid.New(), Generation: f.current.Generation + 1}, nil
}

func TestSnapshotHandler(t *testing.T) {
	tests := []struct {
		name     string
		svc      fakeSnapshotService
		call     func(h *SnapshotHandler, c echo.Context) error
		wantCode int
	}{
		{
			name:     "refresh",
			svc:      fakeSnapshotService{},
			call:     (*SnapshotHandler).Refresh,
			wantCode: http.StatusCreated,
		},
		{
			name:     "refresh failure",
			svc:      fakeSnapshotService{refreshErr: errors.New("tx aborted")},
			call:     (*SnapshotHandler).Refresh,
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "current",
			svc:      fakeSnapshotService{current: domain.Snapshot{ID: uuid.New(), Generation: 2}},
			call:     (*SnapshotHandler).Current,
			wantCode: http.StatusOK,
		},
		{
			name:     "current before first refresh",
			svc:      fakeSnapshotService{currentErr: domain.ErrNoSnapshot},
			call:     (*SnapshotHandler).Current,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSnapshotHandler(tt.svc)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			if err := tt.call(h, c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
