package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curatorMarket/business/purchase"
	"curatorMarket/domain"

	"github.com/labstack/echo/v4"
)

type fakeReviewService struct {
	calls int
	err   error
}

func (f *fakeReviewService) SubmitReview(_ context.Context, customerID uint, itemID uint64, rating int) (domain.Review, error) {
	f.calls++
	if f.err != nil {
		return domain.Review{}, f.err
	}
	return domain.Review{CustomerID: customerID, ItemID: itemID, Rating: rating}, nil
}

func (f *fakeReviewService) GetCustomerReviews(_ context.Context, customerID uint) ([]domain.Review, error) {
	return []domain.Review{{CustomerID: customerID, ItemID: 1, Rating: 4}}, nil
}

type fakePurchaseService struct {
	lines []domain.LineItem
	err   error
}

func (f *fakePurchaseService) CreatePurchase(_ context.Context, customerID uint, lines []domain.LineItem) (domain.Purchase, error) {
	f.lines = lines
	if f.err != nil {
		return domain.Purchase{}, f.err
	}
	return domain.Purchase{ID: 1, CustomerID: customerID, LineItems: lines}, nil
}

func (f *fakePurchaseService) GetCustomerPurchases(context.Context, uint) ([]domain.Purchase, error) {
	return []domain.Purchase{}, nil
}

func newJSONContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(3))
	return c, rec
}

func TestReviewHandler_SubmitReview(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		svcErr    error
		wantCode  int
		wantCalls int
	}{
		{name: "valid", body: `{"item_id":10,"rating":4}`, wantCode: http.StatusCreated, wantCalls: 1},
		{name: "rating too high", body: `{"item_id":10,"rating":6}`, wantCode: http.StatusBadRequest},
		{name: "rating missing", body: `{"item_id":10}`, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"item_id":`, wantCode: http.StatusBadRequest},
		{name: "unknown item", body: `{"item_id":99,"rating":3}`, svcErr: domain.ErrItemNotFound, wantCode: http.StatusNotFound, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReviewService{err: tt.svcErr}
			h := NewReviewHandler(svc)
			c, rec := newJSONContext(http.MethodPost, tt.body)

			if err := h.SubmitReview(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if svc.calls != tt.wantCalls {
				t.Fatalf("service calls = %d, want %d", svc.calls, tt.wantCalls)
			}
		})
	}
}

func TestPurchaseHandler_CreatePurchase(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{name: "valid", body: `{"items":[{"item_id":1,"quantity":2},{"item_id":2,"quantity":1}]}`, wantCode: http.StatusCreated},
		{name: "empty items", body: `{"items":[]}`, wantCode: http.StatusBadRequest},
		{name: "zero quantity", body: `{"items":[{"item_id":1,"quantity":0}]}`, wantCode: http.StatusBadRequest},
		{name: "service rejects", body: `{"items":[{"item_id":1,"quantity":1}]}`, svcErr: purchase.ErrInvalidPurchase, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePurchaseService{err: tt.svcErr}
			h := NewPurchaseHandler(svc)
			c, rec := newJSONContext(http.MethodPost, tt.body)

			if err := h.CreatePurchase(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.name == "valid" && len(svc.lines) != 2 {
				t.Fatalf("lines = %+v", svc.lines)
			}
		})
	}
}
