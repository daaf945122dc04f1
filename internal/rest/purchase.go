package rest

import (
	"context"
	"net/http"
	"time"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PurchaseService interface {
		CreatePurchase(ctx context.Context, customerID uint, lines []domain.LineItem) (domain.Purchase, error)
		GetCustomerPurchases(ctx context.Context, customerID uint) ([]domain.Purchase, error)
	}

	PurchaseHandler struct {
		validate        *validator.Validate
		purchaseService PurchaseService
		timeout         time.Duration
	}

	PurchaseLineInput struct {
		ItemID   uint64 `json:"item_id" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,gt=0"`
	}

	PurchaseInput struct {
		Items []PurchaseLineInput `json:"items" validate:"required,min=1,dive"`
	}
)

func NewPurchaseHandler(svc PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		validate:        validator.New(),
		purchaseService: svc,
		timeout:         10 * time.Second,
	}
}

// POST /api/v1/purchases
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var request PurchaseInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	lines := make([]domain.LineItem, 0, len(request.Items))
	for _, it := range request.Items {
		lines = append(lines, domain.LineItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	p, err := h.purchaseService.CreatePurchase(ctx, customerID, lines)
	if err != nil {
		return writeError(c, "Failed to create purchase", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(p))
}

// GET /api/v1/purchases
func (h *PurchaseHandler) GetMyPurchases(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	purchases, err := h.purchaseService.GetCustomerPurchases(ctx, customerID)
	if err != nil {
		return writeError(c, "Failed to get purchases", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(purchases))
}
