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
	ReviewService interface {
		SubmitReview(ctx context.Context, customerID uint, itemID uint64, rating int) (domain.Review, error)
		GetCustomerReviews(ctx context.Context, customerID uint) ([]domain.Review, error)
	}

	ReviewHandler struct {
		validate      *validator.Validate
		reviewService ReviewService
		timeout       time.Duration
	}

	ReviewInput struct {
		ItemID uint64 `json:"item_id" validate:"required"`
		Rating int    `json:"rating" validate:"required,min=1,max=5"`
	}
)

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		validate:      validator.New(),
		reviewService: svc,
		timeout:       10 * time.Second,
	}
}

// POST /api/v1/reviews
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var request ReviewInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rv, err := h.reviewService.SubmitReview(ctx, customerID, request.ItemID, request.Rating)
	if err != nil {
		return writeError(c, "Failed to submit review", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(rv))
}

// GET /api/v1/reviews
func (h *ReviewHandler) GetMyReviews(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewService.GetCustomerReviews(ctx, customerID)
	if err != nil {
		return writeError(c, "Failed to get reviews", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reviews))
}
