package rest

import (
	"context"
	"errors"
	"net/http"

	"curatorMarket/business/purchase"
	"curatorMarket/business/recommender"
	"curatorMarket/business/review"
	"curatorMarket/domain"
	"curatorMarket/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, recommender.ErrInvalidK),
		errors.Is(err, review.ErrInvalidReview),
		errors.Is(err, purchase.ErrInvalidPurchase):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoSnapshot):
		return http.StatusConflict
	case errors.Is(err, recommender.ErrDataSource):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, msg string, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.Error(msg,
			"trace_id", logger.TraceIDFromContext(c.Request().Context()),
			"error", err,
		)
	}
	return c.JSON(code, ResponseError{Message: err.Error()})
}

func currentUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get("user_id").(uint)
	return id, ok
}
