package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (domain.Customer, error)
	GetCurators(ctx context.Context) ([]domain.Customer, error)
	SetCurator(ctx context.Context, id uint, isCurator bool) (domain.Customer, error)
}

type CustomerHandler struct {
	customerService CustomerService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreateCustomerRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,oneof=customer admin"`
	IsCurator bool   `json:"is_curator"`
}

type SetCuratorRequest struct {
	IsCurator *bool `json:"is_curator" validate:"required"`
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.CreateCustomer(ctx, &domain.Customer{
		FullName:  req.FullName,
		Email:     req.Email,
		Role:      req.Role,
		IsCurator: req.IsCurator,
	})
	if err != nil {
		logger.Error("Failed to create customer", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "customer successfully created",
		"customer": customer,
	})
}

func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.GetCustomerByID(ctx, uint(id))
	if err != nil {
		return writeError(c, "Failed to get customer", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get customer",
		"customer": customer,
	})
}

func (h *CustomerHandler) GetCurators(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	curators, err := h.customerService.GetCurators(ctx)
	if err != nil {
		return writeError(c, "Failed to get curators", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get curators",
		"curators": curators,
	})
}

func (h *CustomerHandler) SetCurator(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	var req SetCuratorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.SetCurator(ctx, uint(id), *req.IsCurator)
	if err != nil {
		return writeError(c, "Failed to update curator flag", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "curator flag updated, effective from the next snapshot refresh",
		"customer": customer,
	})
}
