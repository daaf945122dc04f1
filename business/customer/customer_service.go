package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var validRoles = map[string]bool{
	RoleCustomer: true,
	RoleAdmin:    true,
}

// CustomerRepository contract interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id uint) (domain.Customer, error)
	FindCurators(ctx context.Context) ([]domain.Customer, error)
	SetCurator(ctx context.Context, id uint, isCurator bool) error
}

type customerService struct {
	customerRepo CustomerRepository
	validate     *validator.Validate
}

func NewCustomerService(customerRepo CustomerRepository, validate *validator.Validate) *customerService {
	return &customerService{
		customerRepo: customerRepo,
		validate:     validate,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create customer")
		return nil, fmt.Errorf("context error: %w", err)
	}

	customer.FullName = strings.TrimSpace(customer.FullName)
	if customer.FullName == "" {
		logger.Error("Invalid customer data: full name is required")
		return nil, errors.New("full name is required")
	}

	if err := s.validate.Var(customer.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return nil, errors.New("invalid email format")
	}

	if customer.Role == "" {
		customer.Role = RoleCustomer
	}
	if !validRoles[customer.Role] {
		logger.Error("Invalid customer role", "role", customer.Role)
		return nil, errors.New("invalid role")
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		logger.Error("failed to create new customer", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("customer created successfully", "customer_id", customer.ID, "is_curator", customer.IsCurator)

	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id uint) (domain.Customer, error) {
	if id == 0 {
		return domain.Customer{}, errors.New("invalid customer id")
	}

	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find customer by id", err)
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *customerService) GetCurators(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	curators, err := s.customerRepo.FindCurators(ctx)
	if err != nil {
		logger.Error("Failed to find curators", err)
		return nil, err
	}

	return curators, nil
}

// SetCurator grants or revokes curator status. The change only reaches
// recommendations after the next snapshot refresh.
func (s *customerService) SetCurator(ctx context.Context, id uint, isCurator bool) (domain.Customer, error) {
	if id == 0 {
		return domain.Customer{}, errors.New("invalid customer id")
	}

	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	if err := s.customerRepo.SetCurator(ctx, id, isCurator); err != nil {
		logger.Error("failed to update curator flag", err)
		return domain.Customer{}, err
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to fetch updated customer", err)
		return domain.Customer{}, fmt.Errorf("failed to fetch updated customer: %w", err)
	}

	logger.Info("curator flag updated", "customer_id", id, "is_curator", isCurator)

	return customer, nil
}
