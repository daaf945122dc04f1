package postgres

import (
	"context"
	"errors"
	"fmt"

	"curatorMarket/business/customer"
	"curatorMarket/business/recommender"
	"curatorMarket/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

var (
	_ customer.CustomerRepository    = (*CustomerRepository)(nil)
	_ recommender.CustomerRepository = (*CustomerRepository)(nil)
)

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	var c domain.Customer

	err := r.DB.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, err
	}

	return c, nil
}

func (r *CustomerRepository) FindCurators(ctx context.Context) ([]domain.Customer, error) {
	var curators []domain.Customer

	if err := r.DB.WithContext(ctx).Where("is_curator = ?", true).Order("id ASC").Find(&curators).Error; err != nil {
		return nil, err
	}

	return curators, nil
}

func (r *CustomerRepository) SetCurator(ctx context.Context, id uint, isCurator bool) error {
	result := r.DB.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", id).Update("is_curator", isCurator)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var n int64
	if err := r.DB.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}

	return n > 0, nil
}
