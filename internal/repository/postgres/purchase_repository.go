package postgres

import (
	"context"
	"fmt"

	"curatorMarket/business/purchase"
	"curatorMarket/domain"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

var _ purchase.PurchaseRepository = (*PurchaseRepository)(nil)

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		DB: db,
	}
}

// Create stores the purchase and its line items in one transaction.
func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := p.LineItems
		p.LineItems = nil
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		for i := range lines {
			lines[i].PurchaseID = p.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return fmt.Errorf("failed to create line items: %w", err)
		}
		p.LineItems = lines
		return nil
	})
}

func (r *PurchaseRepository) FindByCustomer(ctx context.Context, customerID uint) ([]domain.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	purchases := make([]domain.Purchase, 0)
	err := r.DB.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_id ASC")
		}).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}

	return purchases, nil
}
