package postgres

import (
	"context"
	"fmt"

	"curatorMarket/business/review"
	"curatorMarket/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	DB *gorm.DB
}

var _ review.ReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Upsert(ctx context.Context, rv *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(rv).Error
	if err != nil {
		return fmt.Errorf("failed to upsert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews := make([]domain.Review, 0)
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("item_id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}
