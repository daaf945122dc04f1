package review

import (
	"context"
	"errors"
	"fmt"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"
)

type ReviewRepository interface {
	Upsert(ctx context.Context, review *domain.Review) error
	FindByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error)
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Item, error)
}

type ReviewService struct {
	reviewRepo ReviewRepository
	itemRepo   ItemRepository
}

func NewReviewService(reviewRepo ReviewRepository, itemRepo ItemRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		itemRepo:   itemRepo,
	}
}

// SubmitReview records the customer's rating of an item, replacing any
// earlier rating of the same item.
func (s *ReviewService) SubmitReview(ctx context.Context, customerID uint, itemID uint64, rating int) (domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return domain.Review{}, fmt.Errorf("context error: %w", err)
	}

	if rating < domain.MinRating || rating > domain.MaxRating {
		return domain.Review{}, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidReview, domain.MinRating, domain.MaxRating)
	}

	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return domain.Review{}, err
		}
		logger.Error("failed to look up reviewed item", err)
		return domain.Review{}, fmt.Errorf("failed to look up item: %w", err)
	}

	review := domain.Review{
		CustomerID: customerID,
		ItemID:     itemID,
		Rating:     rating,
	}

	if err := s.reviewRepo.Upsert(ctx, &review); err != nil {
		logger.Error("failed to save review", err)
		return domain.Review{}, fmt.Errorf("failed to save review: %w", err)
	}

	logger.Debug("review_submitted",
		"trace_id", logger.TraceIDFromContext(ctx),
		"customer_id", customerID,
		"item_id", itemID,
		"rating", rating,
	)

	return review, nil
}

func (s *ReviewService) GetCustomerReviews(ctx context.Context, customerID uint) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.reviewRepo.FindByCustomer(ctx, customerID)
}
