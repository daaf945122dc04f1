package postgres

import (
	"context"
	"fmt"

	"curatorMarket/business/recommender"
	"curatorMarket/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecommendationRepository reads the snapshot tables. Every query carries an
// ORDER BY so repeated calls against one snapshot return identical rows.
type RecommendationRepository struct {
	DB *gorm.DB
}

var _ recommender.RecommendationRepository = (*RecommendationRepository)(nil)

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) CountPopularItems(ctx context.Context, snapshotID uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var n int64
	err := r.DB.WithContext(ctx).
		Model(&domain.PopularItem{}).
		Where("snapshot_id = ?", snapshotID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count popular items: %w", err)
	}

	return n, nil
}

func (r *RecommendationRepository) FetchPopularItems(ctx context.Context, snapshotID uuid.UUID) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ids := make([]uint64, 0)
	err := r.DB.WithContext(ctx).
		Model(&domain.PopularItem{}).
		Where("snapshot_id = ?", snapshotID).
		Order("item_id ASC").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch popular items: %w", err)
	}

	return ids, nil
}

func (r *RecommendationRepository) FetchPopularItemMeanRatings(ctx context.Context, snapshotID uuid.UUID) ([]domain.ScoredItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	// definitive_ratings only ever holds ratings on popular items of the
	// same snapshot, so unrated popular items simply have no group.
	out := make([]domain.ScoredItem, 0)
	err := r.DB.WithContext(ctx).
		Model(&domain.DefinitiveRating{}).
		Select("item_id, AVG(rating)::float8 AS score").
		Where("snapshot_id = ?", snapshotID).
		Group("item_id").
		Order("score DESC, item_id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch popular item mean ratings: %w", err)
	}

	return out, nil
}

func (r *RecommendationRepository) FetchCuratorRatingRows(ctx context.Context, snapshotID uuid.UUID) ([]domain.RatingRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows := make([]domain.RatingRow, 0)
	err := r.DB.WithContext(ctx).
		Model(&domain.DefinitiveRating{}).
		Select("customer_id, item_id, rating").
		Where("snapshot_id = ?", snapshotID).
		Order("customer_id ASC, item_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch curator rating rows: %w", err)
	}

	return rows, nil
}

func (r *RecommendationRepository) FetchCustomerRatingRows(ctx context.Context, snapshotID uuid.UUID, customerID uint) ([]domain.RatingRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows := make([]domain.RatingRow, 0)
	err := r.DB.WithContext(ctx).
		Table("reviews AS r").
		Select("r.customer_id, r.item_id, r.rating").
		Joins("JOIN popular_items AS p ON p.item_id = r.item_id AND p.snapshot_id = ?", snapshotID).
		Where("r.customer_id = ?", customerID).
		Order("r.item_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer rating rows: %w", err)
	}

	return rows, nil
}

func (r *RecommendationRepository) FetchUnpurchasedCuratorRatings(ctx context.Context, snapshotID uuid.UUID, customerID, curatorID uint) ([]domain.ScoredItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	purchased := r.DB.
		Table("line_items AS li").
		Select("1").
		Joins("JOIN purchases AS pu ON pu.id = li.purchase_id").
		Where("pu.customer_id = ? AND li.item_id = d.item_id", customerID)

	out := make([]domain.ScoredItem, 0)
	err := r.DB.WithContext(ctx).
		Table("definitive_ratings AS d").
		Select("d.item_id, d.rating::float8 AS score").
		Where("d.snapshot_id = ? AND d.customer_id = ?", snapshotID, curatorID).
		Where("NOT EXISTS (?)", purchased).
		Order("score DESC, d.item_id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unpurchased curator ratings: %w", err)
	}

	return out, nil
}
