package postgres

import (
	"context"
	"errors"
	"fmt"

	"curatorMarket/business/snapshot"
	"curatorMarket/domain"

	"gorm.io/gorm"
)

const snapshotInsertBatch = 500

type SnapshotRepository struct {
	DB *gorm.DB
}

var _ snapshot.Repository = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{DB: db}
}

func (r *SnapshotRepository) ItemSales(ctx context.Context) ([]domain.ItemSales, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	sales := make([]domain.ItemSales, 0)
	err := r.DB.WithContext(ctx).
		Table("line_items AS li").
		Select("li.item_id, i.category_id, SUM(li.quantity) AS quantity").
		Joins("JOIN items AS i ON i.id = li.item_id").
		Group("li.item_id, i.category_id").
		Order("li.item_id ASC").
		Scan(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate item sales: %w", err)
	}

	return sales, nil
}

func (r *SnapshotRepository) CuratorReviews(ctx context.Context, itemIDs []uint64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews := make([]domain.Review, 0)
	if len(itemIDs) == 0 {
		return reviews, nil
	}

	err := r.DB.WithContext(ctx).
		Table("reviews AS r").
		Select("r.customer_id, r.item_id, r.rating, r.created_at, r.updated_at").
		Joins("JOIN customers AS c ON c.id = r.customer_id AND c.deleted_at IS NULL").
		Where("c.is_curator = ?", true).
		Where("r.item_id IN ?", itemIDs).
		Order("r.customer_id ASC, r.item_id ASC").
		Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch curator reviews: %w", err)
	}

	return reviews, nil
}

func (r *SnapshotRepository) Latest(ctx context.Context) (domain.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("context error: %w", err)
	}

	var snap domain.Snapshot
	err := r.DB.WithContext(ctx).Order("generation DESC").First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	return snap, true, nil
}

// Replace drops every earlier generation of popular items and definitive
// ratings and writes the new one, all in one transaction. Snapshot rows are
// kept as a generation log.
func (r *SnapshotRepository) Replace(ctx context.Context, snap domain.Snapshot, popular []domain.PopularItem, ratings []domain.DefinitiveRating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("snapshot_id <> ?", snap.ID).Delete(&domain.DefinitiveRating{}).Error; err != nil {
			return fmt.Errorf("failed to clear definitive ratings: %w", err)
		}
		if err := tx.Where("snapshot_id <> ?", snap.ID).Delete(&domain.PopularItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear popular items: %w", err)
		}

		if len(popular) > 0 {
			if err := tx.CreateInBatches(&popular, snapshotInsertBatch).Error; err != nil {
				return fmt.Errorf("failed to insert popular items: %w", err)
			}
		}
		if len(ratings) > 0 {
			if err := tx.CreateInBatches(&ratings, snapshotInsertBatch).Error; err != nil {
				return fmt.Errorf("failed to insert definitive ratings: %w", err)
			}
		}

		if err := tx.Create(&snap).Error; err != nil {
			return fmt.Errorf("failed to record snapshot: %w", err)
		}
		return nil
	})
}
