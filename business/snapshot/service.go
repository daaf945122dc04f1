package snapshot

import (
	"context"
	"fmt"
	"sort"
	"time"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"

	"github.com/google/uuid"
)

// PopularPerCategory is how many best sellers of each category become
// popular items.
const PopularPerCategory = 2

// Repository contract interface
type Repository interface {
	// ItemSales returns the summed purchased quantity of every sold item.
	ItemSales(ctx context.Context) ([]domain.ItemSales, error)
	// CuratorReviews returns curator reviews on the given items.
	CuratorReviews(ctx context.Context, itemIDs []uint64) ([]domain.Review, error)
	// Latest returns the newest snapshot, ok is false when none exists.
	Latest(ctx context.Context) (domain.Snapshot, bool, error)
	// Replace atomically swaps the snapshot tables for the given contents.
	Replace(ctx context.Context, snap domain.Snapshot, popular []domain.PopularItem, ratings []domain.DefinitiveRating) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Current returns the latest snapshot handle.
func (s *Service) Current(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("context error: %w", err)
	}

	snap, ok, err := s.repo.Latest(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load latest snapshot: %w", err)
	}
	if !ok {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	return snap, nil
}

// Refresh recomputes popular items and definitive ratings from the live
// tables and stores them as a new snapshot generation, replacing the
// previous one.
func (s *Service) Refresh(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("context error: %w", err)
	}
	start := s.now()

	sales, err := s.repo.ItemSales(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load item sales: %w", err)
	}

	popularIDs := SelectPopularItems(sales, PopularPerCategory)

	reviews, err := s.repo.CuratorReviews(ctx, popularIDs)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load curator reviews: %w", err)
	}

	latest, ok, err := s.repo.Latest(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load latest snapshot: %w", err)
	}

	snap := domain.Snapshot{
		ID:          uuid.New(),
		Generation:  1,
		RefreshedAt: start.UTC(),
	}
	if ok {
		snap.Generation = latest.Generation + 1
	}

	popular := make([]domain.PopularItem, 0, len(popularIDs))
	isPopular := make(map[uint64]struct{}, len(popularIDs))
	for _, id := range popularIDs {
		popular = append(popular, domain.PopularItem{SnapshotID: snap.ID, ItemID: id})
		isPopular[id] = struct{}{}
	}

	ratings := make([]domain.DefinitiveRating, 0, len(reviews))
	for _, r := range reviews {
		if _, ok := isPopular[r.ItemID]; !ok {
			continue
		}
		ratings = append(ratings, domain.DefinitiveRating{
			SnapshotID: snap.ID,
			CustomerID: r.CustomerID,
			ItemID:     r.ItemID,
			Rating:     r.Rating,
		})
	}

	snap.PopularItems = len(popular)
	snap.DefinitiveRatings = len(ratings)

	if err := s.repo.Replace(ctx, snap, popular, ratings); err != nil {
		return domain.Snapshot{}, fmt.Errorf("replace snapshot: %w", err)
	}

	elapsed := s.now().Sub(start)
	RefreshDuration.Observe(elapsed.Seconds())
	PopularItemsGauge.Set(float64(snap.PopularItems))
	DefinitiveRatingsGauge.Set(float64(snap.DefinitiveRatings))

	logger.Info("Snapshot refreshed",
		"snapshot_id", snap.ID.String(),
		"generation", snap.Generation,
		"popular_items", snap.PopularItems,
		"definitive_ratings", snap.DefinitiveRatings,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return snap, nil
}

// SelectPopularItems keeps the perCategory best sellers of every category,
// ranked by quantity descending with item ID ascending breaking ties. The
// result is sorted by item ID.
func SelectPopularItems(sales []domain.ItemSales, perCategory int) []uint64 {
	if perCategory <= 0 {
		return []uint64{}
	}

	byCategory := make(map[uint64][]domain.ItemSales)
	for _, s := range sales {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	out := make([]uint64, 0, len(byCategory)*perCategory)
	for _, items := range byCategory {
		sort.Slice(items, func(i, j int) bool {
			if items[i].Quantity != items[j].Quantity {
				return items[i].Quantity > items[j].Quantity
			}
			return items[i].ItemID < items[j].ItemID
		})
		if len(items) > perCategory {
			items = items[:perCategory]
		}
		for _, it := range items {
			out = append(out, it.ItemID)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
