package recommender

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"

	"github.com/google/uuid"
)

var (
	// ErrDataSource marks any failure reading from the store. Callers get no
	// partial result.
	ErrDataSource = errors.New("recommendation data source failure")
	ErrInvalidK   = errors.New("k must be greater than 0")
)

const (
	FallbackNoSimilarCurator = "no_similar_curator"
	FallbackNothingLeft      = "curator_items_all_purchased"
)

// ---- Repository interfaces ----

// RecommendationRepository reads the snapshot relations and live customer
// data. Every method returns ordered rows and an empty slice when nothing
// matches.
type RecommendationRepository interface {
	CountPopularItems(ctx context.Context, snapshotID uuid.UUID) (int64, error)
	// FetchPopularItems returns popular item IDs in ascending order.
	FetchPopularItems(ctx context.Context, snapshotID uuid.UUID) ([]uint64, error)
	// FetchPopularItemMeanRatings returns the mean definitive rating of each
	// rated popular item, by mean descending then item ID ascending.
	FetchPopularItemMeanRatings(ctx context.Context, snapshotID uuid.UUID) ([]domain.ScoredItem, error)
	FetchCuratorRatingRows(ctx context.Context, snapshotID uuid.UUID) ([]domain.RatingRow, error)
	// FetchCustomerRatingRows returns the customer's live reviews restricted
	// to popular items.
	FetchCustomerRatingRows(ctx context.Context, snapshotID uuid.UUID, customerID uint) ([]domain.RatingRow, error)
	// FetchUnpurchasedCuratorRatings returns the curator's definitive
	// ratings on items the customer never bought, by rating descending then
	// item ID ascending.
	FetchUnpurchasedCuratorRatings(ctx context.Context, snapshotID uuid.UUID, customerID, curatorID uint) ([]domain.ScoredItem, error)
}

type CustomerRepository interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// ---- Service ----

type Service struct {
	repo         RecommendationRepository
	customerRepo CustomerRepository
}

func NewService(repo RecommendationRepository, customerRepo CustomerRepository) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
	}
}

// RecommendGeneric returns up to k popular items with the highest mean
// curator rating. When there are at most k popular items all of them are
// returned, rated or not.
func (s *Service) RecommendGeneric(ctx context.Context, snap domain.Snapshot, k int) (domain.Recommendation, error) {
	rec, err := s.recommendGeneric(ctx, snap, k)
	if err != nil {
		return domain.Recommendation{}, err
	}

	RecommendationsTotal.WithLabelValues("generic", rec.Source).Inc()
	return rec, nil
}

func (s *Service) recommendGeneric(ctx context.Context, snap domain.Snapshot, k int) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}
	if k <= 0 {
		return domain.Recommendation{}, ErrInvalidK
	}

	rec := newRecommendation(snap, domain.SourceGeneric)

	count, err := s.repo.CountPopularItems(ctx, snap.ID)
	if err != nil {
		return domain.Recommendation{}, dataSourceError("count popular items", err)
	}

	if count <= int64(k) {
		items, err := s.repo.FetchPopularItems(ctx, snap.ID)
		if err != nil {
			return domain.Recommendation{}, dataSourceError("fetch popular items", err)
		}
		rec.ItemIDs = append(rec.ItemIDs, items...)
		return rec, nil
	}

	means, err := s.repo.FetchPopularItemMeanRatings(ctx, snap.ID)
	if err != nil {
		return domain.Recommendation{}, dataSourceError("fetch popular item mean ratings", err)
	}

	RankCandidates(means)
	rec.ItemIDs = itemIDs(SelectTopK(means, k))
	return rec, nil
}

// Recommend returns up to k items rated highest by the curator most similar
// to the customer, excluding items the customer already bought. It falls
// back to RecommendGeneric when no curator shares a rated item with the
// customer or when the matched curator has nothing left to recommend.
func (s *Service) Recommend(ctx context.Context, snap domain.Snapshot, customerID uint, k int) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}
	if k <= 0 {
		return domain.Recommendation{}, ErrInvalidK
	}

	if s.customerRepo != nil {
		exists, err := s.customerRepo.Exists(ctx, customerID)
		if err != nil {
			return domain.Recommendation{}, dataSourceError("check customer", err)
		}
		if !exists {
			return domain.Recommendation{}, domain.ErrCustomerNotFound
		}
	}

	customerRows, err := s.repo.FetchCustomerRatingRows(ctx, snap.ID, customerID)
	if err != nil {
		return domain.Recommendation{}, dataSourceError("fetch customer ratings", err)
	}

	curatorRows, err := s.repo.FetchCuratorRatingRows(ctx, snap.ID)
	if err != nil {
		return domain.Recommendation{}, dataSourceError("fetch curator ratings", err)
	}

	table, err := buildRatingsTable(customerRows, curatorRows)
	if err != nil {
		return domain.Recommendation{}, err
	}

	curators := distinctPeople(curatorRows)
	curatorID, ok := FindSimilarCurator(table, curators, customerID)

	tid := logger.TraceIDFromContext(ctx)
	logger.Debug("curator_match",
		"trace_id", tid,
		"customer_id", customerID,
		"snapshot_generation", snap.Generation,
		"curator_pool", len(curators),
		"customer_ratings", len(customerRows),
		"matched", ok,
		"curator_id", curatorID,
	)

	if !ok {
		return s.fallback(ctx, snap, customerID, k, FallbackNoSimilarCurator)
	}

	candidates, err := s.repo.FetchUnpurchasedCuratorRatings(ctx, snap.ID, customerID, curatorID)
	if err != nil {
		return domain.Recommendation{}, dataSourceError("fetch unpurchased curator ratings", err)
	}
	if len(candidates) == 0 {
		return s.fallback(ctx, snap, customerID, k, FallbackNothingLeft)
	}

	RankCandidates(candidates)

	rec := newRecommendation(snap, domain.SourceCurator)
	rec.CuratorID = &curatorID
	rec.ItemIDs = itemIDs(SelectTopK(candidates, k))

	RecommendationsTotal.WithLabelValues("personal", rec.Source).Inc()
	return rec, nil
}

func (s *Service) fallback(ctx context.Context, snap domain.Snapshot, customerID uint, k int, reason string) (domain.Recommendation, error) {
	logger.Debug("recommendation_fallback",
		"trace_id", logger.TraceIDFromContext(ctx),
		"customer_id", customerID,
		"reason", reason,
	)

	rec, err := s.recommendGeneric(ctx, snap, k)
	if err != nil {
		return domain.Recommendation{}, err
	}
	rec.FallbackReason = reason

	RecommendationFallbacksTotal.WithLabelValues(reason).Inc()
	RecommendationsTotal.WithLabelValues("personal", rec.Source).Inc()
	return rec, nil
}

// buildRatingsTable indexes every item seen in rows in ascending ID order
// and loads all rows into a fresh table.
func buildRatingsTable(rowSets ...[]domain.RatingRow) (*RatingsTable, error) {
	seen := make(map[uint64]struct{})
	var items []uint64
	for _, rows := range rowSets {
		for _, r := range rows {
			if _, ok := seen[r.ItemID]; ok {
				continue
			}
			seen[r.ItemID] = struct{}{}
			items = append(items, r.ItemID)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })

	table := NewRatingsTable(items)
	for _, rows := range rowSets {
		for _, r := range rows {
			if err := table.SetRating(r.PersonID, r.ItemID, r.Rating); err != nil {
				return nil, fmt.Errorf("build ratings table: %w", err)
			}
		}
	}
	return table, nil
}

// distinctPeople returns the person IDs of rows in ascending order.
func distinctPeople(rows []domain.RatingRow) []uint {
	seen := make(map[uint]struct{})
	out := make([]uint, 0)
	for _, r := range rows {
		if _, ok := seen[r.PersonID]; ok {
			continue
		}
		seen[r.PersonID] = struct{}{}
		out = append(out, r.PersonID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func newRecommendation(snap domain.Snapshot, source string) domain.Recommendation {
	return domain.Recommendation{
		ItemIDs:            []uint64{},
		Source:             source,
		SnapshotID:         snap.ID,
		SnapshotGeneration: snap.Generation,
	}
}

func dataSourceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataSource, op, err)
}
