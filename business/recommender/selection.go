package recommender

import (
	"sort"

	"curatorMarket/domain"
)

// RankCandidates orders candidates by score descending, item ID ascending.
func RankCandidates(candidates []domain.ScoredItem) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ItemID < candidates[j].ItemID
	})
}

// SelectTopK picks at most k entries from a list ranked by descending score.
//
// Every entry scoring at least the k-th highest score qualifies. When the
// qualifying set fits in k it is returned as is; when ties at the boundary
// push it past k, the qualifying entries are re-ranked by (score desc, item
// ID asc) and cut to exactly k.
func SelectTopK(ranked []domain.ScoredItem, k int) []domain.ScoredItem {
	if k <= 0 {
		return []domain.ScoredItem{}
	}
	if len(ranked) <= k {
		out := make([]domain.ScoredItem, len(ranked))
		copy(out, ranked)
		return out
	}

	boundary := ranked[0].Score
	for _, c := range ranked[:k] {
		if c.Score < boundary {
			boundary = c.Score
		}
	}

	qualifying := make([]domain.ScoredItem, 0, k)
	for _, c := range ranked {
		if c.Score >= boundary {
			qualifying = append(qualifying, c)
		}
	}

	if len(qualifying) <= k {
		return qualifying
	}

	RankCandidates(qualifying)
	return qualifying[:k]
}

func itemIDs(items []domain.ScoredItem) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ItemID)
	}
	return out
}
