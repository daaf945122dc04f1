package recommender

import "math"

// FindSimilarCurator returns the curator whose ratings are closest to the
// target's, measured as the mean absolute rating difference over items both
// have rated. Curators sharing no rated item with the target are skipped.
// Exact ties keep the curator that appears first in curatorIDs, so callers
// must pass a deterministic order. ok is false when no curator overlaps.
func FindSimilarCurator(table *RatingsTable, curatorIDs []uint, targetID uint) (uint, bool) {
	target, ok := table.row(targetID)
	if !ok {
		return 0, false
	}

	var (
		best    uint
		found   bool
		minDiff = math.Inf(1)
	)

	for _, curatorID := range curatorIDs {
		ratings, ok := table.row(curatorID)
		if !ok {
			continue
		}

		diff, overlap := meanAbsDiff(ratings, target)
		if !overlap {
			continue
		}
		if diff < minDiff {
			minDiff = diff
			best = curatorID
			found = true
		}
	}

	return best, found
}

// meanAbsDiff averages |a[i]-b[i]| over positions where both are rated.
func meanAbsDiff(a, b []Score) (float64, bool) {
	sum := 0.0
	n := 0
	for i := range a {
		if !a[i].Valid || !b[i].Valid {
			continue
		}
		sum += math.Abs(a[i].Value - b[i].Value)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
