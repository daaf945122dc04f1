package recommender

import (
	"errors"
	"fmt"
)

var ErrUnknownItem = errors.New("item is not indexed in ratings table")

// Score is one slot of a ratings row. Valid is false when the person never
// rated the item.
type Score struct {
	Value float64
	Valid bool
}

// RatingsTable maps (person, item) to a rating. The item ordering is fixed at
// construction so every row is positionally aligned with every other row; all
// rows share one contiguous backing slice.
type RatingsTable struct {
	items     []uint64
	itemIndex map[uint64]int
	rowIndex  map[uint]int
	cells     []Score
}

// NewRatingsTable indexes itemIDs in the given order. Duplicates keep their
// first position.
func NewRatingsTable(itemIDs []uint64) *RatingsTable {
	t := &RatingsTable{
		items:     make([]uint64, 0, len(itemIDs)),
		itemIndex: make(map[uint64]int, len(itemIDs)),
		rowIndex:  make(map[uint]int),
	}
	for _, id := range itemIDs {
		if _, ok := t.itemIndex[id]; ok {
			continue
		}
		t.itemIndex[id] = len(t.items)
		t.items = append(t.items, id)
	}
	return t
}

// Items returns the canonical item order of every row.
func (t *RatingsTable) Items() []uint64 {
	out := make([]uint64, len(t.items))
	copy(out, t.items)
	return out
}

// People returns how many distinct people have a row.
func (t *RatingsTable) People() int {
	return len(t.rowIndex)
}

// SetRating records or overwrites the rating of person on item.
func (t *RatingsTable) SetRating(person uint, item uint64, score float64) error {
	col, ok := t.itemIndex[item]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownItem, item)
	}

	row, ok := t.rowIndex[person]
	if !ok {
		row = len(t.rowIndex)
		t.rowIndex[person] = row
		t.cells = append(t.cells, make([]Score, len(t.items))...)
	}

	t.cells[row*len(t.items)+col] = Score{Value: score, Valid: true}
	return nil
}

// AllRatings returns a copy of the person's row in canonical item order.
// ok is false when the person was never passed to SetRating.
func (t *RatingsTable) AllRatings(person uint) ([]Score, bool) {
	row, ok := t.rowIndex[person]
	if !ok {
		return nil, false
	}

	start := row * len(t.items)
	out := make([]Score, len(t.items))
	copy(out, t.cells[start:start+len(t.items)])
	return out, true
}

// row is AllRatings without the copy, for read-only scans.
func (t *RatingsTable) row(person uint) ([]Score, bool) {
	row, ok := t.rowIndex[person]
	if !ok {
		return nil, false
	}
	start := row * len(t.items)
	return t.cells[start : start+len(t.items) : start+len(t.items)], true
}
