package recommender

import (
	"errors"
	"testing"
)

func TestNewRatingsTable_ItemOrder(t *testing.T) {
	table := NewRatingsTable([]uint64{30, 10, 20, 10})

	got := table.Items()
	want := []uint64{30, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("Items() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRatingsTable_SetAndGet(t *testing.T) {
	table := NewRatingsTable([]uint64{10, 20, 30})

	if err := table.SetRating(5, 20, 4); err != nil {
		t.Fatalf("SetRating() error = %v", err)
	}
	if err := table.SetRating(7, 10, 2); err != nil {
		t.Fatalf("SetRating() error = %v", err)
	}
	// overwrite
	if err := table.SetRating(5, 20, 3); err != nil {
		t.Fatalf("SetRating() error = %v", err)
	}

	row, ok := table.AllRatings(5)
	if !ok {
		t.Fatal("AllRatings(5) reported absent")
	}
	want := []Score{{}, {Value: 3, Valid: true}, {}}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %+v, want %+v", i, row[i], want[i])
		}
	}

	if table.People() != 2 {
		t.Errorf("People() = %d, want 2", table.People())
	}
}

func TestRatingsTable_AbsentPerson(t *testing.T) {
	table := NewRatingsTable([]uint64{10})

	row, ok := table.AllRatings(99)
	if ok || row != nil {
		t.Errorf("AllRatings(99) = (%v, %v), want (nil, false)", row, ok)
	}
}

func TestRatingsTable_UnknownItem(t *testing.T) {
	table := NewRatingsTable([]uint64{10})

	err := table.SetRating(1, 42, 5)
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("SetRating(unknown) error = %v, want ErrUnknownItem", err)
	}
	if _, ok := table.AllRatings(1); ok {
		t.Error("failed SetRating must not create a row")
	}
}

func TestRatingsTable_RowsStayAlignedAsTableGrows(t *testing.T) {
	table := NewRatingsTable([]uint64{1, 2})

	_ = table.SetRating(100, 2, 5)
	before, _ := table.AllRatings(100)

	for p := uint(1); p <= 50; p++ {
		_ = table.SetRating(p, 1, float64(p%5+1))
	}

	after, _ := table.AllRatings(100)
	if len(after) != len(before) {
		t.Fatalf("row length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("slot %d changed from %+v to %+v", i, before[i], after[i])
		}
	}
}

func TestRatingsTable_AllRatingsReturnsCopy(t *testing.T) {
	table := NewRatingsTable([]uint64{1})
	_ = table.SetRating(1, 1, 4)

	row, _ := table.AllRatings(1)
	row[0] = Score{}

	again, _ := table.AllRatings(1)
	if !again[0].Valid || again[0].Value != 4 {
		t.Errorf("table mutated through returned row: %+v", again[0])
	}
}
