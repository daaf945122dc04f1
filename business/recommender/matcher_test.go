package recommender

import "testing"

type rating struct {
	person uint
	item   uint64
	score  float64
}

func tableOf(t *testing.T, items []uint64, ratings ...rating) *RatingsTable {
	t.Helper()
	table := NewRatingsTable(items)
	for _, r := range ratings {
		if err := table.SetRating(r.person, r.item, r.score); err != nil {
			t.Fatalf("SetRating(%d, %d) error = %v", r.person, r.item, err)
		}
	}
	return table
}

func TestFindSimilarCurator(t *testing.T) {
	items := []uint64{10, 20, 30}
	const customer = 5

	tests := []struct {
		name     string
		ratings  []rating
		curators []uint
		want     uint
		wantOK   bool
	}{
		{
			name: "identical ratings beat distant ratings",
			ratings: []rating{
				{customer, 10, 5}, {customer, 20, 3},
				{1, 10, 5}, {1, 20, 3},
				{2, 10, 1}, {2, 20, 1},
			},
			curators: []uint{2, 1},
			want:     1,
			wantOK:   true,
		},
		{
			name: "curator without overlap is never selected",
			ratings: []rating{
				{customer, 10, 5},
				{3, 30, 5},
			},
			curators: []uint{3},
			wantOK:   false,
		},
		{
			name: "non-overlapping curator skipped in favour of any overlap",
			ratings: []rating{
				{customer, 10, 5},
				{3, 30, 5},
				{4, 10, 1},
			},
			curators: []uint{3, 4},
			want:     4,
			wantOK:   true,
		},
		{
			name: "exact tie keeps first curator in input order",
			ratings: []rating{
				{customer, 10, 4},
				{7, 10, 3},
				{8, 10, 5},
			},
			curators: []uint{8, 7},
			want:     8,
			wantOK:   true,
		},
		{
			name: "difference is averaged over overlapping items only",
			ratings: []rating{
				{customer, 10, 5}, {customer, 20, 5},
				// overlaps on one item, diff 1
				{1, 10, 4}, {1, 30, 1},
				// overlaps on two items, mean diff (0 + 3) / 2 = 1.5
				{2, 10, 5}, {2, 20, 2},
			},
			curators: []uint{1, 2},
			want:     1,
			wantOK:   true,
		},
		{
			name: "customer without ratings has no match",
			ratings: []rating{
				{1, 10, 4},
			},
			curators: []uint{1},
			wantOK:   false,
		},
		{
			name: "curator missing from table is ignored",
			ratings: []rating{
				{customer, 10, 4},
				{1, 10, 2},
			},
			curators: []uint{99, 1},
			want:     1,
			wantOK:   true,
		},
		{
			name:     "empty curator pool",
			ratings:  []rating{{customer, 10, 4}},
			curators: nil,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tableOf(t, items, tt.ratings...)

			got, ok := FindSimilarCurator(table, tt.curators, customer)
			if ok != tt.wantOK {
				t.Fatalf("FindSimilarCurator() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FindSimilarCurator() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindSimilarCurator_Deterministic(t *testing.T) {
	table := tableOf(t, []uint64{1, 2, 3},
		rating{9, 1, 3}, rating{9, 2, 4}, rating{9, 3, 2},
		rating{1, 1, 2}, rating{1, 2, 5},
		rating{2, 1, 4}, rating{2, 3, 1},
		rating{3, 2, 3}, rating{3, 3, 3},
	)
	curators := []uint{1, 2, 3}

	first, ok := FindSimilarCurator(table, curators, 9)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 20; i++ {
		got, _ := FindSimilarCurator(table, curators, 9)
		if got != first {
			t.Fatalf("run %d returned %d, first run returned %d", i, got, first)
		}
	}
}
