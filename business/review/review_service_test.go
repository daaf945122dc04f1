package review

import (
	"context"
	"errors"
	"testing"

	"curatorMarket/domain"
)

type fakeReviewRepo struct {
	saved []domain.Review
	err   error
}

func (f *fakeReviewRepo) Upsert(_ context.Context, r *domain.Review) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.saved {
		if f.saved[i].CustomerID == r.CustomerID && f.saved[i].ItemID == r.ItemID {
			f.saved[i].Rating = r.Rating
			return nil
		}
	}
	f.saved = append(f.saved, *r)
	return nil
}

func (f *fakeReviewRepo) FindByCustomer(_ context.Context, customerID uint) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.saved {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, f.err
}

type fakeItems map[uint64]domain.Item

func (f fakeItems) FindByID(_ context.Context, id uint64) (domain.Item, error) {
	it, ok := f[id]
	if !ok {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return it, nil
}

func TestSubmitReview(t *testing.T) {
	items := fakeItems{10: {ID: 10}, 20: {ID: 20}}

	tests := []struct {
		name    string
		itemID  uint64
		rating  int
		wantErr error
	}{
		{name: "lowest rating", itemID: 10, rating: 1},
		{name: "highest rating", itemID: 20, rating: 5},
		{name: "rating too low", itemID: 10, rating: 0, wantErr: ErrInvalidReview},
		{name: "rating too high", itemID: 10, rating: 6, wantErr: ErrInvalidReview},
		{name: "unknown item", itemID: 99, rating: 3, wantErr: domain.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReviewService(&fakeReviewRepo{}, items)
			got, err := svc.SubmitReview(context.Background(), 7, tt.itemID, tt.rating)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.CustomerID != 7 || got.ItemID != tt.itemID || got.Rating != tt.rating {
				t.Fatalf("unexpected review %+v", got)
			}
		})
	}
}

func TestSubmitReview_Overwrites(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, fakeItems{10: {ID: 10}})
	ctx := context.Background()

	if _, err := svc.SubmitReview(ctx, 1, 10, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitReview(ctx, 1, 10, 4); err != nil {
		t.Fatal(err)
	}

	reviews, err := svc.GetCustomerReviews(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 4 {
		t.Fatalf("reviews = %+v, want one review rated 4", reviews)
	}
}

func TestSubmitReview_RepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewReviewService(&fakeReviewRepo{err: boom}, fakeItems{10: {ID: 10}})

	_, err := svc.SubmitReview(context.Background(), 1, 10, 3)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
