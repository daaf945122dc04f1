package customer

import (
	"context"
	"errors"
	"testing"

	"curatorMarket/domain"

	"github.com/go-playground/validator/v10"
)

type fakeCustomerRepo struct {
	customers map[uint]domain.Customer
	next      uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uint]domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	f.next++
	c.ID = f.next
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uint) (domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindCurators(_ context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	for id := uint(1); id <= f.next; id++ {
		if c, ok := f.customers[id]; ok && c.IsCurator {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) SetCurator(_ context.Context, id uint, isCurator bool) error {
	c, ok := f.customers[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.IsCurator = isCurator
	f.customers[id] = c
	return nil
}

func TestCreateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.Customer
		wantErr  bool
		wantRole string
	}{
		{name: "defaults role", in: domain.Customer{FullName: "Ana", Email: "ana@example.com"}, wantRole: RoleCustomer},
		{name: "admin", in: domain.Customer{FullName: "Bo", Email: "bo@example.com", Role: RoleAdmin}, wantRole: RoleAdmin},
		{name: "bad email", in: domain.Customer{FullName: "Cy", Email: "nope"}, wantErr: true},
		{name: "blank name", in: domain.Customer{FullName: " ", Email: "d@example.com"}, wantErr: true},
		{name: "unknown role", in: domain.Customer{FullName: "Ed", Email: "ed@example.com", Role: "root"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCustomerService(newFakeCustomerRepo(), validator.New())
			in := tt.in

			got, err := svc.CreateCustomer(context.Background(), &in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Role != tt.wantRole || got.ID == 0 {
				t.Fatalf("unexpected customer %+v", got)
			}
		})
	}
}

func TestSetCurator(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo, validator.New())
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, &domain.Customer{FullName: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.SetCurator(ctx, c.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.IsCurator {
		t.Fatal("expected curator flag set")
	}

	curators, err := svc.GetCurators(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(curators) != 1 || curators[0].ID != c.ID {
		t.Fatalf("curators = %+v", curators)
	}

	if _, err := svc.SetCurator(ctx, 999, true); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}
