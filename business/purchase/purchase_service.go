package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"
)

var ErrInvalidPurchase = errors.New("invalid purchase")

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	FindByCustomer(ctx context.Context, customerID uint) ([]domain.Purchase, error)
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Item, error)
}

type PurchaseService struct {
	purchaseRepo PurchaseRepository
	itemRepo     ItemRepository
}

func NewPurchaseService(purchaseRepo PurchaseRepository, itemRepo ItemRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
	}
}

// CreatePurchase records a purchase. Line items for the same item are merged
// into one line.
func (s *PurchaseService) CreatePurchase(ctx context.Context, customerID uint, lines []domain.LineItem) (domain.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return domain.Purchase{}, fmt.Errorf("context error: %w", err)
	}

	if len(lines) == 0 {
		return domain.Purchase{}, fmt.Errorf("%w: at least one line item is required", ErrInvalidPurchase)
	}

	merged := make([]domain.LineItem, 0, len(lines))
	pos := make(map[uint64]int, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return domain.Purchase{}, fmt.Errorf("%w: quantity for item %d must be greater than 0", ErrInvalidPurchase, l.ItemID)
		}
		if i, ok := pos[l.ItemID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		if _, err := s.itemRepo.FindByID(ctx, l.ItemID); err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				return domain.Purchase{}, fmt.Errorf("item %d: %w", l.ItemID, err)
			}
			logger.Error("failed to look up purchased item", err)
			return domain.Purchase{}, fmt.Errorf("failed to look up item: %w", err)
		}
		pos[l.ItemID] = len(merged)
		merged = append(merged, domain.LineItem{ItemID: l.ItemID, Quantity: l.Quantity})
	}

	purchase := domain.Purchase{
		CustomerID: customerID,
		LineItems:  merged,
		CreatedAt:  time.Now(),
	}

	if err := s.purchaseRepo.Create(ctx, &purchase); err != nil {
		logger.Error("failed to create purchase", err)
		return domain.Purchase{}, fmt.Errorf("failed to create purchase: %w", err)
	}

	logger.Info("purchase created", "purchase_id", purchase.ID, "customer_id", customerID, "lines", len(merged))

	return purchase, nil
}

func (s *PurchaseService) GetCustomerPurchases(ctx context.Context, customerID uint) ([]domain.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.purchaseRepo.FindByCustomer(ctx, customerID)
}
