package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"curatorMarket/domain"
	"curatorMarket/pkg/logger"
)

// CategoryRepository contract interface
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id uint64) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// ItemRepository contract interface
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id uint64) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
}

type catalogService struct {
	categoryRepo CategoryRepository
	itemRepo     ItemRepository
}

func NewCatalogService(categoryRepo CategoryRepository, itemRepo ItemRepository) *catalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

func (s *catalogService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all categories", err)
		return nil, err
	}

	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		logger.Error("Invalid category data: name is required")
		return nil, errors.New("category name is required")
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.Error("failed to create new category", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info("category created successfully", "category_id", category.CategoryID)

	return category, nil
}

func (s *catalogService) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all items")
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all items", err)
		return nil, err
	}

	return items, nil
}

func (s *catalogService) GetItemByID(ctx context.Context, id uint64) (domain.Item, error) {
	if id == 0 {
		logger.Error("invalid item id")
		return domain.Item{}, errors.New("invalid item id")
	}

	if err := ctx.Err(); err != nil {
		return domain.Item{}, fmt.Errorf("context error: %w", err)
	}

	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find item by id", err)
		return domain.Item{}, err
	}

	return item, nil
}

func (s *catalogService) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if strings.TrimSpace(item.ItemName) == "" {
		logger.Error("Invalid item data: item name is required")
		return nil, errors.New("item name is required")
	}

	if item.Price <= 0 {
		logger.Error("Invalid item data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if _, err := s.categoryRepo.FindByID(ctx, item.CategoryID); err != nil {
		logger.Error("Invalid item data: category not found", err)
		return nil, errors.New("category not found")
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		logger.Error("failed to create new item", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	logger.Info("item created successfully", "item_id", item.ID, "category_id", item.CategoryID)

	return item, nil
}
