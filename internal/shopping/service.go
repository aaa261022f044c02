package shopping

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/metrics"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// Service defines the interface for shopping list operations
type Service interface {
	// List groups items by category, categories alphabetical, items in insertion order
	List(ctx context.Context) ([]domain.CategoryGroup, error)
	ListItems(ctx context.Context) ([]domain.ShoppingItem, error)
	AddItem(ctx context.Context, name, category string) (*domain.ShoppingItem, error)
	UpdateItem(ctx context.Context, id string, update domain.ShoppingItemUpdate) (*domain.ShoppingItem, error)
	ToggleCompleted(ctx context.Context, id string) (*domain.ShoppingItem, error)
	Remove(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) (int, error)
	Counts(ctx context.Context) (domain.ShoppingCounts, error)

	// MergeRecipeIngredients adds every ingredient of recipe not already on the list
	// and returns the inserted items
	MergeRecipeIngredients(ctx context.Context, recipe domain.Recipe) ([]domain.ShoppingItem, error)
}

type service struct {
	repo repository.Shopping
	now  func() time.Time
}

// NewService creates a new shopping list service
func NewService(repo repository.Shopping) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]domain.CategoryGroup, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupByCategory(items), nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.ShoppingItem, error) {
	items, err := s.repo.ListShoppingItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
	}
	return items, nil
}

func (s *service) AddItem(ctx context.Context, name, category string) (*domain.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	name, category, err := normalizeItem(name, category)
	if err != nil {
		log.Warn(LogMsgInvalidItem, "error", err)
		return nil, err
	}

	items := []domain.ShoppingItem{s.newItem(name, category)}
	if err := s.repo.InsertShoppingItems(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAddItemFailed, err)
	}

	metrics.ShoppingItemsAdded.WithLabelValues(domain.ItemSourceManual).Inc()
	log.Info(LogMsgItemAdded, "item_id", items[0].ID, "name", name, "category", category)
	return &items[0], nil
}

func (s *service) UpdateItem(ctx context.Context, id string, update domain.ShoppingItemUpdate) (*domain.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	item, err := s.repo.GetShoppingItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateItemFailed, err)
	}
	if item == nil {
		return nil, domain.ErrShoppingItemNotFound
	}

	name, category := item.Name, item.Category
	if update.Name != nil {
		name = *update.Name
	}
	if update.Category != nil {
		category = *update.Category
	}
	if item.Name, item.Category, err = normalizeItem(name, category); err != nil {
		log.Warn(LogMsgInvalidItem, "item_id", id, "error", err)
		return nil, err
	}
	if update.Completed != nil {
		item.Completed = *update.Completed
	}

	if err := s.repo.UpdateShoppingItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrShoppingItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateItemFailed, err)
	}

	log.Info(LogMsgItemUpdated, "item_id", id)
	return item, nil
}

func (s *service) ToggleCompleted(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	item, err := s.repo.ToggleShoppingItem(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrShoppingItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgToggleItemFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgItemToggled, "item_id", id, "completed", item.Completed)
	return item, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if err := s.repo.DeleteShoppingItem(ctx, id); err != nil {
		if errors.Is(err, domain.ErrShoppingItemNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrMsgRemoveItemFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemRemoved, "item_id", id)
	return nil
}

func (s *service) ClearCompleted(ctx context.Context) (int, error) {
	n, err := s.repo.DeleteCompletedShoppingItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgClearCompleteFailed, err)
	}
	metrics.ShoppingItemsCleared.Add(float64(n))
	logger.FromContext(ctx).Info(LogMsgCompletedCleared, "removed", n)
	return n, nil
}

func (s *service) Counts(ctx context.Context) (domain.ShoppingCounts, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return domain.ShoppingCounts{}, err
	}
	counts := domain.ShoppingCounts{Total: len(items)}
	for _, item := range items {
		if !item.Completed {
			counts.Pending++
		}
	}
	return counts, nil
}

func (s *service) newItem(name, category string) domain.ShoppingItem {
	return domain.ShoppingItem{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		CreatedAt: s.now().UTC(),
	}
}

func normalizeItem(name, category string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", domain.ErrEmptyItemName
	}
	category, err := domain.NormalizeCategory(category)
	if err != nil {
		return "", "", err
	}
	return name, category, nil
}
