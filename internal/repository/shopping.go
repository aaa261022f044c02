package repository

import (
	"context"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

// Shopping defines the interface for shopping list persistence
type Shopping interface {
	// ListShoppingItems returns items in insertion order
	ListShoppingItems(ctx context.Context) ([]domain.ShoppingItem, error)
	// GetShoppingItem returns nil, nil when the item does not exist
	GetShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error)
	// InsertShoppingItems stores the items in order and assigns Seq and CreatedAt
	InsertShoppingItems(ctx context.Context, items []domain.ShoppingItem) error
	// UpdateShoppingItem returns domain.ErrShoppingItemNotFound when absent
	UpdateShoppingItem(ctx context.Context, item *domain.ShoppingItem) error
	// ToggleShoppingItem flips the completed flag in one step and returns the new state
	ToggleShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error)
	// DeleteShoppingItem returns domain.ErrShoppingItemNotFound when absent
	DeleteShoppingItem(ctx context.Context, id string) error
	DeleteCompletedShoppingItems(ctx context.Context) (int, error)
}
