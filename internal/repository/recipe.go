package repository

import (
	"context"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	// GetRecipe returns nil, nil when the recipe does not exist
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) error
	// UpdateRecipe replaces every mutable column; returns domain.ErrRecipeNotFound when absent
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	// DeleteRecipe returns domain.ErrRecipeNotFound when absent
	DeleteRecipe(ctx context.Context, id string) error
	CountRecipes(ctx context.Context) (int, error)
}
