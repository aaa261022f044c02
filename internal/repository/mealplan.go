package repository

import (
	"context"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

// MealPlan defines the interface for plan and planned meal persistence
type MealPlan interface {
	ListMealTypes(ctx context.Context) ([]domain.MealType, error)

	// GetPlan returns nil, nil when the plan does not exist
	GetPlan(ctx context.Context, planID int64) (*domain.Plan, error)
	// GetDefaultPlan returns nil, nil when the user has no default plan
	GetDefaultPlan(ctx context.Context, userID int64) (*domain.Plan, error)
	// EnsureDefaultPlan returns the user's default plan, creating it when missing
	EnsureDefaultPlan(ctx context.Context, userID int64, name string) (*domain.Plan, error)

	// GetPlannedMeal returns nil, nil when the slot was never set
	GetPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (*domain.PlannedMeal, error)
	// ListPlanEntries returns every entry of a plan in [start, end], cleared ones included
	ListPlanEntries(ctx context.Context, planID int64, start, end domain.Date) ([]domain.PlannedMeal, error)
	// ListPlannedMeals joins entries with recipe and meal type names. Only entries with a
	// recipe are returned. A nil start or end lists all dates.
	ListPlannedMeals(ctx context.Context, userID int64, start, end *domain.Date) ([]domain.PlannedMealView, error)
	// UpsertPlannedMeal writes the entry keyed by (plan, date, slot) and fills in ID and CreatedAt
	UpsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) error
	// ClearPlannedMeal nulls the recipe of an existing entry; reports whether a row was touched
	ClearPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (bool, error)
	// DeletePlannedMeal returns domain.ErrPlannedMealNotFound when absent
	DeletePlannedMeal(ctx context.Context, id int64) error
	CountRecipeReferences(ctx context.Context, recipeID string) (int, error)
}
