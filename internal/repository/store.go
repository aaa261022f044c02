package repository

//go:generate go run github.com/vektra/mockery/v2 --config ../../.mockery.yaml

import "context"

// Store bundles the repositories of one storage driver.
type Store interface {
	Recipes() Recipe
	MealPlans() MealPlan
	Shopping() Shopping
	// Ping checks that the backing storage is reachable
	Ping(ctx context.Context) error
	Close() error
}
