// Package postgres implements the repositories on PostgreSQL through pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/FreshMeal_Go/internal/database"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// Store bundles the PostgreSQL repositories over one pool
type Store struct {
	pool      *pgxpool.Pool
	recipes   *RecipeRepository
	mealPlans *MealPlanRepository
	shopping  *ShoppingRepository
}

var _ repository.Store = (*Store)(nil)

// NewStore wraps pool. The store owns the pool and closes it on Close.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:      pool,
		recipes:   NewRecipeRepository(pool),
		mealPlans: NewMealPlanRepository(pool),
		shopping:  NewShoppingRepository(pool),
	}
}

func (s *Store) Recipes() repository.Recipe     { return s.recipes }
func (s *Store) MealPlans() repository.MealPlan { return s.mealPlans }
func (s *Store) Shopping() repository.Shopping  { return s.shopping }

// Ping checks the pool can reach the server
func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close releases the pool
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Migrate applies the embedded postgres migrations through a database/sql view of the pool
func (s *Store) Migrate(ctx context.Context) (int64, error) {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()
	return database.Migrate(ctx, db, database.DialectPostgres)
}
