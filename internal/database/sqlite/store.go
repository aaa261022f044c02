// Package sqlite implements the repositories on an embedded SQLite file
// through modernc.org/sqlite, which needs no cgo.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/osse101/FreshMeal_Go/internal/database"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// Store bundles the SQLite repositories over one handle
type Store struct {
	db        *sql.DB
	recipes   *RecipeRepository
	mealPlans *MealPlanRepository
	shopping  *ShoppingRepository
}

var _ repository.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path with foreign keys on.
// A single connection serializes writers, which SQLite requires anyway.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := "file:" + path + "?" + url.Values{
		"_pragma": {"foreign_keys(1)", "busy_timeout(5000)", "journal_mode(WAL)"},
	}.Encode()

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgOpenedDatabase, "path", path)
	return NewStore(db), nil
}

// NewStore wraps db. The store owns db and closes it on Close.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		recipes:   NewRecipeRepository(db),
		mealPlans: NewMealPlanRepository(db),
		shopping:  NewShoppingRepository(db),
	}
}

func (s *Store) Recipes() repository.Recipe     { return s.recipes }
func (s *Store) MealPlans() repository.MealPlan { return s.mealPlans }
func (s *Store) Shopping() repository.Shopping  { return s.shopping }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the handle for migration tooling
func (s *Store) DB() *sql.DB { return s.db }

// Migrate applies the embedded sqlite migrations
func (s *Store) Migrate(ctx context.Context) (int64, error) {
	return database.Migrate(ctx, s.db, database.DialectSQLite)
}
