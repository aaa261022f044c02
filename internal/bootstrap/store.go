package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	// database/sql driver "pgx"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/FreshMeal_Go/internal/config"
	"github.com/osse101/FreshMeal_Go/internal/database"
	"github.com/osse101/FreshMeal_Go/internal/database/memory"
	"github.com/osse101/FreshMeal_Go/internal/database/postgres"
	"github.com/osse101/FreshMeal_Go/internal/database/sqlite"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// StoreOptions controls what OpenStore does after connecting
type StoreOptions struct {
	// Migrate applies pending schema migrations on the SQL drivers
	Migrate bool
	// SeedDemo loads the demo data into a memory store
	SeedDemo bool
}

// OpenStore connects the driver named by cfg.StoreDriver
func OpenStore(ctx context.Context, cfg *config.Config, opts StoreOptions) (repository.Store, error) {
	log := logger.FromContext(ctx)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		store := memory.NewStore()
		if opts.SeedDemo {
			if err := store.Seed(ctx); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgSeedFailed, err)
			}
			log.Info(LogMsgDemoDataSeeded)
		}
		log.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
		return store, nil

	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStoreFailed, err)
		}
		store := postgres.NewStore(pool)
		if opts.Migrate {
			if err := migrateStore(ctx, store); err != nil {
				_ = store.Close()
				return nil, err
			}
		}
		logSeedSkipped(ctx, opts)
		log.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
		return store, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStoreFailed, err)
		}
		if opts.Migrate {
			if err := migrateStore(ctx, store); err != nil {
				_ = store.Close()
				return nil, err
			}
		}
		logSeedSkipped(ctx, opts)
		log.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return store, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StoreDriver)
}

type migrator interface {
	Migrate(ctx context.Context) (int64, error)
}

func migrateStore(ctx context.Context, m migrator) error {
	version, err := m.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrateFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgMigrationsApplied, "version", version)
	return nil
}

func logSeedSkipped(ctx context.Context, opts StoreOptions) {
	if opts.SeedDemo {
		logger.FromContext(ctx).Warn(LogMsgSeedSkipped)
	}
}

const pgxDriverName = "pgx"

// OpenSQL returns a database/sql handle and migration dialect for the
// configured SQL driver. The caller must Close the handle.
func OpenSQL(ctx context.Context, cfg *config.Config) (*sql.DB, database.Dialect, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := sql.Open(pgxDriverName, cfg.GetDBConnString())
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", ErrMsgOpenSQLFailed, err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, "", fmt.Errorf("%s: %w", ErrMsgOpenSQLFailed, err)
		}
		return db, database.DialectPostgres, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", ErrMsgOpenSQLFailed, err)
		}
		return store.DB(), database.DialectSQLite, nil

	case config.DriverMemory:
		return nil, "", fmt.Errorf("%s", ErrMsgNoSQLForMemory)
	}
	return nil, "", fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StoreDriver)
}
