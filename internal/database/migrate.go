package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/osse101/FreshMeal_Go/internal/logger"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Dialect selects the migration set
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// MigrationStatus is one row of `mealctl migrate status`
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func newProvider(db *sql.DB, dialect Dialect) (*goose.Provider, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDialect, dialect)
	}

	sub, err := fs.Sub(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationSource, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationProvider, err)
	}
	return provider, nil
}

// Migrate applies every pending migration and returns the resulting version
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) (int64, error) {
	log := logger.FromContext(ctx)

	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgMigrationStatus, err)
	}
	if len(results) == 0 {
		log.Info(LogMsgMigrationsUpToDate, "version", version)
	}
	return version, nil
}

// MigrateDown rolls back the most recent migration
func MigrateDown(ctx context.Context, db *sql.DB, dialect Dialect) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRollbackFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgMigrationRolledBack, "version", result.Source.Version, "path", result.Source.Path)
	return nil
}

// Status lists every known migration and whether it has been applied
func Status(ctx context.Context, db *sql.DB, dialect Dialect) ([]MigrationStatus, error) {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationStatus, err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
