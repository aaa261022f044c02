package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	version, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var names []string
	rows, err := db.QueryContext(ctx, "SELECT name FROM meal_types ORDER BY id")
	require.NoError(t, err)
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, names)

	statuses, err := Status(ctx, db, DialectSQLite)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Applied)
	assert.Equal(t, int64(1), statuses[0].Version)

	again, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, version, again, "migrating twice is a no-op")
}

func TestMigrateDown_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	_, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	require.NoError(t, MigrateDown(ctx, db, DialectSQLite))

	statuses, err := Status(ctx, db, DialectSQLite)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Applied)

	_, err = db.ExecContext(ctx, "SELECT 1 FROM recipes")
	assert.Error(t, err, "tables are gone after rolling back")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	_, err := Migrate(context.Background(), openSQLite(t), Dialect("mysql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnsupportedDialect)
}
