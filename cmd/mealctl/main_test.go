package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMealctl_SQLiteLifecycle(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "mealctl.db"))
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Equal(t, "seeded 6 recipes, 6 planned meals, 7 shopping items\n", out)

	// A second run finds everything in place
	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0 recipes")

	out, err = run(t, "week", "--date", "2025-05-21")
	require.NoError(t, err)
	assert.Contains(t, out, "Wed 2025-05-21")
	assert.Contains(t, out, "Greek Salad")

	out, err = run(t, "shopping")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry Goods\n  [ ] Pasta")
	assert.Contains(t, out, "[x] Olive oil")

	out, err = run(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "true")
}

func TestMealctl_SeedRejectsMemory(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")

	_, err := run(t, "seed")
	assert.ErrorContains(t, err, "persistent store")

	_, err = run(t, "migrate", "up")
	assert.Error(t, err)
}

func TestMealctl_WeekOnDemoMemory(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "week", "--date", "2025-05-22")
	require.NoError(t, err)
	assert.Contains(t, out, "Chicken")
}
