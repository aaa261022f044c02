package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		result, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		result, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, 100, result)
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		result, err := getEnvAsInt("TEST_INT_VAR", 42)
		require.NoError(t, err)
		assert.Equal(t, -10, result)
	})

	t.Run("errors for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		_, err := getEnvAsInt("TEST_INT_VAR", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_INT_VAR")
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"empty uses default", "", 5 * time.Minute, false},
		{"minutes", "10m", 10 * time.Minute, false},
		{"seconds", "30s", 30 * time.Second, false},
		{"complex", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second, false},
		{"milliseconds", "500ms", 500 * time.Millisecond, false},
		{"invalid", "not-a-duration", 0, true},
		{"number without unit", "100", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			got, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "1")
	got, err := getEnvAsBool("TEST_BOOL_VAR", false)
	require.NoError(t, err)
	assert.True(t, got)

	t.Setenv("TEST_BOOL_VAR", "")
	got, err = getEnvAsBool("TEST_BOOL_VAR", true)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
