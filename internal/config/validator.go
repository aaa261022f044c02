package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validate checks that the loaded values are usable together
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		var missing []string
		for key, value := range map[string]string{
			EnvDBUser: c.DBUser,
			EnvDBHost: c.DBHost,
			EnvDBPort: c.DBPort,
			EnvDBName: c.DBName,
		} {
			if value == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			problems = append(problems, fmt.Sprintf("postgres driver requires %s", strings.Join(missing, ", ")))
		}
		if c.DBMaxConns <= 0 {
			problems = append(problems, "DB_MAX_CONNS must be positive")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "sqlite driver requires SQLITE_PATH")
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE_DRIVER must be one of memory, postgres, sqlite, got %q", c.StoreDriver))
	}

	if c.DefaultUserID <= 0 {
		problems = append(problems, "DEFAULT_USER_ID must be positive")
	}
	if c.RecipeCacheSize <= 0 {
		problems = append(problems, "RECIPE_CACHE_SIZE must be positive")
	}
	if c.RecipeCacheTTL <= 0 {
		problems = append(problems, "RECIPE_CACHE_TTL must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Warnings reports non-fatal issues such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StoreDriver == DriverPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.APIKey == "" && c.Environment == "prod" {
		warnings = append(warnings, "API_KEY is not set - the API is unauthenticated")
	}

	return warnings
}
