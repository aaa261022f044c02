package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Storage
	StoreDriver       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string
	SeedDemoData      bool

	APIKey         string   // optional; enables X-API-Key checks when set
	TrustedProxies []string // CIDRs or IPs allowed to set X-Forwarded-For

	// Planner behavior
	PastDatePolicy domain.PastDatePolicy
	Location       *time.Location
	DefaultUserID  int64

	RecipeCacheSize int
	RecipeCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		StoreDriver: strings.ToLower(getEnv(EnvStoreDriver, DriverMemory)),
		DBUser:      getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvDBPort, DefaultDBPort),
		DBName:      getEnv(EnvDBName, DefaultDBName),
		SQLitePath:  getEnv(EnvSQLitePath, DefaultSQLitePath),
		APIKey:      getEnv(EnvAPIKey, ""),
	}

	var err error
	if cfg.Port, err = getEnvAsInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdle, err = getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.SeedDemoData, err = getEnvAsBool(EnvSeedDemoData, false); err != nil {
		return nil, err
	}
	if cfg.RecipeCacheSize, err = getEnvAsInt(EnvRecipeCacheSize, DefaultRecipeCacheSize); err != nil {
		return nil, err
	}
	if cfg.RecipeCacheTTL, err = getEnvAsDuration(EnvRecipeCacheTTL, DefaultRecipeCacheTTL); err != nil {
		return nil, err
	}

	userID, err := getEnvAsInt(EnvDefaultUserID, DefaultUserID)
	if err != nil {
		return nil, err
	}
	cfg.DefaultUserID = int64(userID)

	if cfg.PastDatePolicy, err = domain.ParsePastDatePolicy(getEnv(EnvPastDatePolicy, "")); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPastDatePolicy, err)
	}

	tz := getEnv(EnvTimezone, DefaultTimezone)
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", EnvTimezone, tz, err)
	}

	cfg.TrustedProxies = splitList(getEnv(EnvTrustedProxies, ""))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
