package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvStoreDriver       = "STORE_DRIVER"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdle     = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvSQLitePath        = "SQLITE_PATH"
	EnvSeedDemoData      = "SEED_DEMO_DATA"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvPastDatePolicy    = "PAST_DATE_POLICY"
	EnvTimezone          = "TIMEZONE"
	EnvDefaultUserID     = "DEFAULT_USER_ID"
	EnvRecipeCacheSize   = "RECIPE_CACHE_SIZE"
	EnvRecipeCacheTTL    = "RECIPE_CACHE_TTL"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "freshmeal"
	DefaultVersion     = "dev"

	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "freshmeal"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdle     = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultSQLitePath        = "freshmeal.db"

	DefaultTimezone = "UTC"
	DefaultUserID   = 1

	DefaultRecipeCacheSize = 256
	DefaultRecipeCacheTTL  = 5 * time.Minute
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
