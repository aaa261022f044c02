package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgUnsupportedDialect      = "unsupported migration dialect"
	ErrMsgMigrationSource         = "failed to open migration source"
	ErrMsgMigrationProvider       = "failed to create migration provider"
	ErrMsgMigrationFailed         = "failed to apply migrations"
	ErrMsgMigrationStatus         = "failed to read migration status"
	ErrMsgRollbackFailed          = "failed to roll back migration"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
	LogMsgMigrationRolledBack             = "Migration rolled back"
)
