package bootstrap

// Log messages for startup
const (
	LogMsgStarting          = "Starting FreshMeal"
	LogMsgConfigWarning     = "Configuration warning"
	LogMsgConfigLoaded      = "Configuration loaded"
	LogMsgStoreOpened       = "Store opened"
	LogMsgMigrationsApplied = "Schema migrations applied"
	LogMsgDemoDataSeeded    = "Demo data seeded"
	LogMsgSeedSkipped       = "SEED_DEMO_DATA only applies to the memory driver, skipping"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingStore         = "Closing store"
	LogMsgStoreCloseFailed     = "Store close failed"
	LogMsgServerStopped        = "Server stopped"
)

// Error wrap messages
const (
	ErrMsgUnknownDriver   = "unknown store driver"
	ErrMsgOpenStoreFailed = "failed to open store"
	ErrMsgMigrateFailed   = "failed to migrate store"
	ErrMsgSeedFailed      = "failed to seed demo data"
	ErrMsgOpenSQLFailed   = "failed to open SQL connection"
	ErrMsgNoSQLForMemory  = "the memory driver has no schema to migrate"
)
