package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// timeLayout is fixed width so stored timestamps sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Error Messages - Connection
const (
	ErrMsgFailedToOpenDatabase = "failed to open sqlite database"
	ErrMsgFailedToPingDatabase = "failed to ping sqlite database"
	ErrMsgInvalidTimestamp     = "invalid timestamp in storage"
	ErrMsgInvalidDate          = "invalid date in storage"
	ErrMsgFailedToEncodeJSON   = "failed to encode column"
	ErrMsgFailedToDecodeJSON   = "failed to decode column"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToQueryRecipes    = "failed to query recipes"
	ErrMsgFailedToGetRecipe       = "failed to get recipe"
	ErrMsgFailedToInsertRecipe    = "failed to insert recipe"
	ErrMsgFailedToUpdateRecipe    = "failed to update recipe"
	ErrMsgFailedToDeleteRecipe    = "failed to delete recipe"
	ErrMsgFailedToCountRecipes    = "failed to count recipes"
	ErrMsgFailedToCountRecipeRefs = "failed to count recipe references"
)

// Error Messages - Meal Plan Operations
const (
	ErrMsgFailedToQueryMealTypes    = "failed to query meal types"
	ErrMsgFailedToGetPlan           = "failed to get plan"
	ErrMsgFailedToEnsurePlan        = "failed to ensure default plan"
	ErrMsgFailedToGetPlannedMeal    = "failed to get planned meal"
	ErrMsgFailedToQueryPlannedMeals = "failed to query planned meals"
	ErrMsgFailedToUpsertPlannedMeal = "failed to upsert planned meal"
	ErrMsgFailedToClearPlannedMeal  = "failed to clear planned meal"
	ErrMsgFailedToDeletePlannedMeal = "failed to delete planned meal"
	ErrMsgInvalidMealType           = "invalid meal type in storage"
)

// Error Messages - Shopping Operations
const (
	ErrMsgFailedToQueryShoppingItems = "failed to query shopping items"
	ErrMsgFailedToGetShoppingItem    = "failed to get shopping item"
	ErrMsgFailedToInsertShoppingItem = "failed to insert shopping item"
	ErrMsgFailedToUpdateShoppingItem = "failed to update shopping item"
	ErrMsgFailedToToggleShoppingItem = "failed to toggle shopping item"
	ErrMsgFailedToDeleteShoppingItem = "failed to delete shopping item"
	ErrMsgFailedToClearShoppingItems = "failed to clear completed shopping items"
)

// Log Messages
const (
	LogMsgOpenedDatabase = "Opened sqlite database"
)
