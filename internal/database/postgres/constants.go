package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a planned meal points at a missing plan or recipe
	PgErrorCodeForeignKeyViolation = "23503"
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
