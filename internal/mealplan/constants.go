package mealplan

// DefaultServings is used when a planned meal is added without servings
const DefaultServings = 1

// Log messages
const (
	LogMsgMealSet            = "Meal set on calendar"
	LogMsgMealCleared        = "Calendar slot cleared"
	LogMsgMealClearNoop      = "Calendar slot was never set"
	LogMsgPlannedMealAdded   = "Planned meal added"
	LogMsgPlannedMealRemoved = "Planned meal removed"
	LogMsgPastDateRejected   = "Meal on past date rejected"
	LogMsgSyncFailed         = "Ingredient merge failed, calendar entry kept"
	LogMsgDanglingRecipe     = "Calendar entry references a missing recipe"
	LogMsgInvalidMealInput   = "Invalid meal plan input"
)

// Error wrap messages
const (
	ErrMsgGetPlanFailed       = "failed to get plan"
	ErrMsgEnsurePlanFailed    = "failed to ensure default plan"
	ErrMsgGetEntryFailed      = "failed to get planned meal"
	ErrMsgListEntriesFailed   = "failed to list planned meals"
	ErrMsgUpsertEntryFailed   = "failed to save planned meal"
	ErrMsgClearEntryFailed    = "failed to clear planned meal"
	ErrMsgDeleteEntryFailed   = "failed to delete planned meal"
	ErrMsgResolveRecipeFailed = "failed to resolve recipe"
	ErrMsgListMealTypesFailed = "failed to list meal types"
)
