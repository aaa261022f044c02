package handler

// Client-facing error messages. Storage and internal errors never reach the
// client; they collapse to ErrMsgServerError.
const (
	ErrMsgServerError        = "Server error"
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgValidationFailed   = "Validation failed"
	ErrMsgInvalidDateParam   = "Invalid %s, expected YYYY-MM-DD"
	ErrMsgInvalidIDParam     = "Invalid %s"
	ErrMsgEmptyUpdate        = "No fields to update"
	ErrMsgUnauthorized       = "Invalid or missing API key"
	ErrMsgDatabaseConnection = "database connection failed"

	ErrMsgRecipeNotFound       = "Recipe not found"
	ErrMsgRecipeInUse          = "Recipe is used in meal plans and cannot be deleted"
	ErrMsgDefaultPlanNotFound  = "Default plan not found"
	ErrMsgPlanNotFound         = "Plan not found"
	ErrMsgPlannedMealNotFound  = "Planned meal not found"
	ErrMsgShoppingItemNotFound = "Shopping item not found"
	ErrMsgNotFound             = "Not found"
	ErrMsgConflict             = "Conflict"
)

// Success messages
const (
	MsgPlannedMealRemoved    = "Planned meal removed successfully"
	MsgRecipeDeleted         = "Recipe deleted successfully"
	MsgMealCleared           = "Meal cleared successfully"
	MsgShoppingItemRemoved   = "Shopping item removed successfully"
	MsgCompletedItemsCleared = "Completed items cleared successfully"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request body"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgServiceError     = "Service call failed"
	LogMsgRejectedRequest  = "Request rejected"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
)
