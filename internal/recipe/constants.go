package recipe

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgRecipeCreated      = "Recipe created"
	LogMsgRecipeUpdated      = "Recipe updated"
	LogMsgRecipeDeleted      = "Recipe deleted"
	LogMsgRecipeInUse        = "Recipe delete rejected, referenced by meal plan"
	LogMsgInvalidRecipeInput = "Invalid recipe input"
	LogMsgRecipeCacheHit     = "Recipe cache hit"
)

// Error wrap messages
const (
	ErrMsgListRecipesFailed  = "failed to list recipes"
	ErrMsgGetRecipeFailed    = "failed to get recipe"
	ErrMsgCreateRecipeFailed = "failed to create recipe"
	ErrMsgUpdateRecipeFailed = "failed to update recipe"
	ErrMsgDeleteRecipeFailed = "failed to delete recipe"
	ErrMsgCountRefsFailed    = "failed to count recipe references"
	ErrMsgCountRecipesFailed = "failed to count recipes"
)

// Field names reported in validation errors
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldCategory     = "category"
	FieldDifficulty   = "difficulty"
	FieldServings     = "servings"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
)

// Validation messages
const (
	MsgRequired         = "is required"
	MsgServingsNegative = "must be a positive number"
	MsgListEmpty        = "must contain at least one entry"
)

// DefaultServings is used when a recipe is created without servings
const DefaultServings = 1
