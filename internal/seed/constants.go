package seed

// Log messages
const (
	LogMsgSeedApplied       = "Seed data applied"
	LogMsgRecipeExists      = "Seed recipe already present, skipping"
	LogMsgShoppingItemExist = "Seed shopping item already present, skipping"
)

// Error wrap messages
const (
	ErrMsgInvalidDocument  = "invalid seed document"
	ErrMsgDecodeFailed     = "failed to decode seed document"
	ErrMsgUnknownRecipeKey = "plan entry references unknown recipe"
	ErrMsgSeedRecipe       = "failed to seed recipe"
	ErrMsgSeedPlan         = "failed to seed plan"
	ErrMsgSeedShopping     = "failed to seed shopping list"
)
