package shopping

// Log messages
const (
	LogMsgItemAdded          = "Shopping item added"
	LogMsgItemUpdated        = "Shopping item updated"
	LogMsgItemToggled        = "Shopping item toggled"
	LogMsgItemRemoved        = "Shopping item removed"
	LogMsgCompletedCleared   = "Completed shopping items cleared"
	LogMsgInvalidItem        = "Invalid shopping item"
	LogMsgIngredientsMerged  = "Recipe ingredients merged into shopping list"
	LogMsgIngredientsSkipped = "Recipe ingredients already on shopping list"
)

// Error wrap messages
const (
	ErrMsgListItemsFailed     = "failed to list shopping items"
	ErrMsgAddItemFailed       = "failed to add shopping item"
	ErrMsgUpdateItemFailed    = "failed to update shopping item"
	ErrMsgToggleItemFailed    = "failed to toggle shopping item"
	ErrMsgRemoveItemFailed    = "failed to remove shopping item"
	ErrMsgClearCompleteFailed = "failed to clear completed shopping items"
	ErrMsgMergeFailed         = "failed to merge recipe ingredients"
)
