package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Kinds
	ErrMsgNotFound   = "not found"
	ErrMsgValidation = "validation error"
	ErrMsgConflict   = "conflict"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgRecipeInUse    = "recipe is used in meal plans"

	// Meal plan errors
	ErrMsgPlanNotFound        = "plan not found"
	ErrMsgDefaultPlanNotFound = "default plan not found"
	ErrMsgPlannedMealNotFound = "planned meal not found"
	ErrMsgInvalidMealSlot     = "invalid meal type, must be breakfast, lunch, or dinner"
	ErrMsgPastDate            = "cannot plan meals for past dates"
	ErrMsgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	ErrMsgInvalidServings     = "servings must be a positive number"
	ErrMsgRecipeRequired      = "recipe id is required"

	// Shopping errors
	ErrMsgShoppingItemNotFound = "shopping item not found"
	ErrMsgEmptyItemName        = "item name cannot be empty"
	ErrMsgInvalidCategory      = "invalid shopping category"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Error kinds. Every specific error below wraps exactly one of these so
// callers can branch on the kind with errors.Is.
var (
	ErrNotFound   = errors.New(ErrMsgNotFound)
	ErrValidation = errors.New(ErrMsgValidation)
	ErrConflict   = errors.New(ErrMsgConflict)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Recipe errors
	ErrRecipeNotFound = kindError(ErrNotFound, ErrMsgRecipeNotFound)
	ErrRecipeInUse    = kindError(ErrConflict, ErrMsgRecipeInUse)

	// Meal plan errors
	ErrPlanNotFound        = kindError(ErrNotFound, ErrMsgPlanNotFound)
	ErrDefaultPlanNotFound = kindError(ErrNotFound, ErrMsgDefaultPlanNotFound)
	ErrPlannedMealNotFound = kindError(ErrNotFound, ErrMsgPlannedMealNotFound)
	ErrInvalidMealSlot     = kindError(ErrValidation, ErrMsgInvalidMealSlot)
	ErrPastDate            = kindError(ErrValidation, ErrMsgPastDate)
	ErrInvalidDate         = kindError(ErrValidation, ErrMsgInvalidDate)
	ErrInvalidServings     = kindError(ErrValidation, ErrMsgInvalidServings)
	ErrRecipeRequired      = kindError(ErrValidation, ErrMsgRecipeRequired)

	// Shopping errors
	ErrShoppingItemNotFound = kindError(ErrNotFound, ErrMsgShoppingItemNotFound)
	ErrEmptyItemName        = kindError(ErrValidation, ErrMsgEmptyItemName)
	ErrInvalidCategory      = kindError(ErrValidation, ErrMsgInvalidCategory)

	// Validation errors
	ErrInvalidInput = kindError(ErrValidation, ErrMsgInvalidInput)
)

// specificError is a named error that also matches its kind under errors.Is.
type specificError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &specificError{kind: kind, msg: msg}
}

func (e *specificError) Error() string { return e.msg }

func (e *specificError) Unwrap() error { return e.kind }

// ValidationError reports an invalid field on an input record.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Message returns the client-safe message of the first named domain error in
// err's chain, or "" when err carries none.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var se *specificError
	if errors.As(err, &se) {
		return se.msg
	}
	return ""
}
