package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

type slotRequest struct {
	Slot string `json:"slot" validate:"required,mealslot"`
	Day  string `json:"day" validate:"isodate"`
}

func TestValidator_MealSlot(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		slot    string
		wantErr bool
	}{
		{"breakfast", "breakfast", false},
		{"mixed case", "Dinner", false},
		{"unknown slot", "brunch", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(slotRequest{Slot: tt.slot})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ISODate(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{"valid", "2025-05-21", false},
		{"leap day", "2024-02-29", false},
		{"empty is allowed", "", false},
		{"not a leap year", "2025-02-29", true},
		{"day first", "21-05-2025", true},
		{"with time", "2025-05-21T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(slotRequest{Slot: "lunch", Day: tt.day})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ShoppingCategory(t *testing.T) {
	v := GetValidator()

	for _, c := range domain.ShoppingCategories {
		assert.NoError(t, v.ValidateStruct(AddShoppingItemRequest{Name: "x", Category: strings.ToUpper(c)}), c)
	}
	assert.NoError(t, v.ValidateStruct(AddShoppingItemRequest{Name: "x"}), "blank maps to Other")
	assert.Error(t, v.ValidateStruct(AddShoppingItemRequest{Name: "x", Category: "Spices"}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(AddPlannedMealRequest{
		PlanID:     1,
		MealTypeID: 2,
		DayDate:    "tomorrow",
		Servings:   -1,
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["recipeId"])
	assert.Equal(t, domain.ErrMsgInvalidDate, fields["dayDate"])
	assert.Contains(t, fields["servings"], "0")
	assert.NotContains(t, fields, "planId")

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
