package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MealSlot is one of the fixed meals of a day.
type MealSlot string

const (
	MealSlotBreakfast MealSlot = "breakfast"
	MealSlotLunch     MealSlot = "lunch"
	MealSlotDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in display order.
var MealSlots = []MealSlot{MealSlotBreakfast, MealSlotLunch, MealSlotDinner}

// Meal type ids as stored in the meal_types table.
const (
	MealTypeIDBreakfast = 1
	MealTypeIDLunch     = 2
	MealTypeIDDinner    = 3
)

// ParseMealSlot accepts a slot name in any case.
func ParseMealSlot(s string) (MealSlot, error) {
	switch MealSlot(strings.ToLower(strings.TrimSpace(s))) {
	case MealSlotBreakfast:
		return MealSlotBreakfast, nil
	case MealSlotLunch:
		return MealSlotLunch, nil
	case MealSlotDinner:
		return MealSlotDinner, nil
	}
	return "", ErrInvalidMealSlot
}

// MealSlotFromTypeID maps a meal type id to its slot.
func MealSlotFromTypeID(id int) (MealSlot, error) {
	switch id {
	case MealTypeIDBreakfast:
		return MealSlotBreakfast, nil
	case MealTypeIDLunch:
		return MealSlotLunch, nil
	case MealTypeIDDinner:
		return MealSlotDinner, nil
	}
	return "", ErrInvalidMealSlot
}

// TypeID returns the meal type id of the slot, or 0 for an unknown slot.
func (s MealSlot) TypeID() int {
	switch s {
	case MealSlotBreakfast:
		return MealTypeIDBreakfast
	case MealSlotLunch:
		return MealTypeIDLunch
	case MealSlotDinner:
		return MealTypeIDDinner
	}
	return 0
}

// Title returns the display name of the slot, e.g. "Breakfast".
func (s MealSlot) Title() string {
	return cases.Title(language.English).String(string(s))
}

// MealType is the listing form of a slot.
type MealType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MealTypes returns the fixed meal types ordered by id.
func MealTypes() []MealType {
	out := make([]MealType, len(MealSlots))
	for i, slot := range MealSlots {
		out[i] = MealType{ID: slot.TypeID(), Name: slot.Title()}
	}
	return out
}

// DefaultPlanName names the plan created on the first calendar write.
const DefaultPlanName = "Default Plan"

// Plan groups planned meals for a user.
type Plan struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlannedMeal is one calendar entry. A nil RecipeID means the slot was
// explicitly cleared; a missing row means it was never set.
type PlannedMeal struct {
	ID        int64     `json:"id"`
	PlanID    int64     `json:"planId"`
	RecipeID  *string   `json:"recipeId"`
	Slot      MealSlot  `json:"mealType"`
	Date      Date      `json:"dayDate"`
	Servings  int       `json:"servings"`
	CreatedAt time.Time `json:"createdAt"`
}

// Cleared reports whether the entry exists but holds no recipe.
func (m PlannedMeal) Cleared() bool {
	return m.RecipeID == nil
}

// PlannedMealView is a planned meal joined with display names.
type PlannedMealView struct {
	ID           int64  `json:"id"`
	PlanID       int64  `json:"planId"`
	RecipeID     string `json:"recipeId"`
	RecipeName   string `json:"recipeName"`
	MealTypeID   int    `json:"mealTypeId"`
	MealTypeName string `json:"mealTypeName"`
	Date         Date   `json:"dayDate"`
	Servings     int    `json:"servings"`
}

// SlotEntry is a resolved calendar cell.
type SlotEntry struct {
	Slot          MealSlot `json:"slot"`
	PlannedMealID *int64   `json:"plannedMealId"`
	Recipe        *Recipe  `json:"recipe"`
}

// DayPlan holds the three slots of a day in display order.
type DayPlan struct {
	Date  Date        `json:"date"`
	Meals []SlotEntry `json:"meals"`
}

// WeekPlan is a Sunday-first week.
type WeekPlan struct {
	Start Date      `json:"start"`
	End   Date      `json:"end"`
	Days  []DayPlan `json:"days"`
}

// Meal returns the entry for (date, slot) or nil when the date is outside the week.
func (w *WeekPlan) Meal(date Date, slot MealSlot) *SlotEntry {
	for i := range w.Days {
		if !w.Days[i].Date.Equal(date) {
			continue
		}
		for j := range w.Days[i].Meals {
			if w.Days[i].Meals[j].Slot == slot {
				return &w.Days[i].Meals[j]
			}
		}
	}
	return nil
}

// SetMealResult reports the stored entry and what the ingredient merge did.
type SetMealResult struct {
	Entry      PlannedMeal    `json:"entry"`
	AddedItems []ShoppingItem `json:"addedItems"`
	SyncFailed bool           `json:"syncFailed"`
}

// Dashboard summarizes the current state for the landing page.
type Dashboard struct {
	RecipeCount      int `json:"recipeCount"`
	MealsPlannedWeek int `json:"mealsPlannedThisWeek"`
	ShoppingPending  int `json:"shoppingPending"`
	ShoppingTotal    int `json:"shoppingTotal"`
}

// PastDatePolicy controls whether meals may be set on days before today.
type PastDatePolicy string

const (
	// PastDateReject refuses any SetMeal on a past day
	PastDateReject PastDatePolicy = "reject"
	// PastDateRejectNew refuses creating entries on a past day but allows overwriting them
	PastDateRejectNew PastDatePolicy = "reject_new"
	// PastDateAllow performs no check
	PastDateAllow PastDatePolicy = "allow"
)

// ParsePastDatePolicy resolves a policy name. Blank input maps to PastDateReject.
func ParsePastDatePolicy(s string) (PastDatePolicy, error) {
	switch p := PastDatePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PastDateReject, nil
	case PastDateReject, PastDateRejectNew, PastDateAllow:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown past date policy %q", ErrInvalidInput, s)
}

// PlannedMealInput is the legacy planner request for adding a meal to a plan.
type PlannedMealInput struct {
	PlanID     int64
	RecipeID   string
	MealTypeID int
	Date       Date
	Servings   int
}
