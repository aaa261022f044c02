package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
)

// SetMealRequest is the body of PUT /api/calendar/{date}/{slot}
type SetMealRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
}

// HandleGetWeek returns the Sunday-first week containing the given date
// @Summary Get calendar week
// @Tags calendar
// @Produce json
// @Param date query string false "Any day of the week, YYYY-MM-DD (default today)"
// @Success 200 {object} domain.WeekPlan
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/calendar/week [get]
func HandleGetWeek(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := optionalDateParam(w, r, "date")
		if !ok {
			return
		}
		day := svc.Today()
		if ref != nil {
			day = *ref
		}

		week, err := svc.GetWeek(r.Context(), day)
		if err != nil {
			respondServiceError(w, r, "get week", err)
			return
		}
		respondJSON(w, http.StatusOK, week)
	}
}

// slotParams reads the {date} and {slot} path parameters
func slotParams(w http.ResponseWriter, r *http.Request) (domain.Date, domain.MealSlot, bool) {
	date, ok := dateURLParam(w, r, "date")
	if !ok {
		return domain.Date{}, "", false
	}
	slot, err := domain.ParseMealSlot(chi.URLParam(r, "slot"))
	if err != nil {
		respondServiceError(w, r, "parse meal slot", err)
		return domain.Date{}, "", false
	}
	return date, slot, true
}

// HandleSetMeal places a recipe in a calendar slot and merges its ingredients
// into the shopping list
// @Summary Set meal
// @Tags calendar
// @Accept json
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param slot path string true "breakfast, lunch or dinner"
// @Param request body SetMealRequest true "Recipe to plan"
// @Success 200 {object} domain.SetMealResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/calendar/{date}/{slot} [put]
func HandleSetMeal(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, slot, ok := slotParams(w, r)
		if !ok {
			return
		}

		var req SetMealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set meal"); err != nil {
			return
		}

		result, err := svc.SetMeal(r.Context(), date, slot, req.RecipeID)
		if err != nil {
			respondServiceError(w, r, "set meal", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleClearMeal empties a calendar slot. The shopping list is left alone.
// @Summary Clear meal
// @Tags calendar
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param slot path string true "breakfast, lunch or dinner"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/calendar/{date}/{slot} [delete]
func HandleClearMeal(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, slot, ok := slotParams(w, r)
		if !ok {
			return
		}

		if err := svc.ClearMeal(r.Context(), date, slot); err != nil {
			respondServiceError(w, r, "clear meal", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMealCleared})
	}
}
