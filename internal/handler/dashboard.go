package handler

import (
	"net/http"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
	"github.com/osse101/FreshMeal_Go/internal/recipe"
	"github.com/osse101/FreshMeal_Go/internal/shopping"
)

// HandleDashboard summarizes recipes, this week's plan and the shopping list
// @Summary Dashboard counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func HandleDashboard(recipes recipe.Service, plans mealplan.Service, list shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		recipeCount, err := recipes.Count(ctx)
		if err != nil {
			respondServiceError(w, r, "count recipes", err)
			return
		}
		planned, err := plans.CountWeekMeals(ctx, plans.Today())
		if err != nil {
			respondServiceError(w, r, "count week meals", err)
			return
		}
		counts, err := list.Counts(ctx)
		if err != nil {
			respondServiceError(w, r, "count shopping items", err)
			return
		}

		respondJSON(w, http.StatusOK, domain.Dashboard{
			RecipeCount:      recipeCount,
			MealsPlannedWeek: planned,
			ShoppingPending:  counts.Pending,
			ShoppingTotal:    counts.Total,
		})
	}
}
