package handler

import (
	"net/http"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
)

// AddPlannedMealRequest is the body of POST /api/meal-planner/planned-meals
type AddPlannedMealRequest struct {
	PlanID     int64  `json:"planId" validate:"required,gt=0"`
	RecipeID   string `json:"recipeId" validate:"required"`
	MealTypeID int    `json:"mealTypeId" validate:"required,gt=0"`
	DayDate    string `json:"dayDate" validate:"required,isodate"`
	Servings   int    `json:"servings" validate:"gte=0"`
}

// PlannedMealResponse is the stored entry in the planner's wire shape
type PlannedMealResponse struct {
	ID         int64       `json:"id"`
	PlanID     int64       `json:"planId"`
	RecipeID   *string     `json:"recipeId"`
	MealTypeID int         `json:"mealTypeId"`
	DayDate    domain.Date `json:"dayDate"`
	Servings   int         `json:"servings"`
}

// HandleListMealTypes lists breakfast, lunch and dinner with their ids
// @Summary List meal types
// @Tags meal-planner
// @Produce json
// @Success 200 {array} domain.MealType
// @Failure 500 {object} ErrorResponse
// @Router /api/meal-planner/meal-types [get]
func HandleListMealTypes(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListMealTypes(r.Context())
		if err != nil {
			respondServiceError(w, r, "list meal types", err)
			return
		}
		respondJSON(w, http.StatusOK, types)
	}
}

// HandleListPlannedMeals lists a user's planned meals
// @Summary List planned meals
// @Description Both dates bound the range inclusively; when either is missing every date is listed
// @Tags meal-planner
// @Produce json
// @Param userId path int true "User ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {array} domain.PlannedMealView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/meal-planner/plans/{userId} [get]
func HandleListPlannedMeals(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := int64URLParam(w, r, "userId")
		if !ok {
			return
		}
		start, ok := optionalDateParam(w, r, "startDate")
		if !ok {
			return
		}
		end, ok := optionalDateParam(w, r, "endDate")
		if !ok {
			return
		}

		meals, err := svc.ListPlannedMeals(r.Context(), userID, start, end)
		if err != nil {
			respondServiceError(w, r, "list planned meals", err)
			return
		}
		respondJSON(w, http.StatusOK, meals)
	}
}

// HandleGetDefaultPlan returns a user's default plan
// @Summary Get default plan
// @Tags meal-planner
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} domain.Plan
// @Failure 404 {object} ErrorResponse "Default plan not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/meal-planner/default-plan/{userId} [get]
func HandleGetDefaultPlan(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := int64URLParam(w, r, "userId")
		if !ok {
			return
		}

		plan, err := svc.GetDefaultPlan(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get default plan", err)
			return
		}
		respondJSON(w, http.StatusOK, plan)
	}
}

// HandleAddPlannedMeal adds or replaces the meal of a plan slot
// @Summary Add planned meal
// @Tags meal-planner
// @Accept json
// @Produce json
// @Param request body AddPlannedMealRequest true "Planned meal"
// @Success 201 {object} PlannedMealResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/meal-planner/planned-meals [post]
func HandleAddPlannedMeal(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddPlannedMealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add planned meal"); err != nil {
			return
		}
		// isodate already accepted the value
		day, _ := domain.ParseDate(req.DayDate)

		result, err := svc.AddPlannedMeal(r.Context(), domain.PlannedMealInput{
			PlanID:     req.PlanID,
			RecipeID:   req.RecipeID,
			MealTypeID: req.MealTypeID,
			Date:       day,
			Servings:   req.Servings,
		})
		if err != nil {
			respondServiceError(w, r, "add planned meal", err)
			return
		}

		entry := result.Entry
		respondJSON(w, http.StatusCreated, PlannedMealResponse{
			ID:         entry.ID,
			PlanID:     entry.PlanID,
			RecipeID:   entry.RecipeID,
			MealTypeID: entry.Slot.TypeID(),
			DayDate:    entry.Date,
			Servings:   entry.Servings,
		})
	}
}

// HandleRemovePlannedMeal deletes a planned meal by id
// @Summary Remove planned meal
// @Tags meal-planner
// @Produce json
// @Param id path int true "Planned meal ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Planned meal not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/meal-planner/planned-meals/{id} [delete]
func HandleRemovePlannedMeal(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64URLParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.RemovePlannedMeal(r.Context(), id); err != nil {
			respondServiceError(w, r, "remove planned meal", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlannedMealRemoved})
	}
}
