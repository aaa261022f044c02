package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/recipe"
)

// HandleListRecipes lists recipes, optionally filtered and sorted
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param q query string false "Case-insensitive search over name and description"
// @Param category query string false "Category, case-insensitive"
// @Param sort query string false "name or newest"
// @Success 200 {array} domain.Recipe
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes [get]
func HandleListRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.RecipeFilter{
			Query:    r.URL.Query().Get("q"),
			Category: r.URL.Query().Get("category"),
			Sort:     r.URL.Query().Get("sort"),
		}
		recipes, err := svc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, "list recipes", err)
			return
		}
		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleListRecipesByCategory lists the recipes of one category
// @Summary List recipes by category
// @Tags recipes
// @Produce json
// @Param categoryId path string true "Category name"
// @Success 200 {array} domain.Recipe
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes/category/{categoryId} [get]
func HandleListRecipesByCategory(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.ListByCategory(r.Context(), chi.URLParam(r, "categoryId"))
		if err != nil {
			respondServiceError(w, r, "list recipes by category", err)
			return
		}
		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecipe returns one recipe
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes/{id} [get]
func HandleGetRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "get recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, rec)
	}
}

// HandleCreateRecipe stores a new recipe
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body domain.RecipeInput true "Recipe"
// @Success 201 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes [post]
func HandleCreateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RecipeInput
		if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
			return
		}

		rec, err := svc.Create(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "create recipe", err)
			return
		}
		respondJSON(w, http.StatusCreated, rec)
	}
}

// HandleUpdateRecipe applies a partial update
// @Summary Update recipe
// @Description Only the fields present in the body are changed
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body domain.RecipeUpdate true "Fields to change"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes/{id} [patch]
func HandleUpdateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RecipeUpdate
		if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
			return
		}
		if req.IsEmpty() {
			respondError(w, http.StatusBadRequest, ErrMsgEmptyUpdate)
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondServiceError(w, r, "update recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, rec)
	}
}

// HandleDeleteRecipe removes a recipe that no plan references
// @Summary Delete recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Recipe is used in a meal plan"
// @Failure 500 {object} ErrorResponse
// @Router /api/recipes/{id} [delete]
func HandleDeleteRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, "delete recipe", err)
			return
		}
		logger.FromContext(r.Context()).Debug(MsgRecipeDeleted, "recipe_id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipeDeleted})
	}
}
