package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FreshMeal_Go/internal/database/memory"
	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
	"github.com/osse101/FreshMeal_Go/internal/recipe"
	"github.com/osse101/FreshMeal_Go/internal/shopping"
)

var testNow = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

type apiFixture struct {
	router http.Handler
	store  *memory.Store
}

// newAPIFixture mounts the handlers on an empty memory store
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := memory.NewStore()
	recipes := recipe.NewService(store.Recipes(), store.MealPlans(), recipe.DefaultCacheConfig())
	list := shopping.NewService(store.Shopping())
	plans := mealplan.NewService(store.MealPlans(), recipes, list, mealplan.Config{
		Policy: domain.PastDateRejectNew,
		Clock:  func() time.Time { return testNow },
	})

	r := chi.NewRouter()
	r.Get("/recipes", HandleListRecipes(recipes))
	r.Post("/recipes", HandleCreateRecipe(recipes))
	r.Get("/recipes/category/{categoryId}", HandleListRecipesByCategory(recipes))
	r.Get("/recipes/{id}", HandleGetRecipe(recipes))
	r.Patch("/recipes/{id}", HandleUpdateRecipe(recipes))
	r.Delete("/recipes/{id}", HandleDeleteRecipe(recipes))

	r.Get("/meal-types", HandleListMealTypes(plans))
	r.Get("/plans/{userId}", HandleListPlannedMeals(plans))
	r.Get("/default-plan/{userId}", HandleGetDefaultPlan(plans))
	r.Post("/planned-meals", HandleAddPlannedMeal(plans))
	r.Delete("/planned-meals/{id}", HandleRemovePlannedMeal(plans))

	r.Get("/week", HandleGetWeek(plans))
	r.Put("/calendar/{date}/{slot}", HandleSetMeal(plans))
	r.Delete("/calendar/{date}/{slot}", HandleClearMeal(plans))

	r.Get("/shopping", HandleListShopping(list))
	r.Post("/shopping", HandleAddShoppingItem(list))
	r.Delete("/shopping/completed", HandleClearCompleted(list))
	r.Patch("/shopping/{id}", HandleUpdateShoppingItem(list))
	r.Post("/shopping/{id}/toggle", HandleToggleShoppingItem(list))
	r.Delete("/shopping/{id}", HandleRemoveShoppingItem(list))

	r.Get("/dashboard", HandleDashboard(recipes, plans, list))

	return &apiFixture{router: r, store: store}
}

func (f *apiFixture) call(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

const saladJSON = `{
	"name": "Greek Salad",
	"description": "Crisp vegetables with feta",
	"category": "Salad",
	"difficulty": "Easy",
	"servings": 2,
	"ingredients": ["1 cucumber", "2 tomatoes", "  ", "Feta cheese"],
	"instructions": ["Chop", "Toss"]
}`

func (f *apiFixture) createSalad(t *testing.T) domain.Recipe {
	t.Helper()
	w := f.call(t, http.MethodPost, "/recipes", saladJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[domain.Recipe](t, w)
}

func TestRecipeHandlers(t *testing.T) {
	f := newAPIFixture(t)
	salad := f.createSalad(t)

	assert.NotEmpty(t, salad.ID)
	assert.Equal(t, []string{"1 cucumber", "2 tomatoes", "Feta cheese"}, salad.Ingredients)

	t.Run("get", func(t *testing.T) {
		w := f.call(t, http.MethodGet, "/recipes/"+salad.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Greek Salad", decodeBody[domain.Recipe](t, w).Name)
	})

	t.Run("search and category", func(t *testing.T) {
		w := f.call(t, http.MethodGet, "/recipes?q=FETA", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]domain.Recipe](t, w), 1)

		w = f.call(t, http.MethodGet, "/recipes/category/salad", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]domain.Recipe](t, w), 1)

		w = f.call(t, http.MethodGet, "/recipes?category=Dessert", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody[[]domain.Recipe](t, w))
	})

	t.Run("create missing fields", func(t *testing.T) {
		w := f.call(t, http.MethodPost, "/recipes", `{"name":"Toast"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ErrorResponse](t, w)
		assert.Equal(t, ErrMsgValidationFailed, resp.Message)
		assert.Contains(t, resp.Fields, "ingredients")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := f.call(t, http.MethodPost, "/recipes", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidRequest, decodeBody[ErrorResponse](t, w).Message)
	})

	t.Run("partial update", func(t *testing.T) {
		w := f.call(t, http.MethodPatch, "/recipes/"+salad.ID, `{"servings":4}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decodeBody[domain.Recipe](t, w)
		assert.Equal(t, 4, updated.Servings)
		assert.Equal(t, salad.Name, updated.Name)

		w = f.call(t, http.MethodPatch, "/recipes/"+salad.ID, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgEmptyUpdate, decodeBody[ErrorResponse](t, w).Message)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := f.call(t, http.MethodGet, "/recipes/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgRecipeNotFound, decodeBody[ErrorResponse](t, w).Message)
	})
}

func TestCalendarHandlers(t *testing.T) {
	f := newAPIFixture(t)
	salad := f.createSalad(t)

	w := f.call(t, http.MethodPut, "/calendar/2025-05-21/lunch", `{"recipeId":"`+salad.ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decodeBody[domain.SetMealResult](t, w)
	assert.Len(t, result.AddedItems, 3)

	// Setting the same recipe again adds nothing to the shopping list
	w = f.call(t, http.MethodPut, "/calendar/2025-05-22/dinner", `{"recipeId":"`+salad.ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[domain.SetMealResult](t, w).AddedItems)

	w = f.call(t, http.MethodGet, "/week?date=2025-05-24", "")
	require.Equal(t, http.StatusOK, w.Code)
	week := decodeBody[domain.WeekPlan](t, w)
	lunch := week.Meal(domain.MustParseDate("2025-05-21"), domain.MealSlotLunch)
	require.NotNil(t, lunch)
	require.NotNil(t, lunch.Recipe)
	assert.Equal(t, salad.ID, lunch.Recipe.ID)

	t.Run("past day", func(t *testing.T) {
		w := f.call(t, http.MethodPut, "/calendar/2025-05-19/lunch", `{"recipeId":"`+salad.ID+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrMsgPastDate, decodeBody[ErrorResponse](t, w).Message)
	})

	t.Run("bad slot and date", func(t *testing.T) {
		w := f.call(t, http.MethodPut, "/calendar/2025-05-21/supper", `{"recipeId":"`+salad.ID+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrMsgInvalidMealSlot, decodeBody[ErrorResponse](t, w).Message)

		w = f.call(t, http.MethodPut, "/calendar/2025-13-01/lunch", `{"recipeId":"`+salad.ID+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		w := f.call(t, http.MethodPut, "/calendar/2025-05-21/dinner", `{"recipeId":"missing"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("clear", func(t *testing.T) {
		w := f.call(t, http.MethodDelete, "/calendar/2025-05-21/lunch", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, MsgMealCleared, decodeBody[SuccessResponse](t, w).Message)

		// Clearing a slot that was never set is still a success
		w = f.call(t, http.MethodDelete, "/calendar/2025-05-23/breakfast", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.call(t, http.MethodGet, "/week?date=2025-05-21", "")
		week := decodeBody[domain.WeekPlan](t, w)
		assert.Nil(t, week.Meal(domain.MustParseDate("2025-05-21"), domain.MealSlotLunch).Recipe)
	})
}

func TestPlannerHandlers(t *testing.T) {
	f := newAPIFixture(t)
	salad := f.createSalad(t)

	w := f.call(t, http.MethodGet, "/meal-types", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.MealTypes(), decodeBody[[]domain.MealType](t, w))

	w = f.call(t, http.MethodGet, "/default-plan/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The first calendar write creates the default plan
	w = f.call(t, http.MethodPut, "/calendar/2025-05-21/lunch", `{"recipeId":"`+salad.ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.call(t, http.MethodGet, "/default-plan/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodeBody[domain.Plan](t, w)
	assert.Equal(t, domain.DefaultPlanName, plan.Name)

	body := `{"planId":` + jsonInt(plan.ID) + `,"recipeId":"` + salad.ID + `","mealTypeId":3,"dayDate":"2025-05-22","servings":2}`
	w = f.call(t, http.MethodPost, "/planned-meals", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decodeBody[PlannedMealResponse](t, w)
	assert.Equal(t, 3, added.MealTypeID)
	assert.Equal(t, 2, added.Servings)

	w = f.call(t, http.MethodGet, "/plans/1?startDate=2025-05-22&endDate=2025-05-22", "")
	require.Equal(t, http.StatusOK, w.Code)
	views := decodeBody[[]domain.PlannedMealView](t, w)
	require.Len(t, views, 1)
	assert.Equal(t, "Greek Salad", views[0].RecipeName)
	assert.Equal(t, "Dinner", views[0].MealTypeName)

	w = f.call(t, http.MethodGet, "/plans/1?startDate=bad", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.call(t, http.MethodPost, "/planned-meals", `{"planId":999,"recipeId":"`+salad.ID+`","mealTypeId":1,"dayDate":"2025-05-22"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrMsgPlanNotFound, decodeBody[ErrorResponse](t, w).Message)

	w = f.call(t, http.MethodDelete, "/planned-meals/"+jsonInt(added.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgPlannedMealRemoved, decodeBody[SuccessResponse](t, w).Message)

	w = f.call(t, http.MethodDelete, "/planned-meals/"+jsonInt(added.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrMsgPlannedMealNotFound, decodeBody[ErrorResponse](t, w).Message)

	w = f.call(t, http.MethodDelete, "/planned-meals/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShoppingHandlers(t *testing.T) {
	f := newAPIFixture(t)

	w := f.call(t, http.MethodPost, "/shopping", `{"name":"Milk","category":"dairy"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	milk := decodeBody[domain.ShoppingItem](t, w)
	assert.Equal(t, domain.CategoryDairy, milk.Category)

	w = f.call(t, http.MethodPost, "/shopping", `{"name":"Apples"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	apples := decodeBody[domain.ShoppingItem](t, w)
	assert.Equal(t, domain.CategoryOther, apples.Category)

	w = f.call(t, http.MethodPost, "/shopping", `{"name":"Salt","category":"Spices"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.call(t, http.MethodPatch, "/shopping/"+apples.ID, `{"category":"Produce"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CategoryProduce, decodeBody[domain.ShoppingItem](t, w).Category)

	w = f.call(t, http.MethodPost, "/shopping/"+milk.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[domain.ShoppingItem](t, w).Completed)

	w = f.call(t, http.MethodGet, "/shopping", "")
	require.Equal(t, http.StatusOK, w.Code)
	groups := decodeBody[[]domain.CategoryGroup](t, w)
	require.Len(t, groups, 2)
	assert.Equal(t, domain.CategoryDairy, groups[0].Category)
	assert.Equal(t, domain.CategoryProduce, groups[1].Category)

	w = f.call(t, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Dashboard{ShoppingTotal: 2, ShoppingPending: 1}, decodeBody[domain.Dashboard](t, w))

	w = f.call(t, http.MethodDelete, "/shopping/completed", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeBody[ClearCompletedResponse](t, w).Removed)

	w = f.call(t, http.MethodDelete, "/shopping/"+apples.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = f.call(t, http.MethodPost, "/shopping/"+apples.ID+"/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrMsgShoppingItemNotFound, decodeBody[ErrorResponse](t, w).Message)
}

func TestRecipeDeleteInUse(t *testing.T) {
	f := newAPIFixture(t)
	salad := f.createSalad(t)

	w := f.call(t, http.MethodPut, "/calendar/2025-05-21/lunch", `{"recipeId":"`+salad.ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.call(t, http.MethodDelete, "/recipes/"+salad.ID, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrMsgRecipeInUse, decodeBody[ErrorResponse](t, w).Message)

	w = f.call(t, http.MethodDelete, "/calendar/2025-05-21/lunch", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = f.call(t, http.MethodDelete, "/recipes/"+salad.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgRecipeDeleted, decodeBody[SuccessResponse](t, w).Message)

	require.NoError(t, f.store.Ping(context.Background()))
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
