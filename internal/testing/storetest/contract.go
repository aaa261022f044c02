// Package storetest holds the behavior every storage driver must share.
// Driver packages call Run from their tests with a factory for empty stores.
package storetest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) repository.Store

// Run executes the contract suite against stores built by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("Recipes", func(t *testing.T) { testRecipes(t, newStore(t)) })
	t.Run("RecipeFilter", func(t *testing.T) { testRecipeFilter(t, newStore(t)) })
	t.Run("Plans", func(t *testing.T) { testPlans(t, newStore(t)) })
	t.Run("PlannedMeals", func(t *testing.T) { testPlannedMeals(t, newStore(t)) })
	t.Run("ShoppingItems", func(t *testing.T) { testShoppingItems(t, newStore(t)) })
	t.Run("LongText", func(t *testing.T) { testLongText(t, newStore(t)) })
}

// base is a fixed instant with whole-microsecond precision so it survives every driver
var base = time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

// NewRecipe builds a valid recipe with a fresh id
func NewRecipe(name, category string, created time.Time) *domain.Recipe {
	return &domain.Recipe{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  name + " description",
		Servings:     2,
		Category:     category,
		Difficulty:   "Easy",
		Ingredients:  []string{"salt", "pepper"},
		Instructions: []string{"Mix"},
		Nutrition:    domain.Nutrition{Calories: 100, Protein: "1g", Carbs: "2g", Fat: "3g", Fiber: "4g"},
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func testRecipes(t *testing.T, store repository.Store) {
	ctx := context.Background()
	repo := store.Recipes()

	missing, err := repo.GetRecipe(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.GetRecipe(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)

	r := NewRecipe("Greek Salad", "Salad", base)
	require.NoError(t, repo.InsertRecipe(ctx, r))

	got, err := repo.GetRecipe(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.Name, got.Name)
	assert.Equal(t, r.Ingredients, got.Ingredients)
	assert.Equal(t, r.Instructions, got.Instructions)
	assert.Equal(t, r.Nutrition, got.Nutrition)
	assert.True(t, got.CreatedAt.Equal(base))

	got.Name = "Village Salad"
	got.Ingredients = []string{"cucumber"}
	got.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, repo.UpdateRecipe(ctx, got))

	updated, err := repo.GetRecipe(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Village Salad", updated.Name)
	assert.Equal(t, []string{"cucumber"}, updated.Ingredients)
	assert.True(t, updated.CreatedAt.Equal(base), "created_at is immutable")
	assert.True(t, updated.UpdatedAt.Equal(base.Add(time.Hour)))

	ghost := NewRecipe("Ghost", "Salad", base)
	assert.ErrorIs(t, repo.UpdateRecipe(ctx, ghost), domain.ErrRecipeNotFound)
	assert.ErrorIs(t, repo.DeleteRecipe(ctx, ghost.ID), domain.ErrRecipeNotFound)

	n, err := repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.DeleteRecipe(ctx, r.ID))
	n, err = repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testRecipeFilter(t *testing.T, store repository.Store) {
	ctx := context.Background()
	repo := store.Recipes()

	for i, r := range []*domain.Recipe{
		NewRecipe("pasta Primavera", "Main Course", base.Add(1*time.Hour)),
		NewRecipe("Greek Salad", "Salad", base.Add(3*time.Hour)),
		NewRecipe("Chicken Curry", "Main Course", base.Add(2*time.Hour)),
	} {
		require.NoError(t, repo.InsertRecipe(ctx, r), "recipe %d", i)
	}

	names := func(filter domain.RecipeFilter) []string {
		t.Helper()
		recipes, err := repo.ListRecipes(ctx, filter)
		require.NoError(t, err)
		out := make([]string, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"pasta Primavera", "Greek Salad", "Chicken Curry"}, names(domain.RecipeFilter{}))
	assert.Equal(t, []string{"Chicken Curry", "Greek Salad", "pasta Primavera"}, names(domain.RecipeFilter{Sort: domain.RecipeSortName}))
	assert.Equal(t, []string{"Greek Salad", "Chicken Curry", "pasta Primavera"}, names(domain.RecipeFilter{Sort: domain.RecipeSortNewest}))
	assert.Equal(t, []string{"pasta Primavera", "Chicken Curry"}, names(domain.RecipeFilter{Category: "main course"}))
	assert.Equal(t, []string{"Greek Salad"}, names(domain.RecipeFilter{Query: "SALAD"}))
	assert.Equal(t, []string{"Chicken Curry"}, names(domain.RecipeFilter{Query: "curry description"}))
	assert.Empty(t, names(domain.RecipeFilter{Query: "%"}))
}

func testPlans(t *testing.T, store repository.Store) {
	ctx := context.Background()
	repo := store.MealPlans()

	types, err := repo.ListMealTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MealTypes(), types)

	none, err := repo.GetDefaultPlan(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, none)

	plan, err := repo.EnsureDefaultPlan(ctx, 7, domain.DefaultPlanName)
	require.NoError(t, err)
	assert.True(t, plan.IsDefault)
	assert.Equal(t, int64(7), plan.UserID)
	assert.Equal(t, domain.DefaultPlanName, plan.Name)

	again, err := repo.EnsureDefaultPlan(ctx, 7, "ignored")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, again.ID)
	assert.Equal(t, domain.DefaultPlanName, again.Name)

	byID, err := repo.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, plan.ID, byID.ID)

	missing, err := repo.GetPlan(ctx, plan.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testPlannedMeals(t *testing.T, store repository.Store) {
	ctx := context.Background()
	repo := store.MealPlans()

	salad := NewRecipe("Greek Salad", "Salad", base)
	require.NoError(t, store.Recipes().InsertRecipe(ctx, salad))
	plan, err := repo.EnsureDefaultPlan(ctx, 1, domain.DefaultPlanName)
	require.NoError(t, err)

	day := domain.MustParseDate("2025-05-21")
	none, err := repo.GetPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	assert.Nil(t, none)

	touched, err := repo.ClearPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	assert.False(t, touched, "clearing a never-set slot touches nothing")

	meal := &domain.PlannedMeal{PlanID: plan.ID, RecipeID: &salad.ID, Slot: domain.MealSlotLunch, Date: day, Servings: 1}
	require.NoError(t, repo.UpsertPlannedMeal(ctx, meal))
	require.NotZero(t, meal.ID)
	firstID := meal.ID

	meal2 := &domain.PlannedMeal{PlanID: plan.ID, RecipeID: &salad.ID, Slot: domain.MealSlotLunch, Date: day, Servings: 3}
	require.NoError(t, repo.UpsertPlannedMeal(ctx, meal2))
	assert.Equal(t, firstID, meal2.ID, "upsert keeps one entry per slot")

	got, err := repo.GetPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Servings)
	assert.True(t, got.Date.Equal(day))
	assert.Equal(t, domain.MealSlotLunch, got.Slot)

	dinner := &domain.PlannedMeal{PlanID: plan.ID, RecipeID: &salad.ID, Slot: domain.MealSlotDinner, Date: day.AddDays(1), Servings: 1}
	require.NoError(t, repo.UpsertPlannedMeal(ctx, dinner))

	refs, err := repo.CountRecipeReferences(ctx, salad.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, refs)

	touched, err = repo.ClearPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	assert.True(t, touched)

	entries, err := repo.ListPlanEntries(ctx, plan.ID, day, day.AddDays(6))
	require.NoError(t, err)
	require.Len(t, entries, 2, "cleared entries are still listed")
	assert.True(t, entries[0].Cleared())
	assert.False(t, entries[1].Cleared())

	views, err := repo.ListPlannedMeals(ctx, 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, views, 1, "only entries with a recipe are joined")
	assert.Equal(t, "Greek Salad", views[0].RecipeName)
	assert.Equal(t, domain.MealTypeIDDinner, views[0].MealTypeID)
	assert.Equal(t, "Dinner", views[0].MealTypeName)
	assert.True(t, views[0].Date.Equal(day.AddDays(1)))

	start, end := day, day
	views, err = repo.ListPlannedMeals(ctx, 1, &start, &end)
	require.NoError(t, err)
	assert.Empty(t, views)

	other, err := repo.ListPlannedMeals(ctx, 2, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.DeletePlannedMeal(ctx, dinner.ID))
	assert.ErrorIs(t, repo.DeletePlannedMeal(ctx, dinner.ID), domain.ErrPlannedMealNotFound)

	refs, err = repo.CountRecipeReferences(ctx, salad.ID)
	require.NoError(t, err)
	assert.Zero(t, refs)
}

func testShoppingItems(t *testing.T, store repository.Store) {
	ctx := context.Background()
	repo := store.Shopping()

	batch := []domain.ShoppingItem{
		{ID: uuid.NewString(), Name: "Milk", Category: domain.CategoryDairy},
		{ID: uuid.NewString(), Name: "Bread", Category: domain.CategoryBakery},
		{ID: uuid.NewString(), Name: "Cheese", Category: domain.CategoryDairy, Completed: true},
	}
	require.NoError(t, repo.InsertShoppingItems(ctx, batch))
	assert.Less(t, batch[0].Seq, batch[1].Seq)
	assert.Less(t, batch[1].Seq, batch[2].Seq)
	for _, item := range batch {
		assert.False(t, item.CreatedAt.IsZero())
	}

	later := []domain.ShoppingItem{{ID: uuid.NewString(), Name: "Eggs", Category: domain.CategoryOther}}
	require.NoError(t, repo.InsertShoppingItems(ctx, later))

	items, err := repo.ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, []string{"Milk", "Bread", "Cheese", "Eggs"},
		[]string{items[0].Name, items[1].Name, items[2].Name, items[3].Name})

	missing, err := repo.GetShoppingItem(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	milk := batch[0]
	milk.Name = "Oat milk"
	milk.Completed = true
	require.NoError(t, repo.UpdateShoppingItem(ctx, &milk))
	assert.Equal(t, batch[0].Seq, milk.Seq, "updates keep the list position")

	got, err := repo.GetShoppingItem(ctx, milk.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Oat milk", got.Name)
	assert.True(t, got.Completed)

	toggled, err := repo.ToggleShoppingItem(ctx, milk.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	ghost := domain.ShoppingItem{ID: uuid.NewString(), Name: "Ghost", Category: domain.CategoryOther}
	assert.ErrorIs(t, repo.UpdateShoppingItem(ctx, &ghost), domain.ErrShoppingItemNotFound)
	_, err = repo.ToggleShoppingItem(ctx, ghost.ID)
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
	assert.ErrorIs(t, repo.DeleteShoppingItem(ctx, ghost.ID), domain.ErrShoppingItemNotFound)

	removed, err := repo.DeleteCompletedShoppingItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	require.NoError(t, repo.DeleteShoppingItem(ctx, batch[1].ID))

	items, err = repo.ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Oat milk", items[0].Name)
	assert.Equal(t, "Eggs", items[1].Name)
}

// testLongText stores free text well past any form limit. Ingredient lines
// become shopping item names, so both must survive unchanged.
func testLongText(t *testing.T, store repository.Store) {
	ctx := context.Background()
	long := strings.Repeat("finely chopped fresh herbs ", 20)

	recipe := NewRecipe(strings.Repeat("Garden ", 50), strings.Repeat("Side ", 30), base)
	recipe.PrepTime = strings.Repeat("1 hour ", 15)
	recipe.CookTime = recipe.PrepTime
	recipe.Difficulty = strings.Repeat("Medium ", 15)
	recipe.Ingredients = []string{long, "salt"}
	require.NoError(t, store.Recipes().InsertRecipe(ctx, recipe))

	got, err := store.Recipes().GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, recipe.Name, got.Name)
	assert.Equal(t, recipe.Category, got.Category)
	assert.Equal(t, recipe.Difficulty, got.Difficulty)
	assert.Equal(t, recipe.Ingredients, got.Ingredients)

	items := []domain.ShoppingItem{
		{ID: uuid.NewString(), Name: long, Category: domain.CategoryOther},
		{ID: uuid.NewString(), Name: "salt", Category: domain.CategoryOther},
	}
	require.NoError(t, store.Shopping().InsertShoppingItems(ctx, items))

	listed, err := store.Shopping().ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, long, listed[0].Name)
}
