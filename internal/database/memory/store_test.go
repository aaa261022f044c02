package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/repository"
	"github.com/osse101/FreshMeal_Go/internal/testing/storetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func strPtr(s string) *string { return &s }

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store { return NewStore() })
}

func TestRecipes(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, r := range []domain.Recipe{
		{ID: "r1", Name: "Pasta Primavera", Category: "Main Course", Ingredients: []string{"pasta"}},
		{ID: "r2", Name: "Greek Salad", Category: "Salad", Ingredients: []string{"cucumber"}},
	} {
		r := r
		require.NoError(t, s.InsertRecipe(ctx, &r))
		assert.False(t, r.CreatedAt.IsZero(), "store fills in CreatedAt")
	}

	all, err := s.ListRecipes(ctx, domain.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r1", all[0].ID, "insertion order is storage order")

	salads, err := s.ListRecipes(ctx, domain.RecipeFilter{Category: "salad"})
	require.NoError(t, err)
	require.Len(t, salads, 1)
	assert.Equal(t, "r2", salads[0].ID)

	got, err := s.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	got.Ingredients[0] = "mutated"
	again, err := s.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "pasta", again.Ingredients[0], "reads return copies")

	missing, err := s.GetRecipe(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	again.Name = "Spring Pasta"
	require.NoError(t, s.UpdateRecipe(ctx, again))
	updated, err := s.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Spring Pasta", updated.Name)

	assert.ErrorIs(t, s.UpdateRecipe(ctx, &domain.Recipe{ID: "nope"}), domain.ErrRecipeNotFound)

	require.NoError(t, s.DeleteRecipe(ctx, "r1"))
	assert.ErrorIs(t, s.DeleteRecipe(ctx, "r1"), domain.ErrRecipeNotFound)
	n, err := s.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPlannedMeals(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.InsertRecipe(ctx, &domain.Recipe{ID: "salad", Name: "Greek Salad"}))
	require.NoError(t, s.InsertRecipe(ctx, &domain.Recipe{ID: "curry", Name: "Chicken Curry"}))

	plan, err := s.EnsureDefaultPlan(ctx, 1, "Default Plan")
	require.NoError(t, err)
	same, err := s.EnsureDefaultPlan(ctx, 1, "Default Plan")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, same.ID, "default plan is created once")

	day := domain.MustParseDate("2025-05-21")

	first := &domain.PlannedMeal{PlanID: plan.ID, RecipeID: strPtr("salad"), Slot: domain.MealSlotLunch, Date: day, Servings: 1}
	require.NoError(t, s.UpsertPlannedMeal(ctx, first))
	assert.NotZero(t, first.ID)

	second := &domain.PlannedMeal{PlanID: plan.ID, RecipeID: strPtr("curry"), Slot: domain.MealSlotLunch, Date: day, Servings: 2}
	require.NoError(t, s.UpsertPlannedMeal(ctx, second))
	assert.Equal(t, first.ID, second.ID, "same (plan, date, slot) is an upsert")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	dinner := &domain.PlannedMeal{PlanID: plan.ID, RecipeID: strPtr("salad"), Slot: domain.MealSlotDinner, Date: day.AddDays(-1), Servings: 1}
	require.NoError(t, s.UpsertPlannedMeal(ctx, dinner))

	got, err := s.GetPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "curry", *got.RecipeID)
	assert.Equal(t, 2, got.Servings)

	views, err := s.ListPlannedMeals(ctx, 1, nil, nil)
	require.NoError(t, err)
	want := []domain.PlannedMealView{
		{ID: dinner.ID, PlanID: plan.ID, RecipeID: "salad", RecipeName: "Greek Salad", MealTypeID: 3, MealTypeName: "Dinner", Date: day.AddDays(-1), Servings: 1},
		{ID: first.ID, PlanID: plan.ID, RecipeID: "curry", RecipeName: "Chicken Curry", MealTypeID: 2, MealTypeName: "Lunch", Date: day, Servings: 2},
	}
	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("ListPlannedMeals mismatch (-want +got):\n%s", diff)
	}

	start, end := day, day
	ranged, err := s.ListPlannedMeals(ctx, 1, &start, &end)
	require.NoError(t, err)
	assert.Len(t, ranged, 1)

	refs, err := s.CountRecipeReferences(ctx, "salad")
	require.NoError(t, err)
	assert.Equal(t, 1, refs)

	cleared, err := s.ClearPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	assert.True(t, cleared)
	got, err = s.GetPlannedMeal(ctx, plan.ID, day, domain.MealSlotLunch)
	require.NoError(t, err)
	require.NotNil(t, got, "cleared entry still exists")
	assert.True(t, got.Cleared())

	cleared, err = s.ClearPlannedMeal(ctx, plan.ID, day, domain.MealSlotBreakfast)
	require.NoError(t, err)
	assert.False(t, cleared, "never-set slot is untouched")

	entries, err := s.ListPlanEntries(ctx, plan.ID, day.AddDays(-1), day)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	views, err = s.ListPlannedMeals(ctx, 1, nil, nil)
	require.NoError(t, err)
	assert.Len(t, views, 1, "cleared entries are not listed")

	require.NoError(t, s.DeletePlannedMeal(ctx, dinner.ID))
	assert.ErrorIs(t, s.DeletePlannedMeal(ctx, dinner.ID), domain.ErrPlannedMealNotFound)
}

func TestShoppingItems(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	items := []domain.ShoppingItem{
		{ID: "a", Name: "Milk", Category: domain.CategoryDairy},
		{ID: "b", Name: "Apples", Category: domain.CategoryProduce},
		{ID: "c", Name: "Bread", Category: domain.CategoryBakery},
	}
	require.NoError(t, s.InsertShoppingItems(ctx, items))
	assert.Less(t, items[0].Seq, items[1].Seq)
	assert.Less(t, items[1].Seq, items[2].Seq)

	listed, err := s.ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{listed[0].ID, listed[1].ID, listed[2].ID})

	toggled, err := s.ToggleShoppingItem(ctx, "a")
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	_, err = s.ToggleShoppingItem(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)

	update := &domain.ShoppingItem{ID: "b", Name: "Green Apples", Category: domain.CategoryProduce, Completed: true}
	require.NoError(t, s.UpdateShoppingItem(ctx, update))
	assert.Equal(t, items[1].Seq, update.Seq, "update keeps insertion position")

	removed, err := s.DeleteCompletedShoppingItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	listed, err = s.ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "c", listed[0].ID)

	require.NoError(t, s.DeleteShoppingItem(ctx, "c"))
	assert.ErrorIs(t, s.DeleteShoppingItem(ctx, "c"), domain.ErrShoppingItemNotFound)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.InsertRecipe(ctx, &domain.Recipe{ID: "r1"}))
	require.NoError(t, s.InsertShoppingItems(ctx, []domain.ShoppingItem{{ID: "i1", Name: "Milk"}}))
	_, err := s.EnsureDefaultPlan(ctx, 1, "Default Plan")
	require.NoError(t, err)

	s.Reset()

	n, err := s.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	items, err := s.ListShoppingItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	plan, err := s.GetDefaultPlan(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Seed(ctx))
	require.NoError(t, s.Seed(ctx), "seeding twice is harmless")

	count, err := s.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	items, err := s.ListShoppingItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 7)

	start, end := domain.MustParseDate("2025-05-21"), domain.MustParseDate("2025-05-23")
	meals, err := s.ListPlannedMeals(ctx, 1, &start, &end)
	require.NoError(t, err)
	assert.Len(t, meals, 6)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	plan, err := s.EnsureDefaultPlan(ctx, 1, "Default Plan")
	require.NoError(t, err)
	day := domain.MustParseDate("2025-05-21")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = s.InsertShoppingItems(ctx, []domain.ShoppingItem{{ID: domain.MustParseDate("2025-01-01").AddDays(i).String(), Name: "x"}})
		}()
		go func() {
			defer wg.Done()
			_ = s.UpsertPlannedMeal(ctx, &domain.PlannedMeal{PlanID: plan.ID, Slot: domain.MealSlotLunch, Date: day, RecipeID: strPtr("r")})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.ListShoppingItems(ctx)
			_, _ = s.ListPlanEntries(ctx, plan.ID, day, day)
		}()
	}
	wg.Wait()

	items, err := s.ListShoppingItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
	entries, err := s.ListPlanEntries(ctx, plan.ID, day, day)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "concurrent upserts on one slot keep a single entry")
}

func TestPing(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
	assert.NoError(t, s.Close())
}
