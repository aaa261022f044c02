package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/repository"
	"github.com/osse101/FreshMeal_Go/internal/testing/storetest"
)

var created = time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store { return newTestStore(t) })
}

func TestEnsureDefaultPlan_Concurrent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ids := make([]int64, 10)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plan, err := store.MealPlans().EnsureDefaultPlan(ctx, 42, domain.DefaultPlanName)
			if err != nil {
				t.Errorf("EnsureDefaultPlan: %v", err)
				return
			}
			ids[i] = plan.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id, "every caller sees the same default plan")
	}
}

func TestUpsertPlannedMeal_MissingRecipe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	plan, err := store.MealPlans().EnsureDefaultPlan(ctx, 1, domain.DefaultPlanName)
	require.NoError(t, err)

	ghost := uuid.NewString()
	err = store.MealPlans().UpsertPlannedMeal(ctx, &domain.PlannedMeal{
		PlanID:   plan.ID,
		RecipeID: &ghost,
		Slot:     domain.MealSlotLunch,
		Date:     domain.MustParseDate("2025-05-21"),
		Servings: 1,
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRecipe_NullsPlannedMeals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r := storetest.NewRecipe("Soup", "Soup", created)
	require.NoError(t, store.Recipes().InsertRecipe(ctx, r))
	plan, err := store.MealPlans().EnsureDefaultPlan(ctx, 1, domain.DefaultPlanName)
	require.NoError(t, err)

	day := domain.MustParseDate("2025-05-22")
	require.NoError(t, store.MealPlans().UpsertPlannedMeal(ctx, &domain.PlannedMeal{
		PlanID: plan.ID, RecipeID: &r.ID, Slot: domain.MealSlotDinner, Date: day, Servings: 1,
	}))
	require.NoError(t, store.Recipes().DeleteRecipe(ctx, r.ID))

	entry, err := store.MealPlans().GetPlannedMeal(ctx, plan.ID, day, domain.MealSlotDinner)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Cleared())
}

func TestInsertRecipe_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r := storetest.NewRecipe("Soup", "Soup", created)
	require.NoError(t, store.Recipes().InsertRecipe(ctx, r))
	assert.ErrorIs(t, store.Recipes().InsertRecipe(ctx, r), domain.ErrConflict)
}

func TestPing(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
