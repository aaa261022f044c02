package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_WeekStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wednesday", "2025-05-21", "2025-05-18"},
		{"sunday is its own start", "2025-05-18", "2025-05-18"},
		{"saturday", "2025-05-24", "2025-05-18"},
		{"across month boundary", "2025-06-03", "2025-06-01"},
		{"across year boundary", "2026-01-01", "2025-12-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MustParseDate(tt.in).WeekStart().String())
		})
	}
}

func TestDate_WeekDays(t *testing.T) {
	t.Parallel()

	days := MustParseDate("2025-05-21").WeekDays()
	require.Len(t, days, DaysPerWeek)
	assert.Equal(t, "2025-05-18", days[0].String())
	assert.Equal(t, "2025-05-24", days[6].String())
}

func TestParseDate_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "2025-5-21", "21/05/2025", "2025-02-30"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
		assert.ErrorIs(t, err, ErrValidation, in)
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		Day Date `json:"day"`
	}{MustParseDate("2025-05-21")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2025-05-21"}`, string(b))

	var out struct {
		Day Date `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2025-05-22"}`), &out))
	assert.True(t, out.Day.Equal(NewDate(2025, time.May, 22)))

	assert.Error(t, json.Unmarshal([]byte(`{"day":"tomorrow"}`), &out))
}

func TestDateOf_UsesLocation(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2025, time.May, 20, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-20", DateOf(instant).String())
	assert.Equal(t, "2025-05-21", DateOf(instant.In(tokyo)).String())
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		kind error
		msg  string
	}{
		{ErrRecipeNotFound, ErrNotFound, ErrMsgRecipeNotFound},
		{ErrShoppingItemNotFound, ErrNotFound, ErrMsgShoppingItemNotFound},
		{ErrRecipeInUse, ErrConflict, ErrMsgRecipeInUse},
		{ErrPastDate, ErrValidation, ErrMsgPastDate},
		{NewValidationError("name", "is required"), ErrValidation, "name: is required"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
			assert.Equal(t, tt.msg, Message(wrapped))
		})
	}

	assert.Empty(t, Message(errors.New("connection refused")))
}

func TestParseMealSlot(t *testing.T) {
	t.Parallel()

	slot, err := ParseMealSlot(" Lunch ")
	require.NoError(t, err)
	assert.Equal(t, MealSlotLunch, slot)
	assert.Equal(t, MealTypeIDLunch, slot.TypeID())
	assert.Equal(t, "Lunch", slot.Title())

	_, err = ParseMealSlot("brunch")
	assert.ErrorIs(t, err, ErrInvalidMealSlot)

	_, err = MealSlotFromTypeID(4)
	assert.ErrorIs(t, err, ErrInvalidMealSlot)
}

func TestParsePastDatePolicy(t *testing.T) {
	t.Parallel()

	p, err := ParsePastDatePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PastDateReject, p)

	p, err = ParsePastDatePolicy("REJECT_NEW")
	require.NoError(t, err)
	assert.Equal(t, PastDateRejectNew, p)

	_, err = ParsePastDatePolicy("sometimes")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFilterRecipes(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	recipes := []Recipe{
		{ID: "a", Name: "Greek Salad", Description: "Fresh vegetables", Category: "Salad", CreatedAt: base},
		{ID: "b", Name: "Avocado Toast", Description: "Quick breakfast", Category: "Breakfast", CreatedAt: base.Add(time.Hour)},
		{ID: "c", Name: "Berry Smoothie", Description: "Fresh fruit", Category: "breakfast", CreatedAt: base.Add(2 * time.Hour)},
	}

	ids := func(rs []Recipe) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(FilterRecipes(recipes, RecipeFilter{})))
	assert.Equal(t, []string{"b", "c"}, ids(FilterRecipes(recipes, RecipeFilter{Category: "BREAKFAST"})))
	assert.Equal(t, []string{"a", "c"}, ids(FilterRecipes(recipes, RecipeFilter{Query: "fresh"})))
	assert.Equal(t, []string{"b", "c", "a"}, ids(FilterRecipes(recipes, RecipeFilter{Sort: RecipeSortName})))
	assert.Equal(t, []string{"c", "b", "a"}, ids(FilterRecipes(recipes, RecipeFilter{Sort: RecipeSortNewest})))
	assert.Empty(t, FilterRecipes(recipes, RecipeFilter{Query: "lasagna"}))
}

func TestRecipeUpdate_Apply(t *testing.T) {
	t.Parallel()

	r := Recipe{Name: "Old", Servings: 2, Ingredients: []string{"salt"}}
	assert.True(t, RecipeUpdate{}.IsEmpty())

	name := "New"
	ingredients := []string{"pepper", "oil"}
	u := RecipeUpdate{Name: &name, Ingredients: &ingredients}
	require.False(t, u.IsEmpty())
	u.Apply(&r)

	assert.Equal(t, "New", r.Name)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, []string{"pepper", "oil"}, r.Ingredients)

	ingredients[0] = "mutated"
	assert.Equal(t, "pepper", r.Ingredients[0])
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	c, err := NormalizeCategory("oils & vinegars")
	require.NoError(t, err)
	assert.Equal(t, CategoryOilsVinegars, c)

	c, err = NormalizeCategory("  ")
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, c)

	_, err = NormalizeCategory("Hardware")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	items := []ShoppingItem{
		{ID: "3", Name: "Feta", Category: CategoryDairy, Seq: 3},
		{ID: "1", Name: "Tomatoes", Category: CategoryProduce, Seq: 1},
		{ID: "2", Name: "Milk", Category: CategoryDairy, Seq: 2},
		{ID: "4", Name: "Cucumber", Category: CategoryProduce, Seq: 4},
	}

	groups := GroupByCategory(items)
	require.Len(t, groups, 2)
	assert.Equal(t, CategoryDairy, groups[0].Category)
	assert.Equal(t, "Milk", groups[0].Items[0].Name)
	assert.Equal(t, "Feta", groups[0].Items[1].Name)
	assert.Equal(t, CategoryProduce, groups[1].Category)
	assert.Equal(t, "Tomatoes", groups[1].Items[0].Name)

	assert.Equal(t, "3", items[0].ID, "input order is untouched")
	assert.Empty(t, GroupByCategory(nil))
}
