package domain

import (
	"sort"
	"strings"
	"time"
)

// Nutrition holds per-serving nutrition facts. Only calories are numeric;
// the macro values are free text such as "12g".
type Nutrition struct {
	Calories int    `json:"calories" yaml:"calories"`
	Protein  string `json:"protein" yaml:"protein"`
	Carbs    string `json:"carbs" yaml:"carbs"`
	Fat      string `json:"fat" yaml:"fat"`
	Fiber    string `json:"fiber" yaml:"fiber"`
}

// DefaultNutrition is used when a stored recipe has no nutrition facts.
func DefaultNutrition() Nutrition {
	return Nutrition{Calories: 0, Protein: "0g", Carbs: "0g", Fat: "0g", Fiber: "0g"}
}

// Recipe is a published recipe
type Recipe struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	PrepTime     string    `json:"prepTime"`
	CookTime     string    `json:"cookTime"`
	Servings     int       `json:"servings"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	Nutrition    Nutrition `json:"nutrition"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so callers cannot mutate stored slices.
func (r Recipe) Clone() Recipe {
	c := r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	return c
}

// RecipeInput carries the fields accepted when creating a recipe
type RecipeInput struct {
	Name         string    `json:"name" yaml:"name" validate:"required,max=200"`
	Description  string    `json:"description" yaml:"description" validate:"required,max=2000"`
	Image        string    `json:"image" yaml:"image" validate:"max=2048"`
	PrepTime     string    `json:"prepTime" yaml:"prepTime" validate:"max=50"`
	CookTime     string    `json:"cookTime" yaml:"cookTime" validate:"max=50"`
	Servings     int       `json:"servings" yaml:"servings" validate:"gte=0"`
	Category     string    `json:"category" yaml:"category" validate:"required,max=100"`
	Difficulty   string    `json:"difficulty" yaml:"difficulty" validate:"required,max=50"`
	Ingredients  []string  `json:"ingredients" yaml:"ingredients" validate:"required,min=1"`
	Instructions []string  `json:"instructions" yaml:"instructions" validate:"required,min=1"`
	Nutrition    Nutrition `json:"nutrition" yaml:"nutrition"`
}

// RecipeUpdate is a partial update. Nil fields are left untouched.
type RecipeUpdate struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Image        *string    `json:"image,omitempty"`
	PrepTime     *string    `json:"prepTime,omitempty"`
	CookTime     *string    `json:"cookTime,omitempty"`
	Servings     *int       `json:"servings,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Difficulty   *string    `json:"difficulty,omitempty"`
	Ingredients  *[]string  `json:"ingredients,omitempty"`
	Instructions *[]string  `json:"instructions,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u RecipeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Image == nil &&
		u.PrepTime == nil && u.CookTime == nil && u.Servings == nil &&
		u.Category == nil && u.Difficulty == nil && u.Ingredients == nil &&
		u.Instructions == nil && u.Nutrition == nil
}

// Apply merges the non-nil fields of u into r.
func (u RecipeUpdate) Apply(r *Recipe) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Image != nil {
		r.Image = *u.Image
	}
	if u.PrepTime != nil {
		r.PrepTime = *u.PrepTime
	}
	if u.CookTime != nil {
		r.CookTime = *u.CookTime
	}
	if u.Servings != nil {
		r.Servings = *u.Servings
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.Difficulty != nil {
		r.Difficulty = *u.Difficulty
	}
	if u.Ingredients != nil {
		r.Ingredients = append([]string(nil), (*u.Ingredients)...)
	}
	if u.Instructions != nil {
		r.Instructions = append([]string(nil), (*u.Instructions)...)
	}
	if u.Nutrition != nil {
		r.Nutrition = *u.Nutrition
	}
}

// Recipe sort orders
const (
	RecipeSortNone   = ""
	RecipeSortName   = "name"
	RecipeSortNewest = "newest"
)

// RecipeFilter narrows a recipe listing. Zero value lists everything.
type RecipeFilter struct {
	Query    string
	Category string
	Sort     string
}

// FilterRecipes narrows and orders recipes in memory. Storage order is kept
// when no sort is requested.
func FilterRecipes(recipes []Recipe, filter RecipeFilter) []Recipe {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)

	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) {
			continue
		}
		out = append(out, r)
	}

	switch filter.Sort {
	case RecipeSortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case RecipeSortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
