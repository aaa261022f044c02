// Package seed loads demo recipes, a sample week and a shopping list into a store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/repository"
	"github.com/osse101/FreshMeal_Go/internal/validation"
)

//go:embed demo.yaml
var demoYAML []byte

// recipeNamespace derives stable recipe ids from seed keys, so re-seeding
// finds the recipes it created before.
var recipeNamespace = uuid.MustParse("6f1c1b9e-4a43-4d0f-9a57-3f0c2b8d9e11")

// Document is a parsed seed file
type Document struct {
	Recipes  []Recipe       `yaml:"recipes"`
	Plan     []PlanEntry    `yaml:"plan"`
	Shopping []ShoppingItem `yaml:"shopping"`
}

// Recipe is a recipe input plus the key plan entries refer to it by
type Recipe struct {
	Key                string `yaml:"key"`
	domain.RecipeInput `yaml:",inline"`
}

// PlanEntry places a seed recipe on the calendar
type PlanEntry struct {
	Date     string `yaml:"date"`
	Slot     string `yaml:"slot"`
	Recipe   string `yaml:"recipe"`
	Servings int    `yaml:"servings"`
}

// ShoppingItem is a seed shopping list line
type ShoppingItem struct {
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Completed bool   `yaml:"completed"`
}

// Options controls where seed data lands
type Options struct {
	UserID int64
	Now    func() time.Time
}

// Result counts what Apply wrote
type Result struct {
	Recipes      int
	PlannedMeals int
	Items        int
}

// RecipeID returns the id a seed recipe key is stored under
func RecipeID(key string) string {
	return uuid.NewSHA1(recipeNamespace, []byte(key)).String()
}

// Demo returns the embedded demo document
func Demo() (*Document, error) {
	return Parse(demoYAML)
}

// Parse validates a YAML seed document against its schema and decodes it
func Parse(data []byte) (*Document, error) {
	if err := validation.NewSchemaValidator().ValidateYAML(data, validation.SeedSchema); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDocument, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}

	keys := make(map[string]bool, len(doc.Recipes))
	for _, r := range doc.Recipes {
		keys[r.Key] = true
	}
	for _, e := range doc.Plan {
		if !keys[e.Recipe] {
			return nil, fmt.Errorf("%s: %q", ErrMsgUnknownRecipeKey, e.Recipe)
		}
	}
	return &doc, nil
}

// Apply writes doc into store. Recipes already present under their seed id
// and shopping items with a matching name are skipped, so Apply can run twice.
// Plan entries overwrite whatever is in their slot.
func Apply(ctx context.Context, store repository.Store, doc *Document, opts Options) (Result, error) {
	if opts.UserID == 0 {
		opts.UserID = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var res Result
	if err := applyRecipes(ctx, store.Recipes(), doc.Recipes, opts.Now(), &res); err != nil {
		return res, err
	}
	if err := applyPlan(ctx, store.MealPlans(), doc.Plan, opts.UserID, &res); err != nil {
		return res, err
	}
	if err := applyShopping(ctx, store.Shopping(), doc.Shopping, opts.Now(), &res); err != nil {
		return res, err
	}

	logger.FromContext(ctx).Info(LogMsgSeedApplied,
		"recipes", res.Recipes, "planned_meals", res.PlannedMeals, "items", res.Items)
	return res, nil
}

func applyRecipes(ctx context.Context, repo repository.Recipe, recipes []Recipe, now time.Time, res *Result) error {
	for _, r := range recipes {
		id := RecipeID(r.Key)
		existing, err := repo.GetRecipe(ctx, id)
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgSeedRecipe, r.Key, err)
		}
		if existing != nil {
			logger.FromContext(ctx).Debug(LogMsgRecipeExists, "key", r.Key)
			continue
		}

		servings := r.Servings
		if servings == 0 {
			servings = 1
		}
		recipe := &domain.Recipe{
			ID:           id,
			Name:         r.Name,
			Description:  r.Description,
			Image:        r.Image,
			PrepTime:     r.PrepTime,
			CookTime:     r.CookTime,
			Servings:     servings,
			Category:     r.Category,
			Difficulty:   r.Difficulty,
			Ingredients:  append([]string(nil), r.Ingredients...),
			Instructions: append([]string(nil), r.Instructions...),
			Nutrition:    r.Nutrition,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.InsertRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgSeedRecipe, r.Key, err)
		}
		res.Recipes++
	}
	return nil
}

func applyPlan(ctx context.Context, repo repository.MealPlan, entries []PlanEntry, userID int64, res *Result) error {
	if len(entries) == 0 {
		return nil
	}

	plan, err := repo.EnsureDefaultPlan(ctx, userID, domain.DefaultPlanName)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSeedPlan, err)
	}

	for _, e := range entries {
		date, err := domain.ParseDate(e.Date)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSeedPlan, err)
		}
		slot, err := domain.ParseMealSlot(e.Slot)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSeedPlan, err)
		}
		servings := e.Servings
		if servings == 0 {
			servings = 1
		}
		recipeID := RecipeID(e.Recipe)
		meal := &domain.PlannedMeal{
			PlanID:   plan.ID,
			RecipeID: &recipeID,
			Slot:     slot,
			Date:     date,
			Servings: servings,
		}
		if err := repo.UpsertPlannedMeal(ctx, meal); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSeedPlan, err)
		}
		res.PlannedMeals++
	}
	return nil
}

func applyShopping(ctx context.Context, repo repository.Shopping, items []ShoppingItem, now time.Time, res *Result) error {
	existing, err := repo.ListShoppingItems(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSeedShopping, err)
	}
	present := make(map[string]bool, len(existing))
	for _, item := range existing {
		present[strings.ToLower(item.Name)] = true
	}

	batch := make([]domain.ShoppingItem, 0, len(items))
	for _, it := range items {
		if present[strings.ToLower(it.Name)] {
			logger.FromContext(ctx).Debug(LogMsgShoppingItemExist, "name", it.Name)
			continue
		}
		present[strings.ToLower(it.Name)] = true

		category, err := domain.NormalizeCategory(it.Category)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSeedShopping, err)
		}
		batch = append(batch, domain.ShoppingItem{
			ID:        uuid.NewString(),
			Name:      it.Name,
			Category:  category,
			Completed: it.Completed,
			CreatedAt: now,
		})
	}
	if len(batch) == 0 {
		return nil
	}

	if err := repo.InsertShoppingItems(ctx, batch); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSeedShopping, err)
	}
	res.Items += len(batch)
	return nil
}
