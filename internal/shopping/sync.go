package shopping

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/metrics"
)

// MergeRecipeIngredients reads the current list and inserts every ingredient
// whose case-folded name is not already present. Names inserted earlier in
// the same merge count as present. Quantities are not parsed, so
// "2 cups flour" and "1 cup flour" are different items.
//
// The read and the insert are separate repository calls. Two merges running
// at the same time can both insert the same name.
func (s *service) MergeRecipeIngredients(ctx context.Context, recipe domain.Recipe) ([]domain.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.ListShoppingItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMergeFailed, err)
	}

	names := missingIngredients(existing, recipe.Ingredients)
	if len(names) == 0 {
		log.Debug(LogMsgIngredientsSkipped, "recipe_id", recipe.ID)
		return []domain.ShoppingItem{}, nil
	}

	items := make([]domain.ShoppingItem, len(names))
	for i, name := range names {
		items[i] = s.newItem(name, domain.CategoryOther)
	}
	if err := s.repo.InsertShoppingItems(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMergeFailed, err)
	}

	metrics.ShoppingItemsAdded.WithLabelValues(domain.ItemSourceRecipe).Add(float64(len(items)))
	log.Info(LogMsgIngredientsMerged, "recipe_id", recipe.ID, "added", len(items))
	return items, nil
}

// missingIngredients returns the ingredients, trimmed and in recipe order,
// that match neither an existing item nor an earlier ingredient.
func missingIngredients(existing []domain.ShoppingItem, ingredients []string) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(existing)+len(ingredients))
	for _, item := range existing {
		seen[fold.String(strings.TrimSpace(item.Name))] = struct{}{}
	}

	var out []string
	for _, ingredient := range ingredients {
		name := strings.TrimSpace(ingredient)
		if name == "" {
			continue
		}
		key := fold.String(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
