package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/metrics"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// Service defines the interface for recipe operations
type Service interface {
	List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	Create(ctx context.Context, input domain.RecipeInput) (*domain.Recipe, error)
	Update(ctx context.Context, id string, update domain.RecipeUpdate) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	GetCacheStats() CacheStats
}

// PlanReferences reports how many planned meals point at a recipe
type PlanReferences interface {
	CountRecipeReferences(ctx context.Context, recipeID string) (int, error)
}

type service struct {
	repo  repository.Recipe
	refs  PlanReferences
	cache *recipeCache
	now   func() time.Time
}

// NewService creates a new recipe service
func NewService(repo repository.Recipe, refs PlanReferences, cacheCfg CacheConfig) Service {
	return &service{
		repo:  repo,
		refs:  refs,
		cache: newRecipeCache(cacheCfg),
		now:   time.Now,
	}
}

func (s *service) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListRecipesFailed, err)
	}
	// Drivers may filter in storage; the in-memory pass is authoritative.
	return domain.FilterRecipes(recipes, filter), nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]domain.Recipe, error) {
	return s.List(ctx, domain.RecipeFilter{Category: category})
}

func (s *service) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	if r, ok := s.cache.Get(id); ok {
		logger.FromContext(ctx).Debug(LogMsgRecipeCacheHit, "recipe_id", id)
		return r, nil
	}

	r, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetRecipeFailed, err)
	}
	if r == nil {
		return nil, domain.ErrRecipeNotFound
	}
	s.cache.Set(r)
	return r, nil
}

func (s *service) Create(ctx context.Context, input domain.RecipeInput) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	r, err := newRecipe(input)
	if err != nil {
		log.Warn(LogMsgInvalidRecipeInput, "error", err)
		return nil, err
	}

	now := s.now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.repo.InsertRecipe(ctx, r); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateRecipeFailed, err)
	}

	metrics.RecipesCreated.Inc()
	log.Info(LogMsgRecipeCreated, "recipe_id", r.ID, "name", r.Name)
	return r, nil
}

func (s *service) Update(ctx context.Context, id string, update domain.RecipeUpdate) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := normalizeUpdate(&update); err != nil {
		log.Warn(LogMsgInvalidRecipeInput, "recipe_id", id, "error", err)
		return nil, err
	}

	current, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetRecipeFailed, err)
	}
	if current == nil {
		return nil, domain.ErrRecipeNotFound
	}

	update.Apply(current)
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateRecipe(ctx, current); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateRecipeFailed, err)
	}
	s.cache.Invalidate(id)

	log.Info(LogMsgRecipeUpdated, "recipe_id", id)
	return current, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	refs, err := s.refs.CountRecipeReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCountRefsFailed, err)
	}
	if refs > 0 {
		log.Warn(LogMsgRecipeInUse, "recipe_id", id, "references", refs)
		return domain.ErrRecipeInUse
	}

	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrMsgDeleteRecipeFailed, err)
	}
	s.cache.Invalidate(id)

	metrics.RecipesDeleted.Inc()
	log.Info(LogMsgRecipeDeleted, "recipe_id", id)
	return nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCountRecipesFailed, err)
	}
	return n, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

// newRecipe trims and validates input. Blank ingredient and instruction
// lines are dropped before the non-empty check.
func newRecipe(input domain.RecipeInput) (*domain.Recipe, error) {
	r := &domain.Recipe{
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Image:        strings.TrimSpace(input.Image),
		PrepTime:     strings.TrimSpace(input.PrepTime),
		CookTime:     strings.TrimSpace(input.CookTime),
		Servings:     input.Servings,
		Category:     strings.TrimSpace(input.Category),
		Difficulty:   strings.TrimSpace(input.Difficulty),
		Ingredients:  compactLines(input.Ingredients),
		Instructions: compactLines(input.Instructions),
		Nutrition:    input.Nutrition,
	}

	required := []struct{ field, value string }{
		{FieldName, r.Name},
		{FieldDescription, r.Description},
		{FieldCategory, r.Category},
		{FieldDifficulty, r.Difficulty},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, domain.NewValidationError(f.field, MsgRequired)
		}
	}

	switch {
	case r.Servings < 0:
		return nil, domain.NewValidationError(FieldServings, MsgServingsNegative)
	case r.Servings == 0:
		r.Servings = DefaultServings
	}

	if len(r.Ingredients) == 0 {
		return nil, domain.NewValidationError(FieldIngredients, MsgListEmpty)
	}
	if len(r.Instructions) == 0 {
		return nil, domain.NewValidationError(FieldInstructions, MsgListEmpty)
	}
	return r, nil
}

// normalizeUpdate trims provided fields and rejects values that would break
// a stored recipe.
func normalizeUpdate(u *domain.RecipeUpdate) error {
	for _, f := range []struct {
		field string
		value *string
	}{
		{FieldName, u.Name},
		{FieldDescription, u.Description},
		{FieldCategory, u.Category},
		{FieldDifficulty, u.Difficulty},
	} {
		if f.value == nil {
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return domain.NewValidationError(f.field, MsgRequired)
		}
	}
	for _, p := range []*string{u.Image, u.PrepTime, u.CookTime} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}

	if u.Servings != nil && *u.Servings <= 0 {
		return domain.NewValidationError(FieldServings, MsgServingsNegative)
	}

	if u.Ingredients != nil {
		lines := compactLines(*u.Ingredients)
		if len(lines) == 0 {
			return domain.NewValidationError(FieldIngredients, MsgListEmpty)
		}
		u.Ingredients = &lines
	}
	if u.Instructions != nil {
		lines := compactLines(*u.Instructions)
		if len(lines) == 0 {
			return domain.NewValidationError(FieldInstructions, MsgListEmpty)
		}
		u.Instructions = &lines
	}
	return nil
}

// compactLines trims every line and drops the blank ones
func compactLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
