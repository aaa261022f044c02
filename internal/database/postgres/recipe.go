package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

const recipeColumns = `id, name, description, image, prep_time, cook_time, servings, category,
	difficulty, ingredients, instructions, nutrition, created_at, updated_at`

// RecipeRepository implements the recipe repository for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func scanRecipe(row pgx.Row) (domain.Recipe, error) {
	var r domain.Recipe
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Image, &r.PrepTime, &r.CookTime,
		&r.Servings, &r.Category, &r.Difficulty, &r.Ingredients, &r.Instructions,
		&r.Nutrition, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// ListRecipes filters in SQL. Ties keep insertion order, like the in-memory store.
func (r *RecipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	orderBy := "seq"
	switch filter.Sort {
	case domain.RecipeSortName:
		orderBy = "lower(name), seq"
	case domain.RecipeSortNewest:
		orderBy = "created_at DESC, seq"
	}

	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE ($1::text = '' OR lower(category) = lower($1::text))
		  AND ($2::text = ''
		       OR position(lower($2::text) in lower(name)) > 0
		       OR position(lower($2::text) in lower(description)) > 0)
		ORDER BY ` + orderBy

	rows, err := r.db.Query(ctx, query, strings.TrimSpace(filter.Category), strings.TrimSpace(filter.Query))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}
	recipes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recipe, error) {
		return scanRecipe(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}
	return recipes, nil
}

func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if !validID(id) {
		return nil, nil
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	return &recipe, nil
}

func (r *RecipeRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
		recipe.UpdatedAt = recipe.CreatedAt
	}

	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Image, recipe.PrepTime, recipe.CookTime,
		recipe.Servings, recipe.Category, recipe.Difficulty, recipe.Ingredients, recipe.Instructions,
		recipe.Nutrition, recipe.CreatedAt, recipe.UpdatedAt)
	if hasPgCode(err, PgErrorCodeUniqueViolation) {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToInsertRecipe, recipe.ID, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	return nil
}

func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if !validID(recipe.ID) {
		return domain.ErrRecipeNotFound
	}
	if recipe.UpdatedAt.IsZero() {
		recipe.UpdatedAt = time.Now().UTC()
	}

	query := `
		UPDATE recipes
		SET name = $2, description = $3, image = $4, prep_time = $5, cook_time = $6,
		    servings = $7, category = $8, difficulty = $9, ingredients = $10,
		    instructions = $11, nutrition = $12, updated_at = $13
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Image, recipe.PrepTime, recipe.CookTime,
		recipe.Servings, recipe.Category, recipe.Difficulty, recipe.Ingredients, recipe.Instructions,
		recipe.Nutrition, recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrRecipeNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) CountRecipes(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipes, err)
	}
	return n, nil
}
