package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

const recipeColumns = `id, name, description, image, prep_time, cook_time, servings, category,
	difficulty, ingredients, instructions, nutrition, created_at, updated_at`

// RecipeRepository implements the recipe repository for SQLite
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (domain.Recipe, error) {
	var (
		r                                    domain.Recipe
		ingredients, instructions, nutrition string
		created, updated                     string
	)
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Image, &r.PrepTime, &r.CookTime,
		&r.Servings, &r.Category, &r.Difficulty, &ingredients, &instructions,
		&nutrition, &created, &updated)
	if err != nil {
		return r, err
	}

	if err := decodeJSON(ingredients, &r.Ingredients); err != nil {
		return r, err
	}
	if err := decodeJSON(instructions, &r.Instructions); err != nil {
		return r, err
	}
	if err := decodeJSON(nutrition, &r.Nutrition); err != nil {
		return r, err
	}
	if r.CreatedAt, err = parseTime(created); err != nil {
		return r, err
	}
	if r.UpdatedAt, err = parseTime(updated); err != nil {
		return r, err
	}
	return r, nil
}

// recipeArgs encodes the list and object columns of r
func recipeArgs(r *domain.Recipe) (ingredients, instructions, nutrition string, err error) {
	if ingredients, err = encodeJSON(r.Ingredients); err != nil {
		return
	}
	if instructions, err = encodeJSON(r.Instructions); err != nil {
		return
	}
	nutrition, err = encodeJSON(r.Nutrition)
	return
}

// ListRecipes filters in SQL. Ties keep insertion order.
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
		WHERE (?1 = '' OR lower(category) = lower(?1))
		  AND (?2 = ''
		       OR instr(lower(name), lower(?2)) > 0
		       OR instr(lower(description), lower(?2)) > 0)
		ORDER BY ` + orderBy

	rows, err := r.db.QueryContext(ctx, query, strings.TrimSpace(filter.Category), strings.TrimSpace(filter.Query))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRecipes, err)
	}
	return recipes, nil
}

func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = ?`
	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
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
	ingredients, instructions, nutrition, err := recipeArgs(recipe)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}

	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Image, recipe.PrepTime, recipe.CookTime,
		recipe.Servings, recipe.Category, recipe.Difficulty, ingredients, instructions,
		nutrition, formatTime(recipe.CreatedAt), formatTime(recipe.UpdatedAt))
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToInsertRecipe, recipe.ID, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	return nil
}

func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.UpdatedAt.IsZero() {
		recipe.UpdatedAt = time.Now().UTC()
	}
	ingredients, instructions, nutrition, err := recipeArgs(recipe)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	}

	query := `
		UPDATE recipes
		SET name = ?2, description = ?3, image = ?4, prep_time = ?5, cook_time = ?6,
		    servings = ?7, category = ?8, difficulty = ?9, ingredients = ?10,
		    instructions = ?11, nutrition = ?12, updated_at = ?13
		WHERE id = ?1
	`
	res, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Image, recipe.PrepTime, recipe.CookTime,
		recipe.Servings, recipe.Category, recipe.Difficulty, ingredients, instructions,
		nutrition, formatTime(recipe.UpdatedAt))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	} else if n == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	} else if n == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) CountRecipes(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipes, err)
	}
	return n, nil
}
