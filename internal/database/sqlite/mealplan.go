package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

const plannedMealColumns = `id, plan_id, recipe_id, meal_type_id, day_date, servings, created_at`

// MealPlanRepository implements plan and planned meal persistence for SQLite
type MealPlanRepository struct {
	db *sql.DB
}

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(db *sql.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var (
		p       domain.Plan
		created string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.IsDefault, &created); err != nil {
		return nil, err
	}
	t, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = t
	return &p, nil
}

func scanPlannedMeal(row rowScanner) (domain.PlannedMeal, error) {
	var (
		m            domain.PlannedMeal
		typeID       int
		day, created string
	)
	if err := row.Scan(&m.ID, &m.PlanID, &m.RecipeID, &typeID, &day, &m.Servings, &created); err != nil {
		return m, err
	}
	slot, err := domain.MealSlotFromTypeID(typeID)
	if err != nil {
		return m, fmt.Errorf("%s %d: %w", ErrMsgInvalidMealType, typeID, err)
	}
	m.Slot = slot
	if m.Date, err = parseDate(day); err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(created); err != nil {
		return m, err
	}
	return m, nil
}

func (r *MealPlanRepository) ListMealTypes(ctx context.Context) ([]domain.MealType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM meal_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMealTypes, err)
	}
	defer rows.Close()

	types := make([]domain.MealType, 0, len(domain.MealSlots))
	for rows.Next() {
		var t domain.MealType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMealTypes, err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMealTypes, err)
	}
	return types, nil
}

func (r *MealPlanRepository) GetPlan(ctx context.Context, planID int64) (*domain.Plan, error) {
	query := `SELECT id, user_id, name, is_default, created_at FROM plans WHERE id = ?`
	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, planID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlan, err)
	}
	return plan, nil
}

func (r *MealPlanRepository) GetDefaultPlan(ctx context.Context, userID int64) (*domain.Plan, error) {
	query := `
		SELECT id, user_id, name, is_default, created_at
		FROM plans
		WHERE user_id = ? AND is_default = 1
		ORDER BY id
		LIMIT 1
	`
	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlan, err)
	}
	return plan, nil
}

func (r *MealPlanRepository) EnsureDefaultPlan(ctx context.Context, userID int64, name string) (*domain.Plan, error) {
	query := `
		INSERT INTO plans (user_id, name, is_default, created_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (user_id) WHERE is_default = 1 DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, name, formatTime(time.Now())); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsurePlan, err)
	}

	plan, err := r.GetDefaultPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsurePlan, domain.ErrDefaultPlanNotFound)
	}
	return plan, nil
}

func (r *MealPlanRepository) GetPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (*domain.PlannedMeal, error) {
	query := `
		SELECT ` + plannedMealColumns + `
		FROM planned_meals
		WHERE plan_id = ? AND day_date = ? AND meal_type_id = ?
	`
	m, err := scanPlannedMeal(r.db.QueryRowContext(ctx, query, planID, date.String(), slot.TypeID()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlannedMeal, err)
	}
	return &m, nil
}

func (r *MealPlanRepository) ListPlanEntries(ctx context.Context, planID int64, start, end domain.Date) ([]domain.PlannedMeal, error) {
	query := `
		SELECT ` + plannedMealColumns + `
		FROM planned_meals
		WHERE plan_id = ? AND day_date BETWEEN ? AND ?
		ORDER BY day_date, meal_type_id
	`
	rows, err := r.db.QueryContext(ctx, query, planID, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	defer rows.Close()

	meals := make([]domain.PlannedMeal, 0)
	for rows.Next() {
		m, err := scanPlannedMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	return meals, nil
}

func (r *MealPlanRepository) ListPlannedMeals(ctx context.Context, userID int64, start, end *domain.Date) ([]domain.PlannedMealView, error) {
	query := `
		SELECT pm.id, pm.plan_id, pm.recipe_id, r.name, mt.id, mt.name, pm.day_date, pm.servings
		FROM planned_meals pm
		JOIN plans p ON p.id = pm.plan_id
		JOIN recipes r ON r.id = pm.recipe_id
		JOIN meal_types mt ON mt.id = pm.meal_type_id
		WHERE p.user_id = ?1
		  AND (?2 IS NULL OR ?3 IS NULL OR pm.day_date BETWEEN ?2 AND ?3)
		ORDER BY pm.day_date, mt.id, pm.id
	`
	from, to := dateRange(start, end)
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	defer rows.Close()

	views := make([]domain.PlannedMealView, 0)
	for rows.Next() {
		var (
			v   domain.PlannedMealView
			day string
		)
		if err := rows.Scan(&v.ID, &v.PlanID, &v.RecipeID, &v.RecipeName, &v.MealTypeID, &v.MealTypeName, &day, &v.Servings); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
		}
		if v.Date, err = parseDate(day); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	return views, nil
}

func (r *MealPlanRepository) UpsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) error {
	query := `
		INSERT INTO planned_meals (plan_id, recipe_id, meal_type_id, day_date, servings, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (plan_id, day_date, meal_type_id)
		DO UPDATE SET recipe_id = excluded.recipe_id, servings = excluded.servings
		RETURNING id, created_at
	`
	var created string
	err := r.db.QueryRowContext(ctx, query,
		meal.PlanID, meal.RecipeID, meal.Slot.TypeID(), meal.Date.String(), meal.Servings, formatTime(time.Now())).
		Scan(&meal.ID, &created)
	if isForeignKeyViolation(err) {
		return domain.ErrRecipeNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlannedMeal, err)
	}
	if meal.CreatedAt, err = parseTime(created); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlannedMeal, err)
	}
	return nil
}

func (r *MealPlanRepository) ClearPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (bool, error) {
	query := `
		UPDATE planned_meals
		SET recipe_id = NULL
		WHERE plan_id = ? AND day_date = ? AND meal_type_id = ?
	`
	res, err := r.db.ExecContext(ctx, query, planID, date.String(), slot.TypeID())
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClearPlannedMeal, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClearPlannedMeal, err)
	}
	return n > 0, nil
}

func (r *MealPlanRepository) DeletePlannedMeal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM planned_meals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlannedMeal, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlannedMeal, err)
	} else if n == 0 {
		return domain.ErrPlannedMealNotFound
	}
	return nil
}

func (r *MealPlanRepository) CountRecipeReferences(ctx context.Context, recipeID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM planned_meals WHERE recipe_id = ?`, recipeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipeRefs, err)
	}
	return n, nil
}
