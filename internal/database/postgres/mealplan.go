package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

const plannedMealColumns = `id, plan_id, recipe_id, meal_type_id, day_date, servings, created_at`

// MealPlanRepository implements plan and planned meal persistence for PostgreSQL
type MealPlanRepository struct {
	db *pgxpool.Pool
}

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(db *pgxpool.Pool) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.IsDefault, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPlannedMeal(row pgx.Row) (domain.PlannedMeal, error) {
	var (
		m      domain.PlannedMeal
		typeID int
		day    time.Time
	)
	if err := row.Scan(&m.ID, &m.PlanID, &m.RecipeID, &typeID, &day, &m.Servings, &m.CreatedAt); err != nil {
		return m, err
	}
	slot, err := domain.MealSlotFromTypeID(typeID)
	if err != nil {
		return m, fmt.Errorf("%s %d: %w", ErrMsgInvalidMealType, typeID, err)
	}
	m.Slot = slot
	m.Date = domain.DateOf(day)
	return m, nil
}

func (r *MealPlanRepository) ListMealTypes(ctx context.Context) ([]domain.MealType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM meal_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMealTypes, err)
	}
	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MealType, error) {
		var t domain.MealType
		err := row.Scan(&t.ID, &t.Name)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryMealTypes, err)
	}
	return types, nil
}

func (r *MealPlanRepository) GetPlan(ctx context.Context, planID int64) (*domain.Plan, error) {
	query := `SELECT id, user_id, name, is_default, created_at FROM plans WHERE id = $1`
	plan, err := scanPlan(r.db.QueryRow(ctx, query, planID))
	if errors.Is(err, pgx.ErrNoRows) {
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
		WHERE user_id = $1 AND is_default
		ORDER BY id
		LIMIT 1
	`
	plan, err := scanPlan(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlan, err)
	}
	return plan, nil
}

// EnsureDefaultPlan relies on the partial unique index so concurrent callers
// end up with the same plan.
func (r *MealPlanRepository) EnsureDefaultPlan(ctx context.Context, userID int64, name string) (*domain.Plan, error) {
	query := `
		INSERT INTO plans (user_id, name, is_default)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id) WHERE is_default DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, name); err != nil {
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
		WHERE plan_id = $1 AND day_date = $2 AND meal_type_id = $3
	`
	m, err := scanPlannedMeal(r.db.QueryRow(ctx, query, planID, date.Time(), slot.TypeID()))
	if errors.Is(err, pgx.ErrNoRows) {
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
		WHERE plan_id = $1 AND day_date BETWEEN $2 AND $3
		ORDER BY day_date, meal_type_id
	`
	rows, err := r.db.Query(ctx, query, planID, start.Time(), end.Time())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	meals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlannedMeal, error) {
		return scanPlannedMeal(row)
	})
	if err != nil {
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
		WHERE p.user_id = $1
		  AND ($2::date IS NULL OR $3::date IS NULL OR pm.day_date BETWEEN $2::date AND $3::date)
		ORDER BY pm.day_date, mt.id, pm.id
	`
	from, to := dateRange(start, end)
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlannedMealView, error) {
		var (
			v   domain.PlannedMealView
			day time.Time
		)
		err := row.Scan(&v.ID, &v.PlanID, &v.RecipeID, &v.RecipeName, &v.MealTypeID, &v.MealTypeName, &day, &v.Servings)
		v.Date = domain.DateOf(day)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlannedMeals, err)
	}
	return views, nil
}

func (r *MealPlanRepository) UpsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) error {
	query := `
		INSERT INTO planned_meals (plan_id, recipe_id, meal_type_id, day_date, servings)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (plan_id, day_date, meal_type_id)
		DO UPDATE SET recipe_id = EXCLUDED.recipe_id, servings = EXCLUDED.servings
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, meal.PlanID, meal.RecipeID, meal.Slot.TypeID(), meal.Date.Time(), meal.Servings).
		Scan(&meal.ID, &meal.CreatedAt)
	if hasPgCode(err, PgErrorCodeForeignKeyViolation) {
		// The recipe was deleted between lookup and write
		return domain.ErrRecipeNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlannedMeal, err)
	}
	return nil
}

func (r *MealPlanRepository) ClearPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (bool, error) {
	query := `
		UPDATE planned_meals
		SET recipe_id = NULL
		WHERE plan_id = $1 AND day_date = $2 AND meal_type_id = $3
	`
	tag, err := r.db.Exec(ctx, query, planID, date.Time(), slot.TypeID())
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClearPlannedMeal, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MealPlanRepository) DeletePlannedMeal(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM planned_meals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlannedMeal, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlannedMealNotFound
	}
	return nil
}

func (r *MealPlanRepository) CountRecipeReferences(ctx context.Context, recipeID string) (int, error) {
	if !validID(recipeID) {
		return 0, nil
	}

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM planned_meals WHERE recipe_id = $1`, recipeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountRecipeRefs, err)
	}
	return n, nil
}
