package mealplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/metrics"
	"github.com/osse101/FreshMeal_Go/internal/repository"
)

// Service defines the interface for calendar and planner operations
type Service interface {
	// Calendar operations act on the default plan of the configured user
	GetWeek(ctx context.Context, ref domain.Date) (*domain.WeekPlan, error)
	SetMeal(ctx context.Context, date domain.Date, slot domain.MealSlot, recipeID string) (*domain.SetMealResult, error)
	ClearMeal(ctx context.Context, date domain.Date, slot domain.MealSlot) error
	CountWeekMeals(ctx context.Context, ref domain.Date) (int, error)
	Today() domain.Date

	// Planner operations
	ListMealTypes(ctx context.Context) ([]domain.MealType, error)
	ListPlannedMeals(ctx context.Context, userID int64, start, end *domain.Date) ([]domain.PlannedMealView, error)
	GetDefaultPlan(ctx context.Context, userID int64) (*domain.Plan, error)
	AddPlannedMeal(ctx context.Context, input domain.PlannedMealInput) (*domain.SetMealResult, error)
	RemovePlannedMeal(ctx context.Context, id int64) error
}

// RecipeGetter resolves recipe references
type RecipeGetter interface {
	Get(ctx context.Context, id string) (*domain.Recipe, error)
}

// IngredientSyncer merges a recipe's ingredients into the shopping list
type IngredientSyncer interface {
	MergeRecipeIngredients(ctx context.Context, recipe domain.Recipe) ([]domain.ShoppingItem, error)
}

// Config tunes calendar behavior
type Config struct {
	Policy        domain.PastDatePolicy
	Location      *time.Location
	DefaultUserID int64
	// Clock defaults to time.Now
	Clock func() time.Time
}

type service struct {
	repo    repository.MealPlan
	recipes RecipeGetter
	syncer  IngredientSyncer
	cfg     Config
}

// NewService creates a new meal plan service
func NewService(repo repository.MealPlan, recipes RecipeGetter, syncer IngredientSyncer, cfg Config) Service {
	if cfg.Policy == "" {
		cfg.Policy = domain.PastDateReject
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DefaultUserID == 0 {
		cfg.DefaultUserID = 1
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &service{repo: repo, recipes: recipes, syncer: syncer, cfg: cfg}
}

// Today is the current calendar day in the configured location
func (s *service) Today() domain.Date {
	return domain.DateOf(s.cfg.Clock().In(s.cfg.Location))
}

func (s *service) GetWeek(ctx context.Context, ref domain.Date) (*domain.WeekPlan, error) {
	days := ref.WeekDays()
	week := &domain.WeekPlan{
		Start: days[0],
		End:   days[len(days)-1],
		Days:  make([]domain.DayPlan, len(days)),
	}
	for i, day := range days {
		meals := make([]domain.SlotEntry, len(domain.MealSlots))
		for j, slot := range domain.MealSlots {
			meals[j] = domain.SlotEntry{Slot: slot}
		}
		week.Days[i] = domain.DayPlan{Date: day, Meals: meals}
	}

	plan, err := s.repo.GetDefaultPlan(ctx, s.cfg.DefaultUserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlanFailed, err)
	}
	if plan == nil {
		return week, nil
	}

	entries, err := s.repo.ListPlanEntries(ctx, plan.ID, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListEntriesFailed, err)
	}

	for _, entry := range entries {
		cell := week.Meal(entry.Date, entry.Slot)
		if cell == nil {
			continue
		}
		id := entry.ID
		cell.PlannedMealID = &id
		if entry.RecipeID == nil {
			continue
		}
		recipe, err := s.recipes.Get(ctx, *entry.RecipeID)
		if errors.Is(err, domain.ErrRecipeNotFound) {
			logger.FromContext(ctx).Warn(LogMsgDanglingRecipe, "planned_meal_id", entry.ID, "recipe_id", *entry.RecipeID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgResolveRecipeFailed, err)
		}
		cell.Recipe = recipe
	}
	return week, nil
}

func (s *service) SetMeal(ctx context.Context, date domain.Date, slot domain.MealSlot, recipeID string) (*domain.SetMealResult, error) {
	if err := validateEntry(date, slot, recipeID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidMealInput, "error", err)
		return nil, err
	}

	recipe, err := s.recipes.Get(ctx, strings.TrimSpace(recipeID))
	if err != nil {
		return nil, err
	}

	plan, err := s.repo.EnsureDefaultPlan(ctx, s.cfg.DefaultUserID, domain.DefaultPlanName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEnsurePlanFailed, err)
	}

	result, err := s.place(ctx, plan.ID, date, slot, recipe, 0)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgMealSet, "date", date.String(), "slot", slot, "recipe_id", recipe.ID,
		"added_items", len(result.AddedItems), "sync_failed", result.SyncFailed)
	return result, nil
}

func (s *service) ClearMeal(ctx context.Context, date domain.Date, slot domain.MealSlot) error {
	log := logger.FromContext(ctx)

	if date.IsZero() {
		return domain.ErrInvalidDate
	}
	if slot.TypeID() == 0 {
		return domain.ErrInvalidMealSlot
	}

	plan, err := s.repo.GetDefaultPlan(ctx, s.cfg.DefaultUserID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgGetPlanFailed, err)
	}
	if plan == nil {
		log.Debug(LogMsgMealClearNoop, "date", date.String(), "slot", slot)
		return nil
	}

	touched, err := s.repo.ClearPlannedMeal(ctx, plan.ID, date, slot)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgClearEntryFailed, err)
	}
	if !touched {
		log.Debug(LogMsgMealClearNoop, "date", date.String(), "slot", slot)
		return nil
	}

	metrics.MealsCleared.Inc()
	log.Info(LogMsgMealCleared, "date", date.String(), "slot", slot)
	return nil
}

func (s *service) CountWeekMeals(ctx context.Context, ref domain.Date) (int, error) {
	plan, err := s.repo.GetDefaultPlan(ctx, s.cfg.DefaultUserID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgGetPlanFailed, err)
	}
	if plan == nil {
		return 0, nil
	}

	days := ref.WeekDays()
	entries, err := s.repo.ListPlanEntries(ctx, plan.ID, days[0], days[len(days)-1])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgListEntriesFailed, err)
	}
	n := 0
	for _, e := range entries {
		if !e.Cleared() {
			n++
		}
	}
	return n, nil
}

func (s *service) ListMealTypes(ctx context.Context) ([]domain.MealType, error) {
	types, err := s.repo.ListMealTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListMealTypesFailed, err)
	}
	return types, nil
}

func (s *service) ListPlannedMeals(ctx context.Context, userID int64, start, end *domain.Date) ([]domain.PlannedMealView, error) {
	if start == nil || end == nil {
		start, end = nil, nil
	}
	meals, err := s.repo.ListPlannedMeals(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListEntriesFailed, err)
	}
	return meals, nil
}

func (s *service) GetDefaultPlan(ctx context.Context, userID int64) (*domain.Plan, error) {
	plan, err := s.repo.GetDefaultPlan(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlanFailed, err)
	}
	if plan == nil {
		return nil, domain.ErrDefaultPlanNotFound
	}
	return plan, nil
}

func (s *service) AddPlannedMeal(ctx context.Context, input domain.PlannedMealInput) (*domain.SetMealResult, error) {
	log := logger.FromContext(ctx)

	slot, err := domain.MealSlotFromTypeID(input.MealTypeID)
	if err != nil {
		log.Warn(LogMsgInvalidMealInput, "meal_type_id", input.MealTypeID)
		return nil, err
	}
	if err := validateEntry(input.Date, slot, input.RecipeID); err != nil {
		log.Warn(LogMsgInvalidMealInput, "error", err)
		return nil, err
	}
	if input.Servings < 0 {
		return nil, domain.ErrInvalidServings
	}
	servings := input.Servings
	if servings == 0 {
		servings = DefaultServings
	}

	plan, err := s.repo.GetPlan(ctx, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlanFailed, err)
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}

	recipe, err := s.recipes.Get(ctx, strings.TrimSpace(input.RecipeID))
	if err != nil {
		return nil, err
	}

	result, err := s.place(ctx, plan.ID, input.Date, slot, recipe, servings)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgPlannedMealAdded, "planned_meal_id", result.Entry.ID, "plan_id", plan.ID,
		"added_items", len(result.AddedItems), "sync_failed", result.SyncFailed)
	return result, nil
}

func (s *service) RemovePlannedMeal(ctx context.Context, id int64) error {
	if err := s.repo.DeletePlannedMeal(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPlannedMealNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrMsgDeleteEntryFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgPlannedMealRemoved, "planned_meal_id", id)
	return nil
}

// place applies the past-date policy, upserts the entry and runs the
// ingredient merge. servings of 0 keeps the stored value, or the default
// for a new entry. A merge failure is reported in the result; the entry stays.
func (s *service) place(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot, recipe *domain.Recipe, servings int) (*domain.SetMealResult, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetPlannedMeal(ctx, planID, date, slot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetEntryFailed, err)
	}
	if err := s.checkPastDate(date, existing != nil); err != nil {
		log.Warn(LogMsgPastDateRejected, "date", date.String(), "policy", s.cfg.Policy)
		return nil, err
	}

	if servings == 0 {
		servings = DefaultServings
		if existing != nil && existing.Servings > 0 {
			servings = existing.Servings
		}
	}

	recipeID := recipe.ID
	entry := &domain.PlannedMeal{
		PlanID:   planID,
		RecipeID: &recipeID,
		Slot:     slot,
		Date:     date,
		Servings: servings,
	}
	if err := s.repo.UpsertPlannedMeal(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpsertEntryFailed, err)
	}
	metrics.MealsPlanned.WithLabelValues(string(slot)).Inc()

	result := &domain.SetMealResult{Entry: *entry, AddedItems: []domain.ShoppingItem{}}
	added, err := s.syncer.MergeRecipeIngredients(ctx, *recipe)
	if err != nil {
		metrics.IngredientSyncErrors.Inc()
		log.Warn(LogMsgSyncFailed, "recipe_id", recipe.ID, "error", err)
		result.SyncFailed = true
		return result, nil
	}
	result.AddedItems = added
	return result, nil
}

// checkPastDate applies the configured policy. exists reports whether the
// slot already has an entry, cleared entries included.
func (s *service) checkPastDate(date domain.Date, exists bool) error {
	if !date.Before(s.Today()) {
		return nil
	}
	switch s.cfg.Policy {
	case domain.PastDateAllow:
		return nil
	case domain.PastDateRejectNew:
		if exists {
			return nil
		}
	}
	return domain.ErrPastDate
}

func validateEntry(date domain.Date, slot domain.MealSlot, recipeID string) error {
	if date.IsZero() {
		return domain.ErrInvalidDate
	}
	if slot.TypeID() == 0 {
		return domain.ErrInvalidMealSlot
	}
	if strings.TrimSpace(recipeID) == "" {
		return domain.ErrRecipeRequired
	}
	return nil
}
