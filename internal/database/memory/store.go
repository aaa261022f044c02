// Package memory is a process-local storage driver. Every repository call
// takes the store mutex, so each call is atomic but nothing spans calls.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/repository"
	"github.com/osse101/FreshMeal_Go/internal/seed"
)

type mealKey struct {
	planID int64
	date   string
	slot   domain.MealSlot
}

func keyOf(planID int64, date domain.Date, slot domain.MealSlot) mealKey {
	return mealKey{planID: planID, date: date.String(), slot: slot}
}

type state struct {
	recipes     map[string]domain.Recipe
	recipeOrder []string

	plans      map[int64]domain.Plan
	nextPlanID int64

	meals      map[int64]domain.PlannedMeal
	mealIndex  map[mealKey]int64
	nextMealID int64

	items       map[string]domain.ShoppingItem
	nextItemSeq int64
}

func newState() state {
	return state{
		recipes:   make(map[string]domain.Recipe),
		plans:     make(map[int64]domain.Plan),
		meals:     make(map[int64]domain.PlannedMeal),
		mealIndex: make(map[mealKey]int64),
		items:     make(map[string]domain.ShoppingItem),
	}
}

// Store keeps all entities in maps guarded by one mutex.
type Store struct {
	mu    sync.RWMutex
	state state
	now   func() time.Time
}

var (
	_ repository.Store    = (*Store)(nil)
	_ repository.Recipe   = (*Store)(nil)
	_ repository.MealPlan = (*Store)(nil)
	_ repository.Shopping = (*Store)(nil)
)

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{state: newState(), now: time.Now}
}

// Reset drops every entity
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState()
}

// Seed loads the embedded demo data
func (s *Store) Seed(ctx context.Context) error {
	doc, err := seed.Demo()
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, s, doc, seed.Options{Now: s.now})
	return err
}

func (s *Store) Recipes() repository.Recipe     { return s }
func (s *Store) MealPlans() repository.MealPlan { return s }
func (s *Store) Shopping() repository.Shopping  { return s }

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op
func (s *Store) Close() error { return nil }

// ---------------------------------------------------------------------------
// Recipes
// ---------------------------------------------------------------------------

func (s *Store) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Recipe, 0, len(s.state.recipeOrder))
	for _, id := range s.state.recipeOrder {
		out = append(out, s.state.recipes[id].Clone())
	}
	return domain.FilterRecipes(out, filter), nil
}

func (s *Store) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.state.recipes[id]
	if !ok {
		return nil, nil
	}
	c := r.Clone()
	return &c, nil
}

func (s *Store) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = s.now().UTC()
		recipe.UpdatedAt = recipe.CreatedAt
	}
	if _, exists := s.state.recipes[recipe.ID]; !exists {
		s.state.recipeOrder = append(s.state.recipeOrder, recipe.ID)
	}
	s.state.recipes[recipe.ID] = recipe.Clone()
	return nil
}

func (s *Store) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.state.recipes[recipe.ID]
	if !ok {
		return domain.ErrRecipeNotFound
	}
	updated := recipe.Clone()
	updated.CreatedAt = current.CreatedAt
	s.state.recipes[recipe.ID] = updated
	return nil
}

func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(s.state.recipes, id)
	for i, o := range s.state.recipeOrder {
		if o == id {
			s.state.recipeOrder = append(s.state.recipeOrder[:i], s.state.recipeOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) CountRecipes(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.recipes), nil
}

// ---------------------------------------------------------------------------
// Meal plans
// ---------------------------------------------------------------------------

func (s *Store) ListMealTypes(ctx context.Context) ([]domain.MealType, error) {
	return domain.MealTypes(), nil
}

func (s *Store) GetPlan(ctx context.Context, planID int64) (*domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.state.plans[planID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) GetDefaultPlan(ctx context.Context, userID int64) (*domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultPlanLocked(userID), nil
}

func (s *Store) EnsureDefaultPlan(ctx context.Context, userID int64, name string) (*domain.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.defaultPlanLocked(userID); p != nil {
		return p, nil
	}
	s.state.nextPlanID++
	p := domain.Plan{
		ID:        s.state.nextPlanID,
		UserID:    userID,
		Name:      name,
		IsDefault: true,
		CreatedAt: s.now().UTC(),
	}
	s.state.plans[p.ID] = p
	return &p, nil
}

func (s *Store) defaultPlanLocked(userID int64) *domain.Plan {
	var found *domain.Plan
	for _, p := range s.state.plans {
		if p.UserID == userID && p.IsDefault && (found == nil || p.ID < found.ID) {
			p := p
			found = &p
		}
	}
	return found
}

func (s *Store) GetPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (*domain.PlannedMeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.state.mealIndex[keyOf(planID, date, slot)]
	if !ok {
		return nil, nil
	}
	m := clonePlannedMeal(s.state.meals[id])
	return &m, nil
}

func (s *Store) ListPlanEntries(ctx context.Context, planID int64, start, end domain.Date) ([]domain.PlannedMeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PlannedMeal, 0)
	for _, m := range s.state.meals {
		if m.PlanID != planID || m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		out = append(out, clonePlannedMeal(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Slot.TypeID() < out[j].Slot.TypeID()
	})
	return out, nil
}

func (s *Store) ListPlannedMeals(ctx context.Context, userID int64, start, end *domain.Date) ([]domain.PlannedMealView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PlannedMealView, 0)
	for _, m := range s.state.meals {
		plan, ok := s.state.plans[m.PlanID]
		if !ok || plan.UserID != userID || m.RecipeID == nil {
			continue
		}
		if start != nil && end != nil && (m.Date.Before(*start) || m.Date.After(*end)) {
			continue
		}
		recipe, ok := s.state.recipes[*m.RecipeID]
		if !ok {
			continue
		}
		out = append(out, domain.PlannedMealView{
			ID:           m.ID,
			PlanID:       m.PlanID,
			RecipeID:     recipe.ID,
			RecipeName:   recipe.Name,
			MealTypeID:   m.Slot.TypeID(),
			MealTypeName: m.Slot.Title(),
			Date:         m.Date,
			Servings:     m.Servings,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].MealTypeID != out[j].MealTypeID {
			return out[i].MealTypeID < out[j].MealTypeID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpsertPlannedMeal(ctx context.Context, meal *domain.PlannedMeal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyOf(meal.PlanID, meal.Date, meal.Slot)
	if id, ok := s.state.mealIndex[key]; ok {
		current := s.state.meals[id]
		meal.ID = current.ID
		meal.CreatedAt = current.CreatedAt
	} else {
		s.state.nextMealID++
		meal.ID = s.state.nextMealID
		meal.CreatedAt = s.now().UTC()
		s.state.mealIndex[key] = meal.ID
	}
	s.state.meals[meal.ID] = clonePlannedMeal(*meal)
	return nil
}

func (s *Store) ClearPlannedMeal(ctx context.Context, planID int64, date domain.Date, slot domain.MealSlot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.state.mealIndex[keyOf(planID, date, slot)]
	if !ok {
		return false, nil
	}
	m := s.state.meals[id]
	m.RecipeID = nil
	s.state.meals[id] = m
	return true, nil
}

func (s *Store) DeletePlannedMeal(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.state.meals[id]
	if !ok {
		return domain.ErrPlannedMealNotFound
	}
	delete(s.state.meals, id)
	delete(s.state.mealIndex, keyOf(m.PlanID, m.Date, m.Slot))
	return nil
}

func (s *Store) CountRecipeReferences(ctx context.Context, recipeID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, m := range s.state.meals {
		if m.RecipeID != nil && *m.RecipeID == recipeID {
			n++
		}
	}
	return n, nil
}

func clonePlannedMeal(m domain.PlannedMeal) domain.PlannedMeal {
	if m.RecipeID != nil {
		id := *m.RecipeID
		m.RecipeID = &id
	}
	return m
}

// ---------------------------------------------------------------------------
// Shopping list
// ---------------------------------------------------------------------------

func (s *Store) ListShoppingItems(ctx context.Context) ([]domain.ShoppingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ShoppingItem, 0, len(s.state.items))
	for _, item := range s.state.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (s *Store) GetShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.state.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store) InsertShoppingItems(ctx context.Context, items []domain.ShoppingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range items {
		s.state.nextItemSeq++
		items[i].Seq = s.state.nextItemSeq
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = s.now().UTC()
		}
		s.state.items[items[i].ID] = items[i]
	}
	return nil
}

func (s *Store) UpdateShoppingItem(ctx context.Context, item *domain.ShoppingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.state.items[item.ID]
	if !ok {
		return domain.ErrShoppingItemNotFound
	}
	current.Name = item.Name
	current.Category = item.Category
	current.Completed = item.Completed
	s.state.items[item.ID] = current
	*item = current
	return nil
}

func (s *Store) ToggleShoppingItem(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.state.items[id]
	if !ok {
		return nil, domain.ErrShoppingItemNotFound
	}
	item.Completed = !item.Completed
	s.state.items[id] = item
	return &item, nil
}

func (s *Store) DeleteShoppingItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.items[id]; !ok {
		return domain.ErrShoppingItemNotFound
	}
	delete(s.state.items, id)
	return nil
}

func (s *Store) DeleteCompletedShoppingItems(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, item := range s.state.items {
		if item.Completed {
			delete(s.state.items, id)
			n++
		}
	}
	return n, nil
}
