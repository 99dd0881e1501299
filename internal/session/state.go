package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ytget/cuisine-explorer/internal/model"
)

// ErrNoRecipe is returned by actions that need a loaded recipe
var ErrNoRecipe = errors.New("no recipe loaded")

// State is the process-local application state
type State struct {
	mu        sync.RWMutex
	current   *model.Recipe
	favorites *model.Favorites
	shopping  *model.ShoppingList
	plan      *model.MealPlan
	onUpdate  func() // callback for UI updates
}

// NewState creates a state with empty favorites and plan and a seeded
// shopping list
func NewState() *State {
	return &State{
		favorites: model.NewFavorites(),
		shopping:  model.NewShoppingList(),
		plan:      model.NewMealPlan(),
	}
}

// SetUpdateCallback sets the function called after every collection change
func (s *State) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetCurrent replaces the recipe on screen
func (s *State) SetCurrent(r *model.Recipe) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}

// Current returns the recipe on screen, or nil
func (s *State) Current() *model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// AddCurrentToFavorites stores the current recipe name. added is false when
// the name was already a favorite.
func (s *State) AddCurrentToFavorites() (name string, added bool, err error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return "", false, ErrNoRecipe
	}
	name = s.current.Name
	added = s.favorites.Add(name)
	s.mu.Unlock()

	if added {
		s.notifyUpdate()
	}
	return name, added, nil
}

// AddCurrentToShoppingList adds every ingredient name of the current recipe
// and returns how many were new
func (s *State) AddCurrentToShoppingList() (int, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return 0, ErrNoRecipe
	}
	added := 0
	for _, name := range s.current.IngredientNames() {
		if s.shopping.Add(name) {
			added++
		}
	}
	s.mu.Unlock()

	if added > 0 {
		s.notifyUpdate()
	}
	return added, nil
}

// ClearShoppingList empties the list, seed items included
func (s *State) ClearShoppingList() {
	s.mu.Lock()
	s.shopping.Clear()
	s.mu.Unlock()
	s.notifyUpdate()
}

// PlanCurrent assigns the current recipe to day
func (s *State) PlanCurrent(day model.Weekday) (string, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return "", ErrNoRecipe
	}
	name := s.current.Name
	err := s.plan.Set(day, name)
	s.mu.Unlock()

	if err != nil {
		return "", fmt.Errorf("failed to plan %q: %w", name, err)
	}
	s.notifyUpdate()
	return name, nil
}

// CurrentIngredientLines returns the "measure name" lines of the current recipe
func (s *State) CurrentIngredientLines() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoRecipe
	}
	return s.current.IngredientLines(), nil
}

// Favorites returns a snapshot of the favorite names
func (s *State) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.Items()
}

// ShoppingList returns a snapshot of the shopping list
func (s *State) ShoppingList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shopping.Items()
}

// MealPlan returns the planned days in week order
func (s *State) MealPlan() []model.PlannedMeal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan.Entries()
}

// notifyUpdate calls the update callback outside the lock
func (s *State) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback()
	}
}
