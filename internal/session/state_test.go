package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ytget/cuisine-explorer/internal/model"
)

func sampleRecipe() *model.Recipe {
	return &model.Recipe{
		ID:   "52772",
		Name: "Teriyaki Chicken Casserole",
		Ingredients: []model.Ingredient{
			{Measure: "3/4 cup", Name: "soy sauce"},
			{Measure: "", Name: "Garlic"},
			{Measure: "1 tbs", Name: "water"},
		},
	}
}

func TestNewState(t *testing.T) {
	state := NewState()

	if state.Current() != nil {
		t.Error("Expected no current recipe")
	}
	if len(state.Favorites()) != 0 {
		t.Errorf("Expected no favorites, got %v", state.Favorites())
	}
	if !reflect.DeepEqual(state.ShoppingList(), model.DefaultShoppingItems) {
		t.Errorf("Expected seeded shopping list, got %v", state.ShoppingList())
	}
	if len(state.MealPlan()) != 0 {
		t.Errorf("Expected empty meal plan, got %v", state.MealPlan())
	}
}

func TestActionsWithoutRecipe(t *testing.T) {
	state := NewState()

	if _, _, err := state.AddCurrentToFavorites(); !errors.Is(err, ErrNoRecipe) {
		t.Errorf("AddCurrentToFavorites() error = %v, expected %v", err, ErrNoRecipe)
	}
	if _, err := state.AddCurrentToShoppingList(); !errors.Is(err, ErrNoRecipe) {
		t.Errorf("AddCurrentToShoppingList() error = %v, expected %v", err, ErrNoRecipe)
	}
	if _, err := state.PlanCurrent(model.Monday); !errors.Is(err, ErrNoRecipe) {
		t.Errorf("PlanCurrent() error = %v, expected %v", err, ErrNoRecipe)
	}
	if _, err := state.CurrentIngredientLines(); !errors.Is(err, ErrNoRecipe) {
		t.Errorf("CurrentIngredientLines() error = %v, expected %v", err, ErrNoRecipe)
	}
}

func TestAddCurrentToFavorites(t *testing.T) {
	state := NewState()
	state.SetCurrent(sampleRecipe())

	name, added, err := state.AddCurrentToFavorites()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if name != "Teriyaki Chicken Casserole" || !added {
		t.Errorf("AddCurrentToFavorites() = (%q, %v), expected (%q, true)", name, added, "Teriyaki Chicken Casserole")
	}

	_, added, _ = state.AddCurrentToFavorites()
	if added {
		t.Error("Expected second add to report a duplicate")
	}
	if len(state.Favorites()) != 1 {
		t.Errorf("Expected exactly one favorite, got %v", state.Favorites())
	}
}

func TestAddCurrentToShoppingList(t *testing.T) {
	state := NewState()
	state.SetCurrent(sampleRecipe())

	added, err := state.AddCurrentToShoppingList()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Garlic is a seed item
	if added != 2 {
		t.Errorf("AddCurrentToShoppingList() = %d, expected 2", added)
	}

	items := state.ShoppingList()
	if len(items) != len(model.DefaultShoppingItems)+2 {
		t.Errorf("Expected %d items, got %v", len(model.DefaultShoppingItems)+2, items)
	}

	added, _ = state.AddCurrentToShoppingList()
	if added != 0 {
		t.Errorf("Expected no new items on repeat, got %d", added)
	}

	state.ClearShoppingList()
	if len(state.ShoppingList()) != 0 {
		t.Errorf("Expected empty list after clear, got %v", state.ShoppingList())
	}
}

func TestPlanCurrent(t *testing.T) {
	state := NewState()
	state.SetCurrent(sampleRecipe())

	if _, err := state.PlanCurrent(model.Monday); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	state.SetCurrent(&model.Recipe{Name: "Pancakes"})
	name, err := state.PlanCurrent(model.Monday)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if name != "Pancakes" {
		t.Errorf("PlanCurrent() = %q, expected %q", name, "Pancakes")
	}

	entries := state.MealPlan()
	expected := []model.PlannedMeal{{Day: model.Monday, Recipe: "Pancakes"}}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("MealPlan() = %v, expected %v", entries, expected)
	}

	if _, err := state.PlanCurrent(model.Weekday("Funday")); !errors.Is(err, model.ErrUnknownWeekday) {
		t.Errorf("PlanCurrent(Funday) error = %v, expected %v", err, model.ErrUnknownWeekday)
	}
}

func TestCurrentIngredientLines(t *testing.T) {
	state := NewState()
	state.SetCurrent(sampleRecipe())

	lines, err := state.CurrentIngredientLines()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{"3/4 cup soy sauce", "Garlic", "1 tbs water"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("CurrentIngredientLines() = %v, expected %v", lines, expected)
	}
}

func TestUpdateCallback(t *testing.T) {
	state := NewState()
	calls := 0
	state.SetUpdateCallback(func() { calls++ })
	state.SetCurrent(sampleRecipe())

	state.AddCurrentToFavorites()
	state.AddCurrentToFavorites() // duplicate, no update
	state.AddCurrentToShoppingList()
	state.PlanCurrent(model.Friday)
	state.ClearShoppingList()

	if calls != 4 {
		t.Errorf("Expected 4 updates, got %d", calls)
	}
}
