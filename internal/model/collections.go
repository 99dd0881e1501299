package model

import (
	"fmt"
	"strings"
)

// DefaultShoppingItems seed every new shopping list
var DefaultShoppingItems = []string{"Olive oil", "Salt", "Black pepper", "Garlic", "Onions"}

// Favorites is an insertion-ordered set of recipe names
type Favorites struct {
	names []string
	index map[string]struct{}
}

// NewFavorites creates an empty favorites list
func NewFavorites() *Favorites {
	return &Favorites{
		names: make([]string, 0),
		index: make(map[string]struct{}),
	}
}

// Add appends name unless an identical entry exists. Returns true if added.
func (f *Favorites) Add(name string) bool {
	if _, exists := f.index[name]; exists {
		return false
	}
	f.index[name] = struct{}{}
	f.names = append(f.names, name)
	return true
}

// Contains checks for an exact match
func (f *Favorites) Contains(name string) bool {
	_, exists := f.index[name]
	return exists
}

// Items returns a copy of the names in insertion order
func (f *Favorites) Items() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of favorites
func (f *Favorites) Len() int {
	return len(f.names)
}

// ShoppingList is an insertion-ordered set of ingredient lines
type ShoppingList struct {
	items []string
	index map[string]struct{}
}

// NewShoppingList creates a list seeded with DefaultShoppingItems
func NewShoppingList() *ShoppingList {
	s := &ShoppingList{
		items: make([]string, 0, len(DefaultShoppingItems)),
		index: make(map[string]struct{}),
	}
	for _, item := range DefaultShoppingItems {
		s.Add(item)
	}
	return s
}

// Add appends item unless an identical line exists. Blank items are ignored.
func (s *ShoppingList) Add(item string) bool {
	item = strings.TrimSpace(item)
	if item == "" {
		return false
	}
	if _, exists := s.index[item]; exists {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Clear removes every item, seeds included
func (s *ShoppingList) Clear() {
	s.items = s.items[:0]
	s.index = make(map[string]struct{})
}

// Items returns a copy of the lines in insertion order
func (s *ShoppingList) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of lines
func (s *ShoppingList) Len() int {
	return len(s.items)
}

// PlannedMeal is one filled slot of the meal plan
type PlannedMeal struct {
	Day    Weekday
	Recipe string
}

// MealPlan maps each weekday to at most one recipe name
type MealPlan struct {
	days map[Weekday]string
}

// NewMealPlan creates an empty plan
func NewMealPlan() *MealPlan {
	return &MealPlan{days: make(map[Weekday]string)}
}

// Set assigns recipe to day, overwriting any previous assignment
func (p *MealPlan) Set(day Weekday, recipe string) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownWeekday, string(day))
	}
	p.days[day] = recipe
	return nil
}

// Get returns the recipe planned for day
func (p *MealPlan) Get(day Weekday) (string, bool) {
	recipe, ok := p.days[day]
	return recipe, ok
}

// Entries returns the planned days in week order
func (p *MealPlan) Entries() []PlannedMeal {
	var entries []PlannedMeal
	for _, day := range Weekdays() {
		if recipe, ok := p.days[day]; ok {
			entries = append(entries, PlannedMeal{Day: day, Recipe: recipe})
		}
	}
	return entries
}

// Len returns the number of planned days
func (p *MealPlan) Len() int {
	return len(p.days)
}
