package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestFavorites_AddDeduplicates(t *testing.T) {
	favs := NewFavorites()

	if !favs.Add("Arrabiata") {
		t.Error("First add should report true")
	}
	if favs.Add("Arrabiata") {
		t.Error("Duplicate add should report false")
	}
	if favs.Len() != 1 {
		t.Errorf("Expected exactly 1 favorite, got %d", favs.Len())
	}

	// Matching is exact, so case variants are distinct entries
	favs.Add("arrabiata")
	favs.Add("Kumpir")

	expected := []string{"Arrabiata", "arrabiata", "Kumpir"}
	if !reflect.DeepEqual(favs.Items(), expected) {
		t.Errorf("Items() = %v, expected %v", favs.Items(), expected)
	}
	if !favs.Contains("Kumpir") {
		t.Error("Expected favorites to contain Kumpir")
	}
}

func TestFavorites_ItemsIsCopy(t *testing.T) {
	favs := NewFavorites()
	favs.Add("Moussaka")

	items := favs.Items()
	items[0] = "changed"

	if favs.Items()[0] != "Moussaka" {
		t.Error("Mutating Items() result should not affect favorites")
	}
}

func TestShoppingList_Seeded(t *testing.T) {
	list := NewShoppingList()

	if !reflect.DeepEqual(list.Items(), DefaultShoppingItems) {
		t.Errorf("Expected seed items %v, got %v", DefaultShoppingItems, list.Items())
	}
}

func TestShoppingList_AddAndClear(t *testing.T) {
	list := NewShoppingList()

	if list.Add("Salt") {
		t.Error("Seed item should already be present")
	}
	if !list.Add("Basil") {
		t.Error("New item should be added")
	}
	if list.Add("Basil") {
		t.Error("Duplicate item should not be added")
	}
	if list.Add("   ") {
		t.Error("Blank item should be ignored")
	}
	if list.Len() != len(DefaultShoppingItems)+1 {
		t.Errorf("Expected %d items, got %d", len(DefaultShoppingItems)+1, list.Len())
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d items", list.Len())
	}

	// Seeds do not come back after clearing
	if !list.Add("Salt") {
		t.Error("Salt should be addable again after Clear")
	}
}

func TestMealPlan_SetOverwrites(t *testing.T) {
	plan := NewMealPlan()

	if err := plan.Set(Monday, "Lasagne"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := plan.Set(Monday, "Ratatouille"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	recipe, ok := plan.Get(Monday)
	if !ok || recipe != "Ratatouille" {
		t.Errorf("Expected Monday to hold Ratatouille, got %q (ok=%v)", recipe, ok)
	}
	if plan.Len() != 1 {
		t.Errorf("Expected 1 planned day, got %d", plan.Len())
	}
}

func TestMealPlan_RejectsUnknownDay(t *testing.T) {
	plan := NewMealPlan()

	err := plan.Set(Weekday("Funday"), "Pancakes")
	if !errors.Is(err, ErrUnknownWeekday) {
		t.Errorf("Expected ErrUnknownWeekday, got %v", err)
	}
	if plan.Len() != 0 {
		t.Errorf("Expected no planned days, got %d", plan.Len())
	}
}

func TestMealPlan_AtMostSevenDays(t *testing.T) {
	plan := NewMealPlan()

	for round := 0; round < 3; round++ {
		for _, day := range Weekdays() {
			if err := plan.Set(day, "Soup"); err != nil {
				t.Fatalf("Set(%s) failed: %v", day, err)
			}
		}
	}

	if plan.Len() != 7 {
		t.Errorf("Expected 7 planned days, got %d", plan.Len())
	}
}

func TestMealPlan_EntriesInWeekOrder(t *testing.T) {
	plan := NewMealPlan()
	plan.Set(Sunday, "Roast")
	plan.Set(Tuesday, "Tacos")
	plan.Set(Monday, "Curry")

	expected := []PlannedMeal{
		{Day: Monday, Recipe: "Curry"},
		{Day: Tuesday, Recipe: "Tacos"},
		{Day: Sunday, Recipe: "Roast"},
	}
	if !reflect.DeepEqual(plan.Entries(), expected) {
		t.Errorf("Entries() = %v, expected %v", plan.Entries(), expected)
	}
}
