package session

import (
	"testing"

	"github.com/ytget/cuisine-explorer/internal/mealdb"
	"github.com/ytget/cuisine-explorer/internal/model"
)

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		name     string
		kind     mealdb.QueryKind
		value    string
		expected mealdb.Query
	}{
		{"country", mealdb.QueryByCountry, "Italian", mealdb.ByCountry("Italian")},
		{"category", mealdb.QueryByCategory, "Seafood", mealdb.ByCategory("Seafood")},
		{"all country", mealdb.QueryByCountry, model.AllOption, mealdb.Random()},
		{"all category", mealdb.QueryByCategory, model.AllOption, mealdb.Random()},
		{"blank", mealdb.QueryByCountry, "", mealdb.Random()},
		{"non-filter kind", mealdb.QueryByName, "Soup", mealdb.Random()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterQuery(tt.kind, tt.value); got != tt.expected {
				t.Errorf("FilterQuery() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSurpriseQuery(t *testing.T) {
	first := func(n int) int { return 0 }
	if got := SurpriseQuery(first); got != mealdb.ByCountry("American") {
		t.Errorf("SurpriseQuery(first) = %v, expected %v", got, mealdb.ByCountry("American"))
	}

	// 1 selects categories on the first draw, then the second entry
	second := func(n int) int { return 1 }
	if got := SurpriseQuery(second); got != mealdb.ByCategory("Chicken") {
		t.Errorf("SurpriseQuery(second) = %v, expected %v", got, mealdb.ByCategory("Chicken"))
	}

	last := func(n int) int { return n - 1 }
	got := SurpriseQuery(last)
	if got.Kind != mealdb.QueryByCategory || got.Value != "Starter" {
		t.Errorf("SurpriseQuery(last) = %v, expected category Starter", got)
	}

	outOfRange := func(n int) int { return n + 5 }
	if got := SurpriseQuery(outOfRange); got.Value == model.AllOption || !got.IsFilter() {
		t.Errorf("SurpriseQuery(outOfRange) = %v, expected a filter query", got)
	}
}

func TestSurpriseQueryNeverAll(t *testing.T) {
	for n := 0; n < 60; n++ {
		i := n
		pick := func(size int) int { return i % size }
		got := SurpriseQuery(pick)
		if got.Value == model.AllOption || got.Value == "" {
			t.Fatalf("SurpriseQuery() = %v, expected a concrete filter", got)
		}
	}
}
