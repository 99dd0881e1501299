package session

import (
	"github.com/ytget/cuisine-explorer/internal/mealdb"
	"github.com/ytget/cuisine-explorer/internal/model"
)

// Picker returns an index in [0, n)
type Picker func(n int) int

// FilterQuery builds the query for a country or category selection.
// model.AllOption and blank names mean no filter.
func FilterQuery(kind mealdb.QueryKind, name string) mealdb.Query {
	if name == "" || name == model.AllOption {
		return mealdb.Random()
	}
	switch kind {
	case mealdb.QueryByCountry:
		return mealdb.ByCountry(name)
	case mealdb.QueryByCategory:
		return mealdb.ByCategory(name)
	default:
		return mealdb.Random()
	}
}

// SurpriseQuery picks country or category with equal odds, then a random
// catalog entry other than model.AllOption
func SurpriseQuery(pick Picker) mealdb.Query {
	kind, entries := mealdb.QueryByCountry, model.Countries()
	if pick(2) == 1 {
		kind, entries = mealdb.QueryByCategory, model.Categories()
	}

	names := make([]string, 0, len(entries))
	for _, name := range model.CatalogNames(entries) {
		if name != model.AllOption {
			names = append(names, name)
		}
	}

	i := pick(len(names))
	if i < 0 || i >= len(names) {
		i = 0
	}
	return FilterQuery(kind, names[i])
}
