package mealdb

import (
	"strconv"
	"strings"

	"github.com/ytget/cuisine-explorer/internal/model"
)

// Raw field names of a TheMealDB record
const (
	FieldID           = "idMeal"
	FieldName         = "strMeal"
	FieldArea         = "strArea"
	FieldCategory     = "strCategory"
	FieldInstructions = "strInstructions"
	FieldThumbnail    = "strMealThumb"
	FieldVideo        = "strYoutube"
	FieldTags         = "strTags"
	FieldIngredient   = "strIngredient"
	FieldMeasure      = "strMeasure"
)

// RawRecord is one element of the meals list as decoded from JSON
type RawRecord map[string]any

// String returns the value of key when it is a JSON string, otherwise ""
func (r RawRecord) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Normalize maps a raw record onto model.Recipe. It depends only on raw, so
// calling it twice on the same record yields identical results.
func Normalize(raw RawRecord) *model.Recipe {
	return &model.Recipe{
		ID:           raw.String(FieldID),
		Name:         raw.String(FieldName),
		Area:         withDefault(raw.String(FieldArea), model.UnknownValue),
		Category:     withDefault(raw.String(FieldCategory), model.UnknownValue),
		Instructions: raw.String(FieldInstructions),
		ThumbnailURL: strings.TrimSpace(raw.String(FieldThumbnail)),
		VideoURL:     strings.TrimSpace(raw.String(FieldVideo)),
		Tags:         raw.String(FieldTags),
		Ingredients:  ExtractIngredients(raw),
	}
}

// ExtractIngredients scans strIngredient1..20 in order and keeps every entry
// whose trimmed name is non-empty, paired with its trimmed measure.
func ExtractIngredients(raw RawRecord) []model.Ingredient {
	ingredients := make([]model.Ingredient, 0, model.MaxIngredients)
	for i := 1; i <= model.MaxIngredients; i++ {
		n := strconv.Itoa(i)
		name := strings.TrimSpace(raw.String(FieldIngredient + n))
		if name == "" {
			continue
		}
		ingredients = append(ingredients, model.Ingredient{
			Measure: strings.TrimSpace(raw.String(FieldMeasure + n)),
			Name:    name,
		})
	}
	return ingredients
}

// NormalizePartial maps a filter result onto model.PartialRecipe
func NormalizePartial(raw RawRecord) model.PartialRecipe {
	return model.PartialRecipe{
		ID:           strings.TrimSpace(raw.String(FieldID)),
		Name:         raw.String(FieldName),
		ThumbnailURL: strings.TrimSpace(raw.String(FieldThumbnail)),
	}
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
