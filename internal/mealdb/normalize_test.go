package mealdb

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/ytget/cuisine-explorer/internal/model"
)

func decodeRecord(t *testing.T, body string) RawRecord {
	t.Helper()
	var raw RawRecord
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	return raw
}

// fullRecord returns a record with all 20 ingredient slots filled
func fullRecord() RawRecord {
	raw := RawRecord{
		FieldID:           "52771",
		FieldName:         "Spicy Arrabiata Penne",
		FieldArea:         "Italian",
		FieldCategory:     "Vegetarian",
		FieldInstructions: "Bring a large pot of water to a boil.",
		FieldThumbnail:    "https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
		FieldVideo:        "https://www.youtube.com/watch?v=1IszT_guI08",
		FieldTags:         "Pasta,Curry",
	}
	for i := 1; i <= model.MaxIngredients; i++ {
		raw[fmt.Sprintf("%s%d", FieldIngredient, i)] = fmt.Sprintf("ingredient %d", i)
		raw[fmt.Sprintf("%s%d", FieldMeasure, i)] = fmt.Sprintf(" %d g ", i)
	}
	return raw
}

func TestNormalize_MapsFields(t *testing.T) {
	recipe := Normalize(fullRecord())

	if recipe.ID != "52771" {
		t.Errorf("Expected ID '52771', got '%s'", recipe.ID)
	}
	if recipe.Name != "Spicy Arrabiata Penne" {
		t.Errorf("Expected name 'Spicy Arrabiata Penne', got '%s'", recipe.Name)
	}
	if recipe.Area != "Italian" || recipe.Category != "Vegetarian" {
		t.Errorf("Expected Italian/Vegetarian, got %s/%s", recipe.Area, recipe.Category)
	}
	if recipe.VideoURL != "https://www.youtube.com/watch?v=1IszT_guI08" {
		t.Errorf("Unexpected video URL: %s", recipe.VideoURL)
	}
	if recipe.Tags != "Pasta,Curry" {
		t.Errorf("Expected tags 'Pasta,Curry', got '%s'", recipe.Tags)
	}
	if len(recipe.Ingredients) != model.MaxIngredients {
		t.Fatalf("Expected %d ingredients, got %d", model.MaxIngredients, len(recipe.Ingredients))
	}
	first := recipe.Ingredients[0]
	if first.Name != "ingredient 1" || first.Measure != "1 g" {
		t.Errorf("Expected trimmed first ingredient {1 g, ingredient 1}, got %+v", first)
	}
}

func TestNormalize_SkipsBlankIngredientKeepsOrder(t *testing.T) {
	raw := fullRecord()
	raw[FieldIngredient+"5"] = "   "

	ingredients := Normalize(raw).Ingredients

	if len(ingredients) != 19 {
		t.Fatalf("Expected 19 ingredients, got %d", len(ingredients))
	}
	for _, ing := range ingredients {
		if ing.Name == "ingredient 5" {
			t.Error("Ingredient 5 should have been skipped")
		}
	}
	if ingredients[3].Name != "ingredient 4" || ingredients[4].Name != "ingredient 6" {
		t.Errorf("Expected order to continue 4 -> 6, got %s -> %s", ingredients[3].Name, ingredients[4].Name)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := decodeRecord(t, `{
		"strMeal": "Kumpir",
		"strIngredient1": "Potatoes", "strMeasure1": "2 large",
		"strIngredient2": "", "strMeasure2": "1 tbs",
		"strIngredient3": null, "strMeasure3": null,
		"strIngredient4": "Butter", "strMeasure4": "  ",
		"strIngredient5": " Cheese ", "strMeasure5": "150g"
	}`)

	first := Normalize(raw).Ingredients
	second := Normalize(raw).Ingredients

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize is not idempotent: %v vs %v", first, second)
	}

	expected := []model.Ingredient{
		{Measure: "2 large", Name: "Potatoes"},
		{Measure: "", Name: "Butter"},
		{Measure: "150g", Name: "Cheese"},
	}
	if !reflect.DeepEqual(first, expected) {
		t.Errorf("Ingredients = %v, expected %v", first, expected)
	}
}

func TestNormalize_DefaultsAreaAndCategory(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"absent", `{"strMeal": "X"}`},
		{"null", `{"strMeal": "X", "strArea": null, "strCategory": null}`},
		{"blank", `{"strMeal": "X", "strArea": " ", "strCategory": ""}`},
		{"not a string", `{"strMeal": "X", "strArea": 7, "strCategory": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := Normalize(decodeRecord(t, tt.body))
			if recipe.Area != model.UnknownValue {
				t.Errorf("Expected area %q, got %q", model.UnknownValue, recipe.Area)
			}
			if recipe.Category != model.UnknownValue {
				t.Errorf("Expected category %q, got %q", model.UnknownValue, recipe.Category)
			}
		})
	}
}

func TestNormalize_MissingMeasureIsBlank(t *testing.T) {
	raw := decodeRecord(t, `{"strMeal": "Toast", "strIngredient1": "Bread"}`)

	ingredients := Normalize(raw).Ingredients
	if len(ingredients) != 1 {
		t.Fatalf("Expected 1 ingredient, got %d", len(ingredients))
	}
	if ingredients[0].Measure != "" {
		t.Errorf("Expected blank measure, got %q", ingredients[0].Measure)
	}
}

func TestNormalizePartial(t *testing.T) {
	raw := decodeRecord(t, `{"idMeal": " 52772 ", "strMeal": "Teriyaki Chicken Casserole", "strMealThumb": "https://x/y.jpg"}`)

	p := NormalizePartial(raw)
	if p.ID != "52772" {
		t.Errorf("Expected trimmed ID '52772', got '%s'", p.ID)
	}
	if p.Name != "Teriyaki Chicken Casserole" {
		t.Errorf("Unexpected name: %s", p.Name)
	}
	if p.ThumbnailURL != "https://x/y.jpg" {
		t.Errorf("Unexpected thumbnail: %s", p.ThumbnailURL)
	}
}
