package model

import (
	"strings"
)

// UnknownValue is used for area and category when the API omits them
const UnknownValue = "Unknown"

// MaxIngredients is the number of ingredient slots a raw record carries
const MaxIngredients = 20

// Ingredient is a single (measure, name) pair of a recipe
type Ingredient struct {
	Measure string `json:"measure"`
	Name    string `json:"name"`
}

// Line returns the ingredient as "measure name", or just the name when the
// measure is blank
func (i Ingredient) Line() string {
	if i.Measure == "" {
		return i.Name
	}
	return i.Measure + " " + i.Name
}

// Recipe represents a normalized recipe record
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Area         string       `json:"area"`
	Category     string       `json:"category"`
	Instructions string       `json:"instructions"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	VideoURL     string       `json:"video_url,omitempty"`
	Tags         string       `json:"tags,omitempty"` // comma-separated as returned by the API
	Ingredients  []Ingredient `json:"ingredients"`
}

// PartialRecipe is the abbreviated record returned by filter queries
type PartialRecipe struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// TagList splits Tags on commas, trimming and dropping empty entries
func (r *Recipe) TagList() []string {
	if strings.TrimSpace(r.Tags) == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(r.Tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasVideo reports whether the recipe links a tutorial video
func (r *Recipe) HasVideo() bool {
	return strings.TrimSpace(r.VideoURL) != ""
}

// IngredientLines returns every ingredient rendered with Line
func (r *Recipe) IngredientLines() []string {
	lines := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		lines = append(lines, ing.Line())
	}
	return lines
}

// IngredientNames returns the ingredient names in recipe order
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}
