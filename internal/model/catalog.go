package model

// AllOption is the pseudo-entry that means "no filter"
const AllOption = "All"

// Fallback icons for values missing from the catalog
const (
	DefaultFlag         = "🌐"
	DefaultCategoryIcon = "🍽️"
)

// CatalogEntry pairs a filter value with its display icon
type CatalogEntry struct {
	Name string
	Icon string
}

var countries = []CatalogEntry{
	{AllOption, DefaultFlag},
	{"American", "🇺🇸"}, {"British", "🇬🇧"}, {"Canadian", "🇨🇦"},
	{"Chinese", "🇨🇳"}, {"Croatian", "🇭🇷"}, {"Dutch", "🇳🇱"},
	{"Egyptian", "🇪🇬"}, {"French", "🇫🇷"}, {"Greek", "🇬🇷"},
	{"Indian", "🇮🇳"}, {"Irish", "🇮🇪"}, {"Italian", "🇮🇹"},
	{"Jamaican", "🇯🇲"}, {"Japanese", "🇯🇵"}, {"Kenyan", "🇰🇪"},
	{"Malaysian", "🇲🇾"}, {"Mexican", "🇲🇽"}, {"Moroccan", "🇲🇦"},
	{"Polish", "🇵🇱"}, {"Portuguese", "🇵🇹"}, {"Russian", "🇷🇺"},
	{"Spanish", "🇪🇸"}, {"Thai", "🇹🇭"}, {"Tunisian", "🇹🇳"},
	{"Turkish", "🇹🇷"}, {UnknownValue, "❓"}, {"Vietnamese", "🇻🇳"},
}

var categories = []CatalogEntry{
	{AllOption, DefaultCategoryIcon},
	{"Beef", "🥩"}, {"Chicken", "🍗"}, {"Dessert", "🍰"},
	{"Lamb", "🐑"}, {"Miscellaneous", "🌀"}, {"Pasta", "🍝"},
	{"Pork", "🐖"}, {"Seafood", "🐟"}, {"Vegetarian", "🥬"},
	{"Breakfast", "☕"}, {"Side", "🥗"}, {"Starter", "🥢"},
}

// Countries returns the country filter options, AllOption first
func Countries() []CatalogEntry {
	return append([]CatalogEntry(nil), countries...)
}

// Categories returns the category filter options, AllOption first
func Categories() []CatalogEntry {
	return append([]CatalogEntry(nil), categories...)
}

// CatalogNames extracts the names of entries, preserving order
func CatalogNames(entries []CatalogEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// FlagFor returns the flag emoji for an area
func FlagFor(area string) string {
	return lookupIcon(countries, area, DefaultFlag)
}

// IconFor returns the icon for a category
func IconFor(category string) string {
	return lookupIcon(categories, category, DefaultCategoryIcon)
}

func lookupIcon(entries []CatalogEntry, name, fallback string) string {
	for _, e := range entries {
		if e.Name == name {
			return e.Icon
		}
	}
	return fallback
}
