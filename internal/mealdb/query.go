package mealdb

import (
	"fmt"
	"net/url"
	"strings"
)

// API endpoints relative to the base URL
const (
	PathRandom = "/random.php"
	PathLookup = "/lookup.php"
	PathSearch = "/search.php"
	PathFilter = "/filter.php"
)

// Query parameters
const (
	ParamID       = "i"
	ParamSearch   = "s"
	ParamArea     = "a"
	ParamCategory = "c"
)

// QueryKind selects one of the supported lookups
type QueryKind string

const (
	// QueryRandom draws a random recipe
	QueryRandom QueryKind = "random"

	// QueryByID looks up a recipe by its id
	QueryByID QueryKind = "id"

	// QueryByName searches recipes by name and takes the first match
	QueryByName QueryKind = "name"

	// QueryByCountry filters by area, then looks up a random match
	QueryByCountry QueryKind = "country"

	// QueryByCategory filters by category, then looks up a random match
	QueryByCategory QueryKind = "category"
)

// Query is a request for recipe data
type Query struct {
	Kind  QueryKind
	Value string
}

// Random asks for one random recipe
func Random() Query { return Query{Kind: QueryRandom} }

// ByID looks up the recipe with the given id
func ByID(id string) Query { return Query{Kind: QueryByID, Value: id} }

// ByName searches by name. The term is trimmed before the request.
func ByName(term string) Query { return Query{Kind: QueryByName, Value: term} }

// ByCountry picks a random recipe from the given area
func ByCountry(name string) Query { return Query{Kind: QueryByCountry, Value: name} }

// ByCategory picks a random recipe from the given category
func ByCategory(name string) Query { return Query{Kind: QueryByCategory, Value: name} }

// IsFilter returns true for queries that yield partial records
func (q Query) IsFilter() bool {
	return q.Kind == QueryByCountry || q.Kind == QueryByCategory
}

// String returns a short human-readable description used in logs and errors
func (q Query) String() string {
	if q.Kind == QueryRandom {
		return string(q.Kind)
	}
	return fmt.Sprintf("%s(%q)", q.Kind, q.Value)
}

// endpoint resolves the request path and parameters. A blank value for any
// parameterized query yields ErrEmptyResult so no request is made.
func (q Query) endpoint() (string, url.Values, error) {
	value := strings.TrimSpace(q.Value)

	var path, param string
	switch q.Kind {
	case QueryRandom:
		return PathRandom, nil, nil
	case QueryByID:
		path, param = PathLookup, ParamID
	case QueryByName:
		path, param = PathSearch, ParamSearch
	case QueryByCountry:
		path, param = PathFilter, ParamArea
	case QueryByCategory:
		path, param = PathFilter, ParamCategory
	default:
		return "", nil, fmt.Errorf("unknown query kind: %q", q.Kind)
	}

	if value == "" {
		return "", nil, fmt.Errorf("%w: blank %s", ErrEmptyResult, q.Kind)
	}

	return path, url.Values{param: []string{value}}, nil
}
