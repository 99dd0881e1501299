package mealdb

import (
	"context"

	"github.com/ytget/cuisine-explorer/internal/model"
)

// Fetcher defines the single call surface the UI consumes.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) (*model.Recipe, error)
}
