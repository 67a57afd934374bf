package domain

import "context"

// RecipeSource provides parsed recipes. The in-memory library is the only
// implementation today.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
}

// RecipeParser turns raw recipe text into a Recipe. Implementations must
// be pure: no shared state between calls.
type RecipeParser interface {
	Parse(raw string) (*Recipe, error)
}
