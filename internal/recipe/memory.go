// Package recipe provides an in-memory recipe library built on the text
// parser and the shopping list aggregator.
package recipe

import (
	"cmp"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/recipetext"
	"github.com/hammamikhairi/recipekit/internal/shopping"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

//go:embed builtin/*.txt
var builtin embed.FS

// Option configures a MemorySource.
type Option func(*MemorySource)

// WithParser replaces the default text parser.
func WithParser(p domain.RecipeParser) Option {
	return func(s *MemorySource) {
		s.parser = p
	}
}

// WithoutBuiltins starts the library empty.
func WithoutBuiltins() Option {
	return func(s *MemorySource) {
		s.seedBuiltins = false
	}
}

// MemorySource holds parsed recipes in memory. Safe for concurrent use.
type MemorySource struct {
	mu           sync.RWMutex
	recipes      map[string]*domain.Recipe
	parser       domain.RecipeParser
	shopper      *shopping.Aggregator
	log          *logger.Logger
	seedBuiltins bool
}

// NewMemorySource creates a library preloaded with the built-in recipes.
func NewMemorySource(log *logger.Logger, opts ...Option) *MemorySource {
	src := &MemorySource{
		recipes:      make(map[string]*domain.Recipe),
		shopper:      shopping.NewAggregator(log),
		log:          log,
		seedBuiltins: true,
	}
	for _, opt := range opts {
		opt(src)
	}
	if src.parser == nil {
		src.parser = recipetext.New(log)
	}
	if src.seedBuiltins {
		src.seed()
	}
	return src
}

// Add parses raw and stores the result under the slug of its title.
func (s *MemorySource) Add(ctx context.Context, raw string) (*domain.Recipe, error) {
	return s.add(s.parser, raw)
}

func (s *MemorySource) add(p domain.RecipeParser, raw string) (*domain.Recipe, error) {
	r, err := p.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing recipe: %w", err)
	}

	id := Slug(r.Title)
	if id == "" {
		return nil, &domain.InvalidArgumentError{Name: "title", Value: r.Title, Reason: "needs at least one letter or digit"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; ok {
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrAlreadyExists)
	}
	s.recipes[id] = r
	s.log.Info("recipe added: %s (%d ingredients, %d minutes)", r.Title, r.Len(), r.PrepMinutes)
	return r, nil
}

// Remove deletes a recipe by ID.
func (s *MemorySource) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.recipes, id)
	s.log.Debug("recipe removed: %s", id)
	return nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// List returns summaries of all recipes, quickest first.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))
	return s.summaries(func(*domain.Recipe) bool { return true }), nil
}

// Search returns recipes whose titles or ingredient names contain query.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching recipes for: %s", q)
	return s.summaries(func(r *domain.Recipe) bool { return matches(r, q) }), nil
}

// QuickerThan returns recipes that take less than limit to prepare.
func (s *MemorySource) QuickerThan(ctx context.Context, limit domain.Minutes) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.summaries(func(r *domain.Recipe) bool { return r.Before(limit) }), nil
}

// ShoppingList aggregates the ingredients of the given recipes. When
// servings is positive each recipe is rescaled to it first.
func (s *MemorySource) ShoppingList(ctx context.Context, servings int, ids ...string) (*shopping.List, error) {
	selected := make([]*domain.Recipe, 0, len(ids))
	for _, id := range ids {
		r, err := s.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("recipe %s: %w", id, err)
		}
		if servings > 0 {
			if r, err = r.WithServings(servings); err != nil {
				return nil, err
			}
		}
		selected = append(selected, r)
	}
	return s.shopper.Aggregate(selected...), nil
}

// summaries must be called with s.mu held.
func (s *MemorySource) summaries(keep func(*domain.Recipe) bool) []domain.RecipeSummary {
	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for id, r := range s.recipes {
		if !keep(r) {
			continue
		}
		out = append(out, domain.RecipeSummary{
			ID:             id,
			Title:          r.Title,
			LocalizedTitle: r.LocalizedTitle,
			Servings:       r.Servings,
			PrepMinutes:    r.PrepMinutes,
		})
	}
	slices.SortFunc(out, func(a, b domain.RecipeSummary) int {
		if c := cmp.Compare(a.PrepMinutes, b.PrepMinutes); c != 0 {
			return c
		}
		return cmp.Compare(a.Title, b.Title)
	})
	return out
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.LocalizedTitle), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// seed parses the embedded recipes. They are written in the default
// format, so a parser set with WithParser is not used for them. A broken
// built-in is logged and skipped.
func (s *MemorySource) seed() {
	p := recipetext.New(s.log)

	files, err := fs.Glob(builtin, "builtin/*.txt")
	if err != nil {
		s.log.Error("listing built-in recipes: %v", err)
		return
	}
	for _, name := range files {
		data, err := builtin.ReadFile(name)
		if err != nil {
			s.log.Error("reading %s: %v", path.Base(name), err)
			continue
		}
		if _, err := s.add(p, string(data)); err != nil {
			s.log.Error("built-in recipe %s: %v", path.Base(name), err)
		}
	}
	s.log.Debug("seeded %d recipes", len(s.recipes))
}

// Slug turns a title into a recipe ID: "Chicken Alfredo" -> "chicken-alfredo".
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
