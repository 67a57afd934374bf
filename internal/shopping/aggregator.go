package shopping

import (
	"fmt"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/recipetext"
)

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithParser sets the parser AggregateText uses.
func WithParser(p domain.RecipeParser) Option {
	return func(a *Aggregator) {
		a.parser = p
	}
}

// Aggregator builds shopping lists from recipes.
type Aggregator struct {
	log    *logger.Logger
	parser domain.RecipeParser
}

// NewAggregator creates an aggregator. log may be nil.
func NewAggregator(log *logger.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{log: log}
	for _, opt := range opts {
		opt(a)
	}
	if a.parser == nil {
		a.parser = recipetext.New(log)
	}
	return a
}

// Aggregate merges the ingredients of recipes into a new list. It never
// fails: nil recipes are skipped and no recipes yield an empty list.
func (a *Aggregator) Aggregate(recipes ...*domain.Recipe) *List {
	list := NewList()
	for _, r := range recipes {
		if r == nil {
			a.log.Warn("skipping nil recipe")
			continue
		}
		list.Add(r)
	}
	a.log.Debug("shopping list from %d recipes has %d ingredients", len(recipes), list.Len())
	return list
}

// AggregateText parses each raw recipe text and merges the results. The
// first text that fails to parse aborts the whole list.
func (a *Aggregator) AggregateText(raws ...string) (*List, error) {
	recipes := make([]*domain.Recipe, 0, len(raws))
	for i, raw := range raws {
		r, err := a.parser.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		recipes = append(recipes, r)
	}
	return a.Aggregate(recipes...), nil
}

// Aggregate merges recipes with a silent aggregator.
func Aggregate(recipes ...*domain.Recipe) *List {
	return NewAggregator(nil).Aggregate(recipes...)
}

// AggregateText parses and merges raw recipe texts with the default
// conventions.
func AggregateText(raws ...string) (*List, error) {
	return NewAggregator(nil).AggregateText(raws...)
}
