// Package recipekit parses line-based recipe documents and builds
// combined shopping lists from them.
//
//	r, err := recipekit.Parse(text)
//	list := recipekit.Aggregate(r1, r2)
//	list.Map() // {"flour": {"g": 400}}
//
// Open wires the same pieces from RECIPEKIT_* environment settings and
// adds an in-memory recipe library.
package recipekit

import (
	"io"

	"github.com/hammamikhairi/recipekit/internal/config"
	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/recipe"
	"github.com/hammamikhairi/recipekit/internal/recipetext"
	"github.com/hammamikhairi/recipekit/internal/shopping"
)

type (
	Recipe               = domain.Recipe
	Ingredient           = domain.Ingredient
	Minutes              = domain.Minutes
	PrepTimer            = domain.PrepTimer
	MalformedRecipeError = domain.MalformedRecipeError
	ParseError           = domain.ParseError
	InvalidArgumentError = domain.InvalidArgumentError
	ShoppingList         = shopping.List
	ShoppingEntry        = shopping.Entry
	Parser               = recipetext.Parser
	Library              = recipe.MemorySource
)

var (
	ErrMalformedRecipe = domain.ErrMalformedRecipe
	ErrParse           = domain.ErrParse
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrNotFound        = domain.ErrNotFound
	ErrAlreadyExists   = domain.ErrAlreadyExists
)

// Parse parses recipe text with the default conventions.
func Parse(raw string) (*Recipe, error) { return recipetext.Parse(raw) }

// Aggregate combines the ingredients of recipes into one shopping list.
func Aggregate(recipes ...*Recipe) *ShoppingList { return shopping.Aggregate(recipes...) }

// AggregateText parses raw recipe texts and combines them into one
// shopping list.
func AggregateText(raws ...string) (*ShoppingList, error) { return shopping.AggregateText(raws...) }

// SortByPrepTime sorts recipes quickest first.
func SortByPrepTime(recipes []*Recipe) { domain.SortByPrepTime(recipes) }

// Kit bundles a configured parser, aggregator and recipe library.
type Kit struct {
	Config     *config.Config
	Log        *logger.Logger
	Parser     *recipetext.Parser
	Aggregator *shopping.Aggregator
	Library    *recipe.MemorySource
}

// Open loads configuration (see config.Load) and builds a Kit logging to
// logOut, or stderr when logOut is nil.
func Open(logOut io.Writer, envFiles ...string) (*Kit, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	log := logger.New(level, logOut)
	parser := recipetext.NewFromConfig(cfg.Parser, log)

	return &Kit{
		Config:     cfg,
		Log:        log,
		Parser:     parser,
		Aggregator: shopping.NewAggregator(log, shopping.WithParser(parser)),
		Library:    recipe.NewMemorySource(log, recipe.WithParser(parser)),
	}, nil
}
