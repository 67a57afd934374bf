// Package recipetext parses line-based recipe documents.
//
// The expected layout is:
//
//	Title
//	Localized title
//	4 servings
//	Preparation time: 1 hour 30 minutes
//	*	200	g	flour
//	*	2	pieces	eggs
//	Free-text instruction lines...
//
// Lines of one character or less are ignored. Ingredient lines start with
// a marker and carry four tab-separated fields: marker, quantity, unit,
// name.
package recipetext

import (
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/recipekit/internal/config"
	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeParser = (*Parser)(nil)

// Line positions of the fixed header.
const (
	titleLine = iota
	localizedTitleLine
	servingsLine
	prepTimeLine
	headerLines
)

// Option configures a Parser.
type Option func(*Parser)

// WithMarker sets the ingredient line marker.
func WithMarker(marker string) Option {
	return func(p *Parser) {
		p.marker = marker
	}
}

// WithPrepLabelWidth sets how many characters precede the duration on the
// prep-time line.
func WithPrepLabelWidth(n int) Option {
	return func(p *Parser) {
		p.prepLabelWidth = n
	}
}

// WithConcurrency bounds the number of goroutines used by ParseBatch.
func WithConcurrency(n int) Option {
	return func(p *Parser) {
		p.concurrency = n
	}
}

// Parser converts recipe text into domain recipes. It holds only
// configuration, so one Parser may be shared between goroutines.
type Parser struct {
	log            *logger.Logger
	marker         string
	prepLabelWidth int
	concurrency    int
}

// New creates a parser with default conventions. log may be nil.
func New(log *logger.Logger, opts ...Option) *Parser {
	p := &Parser{
		log:            log,
		marker:         config.DefaultMarker,
		prepLabelWidth: config.DefaultPrepLabelWidth,
		concurrency:    config.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.concurrency < 1 {
		p.concurrency = 1
	}
	return p
}

// NewFromConfig creates a parser from loaded settings.
func NewFromConfig(cfg config.ParserConfig, log *logger.Logger) *Parser {
	return New(log,
		WithMarker(cfg.Marker),
		WithPrepLabelWidth(cfg.PrepLabelWidth),
		WithConcurrency(cfg.Concurrency),
	)
}

// Parse parses raw with the default conventions.
func Parse(raw string) (*domain.Recipe, error) {
	return New(nil).Parse(raw)
}

// textLine is a kept line together with its 1-based position in the raw text.
type textLine struct {
	no   int
	text string
}

// Parse converts raw recipe text into a Recipe. On error no recipe is
// returned.
func (p *Parser) Parse(raw string) (*domain.Recipe, error) {
	lines := splitLines(raw)
	if len(lines) < headerLines {
		return nil, &domain.MalformedRecipeError{
			Reason: "need title, localized title, servings and prep time lines",
		}
	}

	servings, err := parseServings(lines[servingsLine])
	if err != nil {
		return nil, err
	}

	prep, err := parsePrepTime(lines[prepTimeLine], p.prepLabelWidth)
	if err != nil {
		return nil, err
	}

	body := lines[headerLines:]
	ingredients, last, err := p.parseIngredients(body)
	if err != nil {
		return nil, err
	}

	// Body lines are kept as written; only trailing whitespace is gone.
	var notes, instructions []string
	for i, l := range body {
		if p.isMarker(l.text) {
			continue
		}
		if i < last {
			notes = append(notes, l.text)
			continue
		}
		instructions = append(instructions, l.text)
	}

	r := domain.NewRecipe(raw, domain.Recipe{
		Title:          strings.TrimSpace(lines[titleLine].text),
		LocalizedTitle: strings.TrimSpace(lines[localizedTitleLine].text),
		Servings:       servings,
		PrepMinutes:    prep,
		Ingredients:    ingredients,
		Instructions:   instructions,
		Notes:          notes,
	})

	p.log.Debug("parsed recipe %q: servings=%d prep=%dm ingredients=%d instructions=%d",
		r.Title, r.Servings, r.PrepMinutes, len(r.Ingredients), len(r.Instructions))
	return r, nil
}

// parseIngredients collects every marker line in body. It returns the
// ingredients in first-seen order and the body index of the last marker
// line (-1 when there is none).
func (p *Parser) parseIngredients(body []textLine) ([]domain.Ingredient, int, error) {
	var out []domain.Ingredient
	index := make(map[string]int)
	last := -1

	for i, l := range body {
		if !p.isMarker(l.text) {
			continue
		}
		ing, err := parseIngredient(l, p.marker)
		if err != nil {
			return nil, 0, err
		}
		last = i

		if at, dup := index[ing.Name]; dup {
			p.log.Warn("line %d: ingredient %q listed twice, keeping the later entry", l.no, ing.Name)
			out[at] = ing
			continue
		}
		index[ing.Name] = len(out)
		out = append(out, ing)
	}
	return out, last, nil
}

func (p *Parser) isMarker(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " "), p.marker)
}

// splitLines splits raw on newlines and drops lines of one character or
// less after trailing whitespace is removed.
func splitLines(raw string) []textLine {
	var out []textLine
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if utf8.RuneCountInString(line) <= 1 {
			continue
		}
		out = append(out, textLine{no: i + 1, text: line})
	}
	return out
}
