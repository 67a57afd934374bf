// Package domain defines the core types and interfaces for recipekit.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a parsed recipe document. The parser is the only producer;
// nothing in this module mutates a Recipe after construction. Use
// Rescale or WithServings to get scaled quantities.
type Recipe struct {
	Title          string
	LocalizedTitle string
	Servings       int
	PrepMinutes    int
	Ingredients    []Ingredient
	Instructions   []string
	// Notes holds non-ingredient lines that sit among the ingredient
	// lines, such as an "Ingredients:" heading.
	Notes []string

	raw string
}

// Ingredient is a single ingredient line. Unit is an opaque string and is
// never converted.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// NewRecipe attaches the original text to a recipe built by a parser.
func NewRecipe(raw string, r Recipe) *Recipe {
	r.raw = raw
	return &r
}

// String returns the original recipe text, verbatim.
func (r *Recipe) String() string { return r.raw }

// Len returns the number of ingredients.
func (r *Recipe) Len() int { return len(r.Ingredients) }

// Ingredient looks up an ingredient by name.
func (r *Recipe) Ingredient(name string) (Ingredient, bool) {
	for _, ing := range r.Ingredients {
		if ing.Name == name {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// Rescale returns the ingredient list scaled from r.Servings to servings.
// The recipe itself is left untouched.
func (r *Recipe) Rescale(servings int) ([]Ingredient, error) {
	if servings <= 0 {
		return nil, &InvalidArgumentError{Name: "servings", Value: servings, Reason: "must be positive"}
	}
	if r.Servings <= 0 {
		return nil, &InvalidArgumentError{Name: "recipe servings", Value: r.Servings, Reason: "cannot scale from a non-positive serving count"}
	}

	out := make([]Ingredient, len(r.Ingredients))
	copy(out, r.Ingredients)
	if servings == r.Servings {
		return out, nil
	}

	factor := float64(servings) / float64(r.Servings)
	for i := range out {
		out[i].Quantity *= factor
	}
	return out, nil
}

// WithServings returns a copy of the recipe scaled to servings. Titles,
// instructions and the original text are shared with r.
func (r *Recipe) WithServings(servings int) (*Recipe, error) {
	ings, err := r.Rescale(servings)
	if err != nil {
		return nil, err
	}
	cp := *r
	cp.Servings = servings
	cp.Ingredients = ings
	return &cp, nil
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID             string
	Title          string
	LocalizedTitle string
	Servings       int
	PrepMinutes    int
}
