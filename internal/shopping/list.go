// Package shopping folds the ingredients of many recipes into one
// shopping list. Units are opaque: "1 cup butter" and "50 g butter" stay
// as two amounts under the same ingredient.
package shopping

import (
	"maps"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

// Entry is the accumulated amount of one ingredient, per unit.
type Entry struct {
	Ingredient string
	Quantities map[string]float64
	units      []string
}

// Units returns the entry's units in first-seen order.
func (e *Entry) Units() []string {
	out := make([]string, len(e.units))
	copy(out, e.units)
	return out
}

func (e *Entry) add(unit string, qty float64) {
	if _, ok := e.Quantities[unit]; !ok {
		e.units = append(e.units, unit)
	}
	e.Quantities[unit] += qty
}

// List is a shopping list. Entries iterate in first-seen ingredient order.
// A List is not safe for concurrent writers.
type List struct {
	entries []*Entry
	index   map[string]int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{index: make(map[string]int)}
}

// Add folds one recipe's ingredients into the list.
func (l *List) Add(r *domain.Recipe) {
	if r == nil {
		return
	}
	for _, ing := range r.Ingredients {
		l.AddIngredient(ing)
	}
}

// AddIngredient folds a single ingredient into the list.
func (l *List) AddIngredient(ing domain.Ingredient) {
	l.entry(ing.Name).add(ing.Unit, ing.Quantity)
}

// Merge folds every amount of other into l.
func (l *List) Merge(other *List) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		dst := l.entry(e.Ingredient)
		for _, u := range e.units {
			dst.add(u, e.Quantities[u])
		}
	}
}

func (l *List) entry(name string) *Entry {
	if i, ok := l.index[name]; ok {
		return l.entries[i]
	}
	e := &Entry{Ingredient: name, Quantities: make(map[string]float64)}
	l.index[name] = len(l.entries)
	l.entries = append(l.entries, e)
	return e
}

// Len returns the number of distinct ingredients.
func (l *List) Len() int { return len(l.entries) }

// Get returns the entry for an ingredient.
func (l *List) Get(name string) (Entry, bool) {
	i, ok := l.index[name]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i].clone(), true
}

// Entries returns copies of all entries in first-seen order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.clone()
	}
	return out
}

// Map returns the list as ingredient -> unit -> quantity.
func (l *List) Map() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(l.entries))
	for _, e := range l.entries {
		out[e.Ingredient] = maps.Clone(e.Quantities)
	}
	return out
}

func (e *Entry) clone() Entry {
	return Entry{
		Ingredient: e.Ingredient,
		Quantities: maps.Clone(e.Quantities),
		units:      e.Units(),
	}
}
