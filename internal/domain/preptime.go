package domain

import (
	"cmp"
	"slices"
)

// PrepTimer is anything with a preparation time in minutes. Both recipes
// and bare durations satisfy it, so one comparison serves
// recipe-to-recipe and recipe-to-scalar ordering.
type PrepTimer interface {
	PrepTime() int
}

// Minutes is a bare preparation time, e.g. Minutes(30) for "under 30 minutes".
type Minutes int

// PrepTime implements PrepTimer.
func (m Minutes) PrepTime() int { return int(m) }

// PrepTime implements PrepTimer.
func (r *Recipe) PrepTime() int { return r.PrepMinutes }

// ComparePrepTime returns -1, 0 or +1 as a is quicker than, as quick as,
// or slower than b.
func ComparePrepTime(a, b PrepTimer) int {
	return cmp.Compare(a.PrepTime(), b.PrepTime())
}

// Before reports whether r takes less time to prepare than other.
func (r *Recipe) Before(other PrepTimer) bool { return ComparePrepTime(r, other) < 0 }

// After reports whether r takes more time to prepare than other.
func (r *Recipe) After(other PrepTimer) bool { return ComparePrepTime(r, other) > 0 }

// SortByPrepTime sorts recipes quickest first. Ties keep their order.
func SortByPrepTime(recipes []*Recipe) {
	slices.SortStableFunc(recipes, func(a, b *Recipe) int { return ComparePrepTime(a, b) })
}

// QuickerThan returns the recipes strictly quicker than limit, in input order.
func QuickerThan(recipes []*Recipe, limit PrepTimer) []*Recipe {
	var out []*Recipe
	for _, r := range recipes {
		if r.Before(limit) {
			out = append(out, r)
		}
	}
	return out
}
