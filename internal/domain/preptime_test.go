package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func timed(title string, minutes int) *Recipe {
	return NewRecipe("", Recipe{Title: title, Servings: 1, PrepMinutes: minutes})
}

func titles(rs []*Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}

func TestComparePrepTime(t *testing.T) {
	quick := timed("salad", 10)
	slow := timed("stew", 180)

	assert.True(t, quick.Before(slow))
	assert.True(t, slow.After(quick))
	assert.False(t, quick.Before(quick))

	assert.True(t, quick.Before(Minutes(30)))
	assert.False(t, slow.Before(Minutes(30)))
	assert.True(t, slow.After(Minutes(120)))

	assert.Equal(t, 0, ComparePrepTime(quick, Minutes(10)))
	assert.Equal(t, -1, ComparePrepTime(Minutes(5), quick))
	assert.Equal(t, 1, ComparePrepTime(slow, quick))
}

func TestSortByPrepTime(t *testing.T) {
	rs := []*Recipe{
		timed("stew", 180),
		timed("salad", 10),
		timed("toast", 10),
		timed("pasta", 25),
	}

	SortByPrepTime(rs)
	assert.Equal(t, []string{"salad", "toast", "pasta", "stew"}, titles(rs))
}

func TestQuickerThan(t *testing.T) {
	rs := []*Recipe{
		timed("stew", 180),
		timed("salad", 10),
		timed("pasta", 30),
		timed("toast", 3),
	}

	assert.Equal(t, []string{"salad", "toast"}, titles(QuickerThan(rs, Minutes(30))))
	assert.Empty(t, QuickerThan(rs, Minutes(0)))
	assert.Equal(t, []string{"salad", "toast"}, titles(QuickerThan(rs, rs[2])))
}
