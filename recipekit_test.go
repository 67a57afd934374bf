package recipekit

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bread = "Bread\nPane\n4 servings\nPreparation time: 1 hour 30 minutes\n*\t200\tg\tflour\n*\t1\tcup\tbutter\nKnead.\nBake.\n"
const cake = "Cake\nTorta\n8 servings\nPreparation time: 45 minutes\n*\t200\tg\tflour\n*\t50\tg\tbutter\nMix.\nBake.\n"

func TestParseAndAggregate(t *testing.T) {
	b, err := Parse(bread)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Servings)
	assert.Equal(t, 90, b.PrepMinutes)

	c, err := Parse(cake)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]float64{
		"flour":  {"g": 400},
		"butter": {"cup": 1, "g": 50},
	}, Aggregate(b, c).Map())

	recipes := []*Recipe{b, c}
	SortByPrepTime(recipes)
	assert.Equal(t, "Cake", recipes[0].Title)
	assert.True(t, c.Before(Minutes(60)))
}

func TestAggregateText(t *testing.T) {
	list, err := AggregateText(bread, cake)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]float64{
		"flour":  {"g": 400},
		"butter": {"cup": 1, "g": 50},
	}, list.Map())

	_, err = AggregateText(bread, "just a title\n")
	assert.ErrorIs(t, err, ErrMalformedRecipe)
}

func TestParseErrorsExported(t *testing.T) {
	_, err := Parse("just a title\n")
	assert.ErrorIs(t, err, ErrMalformedRecipe)
}

func TestOpen(t *testing.T) {
	t.Setenv("RECIPEKIT_LOG_LEVEL", "verbose")

	var logs bytes.Buffer
	kit, err := Open(&logs)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = kit.Library.Add(ctx, bread)
	require.NoError(t, err)

	list, err := kit.Library.ShoppingList(ctx, 8, "bread", "garlic-bread")
	require.NoError(t, err)
	flour, ok := list.Get("flour")
	require.True(t, ok)
	assert.Equal(t, map[string]float64{"g": 400}, flour.Quantities)

	assert.Contains(t, logs.String(), "[DBG] ")
}

func TestOpenInvalidConfig(t *testing.T) {
	t.Setenv("RECIPEKIT_PARSER_CONCURRENCY", "0")
	_, err := Open(nil)
	assert.Error(t, err)
}

func TestOpenCustomMarkerKeepsBuiltins(t *testing.T) {
	t.Setenv("RECIPEKIT_LOG_LEVEL", "off")
	t.Setenv("RECIPEKIT_PARSER_MARKER", "-")

	kit, err := Open(nil)
	require.NoError(t, err)
	ctx := context.Background()

	alfredo, err := kit.Library.Get(ctx, "chicken-alfredo")
	require.NoError(t, err)
	assert.Equal(t, 7, alfredo.Len())
	for _, line := range alfredo.Instructions {
		assert.NotContains(t, line, "*\t")
	}

	list, err := kit.Library.ShoppingList(ctx, 0, "chicken-alfredo")
	require.NoError(t, err)
	assert.Equal(t, 7, list.Len())

	tea := "Tea\nTè\n1 serving\nPreparation time: 5 minutes\n-\t1\tbag\ttea\nSteep.\n"
	r, err := kit.Library.Add(ctx, tea)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	fromText, err := kit.Aggregator.AggregateText(tea)
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]float64{"tea": {"bag": 1}}, fromText.Map())
}
