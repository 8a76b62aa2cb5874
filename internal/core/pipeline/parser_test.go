package pipeline

import (
	"testing"

	"recipe-pipeline/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabeledOutput(t *testing.T) {
	p := NewParser()
	raw := "title: Lemon Garlic Chicken\n" +
		"ingredients: 1 lb chicken breast -- 3 cloves garlic -- 1 lemon\n" +
		"directions: Preheat the oven to 400F. -- Chop the garlic and season the chicken. -- Squeeze lemon juice over the chicken. -- Bake the chicken for 25 minutes. -- Serve the chicken hot."

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, "Lemon Garlic Chicken", recipe.Title)
	assert.True(t, recipe.HasTitle())
	assert.Len(t, recipe.Ingredients, 3)
	assert.Len(t, recipe.Directions, 5)
	assert.Empty(t, recipe.ParseWarnings)
}

func TestParseReplacesSectionTokens(t *testing.T) {
	p := NewParser()
	raw := "<RECIPE_START>title: Tomato Soup<section>ingredients: 2 tomatoes<sep>1 onion<sep>basil<section>directions: Chop the vegetables finely.<sep>Simmer everything for 20 minutes.<RECIPE_END>"

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, "Tomato Soup", recipe.Title)
	assert.Len(t, recipe.Ingredients, 3)
	assert.Len(t, recipe.Directions, 2)
}

func TestParseBoundedTokenOutput(t *testing.T) {
	p := NewParser()
	raw := "<RECIPE_START><TITLE_START> Tomato Basil Soup <TITLE_END>" +
		"<INGR_START> 2 tomatoes <NEXT_INGR> 1 onion <NEXT_INGR> fresh basil <INGR_END>" +
		"<INSTR_START> Chop the vegetables finely. <NEXT_INSTR> Simmer everything for 20 minutes. <NEXT_INSTR> Blend until smooth. <INSTR_END><RECIPE_END>"

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, "Tomato Basil Soup", recipe.Title)
	assert.Equal(t, []string{"tomatoes", "onion", "fresh basil"}, recipe.Ingredients)
	assert.Equal(t, []string{
		"Chop the vegetables finely.",
		"Simmer everything for 20 minutes.",
		"Blend until smooth.",
	}, recipe.Directions)
	assert.Empty(t, recipe.ParseWarnings)
}

func TestParseBoundedTokensWithoutEndMarkers(t *testing.T) {
	p := NewParser()
	raw := "<TITLE_START> Garlic Rice <INGR_START> rice <NEXT_INGR> garlic " +
		"<INSTR_START> Cook the rice. <NEXT_INSTR> Stir in the garlic."

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, "Garlic Rice", recipe.Title)
	assert.Equal(t, []string{"rice", "garlic"}, recipe.Ingredients)
	assert.Equal(t, []string{"Cook the rice.", "Stir in the garlic."}, recipe.Directions)
}

func TestParseNoMarkersFails(t *testing.T) {
	p := NewParser()
	raw := "some random text -- that has delimiters -- but no recognizable section headers at all"

	recipe := p.Parse(raw, DefaultSectionMarkers())

	assert.False(t, recipe.ParseSuccess)
	assert.Empty(t, recipe.Ingredients)
	assert.Empty(t, recipe.Directions)
	assert.Equal(t, common.PlaceholderTitle, recipe.Title)
	assert.False(t, recipe.HasTitle())
	assert.NotEmpty(t, recipe.ParseWarnings)
}

func TestParseMissingTitleGetsPlaceholder(t *testing.T) {
	p := NewParser()
	raw := "ingredients: 2 eggs -- 1 cup flour\ndirections: Mix the eggs and flour together. -- Fry until golden brown."

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, common.PlaceholderTitle, recipe.Title)
	assert.Contains(t, recipe.ParseWarnings, "could not extract title")
	assert.Len(t, recipe.Ingredients, 2)
	assert.Len(t, recipe.Directions, 2)
}

func TestParseRepairsMissingColon(t *testing.T) {
	p := NewParser()
	raw := "title Pancakes\ningredients: 2 eggs -- 1 cup flour -- milk\ndirections: Whisk everything together. -- Cook on a hot griddle."

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, "Pancakes", recipe.Title)
}

func TestParseStripsEnumerationPrefixes(t *testing.T) {
	p := NewParser()
	raw := "title: Simple Salad\ningredients: 1. lettuce -- 2. cucumber -- 3. olive oil\ndirections: 1) Wash the lettuce thoroughly. -- 2) Toss everything with olive oil."

	recipe := p.Parse(raw, DefaultSectionMarkers())

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, []string{"lettuce", "cucumber", "olive oil"}, recipe.Ingredients)
	require.Len(t, recipe.Directions, 2)
	assert.Equal(t, "Wash the lettuce thoroughly.", recipe.Directions[0])
}

func TestParseBatch(t *testing.T) {
	p := NewParser()
	raws := []string{
		"title: A Recipe\ningredients: rice -- beans\ndirections: Cook the rice well. -- Add the beans and stir.",
		"garbage output",
	}

	recipes := p.ParseBatch(raws, DefaultSectionMarkers())

	require.Len(t, recipes, 2)
	assert.True(t, recipes[0].ParseSuccess)
	assert.False(t, recipes[1].ParseSuccess)
}

func TestParseNewlineDelimitedItems(t *testing.T) {
	p := NewParser()
	markers := DefaultSectionMarkers()
	markers.ItemDelimiter = ""
	raw := "title: Oatmeal\ningredients:\noats\nmilk\nhoney\ndirections:\nCombine oats and milk in a pot.\nSimmer gently until thick."

	recipe := p.Parse(raw, markers)

	require.True(t, recipe.ParseSuccess)
	assert.Equal(t, []string{"oats", "milk", "honey"}, recipe.Ingredients)
	assert.Len(t, recipe.Directions, 2)
}
