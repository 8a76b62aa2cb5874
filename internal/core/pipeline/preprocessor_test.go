package pipeline

import (
	"fmt"
	"testing"

	"recipe-pipeline/internal/core/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreprocessor() *InputPreprocessor {
	return NewInputPreprocessor(taxonomy.New())
}

func TestPreprocessNormalizesAndCategorizes(t *testing.T) {
	p := newTestPreprocessor()

	items, results := p.Preprocess([]string{"  Chicken  ", "GARLIC"})

	assert.Equal(t, []string{"chicken", "garlic"}, items)
	require.Len(t, results, 2)
	assert.True(t, results[0].IsValid)
	assert.Equal(t, "proteins", results[0].Category)
	assert.Equal(t, "vegetables", results[1].Category)
}

func TestPreprocessExpandsAbbreviations(t *testing.T) {
	p := newTestPreprocessor()

	items, _ := p.Preprocess([]string{"chx"})
	assert.Equal(t, []string{"chicken"}, items)
}

func TestPreprocessAppliesSynonyms(t *testing.T) {
	p := newTestPreprocessor()

	items, results := p.Preprocess([]string{"aubergine"})

	assert.Equal(t, []string{"eggplant"}, items)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Warnings)
}

func TestPreprocessRejectsTooShort(t *testing.T) {
	p := newTestPreprocessor()

	items, results := p.Preprocess([]string{"x", "rice"})

	assert.Equal(t, []string{"rice"}, items)
	require.Len(t, results, 2)
	assert.False(t, results[0].IsValid)
	assert.Contains(t, results[0].Warnings, "ingredient too short")
}

func TestPreprocessDeduplicates(t *testing.T) {
	p := newTestPreprocessor()

	items, results := p.Preprocess([]string{"rice", "Rice", "  rice "})
	assert.Equal(t, []string{"rice"}, items)

	// 重複項仍回報驗證結果，並附帶移除警告
	require.Len(t, results, 3)
	assert.Empty(t, results[0].Warnings)
	assert.Contains(t, results[1].Warnings, "duplicate ingredient removed")
	assert.Contains(t, results[2].Warnings, "duplicate ingredient removed")
}

func TestPreprocessTruncatesLongList(t *testing.T) {
	p := newTestPreprocessor()

	var inputs []string
	for i := 0; i < 30; i++ {
		inputs = append(inputs, fmt.Sprintf("ingredient number %02d", i))
	}

	items, results := p.Preprocess(inputs)

	assert.Len(t, items, 20)
	last := results[len(results)-1]
	assert.Contains(t, last.Warnings, "truncated to 20 ingredients")
}

func TestPreprocessFlagsUnknownIngredient(t *testing.T) {
	p := newTestPreprocessor()

	_, results := p.Preprocess([]string{"cardboard"})

	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)
	assert.Empty(t, results[0].Category)
	assert.Contains(t, results[0].Warnings, "unknown ingredient - may affect quality")
}
