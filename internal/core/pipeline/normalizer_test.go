package pipeline

import (
	"testing"

	"recipe-pipeline/internal/core/taxonomy"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(taxonomy.New())
}

func TestNormalizeStripsQuantityUnitsAndModifiers(t *testing.T) {
	norm := newTestNormalizer()

	assert.Equal(t, "chicken breast", norm.Normalize("2 lbs chicken breast"))
	assert.Equal(t, "garlic", norm.Normalize("3 cloves garlic, minced"))
	assert.Equal(t, "basil", norm.Normalize("Fresh Basil"))
	assert.Equal(t, "flour", norm.Normalize("1 1/2 cups flour"))
	assert.Equal(t, "tomato", norm.Normalize("  1 large tomato (diced)  "))
}

func TestNormalizeOnlyMatchesWholeWords(t *testing.T) {
	norm := newTestNormalizer()

	// "g" 是單位，但不應切掉 "ginger" 內的字母
	assert.Equal(t, "ginger", norm.Normalize("ginger"))
	// "can" 是單位，但 "cane" 不是
	assert.Equal(t, "cane sugar", norm.Normalize("cane sugar"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	norm := newTestNormalizer()

	samples := []string{
		"2 lbs chicken breast",
		"3 cloves garlic, minced",
		"1 1/2 cups all-purpose flour",
		"salt to taste",
		"",
		"   ",
		"Fresh Rosemary (chopped)",
	}

	for _, sample := range samples {
		once := norm.Normalize(sample)
		assert.Equal(t, once, norm.Normalize(once), "normalize should be idempotent for %q", sample)
	}
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	norm := newTestNormalizer()

	got := norm.NormalizeAll([]string{"2 cups rice", "1 onion"})
	assert.Equal(t, []string{"rice", "onion"}, got)
}
