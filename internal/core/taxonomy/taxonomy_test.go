package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	tax := New()

	assert.True(t, tax.Contains("chicken"))
	assert.True(t, tax.Contains("garlic"))
	assert.True(t, tax.Contains("olive oil"))
	assert.False(t, tax.Contains("unobtainium"))
	assert.False(t, tax.Contains("Chicken")) // 需先正規化為小寫
}

func TestCategoryOf(t *testing.T) {
	tax := New()

	cat, ok := tax.CategoryOf("chicken")
	require.True(t, ok)
	assert.Equal(t, CategoryProteins, cat)

	// 子字串比對
	cat, ok = tax.CategoryOf("chicken breast")
	require.True(t, ok)
	assert.Equal(t, CategoryProteins, cat)

	_, ok = tax.CategoryOf("unobtainium")
	assert.False(t, ok)

	_, ok = tax.CategoryOf("")
	assert.False(t, ok)
}

func TestCategoryOfDuplicateEntriesAreStable(t *testing.T) {
	tax := New()

	// tomato 同時出現在蔬菜與水果，先註冊的類別勝出
	cat, ok := tax.CategoryOf("tomato")
	require.True(t, ok)
	assert.Equal(t, CategoryVegetables, cat)
}

func TestMatchesKnown(t *testing.T) {
	tax := New()

	assert.True(t, tax.MatchesKnown("chicken"))          // 精確
	assert.True(t, tax.MatchesKnown("chicken thighs"))   // 包含已知詞
	assert.True(t, tax.MatchesKnown("bell"))             // 已知詞包含查詢
	assert.True(t, tax.MatchesKnown("organic chicken"))  // 逐字比對
	assert.False(t, tax.MatchesKnown("plutonium rods"))
}

func TestVerbSets(t *testing.T) {
	tax := New()

	assert.True(t, tax.IsCookingVerb("preheat"))
	assert.True(t, tax.IsCookingVerb("Bake"))
	assert.False(t, tax.IsCookingVerb("contemplate"))

	assert.True(t, tax.IsUnit("cups"))
	assert.True(t, tax.IsUnit("cloves"))
	assert.False(t, tax.IsUnit("chicken"))

	assert.True(t, tax.IsEndingVerb("serve"))
	assert.True(t, tax.IsStartingVerb("preheat"))
}

func TestExpandAbbreviation(t *testing.T) {
	tax := New()

	assert.Equal(t, "chicken", tax.ExpandAbbreviation("chx"))
	assert.Equal(t, "tomato", tax.ExpandAbbreviation("tom"))
	assert.Equal(t, "garlic", tax.ExpandAbbreviation("garlic"))
}

func TestApplySynonyms(t *testing.T) {
	tax := New()

	// 整串比對
	assert.Equal(t, "eggplant", tax.ApplySynonyms("aubergine"))
	assert.Equal(t, "zucchini", tax.ApplySynonyms("courgette"))

	// 包含比對會替換整段出現處
	assert.Equal(t, "grilled eggplant", tax.ApplySynonyms("grilled aubergine"))

	// 查無別名時回傳原字
	assert.Equal(t, "chicken", tax.ApplySynonyms("chicken"))
}

func TestSize(t *testing.T) {
	tax := New()
	assert.Greater(t, tax.Size(), 100)
}
