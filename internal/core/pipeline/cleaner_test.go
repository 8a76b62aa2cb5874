package pipeline

import (
	"strings"
	"testing"

	"recipe-pipeline/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCleaner() *Cleaner {
	return NewCleaner(newTestNormalizer())
}

func TestCleanDeduplicatesAndCapitalizes(t *testing.T) {
	c := newTestCleaner()

	recipe := common.Recipe{
		Title:       "  Simple Rice  ",
		Ingredients: []string{"rice", "Rice", "", "water"},
		Directions:  []string{"rinse the rice", "boil the water!", "rinse the rice", ""},
	}

	cleaned := c.Clean(recipe)

	assert.Equal(t, "Simple Rice", cleaned.Title)
	assert.Equal(t, []string{"rice", "water"}, cleaned.Ingredients)
	require.Len(t, cleaned.Directions, 2)
	assert.Equal(t, "Rinse the rice.", cleaned.Directions[0])
	assert.Equal(t, "Boil the water!", cleaned.Directions[1])
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	c := newTestCleaner()

	recipe := common.Recipe{
		Title:       "Toast",
		Ingredients: []string{"bread", "bread"},
		Directions:  []string{"toast the bread"},
	}
	c.Clean(recipe)

	assert.Equal(t, []string{"bread", "bread"}, recipe.Ingredients)
	assert.Equal(t, "toast the bread", recipe.Directions[0])
}

func TestCleanInvariants(t *testing.T) {
	c := newTestCleaner()

	recipe := common.Recipe{
		Title:       "",
		Ingredients: []string{"Eggs", "eggs", "milk "},
		Directions:  []string{"beat the eggs", "Beat The Eggs", "add milk"},
	}

	cleaned := c.Clean(recipe)

	assert.Equal(t, common.PlaceholderTitle, cleaned.Title)

	seen := make(map[string]struct{})
	for _, ing := range cleaned.Ingredients {
		key := strings.ToLower(ing)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate ingredient %q", ing)
		seen[key] = struct{}{}
	}

	for _, dir := range cleaned.Directions {
		assert.True(t, strings.ContainsAny(dir[len(dir)-1:], ".!?"),
			"direction %q should end with terminal punctuation", dir)
	}
}

func TestCheckFlagsQualityIssues(t *testing.T) {
	c := newTestCleaner()

	ok, issues := c.Check(common.Recipe{
		Title:       "ok",
		Ingredients: []string{"rice"},
		Directions:  []string{"stir."},
	})

	assert.False(t, ok)
	assert.Contains(t, issues, "missing or too short title")
	assert.Contains(t, issues, "too few ingredients (minimum 2)")
	assert.Contains(t, issues, "too few directions (minimum 2)")
	assert.Contains(t, issues, "direction 1 may be incomplete (too short)")
}

func TestCheckPassesGoodRecipe(t *testing.T) {
	c := newTestCleaner()

	ok, issues := c.Check(common.Recipe{
		Title:       "Garlic Butter Rice",
		Ingredients: []string{"2 cups rice", "3 cloves garlic", "butter"},
		Directions: []string{
			"Rinse the rice under cold water.",
			"Melt the butter with the garlic in a pot.",
			"Add the rice and simmer until tender.",
		},
	})

	assert.True(t, ok)
	assert.Empty(t, issues)
}

func TestCheckDuplicateDirections(t *testing.T) {
	c := newTestCleaner()

	_, issues := c.Check(common.Recipe{
		Title:       "Boiled Eggs",
		Ingredients: []string{"4 eggs", "water"},
		Directions: []string{
			"Boil the eggs in the water for ten minutes.",
			"Boil the eggs in the water for ten minutes.",
		},
	})

	assert.Contains(t, issues, "found duplicate directions")
}

func TestCheckIngredientReferences(t *testing.T) {
	c := newTestCleaner()

	_, issues := c.Check(common.Recipe{
		Title:       "Mystery Dish",
		Ingredients: []string{"chicken", "garlic", "lemon"},
		Directions: []string{
			"Preheat the oven carefully.",
			"Cook everything until done completely.",
		},
	})

	assert.Contains(t, issues, "directions don't reference enough ingredients")
}

func TestDetectHallucinations(t *testing.T) {
	c := newTestCleaner()

	flagged := c.DetectHallucinations(common.Recipe{
		Title:       "Odd Soup",
		Ingredients: []string{"2 cups of nothing", "water"},
		Directions: []string{
			"stir stir stir stir stir stir stir stir",
		},
	})

	require.Len(t, flagged, 2)
	assert.Contains(t, flagged[0], "suspicious ingredient")
	assert.Contains(t, flagged[1], "appears repetitive")
}

func TestDetectHallucinationsCleanRecipe(t *testing.T) {
	c := newTestCleaner()

	flagged := c.DetectHallucinations(common.Recipe{
		Title:       "Tomato Pasta",
		Ingredients: []string{"2 tomatoes", "200 g pasta"},
		Directions:  []string{"Boil the pasta until al dente.", "Simmer the tomatoes into a sauce."},
	})

	assert.Empty(t, flagged)
}

// Clean 不會動到解析失敗的空食譜
func TestCleanEmptyRecipe(t *testing.T) {
	c := newTestCleaner()

	cleaned := c.Clean(common.Recipe{Title: common.PlaceholderTitle})

	assert.Equal(t, common.PlaceholderTitle, cleaned.Title)
	assert.Empty(t, cleaned.Ingredients)
	assert.Empty(t, cleaned.Directions)
}
