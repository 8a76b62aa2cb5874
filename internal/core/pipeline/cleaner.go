package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"recipe-pipeline/internal/pkg/common"
)

// Cleaner 清理食譜並檢查品質問題
type Cleaner struct {
	norm           *Normalizer
	minIngredients int
	minDirections  int
	minTitleLength int
	minDirLength   int

	suspiciousPatterns []*regexp.Regexp
}

// NewCleaner 建立清理器
func NewCleaner(norm *Normalizer) *Cleaner {
	return &Cleaner{
		norm:           norm,
		minIngredients: 2,
		minDirections:  2,
		minTitleLength: 3,
		minDirLength:   10,
		suspiciousPatterns: []*regexp.Regexp{
			// 份量後面接著「空無一物」
			regexp.MustCompile(`(?i)\d+\s*(cups?|tbsp|tsp|oz)\s+of\s+(nothing|none|air)`),
			// 連續多個數字
			regexp.MustCompile(`(\d+\s+){3,}`),
			// 連續多個特殊符號
			regexp.MustCompile(`[^\w\s]{3,}`),
		},
	}
}

// Clean 回傳清理後的新食譜，不修改輸入
func (c *Cleaner) Clean(recipe common.Recipe) common.Recipe {
	cleaned := common.Recipe{}

	title := strings.TrimSpace(recipe.Title)
	if title == "" {
		title = common.PlaceholderTitle
	}
	cleaned.Title = title

	// 去除空項目與重複項目，保留原順序
	seen := make(map[string]struct{})
	for _, ing := range recipe.Ingredients {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			continue
		}
		key := strings.ToLower(ing)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned.Ingredients = append(cleaned.Ingredients, ing)
	}

	seenDirs := make(map[string]struct{})
	for _, dir := range recipe.Directions {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dir = capitalizeFirst(dir)
		if !strings.ContainsAny(dir[len(dir)-1:], ".!?") {
			dir += "."
		}
		key := strings.ToLower(dir)
		if _, ok := seenDirs[key]; ok {
			continue
		}
		seenDirs[key] = struct{}{}
		cleaned.Directions = append(cleaned.Directions, dir)
	}

	return cleaned
}

// Check 回傳品質問題清單，問題為空才算通過，不修改食譜
func (c *Cleaner) Check(recipe common.Recipe) (bool, []string) {
	var issues []string

	title := strings.TrimSpace(recipe.Title)
	if title == "" || len(title) < c.minTitleLength {
		issues = append(issues, "missing or too short title")
	}

	if len(recipe.Ingredients) < c.minIngredients {
		issues = append(issues, fmt.Sprintf("too few ingredients (minimum %d)", c.minIngredients))
	}
	if n := countEmpty(recipe.Ingredients); n > 0 {
		issues = append(issues, fmt.Sprintf("found %d empty ingredient(s)", n))
	}

	if len(recipe.Directions) < c.minDirections {
		issues = append(issues, fmt.Sprintf("too few directions (minimum %d)", c.minDirections))
	}
	if n := countEmpty(recipe.Directions); n > 0 {
		issues = append(issues, fmt.Sprintf("found %d empty direction(s)", n))
	}

	// 重複步驟檢查
	unique := make(map[string]struct{})
	nonEmpty := 0
	for _, d := range recipe.Directions {
		if strings.TrimSpace(d) == "" {
			continue
		}
		nonEmpty++
		unique[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	if len(unique) < nonEmpty {
		issues = append(issues, "found duplicate directions")
	}

	for i, dir := range recipe.Directions {
		if d := strings.TrimSpace(dir); d != "" && len(d) < c.minDirLength {
			issues = append(issues, fmt.Sprintf("direction %d may be incomplete (too short)", i+1))
		}
	}

	// 步驟需提及足夠比例的食材
	if len(recipe.Ingredients) > 0 && len(recipe.Directions) > 0 {
		directionsText := common.ConcatLower(recipe.Directions)
		referenced := 0
		for _, ing := range recipe.Ingredients {
			normalized := c.norm.Normalize(ing)
			if len(normalized) > 2 && strings.Contains(directionsText, normalized) {
				referenced++
			}
		}
		if float64(referenced) < float64(len(recipe.Ingredients))*0.3 {
			issues = append(issues, "directions don't reference enough ingredients")
		}
	}

	return len(issues) == 0, issues
}

// DetectHallucinations 標記疑似幻覺內容，不影響清理結果
func (c *Cleaner) DetectHallucinations(recipe common.Recipe) []string {
	var flagged []string

	for _, ing := range recipe.Ingredients {
		for _, pattern := range c.suspiciousPatterns {
			if pattern.MatchString(ing) {
				flagged = append(flagged, fmt.Sprintf("suspicious ingredient: %s", ing))
				break
			}
		}
	}

	for i, dir := range recipe.Directions {
		words := strings.Fields(strings.ToLower(dir))
		if len(words) <= 5 {
			continue
		}
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique)) < float64(len(words))*0.3 {
			flagged = append(flagged, fmt.Sprintf("direction %d appears repetitive", i+1))
		}
	}

	return flagged
}

func countEmpty(items []string) int {
	n := 0
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			n++
		}
	}
	return n
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) > 0 && unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
