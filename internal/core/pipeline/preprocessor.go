package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"recipe-pipeline/internal/core/taxonomy"
	"recipe-pipeline/internal/pkg/common"
)

// InputPreprocessor 清理並驗證使用者輸入的食材
type InputPreprocessor struct {
	tax            *taxonomy.Taxonomy
	minLength      int
	maxLength      int
	maxIngredients int
	spacePattern   *regexp.Regexp
}

// NewInputPreprocessor 建立輸入前處理器
func NewInputPreprocessor(tax *taxonomy.Taxonomy) *InputPreprocessor {
	return &InputPreprocessor{
		tax:            tax,
		minLength:      2,
		maxLength:      50,
		maxIngredients: 20,
		spacePattern:   regexp.MustCompile(`\s+`),
	}
}

// Preprocess 處理輸入列表並回傳清理後食材與逐項驗證結果
func (p *InputPreprocessor) Preprocess(ingredients []string) ([]string, []common.ValidationResult) {
	results := make([]common.ValidationResult, 0, len(ingredients))
	processed := make([]string, 0, len(ingredients))
	seen := make(map[string]struct{})

	for _, ingredient := range ingredients {
		result := p.processSingle(ingredient)

		if result.IsValid {
			key := strings.ToLower(result.Normalized)
			if _, ok := seen[key]; ok {
				result.Warnings = append(result.Warnings, "duplicate ingredient removed")
			} else {
				seen[key] = struct{}{}
				processed = append(processed, result.Normalized)
			}
		}

		results = append(results, result)
	}

	if len(processed) > p.maxIngredients {
		processed = processed[:p.maxIngredients]
		results = append(results, common.ValidationResult{
			IsValid:  true,
			Warnings: []string{fmt.Sprintf("truncated to %d ingredients", p.maxIngredients)},
		})
	}

	return processed, results
}

// processSingle 處理單一食材
func (p *InputPreprocessor) processSingle(ingredient string) common.ValidationResult {
	original := ingredient
	var warnings []string

	ingredient = strings.ToLower(strings.TrimSpace(ingredient))
	ingredient = p.spacePattern.ReplaceAllString(ingredient, " ")

	if len(ingredient) < p.minLength {
		return common.ValidationResult{
			IsValid:    false,
			Original:   original,
			Normalized: ingredient,
			Warnings:   []string{"ingredient too short"},
		}
	}

	if len(ingredient) > p.maxLength {
		ingredient = ingredient[:p.maxLength]
		warnings = append(warnings, "ingredient truncated")
	}

	ingredient = p.expandAbbreviations(ingredient)

	if normalized := p.tax.ApplySynonyms(ingredient); normalized != ingredient {
		warnings = append(warnings, fmt.Sprintf("normalized from %q", ingredient))
		ingredient = normalized
	}

	var category string
	if cat, ok := p.tax.CategoryOf(ingredient); ok {
		category = string(cat)
	} else {
		warnings = append(warnings, "unknown ingredient - may affect quality")
	}

	return common.ValidationResult{
		IsValid:    true,
		Original:   original,
		Normalized: ingredient,
		Category:   category,
		Warnings:   warnings,
	}
}

// expandAbbreviations 逐字展開縮寫
func (p *InputPreprocessor) expandAbbreviations(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = p.tax.ExpandAbbreviation(w)
	}
	return strings.Join(words, " ")
}
