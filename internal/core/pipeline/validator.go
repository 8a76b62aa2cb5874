package pipeline

import (
	"strings"

	"recipe-pipeline/internal/core/taxonomy"
)

// Validator 依分類表驗證食材並計算輸入覆蓋率
type Validator struct {
	tax  *taxonomy.Taxonomy
	norm *Normalizer
}

// NewValidator 建立驗證器
func NewValidator(tax *taxonomy.Taxonomy, norm *Normalizer) *Validator {
	return &Validator{tax: tax, norm: norm}
}

// ValidateIngredient 檢查食材是否存在於分類表
// 比對順序：精確比對、雙向子字串比對、逐字比對
func (v *Validator) ValidateIngredient(ingredient string) bool {
	normalized := v.norm.Normalize(ingredient)
	if normalized == "" {
		return false
	}
	return v.tax.MatchesKnown(normalized)
}

// Partition 將列表分為有效與無效兩組，無效食材仍保留於食譜中
func (v *Validator) Partition(ingredients []string) (valid, invalid []string) {
	for _, ing := range ingredients {
		if v.ValidateIngredient(ing) {
			valid = append(valid, ing)
		} else {
			invalid = append(invalid, ing)
		}
	}
	return valid, invalid
}

// CheckCoverage 計算輸入食材在食譜食材中的出現比例
// 沒有輸入時視為完全覆蓋
func (v *Validator) CheckCoverage(inputItems, recipeIngredients []string) float64 {
	if len(inputItems) == 0 {
		return 1.0
	}

	inputs := make(map[string]struct{}, len(inputItems))
	for _, item := range inputItems {
		inputs[v.norm.Normalize(item)] = struct{}{}
	}

	normalizedRecipe := v.norm.NormalizeAll(recipeIngredients)
	recipeText := strings.Join(normalizedRecipe, " ")

	matches := 0
	for inp := range inputs {
		if inp == "" {
			continue
		}
		if strings.Contains(recipeText, inp) {
			matches++
			continue
		}
		for _, r := range normalizedRecipe {
			if strings.Contains(r, inp) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(inputs))
}
