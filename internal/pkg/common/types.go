package common

import (
	"strings"
)

// Recipe 結構化食譜
// 由 Parser 建立，Cleaner 整理，之後各階段僅讀取
type Recipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Directions  []string `json:"directions"`
}

// PlaceholderTitle 解析不到標題時的預設值，評分時視同沒有標題
const PlaceholderTitle = "Untitled Recipe"

// IsComplete 檢查食譜是否包含所有必要部分
func (r *Recipe) IsComplete() bool {
	return r.HasTitle() && len(r.Ingredients) > 0 && len(r.Directions) > 0
}

// HasTitle 檢查是否有真實標題，預設標題不算
func (r *Recipe) HasTitle() bool {
	title := strings.TrimSpace(r.Title)
	return title != "" && title != PlaceholderTitle
}

// ParsedRecipe 解析結果（食譜 + 解析診斷資訊）
type ParsedRecipe struct {
	Recipe
	RawText       string   `json:"-"`
	ParseSuccess  bool     `json:"parse_success"`
	ParseWarnings []string `json:"parse_warnings,omitempty"`
}

// ValidationResult 單一食材的驗證結果，建立後不再修改
type ValidationResult struct {
	IsValid    bool     `json:"is_valid"`
	Original   string   `json:"original"`
	Normalized string   `json:"normalized"`
	Category   string   `json:"category,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// RecipeScore 食譜品質評分，每次評分重新計算
type RecipeScore struct {
	Overall            float64                `json:"overall_score"`
	Completeness       float64                `json:"completeness_score"`
	IngredientCoverage float64                `json:"ingredient_coverage_score"`
	InstructionQuality float64                `json:"instruction_quality_score"`
	Coherence          float64                `json:"coherence_score"`
	Details            map[string]interface{} `json:"details,omitempty"`
}

// RankedRecipe 排名後的食譜與評分
type RankedRecipe struct {
	Recipe Recipe       `json:"recipe"`
	Score  float64      `json:"score"`
	Detail *RecipeScore `json:"detail,omitempty"`
}

// FormatItems 將食材列表格式化為模型輸入字串
func FormatItems(items []string) string {
	return strings.Join(items, ", ")
}

// ConcatLower 將字串列表串接為小寫文字，供子字串比對使用
func ConcatLower(items []string) string {
	return strings.ToLower(strings.Join(items, " "))
}
