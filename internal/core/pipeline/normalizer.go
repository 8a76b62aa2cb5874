package pipeline

import (
	"regexp"
	"strings"

	"recipe-pipeline/internal/core/taxonomy"
)

// Normalizer 將食材字串正規化為可比較的標準形式
type Normalizer struct {
	quantityPattern *regexp.Regexp
	unitPattern     *regexp.Regexp
	modifierPattern *regexp.Regexp
	punctPattern    *regexp.Regexp
	spacePattern    *regexp.Regexp
}

// NewNormalizer 依分類表建立正規化器，樣式只編譯一次
func NewNormalizer(tax *taxonomy.Taxonomy) *Normalizer {
	return &Normalizer{
		quantityPattern: regexp.MustCompile(`\d+[\d/.\s]*`),
		unitPattern:     regexp.MustCompile(`(?i)\b(?:` + joinAlternatives(tax.Units()) + `)\b`),
		modifierPattern: regexp.MustCompile(`(?i)\b(?:` + joinAlternatives(tax.Modifiers()) + `)\b`),
		punctPattern:    regexp.MustCompile(`[,()\[\]]`),
		spacePattern:    regexp.MustCompile(`\s+`),
	}
}

// joinAlternatives 組合逐字比對的正規表達式分支
func joinAlternatives(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// Normalize 移除數量、單位與修飾詞，回傳小寫標準字串，可重複套用
func (n *Normalizer) Normalize(ingredient string) string {
	text := strings.ToLower(strings.TrimSpace(ingredient))

	// 移除數量（整數、分數、小數）
	text = n.quantityPattern.ReplaceAllString(text, "")

	// 移除份量單位，僅比對完整單字
	text = n.unitPattern.ReplaceAllString(text, "")

	// 移除修飾詞
	text = n.modifierPattern.ReplaceAllString(text, "")

	// 移除多餘標點與括號
	text = n.punctPattern.ReplaceAllString(text, "")

	// 收斂空白
	text = n.spacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// NormalizeAll 逐一正規化並保留原順序
func (n *Normalizer) NormalizeAll(ingredients []string) []string {
	out := make([]string, len(ingredients))
	for i, ing := range ingredients {
		out[i] = n.Normalize(ing)
	}
	return out
}
