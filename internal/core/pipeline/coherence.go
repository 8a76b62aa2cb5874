package pipeline

import (
	"math"
	"strings"

	"recipe-pipeline/internal/core/taxonomy"
	"recipe-pipeline/internal/pkg/common"
)

// 邏輯順序檢查使用的動詞分組
var (
	prepVerbs = map[string]struct{}{
		"chop": {}, "dice": {}, "mince": {}, "slice": {},
		"mix": {}, "combine": {}, "prepare": {}, "gather": {},
	}
	cookVerbs = map[string]struct{}{
		"bake": {}, "fry": {}, "boil": {}, "roast": {},
		"grill": {}, "sauté": {}, "saute": {},
	}
)

// CoherenceScorer 評估步驟的邏輯連貫性
type CoherenceScorer struct {
	tax  *taxonomy.Taxonomy
	norm *Normalizer
}

// NewCoherenceScorer 建立連貫性評分器
func NewCoherenceScorer(tax *taxonomy.Taxonomy, norm *Normalizer) *CoherenceScorer {
	return &CoherenceScorer{tax: tax, norm: norm}
}

// Score 回傳四項子分數的平均值，沒有步驟時為 0
func (s *CoherenceScorer) Score(recipe common.Recipe) float64 {
	if len(recipe.Directions) == 0 {
		return 0.0
	}

	scores := []float64{
		s.scoreVerbStarts(recipe.Directions),
		s.scoreLogicalOrder(recipe.Directions),
		s.scoreIngredientReferences(recipe.Ingredients, recipe.Directions),
		s.scoreLengthConsistency(recipe.Directions),
	}

	total := 0.0
	for _, v := range scores {
		total += v
	}
	return total / float64(len(scores))
}

// scoreVerbStarts 計算以烹飪動詞開頭的步驟比例
func (s *CoherenceScorer) scoreVerbStarts(directions []string) float64 {
	if len(directions) == 0 {
		return 0.0
	}
	starts := 0
	for _, dir := range directions {
		words := strings.Fields(strings.ToLower(dir))
		if len(words) > 0 && s.tax.IsCookingVerb(words[0]) {
			starts++
		}
	}
	return float64(starts) / float64(len(directions))
}

// scoreLogicalOrder 檢查備料、烹煮與上菜的先後順序
func (s *CoherenceScorer) scoreLogicalOrder(directions []string) float64 {
	if len(directions) < 2 {
		// 單一步驟無法判斷順序
		return 0.5
	}

	penalties := 0
	checks := 0

	lowered := make([]string, len(directions))
	for i, d := range directions {
		lowered[i] = strings.ToLower(d)
	}

	// 預熱應出現在前半段
	for i, d := range lowered {
		if strings.Contains(d, "preheat") {
			checks++
			if i > len(directions)/2 {
				penalties++
			}
			break
		}
	}

	// 上菜類動詞應接近結尾
	for _, verb := range []string{"serve", "enjoy", "plate"} {
		for i, d := range lowered {
			if strings.Contains(d, verb) {
				checks++
				if float64(i) < float64(len(directions))*0.6 {
					penalties++
				}
				break
			}
		}
	}

	// 首個備料動詞應先於首個烹煮動詞
	firstPrep, firstCook := -1, -1
	for i, d := range lowered {
		for _, w := range strings.Fields(d) {
			if _, ok := prepVerbs[w]; ok && firstPrep < 0 {
				firstPrep = i
			}
			if _, ok := cookVerbs[w]; ok && firstCook < 0 {
				firstCook = i
			}
		}
	}
	if firstPrep >= 0 && firstCook >= 0 {
		checks++
		if firstPrep > firstCook {
			penalties++
		}
	}

	if checks == 0 {
		// 無可用檢查時給中性分數
		return 0.7
	}
	return math.Max(0.0, 1.0-float64(penalties)/float64(checks))
}

// scoreIngredientReferences 計算步驟提及食材的比例
// 整組片語命中計 1 分，僅關鍵單字命中計 0.5 分
func (s *CoherenceScorer) scoreIngredientReferences(ingredients, directions []string) float64 {
	if len(ingredients) == 0 || len(directions) == 0 {
		return 0.5
	}

	directionsText := common.ConcatLower(directions)
	referenced := 0.0

	for _, ing := range ingredients {
		normalized := s.norm.Normalize(ing)
		if len(normalized) <= 2 {
			continue
		}
		if strings.Contains(directionsText, normalized) {
			referenced += 1.0
			continue
		}
		for _, word := range strings.Fields(normalized) {
			if len(word) > 3 && strings.Contains(directionsText, word) {
				referenced += 0.5
				break
			}
		}
	}

	return math.Min(1.0, referenced/float64(len(ingredients)))
}

// scoreLengthConsistency 依字數變異係數評估步驟長度的一致性
func (s *CoherenceScorer) scoreLengthConsistency(directions []string) float64 {
	if len(directions) < 2 {
		return 1.0
	}

	var lengths []float64
	for _, d := range directions {
		if d != "" {
			lengths = append(lengths, float64(len(strings.Fields(d))))
		}
	}
	if len(lengths) == 0 {
		return 0.0
	}

	mean := 0.0
	for _, l := range lengths {
		mean += l
	}
	mean /= float64(len(lengths))
	if mean == 0 {
		return 0.0
	}

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))
	cv := math.Sqrt(variance) / mean

	return math.Max(0.0, math.Min(1.0, 1.0-(cv-0.5)))
}
