package pipeline

import (
	"sort"
	"strings"

	"recipe-pipeline/internal/pkg/common"
)

// Ranker 依分數排序並挑出彼此差異足夠大的前幾名
type Ranker struct {
	scorer             *Scorer
	diversityThreshold float64
}

// NewRanker 建立排名器
func NewRanker(scorer *Scorer, diversityThreshold float64) *Ranker {
	return &Ranker{scorer: scorer, diversityThreshold: diversityThreshold}
}

// Rank 評分、穩定排序後以貪婪方式挑選多樣化的前 topN 名
func (r *Ranker) Rank(recipes []common.Recipe, inputItems []string, topN int) []common.RankedRecipe {
	ranked := make([]common.RankedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		score := r.scorer.Score(recipe, inputItems)
		detail := score
		ranked = append(ranked, common.RankedRecipe{
			Recipe: recipe,
			Score:  score.Overall,
			Detail: &detail,
		})
	}

	// 同分時保留原始順序
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	selected := make([]common.RankedRecipe, 0, topN)
	for _, candidate := range ranked {
		if len(selected) >= topN {
			break
		}
		if r.similarToAny(candidate.Recipe, selected) {
			continue
		}
		selected = append(selected, candidate)
	}

	return selected
}

// similarToAny 檢查候選與任一已入選食譜是否過於相似
func (r *Ranker) similarToAny(recipe common.Recipe, selected []common.RankedRecipe) bool {
	for _, s := range selected {
		if Similarity(recipe, s.Recipe) >= r.diversityThreshold {
			return true
		}
	}
	return false
}

// Similarity 計算兩份食譜的相似度，取可用比較軸的平均
// 比較軸：標題字集合、食材字串集合、步驟前五字前綴集合
func Similarity(a, b common.Recipe) float64 {
	var axes []float64

	titleA := wordSet(strings.ToLower(strings.TrimSpace(a.Title)))
	titleB := wordSet(strings.ToLower(strings.TrimSpace(b.Title)))
	if len(titleA) > 0 && len(titleB) > 0 {
		axes = append(axes, jaccard(titleA, titleB))
	}

	ingA := lowerSet(a.Ingredients)
	ingB := lowerSet(b.Ingredients)
	if len(ingA) > 0 || len(ingB) > 0 {
		axes = append(axes, jaccard(ingA, ingB))
	}

	dirA := prefixSet(a.Directions)
	dirB := prefixSet(b.Directions)
	if len(dirA) > 0 && len(dirB) > 0 {
		axes = append(axes, jaccard(dirA, dirB))
	}

	if len(axes) == 0 {
		return 0.0
	}
	total := 0.0
	for _, v := range axes {
		total += v
	}
	return total / float64(len(axes))
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		set[w] = struct{}{}
	}
	return set
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if v := strings.ToLower(strings.TrimSpace(item)); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// prefixSet 取每個步驟的前五個字作為比較鍵
func prefixSet(directions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(directions))
	for _, dir := range directions {
		words := strings.Fields(strings.ToLower(dir))
		if len(words) == 0 {
			continue
		}
		if len(words) > 5 {
			words = words[:5]
		}
		set[strings.Join(words, " ")] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	union := len(b)
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
