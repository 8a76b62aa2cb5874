package pipeline

import (
	"strings"

	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"
)

// 理想的食材與步驟數量範圍
const (
	idealIngredientsMin = 3
	idealIngredientsMax = 15
	idealDirectionsMin  = 3
	idealDirectionsMax  = 12
)

// Scorer 綜合多個維度評估食譜品質
type Scorer struct {
	weights   config.ScoringWeights
	validator *Validator
	coherence *CoherenceScorer
}

// NewScorer 建立評分器，權重須已於設定載入時正規化
func NewScorer(weights config.ScoringWeights, validator *Validator, coherence *CoherenceScorer) *Scorer {
	return &Scorer{
		weights:   weights,
		validator: validator,
		coherence: coherence,
	}
}

// Score 評估單一食譜並回傳各維度的分數
func (s *Scorer) Score(recipe common.Recipe, inputItems []string) common.RecipeScore {
	score := common.RecipeScore{
		Completeness:       s.scoreCompleteness(recipe),
		IngredientCoverage: s.validator.CheckCoverage(inputItems, recipe.Ingredients),
		InstructionQuality: s.scoreInstructions(recipe.Directions),
		Coherence:          s.coherence.Score(recipe),
	}

	score.Overall = s.weights.Completeness*score.Completeness +
		s.weights.IngredientCoverage*score.IngredientCoverage +
		s.weights.InstructionQuality*score.InstructionQuality +
		s.weights.Coherence*score.Coherence

	score.Details = map[string]interface{}{
		"has_title":       recipe.HasTitle(),
		"num_ingredients": len(recipe.Ingredients),
		"num_directions":  len(recipe.Directions),
	}

	return score
}

// ScoreBatch 評估一批食譜
func (s *Scorer) ScoreBatch(recipes []common.Recipe, inputItems []string) []common.RecipeScore {
	scores := make([]common.RecipeScore, len(recipes))
	for i, recipe := range recipes {
		scores[i] = s.Score(recipe, inputItems)
	}
	return scores
}

// scoreCompleteness 標題、食材數與步驟數各給部分分數
func (s *Scorer) scoreCompleteness(recipe common.Recipe) float64 {
	score := 0.0

	if recipe.HasTitle() {
		if n := len(recipe.Title); n >= 5 && n <= 50 {
			score += 0.3
		} else {
			score += 0.15
		}
	}

	if n := len(recipe.Ingredients); n > 0 {
		if n >= idealIngredientsMin && n <= idealIngredientsMax {
			score += 0.35
		} else {
			score += 0.2
		}
	}

	if n := len(recipe.Directions); n > 0 {
		if n >= idealDirectionsMin && n <= idealDirectionsMax {
			score += 0.35
		} else {
			score += 0.2
		}
	}

	return score
}

// scoreInstructions 綜合步驟長度、數量、重複度與結尾標點
func (s *Scorer) scoreInstructions(directions []string) float64 {
	var clean []string
	for _, d := range directions {
		if strings.TrimSpace(d) != "" {
			clean = append(clean, strings.TrimSpace(d))
		}
	}
	if len(clean) == 0 {
		return 0.0
	}

	var subscores []float64

	// 平均字數以 5 到 20 為佳
	totalWords := 0
	for _, d := range clean {
		totalWords += len(strings.Fields(d))
	}
	avgLength := float64(totalWords) / float64(len(clean))
	switch {
	case avgLength >= 5 && avgLength <= 20:
		subscores = append(subscores, 1.0)
	case avgLength >= 3 && avgLength <= 30:
		subscores = append(subscores, 0.7)
	default:
		subscores = append(subscores, 0.3)
	}

	// 步驟數以 4 到 10 為佳
	switch n := len(clean); {
	case n >= 4 && n <= 10:
		subscores = append(subscores, 1.0)
	case n >= 2 && n <= 15:
		subscores = append(subscores, 0.7)
	default:
		subscores = append(subscores, 0.4)
	}

	// 不應有重複步驟
	unique := make(map[string]struct{}, len(clean))
	for _, d := range clean {
		unique[strings.ToLower(d)] = struct{}{}
	}
	if len(unique) == len(clean) {
		subscores = append(subscores, 1.0)
	} else {
		subscores = append(subscores, 0.5)
	}

	// 結尾標點比例
	properEndings := 0
	for _, d := range clean {
		if strings.ContainsAny(d[len(d)-1:], ".!?") {
			properEndings++
		}
	}
	subscores = append(subscores, float64(properEndings)/float64(len(clean)))

	total := 0.0
	for _, v := range subscores {
		total += v
	}
	return total / float64(len(subscores))
}
