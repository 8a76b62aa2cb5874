package generation

import (
	"context"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/core/pipeline"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"go.uber.org/zap"
)

// TemperatureAnnealing 溫度退火生成控制器
// 逐輪提高採樣溫度，保留得分最高的一輪，達到品質門檻就提前結束
type TemperatureAnnealing struct {
	config    config.AnnealingConfig
	generator ai.Generator
	parser    *pipeline.Parser
	scorer    *pipeline.Scorer
	markers   pipeline.SectionMarkers
}

// NewTemperatureAnnealing 創建退火控制器
func NewTemperatureAnnealing(cfg config.AnnealingConfig, gen ai.Generator, parser *pipeline.Parser, scorer *pipeline.Scorer) *TemperatureAnnealing {
	return &TemperatureAnnealing{
		config:    cfg,
		generator: gen,
		parser:    parser,
		scorer:    scorer,
		markers:   pipeline.DefaultSectionMarkers(),
	}
}

// Generate 退火生成，回傳最佳一輪的候選與其分數
func (a *TemperatureAnnealing) Generate(ctx context.Context, items []string, decoding ai.DecodingConfig) ([]common.ParsedRecipe, float64, error) {
	var bestBatch []common.ParsedRecipe
	bestScore := 0.0
	generated := false

	temp := a.config.InitialTemp
	attempts := 0

	for temp <= a.config.MaxTemp && attempts < a.config.MaxAttempts {
		roundCfg := decoding
		roundCfg.Strategy = ai.StrategySampling
		roundCfg.Temperature = temp

		texts, err := a.generator.Generate(ctx, items, roundCfg)
		if err != nil {
			common.LogWarn("退火輪次生成失敗",
				zap.Int("attempt", attempts),
				zap.Float64("temperature", temp),
				zap.Error(err),
			)
			temp += a.config.TempStep
			attempts++
			continue
		}

		generated = true
		batch := a.parser.ParseBatch(texts, a.markers)
		roundBest := a.bestCompleteScore(batch, items)

		common.LogInfo("退火輪次完成",
			zap.Int("attempt", attempts),
			zap.Float64("temperature", temp),
			zap.Int("candidates", len(batch)),
			zap.Float64("round_best", roundBest),
			zap.Float64("best_so_far", bestScore),
		)

		if roundBest > bestScore {
			bestScore = roundBest
			bestBatch = batch
		}

		if bestScore >= a.config.ScoreThreshold {
			break
		}

		temp += a.config.TempStep
		attempts++
	}

	// 所有輪次都沒拿到任何文字時回報失敗，而不是空結果
	if !generated {
		return nil, 0, common.ErrGenerationFailed
	}

	return bestBatch, bestScore, nil
}

// bestCompleteScore 只對完整候選評分，回傳該輪最高分
func (a *TemperatureAnnealing) bestCompleteScore(batch []common.ParsedRecipe, items []string) float64 {
	best := 0.0
	for _, parsed := range batch {
		if !parsed.IsComplete() {
			continue
		}
		score := a.scorer.Score(parsed.Recipe, items)
		if score.Overall > best {
			best = score.Overall
		}
	}
	return best
}
