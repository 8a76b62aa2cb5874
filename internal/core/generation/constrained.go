package generation

import (
	"context"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/core/pipeline"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"go.uber.org/zap"
)

// ConstrainedGenerator 帶約束檢查的重試生成控制器
// 每輪生成後檢查候選是否滿足約束，不足時調整解碼設定重試
type ConstrainedGenerator struct {
	config    *config.Config
	generator ai.Generator
	parser    *pipeline.Parser
	validator *pipeline.Validator
	markers   pipeline.SectionMarkers
}

// NewConstrainedGenerator 創建約束生成控制器
func NewConstrainedGenerator(cfg *config.Config, gen ai.Generator, parser *pipeline.Parser, validator *pipeline.Validator) *ConstrainedGenerator {
	return &ConstrainedGenerator{
		config:    cfg,
		generator: gen,
		parser:    parser,
		validator: validator,
		markers:   pipeline.DefaultSectionMarkers(),
	}
}

// Generate 反覆生成直到湊滿足夠的合格候選或用盡重試次數
// 重試用盡時退回已合格的候選，一個都沒有就退回最後一輪的原始解析結果
func (g *ConstrainedGenerator) Generate(ctx context.Context, items []string, decoding ai.DecodingConfig) ([]common.ParsedRecipe, error) {
	var passing []common.ParsedRecipe
	var lastBatch []common.ParsedRecipe

	maxAttempts := g.config.Retry.MaxAttempts
	for attempt := 0; attempt < maxAttempts; attempt++ {
		texts, err := g.generator.Generate(ctx, items, decoding)
		if err != nil {
			common.LogWarn("生成嘗試失敗",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			decoding = NextAttemptConfig(attempt, decoding, g.config.Retry.TempStep, g.config.Retry.MaxTemp)
			continue
		}

		batch := g.parser.ParseBatch(texts, g.markers)
		if len(batch) > 0 {
			lastBatch = batch
		}

		for _, parsed := range batch {
			if g.satisfiesConstraints(parsed, items) {
				passing = append(passing, parsed)
			}
		}

		common.LogInfo("約束生成嘗試完成",
			zap.Int("attempt", attempt),
			zap.Int("candidates", len(batch)),
			zap.Int("passing", len(passing)),
			zap.String("strategy", string(decoding.Strategy)),
			zap.Float64("temperature", decoding.Temperature),
		)

		if len(passing) >= g.config.Pipeline.MinPassingRecipes {
			return passing, nil
		}

		decoding = NextAttemptConfig(attempt, decoding, g.config.Retry.TempStep, g.config.Retry.MaxTemp)
	}

	if len(passing) > 0 {
		common.LogWarn("重試用盡，回傳部分合格候選",
			zap.Int("passing", len(passing)),
			zap.Int("required", g.config.Pipeline.MinPassingRecipes),
		)
		return passing, nil
	}

	if len(lastBatch) > 0 {
		common.LogWarn("重試用盡且無合格候選，回傳最後一輪解析結果",
			zap.Int("candidates", len(lastBatch)),
		)
		return lastBatch, nil
	}

	return nil, common.ErrGenerationFailed
}

// satisfiesConstraints 檢查候選是否通過全部硬約束
func (g *ConstrainedGenerator) satisfiesConstraints(parsed common.ParsedRecipe, items []string) bool {
	if !parsed.HasTitle() {
		return false
	}
	if len(parsed.Directions) < g.config.Pipeline.MinDirections {
		return false
	}
	coverage := g.validator.CheckCoverage(items, parsed.Ingredients)
	return coverage >= g.config.Pipeline.MinCoverage
}
