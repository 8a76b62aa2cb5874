package generation

import (
	"context"
	"errors"
	"testing"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/core/pipeline"
	"recipe-pipeline/internal/core/taxonomy"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator 依呼叫次數回傳預設批次並記錄收到的解碼設定
type stubGenerator struct {
	batches [][]string
	configs []ai.DecodingConfig
	err     error
}

func (s *stubGenerator) Generate(ctx context.Context, items []string, cfg ai.DecodingConfig) ([]string, error) {
	s.configs = append(s.configs, cfg)
	if s.err != nil {
		return nil, s.err
	}
	idx := len(s.configs) - 1
	if idx >= len(s.batches) {
		idx = len(s.batches) - 1
	}
	return s.batches[idx], nil
}

func testConfig() *config.Config {
	return &config.Config{
		Pipeline: config.PipelineConfig{
			MinDirections:      3,
			MinCoverage:        0.5,
			MinPassingRecipes:  2,
			NumReturnSequences: 3,
			DiversityThreshold: 0.4,
			Weights: config.ScoringWeights{
				Completeness:       0.25,
				IngredientCoverage: 0.30,
				InstructionQuality: 0.25,
				Coherence:          0.20,
			},
		},
		Retry: config.RetryConfig{
			MaxAttempts: 3,
			TempStep:    0.2,
			MaxTemp:     1.2,
		},
		Annealing: config.AnnealingConfig{
			MaxAttempts:    5,
			InitialTemp:    0.7,
			TempStep:       0.15,
			MaxTemp:        1.2,
			ScoreThreshold: 0.6,
		},
	}
}

func newTestPipeline(cfg *config.Config) (*pipeline.Parser, *pipeline.Validator, *pipeline.Scorer) {
	tax := taxonomy.New()
	norm := pipeline.NewNormalizer(tax)
	validator := pipeline.NewValidator(tax, norm)
	scorer := pipeline.NewScorer(cfg.Pipeline.Weights, validator, pipeline.NewCoherenceScorer(tax, norm))
	return pipeline.NewParser(), validator, scorer
}

const goodCompletion = "title: Lemon Garlic Chicken\n" +
	"ingredients: 1 lb chicken breast -- 3 cloves garlic -- 1 lemon\n" +
	"directions: Preheat the oven to 400 degrees. -- Chop the garlic and season the chicken. -- Bake the chicken for 25 minutes. -- Serve the chicken hot."

const shortCompletion = "title: Stub Dish\n" +
	"ingredients: chicken -- garlic\n" +
	"directions: Cook everything together until done."

func TestNextAttemptConfigIsPure(t *testing.T) {
	prior := ai.DefaultDecodingConfig()

	next := NextAttemptConfig(0, prior, 0.2, 1.2)
	assert.Equal(t, ai.StrategySampling, next.Strategy)
	assert.Equal(t, ai.StrategyBeam, prior.Strategy)
	assert.Equal(t, prior.Temperature, next.Temperature)

	next = NextAttemptConfig(1, prior, 0.2, 1.2)
	assert.InDelta(t, 0.9, next.Temperature, 1e-9)
	assert.InDelta(t, 0.7, prior.Temperature, 1e-9)

	// 超過前兩次失敗後設定不再變動
	next = NextAttemptConfig(2, prior, 0.2, 1.2)
	assert.Equal(t, prior, next)
}

func TestNextAttemptConfigCapsTemperature(t *testing.T) {
	prior := ai.DefaultDecodingConfig()
	prior.Temperature = 1.1

	next := NextAttemptConfig(1, prior, 0.2, 1.2)
	assert.InDelta(t, 1.2, next.Temperature, 1e-9)
}

func TestConstrainedReturnsOncePassingQuorumMet(t *testing.T) {
	cfg := testConfig()
	parser, validator, _ := newTestPipeline(cfg)
	stub := &stubGenerator{batches: [][]string{{goodCompletion, goodCompletion, goodCompletion}}}

	g := NewConstrainedGenerator(cfg, stub, parser, validator)
	batch, err := g.Generate(context.Background(), []string{"chicken", "garlic", "lemon"}, ai.DefaultDecodingConfig())

	require.NoError(t, err)
	assert.Len(t, stub.configs, 1)
	assert.GreaterOrEqual(t, len(batch), 2)
	for _, parsed := range batch {
		assert.True(t, parsed.HasTitle())
		assert.GreaterOrEqual(t, len(parsed.Directions), cfg.Pipeline.MinDirections)
	}
}

func TestConstrainedExhaustsAndFallsBack(t *testing.T) {
	cfg := testConfig()
	parser, validator, _ := newTestPipeline(cfg)

	// 每輪都只有一個步驟，永遠不滿足 MinDirections
	stub := &stubGenerator{batches: [][]string{{shortCompletion}}}

	g := NewConstrainedGenerator(cfg, stub, parser, validator)
	batch, err := g.Generate(context.Background(), []string{"chicken", "garlic"}, ai.DefaultDecodingConfig())

	require.NoError(t, err)
	require.Len(t, stub.configs, 3)

	// 設定恰好被調整兩次：先換成 sampling，再提高溫度
	assert.Equal(t, ai.StrategyBeam, stub.configs[0].Strategy)
	assert.InDelta(t, 0.7, stub.configs[0].Temperature, 1e-9)
	assert.Equal(t, ai.StrategySampling, stub.configs[1].Strategy)
	assert.InDelta(t, 0.7, stub.configs[1].Temperature, 1e-9)
	assert.Equal(t, ai.StrategySampling, stub.configs[2].Strategy)
	assert.InDelta(t, 0.9, stub.configs[2].Temperature, 1e-9)

	// 回傳最後一輪未過濾的解析結果，絕不回空
	require.Len(t, batch, 1)
	assert.Equal(t, "Stub Dish", batch[0].Title)
}

func TestConstrainedNothingGeneratedIsTypedFailure(t *testing.T) {
	cfg := testConfig()
	parser, validator, _ := newTestPipeline(cfg)
	stub := &stubGenerator{err: errors.New("upstream unavailable")}

	g := NewConstrainedGenerator(cfg, stub, parser, validator)
	batch, err := g.Generate(context.Background(), []string{"chicken"}, ai.DefaultDecodingConfig())

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, common.ErrGenerationFailed)
}

func TestAnnealingStopsAtThreshold(t *testing.T) {
	cfg := testConfig()
	parser, _, scorer := newTestPipeline(cfg)

	// 前兩輪產出無法解析的雜訊，第三輪出現高分候選
	stub := &stubGenerator{batches: [][]string{
		{"meaningless noise with no sections"},
		{"still nothing recognizable here"},
		{goodCompletion},
		{goodCompletion},
		{goodCompletion},
	}}

	a := NewTemperatureAnnealing(cfg.Annealing, stub, parser, scorer)
	batch, best, err := a.Generate(context.Background(), []string{"chicken", "garlic", "lemon"}, ai.DefaultDecodingConfig())

	require.NoError(t, err)
	assert.Len(t, stub.configs, 3, "should stop at the round that crossed the threshold")
	assert.GreaterOrEqual(t, best, cfg.Annealing.ScoreThreshold)
	require.NotEmpty(t, batch)
	assert.Equal(t, "Lemon Garlic Chicken", batch[0].Title)
}

func TestAnnealingNothingGeneratedIsTypedFailure(t *testing.T) {
	cfg := testConfig()
	parser, _, scorer := newTestPipeline(cfg)
	stub := &stubGenerator{err: errors.New("upstream unavailable")}

	a := NewTemperatureAnnealing(cfg.Annealing, stub, parser, scorer)
	batch, best, err := a.Generate(context.Background(), []string{"chicken"}, ai.DefaultDecodingConfig())

	assert.Nil(t, batch)
	assert.Equal(t, 0.0, best)
	assert.ErrorIs(t, err, common.ErrGenerationFailed)
}

func TestAnnealingRaisesTemperatureEachRound(t *testing.T) {
	cfg := testConfig()
	parser, _, scorer := newTestPipeline(cfg)
	stub := &stubGenerator{batches: [][]string{{"noise"}}}

	a := NewTemperatureAnnealing(cfg.Annealing, stub, parser, scorer)
	batch, best, err := a.Generate(context.Background(), []string{"chicken"}, ai.DefaultDecodingConfig())

	require.NoError(t, err)
	assert.Empty(t, batch)
	assert.Equal(t, 0.0, best)

	// 溫度逐輪上升，且每輪都用採樣
	require.Len(t, stub.configs, 4)
	temps := []float64{0.7, 0.85, 1.0, 1.15}
	for i, c := range stub.configs {
		assert.Equal(t, ai.StrategySampling, c.Strategy)
		assert.InDelta(t, temps[i], c.Temperature, 1e-9)
	}
}
