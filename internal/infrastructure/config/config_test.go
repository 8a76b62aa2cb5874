package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Cache: CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         100,
			TTL:             time.Hour,
			CleanupInterval: time.Minute,
		},
		Queue: QueueConfig{Workers: 2, MaxSize: 10},
		Pipeline: PipelineConfig{
			Weights: ScoringWeights{
				Completeness:       0.25,
				IngredientCoverage: 0.30,
				InstructionQuality: 0.25,
				Coherence:          0.20,
			},
		},
		Retry:     RetryConfig{MaxAttempts: 3, TempStep: 0.2, MaxTemp: 1.2},
		Annealing: AnnealingConfig{MaxAttempts: 5, InitialTemp: 0.7, TempStep: 0.15, MaxTemp: 1.2},
	}
}

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	cfg := validTestConfig()
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfigRenormalizesWeights(t *testing.T) {
	cfg := validTestConfig()
	cfg.Pipeline.Weights = ScoringWeights{
		Completeness:       1,
		IngredientCoverage: 1,
		InstructionQuality: 1,
		Coherence:          1,
	}

	require.NoError(t, validateConfig(cfg))

	w := cfg.Pipeline.Weights
	assert.InDelta(t, 0.25, w.Completeness, 1e-9)
	assert.InDelta(t, 0.25, w.IngredientCoverage, 1e-9)
	assert.InDelta(t, 0.25, w.InstructionQuality, 1e-9)
	assert.InDelta(t, 0.25, w.Coherence, 1e-9)
	assert.InDelta(t, 1.0, w.Completeness+w.IngredientCoverage+w.InstructionQuality+w.Coherence, 1e-9)
}

func TestValidateConfigRejectsZeroWeights(t *testing.T) {
	cfg := validTestConfig()
	cfg.Pipeline.Weights = ScoringWeights{}

	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfigRejectsUnknownCacheBackend(t *testing.T) {
	cfg := validTestConfig()
	cfg.Cache.Backend = "memcached"

	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfigRequiresRedisAddr(t *testing.T) {
	cfg := validTestConfig()
	cfg.Cache.Backend = "redis"
	cfg.Cache.RedisAddr = ""

	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfigRejectsBadAnnealingRange(t *testing.T) {
	cfg := validTestConfig()
	cfg.Annealing.InitialTemp = 2.0

	assert.Error(t, validateConfig(cfg))
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "sk-a...wxyz", maskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
