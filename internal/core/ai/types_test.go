package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDecodingConfig(t *testing.T) {
	cfg := DefaultDecodingConfig()

	assert.Equal(t, StrategyBeam, cfg.Strategy)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
	assert.Equal(t, 3, cfg.NumReturnSequences)
	assert.Equal(t, 10, cfg.NumBeams)
}

func TestPresetByName(t *testing.T) {
	assert.Equal(t, StrategySampling, PresetByName("creative").Strategy)
	assert.Equal(t, StrategyNucleus, PresetByName("focused").Strategy)
	assert.Equal(t, StrategyContrastive, PresetByName("best_quality").Strategy)

	deterministic := PresetByName("deterministic")
	assert.Equal(t, StrategyBeam, deterministic.Strategy)
	assert.InDelta(t, 0.2, deterministic.Temperature, 1e-9)

	// 未知名稱退回預設
	assert.Equal(t, DefaultDecodingConfig(), PresetByName("nonsense"))
	assert.Equal(t, DefaultDecodingConfig(), PresetByName(""))
}
