package ai

import "context"

// Strategy 解碼策略
type Strategy string

const (
	StrategyBeam        Strategy = "beam"
	StrategySampling    Strategy = "sampling"
	StrategyNucleus     Strategy = "nucleus"
	StrategyContrastive Strategy = "contrastive"
)

// DecodingConfig 解碼參數，調整時以複本傳遞、不就地修改
type DecodingConfig struct {
	Strategy           Strategy `json:"strategy"`
	Temperature        float64  `json:"temperature"`
	TopK               int      `json:"top_k"`
	TopP               float64  `json:"top_p"`
	NumBeams           int      `json:"num_beams"`
	NumBeamGroups      int      `json:"num_beam_groups"`
	DiversityPenalty   float64  `json:"diversity_penalty"`
	RepetitionPenalty  float64  `json:"repetition_penalty"`
	NoRepeatNgramSize  int      `json:"no_repeat_ngram_size"`
	MinLength          int      `json:"min_length"`
	MaxLength          int      `json:"max_length"`
	NumReturnSequences int      `json:"num_return_sequences"`
}

// DefaultDecodingConfig 預設使用多樣化 beam search
func DefaultDecodingConfig() DecodingConfig {
	return DecodingConfig{
		Strategy:           StrategyBeam,
		Temperature:        0.7,
		TopK:               50,
		TopP:               0.9,
		NumBeams:           10,
		NumBeamGroups:      5,
		DiversityPenalty:   0.5,
		NoRepeatNgramSize:  3,
		MinLength:          64,
		MaxLength:          512,
		NumReturnSequences: 3,
	}
}

// PresetCreative 高溫採樣，重視多樣性
func PresetCreative() DecodingConfig {
	cfg := DefaultDecodingConfig()
	cfg.Strategy = StrategySampling
	cfg.Temperature = 1.0
	cfg.TopP = 0.95
	return cfg
}

// PresetFocused 核採樣，收斂輸出
func PresetFocused() DecodingConfig {
	cfg := DefaultDecodingConfig()
	cfg.Strategy = StrategyNucleus
	cfg.Temperature = 0.5
	cfg.TopP = 0.8
	return cfg
}

// PresetDeterministic 低溫 beam search，輸出最穩定
func PresetDeterministic() DecodingConfig {
	cfg := DefaultDecodingConfig()
	cfg.Temperature = 0.2
	cfg.NumBeamGroups = 1
	cfg.DiversityPenalty = 0
	return cfg
}

// PresetBestQuality 對比解碼加上重複懲罰
func PresetBestQuality() DecodingConfig {
	cfg := DefaultDecodingConfig()
	cfg.Strategy = StrategyContrastive
	cfg.RepetitionPenalty = 1.2
	cfg.TopK = 8
	return cfg
}

// PresetByName 依名稱取得預設組合，查無時回傳預設值
func PresetByName(name string) DecodingConfig {
	switch name {
	case "creative":
		return PresetCreative()
	case "focused":
		return PresetFocused()
	case "deterministic":
		return PresetDeterministic()
	case "best_quality":
		return PresetBestQuality()
	default:
		return DefaultDecodingConfig()
	}
}

// Generator 外部生成器介面，回傳一批原始文字
type Generator interface {
	Generate(ctx context.Context, items []string, cfg DecodingConfig) ([]string, error)
}

// Response 生成服務回應
type Response struct {
	Texts    []string `json:"texts"`
	Usage    Usage    `json:"usage"`
	CacheHit bool     `json:"cache_hit"`
}

// Usage 使用量
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
