package generation

import (
	"recipe-pipeline/internal/core/ai"
)

// NextAttemptConfig 依重試次數調整解碼設定，純函式不修改輸入
// 第一次失敗改採 sampling 換取多樣性，第二次失敗提高溫度
func NextAttemptConfig(attempt int, prior ai.DecodingConfig, step, maxTemp float64) ai.DecodingConfig {
	next := prior
	switch attempt {
	case 0:
		next.Strategy = ai.StrategySampling
	case 1:
		next.Temperature = prior.Temperature + step
		if next.Temperature > maxTemp {
			next.Temperature = maxTemp
		}
	}
	return next
}
