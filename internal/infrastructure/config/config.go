package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig        `mapstructure:"app"`
	Server      ServerConfig     `mapstructure:"server"`
	OpenRouter  OpenRouterConfig `mapstructure:"openrouter"`
	AI          AIConfig         `mapstructure:"ai"`
	Pipeline    PipelineConfig   `mapstructure:"pipeline"`
	Retry       RetryConfig      `mapstructure:"retry"`
	Annealing   AnnealingConfig  `mapstructure:"annealing"`
	Cache       CacheConfig      `mapstructure:"cache"`
	Queue       QueueConfig      `mapstructure:"queue"`
	RateLimit   RateLimitConfig  `mapstructure:"rate_limit"`
	DedupWindow time.Duration    `mapstructure:"dedup_window"`
	LogLevel    string           `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// OpenRouterConfig OpenRouter 配置
type OpenRouterConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// AIConfig AI 配置
type AIConfig struct {
	EnableCache  bool `mapstructure:"enable_cache"`
	MaxQueueSize int  `mapstructure:"max_queue_size"`
	Workers      int  `mapstructure:"workers"`
}

// PipelineConfig 食譜處理管線設定
type PipelineConfig struct {
	Weights            ScoringWeights `mapstructure:"weights"`
	DiversityThreshold float64        `mapstructure:"diversity_threshold"`
	MinDirections      int            `mapstructure:"min_directions"`
	MinCoverage        float64        `mapstructure:"min_coverage"`
	MinPassingRecipes  int            `mapstructure:"min_passing_recipes"`
	NumReturnSequences int            `mapstructure:"num_return_sequences"`
}

// ScoringWeights 評分各維度的權重，載入時會重新正規化
type ScoringWeights struct {
	Completeness       float64 `mapstructure:"completeness"`
	IngredientCoverage float64 `mapstructure:"ingredient_coverage"`
	InstructionQuality float64 `mapstructure:"instruction_quality"`
	Coherence          float64 `mapstructure:"coherence"`
}

// RetryConfig 約束重試設定
type RetryConfig struct {
	MaxAttempts int     `mapstructure:"max_attempts"`
	TempStep    float64 `mapstructure:"temp_step"`
	MaxTemp     float64 `mapstructure:"max_temp"`
}

// AnnealingConfig 溫度退火設定
type AnnealingConfig struct {
	MaxAttempts    int     `mapstructure:"max_attempts"`
	InitialTemp    float64 `mapstructure:"initial_temp"`
	TempStep       float64 `mapstructure:"temp_step"`
	MaxTemp        float64 `mapstructure:"max_temp"`
	ScoreThreshold float64 `mapstructure:"score_threshold"`
}

// CacheConfig 緩存配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
}

// QueueConfig 請求隊列設定
type QueueConfig struct {
	Workers int `mapstructure:"workers"`
	MaxSize int `mapstructure:"max_size"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（允許不存在）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("openrouter.max_tokens", "MODEL_MAX_TOKENS")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_addr", "REDIS_ADDR")
	viper.BindEnv("cache.redis_password", "REDIS_PASSWORD")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "openrouter_api_key:", maskAPIKey(viper.GetString("openrouter.api_key")), "openrouter_model:", viper.GetString("openrouter.model"))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-pipeline")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.max_body_bytes", 1*1024*1024) // 1MB

	// OpenRouter 設定
	viper.SetDefault("openrouter.enabled", false)
	viper.SetDefault("openrouter.model", "qwen/qwen2.5-72b-instruct:free")
	viper.SetDefault("openrouter.max_tokens", 1000)
	viper.SetDefault("openrouter.timeout", "60s")

	// AI 設定
	viper.SetDefault("ai.enable_cache", true)
	viper.SetDefault("ai.max_queue_size", 100)
	viper.SetDefault("ai.workers", 5)

	// 管線設定
	viper.SetDefault("pipeline.weights.completeness", 0.25)
	viper.SetDefault("pipeline.weights.ingredient_coverage", 0.30)
	viper.SetDefault("pipeline.weights.instruction_quality", 0.25)
	viper.SetDefault("pipeline.weights.coherence", 0.20)
	viper.SetDefault("pipeline.diversity_threshold", 0.4)
	viper.SetDefault("pipeline.min_directions", 3)
	viper.SetDefault("pipeline.min_coverage", 0.5)
	viper.SetDefault("pipeline.min_passing_recipes", 2)
	viper.SetDefault("pipeline.num_return_sequences", 3)

	// 約束重試設定
	viper.SetDefault("retry.max_attempts", 3)
	viper.SetDefault("retry.temp_step", 0.2)
	viper.SetDefault("retry.max_temp", 1.2)

	// 退火設定
	viper.SetDefault("annealing.max_attempts", 5)
	viper.SetDefault("annealing.initial_temp", 0.7)
	viper.SetDefault("annealing.temp_step", 0.15)
	viper.SetDefault("annealing.max_temp", 1.2)
	viper.SetDefault("annealing.score_threshold", 0.6)

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.redis_addr", "localhost:6379")
	viper.SetDefault("cache.redis_db", 0)

	// 隊列設定
	viper.SetDefault("queue.workers", 5)
	viper.SetDefault("queue.max_size", 100)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 新增 dedup window 預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		switch config.Cache.Backend {
		case "memory":
			if config.Cache.MaxSize <= 0 {
				return fmt.Errorf("invalid cache max size")
			}
			if config.Cache.CleanupInterval <= 0 {
				return fmt.Errorf("invalid cache cleanup interval")
			}
		case "redis":
			if config.Cache.RedisAddr == "" {
				return fmt.Errorf("redis addr is required")
			}
		default:
			return fmt.Errorf("unknown cache backend: %s", config.Cache.Backend)
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
	}

	// 驗證隊列設定
	if config.Queue.Workers <= 0 {
		return fmt.Errorf("invalid queue workers")
	}
	if config.Queue.MaxSize <= 0 {
		return fmt.Errorf("invalid queue max size")
	}

	// 驗證評分權重並重新正規化
	w := &config.Pipeline.Weights
	sum := w.Completeness + w.IngredientCoverage + w.InstructionQuality + w.Coherence
	if sum <= 0 {
		return fmt.Errorf("scoring weights must sum to a positive value")
	}
	w.Completeness /= sum
	w.IngredientCoverage /= sum
	w.InstructionQuality /= sum
	w.Coherence /= sum

	// 驗證退火設定
	if config.Annealing.MaxAttempts <= 0 {
		return fmt.Errorf("invalid annealing max attempts")
	}
	if config.Annealing.InitialTemp <= 0 || config.Annealing.InitialTemp > config.Annealing.MaxTemp {
		return fmt.Errorf("invalid annealing temperature range")
	}

	// 驗證重試設定
	if config.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("invalid retry max attempts")
	}

	return nil
}
