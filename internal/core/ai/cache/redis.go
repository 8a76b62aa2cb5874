package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore Redis 快取後端
type RedisStore struct {
	config *config.Config
	client *redis.Client
}

// NewRedisStore 創建 Redis 快取
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("位址", cfg.Cache.RedisAddr),
		zap.Int("資料庫", cfg.Cache.RedisDB),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)

	return &RedisStore{
		config: cfg,
		client: client,
	}, nil
}

// Get 獲取緩存值
func (s *RedisStore) Get(ctx context.Context, key string) ([]string, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		common.LogCacheMiss("redis", key)
		return nil, common.ErrCacheMiss
	}
	if err != nil {
		common.LogError("Redis 讀取失敗",
			zap.String("鍵", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached texts: %w", err)
	}

	common.LogCacheHit("redis", key)
	return texts, nil
}

// Set 設置緩存值
func (s *RedisStore) Set(ctx context.Context, key string, texts []string) error {
	data, err := json.Marshal(texts)
	if err != nil {
		return fmt.Errorf("failed to marshal texts: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.config.Cache.TTL).Err(); err != nil {
		common.LogError("Redis 寫入失敗",
			zap.String("鍵", key),
			zap.Error(err),
		)
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	common.LogInfo("快取已儲存",
		zap.String("鍵", key),
	)
	return nil
}

// Stats 獲取緩存統計信息
func (s *RedisStore) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"backend": "redis",
		"addr":    s.config.Cache.RedisAddr,
	}
	if size, err := s.client.DBSize(context.Background()).Result(); err == nil {
		stats["size"] = size
	}
	return stats
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
