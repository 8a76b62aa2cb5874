package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/infrastructure/config"
)

// Store 生成結果快取的統一介面
type Store interface {
	Get(ctx context.Context, key string) ([]string, error)
	Set(ctx context.Context, key string, texts []string) error
	Stats() map[string]interface{}
	Close() error
}

// KeyFor 由食材與解碼設定生成快取鍵
func KeyFor(items []string, decoding ai.DecodingConfig) string {
	payload := fmt.Sprintf("%s|%s|%.2f|%d|%d",
		strings.ToLower(strings.Join(items, ",")),
		decoding.Strategy,
		decoding.Temperature,
		decoding.NumBeams,
		decoding.NumReturnSequences,
	)
	hash := sha256.Sum256([]byte(payload))
	return "recipe:" + hex.EncodeToString(hash[:])
}

// NewStore 依設定建立對應後端的快取
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisStore(cfg)
	case "memory":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}
