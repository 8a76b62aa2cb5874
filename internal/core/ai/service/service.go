package service

import (
	"context"
	"errors"
	"sync"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/core/ai/cache"
	"recipe-pipeline/internal/core/ai/openrouter"
	"recipe-pipeline/internal/core/ai/queue"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"go.uber.org/zap"
)

// Service AI 生成服務，透過隊列與快取包裝 OpenRouter 客戶端
type Service struct {
	config *config.Config
	client *openrouter.Client
	store  cache.Store
	queue  *queue.Manager
	wg     sync.WaitGroup
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, store cache.Store) *Service {
	return &Service{
		config: cfg,
		client: openrouter.NewClient(cfg),
		store:  store,
		queue:  queue.NewManager(cfg),
	}
}

// Start 啟動工作協程
func (s *Service) Start(ctx context.Context) {
	for i := 0; i < s.config.Queue.Workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	common.LogInfo("AI 服務已啟動",
		zap.Int("工作協程數", s.config.Queue.Workers),
		zap.Int("隊列容量", s.config.Queue.MaxSize),
	)
}

// worker 從隊列取出請求並呼叫生成器
func (s *Service) worker(ctx context.Context, id int) {
	defer s.wg.Done()

	for {
		select {
		case req := <-s.queue.GetQueue():
			texts, err := s.client.Generate(req.Context, req.Items, req.Decoding)
			s.queue.IncrementProcessed()
			req.Result <- queue.Result{Texts: texts, Error: err}
		case <-s.queue.Done():
			return
		case <-ctx.Done():
			common.LogInfo("工作協程結束",
				zap.Int("worker_id", id),
			)
			return
		}
	}
}

// Generate 生成候選食譜文字，先查快取再經隊列派工
func (s *Service) Generate(ctx context.Context, items []string, decoding ai.DecodingConfig) ([]string, error) {
	key := cache.KeyFor(items, decoding)

	// 檢查緩存
	if s.store != nil {
		if texts, err := s.store.Get(ctx, key); err == nil && len(texts) > 0 {
			return texts, nil
		}
	}

	resultCh, err := s.queue.Enqueue(ctx, items, decoding)
	if err != nil {
		return nil, err
	}

	select {
	case result := <-resultCh:
		if result.Error != nil {
			common.LogError("生成請求處理失敗",
				zap.Error(result.Error),
			)
			return nil, result.Error
		}
		if s.store != nil {
			if err := s.store.Set(ctx, key, result.Texts); err != nil && !errors.Is(err, common.ErrCacheFull) {
				common.LogWarn("快取寫入失敗",
					zap.Error(err),
				)
			}
		}
		return result.Texts, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// QueueStatus 獲取隊列狀態
func (s *Service) QueueStatus() *queue.Status {
	return s.queue.GetQueueStatus()
}

// CacheStats 獲取快取統計
func (s *Service) CacheStats() map[string]interface{} {
	if s.store == nil {
		return map[string]interface{}{"enabled": false}
	}
	return s.store.Stats()
}

// Close 關閉服務並等待工作協程結束
func (s *Service) Close() {
	s.queue.Close()
	s.wg.Wait()
}
