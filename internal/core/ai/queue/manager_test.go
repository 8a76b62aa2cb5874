package queue

import (
	"context"
	"testing"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueueConfig(maxSize int) *config.Config {
	return &config.Config{
		Queue: config.QueueConfig{Workers: 2, MaxSize: maxSize},
	}
}

func TestEnqueueAndReceive(t *testing.T) {
	m := NewManager(testQueueConfig(4))

	resultCh, err := m.Enqueue(context.Background(), []string{"chicken"}, ai.DefaultDecodingConfig())
	require.NoError(t, err)

	req := <-m.GetQueue()
	assert.Equal(t, []string{"chicken"}, req.Items)
	assert.Equal(t, ai.StrategyBeam, req.Decoding.Strategy)

	req.Result <- Result{Texts: []string{"done"}}
	result := <-resultCh
	require.NoError(t, result.Error)
	assert.Equal(t, []string{"done"}, result.Texts)
}

func TestEnqueueFullQueue(t *testing.T) {
	m := NewManager(testQueueConfig(1))

	_, err := m.Enqueue(context.Background(), []string{"a"}, ai.DefaultDecodingConfig())
	require.NoError(t, err)

	_, err = m.Enqueue(context.Background(), []string{"b"}, ai.DefaultDecodingConfig())
	assert.ErrorIs(t, err, common.ErrQueueFull)
}

func TestEnqueueCancelledContext(t *testing.T) {
	m := NewManager(testQueueConfig(4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 隊列填滿後，無論 context 狀態都必須回傳錯誤
	for i := 0; i < 4; i++ {
		_, _ = m.Enqueue(context.Background(), []string{"x"}, ai.DefaultDecodingConfig())
	}
	_, err := m.Enqueue(ctx, []string{"y"}, ai.DefaultDecodingConfig())
	assert.Error(t, err)
}

func TestEnqueueAfterCloseReturnsError(t *testing.T) {
	m := NewManager(testQueueConfig(4))
	m.Close()

	// 關閉後送入不得 panic，必須回傳錯誤
	_, err := m.Enqueue(context.Background(), []string{"a"}, ai.DefaultDecodingConfig())
	assert.Error(t, err)

	select {
	case <-m.Done():
	default:
		t.Fatal("Done channel should be closed")
	}
}

func TestCloseLeavesQueueOpenForInFlightSends(t *testing.T) {
	m := NewManager(testQueueConfig(1))

	// 關閉與送入交錯時，隊列通道保持開啟，不會因送入已關閉通道而 panic
	started := make(chan struct{})
	go func() {
		close(started)
		m.Close()
	}()
	<-started

	for i := 0; i < 100; i++ {
		_, _ = m.Enqueue(context.Background(), []string{"a"}, ai.DefaultDecodingConfig())
		select {
		case <-m.GetQueue():
		default:
		}
	}
}

func TestQueueStatus(t *testing.T) {
	m := NewManager(testQueueConfig(8))

	_, err := m.Enqueue(context.Background(), []string{"a"}, ai.DefaultDecodingConfig())
	require.NoError(t, err)
	m.IncrementProcessed()

	status := m.GetQueueStatus()
	assert.Equal(t, 1, status.QueueLength)
	assert.Equal(t, 1, status.ProcessedCount)
	assert.Equal(t, 8, status.MaxQueueSize)
	assert.Equal(t, 2, status.Workers)
}
