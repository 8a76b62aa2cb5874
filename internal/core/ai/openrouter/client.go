package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// promptTemplate 要求模型輸出解析器認得的區段格式
const promptTemplate = `Generate a recipe using these ingredients: %s.
Respond in exactly this format, using "--" between list items:
title: <recipe name>
ingredients: <item> -- <item> -- <item>
directions: <step> -- <step> -- <step>`

// Client OpenRouter 生成客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建 OpenRouter 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL("https://openrouter.ai/api/v1").
		SetTimeout(cfg.OpenRouter.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("HTTP-Referer", "https://recipe-pipeline.dev").
		SetHeader("X-Title", "Recipe Pipeline")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate 依解碼設定生成一批候選食譜文字
func (c *Client) Generate(ctx context.Context, items []string, decoding ai.DecodingConfig) ([]string, error) {
	prompt := fmt.Sprintf(promptTemplate, common.FormatItems(items))

	req := map[string]interface{}{
		"model": c.config.OpenRouter.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens": c.config.OpenRouter.MaxTokens,
		"n":          decoding.NumReturnSequences,
	}
	applyDecoding(req, decoding)

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogGeneratorCall(len(items), time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.OpenRouter.Model),
		)
		return nil, fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	// 解析回應
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	texts := make([]string, 0, len(result.Choices))
	for _, choice := range result.Choices {
		if content := strings.TrimSpace(choice.Message.Content); content != "" {
			texts = append(texts, content)
		}
	}

	common.LogInfo("OpenRouter 生成完成",
		zap.String("model", c.config.OpenRouter.Model),
		zap.Int("candidates", len(texts)),
		zap.String("strategy", string(decoding.Strategy)),
		zap.Float64("temperature", decoding.Temperature),
	)

	return texts, nil
}

// applyDecoding 將解碼設定對應到 OpenRouter 請求參數
func applyDecoding(req map[string]interface{}, decoding ai.DecodingConfig) {
	switch decoding.Strategy {
	case ai.StrategyBeam:
		// beam search 沒有對應參數，改用低溫近似
		req["temperature"] = 0.3
		req["top_p"] = decoding.TopP
	case ai.StrategyNucleus:
		req["temperature"] = decoding.Temperature
		req["top_p"] = decoding.TopP
	case ai.StrategyContrastive:
		req["temperature"] = decoding.Temperature
		req["top_k"] = decoding.TopK
	default:
		req["temperature"] = decoding.Temperature
		req["top_k"] = decoding.TopK
		req["top_p"] = decoding.TopP
	}

	if decoding.RepetitionPenalty > 0 {
		req["repetition_penalty"] = decoding.RepetitionPenalty
	}
}
