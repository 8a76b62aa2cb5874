package recipe

import (
	"errors"
	"net/http"

	"recipe-pipeline/internal/core/ai"
	"recipe-pipeline/internal/core/generation"
	"recipe-pipeline/internal/core/pipeline"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateRequest 食譜生成請求
type GenerateRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"` // 自由文字食材列表
	Preset      string   `json:"preset,omitempty"`                     // 解碼預設組合名稱
	Mode        string   `json:"mode,omitempty"`                       // constrained（預設）或 annealing
	TopN        int      `json:"top_n,omitempty"`                      // 回傳食譜數量上限
	WithDetails bool     `json:"with_details,omitempty"`               // 是否附帶評分與診斷
}

// GenerateResponse 食譜生成回應
type GenerateResponse struct {
	Recipes   []RankedView               `json:"recipes"`
	BestScore *float64                   `json:"best_score,omitempty"`
	Input     []string                   `json:"input_items"`
	Warnings  []common.ValidationResult  `json:"input_validation,omitempty"`
	Reports   []pipeline.CandidateReport `json:"reports,omitempty"`
}

// RankedView 對外的單筆食譜，除錯欄位僅在要求時出現
type RankedView struct {
	Recipe common.Recipe       `json:"recipe"`
	Score  float64             `json:"score"`
	Detail *common.RecipeScore `json:"detail,omitempty"`
}

// ValidateRequest 食材驗證請求
type ValidateRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

// ValidateResponse 食材驗證回應
type ValidateResponse struct {
	Items   []string                  `json:"items"`
	Results []common.ValidationResult `json:"results"`
}

// Handler 食譜生成處理器
type Handler struct {
	config      *config.Config
	pipeline    *pipeline.Service
	constrained *generation.ConstrainedGenerator
	annealing   *generation.TemperatureAnnealing
}

// NewHandler 創建食譜處理器
func NewHandler(cfg *config.Config, pipelineSvc *pipeline.Service, gen ai.Generator) *Handler {
	return &Handler{
		config:      cfg,
		pipeline:    pipelineSvc,
		constrained: generation.NewConstrainedGenerator(cfg, gen, pipelineSvc.Parser(), pipelineSvc.Validator()),
		annealing:   generation.NewTemperatureAnnealing(cfg.Annealing, gen, pipelineSvc.Parser(), pipelineSvc.Scorer()),
	}
}

// HandleGenerate 處理 /recipe/generate 生成請求
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.String("mode", req.Mode),
		zap.String("preset", req.Preset),
	)

	// 前處理輸入食材
	items, validation := h.pipeline.Preprocess(req.Ingredients)
	if len(items) == 0 {
		common.LogWarn("前處理後沒有可用食材",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            common.ErrNoValidInput.Message,
			"code":             common.ErrNoValidInput.Code,
			"input_validation": validation,
		})
		return
	}

	decoding := ai.PresetByName(req.Preset)
	decoding.NumReturnSequences = h.config.Pipeline.NumReturnSequences

	topN := req.TopN
	if topN <= 0 {
		topN = h.config.Pipeline.NumReturnSequences
	}

	var batch []common.ParsedRecipe
	var bestScore *float64
	var err error

	switch req.Mode {
	case "annealing":
		var score float64
		batch, score, err = h.annealing.Generate(c.Request.Context(), items, decoding)
		bestScore = &score
	default:
		batch, err = h.constrained.Generate(c.Request.Context(), items, decoding)
	}

	if err != nil {
		status := http.StatusServiceUnavailable
		code := common.ErrCodeServiceUnavailable
		var custom *common.CustomError
		if errors.As(err, &custom) {
			status = custom.Status
			code = custom.Code
		}
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(status, gin.H{
			"error": err.Error(),
			"code":  code,
		})
		return
	}

	result := h.pipeline.Finalize(batch, items, topN)

	response := GenerateResponse{
		Recipes: make([]RankedView, 0, len(result.Ranked)),
		Input:   items,
	}
	for _, ranked := range result.Ranked {
		view := RankedView{
			Recipe: ranked.Recipe,
			Score:  ranked.Score,
		}
		if req.WithDetails {
			view.Detail = ranked.Detail
		}
		response.Recipes = append(response.Recipes, view)
	}
	if req.WithDetails {
		response.BestScore = bestScore
		response.Warnings = validation
		response.Reports = result.Reports
	}

	common.LogInfo("食譜生成請求完成",
		zap.String("request_id", requestID),
		zap.Int("recipes", len(response.Recipes)),
	)

	c.JSON(http.StatusOK, response)
}

// HandleValidate 處理 /recipe/validate 食材驗證請求
func (h *Handler) HandleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	items, results := h.pipeline.Preprocess(req.Ingredients)

	c.JSON(http.StatusOK, ValidateResponse{
		Items:   items,
		Results: results,
	})
}
