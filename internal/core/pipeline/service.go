package pipeline

import (
	"recipe-pipeline/internal/core/taxonomy"
	"recipe-pipeline/internal/infrastructure/config"
	"recipe-pipeline/internal/pkg/common"

	"go.uber.org/zap"
)

// CandidateReport 單一候選的後處理診斷
type CandidateReport struct {
	Recipe         common.Recipe `json:"recipe"`
	ParseSuccess   bool          `json:"parse_success"`
	ParseWarnings  []string      `json:"parse_warnings,omitempty"`
	Issues         []string      `json:"issues,omitempty"`
	Hallucinations []string      `json:"hallucinations,omitempty"`
}

// Result 管線處理結果
type Result struct {
	Ranked  []common.RankedRecipe `json:"ranked"`
	Reports []CandidateReport     `json:"reports,omitempty"`
}

// Service 食譜後處理管線，串接解析、清理、驗證、評分與排序
type Service struct {
	config       *config.Config
	taxonomy     *taxonomy.Taxonomy
	preprocessor *InputPreprocessor
	parser       *Parser
	cleaner      *Cleaner
	validator    *Validator
	scorer       *Scorer
	ranker       *Ranker
	markers      SectionMarkers
}

// NewService 創建管線服務
func NewService(cfg *config.Config) *Service {
	tax := taxonomy.New()
	norm := NewNormalizer(tax)
	validator := NewValidator(tax, norm)
	coherence := NewCoherenceScorer(tax, norm)
	scorer := NewScorer(cfg.Pipeline.Weights, validator, coherence)

	return &Service{
		config:       cfg,
		taxonomy:     tax,
		preprocessor: NewInputPreprocessor(tax),
		parser:       NewParser(),
		cleaner:      NewCleaner(norm),
		validator:    validator,
		scorer:       scorer,
		ranker:       NewRanker(scorer, cfg.Pipeline.DiversityThreshold),
		markers:      DefaultSectionMarkers(),
	}
}

// Parser 取得解析器，供生成控制器共用
func (s *Service) Parser() *Parser {
	return s.parser
}

// Validator 取得驗證器
func (s *Service) Validator() *Validator {
	return s.validator
}

// Scorer 取得評分器
func (s *Service) Scorer() *Scorer {
	return s.scorer
}

// Preprocess 正規化輸入食材，回傳可用項目與逐項驗證結果
func (s *Service) Preprocess(items []string) ([]string, []common.ValidationResult) {
	return s.preprocessor.Preprocess(items)
}

// ProcessRaw 解析原始文字後走完整後處理流程
func (s *Service) ProcessRaw(rawTexts, inputItems []string, topN int) Result {
	batch := s.parser.ParseBatch(rawTexts, s.markers)
	return s.Finalize(batch, inputItems, topN)
}

// Finalize 清理候選、產出診斷並排序取前 N 名
func (s *Service) Finalize(batch []common.ParsedRecipe, inputItems []string, topN int) Result {
	recipes := make([]common.Recipe, 0, len(batch))
	reports := make([]CandidateReport, 0, len(batch))

	for _, parsed := range batch {
		cleaned := parsed.Recipe
		if parsed.ParseSuccess {
			cleaned = s.cleaner.Clean(parsed.Recipe)
		}

		_, issues := s.cleaner.Check(cleaned)
		report := CandidateReport{
			Recipe:         cleaned,
			ParseSuccess:   parsed.ParseSuccess,
			ParseWarnings:  parsed.ParseWarnings,
			Issues:         issues,
			Hallucinations: s.cleaner.DetectHallucinations(cleaned),
		}
		reports = append(reports, report)
		recipes = append(recipes, cleaned)
	}

	ranked := s.ranker.Rank(recipes, inputItems, topN)

	common.LogInfo("管線處理完成",
		zap.Int("candidates", len(batch)),
		zap.Int("ranked", len(ranked)),
		zap.Int("top_n", topN),
	)

	return Result{
		Ranked:  ranked,
		Reports: reports,
	}
}
