package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"recipe-pipeline/internal/pkg/common"
)

// SectionBounds 單一區段的起迄標記與項目分隔標記
type SectionBounds struct {
	Start string
	End   string
	// Next 區段內項目之間的標記，空字串表示整段為單一值
	Next string
}

// SectionMarkers 模型輸出使用的區段標記設定
type SectionMarkers struct {
	// TokenMap 先行替換的標記，例如 <sep> 換成項目分隔符
	TokenMap map[string]string
	// SpecialTokens 直接移除的殘留標記
	SpecialTokens []string
	// ItemDelimiter 區段內項目的分隔符，空字串表示以換行切分
	ItemDelimiter string
	// 起迄標記界定的區段，存在時優先於標頭樣式抽取
	TitleBounds      SectionBounds
	IngredientBounds SectionBounds
	DirectionBounds  SectionBounds
}

// DefaultSectionMarkers 預設的 RecipeNLG 風格標記
func DefaultSectionMarkers() SectionMarkers {
	return SectionMarkers{
		TokenMap: map[string]string{
			"<sep>":     "--",
			"<section>": "\n",
		},
		SpecialTokens: []string{
			"<RECIPE_START>", "<RECIPE_END>",
			"<INPUT_START>", "<INPUT_END>", "<NEXT_INPUT>",
			"<TITLE_START>", "<TITLE_END>",
			"<INGR_START>", "<INGR_END>", "<NEXT_INGR>",
			"<INSTR_START>", "<INSTR_END>", "<NEXT_INSTR>",
			"<|endoftext|>",
		},
		ItemDelimiter:    "--",
		TitleBounds:      SectionBounds{Start: "<TITLE_START>", End: "<TITLE_END>"},
		IngredientBounds: SectionBounds{Start: "<INGR_START>", End: "<INGR_END>", Next: "<NEXT_INGR>"},
		DirectionBounds:  SectionBounds{Start: "<INSTR_START>", End: "<INSTR_END>", Next: "<NEXT_INSTR>"},
	}
}

// extractStrategy 單一欄位的抽取策略，依序嘗試
type extractStrategy struct {
	name    string
	pattern *regexp.Regexp
}

// extraction 抽取結果，明確區分找到與找不到
type extraction struct {
	value    string
	strategy string
	found    bool
}

// Parser 將模型原始輸出解析為結構化食譜
type Parser struct {
	minTitleLength  int
	maxTitleLength  int
	minIngredients  int
	minDirections   int
	fixCommonErrors bool

	titleStrategies      []extractStrategy
	ingredientStrategies []extractStrategy
	directionStrategies  []extractStrategy

	punctSpacing    *regexp.Regexp
	multiSpace      *regexp.Regexp
	missingColons   map[string]*regexp.Regexp
	blankLines      *regexp.Regexp
	enumerationLead *regexp.Regexp
}

// NewParser 建立解析器並預先編譯所有抽取樣式
func NewParser() *Parser {
	p := &Parser{
		minTitleLength:  3,
		maxTitleLength:  100,
		minIngredients:  1,
		minDirections:   1,
		fixCommonErrors: true,
		titleStrategies: []extractStrategy{
			{"labeled_until_ingredients", regexp.MustCompile(`(?is)title:\s*(.+?)(?:\n|ingredients:)`)},
			{"first_line_before_ingredients", regexp.MustCompile(`(?is)^(.+?)\n\s*ingredients:`)},
			{"labeled_until_end", regexp.MustCompile(`(?is)title:\s*(.+?)$`)},
		},
		ingredientStrategies: []extractStrategy{
			{"labeled_until_directions_line", regexp.MustCompile(`(?is)ingredients:\s*(.+?)(?:\n\s*directions:|\ndirections:)`)},
			{"labeled_until_directions", regexp.MustCompile(`(?is)ingredients:\s*(.+?)directions:`)},
			{"labeled_until_end", regexp.MustCompile(`(?is)ingredients:\s*(.+?)$`)},
		},
		directionStrategies: []extractStrategy{
			{"labeled_until_end", regexp.MustCompile(`(?is)directions:\s*(.+?)$`)},
			{"labeled_permissive", regexp.MustCompile(`(?is)directions:\s*(.+)`)},
		},
		punctSpacing: regexp.MustCompile(`([.!?])([A-Z])`),
		// 保留換行，區段標記以換行切分
		multiSpace: regexp.MustCompile(`[ \t]+`),
		missingColons: map[string]*regexp.Regexp{
			"title":       regexp.MustCompile(`(?i)\btitle +([^:\s])`),
			"ingredients": regexp.MustCompile(`(?i)\bingredients +([^:\s])`),
			"directions":  regexp.MustCompile(`(?i)\bdirections +([^:\s])`),
		},
		blankLines:      regexp.MustCompile(`\n\s*\n`),
		enumerationLead: regexp.MustCompile(`^[\d.)\-*]+\s*`),
	}
	return p
}

// ParseBatch 解析一批原始輸出
func (p *Parser) ParseBatch(rawTexts []string, markers SectionMarkers) []common.ParsedRecipe {
	out := make([]common.ParsedRecipe, 0, len(rawTexts))
	for _, text := range rawTexts {
		out = append(out, p.Parse(text, markers))
	}
	return out
}

// Parse 解析單一原始輸出，解析失敗時仍回傳結果供診斷
func (p *Parser) Parse(rawText string, markers SectionMarkers) common.ParsedRecipe {
	recipe := common.ParsedRecipe{RawText: rawText}

	cleaned := p.stripSpecialTokens(rawText, markers)
	if p.fixCommonErrors {
		cleaned = p.repairCommonErrors(cleaned)
	}

	// 先試起迄標記界定的區段，沒有命中再退回標頭樣式
	if segment, ok := p.extractBounded(rawText, markers.TitleBounds, markers); ok {
		t := p.cleanTitle(segment)
		if p.titleValid(t) {
			recipe.Title = t
		}
	}
	if recipe.Title == "" {
		title := p.extract(cleaned, p.titleStrategies)
		if title.found {
			t := p.cleanTitle(title.value)
			if p.titleValid(t) {
				recipe.Title = t
			}
		}
	}
	if recipe.Title == "" {
		recipe.ParseWarnings = append(recipe.ParseWarnings, "could not extract title")
		recipe.Title = common.PlaceholderTitle
	}

	if items, ok := p.extractBoundedList(rawText, markers.IngredientBounds, markers, p.minIngredients); ok {
		recipe.Ingredients = items
	} else if items, ok := p.extractList(cleaned, p.ingredientStrategies, markers, p.minIngredients); ok {
		recipe.Ingredients = items
	} else {
		recipe.ParseWarnings = append(recipe.ParseWarnings, "could not extract ingredients")
	}

	if items, ok := p.extractBoundedList(rawText, markers.DirectionBounds, markers, p.minDirections); ok {
		recipe.Directions = items
	} else if items, ok := p.extractList(cleaned, p.directionStrategies, markers, p.minDirections); ok {
		recipe.Directions = items
	} else {
		recipe.ParseWarnings = append(recipe.ParseWarnings, "could not extract directions")
	}

	p.validateAndTrim(&recipe)

	// 食材與步驟皆缺才視為解析失敗
	recipe.ParseSuccess = len(recipe.Ingredients) > 0 || len(recipe.Directions) > 0

	return recipe
}

// stripSpecialTokens 套用標記替換並移除殘留標記
func (p *Parser) stripSpecialTokens(text string, markers SectionMarkers) string {
	for token, replacement := range markers.TokenMap {
		text = strings.ReplaceAll(text, token, replacement)
	}
	for _, token := range markers.SpecialTokens {
		text = strings.ReplaceAll(text, token, "")
	}
	return strings.TrimSpace(text)
}

// repairCommonErrors 修正常見的生成錯誤
func (p *Parser) repairCommonErrors(text string) string {
	// 補上標點後缺少的空格
	text = p.punctSpacing.ReplaceAllString(text, "$1 $2")

	// 收斂連續空白
	text = p.multiSpace.ReplaceAllString(text, " ")

	// 補上區段標頭缺少的冒號
	for header, pattern := range p.missingColons {
		text = pattern.ReplaceAllString(text, header+": $1")
	}

	text = p.blankLines.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}

// extractBounded 擷取起迄標記之間的內容，缺少結尾標記時切到下一個其他標記為止
func (p *Parser) extractBounded(text string, bounds SectionBounds, markers SectionMarkers) (string, bool) {
	if bounds.Start == "" {
		return "", false
	}
	start := strings.Index(text, bounds.Start)
	if start < 0 {
		return "", false
	}
	segment := text[start+len(bounds.Start):]

	cut := -1
	if bounds.End != "" {
		cut = strings.Index(segment, bounds.End)
	}
	if cut < 0 {
		cut = len(segment)
		for _, token := range markers.SpecialTokens {
			if token == bounds.Next {
				continue
			}
			if idx := strings.Index(segment, token); idx >= 0 && idx < cut {
				cut = idx
			}
		}
	}

	segment = strings.TrimSpace(segment[:cut])
	return segment, segment != ""
}

// extractBoundedList 擷取起迄標記界定的區段並以項目標記切分
func (p *Parser) extractBoundedList(text string, bounds SectionBounds, markers SectionMarkers, minItems int) ([]string, bool) {
	segment, ok := p.extractBounded(text, bounds, markers)
	if !ok {
		return nil, false
	}
	var parts []string
	if bounds.Next != "" {
		parts = strings.Split(segment, bounds.Next)
	} else {
		parts = []string{segment}
	}
	items := p.cleanItems(parts)
	if len(items) < minItems {
		return nil, false
	}
	return items, true
}

// extract 依序嘗試抽取策略，第一個命中者勝出
func (p *Parser) extract(text string, strategies []extractStrategy) extraction {
	for _, s := range strategies {
		if m := s.pattern.FindStringSubmatch(text); m != nil {
			value := strings.TrimSpace(m[1])
			if value != "" {
				return extraction{value: value, strategy: s.name, found: true}
			}
		}
	}
	return extraction{}
}

// extractList 依序嘗試抽取策略，項目數達到下限才算命中
func (p *Parser) extractList(text string, strategies []extractStrategy, markers SectionMarkers, minItems int) ([]string, bool) {
	for _, s := range strategies {
		m := s.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		items := p.splitItems(strings.TrimSpace(m[1]), markers)
		if len(items) >= minItems {
			return items, true
		}
	}
	return nil, false
}

// splitItems 切分區段內的項目並清理編號前綴
func (p *Parser) splitItems(text string, markers SectionMarkers) []string {
	var parts []string
	if markers.ItemDelimiter != "" {
		parts = strings.Split(text, markers.ItemDelimiter)
	} else {
		parts = strings.Split(text, "\n")
	}
	return p.cleanItems(parts)
}

// cleanItems 清理切分後的項目並移除編號前綴
func (p *Parser) cleanItems(parts []string) []string {
	cleaned := make([]string, 0, len(parts))
	for _, item := range parts {
		item = strings.TrimSpace(item)
		item = p.enumerationLead.ReplaceAllString(item, "")
		item = strings.TrimSpace(item)
		if len(item) <= 1 {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return cleaned
}

// cleanTitle 移除標題前後的標點並把首字母大寫
func (p *Parser) cleanTitle(title string) string {
	title = strings.Trim(title, ".,!?:;-_")
	runes := []rune(title)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

func (p *Parser) titleValid(title string) bool {
	return len(title) >= p.minTitleLength && len(title) <= p.maxTitleLength
}

// validateAndTrim 最後一輪清理與警告紀錄
func (p *Parser) validateAndTrim(recipe *common.ParsedRecipe) {
	ingredients := recipe.Ingredients[:0:0]
	for _, ing := range recipe.Ingredients {
		if len(strings.TrimSpace(ing)) > 1 {
			ingredients = append(ingredients, ing)
		}
	}
	recipe.Ingredients = ingredients

	directions := recipe.Directions[:0:0]
	for _, dir := range recipe.Directions {
		if len(strings.TrimSpace(dir)) > 2 {
			directions = append(directions, dir)
		}
	}
	recipe.Directions = directions

	if len(recipe.Title) > p.maxTitleLength {
		truncated := recipe.Title[:p.maxTitleLength]
		if idx := strings.LastIndex(truncated, " "); idx > 0 {
			truncated = truncated[:idx]
		}
		recipe.Title = truncated
		recipe.ParseWarnings = append(recipe.ParseWarnings, "title truncated")
	}

	if len(recipe.Ingredients) < p.minIngredients {
		recipe.ParseWarnings = append(recipe.ParseWarnings,
			fmt.Sprintf("too few ingredients (%d)", len(recipe.Ingredients)))
	}
	if len(recipe.Directions) < p.minDirections {
		recipe.ParseWarnings = append(recipe.ParseWarnings,
			fmt.Sprintf("too few directions (%d)", len(recipe.Directions)))
	}
}
