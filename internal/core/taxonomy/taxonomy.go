// Package taxonomy 提供唯讀的食材分類表，供驗證與正規化查詢。
package taxonomy

import "strings"

// Category 食材類別名稱
type Category string

const (
	CategoryProteins   Category = "proteins"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryGrains     Category = "grains"
	CategoryHerbs      Category = "herbs"
	CategorySpices     Category = "spices"
	CategoryOils       Category = "oils"
	CategoryCondiments Category = "condiments"
	CategorySweeteners Category = "sweeteners"
	CategoryNutsSeeds  Category = "nuts_seeds"
	CategoryLegumes    Category = "legumes"
	CategoryBaking     Category = "baking"
	CategoryCanned     Category = "canned"
)

// Taxonomy 建構後不再修改的食材分類查詢表
type Taxonomy struct {
	ingredients map[string]Category
	ordered     []string
	units       map[string]struct{}
	verbs       map[string]struct{}
	ending      map[string]struct{}
	starting    map[string]struct{}
}

// New 建立分類表，類別順序固定以確保查詢結果可重現
func New() *Taxonomy {
	t := &Taxonomy{
		ingredients: make(map[string]Category),
		units:       make(map[string]struct{}, len(cookingUnits)),
		verbs:       make(map[string]struct{}, len(cookingVerbs)),
		ending:      make(map[string]struct{}, len(endingVerbs)),
		starting:    make(map[string]struct{}, len(startingVerbs)),
	}

	categories := []struct {
		name  Category
		items []string
	}{
		{CategoryProteins, proteins},
		{CategoryVegetables, vegetables},
		{CategoryFruits, fruits},
		{CategoryDairy, dairy},
		{CategoryGrains, grains},
		{CategoryHerbs, herbs},
		{CategorySpices, spices},
		{CategoryOils, oils},
		{CategoryCondiments, condiments},
		{CategorySweeteners, sweeteners},
		{CategoryNutsSeeds, nutsSeeds},
		{CategoryLegumes, legumes},
		{CategoryBaking, baking},
		{CategoryCanned, canned},
	}

	for _, c := range categories {
		for _, item := range c.items {
			if _, ok := t.ingredients[item]; ok {
				continue
			}
			t.ingredients[item] = c.name
			t.ordered = append(t.ordered, item)
		}
	}

	for _, u := range cookingUnits {
		t.units[u] = struct{}{}
	}
	for _, v := range cookingVerbs {
		t.verbs[v] = struct{}{}
	}
	for _, v := range endingVerbs {
		t.ending[v] = struct{}{}
	}
	for _, v := range startingVerbs {
		t.starting[v] = struct{}{}
	}

	return t
}

// Contains 檢查名稱是否為已知食材（需為正規化後的小寫字串）
func (t *Taxonomy) Contains(name string) bool {
	_, ok := t.ingredients[name]
	return ok
}

// CategoryOf 回傳食材所屬類別，先找精確比對再做雙向子字串比對
func (t *Taxonomy) CategoryOf(name string) (Category, bool) {
	if c, ok := t.ingredients[name]; ok {
		return c, true
	}
	if name == "" {
		return "", false
	}
	for _, item := range t.ordered {
		if strings.Contains(name, item) || strings.Contains(item, name) {
			return t.ingredients[item], true
		}
	}
	return "", false
}

// MatchesKnown 檢查名稱是否與任何已知食材有雙向子字串重疊
func (t *Taxonomy) MatchesKnown(name string) bool {
	if t.Contains(name) {
		return true
	}
	for _, item := range t.ordered {
		if strings.Contains(name, item) || strings.Contains(item, name) {
			return true
		}
	}
	// 逐字檢查
	for _, word := range strings.Fields(name) {
		if t.Contains(word) {
			return true
		}
	}
	return false
}

// Size 回傳已知食材數量
func (t *Taxonomy) Size() int {
	return len(t.ingredients)
}

// IsUnit 檢查單字是否為份量單位
func (t *Taxonomy) IsUnit(word string) bool {
	_, ok := t.units[strings.ToLower(word)]
	return ok
}

// IsCookingVerb 檢查單字是否為烹飪動詞
func (t *Taxonomy) IsCookingVerb(word string) bool {
	_, ok := t.verbs[strings.ToLower(word)]
	return ok
}

// IsEndingVerb 檢查單字是否為收尾動詞
func (t *Taxonomy) IsEndingVerb(word string) bool {
	_, ok := t.ending[strings.ToLower(word)]
	return ok
}

// IsStartingVerb 檢查單字是否為起始動詞
func (t *Taxonomy) IsStartingVerb(word string) bool {
	_, ok := t.starting[strings.ToLower(word)]
	return ok
}

// Units 回傳所有份量單位
func (t *Taxonomy) Units() []string {
	out := make([]string, len(cookingUnits))
	copy(out, cookingUnits)
	return out
}

// Modifiers 回傳正規化時需移除的修飾詞
func (t *Taxonomy) Modifiers() []string {
	out := make([]string, len(modifiers))
	copy(out, modifiers)
	return out
}

// ExpandAbbreviation 展開縮寫，查無對應時回傳原字
func (t *Taxonomy) ExpandAbbreviation(word string) string {
	if full, ok := abbreviations[strings.ToLower(word)]; ok {
		return full
	}
	return word
}

// ApplySynonyms 將別名寫法替換為標準寫法，先整串比對再做包含比對
func (t *Taxonomy) ApplySynonyms(name string) string {
	for _, p := range synonyms {
		if name == p.From {
			return p.To
		}
	}
	for _, p := range synonyms {
		if strings.Contains(name, p.From) {
			return strings.ReplaceAll(name, p.From, p.To)
		}
	}
	return name
}
