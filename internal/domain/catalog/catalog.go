// Package catalog holds the per-language template, vocabulary, adjective and
// pronoun tables used by the story assembler.
//
// A Catalog is read-only once built. Lookups never fail: every table falls
// back to the English bundle independently (per-table fallback), so a
// partially translated language only borrows the parts it is missing.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// TemplatePair is a title and body template sharing one set of placeholders.
type TemplatePair struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// VocabularySet holds the two phrase lists used as element1 and element2.
type VocabularySet struct {
	ElementsA []string `yaml:"elements_a"`
	ElementsB []string `yaml:"elements_b"`
}

func (v VocabularySet) usable() bool {
	return len(v.ElementsA) > 0 && len(v.ElementsB) > 0
}

// PronounPair is the plural subject and object pronoun of a language.
type PronounPair struct {
	Plural       string `yaml:"plural"`
	PluralObject string `yaml:"plural_object"`
}

func (p PronounPair) usable() bool {
	return p.Plural != "" && p.PluralObject != ""
}

// Bundle is every table for one language.
type Bundle struct {
	Templates          []TemplatePair                      `yaml:"templates"`
	SettingAdjectives  []string                            `yaml:"setting_adjectives"`
	CategoryAdjectives map[entities.Category]string        `yaml:"category_adjectives"`
	Vocabulary         map[entities.Category]VocabularySet `yaml:"vocabulary"`
	Pronouns           PronounPair                         `yaml:"pronouns"`
}

// Catalog maps language codes to their bundles.
type Catalog struct {
	Bundles map[entities.LanguageCode]*Bundle `yaml:"languages"`
}

// Resolved is the outcome of looking up one (language, category) pair.
type Resolved struct {
	// Language is the requested language if the catalog has a bundle for it,
	// otherwise English.
	Language          entities.LanguageCode
	Templates         []TemplatePair
	SettingAdjectives []string
	CategoryAdjective string
	Vocabulary        VocabularySet
	Pronouns          PronounPair
	// KnownCategory is false when vocabulary came from the Adventure fallback.
	KnownCategory bool
}

// ParseLanguage normalizes a language code: trimmed, lower-cased and
// stripped of any region subtag ("pt-BR" becomes "pt").
func ParseLanguage(raw string) entities.LanguageCode {
	code := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	return entities.LanguageCode(code)
}

// Resolve looks up every table for the given language and category,
// applying the per-table fallback chain. The catalog must have passed
// Validate.
func (c *Catalog) Resolve(language string, category entities.Category) Resolved {
	en := c.Bundles[entities.LanguageEnglish]

	code := ParseLanguage(language)
	bundle, ok := c.Bundles[code]
	if !ok || bundle == nil {
		code = entities.LanguageEnglish
		bundle = en
	}

	res := Resolved{
		Language:          code,
		Templates:         bundle.Templates,
		SettingAdjectives: bundle.SettingAdjectives,
		Pronouns:          bundle.Pronouns,
	}
	if len(res.Templates) == 0 {
		res.Templates = en.Templates
	}
	if len(res.SettingAdjectives) == 0 {
		res.SettingAdjectives = en.SettingAdjectives
	}
	if !res.Pronouns.usable() {
		res.Pronouns = en.Pronouns
	}

	canonical, known := c.canonicalCategory(bundle, category)
	res.KnownCategory = known

	res.CategoryAdjective = entities.DefaultCategoryAdjective
	if known {
		if adj := bundle.CategoryAdjectives[canonical]; adj != "" {
			res.CategoryAdjective = adj
		} else if adj := en.CategoryAdjectives[canonical]; adj != "" {
			res.CategoryAdjective = adj
		}
	}

	vocabCategory := entities.CategoryAdventure
	if known {
		vocabCategory = canonical
	}
	switch {
	case bundle.Vocabulary[vocabCategory].usable():
		res.Vocabulary = bundle.Vocabulary[vocabCategory]
	case en.Vocabulary[vocabCategory].usable():
		res.Vocabulary = en.Vocabulary[vocabCategory]
	default:
		res.Vocabulary = en.Vocabulary[entities.CategoryAdventure]
	}

	return res
}

// canonicalCategory matches category case-insensitively against the
// categories named in the requested bundle and the English bundle.
func (c *Catalog) canonicalCategory(bundle *Bundle, category entities.Category) (entities.Category, bool) {
	want := strings.TrimSpace(string(category))
	if want == "" {
		return "", false
	}
	for _, b := range []*Bundle{bundle, c.Bundles[entities.LanguageEnglish]} {
		for name := range b.Vocabulary {
			if strings.EqualFold(string(name), want) {
				return name, true
			}
		}
		for name := range b.CategoryAdjectives {
			if strings.EqualFold(string(name), want) {
				return name, true
			}
		}
	}
	return "", false
}

// Validate checks that every lookup can be satisfied. Only the English
// bundle must be complete; other bundles may omit any table.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Bundles) == 0 {
		return &entities.ConfigurationError{Table: "languages", Reason: "no language bundles defined"}
	}

	en, ok := c.Bundles[entities.LanguageEnglish]
	if !ok || en == nil {
		return &entities.ConfigurationError{Table: "languages", Reason: "the en bundle is required as fallback"}
	}
	if len(en.Templates) == 0 {
		return &entities.ConfigurationError{Language: entities.LanguageEnglish, Table: "templates", Reason: "pool is empty"}
	}
	if len(en.SettingAdjectives) == 0 {
		return &entities.ConfigurationError{Language: entities.LanguageEnglish, Table: "setting_adjectives", Reason: "list is empty"}
	}
	if !en.Pronouns.usable() {
		return &entities.ConfigurationError{Language: entities.LanguageEnglish, Table: "pronouns", Reason: "plural and plural_object are required"}
	}
	if !en.Vocabulary[entities.CategoryAdventure].usable() {
		return &entities.ConfigurationError{
			Language: entities.LanguageEnglish,
			Table:    "vocabulary",
			Reason:   fmt.Sprintf("%s needs non-empty elements_a and elements_b", entities.CategoryAdventure),
		}
	}

	for _, code := range c.Languages() {
		bundle := c.Bundles[code]
		if bundle == nil {
			return &entities.ConfigurationError{Language: code, Table: "languages", Reason: "bundle is empty"}
		}
		for i, tpl := range bundle.Templates {
			if strings.TrimSpace(tpl.Title) == "" || strings.TrimSpace(tpl.Body) == "" {
				return &entities.ConfigurationError{
					Language: code,
					Table:    "templates",
					Reason:   fmt.Sprintf("template %d needs both title and body", i),
				}
			}
		}
	}

	return nil
}

// Languages returns the catalog's language codes, English first and the
// rest sorted.
func (c *Catalog) Languages() []entities.LanguageCode {
	codes := make([]entities.LanguageCode, 0, len(c.Bundles))
	for code := range c.Bundles {
		if code != entities.LanguageEnglish {
			codes = append(codes, code)
		}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	if _, ok := c.Bundles[entities.LanguageEnglish]; ok {
		codes = append([]entities.LanguageCode{entities.LanguageEnglish}, codes...)
	}
	return codes
}

// Categories returns the categories with English vocabulary, built-in
// categories first in their display order.
func (c *Catalog) Categories() []entities.Category {
	en := c.Bundles[entities.LanguageEnglish]
	if en == nil {
		return nil
	}

	categories := make([]entities.Category, 0, len(en.Vocabulary))
	for _, cat := range entities.DefaultCategories {
		if _, ok := en.Vocabulary[cat]; ok {
			categories = append(categories, cat)
		}
	}

	var extra []entities.Category
	for cat := range en.Vocabulary {
		if !entities.IsDefaultCategory(cat) {
			extra = append(extra, cat)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(categories, extra...)
}
