package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// partialCatalog has a complete English bundle and a Latin bundle that only
// defines templates and a Mystery vocabulary set.
func partialCatalog() *Catalog {
	return &Catalog{
		Bundles: map[entities.LanguageCode]*Bundle{
			entities.LanguageEnglish: {
				Templates:         []TemplatePair{{Title: "{category} in {setting}", Body: "{characters} found {element1} and {element2}."}},
				SettingAdjectives: []string{"old"},
				CategoryAdjectives: map[entities.Category]string{
					entities.CategoryAdventure: "bold",
					entities.CategoryMystery:   "odd",
				},
				Vocabulary: map[entities.Category]VocabularySet{
					entities.CategoryAdventure: {ElementsA: []string{"a map"}, ElementsB: []string{"a cave"}},
					entities.CategoryMystery:   {ElementsA: []string{"a note"}, ElementsB: []string{"a key"}},
					entities.CategoryRomance:   {ElementsA: []string{"a letter"}, ElementsB: []string{"a rose"}},
				},
				Pronouns: PronounPair{Plural: "they", PluralObject: "them"},
			},
			"la": {
				Templates: []TemplatePair{{Title: "{category} in {setting} (la)", Body: "{characters} invenerunt {element1}."}},
				Vocabulary: map[entities.Category]VocabularySet{
					entities.CategoryMystery: {ElementsA: []string{"epistula"}, ElementsB: []string{"clavis"}},
				},
			},
		},
	}
}

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDefault_EveryLanguageIsComplete(t *testing.T) {
	c := Default()

	for _, code := range entities.DefaultLanguages {
		bundle, ok := c.Bundles[code]
		require.True(t, ok, "missing bundle %s", code)

		assert.NotEmpty(t, bundle.Templates, "%s templates", code)
		assert.NotEmpty(t, bundle.SettingAdjectives, "%s setting adjectives", code)
		assert.NotEmpty(t, bundle.Pronouns.Plural, "%s plural pronoun", code)
		assert.NotEmpty(t, bundle.Pronouns.PluralObject, "%s plural object pronoun", code)

		for _, cat := range entities.DefaultCategories {
			assert.NotEmpty(t, bundle.CategoryAdjectives[cat], "%s/%s adjective", code, cat)
			assert.NotEmpty(t, bundle.Vocabulary[cat].ElementsA, "%s/%s elements_a", code, cat)
			assert.NotEmpty(t, bundle.Vocabulary[cat].ElementsB, "%s/%s elements_b", code, cat)
		}

		for i, tpl := range bundle.Templates {
			assert.Contains(t, tpl.Title, "{category}", "%s template %d title", code, i)
			assert.Contains(t, tpl.Body, "{characters}", "%s template %d body", code, i)
			assert.Contains(t, tpl.Body, "{setting}", "%s template %d body", code, i)
		}
	}
}

func TestDefault_EnglishHasThreeTemplates(t *testing.T) {
	assert.Len(t, Default().Bundles[entities.LanguageEnglish].Templates, 3)
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected entities.LanguageCode
	}{
		{name: "plain code", input: "fr", expected: "fr"},
		{name: "uppercase", input: "DE", expected: "de"},
		{name: "region subtag", input: "pt-BR", expected: "pt"},
		{name: "underscore region", input: "es_MX", expected: "es"},
		{name: "surrounding space", input: "  it ", expected: "it"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLanguage(tt.input))
		})
	}
}

func TestResolve_SupportedLanguage(t *testing.T) {
	c := Default()

	res := c.Resolve("es", entities.CategoryMystery)

	assert.Equal(t, entities.LanguageSpanish, res.Language)
	assert.True(t, res.KnownCategory)
	assert.Equal(t, "enigmática", res.CategoryAdjective)
	assert.Equal(t, c.Bundles[entities.LanguageSpanish].Vocabulary[entities.CategoryMystery], res.Vocabulary)
	assert.Equal(t, PronounPair{Plural: "ellos", PluralObject: "los"}, res.Pronouns)
}

func TestResolve_UnknownLanguageUsesEnglish(t *testing.T) {
	c := Default()

	got := c.Resolve("xx", entities.CategoryMystery)
	want := c.Resolve("en", entities.CategoryMystery)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(xx) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_UnknownCategory(t *testing.T) {
	c := Default()

	res := c.Resolve("en", entities.Category("Western"))

	assert.False(t, res.KnownCategory)
	assert.Equal(t, entities.DefaultCategoryAdjective, res.CategoryAdjective)
	assert.Equal(t, c.Bundles[entities.LanguageEnglish].Vocabulary[entities.CategoryAdventure], res.Vocabulary)
}

func TestResolve_UnknownCategoryInOtherLanguage(t *testing.T) {
	c := Default()

	res := c.Resolve("fr", entities.Category("Western"))

	assert.Equal(t, entities.DefaultCategoryAdjective, res.CategoryAdjective)
	assert.Equal(t, c.Bundles[entities.LanguageFrench].Vocabulary[entities.CategoryAdventure], res.Vocabulary)
}

func TestResolve_CategoryIsCaseInsensitive(t *testing.T) {
	c := Default()

	res := c.Resolve("en", entities.Category("fairy tale"))

	assert.True(t, res.KnownCategory)
	assert.Equal(t, "enchanting", res.CategoryAdjective)
	assert.Equal(t, c.Bundles[entities.LanguageEnglish].Vocabulary[entities.CategoryFairyTale], res.Vocabulary)
}

func TestResolve_PerTableFallback(t *testing.T) {
	c := partialCatalog()
	require.NoError(t, c.Validate())
	en := c.Bundles[entities.LanguageEnglish]

	t.Run("own tables are used where present", func(t *testing.T) {
		res := c.Resolve("la", entities.CategoryMystery)

		assert.Equal(t, entities.LanguageCode("la"), res.Language)
		assert.Equal(t, c.Bundles["la"].Templates, res.Templates)
		assert.Equal(t, []string{"epistula"}, res.Vocabulary.ElementsA)
	})

	t.Run("missing tables come from english", func(t *testing.T) {
		res := c.Resolve("la", entities.CategoryMystery)

		assert.Equal(t, en.SettingAdjectives, res.SettingAdjectives)
		assert.Equal(t, en.Pronouns, res.Pronouns)
		assert.Equal(t, "odd", res.CategoryAdjective)
	})

	t.Run("missing category vocabulary uses english same category", func(t *testing.T) {
		res := c.Resolve("la", entities.CategoryRomance)

		assert.Equal(t, en.Vocabulary[entities.CategoryRomance], res.Vocabulary)
		assert.Equal(t, entities.DefaultCategoryAdjective, res.CategoryAdjective)
	})

	t.Run("category missing everywhere uses english adventure", func(t *testing.T) {
		res := c.Resolve("en", entities.CategorySciFi)

		assert.False(t, res.KnownCategory)
		assert.Equal(t, en.Vocabulary[entities.CategoryAdventure], res.Vocabulary)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		table  string
	}{
		{
			name:   "no bundles",
			mutate: func(c *Catalog) { c.Bundles = nil },
			table:  "languages",
		},
		{
			name:   "missing english",
			mutate: func(c *Catalog) { delete(c.Bundles, entities.LanguageEnglish) },
			table:  "languages",
		},
		{
			name:   "empty english templates",
			mutate: func(c *Catalog) { c.Bundles[entities.LanguageEnglish].Templates = nil },
			table:  "templates",
		},
		{
			name:   "empty english setting adjectives",
			mutate: func(c *Catalog) { c.Bundles[entities.LanguageEnglish].SettingAdjectives = nil },
			table:  "setting_adjectives",
		},
		{
			name:   "missing english pronouns",
			mutate: func(c *Catalog) { c.Bundles[entities.LanguageEnglish].Pronouns = PronounPair{} },
			table:  "pronouns",
		},
		{
			name: "incomplete english adventure vocabulary",
			mutate: func(c *Catalog) {
				c.Bundles[entities.LanguageEnglish].Vocabulary[entities.CategoryAdventure] = VocabularySet{ElementsA: []string{"a map"}}
			},
			table: "vocabulary",
		},
		{
			name:   "blank template in other language",
			mutate: func(c *Catalog) { c.Bundles["la"].Templates = []TemplatePair{{Title: "x", Body: "  "}} },
			table:  "templates",
		},
		{
			name:   "nil bundle",
			mutate: func(c *Catalog) { c.Bundles["zz"] = nil },
			table:  "languages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := partialCatalog()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)

			var cfgErr *entities.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.table, cfgErr.Table)
		})
	}
}

func TestLanguagesAndCategories(t *testing.T) {
	c := Default()

	assert.Equal(t, []entities.LanguageCode{"en", "de", "es", "fr", "it", "pt"}, c.Languages())
	assert.Equal(t, entities.DefaultCategories, c.Categories())

	partial := partialCatalog()
	partial.Bundles[entities.LanguageEnglish].Vocabulary["Western"] = VocabularySet{ElementsA: []string{"a"}, ElementsB: []string{"b"}}
	assert.Equal(t,
		[]entities.Category{entities.CategoryAdventure, entities.CategoryRomance, entities.CategoryMystery, "Western"},
		partial.Categories())
}

const testCatalogYAML = `
languages:
  en:
    templates:
      - title: "{category}: {characters}"
        body: "{characters} went to {setting} and found {element1} near {element2}."
    setting_adjectives: [quiet]
    category_adjectives:
      Adventure: daring
    vocabulary:
      Adventure:
        elements_a: [a lantern]
        elements_b: [a river]
    pronouns:
      plural: they
      plural_object: them
  nl:
    templates:
      - title: "{category}: {characters}"
        body: "{characters} gingen naar {setting}."
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	assert.Equal(t, []entities.LanguageCode{"en", "nl"}, c.Languages())

	res := c.Resolve("nl-BE", entities.CategoryAdventure)
	assert.Equal(t, entities.LanguageCode("nl"), res.Language)
	assert.Equal(t, "daring", res.CategoryAdjective)
	assert.Equal(t, []string{"a lantern"}, res.Vocabulary.ElementsA)
	assert.Equal(t, []string{"quiet"}, res.SettingAdjectives)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("languages: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestParse_FailsValidation(t *testing.T) {
	_, err := Parse([]byte("languages:\n  fr:\n    setting_adjectives: [vieux]\n"))
	require.Error(t, err)

	var cfgErr *entities.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, c.Bundles, entities.LanguageCode("nl"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog file")
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}
