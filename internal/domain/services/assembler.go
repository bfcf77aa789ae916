// Package services contains domain business logic.
package services

import (
	"regexp"
	"strings"

	"github.com/ersonp/story-core/internal/domain/catalog"
	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/ports"
)

// pluralCastRegex matches a standalone "and" or any comma.
var pluralCastRegex = regexp.MustCompile(`(?i)\band\b|,`)

// AssemblerService builds short vignettes from the phrase catalog.
// It holds no mutable state and is safe for concurrent use as long as
// each caller's RandomSource is.
type AssemblerService struct {
	catalog *catalog.Catalog
}

// NewAssemblerService creates a new AssemblerService.
// A nil catalog selects the built-in tables.
func NewAssemblerService(cat *catalog.Catalog) *AssemblerService {
	if cat == nil {
		cat = catalog.Default()
	}
	return &AssemblerService{catalog: cat}
}

// Catalog returns the catalog the service assembles from.
func (s *AssemblerService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Assemble produces a title and an HTML-marked body for req.
// Choices are drawn from rng in a fixed order: template, setting
// adjective, element1, element2. User text is never escaped here.
func (s *AssemblerService) Assemble(req entities.StoryRequest, rng ports.RandomSource) entities.StoryResult {
	res := s.catalog.Resolve(string(req.Language), req.Category)

	// The catalog only carries plural pronouns, so single characters get
	// the plural pair too.
	pronouns := res.Pronouns

	tmpl := pick(rng, res.Templates)
	settingAdjective := pick(rng, res.SettingAdjectives)
	element1 := pick(rng, res.Vocabulary.ElementsA)
	element2 := pick(rng, res.Vocabulary.ElementsB)

	phrases := []string{
		"{category_adjective}", res.CategoryAdjective,
		"{setting_adjective}", settingAdjective,
		"{pronoun}", pronouns.Plural,
		"{pronoun_object}", pronouns.PluralObject,
		"{element1}", element1,
		"{element2}", element2,
	}

	title := interpolate(tmpl.Title, phrases,
		"{characters}", req.Characters,
		"{setting}", req.Setting,
		"{category}", string(req.Category),
	)

	// Markup runs before user text goes in, so asterisks typed by the
	// user stay literal.
	body := RenderMarkup(interpolate(tmpl.Body, phrases))
	body = interpolate(body, nil,
		"{characters}", "<strong>"+req.Characters+"</strong>",
		"{setting}", "<em>"+req.Setting+"</em>",
		"{category}", string(req.Category),
	)

	return entities.StoryResult{
		Title: title,
		Body:  body,
	}
}

// IsPluralCast reports whether the characters text names more than one
// character: it contains the word "and" in any case, or a comma.
func IsPluralCast(characters string) bool {
	return pluralCastRegex.MatchString(characters)
}

// interpolate substitutes every placeholder in one pass, so text supplied
// by the user is never expanded again.
func interpolate(tmpl string, phrases []string, pairs ...string) string {
	all := make([]string, 0, len(phrases)+len(pairs))
	all = append(all, phrases...)
	all = append(all, pairs...)
	return strings.NewReplacer(all...).Replace(tmpl)
}

func pick[T any](rng ports.RandomSource, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	i := rng.IntN(len(items))
	if i < 0 || i >= len(items) {
		i = 0
	}
	return items[i]
}
