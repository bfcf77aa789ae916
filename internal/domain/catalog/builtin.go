package catalog

import (
	"sync"

	"github.com/ersonp/story-core/internal/domain/entities"
)

var builtin = sync.OnceValue(func() *Catalog {
	return &Catalog{
		Bundles: map[entities.LanguageCode]*Bundle{
			entities.LanguageEnglish:    englishBundle(),
			entities.LanguageSpanish:    spanishBundle(),
			entities.LanguageFrench:     frenchBundle(),
			entities.LanguageGerman:     germanBundle(),
			entities.LanguageItalian:    italianBundle(),
			entities.LanguagePortuguese: portugueseBundle(),
		},
	}
})

// Default returns the built-in catalog. It is built once per process and
// shared; callers must not modify it.
func Default() *Catalog {
	return builtin()
}
