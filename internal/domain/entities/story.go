// Package entities contains core domain data structures.
package entities

// LanguageCode identifies a supported story language.
type LanguageCode string

// Supported languages. Anything else resolves to LanguageEnglish.
const (
	LanguageEnglish    LanguageCode = "en"
	LanguageSpanish    LanguageCode = "es"
	LanguageFrench     LanguageCode = "fr"
	LanguageGerman     LanguageCode = "de"
	LanguageItalian    LanguageCode = "it"
	LanguagePortuguese LanguageCode = "pt"
)

// Category is a story genre. Unknown categories are still interpolated
// verbatim into templates but borrow Adventure vocabulary.
type Category string

// Built-in categories.
const (
	CategoryAdventure Category = "Adventure"
	CategoryRomance   Category = "Romance"
	CategoryMystery   Category = "Mystery"
	CategoryFantasy   Category = "Fantasy"
	CategorySciFi     Category = "Sci-Fi"
	CategoryHumor     Category = "Humor"
	CategoryFairyTale Category = "Fairy Tale"
)

// DefaultCategoryAdjective is used when a category has no adjective entry.
const DefaultCategoryAdjective = "amazing"

// StoryRequest is the input to the offline story assembler.
type StoryRequest struct {
	Characters string       `json:"characters" validate:"required"`
	Setting    string       `json:"setting" validate:"required"`
	Category   Category     `json:"category" validate:"required"`
	Language   LanguageCode `json:"language" validate:"required"`
}

// StoryResult is an assembled vignette. Body carries HTML strong/em markup.
type StoryResult struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
