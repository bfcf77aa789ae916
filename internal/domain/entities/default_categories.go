package entities

// DefaultCategories lists the built-in categories in display order.
var DefaultCategories = []Category{
	CategoryAdventure,
	CategoryRomance,
	CategoryMystery,
	CategoryFantasy,
	CategorySciFi,
	CategoryHumor,
	CategoryFairyTale,
}

// DefaultLanguages lists the built-in languages in display order.
var DefaultLanguages = []LanguageCode{
	LanguageEnglish,
	LanguageSpanish,
	LanguageFrench,
	LanguageGerman,
	LanguageItalian,
	LanguagePortuguese,
}

// IsDefaultCategory checks if a category is one of the built-in ones.
func IsDefaultCategory(c Category) bool {
	for _, d := range DefaultCategories {
		if d == c {
			return true
		}
	}
	return false
}

// IsDefaultLanguage checks if a language code is one of the built-in ones.
func IsDefaultLanguage(code LanguageCode) bool {
	for _, d := range DefaultLanguages {
		if d == code {
			return true
		}
	}
	return false
}
