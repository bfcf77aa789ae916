// Package parsers provides parsers for reading batches of story requests.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// RawRequest is a story request read from a file before validation.
type RawRequest struct {
	Characters string `json:"characters"`
	Setting    string `json:"setting"`
	Category   string `json:"category,omitempty"`
	Language   string `json:"language,omitempty"`
	LineNum    int    `json:"-"` // Line number in source file (set by parser)
}

// ToRequest converts r to a StoryRequest, filling an empty category or
// language with the given defaults.
func (r RawRequest) ToRequest(defaultCategory entities.Category, defaultLanguage entities.LanguageCode) entities.StoryRequest {
	req := entities.StoryRequest{
		Characters: strings.TrimSpace(r.Characters),
		Setting:    strings.TrimSpace(r.Setting),
		Category:   entities.Category(strings.TrimSpace(r.Category)),
		Language:   entities.LanguageCode(strings.TrimSpace(r.Language)),
	}
	if req.Category == "" {
		req.Category = defaultCategory
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}
	return req
}

// Parser defines the interface for parsing story requests from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRequest, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
