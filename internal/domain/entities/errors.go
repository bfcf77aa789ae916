package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStoryNotFound is returned when a story ID does not exist.
	ErrStoryNotFound = errors.New("story not found")

	// ErrStoryFinished is returned when a part is requested for an ended story.
	ErrStoryFinished = errors.New("story already finished")

	// ErrPartConflict is returned when another request added a part to the
	// story after it was read.
	ErrPartConflict = errors.New("story was changed by another request")

	// ErrEmptyGeneration is returned when the model produced no text.
	ErrEmptyGeneration = errors.New("empty response from story model")

	// ErrWriterUnavailable is returned when no story model is configured.
	ErrWriterUnavailable = errors.New("story generation model not configured")
)

// ConfigurationError reports catalog data that would leave some
// (language, category) combination without usable output.
type ConfigurationError struct {
	Language LanguageCode
	Table    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Language == "" {
		return fmt.Sprintf("catalog %s: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("catalog %s[%s]: %s", e.Table, e.Language, e.Reason)
}

// MissingFieldsError lists required story inputs that were empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required input field(s): " + strings.Join(e.Fields, ", ")
}
