package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected bool
	}{
		{name: "start is valid", action: ActionStart, expected: true},
		{name: "continue is valid", action: ActionContinue, expected: true},
		{name: "end is valid", action: ActionEnd, expected: true},
		{name: "empty is invalid", action: Action(""), expected: false},
		{name: "uppercase is invalid", action: Action("START"), expected: false},
		{name: "unknown is invalid", action: Action("restart"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.IsValid())
		})
	}
}

func TestStoryLength_Words(t *testing.T) {
	tests := []struct {
		name     string
		length   StoryLength
		expected WordRange
	}{
		{name: "short", length: LengthShort, expected: WordRange{Min: 250, Max: 500}},
		{name: "medium", length: LengthMedium, expected: WordRange{Min: 500, Max: 1000}},
		{name: "long", length: LengthLong, expected: WordRange{Min: 1000, Max: 1500}},
		{name: "epic", length: LengthEpic, expected: WordRange{Min: 1500, Max: 2000}},
		{name: "unknown falls back to medium", length: StoryLength("novella"), expected: WordRange{Min: 500, Max: 1000}},
		{name: "empty falls back to medium", length: StoryLength(""), expected: WordRange{Min: 500, Max: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.length.Words())
		})
	}
}

func TestStory_History(t *testing.T) {
	story := &Story{
		Parts: []StoryPart{
			{Index: 0, Text: "Once upon a time."},
			{Index: 1, Text: "Then a storm came."},
		},
	}

	assert.Equal(t, []string{"Once upon a time.", "Then a storm came."}, story.History())
	assert.Empty(t, (&Story{}).History())
}

func TestIsDefaultCategory(t *testing.T) {
	assert.True(t, IsDefaultCategory(CategoryFairyTale))
	assert.True(t, IsDefaultCategory(CategorySciFi))
	assert.False(t, IsDefaultCategory(Category("Western")))
	assert.False(t, IsDefaultCategory(Category("mystery")))
}

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{Language: LanguageEnglish, Table: "templates", Reason: "pool is empty"}
	assert.Equal(t, "catalog templates[en]: pool is empty", err.Error())

	err = &ConfigurationError{Table: "bundles", Reason: "missing en bundle"}
	assert.Equal(t, "catalog bundles: missing en bundle", err.Error())
}
