package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/story-core/internal/domain/entities"
)

func TestBuildPrompt_Start(t *testing.T) {
	inputs := entities.StoryInputs{
		Characters:   "Mira, a young detective",
		Setting:      "Willow Hollow",
		Genre:        "Mystery",
		Length:       entities.LengthShort,
		Language:     "English",
		OtherDetails: "It is raining.",
	}

	got := BuildPrompt(inputs, nil, entities.ActionStart, "")

	want := "You are a creative storyteller writing a story in English. The story genre is Mystery.\n" +
		"Main characters: Mira, a young detective\n" +
		"Setting: Willow Hollow\n" +
		"Initial details: It is raining.\n" +
		"\nWrite the *first part* of the story. It should be approximately 250-500 words long. " +
		"Establish the scene and introduce the character(s) based on the provided details."
	assert.Equal(t, want, got)
}

func TestBuildPrompt_Defaults(t *testing.T) {
	got := BuildPrompt(entities.StoryInputs{}, nil, entities.ActionStart, "")

	assert.Contains(t, got, "writing a story in English.")
	assert.Contains(t, got, "The story genre is Adventure.")
	assert.Contains(t, got, "Main characters: A mysterious traveler\n")
	assert.Contains(t, got, "Setting: A place lost to time\n")
	assert.Contains(t, got, "approximately 500-1000 words")
	assert.NotContains(t, got, "Initial details")
}

func TestBuildPrompt_Continue(t *testing.T) {
	inputs := entities.StoryInputs{Genre: "Fantasy", Length: entities.LengthLong, Language: "French"}
	history := []string{"part one", "part two", "part three"}

	tests := []struct {
		name         string
		instructions string
		wantFocus    bool
	}{
		{name: "with instructions", instructions: "introduce a dragon", wantFocus: true},
		{name: "without instructions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPrompt(inputs, history, entities.ActionContinue, tt.instructions)

			assert.Contains(t, got, "(most recent parts first for context):\n---\npart two\n\n...\n\npart three\n---\n")
			assert.NotContains(t, got, "part one")
			assert.Contains(t, got, "Maintain the established tone, characters, and Fantasy genre.")
			assert.Contains(t, got, "approximately 1000-1500 words long and written in French.")
			assert.Equal(t, tt.wantFocus, strings.Contains(got, "Specific focus or direction for this part: introduce a dragon."))
		})
	}
}

func TestBuildPrompt_ContinueWithoutHistory(t *testing.T) {
	got := BuildPrompt(entities.StoryInputs{}, nil, entities.ActionContinue, "")

	assert.NotContains(t, got, "Here is the story so far")
	assert.Contains(t, got, "Write the *next part* of the story")
}

func TestBuildPrompt_End(t *testing.T) {
	inputs := entities.StoryInputs{Genre: "Humor", Length: entities.LengthEpic, Language: "German"}
	history := []string{"one", "two", "three"}

	got := BuildPrompt(inputs, history, entities.ActionEnd, "ignored")

	assert.Contains(t, got, "---\ntwo\n\n...\n\nthree\n---\n")
	assert.Contains(t, got, "\nHere is the full story generated so far:\n---\none\n\ntwo\n\nthree\n---\n")
	assert.Contains(t, got, "Write the *concluding part* of the story.")
	assert.Contains(t, got, "based on the Humor genre and events so far.")
	assert.Contains(t, got, "approximately 1500-2000 words long and written in German.")
	assert.NotContains(t, got, "ignored")
}

func TestBuildPrompt_UnknownLengthUsesMedium(t *testing.T) {
	got := BuildPrompt(entities.StoryInputs{Length: "novella"}, nil, entities.ActionStart, "")

	assert.Contains(t, got, "approximately 500-1000 words long")
}
