package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// Defaults used when a story input is left empty.
const (
	DefaultPromptLanguage   = "English"
	DefaultPromptGenre      = "Adventure"
	DefaultPromptCharacters = "A mysterious traveler"
	DefaultPromptSetting    = "A place lost to time"
)

// contextParts is how many recent parts are quoted back for continue and end.
const contextParts = 2

// BuildPrompt renders the model prompt for one story action.
// history is every previously generated part, oldest first.
func BuildPrompt(inputs entities.StoryInputs, history []string, action entities.Action, instructions string) string {
	words := inputs.Length.Words()
	language := orDefault(inputs.Language, DefaultPromptLanguage)
	genre := orDefault(inputs.Genre, DefaultPromptGenre)
	characters := orDefault(inputs.Characters, DefaultPromptCharacters)
	setting := orDefault(inputs.Setting, DefaultPromptSetting)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a creative storyteller writing a story in %s.", language)
	fmt.Fprintf(&b, " The story genre is %s.\n", genre)
	fmt.Fprintf(&b, "Main characters: %s\n", characters)
	fmt.Fprintf(&b, "Setting: %s\n", setting)
	if details := strings.TrimSpace(inputs.OtherDetails); details != "" {
		fmt.Fprintf(&b, "Initial details: %s\n", details)
	}

	if (action == entities.ActionContinue || action == entities.ActionEnd) && len(history) > 0 {
		recent := history
		if len(recent) > contextParts {
			recent = recent[len(recent)-contextParts:]
		}
		b.WriteString("\nHere is the story so far (most recent parts first for context):\n---\n")
		b.WriteString(strings.Join(recent, "\n\n...\n\n"))
		b.WriteString("\n---\n")
	}

	switch action {
	case entities.ActionContinue:
		fmt.Fprintf(&b, "\nWrite the *next part* of the story, continuing logically from where the previous part ended. Maintain the established tone, characters, and %s genre.", genre)
		if instr := strings.TrimSpace(instructions); instr != "" {
			fmt.Fprintf(&b, " Specific focus or direction for this part: %s.", instr)
		}
		fmt.Fprintf(&b, " This part should be approximately %d-%d words long and written in %s.", words.Min, words.Max, language)
	case entities.ActionEnd:
		b.WriteString("\nHere is the full story generated so far:\n---\n")
		b.WriteString(strings.Join(history, "\n\n"))
		b.WriteString("\n---\n")
		fmt.Fprintf(&b, "\nWrite the *concluding part* of the story. Bring the current plot points to a satisfying resolution based on the %s genre and events so far.", genre)
		fmt.Fprintf(&b, " The conclusion should be approximately %d-%d words long and written in %s.", words.Min, words.Max, language)
	default:
		fmt.Fprintf(&b, "\nWrite the *first part* of the story. It should be approximately %d-%d words long. Establish the scene and introduce the character(s) based on the provided details.", words.Min, words.Max)
	}

	return b.String()
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
