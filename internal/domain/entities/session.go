package entities

import (
	"strings"
	"time"
)

// Action is a step in an LLM-written story.
type Action string

// Story actions.
const (
	ActionStart    Action = "start"
	ActionContinue Action = "continue"
	ActionEnd      Action = "end"
)

// IsValid reports whether a is a known action.
func (a Action) IsValid() bool {
	switch a {
	case ActionStart, ActionContinue, ActionEnd:
		return true
	}
	return false
}

// StoryLength selects the approximate word count of each generated part.
type StoryLength string

// Part lengths.
const (
	LengthShort  StoryLength = "short"
	LengthMedium StoryLength = "medium"
	LengthLong   StoryLength = "long"
	LengthEpic   StoryLength = "epic"
)

// WordRange is an inclusive target word count.
type WordRange struct {
	Min int
	Max int
}

var lengthRanges = map[StoryLength]WordRange{
	LengthShort:  {Min: 250, Max: 500},
	LengthMedium: {Min: 500, Max: 1000},
	LengthLong:   {Min: 1000, Max: 1500},
	LengthEpic:   {Min: 1500, Max: 2000},
}

// Words returns the target range for l, using medium for unknown lengths.
func (l StoryLength) Words() WordRange {
	if r, ok := lengthRanges[l]; ok {
		return r
	}
	return lengthRanges[LengthMedium]
}

// StoryInputs are the user settings for an LLM-written story.
// Genre and Language are free text passed to the model as-is.
type StoryInputs struct {
	Characters   string      `json:"characters"`
	Setting      string      `json:"setting"`
	Genre        string      `json:"genre"`
	Length       StoryLength `json:"length"`
	Language     string      `json:"language"`
	OtherDetails string      `json:"other_details,omitempty"`
}

// Story is a persisted, multi-part story.
type Story struct {
	ID        string      `json:"id"`
	Inputs    StoryInputs `json:"inputs"`
	Parts     []StoryPart `json:"parts,omitempty"`
	Finished  bool        `json:"finished"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// History returns the text of every part in order.
func (s *Story) History() []string {
	history := make([]string, 0, len(s.Parts))
	for i := range s.Parts {
		history = append(history, s.Parts[i].Text)
	}
	return history
}

// StoryPart is one generated section of a story.
type StoryPart struct {
	ID           string    `json:"id"`
	StoryID      string    `json:"story_id"`
	Index        int       `json:"index"`
	Action       Action    `json:"action"`
	Instructions string    `json:"instructions,omitempty"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// MissingStartFields returns the names of inputs a new story requires
// but that are empty, in a fixed order.
func (in StoryInputs) MissingStartFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"characters", in.Characters},
		{"setting", in.Setting},
		{"genre", in.Genre},
		{"length", string(in.Length)},
		{"language", in.Language},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
