package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/mocks"
	"github.com/ersonp/story-core/internal/domain/services"
)

func fullInputs() *entities.StoryInputs {
	return &entities.StoryInputs{
		Characters: "Mira",
		Setting:    "Willow Hollow",
		Genre:      "Mystery",
		Length:     entities.LengthShort,
		Language:   "English",
	}
}

func TestGenerateHandler_Handle(t *testing.T) {
	writer := &mocks.StoryWriter{Text: "The fog rolled in."}
	handler := NewGenerateHandler(services.NewWriterService(writer, nil))

	result, err := handler.Handle(t.Context(), GenerateInput{
		Action:       entities.ActionContinue,
		Inputs:       fullInputs(),
		History:      []string{"one", "two", "three"},
		Instructions: "a storm arrives",
	})

	require.NoError(t, err)
	assert.Equal(t, "The fog rolled in.", result.StoryPart)
	assert.Contains(t, writer.LastPrompt(), "two\n\n...\n\nthree")
	assert.Contains(t, writer.LastPrompt(), "Specific focus or direction for this part: a storm arrives.")
}

func TestGenerateHandler_Handle_Validation(t *testing.T) {
	handler := NewGenerateHandler(services.NewWriterService(&mocks.StoryWriter{Text: "x"}, nil))

	tests := []struct {
		name    string
		in      GenerateInput
		wantMsg string
	}{
		{
			name:    "missing action",
			in:      GenerateInput{Inputs: fullInputs()},
			wantMsg: "Missing action or inputs in request",
		},
		{
			name:    "missing inputs",
			in:      GenerateInput{Action: entities.ActionStart},
			wantMsg: "Missing action or inputs in request",
		},
		{
			name:    "empty inputs",
			in:      GenerateInput{Action: entities.ActionStart, Inputs: &entities.StoryInputs{}},
			wantMsg: "Missing action or inputs in request",
		},
		{
			name:    "invalid action",
			in:      GenerateInput{Action: "rewind", Inputs: fullInputs()},
			wantMsg: "Invalid action specified",
		},
		{
			name:    "start with missing fields",
			in:      GenerateInput{Action: entities.ActionStart, Inputs: &entities.StoryInputs{Characters: "Mira", Genre: "Mystery"}},
			wantMsg: "Missing required input field(s) for starting story: setting, length, language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(t.Context(), tt.in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Error())
		})
	}
}

func TestGenerateHandler_Handle_ContinueAllowsPartialInputs(t *testing.T) {
	handler := NewGenerateHandler(services.NewWriterService(&mocks.StoryWriter{Text: "next"}, nil))

	result, err := handler.Handle(t.Context(), GenerateInput{
		Action: entities.ActionEnd,
		Inputs: &entities.StoryInputs{Genre: "Mystery"},
	})

	require.NoError(t, err)
	assert.Equal(t, "next", result.StoryPart)
}

func TestGenerateHandler_Handle_Unavailable(t *testing.T) {
	handler := NewGenerateHandler(services.NewWriterService(nil, nil))

	assert.False(t, handler.Available())
	_, err := handler.Handle(t.Context(), GenerateInput{Action: entities.ActionStart, Inputs: fullInputs()})
	assert.ErrorIs(t, err, entities.ErrWriterUnavailable)
}

func TestGenerateHandler_Handle_ModelError(t *testing.T) {
	errModel := errors.New("generation blocked due to: SAFETY")
	handler := NewGenerateHandler(services.NewWriterService(&mocks.StoryWriter{Err: errModel}, nil))

	_, err := handler.Handle(t.Context(), GenerateInput{Action: entities.ActionStart, Inputs: fullInputs()})

	require.ErrorIs(t, err, errModel)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
