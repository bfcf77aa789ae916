package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/mocks"
)

func validInputs() entities.StoryInputs {
	return entities.StoryInputs{
		Characters: "Mira",
		Setting:    "Willow Hollow",
		Genre:      "Mystery",
		Length:     entities.LengthShort,
		Language:   "English",
	}
}

func TestWriterService_GeneratePart(t *testing.T) {
	writer := &mocks.StoryWriter{Text: "  Once upon a time.\n"}
	svc := NewWriterService(writer, zaptest.NewLogger(t))

	text, err := svc.GeneratePart(t.Context(), GenerateRequest{
		Action: entities.ActionStart,
		Inputs: validInputs(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Once upon a time.", text)
	require.Len(t, writer.Prompts, 1)
	assert.Contains(t, writer.LastPrompt(), "Write the *first part* of the story.")
}

func TestWriterService_GeneratePart_Errors(t *testing.T) {
	errModel := errors.New("quota exceeded")

	tests := []struct {
		name    string
		writer  *mocks.StoryWriter
		req     GenerateRequest
		wantErr error
		check   func(t *testing.T, err error)
	}{
		{
			name:    "empty generation",
			writer:  &mocks.StoryWriter{Text: "   "},
			req:     GenerateRequest{Action: entities.ActionStart, Inputs: validInputs()},
			wantErr: entities.ErrEmptyGeneration,
		},
		{
			name:    "model failure is wrapped",
			writer:  &mocks.StoryWriter{Err: errModel},
			req:     GenerateRequest{Action: entities.ActionContinue, History: []string{"x"}},
			wantErr: errModel,
		},
		{
			name:   "invalid action",
			writer: &mocks.StoryWriter{Text: "x"},
			req:    GenerateRequest{Action: "rewind"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), `invalid action "rewind"`)
			},
		},
		{
			name:   "missing start fields",
			writer: &mocks.StoryWriter{Text: "x"},
			req:    GenerateRequest{Action: entities.ActionStart, Inputs: entities.StoryInputs{Characters: "Mira", Length: entities.LengthShort}},
			check: func(t *testing.T, err error) {
				var missing *entities.MissingFieldsError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, []string{"setting", "genre", "language"}, missing.Fields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewWriterService(tt.writer, nil)

			_, err := svc.GeneratePart(t.Context(), tt.req)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestWriterService_Unavailable(t *testing.T) {
	svc := NewWriterService(nil, nil)

	assert.False(t, svc.Available())
	_, err := svc.GeneratePart(t.Context(), GenerateRequest{Action: entities.ActionStart, Inputs: validInputs()})
	assert.ErrorIs(t, err, entities.ErrWriterUnavailable)
}
