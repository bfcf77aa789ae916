package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/mocks"
	"github.com/ersonp/story-core/internal/domain/services"
)

type panicRandom struct{}

func (panicRandom) IntN(int) int { panic("random source exhausted") }

func newAssembleHandler(t *testing.T, escape bool) *AssembleHandler {
	t.Helper()
	return NewAssembleHandler(services.NewAssemblerService(nil), &mocks.Random{}, escape, zaptest.NewLogger(t))
}

func TestAssembleHandler_Handle(t *testing.T) {
	handler := newAssembleHandler(t, true)

	result, err := handler.Handle(t.Context(), entities.StoryRequest{
		Characters: " Mira ",
		Setting:    "Willow Hollow",
		Category:   entities.CategoryMystery,
		Language:   entities.LanguageEnglish,
	})

	require.NoError(t, err)
	assert.Equal(t, "Mystery Tale: Mira in Willow Hollow", result.Title)
	assert.Contains(t, result.Body, "<strong>Mira</strong>")
	assert.False(t, result.Fallback)
}

func TestAssembleHandler_Handle_Validation(t *testing.T) {
	handler := newAssembleHandler(t, true)

	tests := []struct {
		name       string
		req        entities.StoryRequest
		wantFields []string
	}{
		{
			name:       "all missing",
			req:        entities.StoryRequest{},
			wantFields: []string{"characters", "setting", "category", "language"},
		},
		{
			name:       "whitespace counts as missing",
			req:        entities.StoryRequest{Characters: "   ", Setting: "Paris", Category: "Romance", Language: "fr"},
			wantFields: []string{"characters"},
		},
		{
			name:       "language missing",
			req:        entities.StoryRequest{Characters: "Ana", Setting: "Lisbon", Category: "Romance"},
			wantFields: []string{"language"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(t.Context(), tt.req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
			assert.Contains(t, verr.Error(), "missing required field(s)")
		})
	}
}

func TestAssembleHandler_Handle_EscapesHTML(t *testing.T) {
	req := entities.StoryRequest{
		Characters: "<script>alert(1)</script>",
		Setting:    "Tom & Jerry's house",
		Category:   entities.CategoryHumor,
		Language:   entities.LanguageEnglish,
	}

	escaped, err := newAssembleHandler(t, true).Handle(t.Context(), req)
	require.NoError(t, err)
	assert.NotContains(t, escaped.Body, "<script>")
	assert.Contains(t, escaped.Body, "<strong>&lt;script&gt;alert(1)&lt;/script&gt;</strong>")
	assert.Contains(t, escaped.Title, "Tom &amp; Jerry&#39;s house")

	raw, err := newAssembleHandler(t, false).Handle(t.Context(), req)
	require.NoError(t, err)
	assert.Contains(t, raw.Body, "<strong><script>alert(1)</script></strong>")
}

func TestAssembleHandler_Handle_FallbackOnPanic(t *testing.T) {
	handler := NewAssembleHandler(services.NewAssemblerService(nil), panicRandom{}, true, zaptest.NewLogger(t))

	result, err := handler.Handle(t.Context(), entities.StoryRequest{
		Characters: "Mira",
		Setting:    "Willow Hollow",
		Category:   entities.CategoryMystery,
		Language:   entities.LanguageEnglish,
	})

	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, FallbackTitle, result.Title)
	assert.Equal(t, FallbackBody, result.Body)
}

func TestAssembleHandler_HandleBatch(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "requests.csv")
	content := "characters,setting,category,language\n" +
		"Mira,Willow Hollow,Mystery,en\n" +
		",Nowhere,,\n" +
		"Kai,Mars,,\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0644))

	handler := newAssembleHandler(t, false)

	items, err := handler.HandleBatch(t.Context(), csvPath, BatchOptions{DefaultCategory: entities.CategorySciFi})

	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 2, items[0].Line)
	require.NotNil(t, items[0].Result)
	assert.Equal(t, "Mystery Tale: Mira in Willow Hollow", items[0].Result.Title)

	assert.Nil(t, items[1].Result)
	assert.Contains(t, items[1].Error, "characters")

	require.NotNil(t, items[2].Result)
	assert.Equal(t, "Sci-Fi Tale: Kai in Mars", items[2].Result.Title)
}

func TestAssembleHandler_HandleBatch_Errors(t *testing.T) {
	handler := newAssembleHandler(t, false)
	tmpDir := t.TempDir()

	_, err := handler.HandleBatch(t.Context(), filepath.Join(tmpDir, "requests.txt"), BatchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, err = handler.HandleBatch(t.Context(), filepath.Join(tmpDir, "missing.json"), BatchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")

	bad := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = handler.HandleBatch(t.Context(), bad, BatchOptions{Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing file")
}
