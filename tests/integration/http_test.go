package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/domain/mocks"
	"github.com/ersonp/story-core/internal/domain/services"
	"github.com/ersonp/story-core/internal/infrastructure/config"
	"github.com/ersonp/story-core/internal/infrastructure/httpapi"
	"github.com/ersonp/story-core/internal/infrastructure/random"
)

func TestHTTPIntegration_StoryOverSQLite(t *testing.T) {
	skipShort(t)

	logger := zaptest.NewLogger(t)
	repo := openFileStore(t, t.TempDir())
	defer repo.Close()

	writerSvc := services.NewWriterService(&mocks.StoryWriter{Text: "Waves crashed on the rocks."}, logger)
	cfg := config.Default().Server

	srv := httpapi.NewServer(cfg, httpapi.Options{
		Assemble: handlers.NewAssembleHandler(services.NewAssemblerService(nil), random.NewSeeded(1, 2), cfg.EscapeHTML, logger),
		Generate: handlers.NewGenerateHandler(writerSvc),
		Stories:  handlers.NewStoryHandler(services.NewSessionService(repo, writerSvc, logger)),
		Logger:   logger,
	})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	post := func(path, body string) *http.Response {
		resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		return resp
	}

	resp := post("/api/v1/stories", `{"characters":"Ana","setting":"Lisbon","genre":"Romance","length":"short","language":"Portuguese"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = post("/api/v1/stories/"+created.ID+"/end", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/api/v1/stories/" + created.ID + "/export?format=json")
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	var exported struct {
		Finished bool `json:"finished"`
		Parts    []struct {
			Action string `json:"action"`
		} `json:"parts"`
	}
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.True(t, exported.Finished)
	require.Len(t, exported.Parts, 2)
	assert.Equal(t, "end", exported.Parts[1].Action)

	// Assembly is independent of the model and the store.
	resp = post("/api/v1/assemble", `{"characters":"Ana","setting":"Lisboa","category":"Romance","language":"pt-BR"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.Contains(body, []byte("Ana")))
}
