package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/domain/entities"
)

// Response messages shared with the browser client.
const (
	msgWriterUnavailable = "Story generation model not configured. Check API Key environment variable."
	msgNotJSON           = "Request must be JSON"
)

// Pagination bounds for story listings.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// maxBodyBytes caps request bodies; history can carry a whole story.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"writer_available": s.generate != nil && s.generate.Available(),
	})
}

func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	var req entities.StoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.assemble.Handle(r.Context(), req)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.generate == nil || !s.generate.Available() {
		writeError(w, http.StatusInternalServerError, msgWriterUnavailable, nil)
		return
	}

	var in handlers.GenerateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := s.generate.Handle(r.Context(), in)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStartStory(w http.ResponseWriter, r *http.Request) {
	var inputs entities.StoryInputs
	if !decodeJSON(w, r, &inputs) {
		return
	}

	story, err := s.stories.HandleStart(r.Context(), inputs)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, story)
}

func (s *Server) handleContinueStory(w http.ResponseWriter, r *http.Request) {
	var in handlers.ContinueInput
	if r.ContentLength != 0 && !decodeJSON(w, r, &in) {
		return
	}

	part, err := s.stories.HandleContinue(r.Context(), r.PathValue("id"), in)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (s *Server) handleEndStory(w http.ResponseWriter, r *http.Request) {
	part, err := s.stories.HandleEnd(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (s *Server) handleGetStory(w http.ResponseWriter, r *http.Request) {
	story, err := s.stories.HandleGet(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

func (s *Server) handleListStories(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := max(queryInt(r, "offset", 0), 0)

	result, err := s.stories.HandleList(r.Context(), limit, offset)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteStory(w http.ResponseWriter, r *http.Request) {
	if err := s.stories.HandleDelete(r.Context(), r.PathValue("id")); err != nil {
		s.writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportStory(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	data, err := s.stories.HandleExport(r.Context(), r.PathValue("id"), format)
	if err != nil {
		s.writeErr(w, err)
		return
	}

	contentType := "application/json"
	if format == handlers.ExportMarkdown || format == "md" {
		contentType = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeErr maps domain and validation errors to HTTP responses.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	var verr *handlers.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error(), verr.Fields)
	case errors.Is(err, entities.ErrStoryNotFound):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, entities.ErrStoryFinished), errors.Is(err, entities.ErrPartConflict):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, entities.ErrWriterUnavailable):
		writeError(w, http.StatusInternalServerError, msgWriterUnavailable, nil)
	default:
		s.logger.Sugar().Errorw("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}

// decodeJSON reads a JSON body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		writeError(w, http.StatusBadRequest, msgNotJSON, nil)
		return false
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, msgNotJSON, nil)
		return false
	}
	return true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string, fields []string) {
	writeJSON(w, status, errorResponse{Error: msg, Fields: fields})
}
