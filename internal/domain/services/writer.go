package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/ports"
)

// GenerateRequest is one stateless generation step. The caller carries
// the story history between calls.
type GenerateRequest struct {
	Action       entities.Action
	Inputs       entities.StoryInputs
	History      []string
	Instructions string
}

// WriterService turns story inputs into model prompts and returns the
// generated text.
type WriterService struct {
	writer ports.StoryWriter
	logger *zap.Logger
}

// NewWriterService creates a new WriterService. writer may be nil when no
// model is configured; generation then fails with ErrWriterUnavailable.
func NewWriterService(writer ports.StoryWriter, logger *zap.Logger) *WriterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WriterService{writer: writer, logger: logger}
}

// Available reports whether a model is configured.
func (s *WriterService) Available() bool {
	return s != nil && s.writer != nil
}

// GeneratePart builds the prompt for req and asks the model for the next part.
func (s *WriterService) GeneratePart(ctx context.Context, req GenerateRequest) (string, error) {
	if !s.Available() {
		return "", entities.ErrWriterUnavailable
	}
	if !req.Action.IsValid() {
		return "", fmt.Errorf("invalid action %q", req.Action)
	}
	if req.Action == entities.ActionStart {
		if missing := req.Inputs.MissingStartFields(); len(missing) > 0 {
			return "", &entities.MissingFieldsError{Fields: missing}
		}
	}

	prompt := BuildPrompt(req.Inputs, req.History, req.Action, req.Instructions)
	s.logger.Debug("generating story part",
		zap.String("action", string(req.Action)),
		zap.String("length", string(req.Inputs.Length)),
		zap.Int("history_parts", len(req.History)),
		zap.Int("prompt_chars", len(prompt)),
	)

	text, err := s.writer.Write(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating %s part: %w", req.Action, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", entities.ErrEmptyGeneration
	}

	s.logger.Info("story part generated",
		zap.String("action", string(req.Action)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}
