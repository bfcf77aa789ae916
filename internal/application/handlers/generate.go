package handlers

import (
	"context"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/services"
)

// GenerateHandler serves stateless generation where the caller keeps the
// story history.
type GenerateHandler struct {
	writer *services.WriterService
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(writer *services.WriterService) *GenerateHandler {
	return &GenerateHandler{writer: writer}
}

// Available reports whether a story model is configured.
func (h *GenerateHandler) Available() bool {
	return h.writer.Available()
}

// GenerateInput is a stateless generation request.
type GenerateInput struct {
	Action       entities.Action       `json:"action"`
	Inputs       *entities.StoryInputs `json:"inputs"`
	History      []string              `json:"history"`
	Instructions string                `json:"instructions"`
}

// GenerateResult carries one generated part.
type GenerateResult struct {
	StoryPart string `json:"story_part"`
}

// Handle validates in and generates the requested part.
func (h *GenerateHandler) Handle(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	if !h.writer.Available() {
		return nil, entities.ErrWriterUnavailable
	}
	if in.Action == "" || in.Inputs == nil || *in.Inputs == (entities.StoryInputs{}) {
		return nil, &ValidationError{Message: "Missing action or inputs in request"}
	}
	if !in.Action.IsValid() {
		return nil, &ValidationError{Message: "Invalid action specified"}
	}

	text, err := h.writer.GeneratePart(ctx, services.GenerateRequest{
		Action:       in.Action,
		Inputs:       *in.Inputs,
		History:      in.History,
		Instructions: in.Instructions,
	})
	if err != nil {
		return nil, fromMissingFields(err, "Missing required input field(s) for starting story: ")
	}

	return &GenerateResult{StoryPart: text}, nil
}
