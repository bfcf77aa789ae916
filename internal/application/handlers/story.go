package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/services"
)

// Export formats.
const (
	ExportJSON     = "json"
	ExportMarkdown = "markdown"
)

// StoryHandler handles persisted story operations at the application layer.
type StoryHandler struct {
	sessions *services.SessionService
}

// NewStoryHandler creates a new StoryHandler.
func NewStoryHandler(sessions *services.SessionService) *StoryHandler {
	return &StoryHandler{
		sessions: sessions,
	}
}

// StoryListResult contains the result of listing stories.
type StoryListResult struct {
	Stories []*entities.Story `json:"stories"`
	Total   int               `json:"total"` // all stored stories
}

// ContinueInput carries optional direction for the next part.
type ContinueInput struct {
	Instructions string `json:"instructions"`
}

// HandleStart starts a new story.
func (h *StoryHandler) HandleStart(ctx context.Context, inputs entities.StoryInputs) (*entities.Story, error) {
	story, err := h.sessions.Start(ctx, inputs)
	if err != nil {
		return nil, fromMissingFields(err, "Missing required input field(s) for starting story: ")
	}
	return story, nil
}

// HandleContinue generates the next part of a story.
func (h *StoryHandler) HandleContinue(ctx context.Context, id string, in ContinueInput) (*entities.StoryPart, error) {
	return h.sessions.Continue(ctx, id, strings.TrimSpace(in.Instructions))
}

// HandleEnd generates the concluding part of a story.
func (h *StoryHandler) HandleEnd(ctx context.Context, id string) (*entities.StoryPart, error) {
	return h.sessions.End(ctx, id)
}

// HandleGet returns a story with its parts.
func (h *StoryHandler) HandleGet(ctx context.Context, id string) (*entities.Story, error) {
	return h.sessions.Get(ctx, id)
}

// HandleList returns one page of story headers. Total counts every
// stored story, not just the page.
func (h *StoryHandler) HandleList(ctx context.Context, limit, offset int) (*StoryListResult, error) {
	stories, err := h.sessions.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := h.sessions.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &StoryListResult{
		Stories: stories,
		Total:   total,
	}, nil
}

// HandleDelete removes a story.
func (h *StoryHandler) HandleDelete(ctx context.Context, id string) error {
	return h.sessions.Delete(ctx, id)
}

// HandleHistory returns the audit log of a story.
func (h *StoryHandler) HandleHistory(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	return h.sessions.History(ctx, id)
}

// HandleExport renders a story as JSON or Markdown.
func (h *StoryHandler) HandleExport(ctx context.Context, id, format string) ([]byte, error) {
	story, err := h.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case ExportJSON, "":
		data, err := json.MarshalIndent(story, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding story: %w", err)
		}
		return append(data, '\n'), nil
	case ExportMarkdown, "md":
		return []byte(RenderMarkdown(story)), nil
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported export format %q (use json or markdown)", format)}
	}
}

// RenderMarkdown renders a story as a Markdown document.
func RenderMarkdown(story *entities.Story) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", markdownTitle(story.Inputs))
	fmt.Fprintf(&b, "- **Genre:** %s\n", story.Inputs.Genre)
	fmt.Fprintf(&b, "- **Setting:** %s\n", story.Inputs.Setting)
	fmt.Fprintf(&b, "- **Language:** %s\n", story.Inputs.Language)
	if story.Finished {
		b.WriteString("- **Status:** finished\n")
	} else {
		b.WriteString("- **Status:** in progress\n")
	}

	for _, part := range story.Parts {
		switch part.Action {
		case entities.ActionStart:
			b.WriteString("\n## Beginning\n\n")
		case entities.ActionEnd:
			b.WriteString("\n## Conclusion\n\n")
		default:
			fmt.Fprintf(&b, "\n## Part %d\n\n", part.Index+1)
		}
		b.WriteString(strings.TrimSpace(part.Text))
		b.WriteString("\n")
	}

	return b.String()
}

func markdownTitle(in entities.StoryInputs) string {
	if in.Genre == "" {
		return in.Characters
	}
	return fmt.Sprintf("%s: %s", in.Genre, in.Characters)
}
