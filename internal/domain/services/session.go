package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/ports"
)

// timeNow is a variable for testing purposes.
var timeNow = time.Now

// SessionService manages persisted multi-part stories.
type SessionService struct {
	store  ports.StoryStore
	writer *WriterService
	logger *zap.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(store ports.StoryStore, writer *WriterService, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		store:  store,
		writer: writer,
		logger: logger,
	}
}

// Start creates a story and generates its first part.
// Nothing is persisted if generation fails.
func (s *SessionService) Start(ctx context.Context, inputs entities.StoryInputs) (*entities.Story, error) {
	if missing := inputs.MissingStartFields(); len(missing) > 0 {
		return nil, &entities.MissingFieldsError{Fields: missing}
	}

	text, err := s.writer.GeneratePart(ctx, GenerateRequest{
		Action: entities.ActionStart,
		Inputs: inputs,
	})
	if err != nil {
		return nil, err
	}

	now := timeNow()
	story := &entities.Story{
		ID:        uuid.New().String(),
		Inputs:    inputs,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.SaveStory(ctx, story); err != nil {
		return nil, fmt.Errorf("saving story: %w", err)
	}

	part, err := s.appendPart(ctx, story, entities.ActionStart, "", text, now)
	if err != nil {
		return nil, err
	}
	story.Parts = append(story.Parts, *part)

	s.audit(ctx, entities.AuditStoryStarted, story.ID, map[string]any{
		"genre":    inputs.Genre,
		"length":   string(inputs.Length),
		"language": inputs.Language,
	})
	s.logger.Info("story started", zap.String("story_id", story.ID))
	return story, nil
}

// Continue generates the next part of an unfinished story.
func (s *SessionService) Continue(ctx context.Context, id, instructions string) (*entities.StoryPart, error) {
	return s.nextPart(ctx, id, entities.ActionContinue, instructions, entities.AuditStoryContinued)
}

// End generates the concluding part and marks the story finished.
func (s *SessionService) End(ctx context.Context, id string) (*entities.StoryPart, error) {
	return s.nextPart(ctx, id, entities.ActionEnd, "", entities.AuditStoryEnded)
}

// Get returns a story with all of its parts.
func (s *SessionService) Get(ctx context.Context, id string) (*entities.Story, error) {
	story, err := s.store.FindStory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding story %s: %w", id, err)
	}
	return story, nil
}

// List returns story headers, most recently updated first.
func (s *SessionService) List(ctx context.Context, limit, offset int) ([]*entities.Story, error) {
	stories, err := s.store.ListStories(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	return stories, nil
}

// Count returns the number of stored stories.
func (s *SessionService) Count(ctx context.Context) (int, error) {
	n, err := s.store.CountStories(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting stories: %w", err)
	}
	return n, nil
}

// Delete removes a story and its parts.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteStory(ctx, id); err != nil {
		return fmt.Errorf("deleting story %s: %w", id, err)
	}
	s.audit(ctx, entities.AuditStoryDeleted, id, nil)
	s.logger.Info("story deleted", zap.String("story_id", id))
	return nil
}

// History returns the audit log for a story, newest first.
func (s *SessionService) History(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	entries, err := s.store.FindAuditLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding audit log for %s: %w", id, err)
	}
	return entries, nil
}

func (s *SessionService) nextPart(ctx context.Context, id string, action entities.Action, instructions, auditAction string) (*entities.StoryPart, error) {
	story, err := s.store.FindStory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding story %s: %w", id, err)
	}
	if story.Finished {
		return nil, entities.ErrStoryFinished
	}

	text, err := s.writer.GeneratePart(ctx, GenerateRequest{
		Action:       action,
		Inputs:       story.Inputs,
		History:      story.History(),
		Instructions: instructions,
	})
	if err != nil {
		return nil, err
	}

	part, err := s.appendPart(ctx, story, action, instructions, text, timeNow())
	if err != nil {
		return nil, err
	}

	details := map[string]any{"index": part.Index}
	if instructions != "" {
		details["instructions"] = instructions
	}
	s.audit(ctx, auditAction, story.ID, details)
	s.logger.Info("story part added",
		zap.String("story_id", story.ID),
		zap.String("action", string(action)),
		zap.Int("index", part.Index),
	)
	return part, nil
}

func (s *SessionService) appendPart(ctx context.Context, story *entities.Story, action entities.Action, instructions, text string, now time.Time) (*entities.StoryPart, error) {
	part := &entities.StoryPart{
		ID:           uuid.New().String(),
		StoryID:      story.ID,
		Index:        len(story.Parts),
		Action:       action,
		Instructions: instructions,
		Text:         text,
		CreatedAt:    now,
	}
	if err := s.store.AppendPart(ctx, part); err != nil {
		return nil, fmt.Errorf("appending part %d to story %s: %w", part.Index, story.ID, err)
	}
	return part, nil
}

// audit failures are logged but never fail the request.
func (s *SessionService) audit(ctx context.Context, action, storyID string, details map[string]any) {
	if err := s.store.LogAction(ctx, action, storyID, details); err != nil {
		s.logger.Warn("writing audit log", zap.String("action", action), zap.Error(err))
	}
}
