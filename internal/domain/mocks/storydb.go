package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// StoryStore is an in-memory implementation of ports.StoryStore.
type StoryStore struct {
	Err error

	mu      sync.Mutex
	Stories map[string]*entities.Story
	Audit   []entities.AuditEntry
}

// NewStoryStore creates a new mock StoryStore.
func NewStoryStore() *StoryStore {
	return &StoryStore{
		Stories: make(map[string]*entities.Story),
	}
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *StoryStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the database connection.
func (m *StoryStore) Close() error {
	return nil
}

// SaveStory stores a copy of the story header.
func (m *StoryStore) SaveStory(_ context.Context, story *entities.Story) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *story
	if existing, ok := m.Stories[story.ID]; ok {
		stored.Parts = existing.Parts
	} else {
		stored.Parts = nil
	}
	m.Stories[story.ID] = &stored
	return nil
}

// FindStory returns a copy of the story with its parts.
func (m *StoryStore) FindStory(_ context.Context, id string) (*entities.Story, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	story, ok := m.Stories[id]
	if !ok {
		return nil, entities.ErrStoryNotFound
	}
	found := *story
	found.Parts = append([]entities.StoryPart(nil), story.Parts...)
	return &found, nil
}

// ListStories returns story headers, most recently updated first.
func (m *StoryStore) ListStories(_ context.Context, limit, offset int) ([]*entities.Story, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*entities.Story, 0, len(m.Stories))
	for _, s := range m.Stories {
		header := *s
		header.Parts = nil
		result = append(result, &header)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	if offset >= len(result) {
		return []*entities.Story{}, nil
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// CountStories returns the number of stored stories.
func (m *StoryStore) CountStories(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Stories), nil
}

// AppendPart appends a part to its story. It rejects finished stories and
// parts whose index does not follow the stored ones.
func (m *StoryStore) AppendPart(_ context.Context, part *entities.StoryPart) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	story, ok := m.Stories[part.StoryID]
	if !ok {
		return entities.ErrStoryNotFound
	}
	if story.Finished {
		return entities.ErrStoryFinished
	}
	if part.Index != len(story.Parts) {
		return entities.ErrPartConflict
	}
	story.Parts = append(story.Parts, *part)
	story.UpdatedAt = part.CreatedAt
	if part.Action == entities.ActionEnd {
		story.Finished = true
	}
	return nil
}

// DeleteStory removes a story.
func (m *StoryStore) DeleteStory(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Stories[id]; !ok {
		return entities.ErrStoryNotFound
	}
	delete(m.Stories, id)
	return nil
}

// LogAction records an audit entry.
func (m *StoryStore) LogAction(_ context.Context, action string, storyID string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:        int64(len(m.Audit) + 1),
		Action:    action,
		StoryID:   storyID,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// FindAuditLog returns audit entries for a story, newest first.
func (m *StoryStore) FindAuditLog(_ context.Context, storyID string) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []entities.AuditEntry
	for i := len(m.Audit) - 1; i >= 0; i-- {
		if m.Audit[i].StoryID == storyID {
			entries = append(entries, m.Audit[i])
		}
	}
	return entries, nil
}

// AuditActions returns the recorded actions in order.
func (m *StoryStore) AuditActions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions := make([]string, 0, len(m.Audit))
	for _, e := range m.Audit {
		actions = append(actions, e.Action)
	}
	return actions
}
