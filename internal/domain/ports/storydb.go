package ports

import (
	"context"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// StoryStore defines persistence for multi-part stories.
type StoryStore interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveStory inserts or updates the story header (not its parts).
	SaveStory(ctx context.Context, story *entities.Story) error

	// FindStory returns the story with all parts in order.
	// Returns entities.ErrStoryNotFound if it does not exist.
	FindStory(ctx context.Context, id string) (*entities.Story, error)

	// ListStories returns story headers, most recently updated first.
	ListStories(ctx context.Context, limit, offset int) ([]*entities.Story, error)

	// CountStories returns the number of stored stories.
	CountStories(ctx context.Context) (int, error)

	// AppendPart stores a new part and touches the story's updated time.
	// An ActionEnd part also marks the story finished. Returns
	// entities.ErrStoryFinished for a finished story and
	// entities.ErrPartConflict when part.Index is not the next index.
	AppendPart(ctx context.Context, part *entities.StoryPart) error

	// DeleteStory removes a story and its parts.
	// Returns entities.ErrStoryNotFound if it does not exist.
	DeleteStory(ctx context.Context, id string) error

	// LogAction logs an action to the audit log.
	LogAction(ctx context.Context, action string, storyID string, details map[string]any) error

	// FindAuditLog returns audit entries for a story, newest first.
	FindAuditLog(ctx context.Context, storyID string) ([]entities.AuditEntry, error)
}
