package entities

import "time"

// Audit actions recorded by the story store.
const (
	AuditStoryStarted   = "story_started"
	AuditStoryContinued = "story_continued"
	AuditStoryEnded     = "story_ended"
	AuditStoryDeleted   = "story_deleted"
)

// AuditEntry represents a logged action in the system.
type AuditEntry struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	StoryID   string         `json:"story_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
