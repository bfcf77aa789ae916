// Package sqlite provides a SQLite implementation of the StoryStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/infrastructure/config"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.StoryStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	// Connection pragmas go in the DSN so that every pooled connection
	// enforces foreign keys and waits on locks. Immediate transactions take
	// the write lock up front.
	dsn := cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	// WAL is a property of the database file, so one statement is enough.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Story headers (user inputs and status)
	CREATE TABLE IF NOT EXISTS stories (
		id TEXT PRIMARY KEY,
		characters TEXT NOT NULL,
		setting TEXT NOT NULL,
		genre TEXT NOT NULL,
		length TEXT NOT NULL,
		language TEXT NOT NULL,
		other_details TEXT,
		finished INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_stories_updated ON stories(updated_at);

	-- Generated parts, in order
	CREATE TABLE IF NOT EXISTS story_parts (
		id TEXT PRIMARY KEY,
		story_id TEXT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
		idx INTEGER NOT NULL,
		action TEXT NOT NULL,
		instructions TEXT,
		text TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(story_id, idx)
	);
	CREATE INDEX IF NOT EXISTS idx_story_parts_story ON story_parts(story_id);

	-- Audit log (tracks all actions, kept after a story is deleted)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		story_id TEXT,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_story ON audit_log(story_id);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveStory saves or updates a story header. Parts are stored with AppendPart.
func (r *Repository) SaveStory(ctx context.Context, story *entities.Story) error {
	if story.ID == "" {
		story.ID = generateUUID()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = timeNow()
	}
	if story.UpdatedAt.IsZero() {
		story.UpdatedAt = story.CreatedAt
	}

	query := `
		INSERT INTO stories (id, characters, setting, genre, length, language, other_details, finished, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			characters = excluded.characters,
			setting = excluded.setting,
			genre = excluded.genre,
			length = excluded.length,
			language = excluded.language,
			other_details = excluded.other_details,
			finished = excluded.finished,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		story.ID,
		story.Inputs.Characters,
		story.Inputs.Setting,
		story.Inputs.Genre,
		string(story.Inputs.Length),
		story.Inputs.Language,
		nullString(story.Inputs.OtherDetails),
		story.Finished,
		story.CreatedAt,
		story.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting story: %w", err)
	}
	return nil
}

// FindStory returns a story with all of its parts in order.
func (r *Repository) FindStory(ctx context.Context, id string) (*entities.Story, error) {
	query := `
		SELECT id, characters, setting, genre, length, language, other_details, finished, created_at, updated_at
		FROM stories
		WHERE id = ?
	`
	story, err := scanStory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrStoryNotFound
	}
	if err != nil {
		return nil, err
	}

	parts, err := r.findParts(ctx, id)
	if err != nil {
		return nil, err
	}
	story.Parts = parts

	return story, nil
}

// ListStories returns story headers, most recently updated first.
func (r *Repository) ListStories(ctx context.Context, limit, offset int) ([]*entities.Story, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `
		SELECT id, characters, setting, genre, length, language, other_details, finished, created_at, updated_at
		FROM stories
		ORDER BY updated_at DESC, id
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying stories: %w", err)
	}
	defer rows.Close()

	stories := []*entities.Story{}
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stories: %w", err)
	}
	return stories, nil
}

// AppendPart stores a part and touches its story. An end part also marks
// the story finished. The part index must equal the number of parts
// already stored; otherwise another writer got there first and
// entities.ErrPartConflict is returned. Appending to a finished story
// returns entities.ErrStoryFinished.
func (r *Repository) AppendPart(ctx context.Context, part *entities.StoryPart) error {
	if part.ID == "" {
		part.ID = generateUUID()
	}
	if part.CreatedAt.IsZero() {
		part.CreatedAt = timeNow()
	}

	// The DSN asks for immediate transactions, so the checks below run
	// under the database write lock.
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var finished bool
	err = tx.QueryRowContext(ctx, `SELECT finished FROM stories WHERE id = ?`, part.StoryID).Scan(&finished)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrStoryNotFound
	}
	if err != nil {
		return fmt.Errorf("reading story state: %w", err)
	}
	if finished {
		return entities.ErrStoryFinished
	}

	var count int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM story_parts WHERE story_id = ?`, part.StoryID).Scan(&count)
	if err != nil {
		return fmt.Errorf("counting story parts: %w", err)
	}
	if count != part.Index {
		return entities.ErrPartConflict
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE stories
		SET updated_at = ?, finished = CASE WHEN ? THEN 1 ELSE finished END
		WHERE id = ?
	`, part.CreatedAt, part.Action == entities.ActionEnd, part.StoryID)
	if err != nil {
		return fmt.Errorf("updating story: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO story_parts (id, story_id, idx, action, instructions, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		part.ID,
		part.StoryID,
		part.Index,
		string(part.Action),
		nullString(part.Instructions),
		part.Text,
		part.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting story part: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing story part: %w", err)
	}
	return nil
}

// DeleteStory removes a story and, by cascade, its parts.
func (r *Repository) DeleteStory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting story: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrStoryNotFound
	}
	return nil
}

// CountStories returns the number of stored stories.
func (r *Repository) CountStories(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting stories: %w", err)
	}
	return count, nil
}

func (r *Repository) findParts(ctx context.Context, storyID string) ([]entities.StoryPart, error) {
	query := `
		SELECT id, story_id, idx, action, instructions, text, created_at
		FROM story_parts
		WHERE story_id = ?
		ORDER BY idx
	`
	rows, err := r.db.QueryContext(ctx, query, storyID)
	if err != nil {
		return nil, fmt.Errorf("querying story parts: %w", err)
	}
	defer rows.Close()

	var parts []entities.StoryPart
	for rows.Next() {
		var part entities.StoryPart
		var action string
		var instructions sql.NullString
		if err := rows.Scan(
			&part.ID,
			&part.StoryID,
			&part.Index,
			&action,
			&instructions,
			&part.Text,
			&part.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning story part: %w", err)
		}
		part.Action = entities.Action(action)
		part.Instructions = instructions.String
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating story parts: %w", err)
	}
	return parts, nil
}

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, action string, storyID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `INSERT INTO audit_log (action, story_id, details, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, action, nullString(storyID), detailsJSON, timeNow())
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit log entries for a story, newest first.
func (r *Repository) FindAuditLog(ctx context.Context, storyID string) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, story_id, details, created_at
		FROM audit_log
		WHERE story_id = ?
		ORDER BY id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, storyID)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []entities.AuditEntry
	for rows.Next() {
		var entry entities.AuditEntry
		var id, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&id,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.StoryID = id.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling audit details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit log: %w", err)
	}
	return entries, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStory(row rowScanner) (*entities.Story, error) {
	var story entities.Story
	var length string
	var otherDetails sql.NullString

	err := row.Scan(
		&story.ID,
		&story.Inputs.Characters,
		&story.Inputs.Setting,
		&story.Inputs.Genre,
		&length,
		&story.Inputs.Language,
		&otherDetails,
		&story.Finished,
		&story.CreatedAt,
		&story.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning story: %w", err)
	}

	story.Inputs.Length = entities.StoryLength(length)
	story.Inputs.OtherDetails = otherDetails.String
	return &story, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
