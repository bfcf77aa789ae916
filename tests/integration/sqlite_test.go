package integration

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/mocks"
	"github.com/ersonp/story-core/internal/domain/services"
)

func TestSQLiteIntegration_SessionSurvivesReopen(t *testing.T) {
	skipShort(t)

	tmpDir := t.TempDir()
	ctx := t.Context()
	writer := &mocks.StoryWriter{Text: "The lamp flickered."}

	repo := openFileStore(t, tmpDir)
	sessions := services.NewSessionService(repo, services.NewWriterService(writer, nil), nil)

	story, err := sessions.Start(ctx, entities.StoryInputs{
		Characters: "Mira",
		Setting:    "a lighthouse",
		Genre:      "Mystery",
		Length:     entities.LengthShort,
		Language:   "English",
	})
	require.NoError(t, err)

	_, err = sessions.Continue(ctx, story.ID, "the keeper vanishes")
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = os.Stat(filepath.Join(tmpDir, "stories.db"))
	require.NoError(t, err, "database file should exist")

	// Reopen and finish the story from the persisted history.
	repo = openFileStore(t, tmpDir)
	defer repo.Close()
	sessions = services.NewSessionService(repo, services.NewWriterService(writer, nil), nil)

	part, err := sessions.End(ctx, story.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, part.Index)
	assert.Contains(t, writer.LastPrompt(), "The lamp flickered.\n\nThe lamp flickered.")

	found, err := sessions.Get(ctx, story.ID)
	require.NoError(t, err)
	assert.True(t, found.Finished)
	require.Len(t, found.Parts, 3)
	assert.Equal(t, "the keeper vanishes", found.Parts[1].Instructions)

	_, err = sessions.Continue(ctx, story.ID, "")
	assert.ErrorIs(t, err, entities.ErrStoryFinished)

	history, err := sessions.History(ctx, story.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entities.AuditStoryEnded, history[0].Action)
}

func TestSQLiteIntegration_ConcurrentStories(t *testing.T) {
	skipShort(t)

	repo := openFileStore(t, t.TempDir())
	defer repo.Close()

	ctx := t.Context()
	sessions := services.NewSessionService(repo, services.NewWriterService(&mocks.StoryWriter{Text: "part"}, nil), nil)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			story, err := sessions.Start(ctx, entities.StoryInputs{
				Characters: "Kai",
				Setting:    "Mars",
				Genre:      "Sci-Fi",
				Length:     entities.LengthMedium,
				Language:   "English",
			})
			if err != nil {
				errs <- err
				return
			}
			_, err = sessions.Continue(ctx, story.ID, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	count, err := repo.CountStories(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestSQLiteIntegration_SameStoryRace(t *testing.T) {
	skipShort(t)

	tests := []struct {
		name    string
		actions [2]entities.Action
	}{
		{name: "continue and end", actions: [2]entities.Action{entities.ActionContinue, entities.ActionEnd}},
		{name: "two ends", actions: [2]entities.Action{entities.ActionEnd, entities.ActionEnd}},
		{name: "two continues", actions: [2]entities.Action{entities.ActionContinue, entities.ActionContinue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			repo := openFileStore(t, t.TempDir())
			defer repo.Close()

			writer := &mocks.StoryWriter{Text: "A gust of wind."}
			sessions := services.NewSessionService(repo, services.NewWriterService(writer, nil), nil)

			story, err := sessions.Start(ctx, entities.StoryInputs{
				Characters: "Mira",
				Setting:    "a lighthouse",
				Genre:      "Mystery",
				Length:     entities.LengthShort,
				Language:   "English",
			})
			require.NoError(t, err)

			// Hold both generations until each request has loaded the story.
			writer.Gate = make(chan struct{})
			errs := make([]error, 2)
			var wg sync.WaitGroup
			for i, action := range tt.actions {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if action == entities.ActionEnd {
						_, errs[i] = sessions.End(ctx, story.ID)
					} else {
						_, errs[i] = sessions.Continue(ctx, story.ID, "")
					}
				}()
			}
			require.Eventually(t, func() bool { return writer.Calls() == 3 }, 5*time.Second, time.Millisecond)
			close(writer.Gate)
			wg.Wait()

			var failed int
			for _, err := range errs {
				if err != nil {
					failed++
					assert.True(t,
						errors.Is(err, entities.ErrPartConflict) || errors.Is(err, entities.ErrStoryFinished),
						"unexpected error: %v", err)
				}
			}
			assert.Equal(t, 1, failed, "exactly one request must lose")

			found, err := sessions.Get(ctx, story.ID)
			require.NoError(t, err)
			require.Len(t, found.Parts, 2)
			assert.Equal(t, found.Parts[1].Action == entities.ActionEnd, found.Finished)

			if found.Finished {
				_, err = sessions.Continue(ctx, story.ID, "")
				assert.ErrorIs(t, err, entities.ErrStoryFinished)
			}
		})
	}
}
