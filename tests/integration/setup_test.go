package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/story-core/internal/infrastructure/config"
	"github.com/ersonp/story-core/internal/infrastructure/relationaldb/sqlite"
)

// openFileStore creates a story database file in dir.
func openFileStore(t *testing.T, dir string) *sqlite.Repository {
	t.Helper()

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: filepath.Join(dir, "stories.db")})
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}
