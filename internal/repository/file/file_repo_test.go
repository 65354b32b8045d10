package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/file"
)

func TestFileBlobRepository_Directory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	repo := file.NewFileBlobRepository(dir)

	_, err := repo.Load(ctx, "workoutTrackerData")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Save(ctx, "workoutTrackerData", []byte(`[1]`)))
	require.NoError(t, repo.Save(ctx, "workoutTrackerData", []byte(`[1,2]`)))

	data, err := repo.Load(ctx, "workoutTrackerData")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data))

	_, err = os.Stat(filepath.Join(dir, "workoutTrackerData.json"))
	assert.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, ".blob-*"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files are cleaned up")
}

func TestFileBlobRepository_ExplicitFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "workouts.json")
	repo := file.NewFileBlobRepository(path)

	require.NoError(t, repo.Save(ctx, "any/key", []byte(`{}`)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
	assert.NoError(t, repo.Close(ctx))
}
