package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/internal/models"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	original := models.DefaultState(time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC))
	original.DarkMode = true
	started := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	original.Tasks[0].Status = models.StatusInProgress
	original.Tasks[0].StartTime = &started
	original.Tasks[0].ActualTime = 2.5

	require.NoError(t, store.Save(original))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original, loaded)
}

func TestFileStore_MissingFileFallsBack(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st, "a missing snapshot means defaults, not an error")
}

func TestFileStore_MalformedBlobFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st, "malformed state is recovered silently")
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(models.DefaultState(time.Now())))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
