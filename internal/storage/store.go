package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"chronos/internal/models"
)

// SnapshotStore persists the whole AppState as one opaque blob. Load
// returning (nil, nil) means "no usable snapshot" and the caller falls
// back to defaults; a malformed blob is downgraded to that same outcome
// and only logged.
type SnapshotStore interface {
	Load() (*models.AppState, error)
	Save(st *models.AppState) error
}

// FileStore keeps the snapshot as a JSON file, written atomically via a
// temp file + rename.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: filepath.Clean(path)}
}

func (f *FileStore) Load() (*models.AppState, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var st models.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("[storage][load] malformed snapshot at %s, falling back to defaults: %v", f.Path, err)
		return nil, nil
	}
	return &st, nil
}

func (f *FileStore) Save(st *models.AppState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}
