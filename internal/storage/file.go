package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"radaquest/internal/models"
)

// FileStore persists the progress snapshot as one JSON file per storage
// key under a directory, mirroring the browser's key-value storage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed progress store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the newest available snapshot, trying the current key first
// and the legacy key second. It returns (nil, nil) when nothing is saved.
func (s *FileStore) Load() (*models.UserProgress, error) {
	for _, key := range ReadKeys() {
		data, err := os.ReadFile(s.path(key))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read progress file: %w", err)
		}

		var progress models.UserProgress
		if err := json.Unmarshal(data, &progress); err != nil {
			return nil, fmt.Errorf("failed to parse progress under key %q: %w", key, err)
		}
		return &progress, nil
	}
	return nil, nil
}

// Save serializes the full progress under the current key
func (s *FileStore) Save(progress models.UserProgress) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create progress directory: %w", err)
	}
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}
	if err := os.WriteFile(s.path(ProgressKey), data, 0o644); err != nil {
		return fmt.Errorf("failed to write progress file: %w", err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
