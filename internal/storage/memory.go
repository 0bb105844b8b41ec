package storage

import (
	"encoding/json"

	"radaquest/internal/models"
)

// MemoryStore keeps the snapshot in memory. It backs tests and sessions
// that should not touch disk.
type MemoryStore struct {
	snapshots map[string][]byte
}

// NewMemoryStore creates an empty in-memory progress store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Load returns the stored snapshot, honouring the legacy key fallback
func (s *MemoryStore) Load() (*models.UserProgress, error) {
	for _, key := range ReadKeys() {
		data, ok := s.snapshots[key]
		if !ok {
			continue
		}
		var progress models.UserProgress
		if err := json.Unmarshal(data, &progress); err != nil {
			return nil, err
		}
		return &progress, nil
	}
	return nil, nil
}

// Save serializes the progress under the current key
func (s *MemoryStore) Save(progress models.UserProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	s.snapshots[ProgressKey] = data
	return nil
}

// SeedRaw stores a raw payload under a key, used by tests to simulate
// legacy or corrupt snapshots
func (s *MemoryStore) SeedRaw(key string, payload []byte) {
	s.snapshots[key] = payload
}
