package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"radaquest/internal/database"
	"radaquest/internal/models"
	"radaquest/internal/storage"
)

// ProgressRepository persists progress snapshots in a SQL database. It
// implements the session's ProgressStore capability.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Load reads the saved snapshot, trying the current storage key first and
// the legacy key second. It returns (nil, nil) when no snapshot exists.
func (r *ProgressRepository) Load() (*models.UserProgress, error) {
	query := r.db.Dialect.RewriteQuery(`
		SELECT payload FROM progress_snapshots WHERE storage_key = ?
	`)

	for _, key := range storage.ReadKeys() {
		var payload string
		err := r.db.QueryRow(query, key).Scan(&payload)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load progress snapshot: %w", err)
		}

		var progress models.UserProgress
		if err := json.Unmarshal([]byte(payload), &progress); err != nil {
			return nil, fmt.Errorf("failed to parse progress under key %q: %w", key, err)
		}
		return &progress, nil
	}
	return nil, nil
}

// Save upserts the full serialized progress under the current key
func (r *ProgressRepository) Save(progress models.UserProgress) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}

	query := r.db.Dialect.RewriteQuery(r.db.Dialect.UpsertSnapshotQuery())
	if _, err := r.db.Exec(query, storage.ProgressKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save progress snapshot: %w", err)
	}
	return nil
}
