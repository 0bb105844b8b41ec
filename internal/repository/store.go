package repository

import (
	"radaquest/internal/config"
	"radaquest/internal/database"
	"radaquest/internal/service"
	"radaquest/internal/storage"
)

// NewStoreFromConfig wires the configured persistence backend. The file
// backend needs no database; the SQL backends share the dialect layer.
func NewStoreFromConfig(cfg *config.Config) (service.ProgressStore, error) {
	if cfg.StorageBackend == "" || cfg.StorageBackend == "file" {
		return storage.NewFileStore(cfg.ProgressDir), nil
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewProgressRepository(db), nil
}
