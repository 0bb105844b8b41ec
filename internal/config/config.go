package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// StorageBackend selects the progress store: file, sqlite, postgres or mysql
	StorageBackend string

	// DatabasePath is the SQLite file location
	DatabasePath string

	// DatabaseURL is the DSN for PostgreSQL/MySQL backends
	DatabaseURL string

	// ProgressDir is where the file store keeps progress snapshots
	ProgressDir string
}

// Load reads configuration from the environment, honouring a local .env
// file when present, with sensible defaults
func Load() *Config {
	// Missing .env is fine, the environment wins either way
	_ = godotenv.Load()

	return &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DatabasePath:   getEnv("DB_PATH", "./radaquest.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		ProgressDir:    getEnv("PROGRESS_DIR", "./data"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
