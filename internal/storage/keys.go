// Package storage provides the progress persistence backends. Every store
// is best-effort: callers treat load failures as absent progress and never
// block on a failed save.
package storage

// Storage keys for the persisted progress snapshot. ProgressKey is the
// current name; LegacyProgressKey was written by earlier releases and is
// still read as a fallback.
const (
	ProgressKey       = "radaquest-progress"
	LegacyProgressKey = "cyberquest-progress"
)

// ReadKeys returns the keys a store should try in order when loading
func ReadKeys() []string {
	return []string{ProgressKey, LegacyProgressKey}
}
