package history

import (
	"context"
	"fmt"
	"time"

	"mercator-hq/g8/pkg/config"
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Store persists directory render runs.
// Implementations must be safe for concurrent use.
type Store interface {
	// RecordRun persists a finished run.
	RecordRun(ctx context.Context, run *Run) error

	// ListRuns returns the most recent runs, newest first.
	// A limit of zero or less returns every run.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// PruneRuns deletes runs started before the cutoff and returns how
	// many were deleted.
	PruneRuns(ctx context.Context, before time.Time) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}

// Run is one directory render.
type Run struct {
	// ID is the run identifier.
	ID string `json:"id"`

	// Input is the template directory.
	Input string `json:"input"`

	// Output is the destination directory.
	Output string `json:"output"`

	// Status is StatusSuccess or StatusError.
	Status string `json:"status"`

	// Error holds the failure summary for failed runs.
	Error string `json:"error,omitempty"`

	// Files is the number of files written.
	Files int `json:"files"`

	// Fallbacks is the number of file names kept literally.
	Fallbacks int `json:"fallbacks"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

func (r *Run) validate() error {
	if r == nil {
		return fmt.Errorf("run cannot be nil")
	}
	if r.ID == "" {
		return fmt.Errorf("run id cannot be empty")
	}
	if r.Status != StatusSuccess && r.Status != StatusError {
		return fmt.Errorf("invalid run status %q", r.Status)
	}
	return nil
}

// Open creates the store selected by cfg.Backend.
func Open(cfg config.HistoryConfig) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "", "sqlite":
		return NewSQLiteStoreWithConfig(SQLiteStoreConfig{
			DBPath:      cfg.Path,
			BusyTimeout: cfg.BusyTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}
