package history

import (
	"context"
	"slices"
	"sync"
	"time"
)

// DefaultMaxRuns bounds a MemoryStore; the oldest runs are evicted first.
const DefaultMaxRuns = 1000

// MemoryStore implements Store in process memory.
// All data is lost when the process exits.
type MemoryStore struct {
	runs    []*Run
	maxRuns int
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{maxRuns: DefaultMaxRuns}
}

// RecordRun stores a copy of run.
func (m *MemoryStore) RecordRun(ctx context.Context, run *Run) error {
	if err := run.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *run
	m.runs = append(m.runs, &stored)
	if len(m.runs) > m.maxRuns {
		m.runs = slices.Delete(m.runs, 0, len(m.runs)-m.maxRuns)
	}
	return nil
}

// ListRuns returns copies of the stored runs, newest first.
func (m *MemoryStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.runs)
	if limit > 0 {
		n = min(n, limit)
	}
	out := make([]*Run, 0, n)
	for i := len(m.runs) - 1; i >= 0 && len(out) < n; i-- {
		r := *m.runs[i]
		out = append(out, &r)
	}
	return out, nil
}

// PruneRuns deletes runs started before the cutoff.
func (m *MemoryStore) PruneRuns(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.runs)
	m.runs = slices.DeleteFunc(m.runs, func(r *Run) bool {
		return r.StartedAt.Before(before)
	})
	return int64(n - len(m.runs)), nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
