package customobjects

import (
	"context"
	"sync"

	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// InMemoryRepository keeps the snapshot in memory
// Useful for testing and development
type InMemoryRepository struct {
	mu       sync.Mutex
	snapshot *Snapshot
	saves    int
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{snapshot: &Snapshot{}}
}

// Load returns a copy of the stored snapshot
func (r *InMemoryRepository) Load(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSnapshot(r.snapshot), nil
}

// Save stores a copy of the snapshot
func (r *InMemoryRepository) Save(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return apperr.InvalidArgument("snapshot cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = cloneSnapshot(snapshot)
	r.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (r *InMemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func cloneSnapshot(s *Snapshot) *Snapshot {
	out := &Snapshot{}
	for _, c := range s.Characters {
		out.Characters = append(out.Characters, c.Clone())
	}
	for _, m := range s.CustomMods {
		out.CustomMods = append(out.CustomMods, m.Clone())
	}
	return out
}

var _ Repository = (*InMemoryRepository)(nil)
