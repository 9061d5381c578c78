package customobjects

//go:generate mockgen -destination=mock/mock.go -package=mockcustomobjects -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
)

// Snapshot is every user-created object for one game profile
type Snapshot struct {
	Characters []*moddable.Character
	CustomMods []*moddable.CustomMod
}

// Repository persists user-created moddable objects
type Repository interface {
	// Load returns the stored snapshot; an absent store is an empty snapshot
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, snapshot *Snapshot) error
}
