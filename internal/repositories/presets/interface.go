package presets

//go:generate mockgen -destination=mock/mock.go -package=mockpresets -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
)

// Repository defines the interface for preset persistence
type Repository interface {
	// List returns every stored preset, ordered by index
	List(ctx context.Context) ([]*preset.ModPreset, error)

	// Get retrieves a preset by name
	Get(ctx context.Context, name string) (*preset.ModPreset, error)

	// Save creates or replaces a preset
	Save(ctx context.Context, p *preset.ModPreset) error

	// SaveAll replaces several presets; on failure no preset is left half written
	SaveAll(ctx context.Context, presets []*preset.ModPreset) error

	// Rename moves a preset to a new name
	Rename(ctx context.Context, oldName, newName string) error

	// Delete removes a preset
	Delete(ctx context.Context, name string) error
}
