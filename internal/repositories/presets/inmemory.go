package presets

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the preset repository
// Useful for testing and development
type InMemoryRepository struct {
	mu      sync.RWMutex
	presets map[string]*preset.ModPreset
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		presets: make(map[string]*preset.ModPreset),
	}
}

// List returns copies of all presets ordered by index
func (r *InMemoryRepository) List(ctx context.Context) ([]*preset.ModPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*preset.ModPreset, 0, len(r.presets))
	for _, p := range r.presets {
		result = append(result, p.Clone())
	}
	preset.SortByIndex(result)
	return result, nil
}

// Get retrieves a copy of a preset
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*preset.ModPreset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.presets[name]
	if !exists {
		return nil, apperr.PresetNotFound(name)
	}
	return p.Clone(), nil
}

// Save stores a copy of the preset
func (r *InMemoryRepository) Save(ctx context.Context, p *preset.ModPreset) error {
	if p == nil {
		return apperr.InvalidArgument("preset cannot be nil")
	}
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.presets[p.Name] = p.Clone()
	return nil
}

// SaveAll stores copies of all presets
func (r *InMemoryRepository) SaveAll(ctx context.Context, presets []*preset.ModPreset) error {
	for _, p := range presets {
		if p == nil {
			return apperr.InvalidArgument("preset cannot be nil")
		}
		if err := ValidateName(p.Name); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range presets {
		r.presets[p.Name] = p.Clone()
	}
	return nil
}

// Rename moves a preset to a new name
func (r *InMemoryRepository) Rename(ctx context.Context, oldName, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.presets[oldName]
	if !exists {
		return apperr.PresetNotFound(oldName)
	}
	if _, taken := r.presets[newName]; taken && !strings.EqualFold(oldName, newName) {
		return apperr.DuplicatePresetName(newName)
	}

	delete(r.presets, oldName)
	p.Name = newName
	r.presets[newName] = p
	return nil
}

// Delete removes a preset
func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.presets[name]; !exists {
		return apperr.PresetNotFound(name)
	}
	delete(r.presets, name)
	return nil
}
