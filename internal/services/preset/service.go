// Package preset is the preset store: named, ordered snapshots of enabled
// mods kept consistent with the mods directory through reconciliation.
package preset

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
	presetdomain "github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/inventory"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
	"github.com/KirkDiggler/mod-preset-manager/internal/reconcile"
	presetRepo "github.com/KirkDiggler/mod-preset-manager/internal/repositories/presets"
)

// ObjectResolver maps a character folder to its moddable object
type ObjectResolver interface {
	ObjectByFolder(folder string) (moddable.Object, bool)
}

// Service defines the preset store
type Service interface {
	// Load reads every preset, reconciles it against the mods directory and
	// persists whatever reconciliation changed
	Load(ctx context.Context) error

	List() []*presetdomain.ModPreset
	Get(name string) (*presetdomain.ModPreset, error)

	CreatePreset(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error)
	CreatePresetFromEnabled(ctx context.Context, name string) (*presetdomain.ModPreset, error)
	DuplicatePreset(ctx context.Context, name, newName string) (*presetdomain.ModPreset, error)

	AddMods(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error)
	// RemoveMods removes entries by mod id; ids not in the preset are ignored
	RemoveMods(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error)
	SetEntryPreferences(ctx context.Context, name, modID string, preferences map[string]string) (*presetdomain.ModPreset, error)
	SetReadOnly(ctx context.Context, name string, readOnly bool) (*presetdomain.ModPreset, error)

	RenamePreset(ctx context.Context, oldName, newName string) (*presetdomain.ModPreset, error)
	// ReorderPresets assigns new indices; the result must be exactly 0..n-1
	ReorderPresets(ctx context.Context, order map[string]int) error
	DeletePreset(ctx context.Context, name string) error

	// Reconcile runs a reconciliation pass over every preset
	Reconcile(ctx context.Context) ([]*ReconcileSummary, error)
	ApplyPreset(ctx context.Context, name string) (*presetdomain.ApplyReport, error)

	// DetachModsUnder marks every entry stored under folder as missing
	DetachModsUnder(ctx context.Context, folder string) (int, error)
}

// ReconcileSummary describes one preset after a reconciliation pass
type ReconcileSummary struct {
	PresetName  string
	Entries     int
	Missing     int
	Healed      int
	Changed     bool
	Ambiguities []presetdomain.Ambiguity
}

// ServiceConfig holds configuration for the preset service
type ServiceConfig struct {
	Repository   presetRepo.Repository // Required
	Provider     inventory.Provider    // Required
	Sink         inventory.Sink        // Required
	Objects      ObjectResolver        // Optional; without it every character takes one mod
	Engine       *reconcile.Engine
	TimeProvider TimeProvider
	Logger       *logger.Logger
}

type service struct {
	repo     presetRepo.Repository
	provider inventory.Provider
	sink     inventory.Sink
	objects  ObjectResolver
	engine   *reconcile.Engine
	clock    TimeProvider
	log      *logger.Logger

	mu sync.Mutex
	// keyed by lower-cased name; names are unique ignoring case
	presets map[string]*presetdomain.ModPreset
}

// NewService creates a preset service. Call Load before use.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Provider == nil {
		panic("inventory provider is required")
	}
	if cfg.Sink == nil {
		panic("enablement sink is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.Engine == nil {
		cfg.Engine = reconcile.NewEngine(cfg.Logger)
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = &RealTimeProvider{}
	}

	return &service{
		repo:     cfg.Repository,
		provider: cfg.Provider,
		sink:     cfg.Sink,
		objects:  cfg.Objects,
		engine:   cfg.Engine,
		clock:    cfg.TimeProvider,
		log:      cfg.Logger.Component("preset_service"),
		presets:  make(map[string]*presetdomain.ModPreset),
	}
}

func key(name string) string {
	return strings.ToLower(name)
}

// Load replaces the cached presets. Indices that are not dense are
// renumbered in their stored order. Nothing is cached unless the repaired
// presets were written back.
func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.List(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to list presets")
	}

	loaded := make(map[string]*presetdomain.ModPreset, len(stored))
	for _, p := range stored {
		if _, dup := loaded[key(p.Name)]; dup {
			return apperr.DuplicatePresetName(p.Name)
		}
		loaded[key(p.Name)] = p
	}

	dirty := make(map[string]bool)
	for _, p := range normalizeIndices(stored) {
		dirty[key(p.Name)] = true
	}

	summaries, reconciled, err := s.reconcilePresets(ctx, stored)
	if err != nil {
		return err
	}
	for _, p := range reconciled {
		loaded[key(p.Name)] = p
		dirty[key(p.Name)] = true
	}

	if err := s.saveDirty(ctx, loaded, dirty); err != nil {
		return err
	}
	s.presets = loaded

	missing := 0
	for _, summary := range summaries {
		missing += summary.Missing
	}
	s.log.Info().Int("presets", len(loaded)).Int("missing_entries", missing).Msg("presets loaded")
	return nil
}

// saveDirty writes the presets named in dirty in one batch
func (s *service) saveDirty(ctx context.Context, presets map[string]*presetdomain.ModPreset, dirty map[string]bool) error {
	if len(dirty) == 0 {
		return nil
	}
	batch := make([]*presetdomain.ModPreset, 0, len(dirty))
	for k := range dirty {
		if p, ok := presets[k]; ok {
			batch = append(batch, p.Clone())
		}
	}
	presetdomain.SortByIndex(batch)
	return s.repo.SaveAll(ctx, batch)
}

func (s *service) List() []*presetdomain.ModPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *service) sortedLocked() []*presetdomain.ModPreset {
	out := make([]*presetdomain.ModPreset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *service) Get(name string) (*presetdomain.ModPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getLocked(name)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

func (s *service) getLocked(name string) (*presetdomain.ModPreset, error) {
	p, ok := s.presets[key(name)]
	if !ok {
		return nil, apperr.PresetNotFound(name)
	}
	return p, nil
}

// normalizeIndices renumbers presets 0..n-1 in index order, ties broken by
// name, and returns the presets whose index changed
func normalizeIndices(presets []*presetdomain.ModPreset) []*presetdomain.ModPreset {
	ordered := append([]*presetdomain.ModPreset(nil), presets...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Index != ordered[j].Index {
			return ordered[i].Index < ordered[j].Index
		}
		return ordered[i].Name < ordered[j].Name
	})

	var changed []*presetdomain.ModPreset
	for i, p := range ordered {
		if p.Index != i {
			p.Index = i
			changed = append(changed, p)
		}
	}
	return changed
}
