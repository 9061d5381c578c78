package inventory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
	"github.com/KirkDiggler/mod-preset-manager/internal/uuid"
)

// ModConfigFileName is the per-mod file holding the stable mod id
const ModConfigFileName = ".jasm_mod_config.json"

// ModConfig is the persisted per-mod config document
type ModConfig struct {
	ID         string  `json:"Id"`
	CustomName *string `json:"CustomName,omitempty"`
	SourceURL  *string `json:"SourceUrl,omitempty"`
}

// FileSystemConfig holds configuration for the filesystem inventory
type FileSystemConfig struct {
	ModsDir       string
	UUIDGenerator uuid.Generator
	Logger        *logger.Logger
	// Concurrency bounds parallel character folder scans; 0 means 8
	Concurrency int
}

// FileSystem scans <ModsDir>/<character>/<mod> folders and toggles mods by
// renaming them with DisabledPrefix. It implements Provider and Sink.
type FileSystem struct {
	modsDir       string
	uuidGenerator uuid.Generator
	log           *logger.Logger
	concurrency   int

	mu   sync.Mutex
	last *Inventory
}

// NewFileSystem creates a filesystem inventory
func NewFileSystem(cfg *FileSystemConfig) *FileSystem {
	if cfg == nil {
		panic("FileSystemConfig cannot be nil")
	}
	if cfg.ModsDir == "" {
		panic("mods dir is required")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}

	return &FileSystem{
		modsDir:       cfg.ModsDir,
		uuidGenerator: cfg.UUIDGenerator,
		log:           cfg.Logger.Component("inventory"),
		concurrency:   cfg.Concurrency,
	}
}

// CurrentMods scans the mods directory. Character folders are scanned in
// parallel but the result is ordered by character folder then mod folder.
func (f *FileSystem) CurrentMods(ctx context.Context) (*Inventory, error) {
	characterDirs, err := os.ReadDir(f.modsDir)
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to read mods directory '%s'", f.modsDir).
			WithMeta("mods_dir", f.modsDir)
	}

	var characters []string
	for _, d := range characterDirs {
		if d.IsDir() {
			characters = append(characters, d.Name())
		}
	}
	sort.Strings(characters)

	results := make([][]Mod, len(characters))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, character := range characters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mods, err := f.scanCharacter(character)
			if err != nil {
				return err
			}
			results[i] = mods
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Mod
	for _, mods := range results {
		all = append(all, mods...)
	}

	inv := New(all)

	f.mu.Lock()
	f.last = inv
	f.mu.Unlock()

	f.log.Debug().Int("mods", inv.Len()).Int("characters", len(characters)).Msg("scanned mods directory")

	return inv, nil
}

func (f *FileSystem) scanCharacter(character string) ([]Mod, error) {
	dir := filepath.Join(f.modsDir, character)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to read character folder '%s'", dir).
			WithMeta("character", character)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	mods := make([]Mod, 0, len(names))
	for _, name := range names {
		modPath := filepath.Join(dir, name)
		cfg, err := f.ensureModConfig(modPath)
		if err != nil {
			return nil, err
		}
		mods = append(mods, Mod{
			ID:         cfg.ID,
			FullPath:   modPath,
			Character:  character,
			Enabled:    !hasDisabledPrefix(name),
			CustomName: cfg.CustomName,
			SourceURL:  cfg.SourceURL,
		})
	}
	return mods, nil
}

// ensureModConfig reads the mod's config file, writing a fresh id when the
// file is missing or carries an invalid one.
func (f *FileSystem) ensureModConfig(modPath string) (*ModConfig, error) {
	path := filepath.Join(modPath, ModConfigFileName)

	cfg := &ModConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			f.log.Warn().Err(jsonErr).Str("path", path).Msg("unreadable mod config, assigning new id")
			cfg = &ModConfig{}
		}
	case os.IsNotExist(err):
	default:
		return nil, apperr.PersistenceFailuref(err, "failed to read mod config '%s'", path)
	}

	if uuid.Valid(cfg.ID) {
		return cfg, nil
	}

	cfg.ID = f.uuidGenerator.New()
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, apperr.Wrap(err, "failed to marshal mod config")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to write mod config '%s'", path)
	}
	f.log.Debug().Str("mod_id", cfg.ID).Str("path", modPath).Msg("assigned mod id")
	return cfg, nil
}

// Enable renames a disabled mod folder back to its plain name
func (f *FileSystem) Enable(ctx context.Context, modID, character string) error {
	return f.toggle(ctx, modID, character, true)
}

// Disable prefixes the mod folder with DisabledPrefix
func (f *FileSystem) Disable(ctx context.Context, modID, character string) error {
	return f.toggle(ctx, modID, character, false)
}

func (f *FileSystem) toggle(ctx context.Context, modID, character string, enable bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mod, err := f.find(ctx, modID)
	if err != nil {
		return err
	}
	if character != "" && !strings.EqualFold(mod.Character, character) {
		return apperr.InvalidArgumentf("mod '%s' belongs to '%s', not '%s'", modID, mod.Character, character).
			WithMeta("mod_id", modID)
	}
	if mod.Enabled == enable {
		return nil
	}

	dir, name := filepath.Split(mod.FullPath)
	var target string
	if enable {
		target = filepath.Join(dir, name[len(DisabledPrefix):])
	} else {
		target = filepath.Join(dir, DisabledPrefix+name)
	}

	if _, statErr := os.Stat(target); statErr == nil {
		return apperr.InvalidArgumentf("cannot toggle mod '%s': '%s' already exists", modID, target).
			WithMeta("mod_id", modID)
	}

	if err := os.Rename(mod.FullPath, target); err != nil {
		return apperr.PersistenceFailuref(err, "failed to rename mod folder '%s'", mod.FullPath).
			WithMeta("mod_id", modID)
	}

	mod.FullPath = target
	mod.Enabled = enable
	f.mu.Lock()
	f.last = f.last.replace(mod)
	f.mu.Unlock()

	f.log.Info().Str("mod_id", modID).Str("character", mod.Character).Bool("enabled", enable).Msg("toggled mod")
	return nil
}

// find looks the mod up in the last scan, rescanning once on a miss
func (f *FileSystem) find(ctx context.Context, modID string) (Mod, error) {
	f.mu.Lock()
	last := f.last
	f.mu.Unlock()

	if mod, ok := last.ByID(modID); ok {
		return mod, nil
	}

	inv, err := f.CurrentMods(ctx)
	if err != nil {
		return Mod{}, err
	}
	if mod, ok := inv.ByID(modID); ok {
		return mod, nil
	}
	return Mod{}, apperr.Newf(apperr.CodeModObjectNotFound, "mod '%s' not found in mods directory", modID).
		WithMeta("variant", "mod").
		WithMeta("mod_id", modID)
}

func hasDisabledPrefix(name string) bool {
	return len(name) > len(DisabledPrefix) && strings.EqualFold(name[:len(DisabledPrefix)], DisabledPrefix)
}
