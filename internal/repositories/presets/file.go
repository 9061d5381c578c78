package presets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
)

const documentExt = ".json"

// FileRepoConfig holds configuration for the JSON file repository
type FileRepoConfig struct {
	Dir    string
	Logger *logger.Logger
}

// fileRepo stores one JSON document per preset in a directory
type fileRepo struct {
	dir string
	log *logger.Logger
	// serializes writers; readers go straight to disk
	mu sync.Mutex
}

// NewFileRepository creates a JSON file backed preset repository.
// The directory is created on first write.
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil {
		panic("FileRepoConfig cannot be nil")
	}
	if cfg.Dir == "" {
		panic("preset directory is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &fileRepo{
		dir: cfg.Dir,
		log: cfg.Logger.Component("preset_file_repo"),
	}
}

func (r *fileRepo) path(name string) string {
	return filepath.Join(r.dir, name+documentExt)
}

// List reads every preset document in parallel
func (r *fileRepo) List(ctx context.Context) ([]*preset.ModPreset, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return []*preset.ModPreset{}, nil
	}
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to list presets in '%s'", r.dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), documentExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if err := ValidateName(name); err != nil {
			r.log.Warn().Str("file", e.Name()).Msg("skipping preset file with invalid name")
			continue
		}
		names = append(names, name)
	}

	presets := make([]*preset.ModPreset, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			p, err := r.Get(ctx, name)
			if err != nil {
				return err
			}
			presets[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	preset.SortByIndex(presets)
	return presets, nil
}

// Get reads one preset document
func (r *fileRepo) Get(ctx context.Context, name string) (*preset.ModPreset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(name))
	if os.IsNotExist(err) {
		return nil, apperr.PresetNotFound(name)
	}
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to read preset '%s'", name).
			WithMeta("preset_name", name)
	}

	return Unmarshal(name, data)
}

// Save writes the preset atomically via a temp file and rename
func (r *fileRepo) Save(ctx context.Context, p *preset.ModPreset) error {
	if p == nil {
		return apperr.InvalidArgument("preset cannot be nil")
	}
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(p)
}

// SaveAll writes every preset; if one fails the already written documents are restored
func (r *fileRepo) SaveAll(ctx context.Context, presets []*preset.ModPreset) error {
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

	var written []presetBackup

	for _, p := range presets {
		old, readErr := os.ReadFile(r.path(p.Name))
		if readErr != nil && !os.IsNotExist(readErr) {
			r.restore(written)
			return apperr.PersistenceFailuref(readErr, "failed to back up preset '%s'", p.Name)
		}

		if err := r.write(p); err != nil {
			r.restore(written)
			return err
		}
		written = append(written, presetBackup{name: p.Name, data: old})
	}

	return nil
}

// presetBackup is a document's content before SaveAll overwrote it; nil data means it did not exist
type presetBackup struct {
	name string
	data []byte
}

func (r *fileRepo) restore(written []presetBackup) {
	for _, b := range written {
		var err error
		if b.data == nil {
			err = os.Remove(r.path(b.name))
		} else {
			err = writeFileAtomic(r.path(b.name), b.data)
		}
		if err != nil {
			r.log.Error().Err(err).Str("preset", b.name).Msg("failed to restore preset after partial write")
		}
	}
}

// Rename moves the document; the target must not exist
func (r *fileRepo) Rename(ctx context.Context, oldName, newName string) error {
	if err := ValidateName(oldName); err != nil {
		return err
	}
	if err := ValidateName(newName); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path(oldName)); os.IsNotExist(err) {
		return apperr.PresetNotFound(oldName)
	}
	if _, err := os.Stat(r.path(newName)); err == nil && !strings.EqualFold(oldName, newName) {
		return apperr.DuplicatePresetName(newName)
	}

	if err := os.Rename(r.path(oldName), r.path(newName)); err != nil {
		return apperr.PersistenceFailuref(err, "failed to rename preset '%s' to '%s'", oldName, newName).
			WithMeta("preset_name", oldName)
	}
	return nil
}

// Delete removes the document
func (r *fileRepo) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path(name))
	if os.IsNotExist(err) {
		return apperr.PresetNotFound(name)
	}
	if err != nil {
		return apperr.PersistenceFailuref(err, "failed to delete preset '%s'", name).
			WithMeta("preset_name", name)
	}
	return nil
}

func (r *fileRepo) write(p *preset.ModPreset) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return apperr.PersistenceFailuref(err, "failed to create preset directory '%s'", r.dir)
	}
	if err := writeFileAtomic(r.path(p.Name), data); err != nil {
		return apperr.PersistenceFailuref(err, "failed to write preset '%s'", p.Name).
			WithMeta("preset_name", p.Name)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".preset-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
