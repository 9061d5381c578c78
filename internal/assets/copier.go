// Package assets copies user supplied images into the profile's image folder
package assets

//go:generate mockgen -destination=mock/mock.go -package=mockassets -source=copier.go

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
	"github.com/KirkDiggler/mod-preset-manager/internal/uuid"
)

// Copier stores images owned by custom objects
type Copier interface {
	// CopyImage copies source into managed storage and returns the stored path.
	// An empty source returns an empty path.
	CopyImage(ctx context.Context, source string, owner identity.InternalName) (string, error)
	// Remove deletes a previously stored image; paths outside managed storage are ignored
	Remove(ctx context.Context, path string) error
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
}

// FileCopierConfig holds configuration for FileCopier
type FileCopierConfig struct {
	Dir           string
	UUIDGenerator uuid.Generator
	Logger        *logger.Logger
}

// FileCopier copies images into a directory on disk
type FileCopier struct {
	dir           string
	uuidGenerator uuid.Generator
	log           *logger.Logger
}

// NewFileCopier creates a FileCopier
func NewFileCopier(cfg *FileCopierConfig) *FileCopier {
	if cfg == nil {
		panic("FileCopierConfig cannot be nil")
	}
	if cfg.Dir == "" {
		panic("image directory is required")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &FileCopier{
		dir:           cfg.Dir,
		uuidGenerator: cfg.UUIDGenerator,
		log:           cfg.Logger.Component("assets"),
	}
}

// CopyImage copies source to <dir>/<owner>_<uuid><ext>
func (c *FileCopier) CopyImage(ctx context.Context, source string, owner identity.InternalName) (string, error) {
	if source == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source = strings.TrimPrefix(source, "file://")
	ext := strings.ToLower(filepath.Ext(source))
	if !imageExtensions[ext] {
		return "", apperr.InvalidArgumentf("unsupported image type '%s'", ext).
			WithMeta("image", source)
	}

	info, err := os.Stat(source)
	if os.IsNotExist(err) {
		return "", apperr.InvalidArgumentf("image '%s' does not exist", source).
			WithMeta("image", source)
	}
	if err != nil {
		return "", apperr.PersistenceFailuref(err, "failed to stat image '%s'", source)
	}
	if info.IsDir() {
		return "", apperr.InvalidArgumentf("image '%s' is a directory", source).
			WithMeta("image", source)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", apperr.PersistenceFailuref(err, "failed to create image directory '%s'", c.dir)
	}

	target := filepath.Join(c.dir, owner.String()+"_"+c.uuidGenerator.New()+ext)
	if err := copyFile(source, target); err != nil {
		_ = os.Remove(target)
		return "", apperr.PersistenceFailuref(err, "failed to copy image '%s'", source).
			WithMeta("image", source)
	}

	c.log.Debug().Str("source", source).Str("target", target).Msg("copied image")
	return target, nil
}

// Remove deletes path when it lives in the managed directory
func (c *FileCopier) Remove(ctx context.Context, path string) error {
	if path == "" || !c.owns(path) {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return apperr.PersistenceFailuref(err, "failed to remove image '%s'", path)
	}
	return nil
}

func (c *FileCopier) owns(path string) bool {
	rel, err := filepath.Rel(c.dir, path)
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
