package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"

	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// Supported preset backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Game is the active game profile key (genshin, honkai, wuwa, zzz)
	Game string `env:"GAME" envDefault:"genshin"`

	// ModsDir is the game's mod root; each character has a folder below it
	ModsDir string `env:"MODS_DIR"`

	// DataDir holds presets, custom objects and copied images
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// DefinitionsDir holds the shipped game JSON definitions
	DefinitionsDir string `env:"DEFINITIONS_DIR"`

	Presets PresetConfig `envPrefix:"PRESET_"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// PresetConfig selects the preset persistence backend
type PresetConfig struct {
	Backend  string `env:"BACKEND" envDefault:"file"`
	RedisURL string `env:"REDIS_URL"`
}

// Load loads configuration from MODMANAGER_ prefixed environment variables
func Load() (*Config, error) {
	return LoadWithEnvironment(nil)
}

// LoadWithEnvironment parses the given environment instead of the process one when environ is non-nil
func LoadWithEnvironment(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: "MODMANAGER_"}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and backend choices
func (c *Config) Validate() error {
	if c.ModsDir == "" {
		return apperr.InvalidArgument("MODMANAGER_MODS_DIR is required")
	}
	if c.DefinitionsDir == "" {
		return apperr.InvalidArgument("MODMANAGER_DEFINITIONS_DIR is required")
	}

	switch c.Game {
	case "genshin", "honkai", "wuwa", "zzz":
	default:
		return apperr.InvalidArgumentf("unsupported game '%s'", c.Game).
			WithMeta("game", c.Game)
	}

	switch c.Presets.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.Presets.RedisURL == "" {
			return apperr.InvalidArgument("MODMANAGER_PRESET_REDIS_URL is required for the redis backend")
		}
	default:
		return apperr.InvalidArgumentf("unknown preset backend '%s'", c.Presets.Backend).
			WithMeta("backend", c.Presets.Backend)
	}

	return nil
}

// ProfileDir is the per-game data directory
func (c *Config) ProfileDir() string {
	return filepath.Join(c.DataDir, c.Game)
}

// PresetDir is where preset documents are stored
func (c *Config) PresetDir() string {
	return filepath.Join(c.ProfileDir(), "presets")
}

// CustomObjectsFile is the JSON document holding user-created objects
func (c *Config) CustomObjectsFile() string {
	return filepath.Join(c.ProfileDir(), "custom_objects.json")
}

// ImageDir is where images for custom objects are copied
func (c *Config) ImageDir() string {
	return filepath.Join(c.ProfileDir(), "images")
}

// GameDefinitionsDir is the definitions directory for the active game
func (c *Config) GameDefinitionsDir() string {
	return filepath.Join(c.DefinitionsDir, c.Game)
}
