package services

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mod-preset-manager/internal/assets"
	"github.com/KirkDiggler/mod-preset-manager/internal/config"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/game"
	"github.com/KirkDiggler/mod-preset-manager/internal/inventory"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
	"github.com/KirkDiggler/mod-preset-manager/internal/reconcile"
	"github.com/KirkDiggler/mod-preset-manager/internal/repositories/customobjects"
	"github.com/KirkDiggler/mod-preset-manager/internal/repositories/presets"
	presetService "github.com/KirkDiggler/mod-preset-manager/internal/services/preset"
	"github.com/KirkDiggler/mod-preset-manager/internal/services/registry"
	"github.com/KirkDiggler/mod-preset-manager/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Registry  registry.Service
	Presets   presetService.Service
	Inventory *inventory.FileSystem

	redisClient redis.UniversalClient
	ownsRedis   bool
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config *config.Config // Required

	// RedisClient is used by the redis backend; when nil one is created from the config URL
	RedisClient      redis.UniversalClient
	PresetRepository presets.Repository
	CustomObjects    customobjects.Repository
	UUIDGenerator    uuid.Generator
	Logger           *logger.Logger
}

// NewProvider creates a new service provider with all services initialized.
// Call Load before using the services.
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, apperr.InvalidArgument("config is required")
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	appCfg := cfg.Config

	p := &Provider{}

	presetRepo := cfg.PresetRepository
	if presetRepo == nil {
		var err error
		presetRepo, err = p.presetRepository(cfg)
		if err != nil {
			return nil, err
		}
	}

	customRepo := cfg.CustomObjects
	if customRepo == nil {
		customRepo = customobjects.NewFileRepository(appCfg.CustomObjectsFile())
	}

	p.Inventory = inventory.NewFileSystem(&inventory.FileSystemConfig{
		ModsDir:       appCfg.ModsDir,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        cfg.Logger,
	})

	// The registry and the preset store reference each other: deleting a
	// custom object detaches preset entries, applying a preset asks the
	// registry which characters take several mods.
	var presetSvc presetService.Service
	p.Registry = registry.NewService(&registry.ServiceConfig{
		Loader:     game.NewJSONLoader(appCfg.Game, appCfg.GameDefinitionsDir()),
		Repository: customRepo,
		Copier: assets.NewFileCopier(&assets.FileCopierConfig{
			Dir:           appCfg.ImageDir(),
			UUIDGenerator: cfg.UUIDGenerator,
			Logger:        cfg.Logger,
		}),
		Detacher: registry.DetacherFunc(func(ctx context.Context, folder string) (int, error) {
			return presetSvc.DetachModsUnder(ctx, folder)
		}),
		Logger: cfg.Logger,
	})

	presetSvc = presetService.NewService(&presetService.ServiceConfig{
		Repository: presetRepo,
		Provider:   p.Inventory,
		Sink:       p.Inventory,
		Objects:    p.Registry,
		Engine:     reconcile.NewEngine(cfg.Logger),
		Logger:     cfg.Logger,
	})
	p.Presets = presetSvc

	return p, nil
}

func (p *Provider) presetRepository(cfg *ProviderConfig) (presets.Repository, error) {
	appCfg := cfg.Config
	switch appCfg.Presets.Backend {
	case config.BackendMemory:
		return presets.NewInMemoryRepository(), nil
	case config.BackendRedis:
		client := cfg.RedisClient
		if client == nil {
			opts, err := redis.ParseURL(appCfg.Presets.RedisURL)
			if err != nil {
				return nil, apperr.InvalidArgumentf("invalid redis url: %v", err)
			}
			client = redis.NewClient(opts)
			p.ownsRedis = true
		}
		p.redisClient = client
		return presets.NewRedisRepository(&presets.RedisRepoConfig{
			Client: client,
			Game:   appCfg.Game,
		}), nil
	default:
		return presets.NewFileRepository(&presets.FileRepoConfig{
			Dir:    appCfg.PresetDir(),
			Logger: cfg.Logger,
		}), nil
	}
}

// Load builds the registry first so preset application knows every character
func (p *Provider) Load(ctx context.Context) error {
	if err := p.Registry.Load(ctx); err != nil {
		return err
	}
	return p.Presets.Load(ctx)
}

// Close releases the Redis client when the provider created it
func (p *Provider) Close() error {
	if p.ownsRedis && p.redisClient != nil {
		return p.redisClient.Close()
	}
	return nil
}
