package presets

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// Game namespaces keys so several game profiles can share one database
	Game string
}

// redisRepo stores each preset document under preset:<game>:<name> and keeps
// the set of names in presets:<game>
type redisRepo struct {
	client redis.UniversalClient
	game   string
}

// NewRedisRepository creates a Redis-backed preset repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.Game == "" {
		panic("game is required")
	}

	return &redisRepo{
		client: cfg.Client,
		game:   cfg.Game,
	}
}

// key generates the Redis key for a preset
func (r *redisRepo) key(name string) string {
	return fmt.Sprintf("preset:%s:%s", r.game, name)
}

// namesKey generates the Redis key for the set of preset names
func (r *redisRepo) namesKey() string {
	return fmt.Sprintf("presets:%s", r.game)
}

// List retrieves all presets
func (r *redisRepo) List(ctx context.Context) ([]*preset.ModPreset, error) {
	names, err := r.client.SMembers(ctx, r.namesKey()).Result()
	if err != nil {
		return nil, apperr.PersistenceFailure(err, "failed to list preset names")
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

// Get retrieves a preset by name
func (r *redisRepo) Get(ctx context.Context, name string) (*preset.ModPreset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err == redis.Nil {
		return nil, apperr.PresetNotFound(name)
	}
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to get preset '%s'", name).
			WithMeta("preset_name", name)
	}

	return Unmarshal(name, data)
}

// Save creates or replaces a preset
func (r *redisRepo) Save(ctx context.Context, p *preset.ModPreset) error {
	if p == nil {
		return apperr.InvalidArgument("preset cannot be nil")
	}
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	data, err := Marshal(p)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(p.Name), string(data), 0)
	pipe.SAdd(ctx, r.namesKey(), p.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.PersistenceFailuref(err, "failed to save preset '%s'", p.Name).
			WithMeta("preset_name", p.Name)
	}

	return nil
}

// SaveAll writes every preset in one transaction
func (r *redisRepo) SaveAll(ctx context.Context, presets []*preset.ModPreset) error {
	docs := make([]string, len(presets))
	for i, p := range presets {
		if p == nil {
			return apperr.InvalidArgument("preset cannot be nil")
		}
		if err := ValidateName(p.Name); err != nil {
			return err
		}
		data, err := Marshal(p)
		if err != nil {
			return err
		}
		docs[i] = string(data)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, p := range presets {
			pipe.Set(ctx, r.key(p.Name), docs[i], 0)
			pipe.SAdd(ctx, r.namesKey(), p.Name)
		}
		return nil
	})
	if err != nil {
		return apperr.PersistenceFailure(err, "failed to save presets")
	}

	return nil
}

// Rename moves a preset document to a new key
func (r *redisRepo) Rename(ctx context.Context, oldName, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}

	existing, err := r.Get(ctx, oldName)
	if err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(newName)).Result()
	if err != nil {
		return apperr.PersistenceFailuref(err, "failed to check preset '%s'", newName)
	}
	if exists > 0 {
		return apperr.DuplicatePresetName(newName)
	}

	existing.Name = newName
	data, err := Marshal(existing)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(newName), string(data), 0)
		pipe.SAdd(ctx, r.namesKey(), newName)
		pipe.Del(ctx, r.key(oldName))
		pipe.SRem(ctx, r.namesKey(), oldName)
		return nil
	})
	if err != nil {
		return apperr.PersistenceFailuref(err, "failed to rename preset '%s' to '%s'", oldName, newName).
			WithMeta("preset_name", oldName)
	}

	return nil
}

// Delete removes a preset
func (r *redisRepo) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(name))
	pipe.SRem(ctx, r.namesKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.PersistenceFailuref(err, "failed to delete preset '%s'", name).
			WithMeta("preset_name", name)
	}

	if del.Val() == 0 {
		return apperr.PresetNotFound(name)
	}

	return nil
}
