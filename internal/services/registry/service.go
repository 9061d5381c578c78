// Package registry owns the in-memory moddable object registry of the active game profile
package registry

//go:generate mockgen -destination=mock/mock.go -package=mockregistry -source=service.go

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/mod-preset-manager/internal/assets"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/game"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
	"github.com/KirkDiggler/mod-preset-manager/internal/repositories/customobjects"
)

// VariantCustomObject names either custom variant in not-found errors
const VariantCustomObject = "custom_object"

// Detacher releases preset entries that point into a deleted object's mod folder
type Detacher interface {
	DetachModsUnder(ctx context.Context, folder string) (int, error)
}

// DetacherFunc adapts a function to Detacher
type DetacherFunc func(ctx context.Context, folder string) (int, error)

func (f DetacherFunc) DetachModsUnder(ctx context.Context, folder string) (int, error) {
	return f(ctx, folder)
}

// Service defines the moddable object registry
type Service interface {
	// Load builds the registry from the game definitions and the stored custom objects
	Load(ctx context.Context) error

	// Get returns the object with exactly this internal name
	Get(name identity.InternalName) (moddable.Object, bool)

	// Resolve matches name against internal names first, then aliases
	Resolve(name string) (moddable.Object, error)

	// ObjectByFolder returns the object whose mod folder is folder
	ObjectByFolder(folder string) (moddable.Object, bool)

	Characters() []*moddable.Character
	CustomMods() []*moddable.CustomMod
	Elements() []moddable.Element
	Classes() []moddable.Class
	Regions() []moddable.Region

	// SkinCharacters returns one character view per skin of the named character
	SkinCharacters(name string) ([]*moddable.Character, error)

	CreateCharacter(ctx context.Context, req *moddable.CreateCharacterRequest) (*moddable.Character, error)
	EditCharacter(ctx context.Context, name identity.InternalName, req *moddable.EditCustomCharacterRequest) (*moddable.Character, error)
	CreateCustomMod(ctx context.Context, req *moddable.CreateCustomModRequest) (*moddable.CustomMod, error)
	EditCustomMod(ctx context.Context, name identity.InternalName, req *moddable.EditCustomModRequest) (*moddable.CustomMod, error)

	// DeleteCustomObject removes a custom character or custom mod and detaches preset entries under its folder
	DeleteCustomObject(ctx context.Context, name identity.InternalName) error
}

// ServiceConfig holds configuration for the registry
type ServiceConfig struct {
	Loader     game.Loader              // Required
	Repository customobjects.Repository // Required
	Copier     assets.Copier            // Required
	Detacher   Detacher                 // Optional
	Logger     *logger.Logger
}

type service struct {
	loader   game.Loader
	repo     customobjects.Repository
	copier   assets.Copier
	detacher Detacher
	log      *logger.Logger

	mu         sync.RWMutex
	game       string
	characters []*moddable.Character
	customMods []*moddable.CustomMod
	byName     map[identity.InternalName]moddable.Object
	elements   []moddable.Element
	classes    []moddable.Class
	regions    []moddable.Region
}

// NewService creates a registry. Call Load before use.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Loader == nil {
		panic("game loader is required")
	}
	if cfg.Repository == nil {
		panic("custom objects repository is required")
	}
	if cfg.Copier == nil {
		panic("asset copier is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &service{
		loader:   cfg.Loader,
		repo:     cfg.Repository,
		copier:   cfg.Copier,
		detacher: cfg.Detacher,
		log:      cfg.Logger.Component("registry"),
		byName:   make(map[identity.InternalName]moddable.Object),
	}
}

// Load replaces the registry contents. Custom objects whose internal name
// collides with a shipped object fail the load.
func (s *service) Load(ctx context.Context) error {
	profile, err := s.loader.Load(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to load game profile")
	}
	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to load custom objects")
	}

	byName := make(map[identity.InternalName]moddable.Object, len(profile.Characters)+len(snapshot.Characters)+len(snapshot.CustomMods))
	var characters []*moddable.Character
	var customMods []*moddable.CustomMod

	add := func(o moddable.Object) error {
		name := o.Common().InternalName
		if existing, ok := byName[name]; ok {
			return apperr.DuplicateIdentityf("'%s' is defined as both %s and %s", name, existing.Kind(), o.Kind()).
				WithMeta("internal_name", name.String())
		}
		byName[name] = o
		return nil
	}

	for _, c := range profile.Characters {
		c = c.Clone()
		c.IsCustom = false
		if err := add(c); err != nil {
			return err
		}
		characters = append(characters, c)
	}
	for _, c := range snapshot.Characters {
		c = c.Clone()
		c.IsCustom = true
		if err := add(c); err != nil {
			return err
		}
		characters = append(characters, c)
	}
	for _, m := range snapshot.CustomMods {
		m = m.Clone()
		m.IsCustom = true
		if err := add(m); err != nil {
			return err
		}
		customMods = append(customMods, m)
	}

	s.mu.Lock()
	s.game = profile.Game
	s.characters = characters
	s.customMods = customMods
	s.byName = byName
	s.elements = profile.Elements
	s.classes = profile.Classes
	s.regions = profile.Regions
	s.mu.Unlock()

	s.log.Info().
		Str("game", profile.Game).
		Int("characters", len(characters)).
		Int("custom_characters", len(snapshot.Characters)).
		Int("custom_mods", len(customMods)).
		Msg("registry loaded")

	return nil
}

func (s *service) Get(name identity.InternalName) (moddable.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return moddable.CloneObject(o), true
}

// Resolve returns an error when the name is unknown or an alias is shared by
// more than one object
func (s *service) Resolve(name string) (moddable.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, err := s.resolveLocked(name)
	if err != nil {
		return nil, err
	}
	return moddable.CloneObject(o), nil
}

func (s *service) resolveLocked(name string) (moddable.Object, error) {
	internal := identity.NewInternalName(name)
	if internal.IsEmpty() {
		return nil, apperr.InvalidArgument("name is required")
	}
	if o, ok := s.byName[internal]; ok {
		return o, nil
	}

	var matches []moddable.Object
	for _, o := range s.objectsLocked() {
		if o.Common().Keys.Contains(name) {
			matches = append(matches, o)
		}
	}

	switch len(matches) {
	case 0:
		return nil, apperr.ModObjectNotFound("moddable_object", internal.String())
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.Common().InternalName.String()
		}
		return nil, apperr.DuplicateIdentityf("alias '%s' matches %d objects", internal, len(matches)).
			WithMeta("alias", internal.String()).
			WithMeta("candidates", candidates)
	}
}

// objectsLocked lists characters then custom mods in registry order
func (s *service) objectsLocked() []moddable.Object {
	out := make([]moddable.Object, 0, len(s.characters)+len(s.customMods))
	for _, c := range s.characters {
		out = append(out, c)
	}
	for _, m := range s.customMods {
		out = append(out, m)
	}
	return out
}

func (s *service) ObjectByFolder(folder string) (moddable.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.objectsLocked() {
		if strings.EqualFold(o.Common().FolderName(), folder) {
			return moddable.CloneObject(o), true
		}
	}
	// skins with their own folder resolve to a skin view of the owner
	for _, c := range s.characters {
		for _, skin := range c.Skins {
			if !skin.IsDefault && skin.ModFilesName != "" && strings.EqualFold(skin.ModFilesName, folder) {
				return c.SkinCharacter(skin), true
			}
		}
	}
	return nil, false
}

func (s *service) Characters() []*moddable.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*moddable.Character, len(s.characters))
	for i, c := range s.characters {
		out[i] = c.Clone()
	}
	return out
}

func (s *service) CustomMods() []*moddable.CustomMod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*moddable.CustomMod, len(s.customMods))
	for i, m := range s.customMods {
		out[i] = m.Clone()
	}
	return out
}

func (s *service) Elements() []moddable.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]moddable.Element(nil), s.elements...)
}

func (s *service) Classes() []moddable.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]moddable.Class(nil), s.classes...)
}

func (s *service) Regions() []moddable.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]moddable.Region(nil), s.regions...)
}

func (s *service) SkinCharacters(name string) ([]*moddable.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, err := s.resolveLocked(name)
	if err != nil {
		return nil, err
	}
	c, ok := o.(*moddable.Character)
	if !ok {
		return nil, apperr.ModObjectNotFound(string(moddable.KindCharacter), identity.NewInternalName(name).String())
	}

	views := make([]*moddable.Character, 0, len(c.Skins))
	for _, skin := range c.Skins {
		views = append(views, c.SkinCharacter(skin))
	}
	return views, nil
}

// Lookup resolves an exact internal name to a specific variant
func Lookup[T moddable.Object](s Service, name identity.InternalName) (T, error) {
	var zero T
	o, ok := s.Get(name)
	if !ok {
		return zero, apperr.ModObjectNotFound(string(moddable.KindOf[T]()), name.String())
	}
	t, ok := o.(T)
	if !ok {
		return zero, apperr.ModObjectNotFound(string(moddable.KindOf[T]()), name.String()).
			WithMeta("actual_variant", string(o.Kind()))
	}
	return t, nil
}
