package registry

import (
	"context"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/repositories/customobjects"
)

// CreateCharacter adds a custom character. The image is copied before the
// write; a failed write removes the copy again.
func (s *service) CreateCharacter(ctx context.Context, req *moddable.CreateCharacterRequest) (*moddable.Character, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIdentityLocked(req.InternalName, req.Keys, identity.InternalName{}); err != nil {
		return nil, err
	}
	if err := s.checkReferencesLocked(req.Element, req.Class, req.Regions); err != nil {
		return nil, err
	}

	image, err := s.copier.CopyImage(ctx, req.Image, req.InternalName)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to copy image for '%s'", req.InternalName).
			WithMeta("internal_name", req.InternalName.String())
	}

	c := &moddable.Character{
		Base: moddable.Base{
			InternalName: req.InternalName,
			DisplayName:  req.DisplayName,
			Keys:         identity.NewKeys(req.Keys...),
			ModFilesName: req.ModFilesName,
			Image:        image,
			IsCustom:     true,
			IsMultiMod:   req.IsMultiMod,
		},
		Rarity:      req.Rarity,
		ReleaseDate: req.ReleaseDate,
		Element:     req.Element,
		Class:       req.Class,
		Regions:     append([]identity.InternalName(nil), req.Regions...),
	}
	if c.ModFilesName == "" {
		c.ModFilesName = c.InternalName.String()
	}
	c.Skins = []moddable.Skin{{IsDefault: true}}
	syncDefaultSkin(c)

	snapshot := s.customSnapshotLocked()
	snapshot.Characters = append(snapshot.Characters, c.Clone())
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.discardImage(ctx, image)
		return nil, err
	}

	s.characters = append(s.characters, c)
	s.byName[c.InternalName] = c

	s.log.Info().Str("internal_name", c.InternalName.String()).Msg("created custom character")
	return c.Clone(), nil
}

// EditCharacter applies the set fields of req to a custom character. Every
// set field is validated before anything is copied or written.
func (s *service) EditCharacter(ctx context.Context, name identity.InternalName, req *moddable.EditCustomCharacterRequest) (*moddable.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.customCharacterLocked(name)
	if err != nil {
		return nil, err
	}
	if !req.AnyValuesSet() {
		return current.Clone(), nil
	}

	if err := req.Validate(); err != nil {
		return nil, apperr.Wrapf(err, "invalid edit for '%s'", name).
			WithMeta("internal_name", name.String())
	}
	if req.Keys.IsSet() {
		if err := s.checkIdentityLocked(name, req.Keys.Value(), name); err != nil {
			return nil, err
		}
	}
	element := req.Element.ValueOr(identity.InternalName{})
	class := req.Class.ValueOr(identity.InternalName{})
	regions := req.Regions.ValueOr(nil)
	if err := s.checkReferencesLocked(element, class, regions); err != nil {
		return nil, err
	}

	image := current.Image
	if req.Image.IsSet() {
		image, err = s.copier.CopyImage(ctx, req.Image.Value(), name)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to copy image for '%s'", name).
				WithMeta("internal_name", name.String())
		}
	}

	updated := current.Clone()
	req.ApplyTo(updated, image)
	syncDefaultSkin(updated)

	snapshot := s.customSnapshotLocked()
	for i, c := range snapshot.Characters {
		if c.InternalName == name {
			snapshot.Characters[i] = updated.Clone()
		}
	}
	if err := s.repo.Save(ctx, snapshot); err != nil {
		if image != current.Image {
			s.discardImage(ctx, image)
		}
		return nil, err
	}

	for i, c := range s.characters {
		if c.InternalName == name {
			s.characters[i] = updated
		}
	}
	s.byName[name] = updated
	if image != current.Image {
		s.discardImage(ctx, current.Image)
	}

	s.log.Info().Str("internal_name", name.String()).Msg("edited custom character")
	return updated.Clone(), nil
}

// CreateCustomMod adds a custom mod object
func (s *service) CreateCustomMod(ctx context.Context, req *moddable.CreateCustomModRequest) (*moddable.CustomMod, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIdentityLocked(req.InternalName, req.Keys, identity.InternalName{}); err != nil {
		return nil, err
	}

	image, err := s.copier.CopyImage(ctx, req.Image, req.InternalName)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to copy image for '%s'", req.InternalName).
			WithMeta("internal_name", req.InternalName.String())
	}

	m := &moddable.CustomMod{
		Base: moddable.Base{
			InternalName: req.InternalName,
			DisplayName:  req.DisplayName,
			Keys:         identity.NewKeys(req.Keys...),
			ModFilesName: req.ModFilesName,
			Image:        image,
			IsCustom:     true,
			IsMultiMod:   req.IsMultiMod,
		},
	}
	if req.Rarity != nil {
		rarity := *req.Rarity
		m.Rarity = &rarity
	}
	if m.ModFilesName == "" {
		m.ModFilesName = m.InternalName.String()
	}

	snapshot := s.customSnapshotLocked()
	snapshot.CustomMods = append(snapshot.CustomMods, m.Clone())
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.discardImage(ctx, image)
		return nil, err
	}

	s.customMods = append(s.customMods, m)
	s.byName[m.InternalName] = m

	s.log.Info().Str("internal_name", m.InternalName.String()).Msg("created custom mod")
	return m.Clone(), nil
}

// EditCustomMod applies the set fields of req to a custom mod
func (s *service) EditCustomMod(ctx context.Context, name identity.InternalName, req *moddable.EditCustomModRequest) (*moddable.CustomMod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byName[name]
	if !ok {
		return nil, apperr.ModObjectNotFound(string(moddable.KindCustomMod), name.String())
	}
	current, ok := o.(*moddable.CustomMod)
	if !ok {
		return nil, apperr.ModObjectNotFound(string(moddable.KindCustomMod), name.String()).
			WithMeta("actual_variant", string(o.Kind()))
	}
	if !req.AnyValuesSet() {
		return current.Clone(), nil
	}

	if err := req.Validate(); err != nil {
		return nil, apperr.Wrapf(err, "invalid edit for '%s'", name).
			WithMeta("internal_name", name.String())
	}
	if req.Keys.IsSet() {
		if err := s.checkIdentityLocked(name, req.Keys.Value(), name); err != nil {
			return nil, err
		}
	}

	image := current.Image
	var err error
	if req.Image.IsSet() {
		image, err = s.copier.CopyImage(ctx, req.Image.Value(), name)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to copy image for '%s'", name).
				WithMeta("internal_name", name.String())
		}
	}

	updated := current.Clone()
	req.ApplyTo(updated, image)

	snapshot := s.customSnapshotLocked()
	for i, m := range snapshot.CustomMods {
		if m.InternalName == name {
			snapshot.CustomMods[i] = updated.Clone()
		}
	}
	if err := s.repo.Save(ctx, snapshot); err != nil {
		if image != current.Image {
			s.discardImage(ctx, image)
		}
		return nil, err
	}

	for i, m := range s.customMods {
		if m.InternalName == name {
			s.customMods[i] = updated
		}
	}
	s.byName[name] = updated
	if image != current.Image {
		s.discardImage(ctx, current.Image)
	}

	s.log.Info().Str("internal_name", name.String()).Msg("edited custom mod")
	return updated.Clone(), nil
}

// DeleteCustomObject removes the object from the stored snapshot and the
// registry, then detaches preset entries under its folder. When detaching
// fails the object and its snapshot are restored. The detacher is called
// without the registry lock held.
func (s *service) DeleteCustomObject(ctx context.Context, name identity.InternalName) error {
	s.mu.Lock()
	o, ok := s.byName[name]
	if !ok || !o.Common().IsCustom {
		s.mu.Unlock()
		return apperr.ModObjectNotFound(VariantCustomObject, name.String())
	}

	previous := s.customSnapshotLocked()
	snapshot := s.customSnapshotLocked()
	switch o.(type) {
	case *moddable.Character:
		snapshot.Characters = removeByName(snapshot.Characters, name)
	case *moddable.CustomMod:
		snapshot.CustomMods = removeByName(snapshot.CustomMods, name)
	}
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.mu.Unlock()
		return err
	}
	s.removeLocked(o)
	s.mu.Unlock()

	if s.detacher != nil {
		detached, err := s.detacher.DetachModsUnder(ctx, o.Common().FolderName())
		if err != nil {
			s.restore(ctx, o, previous)
			return apperr.Wrapf(err, "failed to detach preset entries of '%s'", name).
				WithMeta("internal_name", name.String())
		}
		s.log.Info().Str("internal_name", name.String()).Int("entries", detached).Msg("detached preset entries")
	}

	s.discardImage(ctx, o.Common().Image)

	s.log.Info().Str("internal_name", name.String()).Str("variant", string(o.Kind())).Msg("deleted custom object")
	return nil
}

func (s *service) removeLocked(o moddable.Object) {
	name := o.Common().InternalName
	switch o.(type) {
	case *moddable.Character:
		s.characters = removeByName(s.characters, name)
	case *moddable.CustomMod:
		s.customMods = removeByName(s.customMods, name)
	}
	delete(s.byName, name)
}

// restore puts a deleted object back. If the previous snapshot cannot be
// written the object stays deleted so memory matches storage.
func (s *service) restore(ctx context.Context, o moddable.Object, previous *customobjects.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := o.Common().InternalName
	if _, taken := s.byName[name]; taken {
		s.log.Error().Str("internal_name", name.String()).Msg("cannot restore deleted object, name is taken")
		return
	}
	if err := s.repo.Save(ctx, previous); err != nil {
		s.log.Error().Err(err).Str("internal_name", name.String()).Msg("failed to restore deleted object")
		return
	}

	switch v := o.(type) {
	case *moddable.Character:
		s.characters = append(s.characters, v)
	case *moddable.CustomMod:
		s.customMods = append(s.customMods, v)
	}
	s.byName[name] = o
}

func (s *service) customCharacterLocked(name identity.InternalName) (*moddable.Character, error) {
	o, ok := s.byName[name]
	if !ok {
		return nil, apperr.ModObjectNotFound(string(moddable.KindCharacter), name.String())
	}
	c, ok := o.(*moddable.Character)
	if !ok {
		return nil, apperr.ModObjectNotFound(string(moddable.KindCharacter), name.String()).
			WithMeta("actual_variant", string(o.Kind()))
	}
	if !c.IsCustom {
		return nil, apperr.InvalidModdableObjectf("character '%s' is not a custom character", name).
			WithMeta("internal_name", name.String())
	}
	return c, nil
}

// checkIdentityLocked fails when name or any key collides with the internal
// name or an alias of another object. self is skipped when set.
func (s *service) checkIdentityLocked(name identity.InternalName, keys []string, self identity.InternalName) error {
	for _, o := range s.objectsLocked() {
		base := o.Common()
		if !self.IsEmpty() && base.InternalName == self {
			continue
		}
		if base.InternalName == name || base.Keys.Contains(name.String()) {
			return apperr.DuplicateIdentityf("internal name '%s' is already used by '%s'", name, base.InternalName).
				WithMeta("internal_name", name.String()).
				WithMeta("existing", base.InternalName.String())
		}
		for _, key := range keys {
			if base.MatchesName(key) {
				return apperr.DuplicateIdentityf("key '%s' is already used by '%s'", key, base.InternalName).
					WithMeta("internal_name", name.String()).
					WithMeta("key", key).
					WithMeta("existing", base.InternalName.String())
			}
		}
	}
	return nil
}

// checkReferencesLocked requires every non-empty reference to exist in the game profile
func (s *service) checkReferencesLocked(element, class identity.InternalName, regions []identity.InternalName) error {
	if !element.IsEmpty() && !containsRef(s.elements, element, func(e moddable.Element) identity.InternalName { return e.InternalName }) {
		return apperr.InvalidArgumentf("unknown element '%s'", element).WithMeta("element", element.String())
	}
	if !class.IsEmpty() && !containsRef(s.classes, class, func(c moddable.Class) identity.InternalName { return c.InternalName }) {
		return apperr.InvalidArgumentf("unknown class '%s'", class).WithMeta("class", class.String())
	}
	for _, region := range regions {
		if !containsRef(s.regions, region, func(r moddable.Region) identity.InternalName { return r.InternalName }) {
			return apperr.InvalidArgumentf("unknown region '%s'", region).WithMeta("region", region.String())
		}
	}
	return nil
}

func containsRef[T any](items []T, name identity.InternalName, key func(T) identity.InternalName) bool {
	for _, item := range items {
		if key(item) == name {
			return true
		}
	}
	return false
}

func (s *service) customSnapshotLocked() *customobjects.Snapshot {
	snapshot := &customobjects.Snapshot{}
	for _, c := range s.characters {
		if c.IsCustom {
			snapshot.Characters = append(snapshot.Characters, c.Clone())
		}
	}
	for _, m := range s.customMods {
		snapshot.CustomMods = append(snapshot.CustomMods, m.Clone())
	}
	return snapshot
}

func (s *service) discardImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.copier.Remove(ctx, path); err != nil {
		s.log.Warn().Err(err).Str("image", path).Msg("failed to remove image")
	}
}

func removeByName[T moddable.Object](objects []T, name identity.InternalName) []T {
	out := objects[:0:0]
	for _, o := range objects {
		if o.Common().InternalName != name {
			out = append(out, o)
		}
	}
	return out
}

// syncDefaultSkin mirrors the character's appearance onto its default skin
func syncDefaultSkin(c *moddable.Character) {
	for i := range c.Skins {
		if !c.Skins[i].IsDefault {
			continue
		}
		c.Skins[i].InternalName = c.InternalName
		c.Skins[i].DisplayName = c.DisplayName
		c.Skins[i].Image = c.Image
		c.Skins[i].ModFilesName = c.FolderName()
	}
}
