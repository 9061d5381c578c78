package preset

import (
	"context"
	"sort"
	"strings"
	"time"

	presetdomain "github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	presetRepo "github.com/KirkDiggler/mod-preset-manager/internal/repositories/presets"
)

func (s *service) CreatePreset(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createLocked(ctx, name, entries)
}

func (s *service) createLocked(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error) {
	if err := presetRepo.ValidateName(name); err != nil {
		return nil, err
	}
	if _, exists := s.presets[key(name)]; exists {
		return nil, apperr.DuplicatePresetName(name)
	}

	now := s.clock.Now()
	p := &presetdomain.ModPreset{
		Name:    name,
		Index:   presetdomain.NextIndex(s.sortedLocked()),
		Created: now,
		Entries: []presetdomain.ModPresetEntry{},
	}
	p.Entries = appendEntries(p.Entries, entries, now)

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.presets[key(name)] = p

	s.log.Info().Str("preset", name).Int("index", p.Index).Int("entries", len(p.Entries)).Msg("created preset")
	return p.Clone(), nil
}

// CreatePresetFromEnabled snapshots every enabled mod in the mods directory
func (s *service) CreatePresetFromEnabled(ctx context.Context, name string) (*presetdomain.ModPreset, error) {
	inv, err := s.currentMods(ctx)
	if err != nil {
		return nil, err
	}

	var entries []presetdomain.ModPresetEntry
	for _, mod := range inv.Mods() {
		if !mod.Enabled {
			continue
		}
		entries = append(entries, presetdomain.ModPresetEntry{
			ModID:      mod.ID,
			FullPath:   mod.FullPath,
			CustomName: mod.CustomName,
			SourceURL:  mod.SourceURL,
		})
	}

	return s.CreatePreset(ctx, name, entries)
}

// DuplicatePreset copies the entries of name into a new writable preset
func (s *service) DuplicatePreset(ctx context.Context, name, newName string) (*presetdomain.ModPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.getLocked(name)
	if err != nil {
		return nil, err
	}
	if err := presetRepo.ValidateName(newName); err != nil {
		return nil, err
	}
	if _, exists := s.presets[key(newName)]; exists {
		return nil, apperr.DuplicatePresetName(newName)
	}

	p := source.Clone()
	p.Name = newName
	p.Index = presetdomain.NextIndex(s.sortedLocked())
	p.Created = s.clock.Now()
	p.IsReadOnly = false

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.presets[key(newName)] = p

	s.log.Info().Str("preset", newName).Str("source", source.Name).Msg("duplicated preset")
	return p.Clone(), nil
}

func (s *service) AddMods(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return s.mutate(ctx, name, true, func(p *presetdomain.ModPreset) (bool, error) {
		before := len(p.Entries)
		p.Entries = appendEntries(p.Entries, entries, s.clock.Now())
		return len(p.Entries) != before, nil
	})
}

func (s *service) RemoveMods(ctx context.Context, name string, entries []presetdomain.ModPresetEntry) (*presetdomain.ModPreset, error) {
	remove := make(map[string]bool, len(entries))
	for _, e := range entries {
		remove[e.ModID] = true
	}
	return s.mutate(ctx, name, true, func(p *presetdomain.ModPreset) (bool, error) {
		kept := make([]presetdomain.ModPresetEntry, 0, len(p.Entries))
		for _, e := range p.Entries {
			if !remove[e.ModID] {
				kept = append(kept, e)
			}
		}
		changed := len(kept) != len(p.Entries)
		p.Entries = kept
		return changed, nil
	})
}

// SetEntryPreferences replaces the preferences of one entry; nil clears them
func (s *service) SetEntryPreferences(ctx context.Context, name, modID string, preferences map[string]string) (*presetdomain.ModPreset, error) {
	return s.mutate(ctx, name, true, func(p *presetdomain.ModPreset) (bool, error) {
		i := p.EntryIndex(modID)
		if i < 0 {
			return false, apperr.Newf(apperr.CodeModObjectNotFound, "mod '%s' is not in preset '%s'", modID, p.Name).
				WithMeta("variant", "mod").
				WithMeta("mod_id", modID).
				WithMeta("preset_name", p.Name)
		}
		var prefs map[string]string
		if preferences != nil {
			prefs = make(map[string]string, len(preferences))
			for k, v := range preferences {
				prefs[k] = v
			}
		}
		p.Entries[i].Preferences = prefs
		return true, nil
	})
}

// SetReadOnly toggles protection; it is the one mutation allowed on a protected preset
func (s *service) SetReadOnly(ctx context.Context, name string, readOnly bool) (*presetdomain.ModPreset, error) {
	return s.mutate(ctx, name, false, func(p *presetdomain.ModPreset) (bool, error) {
		changed := p.IsReadOnly != readOnly
		p.IsReadOnly = readOnly
		return changed, nil
	})
}

// mutate applies fn to a copy of the named preset and commits it once the
// copy is persisted. fn reports whether anything changed.
func (s *service) mutate(ctx context.Context, name string, requireWritable bool, fn func(p *presetdomain.ModPreset) (bool, error)) (*presetdomain.ModPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getLocked(name)
	if err != nil {
		return nil, err
	}
	if requireWritable && current.IsReadOnly {
		return nil, apperr.PresetReadOnly(current.Name)
	}

	updated := current.Clone()
	changed, err := fn(updated)
	if err != nil {
		return nil, err
	}
	if !changed {
		return current.Clone(), nil
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}
	s.presets[key(updated.Name)] = updated
	return updated.Clone(), nil
}

func (s *service) RenamePreset(ctx context.Context, oldName, newName string) (*presetdomain.ModPreset, error) {
	if err := presetRepo.ValidateName(newName); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getLocked(oldName)
	if err != nil {
		return nil, err
	}
	if current.IsReadOnly {
		return nil, apperr.PresetReadOnly(current.Name)
	}
	if current.Name == newName {
		return current.Clone(), nil
	}
	if _, exists := s.presets[key(newName)]; exists && key(newName) != key(current.Name) {
		return nil, apperr.DuplicatePresetName(newName)
	}

	if err := s.repo.Rename(ctx, current.Name, newName); err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.Name = newName
	delete(s.presets, key(current.Name))
	s.presets[key(newName)] = updated

	s.log.Info().Str("old_name", current.Name).Str("new_name", newName).Msg("renamed preset")
	return updated.Clone(), nil
}

// ReorderPresets requires an index for every preset and the indices must be
// exactly 0..n-1. Nothing changes unless all of them are written.
func (s *service) ReorderPresets(ctx context.Context, order map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(order) != len(s.presets) {
		return apperr.InvalidOrderf("order names %d presets, store has %d", len(order), len(s.presets)).
			WithMeta("expected", len(s.presets)).
			WithMeta("got", len(order))
	}

	used := make(map[int]string, len(order))
	assigned := make(map[string]int, len(order))
	for name, index := range order {
		p, err := s.getLocked(name)
		if err != nil {
			return err
		}
		if _, dup := assigned[key(p.Name)]; dup {
			return apperr.InvalidOrderf("preset '%s' is listed twice", p.Name).WithMeta("preset_name", p.Name)
		}
		if index < 0 || index >= len(order) {
			return apperr.InvalidOrderf("index %d of '%s' is outside 0..%d", index, p.Name, len(order)-1).
				WithMeta("preset_name", p.Name).
				WithMeta("index", index)
		}
		if other, taken := used[index]; taken {
			return apperr.InvalidOrderf("index %d is given to both '%s' and '%s'", index, other, p.Name).
				WithMeta("index", index)
		}
		used[index] = p.Name
		assigned[key(p.Name)] = index
	}

	var changed []*presetdomain.ModPreset
	for k, p := range s.presets {
		if p.Index == assigned[k] {
			continue
		}
		updated := p.Clone()
		updated.Index = assigned[k]
		changed = append(changed, updated)
	}
	if len(changed) == 0 {
		return nil
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].Index < changed[j].Index })

	if err := s.repo.SaveAll(ctx, changed); err != nil {
		return err
	}
	for _, p := range changed {
		s.presets[key(p.Name)] = p
	}

	s.log.Info().Int("presets", len(order)).Int("moved", len(changed)).Msg("reordered presets")
	return nil
}

// DeletePreset removes the preset and closes the gap it leaves in the indices
func (s *service) DeletePreset(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getLocked(name)
	if err != nil {
		return err
	}
	if current.IsReadOnly {
		return apperr.PresetReadOnly(current.Name)
	}

	var shifted, originals []*presetdomain.ModPreset
	for _, p := range s.sortedLocked() {
		if p.Index > current.Index {
			originals = append(originals, p.Clone())
			p.Index--
			shifted = append(shifted, p)
		}
	}

	if len(shifted) > 0 {
		if err := s.repo.SaveAll(ctx, shifted); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(ctx, current.Name); err != nil {
		if len(originals) > 0 {
			if restoreErr := s.repo.SaveAll(ctx, originals); restoreErr != nil {
				s.log.Error().Err(restoreErr).Str("preset", current.Name).Msg("failed to restore indices after failed delete")
			}
		}
		return err
	}

	delete(s.presets, key(current.Name))
	for _, p := range shifted {
		s.presets[key(p.Name)] = p
	}

	s.log.Info().Str("preset", current.Name).Msg("deleted preset")
	return nil
}

func validateEntries(entries []presetdomain.ModPresetEntry) error {
	for i, e := range entries {
		if strings.TrimSpace(e.ModID) == "" {
			return apperr.InvalidArgumentf("entry %d has no mod id", i).WithMeta("entry", i)
		}
	}
	return nil
}

// appendEntries adds entries whose mod id is not present yet. New entries are
// never missing and get an added-at time when they have none.
func appendEntries(existing, entries []presetdomain.ModPresetEntry, now time.Time) []presetdomain.ModPresetEntry {
	present := make(map[string]bool, len(existing)+len(entries))
	for _, e := range existing {
		present[e.ModID] = true
	}
	for _, e := range entries {
		if present[e.ModID] {
			continue
		}
		present[e.ModID] = true
		entry := e.Clone()
		entry.IsMissing = false
		if entry.AddedAt == nil {
			added := now
			entry.AddedAt = &added
		}
		existing = append(existing, entry)
	}
	return existing
}
