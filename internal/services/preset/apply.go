package preset

import (
	"context"
	"path/filepath"
	"strings"

	presetdomain "github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/inventory"
	"github.com/KirkDiggler/mod-preset-manager/internal/reconcile"
)

// reconcilePresets matches every preset against one fresh inventory scan and
// returns reconciled copies of the presets that changed
func (s *service) reconcilePresets(ctx context.Context, presets []*presetdomain.ModPreset) ([]*ReconcileSummary, []*presetdomain.ModPreset, error) {
	if len(presets) == 0 {
		return nil, nil, nil
	}

	inv, err := s.currentMods(ctx)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]*ReconcileSummary, 0, len(presets))
	var changed []*presetdomain.ModPreset
	for _, p := range presets {
		res := s.engine.Reconcile(p.Name, p.Entries, inv)
		summaries = append(summaries, summarize(p.Name, res))
		if res.Changed {
			updated := p.Clone()
			updated.Entries = res.Entries
			changed = append(changed, updated)
		}
	}
	return summaries, changed, nil
}

// currentMods scans the mods directory. With a registry attached, mods under
// a folder that no moddable object owns are dropped, so entries pointing at a
// deleted object stay missing until an object claims the folder again.
func (s *service) currentMods(ctx context.Context) (*inventory.Inventory, error) {
	inv, err := s.provider.CurrentMods(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to read mod inventory")
	}
	if s.objects == nil {
		return inv, nil
	}

	owned := make(map[string]bool)
	return inv.Filter(func(m inventory.Mod) bool {
		folder := strings.ToLower(m.Character)
		known, seen := owned[folder]
		if !seen {
			_, known = s.objects.ObjectByFolder(m.Character)
			owned[folder] = known
			if !known {
				s.log.Debug().Str("folder", m.Character).Msg("mod folder has no moddable object")
			}
		}
		return known
	}), nil
}

func summarize(name string, res *reconcile.Result) *ReconcileSummary {
	summary := &ReconcileSummary{
		PresetName:  name,
		Entries:     len(res.Entries),
		Missing:     res.MissingCount(),
		Changed:     res.Changed,
		Ambiguities: res.Ambiguities,
	}
	for _, e := range res.PerEntry {
		if e.Healed {
			summary.Healed++
		}
	}
	return summary
}

func (s *service) Reconcile(ctx context.Context) ([]*ReconcileSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries, changed, err := s.reconcilePresets(ctx, s.sortedLocked())
	if err != nil {
		return nil, err
	}
	if len(changed) > 0 {
		if err := s.repo.SaveAll(ctx, changed); err != nil {
			return nil, err
		}
		for _, p := range changed {
			s.presets[key(p.Name)] = p
		}
	}
	return summaries, nil
}

// ApplyPreset reconciles the preset, then disables every other mod of the
// affected characters and enables the resolved entries. Sink failures are
// recorded in the report and do not stop the run.
func (s *service) ApplyPreset(ctx context.Context, name string) (*presetdomain.ApplyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getLocked(name)
	if err != nil {
		return nil, err
	}

	inv, err := s.currentMods(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to reconcile preset").WithMeta("preset_name", current.Name)
	}

	res := s.engine.Reconcile(current.Name, current.Entries, inv)
	if res.Changed {
		updated := current.Clone()
		updated.Entries = res.Entries
		if err := s.repo.Save(ctx, updated); err != nil {
			return nil, err
		}
		s.presets[key(updated.Name)] = updated
	}

	report := &presetdomain.ApplyReport{
		PresetName:  current.Name,
		Ambiguities: res.Ambiguities,
	}

	winners := s.pickWinners(res, report)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var affected []string
	seenCharacter := make(map[string]bool)
	keep := make(map[string]bool, len(winners))
	for _, mod := range winners {
		keep[mod.ID] = true
		if c := strings.ToLower(mod.Character); !seenCharacter[c] {
			seenCharacter[c] = true
			affected = append(affected, mod.Character)
		}
	}

	var others []inventory.Mod
	for _, character := range affected {
		others = append(others, inv.ForCharacter(character)...)
	}

	for _, mod := range others {
		if !mod.Enabled || keep[mod.ID] {
			continue
		}
		if err := s.sink.Disable(ctx, mod.ID, mod.Character); err != nil {
			report.Failed = append(report.Failed, presetdomain.FailedMod{ModID: mod.ID, Character: mod.Character, Err: err})
			continue
		}
		report.Disabled = append(report.Disabled, presetdomain.AppliedMod{ModID: mod.ID, FullPath: mod.FullPath, Character: mod.Character})
	}

	for _, mod := range winners {
		if err := s.sink.Enable(ctx, mod.ID, mod.Character); err != nil {
			report.Failed = append(report.Failed, presetdomain.FailedMod{ModID: mod.ID, Character: mod.Character, Err: err})
			continue
		}
		report.Applied = append(report.Applied, presetdomain.AppliedMod{ModID: mod.ID, FullPath: mod.FullPath, Character: mod.Character})
	}

	event := s.log.Info()
	if len(report.Failed) > 0 {
		event = s.log.Warn()
	}
	event.Str("preset", current.Name).
		Int("applied", len(report.Applied)).
		Int("disabled", len(report.Disabled)).
		Int("skipped_missing", len(report.SkippedMissing)).
		Int("conflicts", len(report.Conflicts)).
		Int("failed", len(report.Failed)).
		Msg("applied preset")

	return report, nil
}

// pickWinners resolves entries in order. For a character that takes a single
// mod the last entry wins and the earlier ones become conflicts.
func (s *service) pickWinners(res *reconcile.Result, report *presetdomain.ApplyReport) []inventory.Mod {
	var winners []inventory.Mod
	seen := make(map[string]bool)
	single := make(map[string]int)

	for i, entry := range res.Entries {
		mod, ok := res.Resolved(i)
		if !ok {
			report.SkippedMissing = append(report.SkippedMissing, entry.Clone())
			continue
		}
		if seen[mod.ID] {
			continue
		}
		seen[mod.ID] = true

		character := strings.ToLower(mod.Character)
		if !s.isMultiMod(mod.Character) {
			if prev, taken := single[character]; taken {
				report.Conflicts = append(report.Conflicts, presetdomain.Conflict{
					Character:    mod.Character,
					OverriddenID: winners[prev].ID,
					WinnerID:     mod.ID,
				})
				winners[prev] = mod
				continue
			}
			single[character] = len(winners)
		}
		winners = append(winners, mod)
	}
	return winners
}

func (s *service) isMultiMod(folder string) bool {
	if s.objects == nil {
		return false
	}
	o, ok := s.objects.ObjectByFolder(folder)
	return ok && o.Common().IsMultiMod
}

func (s *service) DetachModsUnder(ctx context.Context, folder string) (int, error) {
	if folder == "" {
		return 0, apperr.InvalidArgument("folder is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	detached := 0
	var changed []*presetdomain.ModPreset
	for _, p := range s.sortedLocked() {
		touched := false
		for i := range p.Entries {
			e := &p.Entries[i]
			if e.IsMissing || !strings.EqualFold(characterFolder(e.FullPath), folder) {
				continue
			}
			e.IsMissing = true
			detached++
			touched = true
		}
		if touched {
			changed = append(changed, p)
		}
	}

	if len(changed) == 0 {
		return 0, nil
	}
	if err := s.repo.SaveAll(ctx, changed); err != nil {
		return 0, err
	}
	for _, p := range changed {
		s.presets[key(p.Name)] = p
	}

	s.log.Info().Str("folder", folder).Int("entries", detached).Int("presets", len(changed)).Msg("detached preset entries")
	return detached, nil
}

func characterFolder(fullPath string) string {
	if fullPath == "" {
		return ""
	}
	return filepath.Base(filepath.Dir(inventory.CanonicalPath(fullPath)))
}
