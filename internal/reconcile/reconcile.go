// Package reconcile matches persisted preset entries against the live mod
// inventory, healing drifted paths and flagging entries whose mod is gone.
//
// Matching is by mod id first and by path second. Entries are never removed
// here; a missing entry stays in the preset so a later pass can heal it.
package reconcile

import (
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/inventory"
	"github.com/KirkDiggler/mod-preset-manager/internal/logger"
)

// Outcome classifies what happened to one entry
type Outcome int

const (
	// Unchanged entries matched by id at their recorded path
	Unchanged Outcome = iota
	// PathUpdated entries matched by id at a new path
	PathUpdated
	// IDAdopted entries matched by path and took the inventory's id
	IDAdopted
	// Missing entries matched nothing
	Missing
)

// EntryResult is the per-entry outcome, aligned with the input order
type EntryResult struct {
	Outcome Outcome
	// Healed is true when the entry was missing before this pass and found now
	Healed bool
	Mod    inventory.Mod
}

// Result is the outcome of a reconciliation pass
type Result struct {
	// Entries is a reconciled copy in the same order as the input
	Entries     []preset.ModPresetEntry
	PerEntry    []EntryResult
	Changed     bool
	Ambiguities []preset.Ambiguity
}

// Resolved returns the inventory mod for entry i when it was found
func (r *Result) Resolved(i int) (inventory.Mod, bool) {
	if i < 0 || i >= len(r.PerEntry) || r.PerEntry[i].Outcome == Missing {
		return inventory.Mod{}, false
	}
	return r.PerEntry[i].Mod, true
}

// MissingCount returns the number of entries still missing
func (r *Result) MissingCount() int {
	n := 0
	for _, e := range r.PerEntry {
		if e.Outcome == Missing {
			n++
		}
	}
	return n
}

// Engine runs reconciliation passes
type Engine struct {
	log *logger.Logger
}

// NewEngine creates an engine; a nil logger discards output
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{log: log.Component("reconcile")}
}

// Reconcile matches entries against inv. The input slice is not modified.
func (e *Engine) Reconcile(presetName string, entries []preset.ModPresetEntry, inv *inventory.Inventory) *Result {
	result := &Result{
		Entries:  make([]preset.ModPresetEntry, len(entries)),
		PerEntry: make([]EntryResult, len(entries)),
	}

	claimed := make(map[string]bool, len(entries))
	for _, entry := range entries {
		claimed[entry.ModID] = true
	}

	for i, original := range entries {
		entry := original.Clone()
		wasMissing := entry.IsMissing

		res := e.match(presetName, &entry, inv, claimed, result)
		res.Healed = wasMissing && res.Outcome != Missing

		if entry.ModID != original.ModID || entry.FullPath != original.FullPath || entry.IsMissing != original.IsMissing {
			result.Changed = true
		}

		result.Entries[i] = entry
		result.PerEntry[i] = res
	}

	if result.Changed || len(result.Ambiguities) > 0 {
		e.log.Info().
			Str("preset", presetName).
			Int("entries", len(entries)).
			Int("missing", result.MissingCount()).
			Int("ambiguities", len(result.Ambiguities)).
			Msg("reconciled preset")
	}

	return result
}

func (e *Engine) match(presetName string, entry *preset.ModPresetEntry, inv *inventory.Inventory, claimed map[string]bool, result *Result) EntryResult {
	if mod, ok := inv.ByID(entry.ModID); ok {
		outcome := Unchanged
		if entry.FullPath != mod.FullPath {
			e.log.Debug().Str("preset", presetName).Str("mod_id", entry.ModID).
				Str("old_path", entry.FullPath).Str("new_path", mod.FullPath).Msg("mod path drifted")
			entry.FullPath = mod.FullPath
			outcome = PathUpdated
		}
		entry.IsMissing = false
		return EntryResult{Outcome: outcome, Mod: mod}
	}

	// An id already owned by another entry of the preset is skipped; adopting
	// it would make removal by id hit both entries.
	candidates := inv.ByPath(entry.FullPath)
	for _, chosen := range candidates {
		if claimed[chosen.ID] {
			continue
		}
		if len(candidates) > 1 {
			ids := make([]string, len(candidates))
			for i, c := range candidates {
				ids[i] = c.ID
			}
			result.Ambiguities = append(result.Ambiguities, preset.Ambiguity{
				Code:       apperr.CodeReconciliationAmbiguity,
				EntryModID: entry.ModID,
				FullPath:   entry.FullPath,
				ChosenID:   chosen.ID,
				Candidates: ids,
			})
			e.log.Warn().Str("preset", presetName).Str("path", entry.FullPath).
				Str("chosen", chosen.ID).Strs("candidates", ids).Msg("ambiguous path match")
		}

		e.log.Info().Str("preset", presetName).Str("old_id", entry.ModID).
			Str("new_id", chosen.ID).Msg("adopted mod id by path")
		claimed[chosen.ID] = true
		entry.ModID = chosen.ID
		entry.FullPath = chosen.FullPath
		entry.IsMissing = false
		return EntryResult{Outcome: IDAdopted, Mod: chosen}
	}

	if !entry.IsMissing {
		e.log.Warn().Str("preset", presetName).Str("mod_id", entry.ModID).
			Str("path", entry.FullPath).Msg("preset mod missing")
	}
	entry.IsMissing = true
	return EntryResult{Outcome: Missing}
}
