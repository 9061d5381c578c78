// Package preset defines named, ordered snapshots of enabled mods.
package preset

import (
	"sort"
	"time"
)

// ModPreset is a named, ordered snapshot of enabled mods
type ModPreset struct {
	Name       string
	Index      int
	Created    time.Time
	IsReadOnly bool
	Entries    []ModPresetEntry
}

// ModPresetEntry references one mod folder inside a preset.
// ModID is the primary match key; FullPath is only a fallback.
type ModPresetEntry struct {
	ModID      string
	FullPath   string
	IsMissing  bool
	CustomName *string
	SourceURL  *string
	// Preferences is nil when unset, which is distinct from an empty map
	Preferences map[string]string
	AddedAt     *time.Time
}

// Clone returns a deep copy of the preset
func (p *ModPreset) Clone() *ModPreset {
	if p == nil {
		return nil
	}
	out := *p
	if p.Entries != nil {
		out.Entries = make([]ModPresetEntry, len(p.Entries))
		for i := range p.Entries {
			out.Entries[i] = p.Entries[i].Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the entry
func (e ModPresetEntry) Clone() ModPresetEntry {
	out := e
	if e.CustomName != nil {
		v := *e.CustomName
		out.CustomName = &v
	}
	if e.SourceURL != nil {
		v := *e.SourceURL
		out.SourceURL = &v
	}
	if e.Preferences != nil {
		out.Preferences = make(map[string]string, len(e.Preferences))
		for k, v := range e.Preferences {
			out.Preferences[k] = v
		}
	}
	if e.AddedAt != nil {
		v := *e.AddedAt
		out.AddedAt = &v
	}
	return out
}

// EntryIndex returns the position of the entry with modID, or -1
func (p *ModPreset) EntryIndex(modID string) int {
	for i := range p.Entries {
		if p.Entries[i].ModID == modID {
			return i
		}
	}
	return -1
}

// MissingCount returns how many entries are flagged missing
func (p *ModPreset) MissingCount() int {
	n := 0
	for i := range p.Entries {
		if p.Entries[i].IsMissing {
			n++
		}
	}
	return n
}

// SortByIndex orders presets by their display index
func SortByIndex(presets []*ModPreset) {
	sort.SliceStable(presets, func(i, j int) bool {
		return presets[i].Index < presets[j].Index
	})
}

// NextIndex returns the first index after all existing ones
func NextIndex(presets []*ModPreset) int {
	next := 0
	for _, p := range presets {
		if p.Index >= next {
			next = p.Index + 1
		}
	}
	return next
}
