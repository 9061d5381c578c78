// Package inventory describes the mods currently present on disk and the
// collaborators that enumerate and toggle them.
package inventory

//go:generate mockgen -destination=mock/mock.go -package=mockinventory -source=inventory.go

import (
	"context"
	"path/filepath"
	"strings"
)

// DisabledPrefix marks a disabled mod folder
const DisabledPrefix = "DISABLED_"

// Mod is one mod folder found under a character folder
type Mod struct {
	ID        string
	FullPath  string
	Character string
	Enabled   bool
	// CustomName and SourceURL come from the mod's config file when present
	CustomName *string
	SourceURL  *string
}

// Provider lists the live mods for the active game profile
type Provider interface {
	CurrentMods(ctx context.Context) (*Inventory, error)
}

// Sink enables and disables individual mods
type Sink interface {
	Enable(ctx context.Context, modID, character string) error
	Disable(ctx context.Context, modID, character string) error
}

// Inventory is an ordered snapshot of mods keyed by id
type Inventory struct {
	mods   []Mod
	byID   map[string]int
	byPath map[string][]int
}

// New builds an inventory preserving the order of mods.
// A duplicated id keeps its first occurrence for id lookups.
func New(mods []Mod) *Inventory {
	inv := &Inventory{
		mods:   make([]Mod, len(mods)),
		byID:   make(map[string]int, len(mods)),
		byPath: make(map[string][]int, len(mods)),
	}
	copy(inv.mods, mods)
	for i, m := range inv.mods {
		if _, exists := inv.byID[m.ID]; !exists {
			inv.byID[m.ID] = i
		}
		key := CanonicalPath(m.FullPath)
		inv.byPath[key] = append(inv.byPath[key], i)
	}
	return inv
}

// ByID returns the mod with the given id
func (i *Inventory) ByID(id string) (Mod, bool) {
	if i == nil || id == "" {
		return Mod{}, false
	}
	idx, ok := i.byID[id]
	if !ok {
		return Mod{}, false
	}
	return i.mods[idx], true
}

// ByPath returns every mod whose canonical path equals path's, in inventory order
func (i *Inventory) ByPath(path string) []Mod {
	if i == nil || path == "" {
		return nil
	}
	idxs := i.byPath[CanonicalPath(path)]
	out := make([]Mod, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, i.mods[idx])
	}
	return out
}

// ForCharacter returns mods stored under the given character folder
func (i *Inventory) ForCharacter(character string) []Mod {
	if i == nil {
		return nil
	}
	var out []Mod
	for _, m := range i.mods {
		if strings.EqualFold(m.Character, character) {
			out = append(out, m)
		}
	}
	return out
}

// Filter returns a new inventory holding the mods keep accepts, in order
func (i *Inventory) Filter(keep func(Mod) bool) *Inventory {
	if i == nil {
		return New(nil)
	}
	var mods []Mod
	for _, m := range i.mods {
		if keep(m) {
			mods = append(mods, m)
		}
	}
	return New(mods)
}

// Mods returns all mods in order
func (i *Inventory) Mods() []Mod {
	if i == nil {
		return nil
	}
	out := make([]Mod, len(i.mods))
	copy(out, i.mods)
	return out
}

// Len returns the number of mods
func (i *Inventory) Len() int {
	if i == nil {
		return 0
	}
	return len(i.mods)
}

// replace returns a copy with the mod sharing updated's id swapped out
func (i *Inventory) replace(updated Mod) *Inventory {
	if i == nil {
		return nil
	}
	idx, ok := i.byID[updated.ID]
	if !ok {
		return i
	}
	mods := i.Mods()
	mods[idx] = updated
	return New(mods)
}

// CanonicalPath cleans p and strips the disabled prefix from its folder name,
// so a mod toggled on or off keeps the same match key.
func CanonicalPath(p string) string {
	if p == "" {
		return ""
	}
	p = filepath.Clean(p)
	dir, base := filepath.Split(p)
	if len(base) > len(DisabledPrefix) && strings.EqualFold(base[:len(DisabledPrefix)], DisabledPrefix) {
		base = base[len(DisabledPrefix):]
	}
	return filepath.Join(dir, base)
}
