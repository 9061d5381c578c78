// Package moddable models the game entities mods can be attached to.
//
// Characters and custom mods form a closed set: Object is sealed, and callers
// switch on Kind or type-switch on *Character / *CustomMod. Skins are owned by
// their character and never stand alone in the registry.
package moddable

import (
	"time"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
)

// Kind tags the object variant
type Kind string

const (
	KindCharacter Kind = "character"
	KindCustomMod Kind = "custom_mod"
)

// Base holds the fields every moddable object shares
type Base struct {
	InternalName identity.InternalName
	DisplayName  string
	Keys         identity.Keys
	// ModFilesName is the folder name under the mods root; defaults to the internal name
	ModFilesName string
	// Image is a file URI or path; empty means no image
	Image      string
	IsCustom   bool
	IsMultiMod bool
}

// Object is the capability set shared by characters and custom mods
type Object interface {
	Kind() Kind
	Common() *Base
	sealed()
}

// MatchesName reports whether name resolves to the object by internal name or alias
func (b *Base) MatchesName(name string) bool {
	return identity.Matches(name, b.InternalName, b.Keys)
}

// FolderName returns the mod folder name, falling back to the internal name
func (b *Base) FolderName() string {
	if b.ModFilesName != "" {
		return b.ModFilesName
	}
	return b.InternalName.String()
}

// Character is a playable character shipped by the game or created by the user
type Character struct {
	Base
	Rarity      int
	ReleaseDate *time.Time
	Class       identity.InternalName
	Element     identity.InternalName
	Regions     []identity.InternalName
	Skins       []Skin
	// DefaultCharacter is set only on skin views built by SkinCharacter.
	// It is a key into the character table, not an owning pointer.
	DefaultCharacter *identity.InternalName
}

func (c *Character) Kind() Kind    { return KindCharacter }
func (c *Character) Common() *Base { return &c.Base }
func (c *Character) sealed()       {}

// Clone returns a deep copy safe to hand out of the registry
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	if c.ReleaseDate != nil {
		d := *c.ReleaseDate
		out.ReleaseDate = &d
	}
	if c.Regions != nil {
		out.Regions = append([]identity.InternalName(nil), c.Regions...)
	}
	if c.Skins != nil {
		out.Skins = make([]Skin, len(c.Skins))
		for i := range c.Skins {
			out.Skins[i] = c.Skins[i].clone()
		}
	}
	if c.DefaultCharacter != nil {
		d := *c.DefaultCharacter
		out.DefaultCharacter = &d
	}
	return &out
}

// SkinCharacter returns a pseudo-character view of one of the character's skins.
// The view's DefaultCharacter points back at c by internal name.
func (c *Character) SkinCharacter(skin Skin) *Character {
	base := c.InternalName
	view := &Character{
		Base: Base{
			InternalName: skin.InternalName,
			DisplayName:  skin.DisplayName,
			Keys:         identity.NewKeys(),
			ModFilesName: skin.ModFilesName,
			Image:        skin.Image,
			IsCustom:     c.IsCustom,
			IsMultiMod:   c.IsMultiMod,
		},
		Rarity:           c.Rarity,
		ReleaseDate:      c.ReleaseDate,
		Class:            c.Class,
		Element:          c.Element,
		Regions:          c.Regions,
		DefaultCharacter: &base,
	}
	if view.DisplayName == "" {
		view.DisplayName = c.DisplayName
	}
	if skin.Rarity != nil {
		view.Rarity = *skin.Rarity
	}
	if skin.ReleaseDate != nil {
		view.ReleaseDate = skin.ReleaseDate
	}
	if view.Image == "" {
		view.Image = c.Image
	}
	return view.Clone()
}

// Skin is an alternate outfit owned by exactly one character
type Skin struct {
	InternalName identity.InternalName
	ModFilesName string
	DisplayName  string
	Image        string
	ReleaseDate  *time.Time
	Rarity       *int
	// IsDefault marks the character's base appearance
	IsDefault bool
}

func (s Skin) clone() Skin {
	out := s
	if s.ReleaseDate != nil {
		d := *s.ReleaseDate
		out.ReleaseDate = &d
	}
	if s.Rarity != nil {
		r := *s.Rarity
		out.Rarity = &r
	}
	return out
}

// CustomMod is a user-created moddable object such as a weapon or UI mod
type CustomMod struct {
	Base
	Rarity *int
}

func (m *CustomMod) Kind() Kind    { return KindCustomMod }
func (m *CustomMod) Common() *Base { return &m.Base }
func (m *CustomMod) sealed()       {}

// Clone returns a deep copy
func (m *CustomMod) Clone() *CustomMod {
	if m == nil {
		return nil
	}
	out := *m
	if m.Rarity != nil {
		r := *m.Rarity
		out.Rarity = &r
	}
	return &out
}

// CloneObject copies any moddable object
func CloneObject(o Object) Object {
	switch v := o.(type) {
	case *Character:
		return v.Clone()
	case *CustomMod:
		return v.Clone()
	default:
		return nil
	}
}

// KindOf returns the variant tag for a concrete object type parameter
func KindOf[T Object]() Kind {
	var zero T
	switch any(zero).(type) {
	case *Character:
		return KindCharacter
	case *CustomMod:
		return KindCustomMod
	default:
		return ""
	}
}
