package moddable

import (
	"time"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/update"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// CreateCharacterRequest contains everything needed to create a custom character
type CreateCharacterRequest struct {
	InternalName identity.InternalName
	DisplayName  string
	Rarity       int
	Keys         []string
	ReleaseDate  *time.Time
	// Image is a source path copied into the profile's image folder
	Image        string
	Element      identity.InternalName
	Class        identity.InternalName
	Regions      []identity.InternalName
	ModFilesName string
	IsMultiMod   bool
}

// Validate checks the request's own fields; uniqueness is checked by the registry
func (r *CreateCharacterRequest) Validate() error {
	if r == nil {
		return apperr.InvalidArgument("create character request cannot be nil")
	}
	if r.InternalName.IsEmpty() {
		return apperr.InvalidArgument("internal name is required")
	}
	if r.DisplayName == "" {
		return apperr.InvalidArgument("display name is required").
			WithMeta("internal_name", r.InternalName.String())
	}
	if r.Rarity < 0 {
		return apperr.InvalidArgumentf("rarity %d cannot be negative", r.Rarity).
			WithMeta("internal_name", r.InternalName.String())
	}
	return nil
}

// EditCustomCharacterRequest carries a partial update for a custom character.
// Unset fields keep their current value.
type EditCustomCharacterRequest struct {
	DisplayName update.NewValue[string]
	Keys        update.NewValue[[]string]
	IsMultiMod  update.NewValue[bool]
	Rarity      update.NewValue[int]
	ReleaseDate update.NewValue[*time.Time]
	Image       update.NewValue[string]
	Element     update.NewValue[identity.InternalName]
	Class       update.NewValue[identity.InternalName]
	Regions     update.NewValue[[]identity.InternalName]
}

// AnyValuesSet reports whether the request would change anything
func (r *EditCustomCharacterRequest) AnyValuesSet() bool {
	if r == nil {
		return false
	}
	return update.AnySet(
		r.DisplayName,
		r.Keys,
		r.IsMultiMod,
		r.Rarity,
		r.ReleaseDate,
		r.Image,
		r.Element,
		r.Class,
		r.Regions,
	)
}

// Validate checks set fields that can be validated without the registry
func (r *EditCustomCharacterRequest) Validate() error {
	if r.DisplayName.IsSet() && r.DisplayName.Value() == "" {
		return apperr.InvalidArgument("display name cannot be set to empty")
	}
	if r.Rarity.IsSet() && r.Rarity.Value() < 0 {
		return apperr.InvalidArgumentf("rarity %d cannot be negative", r.Rarity.Value())
	}
	return nil
}

// ApplyTo writes every set field onto c. Callers validate first and pass a clone.
// imagePath replaces the raw Image value when the image was copied.
func (r *EditCustomCharacterRequest) ApplyTo(c *Character, imagePath string) {
	c.DisplayName = r.DisplayName.ValueOr(c.DisplayName)
	if r.Keys.IsSet() {
		c.Keys = identity.NewKeys(r.Keys.Value()...)
	}
	c.IsMultiMod = r.IsMultiMod.ValueOr(c.IsMultiMod)
	c.Rarity = r.Rarity.ValueOr(c.Rarity)
	c.ReleaseDate = r.ReleaseDate.ValueOr(c.ReleaseDate)
	if r.Image.IsSet() {
		c.Image = imagePath
	}
	c.Element = r.Element.ValueOr(c.Element)
	c.Class = r.Class.ValueOr(c.Class)
	if r.Regions.IsSet() {
		c.Regions = append([]identity.InternalName(nil), r.Regions.Value()...)
	}
}

// CreateCustomModRequest contains everything needed to create a custom mod object
type CreateCustomModRequest struct {
	InternalName identity.InternalName
	DisplayName  string
	Keys         []string
	Rarity       *int
	Image        string
	ModFilesName string
	IsMultiMod   bool
}

// Validate checks the request's own fields
func (r *CreateCustomModRequest) Validate() error {
	if r == nil {
		return apperr.InvalidArgument("create custom mod request cannot be nil")
	}
	if r.InternalName.IsEmpty() {
		return apperr.InvalidArgument("internal name is required")
	}
	if r.DisplayName == "" {
		return apperr.InvalidArgument("display name is required").
			WithMeta("internal_name", r.InternalName.String())
	}
	if r.Rarity != nil && *r.Rarity < 0 {
		return apperr.InvalidArgumentf("rarity %d cannot be negative", *r.Rarity)
	}
	return nil
}

// EditCustomModRequest carries a partial update for a custom mod
type EditCustomModRequest struct {
	DisplayName update.NewValue[string]
	Keys        update.NewValue[[]string]
	IsMultiMod  update.NewValue[bool]
	Rarity      update.NewValue[*int]
	Image       update.NewValue[string]
}

// AnyValuesSet reports whether the request would change anything
func (r *EditCustomModRequest) AnyValuesSet() bool {
	if r == nil {
		return false
	}
	return update.AnySet(r.DisplayName, r.Keys, r.IsMultiMod, r.Rarity, r.Image)
}

// Validate checks set fields
func (r *EditCustomModRequest) Validate() error {
	if r.DisplayName.IsSet() && r.DisplayName.Value() == "" {
		return apperr.InvalidArgument("display name cannot be set to empty")
	}
	if r.Rarity.IsSet() && r.Rarity.Value() != nil && *r.Rarity.Value() < 0 {
		return apperr.InvalidArgumentf("rarity %d cannot be negative", *r.Rarity.Value())
	}
	return nil
}

// ApplyTo writes every set field onto m
func (r *EditCustomModRequest) ApplyTo(m *CustomMod, imagePath string) {
	m.DisplayName = r.DisplayName.ValueOr(m.DisplayName)
	if r.Keys.IsSet() {
		m.Keys = identity.NewKeys(r.Keys.Value()...)
	}
	m.IsMultiMod = r.IsMultiMod.ValueOr(m.IsMultiMod)
	if r.Rarity.IsSet() {
		if v := r.Rarity.Value(); v != nil {
			rarity := *v
			m.Rarity = &rarity
		} else {
			m.Rarity = nil
		}
	}
	if r.Image.IsSet() {
		m.Image = imagePath
	}
}
