package presets

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// Document is the persisted form of a preset. The name is not stored; it is
// the file stem or the Redis key suffix.
type Document struct {
	IsReadOnly bool            `json:"IsReadOnly"`
	Created    time.Time       `json:"Created"`
	Index      int             `json:"Index"`
	Mods       []EntryDocument `json:"Mods"`
}

// EntryDocument is the persisted form of one preset entry.
// Optional fields are omitted when unset and read back as unset.
type EntryDocument struct {
	ModID       string             `json:"ModId"`
	FullPath    string             `json:"FullPath"`
	IsMissing   bool               `json:"IsMissing"`
	CustomName  *string            `json:"CustomName,omitempty"`
	SourceURL   *string            `json:"SourceUrl,omitempty"`
	Preferences *map[string]string `json:"Preferences,omitempty"`
	AddedAt     *string            `json:"AddedAt,omitempty"`
}

// ToDocument converts a preset to its persisted form
func ToDocument(p *preset.ModPreset) *Document {
	doc := &Document{
		IsReadOnly: p.IsReadOnly,
		Created:    p.Created,
		Index:      p.Index,
		Mods:       make([]EntryDocument, len(p.Entries)),
	}
	for i, e := range p.Entries {
		e = e.Clone()
		entry := EntryDocument{
			ModID:      e.ModID,
			FullPath:   e.FullPath,
			IsMissing:  e.IsMissing,
			CustomName: e.CustomName,
			SourceURL:  e.SourceURL,
		}
		if e.Preferences != nil {
			prefs := e.Preferences
			entry.Preferences = &prefs
		}
		if e.AddedAt != nil {
			added := e.AddedAt.Format(time.RFC3339Nano)
			entry.AddedAt = &added
		}
		doc.Mods[i] = entry
	}
	return doc
}

// FromDocument converts a persisted document back to a preset
func FromDocument(name string, doc *Document) (*preset.ModPreset, error) {
	p := &preset.ModPreset{
		Name:       name,
		Index:      doc.Index,
		Created:    doc.Created,
		IsReadOnly: doc.IsReadOnly,
		Entries:    make([]preset.ModPresetEntry, len(doc.Mods)),
	}
	for i, m := range doc.Mods {
		entry := preset.ModPresetEntry{
			ModID:      m.ModID,
			FullPath:   m.FullPath,
			IsMissing:  m.IsMissing,
			CustomName: m.CustomName,
			SourceURL:  m.SourceURL,
		}
		if m.Preferences != nil {
			entry.Preferences = *m.Preferences
			if entry.Preferences == nil {
				entry.Preferences = map[string]string{}
			}
		}
		if m.AddedAt != nil {
			added, err := time.Parse(time.RFC3339Nano, *m.AddedAt)
			if err != nil {
				return nil, apperr.PersistenceFailuref(err, "preset '%s' entry %d has an invalid AddedAt", name, i).
					WithMeta("preset_name", name)
			}
			entry.AddedAt = &added
		}
		p.Entries[i] = entry
	}
	return p, nil
}

// Marshal encodes a preset as an indented JSON document
func Marshal(p *preset.ModPreset) ([]byte, error) {
	data, err := json.MarshalIndent(ToDocument(p), "", "  ")
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to marshal preset '%s'", p.Name)
	}
	return data, nil
}

// Unmarshal decodes a preset document
func Unmarshal(name string, data []byte) (*preset.ModPreset, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to unmarshal preset '%s'", name).
			WithMeta("preset_name", name)
	}
	return FromDocument(name, &doc)
}

// ValidateName rejects names that cannot be used as a file stem or key
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperr.InvalidArgument("preset name is required")
	}
	if trimmed != name {
		return apperr.InvalidArgumentf("preset name '%s' has surrounding whitespace", name).
			WithMeta("preset_name", name)
	}
	if strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\:*?"<>|`) {
		return apperr.InvalidArgumentf("preset name '%s' contains invalid characters", name).
			WithMeta("preset_name", name)
	}
	return nil
}
