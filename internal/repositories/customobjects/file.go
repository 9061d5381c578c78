package customobjects

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// CharacterData represents the serialized form of a custom character
type CharacterData struct {
	InternalName identity.InternalName   `json:"InternalName"`
	DisplayName  string                  `json:"DisplayName"`
	Keys         []string                `json:"Keys,omitempty"`
	ModFilesName string                  `json:"ModFilesName,omitempty"`
	Image        string                  `json:"Image,omitempty"`
	IsMultiMod   bool                    `json:"IsMultiMod"`
	Rarity       int                     `json:"Rarity"`
	ReleaseDate  *time.Time              `json:"ReleaseDate,omitempty"`
	Element      identity.InternalName   `json:"Element"`
	Class        identity.InternalName   `json:"Class"`
	Regions      []identity.InternalName `json:"Regions,omitempty"`
}

// CustomModData represents the serialized form of a custom mod
type CustomModData struct {
	InternalName identity.InternalName `json:"InternalName"`
	DisplayName  string                `json:"DisplayName"`
	Keys         []string              `json:"Keys,omitempty"`
	ModFilesName string                `json:"ModFilesName,omitempty"`
	Image        string                `json:"Image,omitempty"`
	IsMultiMod   bool                  `json:"IsMultiMod"`
	Rarity       *int                  `json:"Rarity,omitempty"`
}

// Document is the on-disk layout
type Document struct {
	Characters []CharacterData `json:"Characters"`
	CustomMods []CustomModData `json:"CustomMods"`
}

// fileRepo keeps all custom objects of a profile in one JSON document
type fileRepo struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository creates a JSON file backed repository at path
func NewFileRepository(path string) Repository {
	if path == "" {
		panic("custom objects path is required")
	}
	return &fileRepo{path: path}
}

// Load reads the document
func (r *fileRepo) Load(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to read custom objects '%s'", r.path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.PersistenceFailuref(err, "failed to unmarshal custom objects '%s'", r.path)
	}

	return fromDocument(&doc), nil
}

// Save writes the document atomically
func (r *fileRepo) Save(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return apperr.InvalidArgument("snapshot cannot be nil")
	}

	data, err := json.MarshalIndent(toDocument(snapshot), "", "  ")
	if err != nil {
		return apperr.PersistenceFailure(err, "failed to marshal custom objects")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return apperr.PersistenceFailuref(err, "failed to create directory for '%s'", r.path)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperr.PersistenceFailuref(err, "failed to write custom objects '%s'", tmp)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return apperr.PersistenceFailuref(err, "failed to replace custom objects '%s'", r.path)
	}
	return nil
}

func toDocument(s *Snapshot) *Document {
	doc := &Document{
		Characters: make([]CharacterData, 0, len(s.Characters)),
		CustomMods: make([]CustomModData, 0, len(s.CustomMods)),
	}
	for _, c := range s.Characters {
		doc.Characters = append(doc.Characters, CharacterData{
			InternalName: c.InternalName,
			DisplayName:  c.DisplayName,
			Keys:         c.Keys.Values(),
			ModFilesName: c.ModFilesName,
			Image:        c.Image,
			IsMultiMod:   c.IsMultiMod,
			Rarity:       c.Rarity,
			ReleaseDate:  c.ReleaseDate,
			Element:      c.Element,
			Class:        c.Class,
			Regions:      c.Regions,
		})
	}
	for _, m := range s.CustomMods {
		doc.CustomMods = append(doc.CustomMods, CustomModData{
			InternalName: m.InternalName,
			DisplayName:  m.DisplayName,
			Keys:         m.Keys.Values(),
			ModFilesName: m.ModFilesName,
			Image:        m.Image,
			IsMultiMod:   m.IsMultiMod,
			Rarity:       m.Rarity,
		})
	}
	return doc
}

func fromDocument(doc *Document) *Snapshot {
	s := &Snapshot{}
	for _, d := range doc.Characters {
		c := &moddable.Character{
			Base: moddable.Base{
				InternalName: d.InternalName,
				DisplayName:  d.DisplayName,
				Keys:         identity.NewKeys(d.Keys...),
				ModFilesName: d.ModFilesName,
				Image:        d.Image,
				IsCustom:     true,
				IsMultiMod:   d.IsMultiMod,
			},
			Rarity:      d.Rarity,
			ReleaseDate: d.ReleaseDate,
			Element:     d.Element,
			Class:       d.Class,
			Regions:     d.Regions,
		}
		// custom characters always have their default skin
		c.Skins = []moddable.Skin{{
			InternalName: c.InternalName,
			ModFilesName: c.FolderName(),
			DisplayName:  c.DisplayName,
			Image:        c.Image,
			IsDefault:    true,
		}}
		s.Characters = append(s.Characters, c)
	}
	for _, d := range doc.CustomMods {
		s.CustomMods = append(s.CustomMods, &moddable.CustomMod{
			Base: moddable.Base{
				InternalName: d.InternalName,
				DisplayName:  d.DisplayName,
				Keys:         identity.NewKeys(d.Keys...),
				ModFilesName: d.ModFilesName,
				Image:        d.Image,
				IsCustom:     true,
				IsMultiMod:   d.IsMultiMod,
			},
			Rarity: d.Rarity,
		})
	}
	return s
}
