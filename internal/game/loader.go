// Package game loads the shipped JSON definitions of a game profile.
//
// Games disagree on schema details: some have no classes, regions may be a
// single string or a list, and release dates come with or without a zone.
// The loader normalizes all of that into the moddable model.
package game

//go:generate mockgen -destination=mock/mock.go -package=mockgame -source=loader.go

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

const (
	charactersFile = "characters.json"
	elementsFile   = "elements.json"
	classesFile    = "classes.json"
	regionsFile    = "regions.json"
	imagesDir      = "images"
)

// Profile is the static data of one game
type Profile struct {
	Game       string
	Characters []*moddable.Character
	Elements   []moddable.Element
	Classes    []moddable.Class
	Regions    []moddable.Region
}

// Loader supplies a game profile
type Loader interface {
	Load(ctx context.Context) (*Profile, error)
}

type characterJSON struct {
	InternalName string          `json:"InternalName"`
	DisplayName  string          `json:"DisplayName"`
	Keys         []string        `json:"Keys"`
	ReleaseDate  string          `json:"ReleaseDate"`
	Rarity       int             `json:"Rarity"`
	Element      string          `json:"Element"`
	Class        string          `json:"Class"`
	Region       json.RawMessage `json:"Region"`
	ModFilesName string          `json:"ModFilesName"`
	Image        string          `json:"Image"`
	IsMultiMod   bool            `json:"IsMultiMod"`
	InGameSkins  []skinJSON      `json:"InGameSkins"`
}

type skinJSON struct {
	InternalName string `json:"InternalName"`
	DisplayName  string `json:"DisplayName"`
	ModFilesName string `json:"ModFilesName"`
	Image        string `json:"Image"`
	ReleaseDate  string `json:"ReleaseDate"`
	Rarity       *int   `json:"Rarity"`
}

type refJSON struct {
	InternalName string   `json:"InternalName"`
	DisplayName  string   `json:"DisplayName"`
	Keys         []string `json:"Keys"`
	Image        string   `json:"Image"`
}

// JSONLoader reads definitions from a directory
type JSONLoader struct {
	game string
	dir  string
}

// NewJSONLoader creates a loader for the definitions in dir
func NewJSONLoader(game, dir string) *JSONLoader {
	return &JSONLoader{game: game, dir: dir}
}

// Load reads and validates every definition file. characters.json and
// elements.json are required; classes and regions are optional.
func (l *JSONLoader) Load(ctx context.Context) (*Profile, error) {
	profile := &Profile{Game: l.game}

	var elements []refJSON
	if err := l.readFile(elementsFile, &elements, true); err != nil {
		return nil, err
	}
	var classes []refJSON
	if err := l.readFile(classesFile, &classes, false); err != nil {
		return nil, err
	}
	var regions []refJSON
	if err := l.readFile(regionsFile, &regions, false); err != nil {
		return nil, err
	}
	var characters []characterJSON
	if err := l.readFile(charactersFile, &characters, true); err != nil {
		return nil, err
	}

	for _, e := range elements {
		profile.Elements = append(profile.Elements, moddable.Element{
			InternalName: identity.NewInternalName(e.InternalName),
			DisplayName:  e.DisplayName,
			Keys:         identity.NewKeys(e.Keys...),
			Image:        l.imagePath(e.Image),
		})
	}
	for _, c := range classes {
		profile.Classes = append(profile.Classes, moddable.Class{
			InternalName: identity.NewInternalName(c.InternalName),
			DisplayName:  c.DisplayName,
			Keys:         identity.NewKeys(c.Keys...),
			Image:        l.imagePath(c.Image),
		})
	}
	for _, r := range regions {
		profile.Regions = append(profile.Regions, moddable.Region{
			InternalName: identity.NewInternalName(r.InternalName),
			DisplayName:  r.DisplayName,
			Keys:         identity.NewKeys(r.Keys...),
			Image:        l.imagePath(r.Image),
		})
	}

	seen := make(map[identity.InternalName]bool, len(characters))
	for i, raw := range characters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := l.toCharacter(raw)
		if err != nil {
			return nil, apperr.Wrapf(err, "invalid character %d in %s", i, charactersFile).
				WithMeta("game", l.game)
		}
		if seen[c.InternalName] {
			return nil, apperr.DuplicateIdentityf("character '%s' is defined twice in %s", c.InternalName, charactersFile).
				WithMeta("game", l.game).
				WithMeta("internal_name", c.InternalName.String())
		}
		seen[c.InternalName] = true
		profile.Characters = append(profile.Characters, c)
	}

	return profile, nil
}

func (l *JSONLoader) readFile(name string, v any, required bool) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return apperr.PersistenceFailuref(err, "failed to read %s", path).WithMeta("game", l.game)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperr.PersistenceFailuref(err, "failed to parse %s", path).WithMeta("game", l.game)
	}
	return nil
}

func (l *JSONLoader) toCharacter(raw characterJSON) (*moddable.Character, error) {
	name := identity.NewInternalName(raw.InternalName)
	if name.IsEmpty() {
		return nil, apperr.InvalidArgument("character internal name is required")
	}

	release, err := parseDate(raw.ReleaseDate)
	if err != nil {
		return nil, apperr.InvalidArgumentf("character '%s' has invalid release date '%s'", name, raw.ReleaseDate)
	}
	regions, err := parseRegions(raw.Region)
	if err != nil {
		return nil, apperr.InvalidArgumentf("character '%s' has invalid region: %v", name, err)
	}

	c := &moddable.Character{
		Base: moddable.Base{
			InternalName: name,
			DisplayName:  raw.DisplayName,
			Keys:         identity.NewKeys(raw.Keys...),
			ModFilesName: raw.ModFilesName,
			Image:        l.imagePath(raw.Image),
			IsMultiMod:   raw.IsMultiMod,
		},
		Rarity:      raw.Rarity,
		ReleaseDate: release,
		Element:     identity.NewInternalName(raw.Element),
		Class:       identity.NewInternalName(raw.Class),
		Regions:     regions,
	}
	if c.DisplayName == "" {
		c.DisplayName = raw.InternalName
	}

	c.Skins = append(c.Skins, moddable.Skin{
		InternalName: c.InternalName,
		ModFilesName: c.FolderName(),
		DisplayName:  c.DisplayName,
		Image:        c.Image,
		IsDefault:    true,
	})
	for _, s := range raw.InGameSkins {
		skinRelease, err := parseDate(s.ReleaseDate)
		if err != nil {
			return nil, apperr.InvalidArgumentf("skin '%s' has invalid release date '%s'", s.InternalName, s.ReleaseDate)
		}
		skin := moddable.Skin{
			InternalName: identity.NewInternalName(s.InternalName),
			ModFilesName: s.ModFilesName,
			DisplayName:  s.DisplayName,
			Image:        l.imagePath(s.Image),
			ReleaseDate:  skinRelease,
			Rarity:       s.Rarity,
		}
		if skin.InternalName.IsEmpty() {
			return nil, apperr.InvalidArgumentf("skin of '%s' is missing an internal name", name)
		}
		if skin.ModFilesName == "" {
			skin.ModFilesName = skin.InternalName.String()
		}
		c.Skins = append(c.Skins, skin)
	}

	return c, nil
}

func (l *JSONLoader) imagePath(image string) string {
	if image == "" || filepath.IsAbs(image) || strings.Contains(image, "://") {
		return image
	}
	return filepath.Join(l.dir, imagesDir, image)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			t = t.UTC()
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// parseRegions accepts a single string, a list of strings, or nothing
func parseRegions(raw json.RawMessage) ([]identity.InternalName, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil, nil
		}
		return []identity.InternalName{identity.NewInternalName(single)}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	var out []identity.InternalName
	seen := make(map[identity.InternalName]bool, len(list))
	for _, r := range list {
		n := identity.NewInternalName(r)
		if n.IsEmpty() || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}
