package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	"github.com/KirkDiggler/mod-preset-manager/internal/inventory"
)

// SampleCharacters is a small genshin characters.json
const SampleCharacters = `[
  {"InternalName": "raiden", "DisplayName": "Raiden Shogun", "Keys": ["ei"], "Rarity": 5, "Element": "electro", "Class": "polearm", "Region": ["inazuma"]},
  {"InternalName": "keqing", "DisplayName": "Keqing", "Rarity": 5, "Element": "electro", "Class": "sword", "Region": "liyue",
   "InGameSkins": [{"InternalName": "keqingopulent", "DisplayName": "Opulent Splendor", "ModFilesName": "Keqing Opulent"}]},
  {"InternalName": "others", "DisplayName": "Others", "IsMultiMod": true}
]`

// SampleElements is a small genshin elements.json
const SampleElements = `[
  {"InternalName": "electro", "DisplayName": "Electro"},
  {"InternalName": "pyro", "DisplayName": "Pyro"}
]`

// SampleClasses is a small genshin classes.json
const SampleClasses = `[
  {"InternalName": "sword", "DisplayName": "Sword"},
  {"InternalName": "polearm", "DisplayName": "Polearm"}
]`

// SampleRegions is a small genshin regions.json
const SampleRegions = `[
  {"InternalName": "inazuma", "DisplayName": "Inazuma"},
  {"InternalName": "liyue", "DisplayName": "Liyue"}
]`

// WriteDefinitions writes the sample definition files into <root>/<game> and returns that directory
func WriteDefinitions(t *testing.T, root, game string) string {
	t.Helper()
	dir := filepath.Join(root, game)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	files := map[string]string{
		"characters.json": SampleCharacters,
		"elements.json":   SampleElements,
		"classes.json":    SampleClasses,
		"regions.json":    SampleRegions,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

// WriteMod creates <modsDir>/<character>/<folder> with a mod config carrying id.
// An empty id leaves the config file out. Returns the mod folder path.
func WriteMod(t *testing.T, modsDir, character, folder, id string) string {
	t.Helper()
	dir := filepath.Join(modsDir, character, folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mod.ini"), []byte("[TextureOverride]\n"), 0o644))

	if id != "" {
		data, err := json.Marshal(inventory.ModConfig{ID: id})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, inventory.ModConfigFileName), data, 0o644))
	}
	return dir
}

// CreateTestPreset creates a preset with one entry per mod id
func CreateTestPreset(name string, index int, modIDs ...string) *preset.ModPreset {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	p := &preset.ModPreset{
		Name:    name,
		Index:   index,
		Created: created,
		Entries: make([]preset.ModPresetEntry, 0, len(modIDs)),
	}
	for _, id := range modIDs {
		p.Entries = append(p.Entries, preset.ModPresetEntry{
			ModID:    id,
			FullPath: filepath.Join("/mods", "raiden", id),
			AddedAt:  &created,
		})
	}
	return p
}
