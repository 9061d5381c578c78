package preset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCloneIsDeep(t *testing.T) {
	added := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &ModPreset{
		Name: "Default",
		Entries: []ModPresetEntry{{
			ModID:       "a",
			CustomName:  ptr("name"),
			Preferences: map[string]string{"variant": "1"},
			AddedAt:     &added,
		}},
	}

	clone := p.Clone()
	clone.Entries[0].Preferences["variant"] = "2"
	*clone.Entries[0].CustomName = "other"
	clone.Entries = append(clone.Entries, ModPresetEntry{ModID: "b"})

	assert.Equal(t, "1", p.Entries[0].Preferences["variant"])
	assert.Equal(t, "name", *p.Entries[0].CustomName)
	assert.Len(t, p.Entries, 1)
}

func TestEntryLookup(t *testing.T) {
	p := &ModPreset{Entries: []ModPresetEntry{{ModID: "a"}, {ModID: "b", IsMissing: true}}}

	assert.Equal(t, 1, p.EntryIndex("b"))
	assert.Equal(t, -1, p.EntryIndex("c"))
	assert.Equal(t, 1, p.MissingCount())
}

func TestSortAndNextIndex(t *testing.T) {
	presets := []*ModPreset{{Name: "c", Index: 2}, {Name: "a", Index: 0}, {Name: "b", Index: 1}}

	SortByIndex(presets)
	assert.Equal(t, "a", presets[0].Name)
	assert.Equal(t, "c", presets[2].Name)
	assert.Equal(t, 3, NextIndex(presets))
	assert.Equal(t, 0, NextIndex(nil))
}

func TestReportComplete(t *testing.T) {
	r := &ApplyReport{}
	assert.True(t, r.Complete())

	r.SkippedMissing = append(r.SkippedMissing, ModPresetEntry{ModID: "x"})
	assert.False(t, r.Complete())
}
