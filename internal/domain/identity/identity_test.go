package identity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalNameIsCaseInsensitive(t *testing.T) {
	a := NewInternalName("RaidenShogun")
	b := NewInternalName("  raidenshogun ")

	assert.True(t, a.Equals(b))
	assert.Equal(t, a, b)
	assert.True(t, a.EqualsString("RAIDENSHOGUN"))

	set := map[InternalName]bool{a: true}
	assert.True(t, set[b], "map keys must agree with Equals")
}

func TestInternalNameEmpty(t *testing.T) {
	assert.True(t, NewInternalName("   ").IsEmpty())
	assert.True(t, InternalName{}.IsEmpty())
	assert.False(t, NewInternalName("x").IsEmpty())
}

func TestInternalNameJSON(t *testing.T) {
	data, err := json.Marshal(NewInternalName("Nahida"))
	require.NoError(t, err)
	assert.JSONEq(t, `"nahida"`, string(data))

	var n InternalName
	require.NoError(t, json.Unmarshal([]byte(`"KUKI"`), &n))
	assert.Equal(t, "kuki", n.String())
}

func TestKeys(t *testing.T) {
	keys := NewKeys("Ei", "", "ei", "Baal")

	assert.Equal(t, []string{"ei", "baal"}, keys.Values())
	assert.Equal(t, 2, keys.Len())
	assert.True(t, keys.Contains("EI"))
	assert.False(t, keys.Contains("raiden"))

	added := keys.Add("Raiden")
	assert.Equal(t, 2, keys.Len(), "Add must not mutate the receiver")
	assert.Equal(t, 3, added.Len())
}

func TestMatchesIncludesInternalName(t *testing.T) {
	name := NewInternalName("raiden")
	keys := NewKeys("ei")

	assert.True(t, Matches("Raiden", name, keys))
	assert.True(t, Matches("EI", name, keys))
	assert.False(t, Matches("nahida", name, keys))
}
