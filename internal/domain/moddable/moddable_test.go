package moddable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/update"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

func testCharacter() *Character {
	release := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)
	four := 4
	return &Character{
		Base: Base{
			InternalName: identity.NewInternalName("raiden"),
			DisplayName:  "A",
			Keys:         identity.NewKeys("ei", "shogun"),
			ModFilesName: "Raiden",
		},
		Rarity:      5,
		ReleaseDate: &release,
		Element:     identity.NewInternalName("electro"),
		Regions:     []identity.InternalName{identity.NewInternalName("inazuma")},
		Skins: []Skin{
			{InternalName: identity.NewInternalName("raiden"), ModFilesName: "Raiden", IsDefault: true},
			{InternalName: identity.NewInternalName("raidenkimono"), ModFilesName: "RaidenKimono", DisplayName: "Kimono", Rarity: &four},
		},
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindCharacter, KindOf[*Character]())
	assert.Equal(t, KindCustomMod, KindOf[*CustomMod]())
}

func TestFolderNameDefaultsToInternalName(t *testing.T) {
	b := Base{InternalName: identity.NewInternalName("Nahida")}
	assert.Equal(t, "nahida", b.FolderName())

	b.ModFilesName = "Nahida"
	assert.Equal(t, "Nahida", b.FolderName())
}

func TestCloneIsDeep(t *testing.T) {
	c := testCharacter()
	clone := c.Clone()

	clone.Regions[0] = identity.NewInternalName("mondstadt")
	clone.Skins[1].DisplayName = "changed"
	*clone.ReleaseDate = time.Time{}

	assert.Equal(t, "inazuma", c.Regions[0].String())
	assert.Equal(t, "Kimono", c.Skins[1].DisplayName)
	assert.False(t, c.ReleaseDate.IsZero())
}

func TestSkinCharacterPointsBackToBase(t *testing.T) {
	c := testCharacter()
	view := c.SkinCharacter(c.Skins[1])

	require.NotNil(t, view.DefaultCharacter)
	assert.Equal(t, c.InternalName, *view.DefaultCharacter)
	assert.Equal(t, "raidenkimono", view.InternalName.String())
	assert.Equal(t, "RaidenKimono", view.ModFilesName)
	assert.Equal(t, 4, view.Rarity)
	assert.Equal(t, c.Regions, view.Regions)
	assert.Nil(t, c.DefaultCharacter)
}

func TestEditRequestPartialUpdate(t *testing.T) {
	c := testCharacter()
	req := &EditCustomCharacterRequest{
		DisplayName: update.Unset[string](),
		IsMultiMod:  update.Set(true),
	}

	require.True(t, req.AnyValuesSet())
	require.NoError(t, req.Validate())

	clone := c.Clone()
	req.ApplyTo(clone, "")

	assert.Equal(t, "A", clone.DisplayName)
	assert.True(t, clone.IsMultiMod)
	assert.Equal(t, 5, clone.Rarity)
	assert.Equal(t, c.Keys, clone.Keys)
}

func TestEditRequestSetToNil(t *testing.T) {
	c := testCharacter()
	req := &EditCustomCharacterRequest{ReleaseDate: update.Set[*time.Time](nil)}

	req.ApplyTo(c, "")
	assert.Nil(t, c.ReleaseDate)
}

func TestEditRequestAnyValuesSet(t *testing.T) {
	assert.False(t, (&EditCustomCharacterRequest{}).AnyValuesSet())
	assert.False(t, (*EditCustomCharacterRequest)(nil).AnyValuesSet())
	assert.True(t, (&EditCustomCharacterRequest{Regions: update.Set[[]identity.InternalName](nil)}).AnyValuesSet())
	assert.False(t, (&EditCustomModRequest{}).AnyValuesSet())
	assert.True(t, (&EditCustomModRequest{Rarity: update.Set[*int](nil)}).AnyValuesSet())
}

func TestEditRequestValidate(t *testing.T) {
	err := (&EditCustomCharacterRequest{DisplayName: update.Set("")}).Validate()
	assert.True(t, apperr.IsInvalidArgument(err))

	err = (&EditCustomCharacterRequest{Rarity: update.Set(-1)}).Validate()
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestCreateCharacterRequestValidate(t *testing.T) {
	valid := &CreateCharacterRequest{
		InternalName: identity.NewInternalName("traveler2"),
		DisplayName:  "Traveler 2",
		Rarity:       5,
	}
	assert.NoError(t, valid.Validate())

	missingName := *valid
	missingName.InternalName = identity.InternalName{}
	assert.True(t, apperr.IsInvalidArgument(missingName.Validate()))

	missingDisplay := *valid
	missingDisplay.DisplayName = ""
	assert.True(t, apperr.IsInvalidArgument(missingDisplay.Validate()))

	var nilReq *CreateCharacterRequest
	assert.Error(t, nilReq.Validate())
}

func TestCustomModEditClearsRarity(t *testing.T) {
	three := 3
	m := &CustomMod{Base: Base{InternalName: identity.NewInternalName("ui"), DisplayName: "UI"}, Rarity: &three}

	req := &EditCustomModRequest{Rarity: update.Set[*int](nil), DisplayName: update.Set("HUD")}
	require.NoError(t, req.Validate())
	req.ApplyTo(m, "")

	assert.Nil(t, m.Rarity)
	assert.Equal(t, "HUD", m.DisplayName)
}
