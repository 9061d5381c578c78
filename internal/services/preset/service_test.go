package preset_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/moddable"
	presetdomain "github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	"github.com/KirkDiggler/mod-preset-manager/internal/inventory"
	mockinventory "github.com/KirkDiggler/mod-preset-manager/internal/inventory/mock"
	presetRepo "github.com/KirkDiggler/mod-preset-manager/internal/repositories/presets"
	"github.com/KirkDiggler/mod-preset-manager/internal/services/preset"
)

const (
	idA = "6f1f9b54-5a9e-4c55-9b8e-3e7cf3b0a001"
	idB = "6f1f9b54-5a9e-4c55-9b8e-3e7cf3b0a002"
	idC = "6f1f9b54-5a9e-4c55-9b8e-3e7cf3b0a003"
	idD = "6f1f9b54-5a9e-4c55-9b8e-3e7cf3b0a004"
)

var anyCtx = gomock.Any()

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// multiModFolders maps a lower-cased character folder to its multi-mod flag
type multiModFolders map[string]bool

func (m multiModFolders) ObjectByFolder(folder string) (moddable.Object, bool) {
	multi, ok := m[strings.ToLower(folder)]
	if !ok {
		return nil, false
	}
	return &moddable.Character{Base: moddable.Base{
		InternalName: identity.NewInternalName(folder),
		IsMultiMod:   multi,
	}}, true
}

func modPath(character, folder string) string {
	return filepath.Join("/mods", character, folder)
}

func entry(id, character, folder string) presetdomain.ModPresetEntry {
	return presetdomain.ModPresetEntry{ModID: id, FullPath: modPath(character, folder)}
}

func mod(id, character, folder string, enabled bool) inventory.Mod {
	name := folder
	if !enabled {
		name = inventory.DisabledPrefix + folder
	}
	return inventory.Mod{ID: id, FullPath: modPath(character, name), Character: character, Enabled: enabled}
}

type PresetServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *mockinventory.MockProvider
	mockSink     *mockinventory.MockSink
	repo         presetRepo.Repository
	clock        *fixedClock
	svc          preset.Service
	ctx          context.Context
}

func (s *PresetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProvider = mockinventory.NewMockProvider(s.ctrl)
	s.mockSink = mockinventory.NewMockSink(s.ctrl)
	s.repo = presetRepo.NewInMemoryRepository()
	s.clock = &fixedClock{now: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()
	s.svc = s.newService(nil)
}

func (s *PresetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PresetServiceTestSuite) newService(objects preset.ObjectResolver) preset.Service {
	svc := preset.NewService(&preset.ServiceConfig{
		Repository:   s.repo,
		Provider:     s.mockProvider,
		Sink:         s.mockSink,
		Objects:      objects,
		TimeProvider: s.clock,
	})
	s.Require().NoError(svc.Load(s.ctx))
	return svc
}

func (s *PresetServiceTestSuite) create(name string, entries ...presetdomain.ModPresetEntry) *presetdomain.ModPreset {
	p, err := s.svc.CreatePreset(s.ctx, name, entries)
	s.Require().NoError(err)
	return p
}

func (s *PresetServiceTestSuite) indices() map[string]int {
	out := map[string]int{}
	for _, p := range s.svc.List() {
		out[p.Name] = p.Index
	}
	return out
}

func (s *PresetServiceTestSuite) TestCreatePreset() {
	p := s.create("Default", entry(idA, "raiden", "A"), entry(idA, "raiden", "A dup"))

	s.Equal("Default", p.Name)
	s.Equal(0, p.Index)
	s.Equal(s.clock.now, p.Created)
	s.Require().Len(p.Entries, 1, "duplicate mod ids collapse")
	s.Require().NotNil(p.Entries[0].AddedAt)
	s.Equal(s.clock.now, *p.Entries[0].AddedAt)

	stored, err := s.repo.Get(s.ctx, "Default")
	s.Require().NoError(err)
	s.Equal(p.Entries, stored.Entries)
}

func (s *PresetServiceTestSuite) TestCreatePreset_DuplicateName() {
	original := s.create("Default", entry(idA, "raiden", "A"))

	for _, name := range []string{"Default", "default"} {
		_, err := s.svc.CreatePreset(s.ctx, name, []presetdomain.ModPresetEntry{entry(idB, "raiden", "B")})
		s.Require().Error(err, name)
		s.True(apperr.Is(err, apperr.CodeDuplicatePresetName), name)
	}

	got, err := s.svc.Get("Default")
	s.Require().NoError(err)
	s.Equal(original, got)
}

func (s *PresetServiceTestSuite) TestCreatePreset_AssignsNextIndex() {
	s.create("One")
	s.create("Two")
	three := s.create("Three")

	s.Equal(2, three.Index)
	s.Equal(map[string]int{"One": 0, "Two": 1, "Three": 2}, s.indices())
}

func (s *PresetServiceTestSuite) TestCreatePreset_InvalidInput() {
	_, err := s.svc.CreatePreset(s.ctx, "bad/name", nil)
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))

	_, err = s.svc.CreatePreset(s.ctx, "ok", []presetdomain.ModPresetEntry{{FullPath: "/mods/x"}})
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *PresetServiceTestSuite) TestCreatePresetFromEnabled() {
	custom := "My mod"
	inv := inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", true),
		mod(idB, "raiden", "B", false),
		{ID: idC, FullPath: modPath("keqing", "C"), Character: "keqing", Enabled: true, CustomName: &custom},
	})
	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inv, nil)

	p, err := s.svc.CreatePresetFromEnabled(s.ctx, "Snapshot")
	s.Require().NoError(err)

	s.Require().Len(p.Entries, 2)
	s.Equal(idA, p.Entries[0].ModID)
	s.Equal(idC, p.Entries[1].ModID)
	s.Require().NotNil(p.Entries[1].CustomName)
	s.Equal("My mod", *p.Entries[1].CustomName)
}

func (s *PresetServiceTestSuite) TestAddMods() {
	s.create("Default", entry(idA, "raiden", "A"))

	incoming := entry(idB, "raiden", "B")
	incoming.IsMissing = true
	p, err := s.svc.AddMods(s.ctx, "Default", []presetdomain.ModPresetEntry{entry(idA, "raiden", "A"), incoming})
	s.Require().NoError(err)

	s.Require().Len(p.Entries, 2)
	s.Equal(idB, p.Entries[1].ModID)
	s.False(p.Entries[1].IsMissing)
}

func (s *PresetServiceTestSuite) TestAddMods_Errors() {
	_, err := s.svc.AddMods(s.ctx, "nope", []presetdomain.ModPresetEntry{entry(idA, "raiden", "A")})
	s.Require().Error(err)
	s.True(apperr.IsPresetNotFound(err))

	s.create("Locked")
	_, err = s.svc.SetReadOnly(s.ctx, "Locked", true)
	s.Require().NoError(err)

	_, err = s.svc.AddMods(s.ctx, "Locked", []presetdomain.ModPresetEntry{entry(idA, "raiden", "A")})
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodePresetReadOnly))

	_, err = s.svc.RemoveMods(s.ctx, "Locked", []presetdomain.ModPresetEntry{entry(idA, "raiden", "A")})
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodePresetReadOnly))
}

func (s *PresetServiceTestSuite) TestRemoveMods_Idempotent() {
	s.create("Default", entry(idA, "raiden", "A"), entry(idB, "raiden", "B"), entry(idC, "keqing", "C"))
	toRemove := []presetdomain.ModPresetEntry{{ModID: idB}, {ModID: idD}}

	once, err := s.svc.RemoveMods(s.ctx, "Default", toRemove)
	s.Require().NoError(err)
	twice, err := s.svc.RemoveMods(s.ctx, "Default", toRemove)
	s.Require().NoError(err)

	s.Equal(once, twice)
	s.Require().Len(twice.Entries, 2)
	s.Equal(idA, twice.Entries[0].ModID)
	s.Equal(idC, twice.Entries[1].ModID)
}

func (s *PresetServiceTestSuite) TestSetEntryPreferences() {
	s.create("Default", entry(idA, "raiden", "A"))

	p, err := s.svc.SetEntryPreferences(s.ctx, "Default", idA, map[string]string{"variant": "blue"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"variant": "blue"}, p.Entries[0].Preferences)

	p, err = s.svc.SetEntryPreferences(s.ctx, "Default", idA, nil)
	s.Require().NoError(err)
	s.Nil(p.Entries[0].Preferences)

	_, err = s.svc.SetEntryPreferences(s.ctx, "Default", idB, map[string]string{})
	s.Require().Error(err)
	s.True(apperr.IsModObjectNotFound(err))
}

func (s *PresetServiceTestSuite) TestDuplicatePreset() {
	s.create("Default", entry(idA, "raiden", "A"))
	_, err := s.svc.SetReadOnly(s.ctx, "Default", true)
	s.Require().NoError(err)

	copied, err := s.svc.DuplicatePreset(s.ctx, "Default", "Copy")
	s.Require().NoError(err)
	s.Equal(1, copied.Index)
	s.False(copied.IsReadOnly)
	s.Len(copied.Entries, 1)

	_, err = s.svc.DuplicatePreset(s.ctx, "Default", "copy")
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodeDuplicatePresetName))
}

func (s *PresetServiceTestSuite) TestRenamePreset() {
	s.create("Default")
	s.create("Other")

	p, err := s.svc.RenamePreset(s.ctx, "Default", "Main")
	s.Require().NoError(err)
	s.Equal("Main", p.Name)
	s.Equal(0, p.Index)

	_, err = s.svc.Get("Default")
	s.True(apperr.IsPresetNotFound(err))
	_, err = s.repo.Get(s.ctx, "Main")
	s.NoError(err)

	_, err = s.svc.RenamePreset(s.ctx, "Main", "Other")
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodeDuplicatePresetName))
}

func (s *PresetServiceTestSuite) TestReorderPresets() {
	s.create("A")
	s.create("B")
	s.create("C")

	s.Require().NoError(s.svc.ReorderPresets(s.ctx, map[string]int{"A": 2, "B": 0, "C": 1}))

	s.Equal(map[string]int{"A": 2, "B": 0, "C": 1}, s.indices())
	stored, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"B", "C", "A"}, []string{stored[0].Name, stored[1].Name, stored[2].Name})
}

func (s *PresetServiceTestSuite) TestReorderPresets_InvalidOrder() {
	s.create("A")
	s.create("B")
	s.create("C")
	before := s.indices()

	cases := []map[string]int{
		{"A": 0, "B": 0, "C": 2},
		{"A": 0, "B": 1, "C": 3},
		{"A": 0, "B": 1},
		{"A": -1, "B": 0, "C": 1},
	}
	for _, order := range cases {
		err := s.svc.ReorderPresets(s.ctx, order)
		s.Require().Error(err, order)
		s.True(apperr.Is(err, apperr.CodeInvalidOrder), order)
		s.Equal(before, s.indices())
	}

	stored, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	for _, p := range stored {
		s.Equal(before[p.Name], p.Index)
	}
}

func (s *PresetServiceTestSuite) TestReorderPresets_UnknownName() {
	s.create("A")

	err := s.svc.ReorderPresets(s.ctx, map[string]int{"Z": 0})
	s.Require().Error(err)
	s.True(apperr.IsPresetNotFound(err))
}

func (s *PresetServiceTestSuite) TestDeletePreset() {
	s.create("A")
	s.create("B")
	s.create("C")

	s.Require().NoError(s.svc.DeletePreset(s.ctx, "A"))

	s.Equal(map[string]int{"B": 0, "C": 1}, s.indices())
	_, err := s.repo.Get(s.ctx, "A")
	s.True(apperr.IsPresetNotFound(err))
	c, err := s.repo.Get(s.ctx, "C")
	s.Require().NoError(err)
	s.Equal(1, c.Index)
}

func (s *PresetServiceTestSuite) TestDeletePreset_ReadOnly() {
	s.create("System")
	_, err := s.svc.SetReadOnly(s.ctx, "System", true)
	s.Require().NoError(err)

	err = s.svc.DeletePreset(s.ctx, "System")
	s.Require().Error(err)
	s.True(apperr.Is(err, apperr.CodePresetReadOnly))

	_, err = s.svc.Get("System")
	s.NoError(err)
}

func (s *PresetServiceTestSuite) TestLoad_ReconcilesDriftAndPersists() {
	s.Require().NoError(s.repo.Save(s.ctx, &presetdomain.ModPreset{
		Name:    "Default",
		Index:   3,
		Created: s.clock.now,
		Entries: []presetdomain.ModPresetEntry{
			{ModID: idA, FullPath: "/old"},
			{ModID: idB, FullPath: modPath("keqing", "gone")},
		},
	}))
	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "new", true),
	}), nil)

	s.Require().NoError(s.svc.Load(s.ctx))

	p, err := s.svc.Get("Default")
	s.Require().NoError(err)
	s.Equal(0, p.Index)
	s.Equal(modPath("raiden", "new"), p.Entries[0].FullPath)
	s.False(p.Entries[0].IsMissing)
	s.True(p.Entries[1].IsMissing)
	s.Len(p.Entries, 2)

	stored, err := s.repo.Get(s.ctx, "Default")
	s.Require().NoError(err)
	s.Equal(p, stored)
}

func (s *PresetServiceTestSuite) TestReconcile_HealsMissingEntry() {
	s.create("Default", entry(idA, "raiden", "A"))

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New(nil), nil)
	summaries, err := s.svc.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(1, summaries[0].Missing)

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", true),
	}), nil)
	summaries, err = s.svc.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, summaries[0].Missing)
	s.Equal(1, summaries[0].Healed)

	p, _ := s.svc.Get("Default")
	s.False(p.Entries[0].IsMissing)
}

func (s *PresetServiceTestSuite) TestLoad_InventoryFailure() {
	s.create("Default", entry(idA, "raiden", "A"))
	s.mockProvider.EXPECT().CurrentMods(anyCtx).
		Return(nil, apperr.PersistenceFailure(errors.New("unplugged"), "failed to read mods directory"))

	err := s.svc.Load(s.ctx)
	s.Require().Error(err)
	s.True(apperr.IsPersistenceFailure(err))
}

func (s *PresetServiceTestSuite) TestApplyPreset() {
	s.create("Default", entry(idB, "raiden", "B"), entry(idC, "keqing", "C"), entry(idD, "nahida", "D"))

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", true),
		mod(idB, "raiden", "B", false),
		mod(idC, "keqing", "C", false),
	}), nil)
	gomock.InOrder(
		s.mockSink.EXPECT().Disable(anyCtx, idA, "raiden").Return(nil),
		s.mockSink.EXPECT().Enable(anyCtx, idB, "raiden").Return(nil),
		s.mockSink.EXPECT().Enable(anyCtx, idC, "keqing").Return(nil),
	)

	report, err := s.svc.ApplyPreset(s.ctx, "Default")
	s.Require().NoError(err)

	s.Len(report.Applied, 2)
	s.Require().Len(report.Disabled, 1)
	s.Equal(idA, report.Disabled[0].ModID)
	s.Require().Len(report.SkippedMissing, 1)
	s.Equal(idD, report.SkippedMissing[0].ModID)
	s.Empty(report.Conflicts)
	s.False(report.Complete())

	p, _ := s.svc.Get("Default")
	s.True(p.Entries[2].IsMissing)
	s.Len(p.Entries, 3)
}

func (s *PresetServiceTestSuite) TestApplyPreset_LastEntryWins() {
	s.create("Default", entry(idA, "raiden", "A"), entry(idB, "raiden", "B"))

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", true),
		mod(idB, "raiden", "B", false),
	}), nil)
	s.mockSink.EXPECT().Disable(anyCtx, idA, "raiden").Return(nil)
	s.mockSink.EXPECT().Enable(anyCtx, idB, "raiden").Return(nil)

	report, err := s.svc.ApplyPreset(s.ctx, "Default")
	s.Require().NoError(err)

	s.Require().Len(report.Conflicts, 1)
	s.Equal(presetdomain.Conflict{Character: "raiden", OverriddenID: idA, WinnerID: idB}, report.Conflicts[0])
	s.Require().Len(report.Applied, 1)
	s.Equal(idB, report.Applied[0].ModID)
	s.True(report.Complete())
}

func (s *PresetServiceTestSuite) TestApplyPreset_MultiModCharacter() {
	s.svc = s.newService(multiModFolders{"raiden": true})
	s.create("Default", entry(idA, "raiden", "A"), entry(idB, "raiden", "B"))

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", false),
		mod(idB, "raiden", "B", false),
		mod(idC, "raiden", "C", true),
	}), nil)
	s.mockSink.EXPECT().Disable(anyCtx, idC, "raiden").Return(nil)
	s.mockSink.EXPECT().Enable(anyCtx, idA, "raiden").Return(nil)
	s.mockSink.EXPECT().Enable(anyCtx, idB, "raiden").Return(nil)

	report, err := s.svc.ApplyPreset(s.ctx, "Default")
	s.Require().NoError(err)
	s.Empty(report.Conflicts)
	s.Len(report.Applied, 2)
}

func (s *PresetServiceTestSuite) TestApplyPreset_SinkFailureIsReported() {
	s.create("Default", entry(idA, "raiden", "A"), entry(idC, "keqing", "C"))

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", false),
		mod(idC, "keqing", "C", false),
	}), nil)
	sinkErr := apperr.PersistenceFailure(errors.New("locked"), "failed to rename mod folder")
	s.mockSink.EXPECT().Enable(anyCtx, idA, "raiden").Return(sinkErr)
	s.mockSink.EXPECT().Enable(anyCtx, idC, "keqing").Return(nil)

	report, err := s.svc.ApplyPreset(s.ctx, "Default")
	s.Require().NoError(err)

	s.Require().Len(report.Failed, 1)
	s.Equal(idA, report.Failed[0].ModID)
	s.ErrorIs(report.Failed[0].Err, sinkErr)
	s.Len(report.Applied, 1)
	s.False(report.Complete())
}

func (s *PresetServiceTestSuite) TestApplyPreset_CancelledBeforeEnabling() {
	s.create("Default", entry(idA, "raiden", "A"))
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", false),
	}), nil)

	_, err := s.svc.ApplyPreset(ctx, "Default")
	s.Require().ErrorIs(err, context.Canceled)
}

func (s *PresetServiceTestSuite) TestApplyPreset_NotFound() {
	_, err := s.svc.ApplyPreset(s.ctx, "nope")
	s.Require().Error(err)
	s.True(apperr.IsPresetNotFound(err))
}

func (s *PresetServiceTestSuite) TestDetachModsUnder() {
	s.create("One", entry(idA, "oc", "A"), entry(idB, "raiden", "B"))
	s.create("Two", entry(idC, "OC", inventory.DisabledPrefix+"C"))

	detached, err := s.svc.DetachModsUnder(s.ctx, "oc")
	s.Require().NoError(err)
	s.Equal(2, detached)

	one, _ := s.svc.Get("One")
	s.True(one.Entries[0].IsMissing)
	s.False(one.Entries[1].IsMissing)
	s.Len(one.Entries, 2)

	two, err := s.repo.Get(s.ctx, "Two")
	s.Require().NoError(err)
	s.True(two.Entries[0].IsMissing)

	detached, err = s.svc.DetachModsUnder(s.ctx, "oc")
	s.Require().NoError(err)
	s.Equal(0, detached)
}

func (s *PresetServiceTestSuite) TestApplyPreset_ReportsAmbiguousPath() {
	s.create("Default", presetdomain.ModPresetEntry{ModID: "stale-id", FullPath: modPath("raiden", "A")})

	// the same folder exists enabled and disabled, each with its own id
	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", false),
		mod(idB, "raiden", "A", true),
	}), nil)
	s.mockSink.EXPECT().Disable(anyCtx, idB, "raiden").Return(nil)
	s.mockSink.EXPECT().Enable(anyCtx, idA, "raiden").Return(nil)

	report, err := s.svc.ApplyPreset(s.ctx, "Default")
	s.Require().NoError(err)

	s.Require().Len(report.Ambiguities, 1)
	amb := report.Ambiguities[0]
	s.Equal(apperr.CodeReconciliationAmbiguity, amb.Code)
	s.Equal("stale-id", amb.EntryModID)
	s.Equal(idA, amb.ChosenID)
	s.Equal([]string{idA, idB}, amb.Candidates)

	s.Require().Len(report.Applied, 1)
	s.Equal(idA, report.Applied[0].ModID)
	s.Require().Len(report.Disabled, 1)
	s.Equal(idB, report.Disabled[0].ModID)

	stored, err := s.repo.Get(s.ctx, "Default")
	s.Require().NoError(err)
	s.Equal(idA, stored.Entries[0].ModID)
}

func (s *PresetServiceTestSuite) TestReconcile_FolderWithoutObjectStaysMissing() {
	s.svc = s.newService(multiModFolders{"raiden": false})
	s.create("Default", entry(idA, "raiden", "A"), entry(idC, "oc", "C"))

	inv := inventory.New([]inventory.Mod{
		mod(idA, "raiden", "A", false),
		mod(idC, "oc", "C", true),
	})
	s.mockProvider.EXPECT().CurrentMods(anyCtx).Return(inv, nil).Times(2)

	summaries, err := s.svc.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(1, summaries[0].Missing)

	p, err := s.svc.Get("Default")
	s.Require().NoError(err)
	s.False(p.Entries[0].IsMissing)
	s.True(p.Entries[1].IsMissing)

	s.mockSink.EXPECT().Enable(anyCtx, idA, "raiden").Return(nil)

	report, err := s.svc.ApplyPreset(s.ctx, "Default")
	s.Require().NoError(err)
	s.Require().Len(report.SkippedMissing, 1)
	s.Equal(idC, report.SkippedMissing[0].ModID)
	s.Require().Len(report.Applied, 1)
	s.Equal(idA, report.Applied[0].ModID)
	s.Empty(report.Disabled)
}

func TestPresetServiceSuite(t *testing.T) {
	suite.Run(t, new(PresetServiceTestSuite))
}
