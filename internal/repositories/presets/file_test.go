package presets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mod-preset-manager/internal/domain/preset"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

type FileRepoTestSuite struct {
	suite.Suite
	dir  string
	repo Repository
	ctx  context.Context
}

func TestFileRepoTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepoTestSuite))
}

func (s *FileRepoTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "presets")
	s.repo = NewFileRepository(&FileRepoConfig{Dir: s.dir})
	s.ctx = context.Background()
}

func (s *FileRepoTestSuite) newPreset(name string, index int) *preset.ModPreset {
	return &preset.ModPreset{
		Name:    name,
		Index:   index,
		Created: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Entries: []preset.ModPresetEntry{{ModID: name + "-mod", FullPath: "/mods/" + name}},
	}
}

func (s *FileRepoTestSuite) TestListEmptyDirectory() {
	presets, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Empty(presets)
}

func (s *FileRepoTestSuite) TestSaveAndGet() {
	s.Require().NoError(s.repo.Save(s.ctx, samplePreset()))

	_, err := os.Stat(filepath.Join(s.dir, "Default.json"))
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, "Default")
	s.Require().NoError(err)
	s.Equal("Default", got.Name)
	s.Equal(2, got.Index)
	s.Len(got.Entries, 3)
}

func (s *FileRepoTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, "Nope")
	s.True(apperr.IsPresetNotFound(err))
}

func (s *FileRepoTestSuite) TestListOrdersByIndexAndSkipsOtherFiles() {
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("Second", 1)))
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("First", 0)))
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("Third", 2)))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "notes.txt"), []byte("hi"), 0o644))

	presets, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(presets, 3)
	s.Equal("First", presets[0].Name)
	s.Equal("Second", presets[1].Name)
	s.Equal("Third", presets[2].Name)
}

func (s *FileRepoTestSuite) TestListCorruptDocument() {
	s.Require().NoError(os.MkdirAll(s.dir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "Broken.json"), []byte("{"), 0o644))

	_, err := s.repo.List(s.ctx)
	s.True(apperr.IsPersistenceFailure(err))
}

func (s *FileRepoTestSuite) TestSaveAll() {
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("A", 0)))
	a := s.newPreset("A", 1)
	b := s.newPreset("B", 0)

	s.Require().NoError(s.repo.SaveAll(s.ctx, []*preset.ModPreset{a, b}))

	presets, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(presets, 2)
	s.Equal("B", presets[0].Name)
	s.Equal("A", presets[1].Name)
}

func (s *FileRepoTestSuite) TestSaveAllRejectsInvalidBeforeWriting() {
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("A", 0)))

	err := s.repo.SaveAll(s.ctx, []*preset.ModPreset{s.newPreset("A", 5), s.newPreset("bad/name", 1)})
	s.True(apperr.IsInvalidArgument(err))

	got, err := s.repo.Get(s.ctx, "A")
	s.Require().NoError(err)
	s.Equal(0, got.Index)
}

func (s *FileRepoTestSuite) TestRename() {
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("Old", 0)))
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("Taken", 1)))

	err := s.repo.Rename(s.ctx, "Old", "Taken")
	s.True(apperr.Is(err, apperr.CodeDuplicatePresetName))

	s.Require().NoError(s.repo.Rename(s.ctx, "Old", "New"))
	_, err = s.repo.Get(s.ctx, "Old")
	s.True(apperr.IsPresetNotFound(err))
	got, err := s.repo.Get(s.ctx, "New")
	s.Require().NoError(err)
	s.Equal("New", got.Name)

	err = s.repo.Rename(s.ctx, "Missing", "Other")
	s.True(apperr.IsPresetNotFound(err))
}

func (s *FileRepoTestSuite) TestDelete() {
	s.Require().NoError(s.repo.Save(s.ctx, s.newPreset("Gone", 0)))

	s.Require().NoError(s.repo.Delete(s.ctx, "Gone"))
	s.True(apperr.IsPresetNotFound(s.repo.Delete(s.ctx, "Gone")))
}

func (s *FileRepoTestSuite) TestSaveInvalid() {
	s.True(apperr.IsInvalidArgument(s.repo.Save(s.ctx, nil)))
	s.True(apperr.IsInvalidArgument(s.repo.Save(s.ctx, s.newPreset("../escape", 0))))
}
