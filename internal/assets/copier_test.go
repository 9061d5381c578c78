package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mod-preset-manager/internal/assets"
	"github.com/KirkDiggler/mod-preset-manager/internal/domain/identity"
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
	mockuuid "github.com/KirkDiggler/mod-preset-manager/internal/uuid/mock"
)

type FileCopierTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockUUID *mockuuid.MockGenerator
	srcDir   string
	imageDir string
	copier   *assets.FileCopier
	ctx      context.Context
}

func (s *FileCopierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUUID = mockuuid.NewMockGenerator(s.ctrl)
	s.srcDir = s.T().TempDir()
	s.imageDir = filepath.Join(s.T().TempDir(), "images")
	s.copier = assets.NewFileCopier(&assets.FileCopierConfig{
		Dir:           s.imageDir,
		UUIDGenerator: s.mockUUID,
	})
	s.ctx = context.Background()
}

func (s *FileCopierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FileCopierTestSuite) writeSource(name, content string) string {
	path := filepath.Join(s.srcDir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *FileCopierTestSuite) TestCopyImage() {
	src := s.writeSource("Portrait.PNG", "png-bytes")
	s.mockUUID.EXPECT().New().Return("abc")

	path, err := s.copier.CopyImage(s.ctx, src, identity.NewInternalName("Nahida"))
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.imageDir, "nahida_abc.png"), path)
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("png-bytes", string(data))
}

func (s *FileCopierTestSuite) TestCopyImage_FileURI() {
	src := s.writeSource("a.jpg", "jpg")
	s.mockUUID.EXPECT().New().Return("id")

	path, err := s.copier.CopyImage(s.ctx, "file://"+src, identity.NewInternalName("x"))
	s.Require().NoError(err)
	s.FileExists(path)
}

func (s *FileCopierTestSuite) TestCopyImage_EmptySource() {
	path, err := s.copier.CopyImage(s.ctx, "", identity.NewInternalName("x"))
	s.NoError(err)
	s.Empty(path)
}

func (s *FileCopierTestSuite) TestCopyImage_Missing() {
	_, err := s.copier.CopyImage(s.ctx, filepath.Join(s.srcDir, "nope.png"), identity.NewInternalName("x"))
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *FileCopierTestSuite) TestCopyImage_UnsupportedType() {
	src := s.writeSource("notes.txt", "hi")

	_, err := s.copier.CopyImage(s.ctx, src, identity.NewInternalName("x"))
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *FileCopierTestSuite) TestRemove() {
	src := s.writeSource("a.png", "png")
	s.mockUUID.EXPECT().New().Return("id")
	path, err := s.copier.CopyImage(s.ctx, src, identity.NewInternalName("x"))
	s.Require().NoError(err)

	s.Require().NoError(s.copier.Remove(s.ctx, path))
	s.NoFileExists(path)

	s.NoError(s.copier.Remove(s.ctx, path), "removing twice is fine")
}

func (s *FileCopierTestSuite) TestRemove_IgnoresForeignPaths() {
	src := s.writeSource("keep.png", "png")

	s.Require().NoError(s.copier.Remove(s.ctx, src))
	s.FileExists(src)
}

func TestFileCopierSuite(t *testing.T) {
	suite.Run(t, new(FileCopierTestSuite))
}
