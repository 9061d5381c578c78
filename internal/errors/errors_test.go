package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := apperr.PresetNotFound("Default")
	wrapped := apperr.Wrap(base, "loading preset")

	assert.Equal(t, apperr.CodePresetNotFound, wrapped.Code)
	assert.Equal(t, "Default", wrapped.Meta["preset_name"])
	assert.True(t, apperr.IsPresetNotFound(wrapped))
	assert.Equal(t, "loading preset: preset 'Default' not found", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.PersistenceFailure(nil, "nothing"))
}

func TestPersistenceFailureKeepsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := apperr.PersistenceFailure(cause, "writing preset")

	require.Error(t, err)
	assert.True(t, apperr.IsPersistenceFailure(err))
	assert.ErrorIs(t, err, cause)

	rewrapped := apperr.PersistenceFailure(err, "saving store")
	assert.True(t, apperr.IsPersistenceFailure(rewrapped))
	assert.ErrorIs(t, rewrapped, cause)
}

func TestModObjectNotFoundMeta(t *testing.T) {
	err := apperr.ModObjectNotFound("character", "raiden")

	assert.True(t, apperr.IsModObjectNotFound(err))
	meta := apperr.GetMeta(err)
	assert.Equal(t, "character", meta["variant"])
	assert.Equal(t, "raiden", meta["internal_name"])
}

func TestGetCodeForForeignError(t *testing.T) {
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(stderrors.New("plain")))
	assert.Nil(t, apperr.GetMeta(stderrors.New("plain")))
}

func TestWrapWithCode(t *testing.T) {
	err := apperr.WrapWithCode(stderrors.New("bad"), apperr.CodeInvalidOrder, "reorder")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidOrder))
}
