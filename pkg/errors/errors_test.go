package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrLinkCreate, "could not create symlink")

	assert.Equal(t, ErrLinkCreate, err.Code)
	assert.Equal(t, "could not create symlink", err.Message)
	assert.Equal(t, "[LINK_CREATE] could not create symlink", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrPermission, "cannot displace target")

	require.NotNil(t, err)
	assert.Equal(t, ErrPermission, err.Code)
	assert.Equal(t, "[PERMISSION] cannot displace target: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should vanish %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	a := New(ErrLinkAfterBackup, "link failed after backup")
	b := New(ErrLinkAfterBackup, "different message")
	c := New(ErrLinkCreate, "link failed")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrBackupDirCreate, "cannot create %s", "/backups")

	assert.True(t, IsErrorCode(err, ErrBackupDirCreate))
	assert.False(t, IsErrorCode(err, ErrDirCreate))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrBackupDirCreate))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrPermission, GetErrorCode(New(ErrPermission, "no")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))

	// Wrapped DotlnkErrors are still found through the chain.
	wrapped := fmt.Errorf("outer: %w", New(ErrBackupMove, "mv failed"))
	assert.Equal(t, ErrBackupMove, GetErrorCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrLinkAfterBackup, "link failed after backup").
		WithDetail("backupPath", "/backups/20240101/.zshrc")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/backups/20240101/.zshrc", details["backupPath"])
}
