package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pviana/dotlnk/pkg/filesystem"
)

func TestOSRoundTrip(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	path := filepath.Join(dir, "sub", "file.txt")
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, []byte("content"), 0644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	link := filepath.Join(dir, "link")
	require.NoError(t, fs.Symlink(path, link))
	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, path, target)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	moved := filepath.Join(dir, "moved")
	require.NoError(t, fs.Rename(link, moved))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestOSWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	fs := filesystem.NewOS().(interface{ Writable(string) bool })
	assert.False(t, fs.Writable(dir))

	writable := t.TempDir()
	assert.True(t, fs.Writable(writable))
}

func TestAferoMemRoundTrip(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/home/user", 0755))
	require.NoError(t, fs.WriteFile("/home/user/file", []byte("x"), 0644))

	data, err := fs.ReadFile("/home/user/file")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	// Simulated symlinks still round-trip target paths.
	require.NoError(t, fs.Symlink("/dotfiles/zshrc", "/home/user/.zshrc"))
	target, err := fs.Readlink("/home/user/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "/dotfiles/zshrc", target)

	entries, err := fs.ReadDir("/home/user")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
