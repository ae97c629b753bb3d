// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero
// PURPOSE: Test text helpers and the dry-run overlay

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	fsys := NewMemory()

	content, exists, err := ReadText(fsys, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, content)

	require.NoError(t, afero.WriteFile(fsys, "/home/u/.zshrc", []byte("export A=1\n"), 0600))
	content, exists, err = ReadText(fsys, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "export A=1\n", content)
}

func TestExists_Directory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/home/u/.zshrc", 0755))

	_, err := Exists(fsys, "/home/u/.zshrc")
	assert.Error(t, err)
}

func TestWriteText_PreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0600))

	require.NoError(t, WriteText(NewOS(), path, "new\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	data, _ := os.ReadFile(path)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteText_CreatesParent(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, WriteText(fsys, "/home/u/.config/zsh/.zshrc", "x\n"))

	content, exists, err := ReadText(fsys, "/home/u/.config/zsh/.zshrc")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "x\n", content)
}

func TestCopy(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/a", []byte("alpha\n"), 0640))

	require.NoError(t, Copy(fsys, "/a", "/b"))

	data, err := afero.ReadFile(fsys, "/b")
	require.NoError(t, err)
	assert.Equal(t, "alpha\n", string(data))
}

func TestNewDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	require.NoError(t, os.WriteFile(path, []byte("base\n"), 0644))

	overlay := NewDryRun(NewOS())

	t.Run("reads fall through to base", func(t *testing.T) {
		content, exists, err := ReadText(overlay, path)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "base\n", content)
	})

	t.Run("writes stay in the overlay", func(t *testing.T) {
		require.NoError(t, WriteText(overlay, path, "base\nmore\n"))

		content, _, err := ReadText(overlay, path)
		require.NoError(t, err)
		assert.Equal(t, "base\nmore\n", content)

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "base\n", string(onDisk))
	})

	t.Run("new files stay in the overlay", func(t *testing.T) {
		created := filepath.Join(dir, ".zprofile")
		require.NoError(t, WriteText(overlay, created, "new\n"))

		exists, err := Exists(overlay, created)
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = os.Stat(created)
		assert.True(t, os.IsNotExist(err))
	})
}
