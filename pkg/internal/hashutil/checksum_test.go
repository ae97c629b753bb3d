package hashutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a", []byte("Hello, World!\n"), 0644))

	checksum, err := Checksum(fsys, "/a")
	require.NoError(t, err)

	assert.Len(t, checksum, 71) // "sha256:" + 64 hex chars
	assert.Equal(t, "sha256:c98c24b677eff44860afea6f493bbaec5bb1c4cbb209c6fc2bbb47f66ff2ad31", checksum)

	_, err = Checksum(fsys, "/missing")
	assert.Error(t, err)
}

func TestSame(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/b", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/c", []byte("y"), 0644))

	same, err := Same(fsys, "/a", "/b")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = Same(fsys, "/a", "/c")
	require.NoError(t, err)
	assert.False(t, same)
}
