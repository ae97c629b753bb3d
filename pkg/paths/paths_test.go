// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test home expansion, backup naming and config lookup

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/.zshrc", filepath.Join(home, ".zshrc")},
		{"other user untouched", "~root/.zshrc", "~root/.zshrc"},
		{"absolute untouched", "/etc/zshrc", "/etc/zshrc"},
		{"relative untouched", "conf/zshrc", "conf/zshrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestContractHome(t *testing.T) {
	t.Setenv("HOME", "/Users/ana")

	assert.Equal(t, "~/.zshrc", ContractHome("/Users/ana/.zshrc"))
	assert.Equal(t, "~", ContractHome("/Users/ana"))
	assert.Equal(t, "/Users/anabel/.zshrc", ContractHome("/Users/anabel/.zshrc"))
	assert.Equal(t, "/etc/zshrc", ContractHome("/etc/zshrc"))
}

func TestAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Abs("~/.zprofile")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zprofile"), got)

	_, err = Abs("  ")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestBackupPath(t *testing.T) {
	at := time.Date(2024, 3, 1, 14, 5, 9, 0, time.Local)

	got := BackupPath("/home/u/.zshrc", at)

	assert.Equal(t, "/home/u/.zshrc.backup.20240301_140509", got)
	assert.Equal(t, "/home/u", filepath.Dir(got), "backup must sit next to the original")
}

func TestIsBackupOf(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"/h/.zshrc.backup.20240301_140509", true},
		{"/h/.zshrc.backup.2024", false},
		{"/h/.zshrc.bak", false},
		{"/h/.zprofile.backup.20240301_140509", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBackupOf(tt.candidate, "/h/.zshrc"))
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Equal(t, dir, ConfigDir())
	assert.Empty(t, FindConfigFile())

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("packages: []\n"), 0644))
	assert.Equal(t, yamlPath, FindConfigFile())

	tomlPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("packages = []\n"), 0644))
	assert.Equal(t, tomlPath, FindConfigFile(), "toml wins over yaml")
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", AppDirName), StateDir())

	t.Setenv("XDG_STATE_HOME", "")
	assert.Equal(t, AppDirName, filepath.Base(StateDir()))
	assert.True(t, filepath.IsAbs(StateDir()))
}
