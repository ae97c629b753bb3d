// pkg/config/loader_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: temp config directory, environment
// PURPOSE: Test config layering, validation and worklist conversion

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// isolate points the config lookup at an empty temp directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DOTMERGE_CONFIG_DIR", dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"darwin"}, cfg.Platform.Require)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, "brew", cfg.Installer.Command)
	assert.Equal(t, "~/.oh-my-zsh/custom/plugins", cfg.PluginDir)
	require.Len(t, cfg.Plugins, 2)
	assert.Equal(t, "zsh-autosuggestions", cfg.Plugins[0].Name)

	require.Len(t, cfg.Files, 2)
	assert.Equal(t, "~/.zprofile", cfg.Files[0].Path)
	assert.Equal(t, "~/.zshrc", cfg.Files[1].Path)

	targets, err := cfg.Targets()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "home", ".zshrc"), targets[1].Path)

	ops := targets[1].Operations
	require.NotEmpty(t, ops)
	assert.Equal(t, types.FieldOp(types.StructuredField{Name: "ZSH_THEME", Kind: types.ValueScalar, Value: "agnoster"}), ops[0])
	assert.Equal(t, types.ValueSet, ops[1].Field.Kind)
	assert.Contains(t, ops[1].Field.Values, "zsh-autosuggestions")

	nvm := ops[2].Fragment
	assert.Equal(t, "NVM_DIR", nvm.Marker)
	assert.Equal(t, "# NVM", nvm.Comment)
	assert.True(t, len(nvm.Content) > 0 && nvm.Content[0] == 'e', "leading newline of the multi-line string is dropped")
	assert.NotEqual(t, byte('\n'), nvm.Content[len(nvm.Content)-1], "trailing newline is trimmed")
}

func TestLoad_UserTOMLReplacesLists(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
packages = ["ripgrep"]

[platform]
require = ["linux"]

[[files]]
path = "~/.bashrc"

  [[files.steps]]
  type = "fragment"
  content = "export EDITOR=vim\n"
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ripgrep"}, cfg.Packages)
	assert.Equal(t, []string{"linux"}, cfg.Platform.Require)
	assert.Equal(t, "brew", cfg.Installer.Command, "maps merge key by key")
	require.Len(t, cfg.Files, 1)

	targets, err := cfg.Targets()
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=vim", targets[0].Operations[0].Fragment.Content)
}

func TestLoad_ExplicitYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "merge.yaml"), `
backup:
  enabled: false
files:
  - path: /tmp/zshrc
    steps:
      - type: field
        name: plugins
        kind: set
        values: [git, docker]
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.False(t, cfg.Backup.Enabled)
	require.Len(t, cfg.Files, 1)
	assert.Equal(t, []string{"git", "docker"}, cfg.Files[0].Steps[0].Values)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("DOTMERGE_PLATFORM__REQUIRE", "linux,darwin")
	t.Setenv("DOTMERGE_INSTALLER__COMMAND", "port")
	t.Setenv("DOTMERGE_BACKUP__ENABLED", "false")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"linux", "darwin"}, cfg.Platform.Require)
	assert.Equal(t, "port", cfg.Installer.Command)
	assert.False(t, cfg.Backup.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	isolate(t)
	t.Setenv("DOTMERGE_BACKUP__ENABLED", "true")

	cfg, err := Load("", map[string]interface{}{"backup.enabled": false})
	require.NoError(t, err)
	assert.False(t, cfg.Backup.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.True(t, errors.IsFatal(err))
	})

	t.Run("unparseable file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), "[[files]\npath =")
		_, err := Load("", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid worklist", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), `
[[files]]
path = "~/.zshrc"

  [[files.steps]]
  type = "field"
  name = "plugins"
  kind = "list"
`)
		_, err := Load("", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Contains(t, err.Error(), "files[0].steps[0]")
	})
}
