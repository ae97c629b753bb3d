// pkg/testutil/environment.go
// DEPENDENCIES: afero
// PURPOSE: Orchestrate test environments with a home directory

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/dotmerge/pkg/filesystem"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a home directory on a filesystem
type TestEnvironment struct {
	HomeDir string
	FS      afero.Fs
	Type    EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Isolated
// environments also point HOME and the XDG variables at the temp dir.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.HomeDir = filepath.Join(tempDir, "home")
		env.FS = filesystem.NewOS()
		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
		t.Setenv("DOTMERGE_CONFIG_DIR", filepath.Join(tempDir, "config", "dotmerge"))
	}

	if err := env.FS.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home directory: %v", err)
	}
	return env
}

// Path returns the absolute path of name inside the home directory
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.HomeDir, name)
}

// WriteFile writes content to name inside the home directory
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	path := env.Path(name)
	if err := afero.WriteFile(env.FS, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of name inside the home directory
func (env *TestEnvironment) ReadFile(name string) string {
	env.t.Helper()
	return ReadFile(env.t, env.FS, env.Path(name))
}

// Snapshot returns every regular file under the home directory with its
// contents, for byte-level comparisons.
func (env *TestEnvironment) Snapshot() map[string]string {
	env.t.Helper()
	return Snapshot(env.t, env.FS, env.HomeDir)
}
