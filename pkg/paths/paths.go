package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotmerge/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for dotmerge
	EnvConfigDir = "DOTMERGE_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under XDG roots
	AppDirName = "dotmerge"

	// BackupInfix separates the original file name from the timestamp
	BackupInfix = ".backup."

	// BackupTimeFormat is the Go layout for YYYYMMDD_HHMMSS
	BackupTimeFormat = "20060102_150405"
)

// ConfigFileNames are the user configuration files looked up in ConfigDir,
// in order of preference.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~otheruser is left alone
	return path
}

// ContractHome replaces a leading home directory with ~ for display
func ContractHome(path string) string {
	homeDir := os.Getenv(EnvHome)
	if homeDir == "" {
		return path
	}
	if path == homeDir {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, homeDir+string(filepath.Separator)); ok {
		return "~/" + rest
	}
	return path
}

// Abs expands ~ and returns a cleaned absolute path
func Abs(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// BackupPath returns the sibling backup path of file for the time t
func BackupPath(file string, t time.Time) string {
	return file + BackupInfix + t.Format(BackupTimeFormat)
}

// IsBackupOf reports whether candidate is a backup path produced by
// BackupPath for file.
func IsBackupOf(candidate, file string) bool {
	stamp, ok := strings.CutPrefix(candidate, file+BackupInfix)
	if !ok {
		return false
	}
	_, err := time.Parse(BackupTimeFormat, stamp)
	return err == nil
}

// ConfigDir returns the directory holding the user configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the XDG state directory for dotmerge, where the log
// file lives. XDG_STATE_HOME is consulted on every call.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(ExpandHome(dir), AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// FindConfigFile returns the first existing user configuration file, or
// "" when there is none.
func FindConfigFile() string {
	dir := ConfigDir()
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
