// Package backup copies a configuration file to a timestamped sibling
// before dotmerge first mutates it in a run.
package backup

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/filesystem"
	"github.com/arthur-debert/dotmerge/pkg/internal/hashutil"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/paths"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Manager writes at most one backup per file per run. Backups are never
// pruned.
type Manager struct {
	fs     afero.Fs
	rc     *types.RunContext
	done   map[string]string
	logger zerolog.Logger
}

// NewManager returns a Manager writing through fsys. fsys must be the
// real filesystem, not a dry-run overlay.
func NewManager(fsys afero.Fs, rc *types.RunContext) *Manager {
	return &Manager{
		fs:     fsys,
		rc:     rc,
		done:   make(map[string]string),
		logger: logging.GetLogger("backup"),
	}
}

// Backup copies file to <file>.backup.<YYYYMMDD_HHMMSS> and returns the
// backup path. It returns "" when file does not exist. Repeated calls for
// the same file return the first result without copying again. Under dry
// run nothing is written and the would-be path is returned.
func (m *Manager) Backup(file string) (string, error) {
	if prev, ok := m.done[file]; ok {
		return prev, nil
	}

	exists, err := filesystem.Exists(m.fs, file)
	if err != nil {
		return "", errors.ForFile(err, errors.ErrBackupWrite, file, "cannot inspect file to back up")
	}
	if !exists {
		m.done[file] = ""
		return "", nil
	}

	dest := paths.BackupPath(file, m.rc.Clock())
	if m.rc.IsDryRun() {
		logging.DryRun(m.logger, "back up to "+dest, file)
		m.done[file] = dest
		return dest, nil
	}

	if err := filesystem.Copy(m.fs, file, dest); err != nil {
		return "", errors.ForFile(err, errors.ErrBackupWrite, file, "failed to write backup").
			WithDetail("backup", dest)
	}
	same, err := hashutil.Same(m.fs, file, dest)
	if err == nil && !same {
		err = errors.New(errors.ErrBackupWrite, "backup contents differ from original")
	}
	if err != nil {
		return "", errors.ForFile(err, errors.ErrBackupWrite, file, "failed to verify backup").
			WithDetail("backup", dest)
	}

	m.logger.Info().Str("path", file).Str("backup", dest).Msg("Backed up file")
	m.done[file] = dest
	return dest, nil
}

// Done reports whether Backup already ran for file in this run.
func (m *Manager) Done(file string) bool {
	_, ok := m.done[file]
	return ok
}

// List returns the existing backups of file, oldest first.
func List(fsys afero.Fs, file string) ([]string, error) {
	matches, err := afero.Glob(fsys, file+paths.BackupInfix+"*")
	if err != nil {
		return nil, err
	}
	backups := matches[:0]
	for _, m := range matches {
		if paths.IsBackupOf(m, file) {
			backups = append(backups, m)
		}
	}
	return backups, nil
}
