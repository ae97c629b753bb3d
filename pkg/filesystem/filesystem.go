package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultFileMode is used for files created from scratch
const DefaultFileMode fs.FileMode = 0644

// NewOS returns the real filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// NewDryRun layers a memory filesystem over base. Reads fall through to
// base until a path has been written; writes never reach base.
func NewDryRun(base afero.Fs) afero.Fs {
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())
}

// Exists reports whether path exists as a regular file. A directory at
// path is an error: configuration targets are always files.
func Exists(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, &fs.PathError{Op: "stat", Path: path, Err: errors.New("is a directory")}
	}
	return true, nil
}

// ReadText returns the contents of path and whether it exists. A missing
// file is not an error.
func ReadText(fsys afero.Fs, path string) (string, bool, error) {
	exists, err := Exists(fsys, path)
	if err != nil || !exists {
		return "", false, err
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", true, err
	}
	return string(data), true, nil
}

// WriteText replaces the contents of path, creating it and its parent
// directory when needed. An existing file keeps its mode.
func WriteText(fsys afero.Fs, path, content string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, []byte(content), DefaultFileMode)
}

// Copy duplicates src to dst byte for byte, keeping src's mode.
func Copy(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, dst, data, info.Mode().Perm())
}

// IsPermission reports whether err is a permission failure
func IsPermission(err error) bool {
	return errors.Is(err, os.ErrPermission)
}
