package testutil

import (
	"os"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// FaultyFs wraps an afero.Fs and rejects writes to any path containing one
// of the configured substrings with EACCES.
type FaultyFs struct {
	afero.Fs
	FailWrites []string
}

// NewFaultyFs returns a FaultyFs over base
func NewFaultyFs(base afero.Fs, failWrites ...string) *FaultyFs {
	return &FaultyFs{Fs: base, FailWrites: failWrites}
}

func (f *FaultyFs) denied(name string) bool {
	for _, s := range f.FailWrites {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// OpenFile implements afero.Fs
func (f *FaultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 && f.denied(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: syscall.EACCES}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Create implements afero.Fs
func (f *FaultyFs) Create(name string) (afero.File, error) {
	if f.denied(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: syscall.EACCES}
	}
	return f.Fs.Create(name)
}
