package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Checksum returns the SHA256 checksum of the file at path on fsys, as
// "sha256:<hex>".
func Checksum(fsys afero.Fs, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

// Same reports whether two files have identical contents.
func Same(fsys afero.Fs, a, b string) (bool, error) {
	sumA, err := Checksum(fsys, a)
	if err != nil {
		return false, err
	}
	sumB, err := Checksum(fsys, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}
