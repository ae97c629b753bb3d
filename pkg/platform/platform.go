// Package platform checks that dotmerge runs on a supported host before
// anything is touched.
package platform

import (
	"runtime"
	"slices"
	"strings"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/logging"
)

// Current returns the host operating system as reported by the Go runtime.
func Current() string {
	return runtime.GOOS
}

// Check returns a PRECONDITION error when goos is not in allowed. An empty
// allowed list accepts every platform.
func Check(goos string, allowed []string) error {
	logger := logging.GetLogger("platform")
	if len(allowed) == 0 || slices.Contains(allowed, goos) {
		logger.Debug().Str("goos", goos).Msg("Platform supported")
		return nil
	}
	logger.Error().Str("goos", goos).Strs("allowed", allowed).Msg("Unsupported platform")
	return errors.Newf(errors.ErrPrecondition, "unsupported platform %s (requires %s)", goos, strings.Join(allowed, ", ")).
		WithDetail("goos", goos)
}

// CheckCurrent runs Check against the host platform.
func CheckCurrent(allowed []string) error {
	return Check(Current(), allowed)
}
