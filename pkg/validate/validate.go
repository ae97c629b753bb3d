// Package validate re-reads configuration files after a merge and checks
// that every worklist step left a visible trace. It derives its checks
// from the worklist independently of the merge engine, so a detector bug
// is not hidden by the same detector validating its own work.
package validate

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/dotmerge/pkg/filesystem"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Status is the result of one check.
type Status string

const (
	StatusPass Status = "pass"
	// StatusWarn means the marker only appears on commented-out lines.
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is one expected marker in one file.
type Check struct {
	Path   string
	Marker string
	Label  string
}

// Result pairs a check with its status.
type Result struct {
	Check
	Status Status
	// Line is the 1-based line the marker was found on, 0 if absent.
	Line int
}

// ExpectedChecks derives one check per worklist step. Fragments use their
// marker, or the first non-empty content line; fields use "name=".
func ExpectedChecks(targets []types.Target) []Check {
	var checks []Check
	for _, t := range targets {
		for _, op := range t.Operations {
			marker := markerFor(op)
			if marker == "" {
				continue
			}
			checks = append(checks, Check{Path: t.Path, Marker: marker, Label: op.Label()})
		}
	}
	return checks
}

func markerFor(op types.Operation) string {
	if op.Type == types.OperationField {
		if op.Field.Name == "" {
			return ""
		}
		return op.Field.Name + "="
	}
	if op.Fragment.HasMarker() {
		return op.Fragment.Marker
	}
	for _, line := range strings.Split(op.Fragment.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// Validator runs checks against a filesystem.
type Validator struct {
	fs     afero.Fs
	rc     *types.RunContext
	logger zerolog.Logger
}

// New returns a Validator reading through fsys. Under dry run pass the
// engine's overlay so the would-be contents are validated.
func New(fsys afero.Fs, rc *types.RunContext) *Validator {
	if rc == nil {
		rc = &types.RunContext{}
	}
	return &Validator{fs: fsys, rc: rc, logger: logging.GetLogger("validate")}
}

// Run evaluates every check, records the totals in the run context
// counters and returns the individual results.
func (v *Validator) Run(checks []Check) []Result {
	cache := make(map[string][]string)
	results := make([]Result, 0, len(checks))

	for _, c := range checks {
		lines, ok := cache[c.Path]
		if !ok {
			content, _, err := filesystem.ReadText(v.fs, c.Path)
			if err != nil {
				v.logger.Warn().Err(err).Str("path", c.Path).Msg("Cannot read file for validation")
			}
			lines = strings.Split(content, "\n")
			cache[c.Path] = lines
		}

		r := evaluate(c, lines)
		v.record(r)
		results = append(results, r)
	}
	return results
}

func evaluate(c Check, lines []string) Result {
	r := Result{Check: c, Status: StatusFail}
	for i, line := range lines {
		if !strings.Contains(line, c.Marker) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") && !strings.HasPrefix(strings.TrimSpace(c.Marker), "#") {
			if r.Status == StatusFail {
				r.Status, r.Line = StatusWarn, i+1
			}
			continue
		}
		return Result{Check: c, Status: StatusPass, Line: i + 1}
	}
	return r
}

func (v *Validator) record(r Result) {
	logger := v.logger.With().Str("path", r.Path).Str("marker", r.Marker).Logger()
	switch r.Status {
	case StatusPass:
		v.rc.Counters.Pass++
		logger.Debug().Int("line", r.Line).Msg("Validation passed")
	case StatusWarn:
		v.rc.Counters.Warn++
		logger.Warn().Int("line", r.Line).Msg("Marker only found on a commented-out line")
	case StatusFail:
		v.rc.Counters.Fail++
		logger.Error().Msg("Marker not found")
	}
}
