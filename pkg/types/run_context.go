package types

import "time"

// Counters accumulate validation results for a single invocation.
type Counters struct {
	Pass int `json:"pass" yaml:"pass"`
	Warn int `json:"warn" yaml:"warn"`
	Fail int `json:"fail" yaml:"fail"`
}

// RunContext carries per-invocation state into every mutating call. It
// replaces process-wide globals: components read DryRun from here, and
// the validator records its results in Counters. Nothing is persisted
// across runs.
type RunContext struct {
	DryRun bool

	// Now supplies wall-clock time for backup names. Nil means time.Now.
	Now func() time.Time

	Counters Counters
}

// NewRunContext returns a RunContext for a real or dry run.
func NewRunContext(dryRun bool) *RunContext {
	return &RunContext{DryRun: dryRun, Now: time.Now}
}

// Clock returns the current time according to rc.
func (rc *RunContext) Clock() time.Time {
	if rc == nil || rc.Now == nil {
		return time.Now()
	}
	return rc.Now()
}

// IsDryRun is nil-safe.
func (rc *RunContext) IsDryRun() bool {
	return rc != nil && rc.DryRun
}
