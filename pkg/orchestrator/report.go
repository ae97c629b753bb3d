package orchestrator

import (
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// StepResult is the outcome of one worklist operation.
type StepResult struct {
	Operation types.Operation
	Outcome   types.Outcome
	Err       error
}

// FileReport collects everything that happened to one target file.
type FileReport struct {
	Path    string
	Existed bool

	// Backup is the backup path written (or, under dry run, the one that
	// would be written). Empty when no backup was needed.
	Backup string

	Steps []StepResult

	// Err is the error that stopped this file, if any.
	Err error

	// Before and After are the contents at the start and end of the run.
	// Under dry run After holds the would-be contents.
	Before string
	After  string
}

// Changed reports whether the file contents differ after the run.
func (f FileReport) Changed() bool {
	return f.Before != f.After || (!f.Existed && f.After != "")
}

// Report is the result of a whole merge phase.
type Report struct {
	Files []FileReport
}

// Tally counts step outcomes across all files.
func (r *Report) Tally() map[types.Outcome]int {
	counts := make(map[types.Outcome]int)
	for _, f := range r.Files {
		for _, s := range f.Steps {
			counts[s.Outcome]++
		}
	}
	return counts
}

// Changed reports whether any file changed.
func (r *Report) Changed() bool {
	for _, f := range r.Files {
		if f.Changed() {
			return true
		}
	}
	return false
}

// Failed returns the reports of files that stopped on an error.
func (r *Report) Failed() []FileReport {
	var failed []FileReport
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}
