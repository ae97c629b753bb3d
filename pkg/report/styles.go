package report

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotmerge/pkg/provision"
	"github.com/arthur-debert/dotmerge/pkg/types"
	"github.com/arthur-debert/dotmerge/pkg/validate"
)

// Status buckets outcomes for styling
type Status string

const (
	StatusSuccess Status = "success" // Changed the file or the system
	StatusError   Status = "error"   // Failed
	StatusQueue   Status = "queue"   // Would change under dry run
	StatusNoop    Status = "noop"    // Already in the desired state
	StatusWarn    Status = "warn"
)

// OutcomeVerbs defines past and future tense wording for each outcome
var OutcomeVerbs = map[types.Outcome]struct {
	Past   string
	Future string
}{
	types.OutcomeAlreadyPresent: {Past: "already present", Future: "already present"},
	types.OutcomeAppended:       {Past: "appended", Future: "would append"},
	types.OutcomeCreated:        {Past: "created file", Future: "would create file"},
	types.OutcomeUnchanged:      {Past: "unchanged", Future: "unchanged"},
	types.OutcomeUpdated:        {Past: "updated in place", Future: "would update in place"},
	types.OutcomeAppendedAsNew:  {Past: "appended as new declaration", Future: "would append as new declaration"},
	types.OutcomeFailed:         {Past: "failed", Future: "failed"},
	types.OutcomeSkipped:        {Past: "skipped after earlier failure", Future: "skipped after earlier failure"},
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case StatusQueue:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusWarn:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeStatus buckets a merge outcome
func OutcomeStatus(o types.Outcome, dryRun bool) Status {
	switch {
	case o == types.OutcomeFailed:
		return StatusError
	case o.Mutates() && dryRun:
		return StatusQueue
	case o.Mutates():
		return StatusSuccess
	}
	return StatusNoop
}

// CollaboratorStatus buckets a collaborator outcome
func CollaboratorStatus(s provision.Status, dryRun bool) Status {
	switch s {
	case provision.StatusFailed:
		return StatusError
	case provision.StatusInstalled, provision.StatusCloned:
		if dryRun {
			return StatusQueue
		}
		return StatusSuccess
	}
	return StatusNoop
}

// ValidationStatus buckets a validation result
func ValidationStatus(s validate.Status) Status {
	switch s {
	case validate.StatusPass:
		return StatusSuccess
	case validate.StatusWarn:
		return StatusWarn
	}
	return StatusError
}

// Describe returns the wording for an outcome in the tense of the run
func Describe(o types.Outcome, dryRun bool) string {
	verbs, ok := OutcomeVerbs[o]
	if !ok {
		return string(o)
	}
	if dryRun {
		return verbs.Future
	}
	return verbs.Past
}
