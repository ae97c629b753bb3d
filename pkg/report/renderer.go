// Package report renders the outcome of a dotmerge run for the terminal:
// collaborator results, per-file step outcomes, dry-run diffs, validation
// results and a summary box.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/orchestrator"
	"github.com/arthur-debert/dotmerge/pkg/paths"
	"github.com/arthur-debert/dotmerge/pkg/provision"
	"github.com/arthur-debert/dotmerge/pkg/types"
	"github.com/arthur-debert/dotmerge/pkg/validate"
)

// Run is everything that happened in one invocation
type Run struct {
	DryRun        bool
	Collaborators []provision.Result
	Merge         *orchestrator.Report
	Validation    []validate.Result
	Counters      types.Counters
}

// Renderer writes run reports to a writer
type Renderer struct {
	w       io.Writer
	noColor bool

	title   lipgloss.Style
	muted   lipgloss.Style
	path    lipgloss.Style
	box     lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warning lipgloss.Style
}

// NewRenderer creates a renderer for w. With noColor every style is
// stripped.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}

	log := logging.GetLogger("report")
	log.Debug().Bool("noColor", noColor).Str("colorProfile", fmt.Sprintf("%v", lr.ColorProfile())).Msg("Creating renderer")

	return &Renderer{
		w:       w,
		noColor: noColor,
		title:   lr.NewStyle().Foreground(HeadingColor).Bold(true),
		muted:   lr.NewStyle().Foreground(MutedColor),
		path:    lr.NewStyle().Foreground(PathColor).Italic(true),
		box:     lr.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(BorderColor).Padding(0, 1),
		good:    lr.NewStyle().Foreground(SuccessColor).Bold(true),
		bad:     lr.NewStyle().Foreground(ErrorColor).Bold(true),
		warning: lr.NewStyle().Foreground(WarningColor).Bold(true),
	}
}

// Render writes the full report
func (r *Renderer) Render(run Run) error {
	var b strings.Builder

	header := "dotmerge"
	if run.DryRun {
		header += " (dry run: nothing was written)"
	}
	b.WriteString(r.title.Render(header) + "\n\n")

	if len(run.Collaborators) > 0 {
		b.WriteString(r.title.Render("Collaborators") + "\n")
		for _, c := range run.Collaborators {
			b.WriteString(r.collaboratorLine(c, run.DryRun) + "\n")
		}
		b.WriteString("\n")
	}

	if run.Merge != nil {
		for _, f := range run.Merge.Files {
			b.WriteString(r.file(f, run.DryRun))
			b.WriteString("\n")
		}
	}

	if len(run.Validation) > 0 {
		b.WriteString(r.title.Render("Validation") + "\n")
		for _, v := range run.Validation {
			b.WriteString(r.validationLine(v) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(r.summary(run) + "\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// RenderError renders an error message
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.w, "%s %v\n", r.bad.Render("Error:"), err)
	return writeErr
}

func (r *Renderer) paint(status Status, s string) string {
	if r.noColor {
		return s
	}
	return StatusStyle(status).Sprint(s)
}

func (r *Renderer) line(kind string, status Status, label, msg string) string {
	return fmt.Sprintf("    %s : %s : %s", r.paint(status, fmt.Sprintf("%-10s", kind)), fmt.Sprintf("%-24s", label), msg)
}

func (r *Renderer) collaboratorLine(c provision.Result, dryRun bool) string {
	msg := strings.ReplaceAll(string(c.Status), "_", " ")
	if dryRun && (c.Status == provision.StatusInstalled || c.Status == provision.StatusCloned) {
		msg = "would be " + msg
	}
	if c.Err != nil {
		msg += ": " + c.Err.Error()
	}
	return r.line(string(c.Kind), CollaboratorStatus(c.Status, dryRun), c.Name, msg)
}

func (r *Renderer) file(f orchestrator.FileReport, dryRun bool) string {
	var b strings.Builder

	header := r.path.Render(paths.ContractHome(f.Path))
	if f.Backup != "" {
		header += r.muted.Render(" (backup: " + paths.ContractHome(f.Backup) + ")")
	}
	b.WriteString(header + "\n")

	for _, s := range f.Steps {
		msg := Describe(s.Outcome, dryRun)
		if s.Err != nil {
			msg += ": " + s.Err.Error()
		}
		b.WriteString(r.line(string(s.Operation.Type), OutcomeStatus(s.Outcome, dryRun), s.Operation.Label(), msg) + "\n")
	}

	if dryRun && f.Changed() {
		diff, err := UnifiedDiff(paths.ContractHome(f.Path), f.Before, f.After)
		if err != nil {
			log := logging.GetLogger("report")
			log.Warn().Err(err).Str("path", f.Path).Msg("Cannot compute diff")
		} else if diff != "" {
			if !r.noColor {
				diff = colorizeDiff(diff)
			}
			b.WriteString("\n" + diff)
		}
	}
	return b.String()
}

func (r *Renderer) validationLine(v validate.Result) string {
	msg := string(v.Status)
	if v.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, v.Line)
	}
	if v.Status == validate.StatusWarn {
		msg += ", commented out"
	}
	return r.line(string(v.Status), ValidationStatus(v.Status), v.Marker, paths.ContractHome(v.Path)+" "+msg)
}

func (r *Renderer) summary(run Run) string {
	var changed, unchanged, failed int
	if run.Merge != nil {
		for outcome, n := range run.Merge.Tally() {
			switch {
			case outcome == types.OutcomeFailed:
				failed += n
			case outcome.Mutates():
				changed += n
			case outcome.IsNoop():
				unchanged += n
			}
		}
	}

	changedLabel := "changed"
	if run.DryRun {
		changedLabel = "would change"
	}

	lines := []string{
		fmt.Sprintf("%s %s  %s unchanged  %s failed",
			r.good.Render(fmt.Sprint(changed)), changedLabel,
			r.muted.Render(fmt.Sprint(unchanged)),
			r.bad.Render(fmt.Sprint(failed))),
	}
	if c := run.Counters; c.Pass+c.Warn+c.Fail > 0 {
		lines = append(lines, fmt.Sprintf("validation: %s pass  %s warn  %s fail",
			r.good.Render(fmt.Sprint(c.Pass)),
			r.warning.Render(fmt.Sprint(c.Warn)),
			r.bad.Render(fmt.Sprint(c.Fail))))
	}
	return r.box.Render(strings.Join(lines, "\n"))
}

// DisableColor turns off pterm styling process-wide for plain output
func DisableColor() {
	pterm.DisableColor()
}
