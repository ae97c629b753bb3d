package report

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/pterm/pterm"
)

// UnifiedDiff returns a unified diff between the original and the
// would-be contents of path, or "" when they are equal.
func UnifiedDiff(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (after)",
		Context:  3,
	})
}

// colorizeDiff paints added lines green and removed lines red
func colorizeDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(pterm.Bold.Sprint(body) + nl)
		case strings.HasPrefix(line, "+"):
			b.WriteString(pterm.FgGreen.Sprint(body) + nl)
		case strings.HasPrefix(line, "-"):
			b.WriteString(pterm.FgRed.Sprint(body) + nl)
		case strings.HasPrefix(line, "@@"):
			b.WriteString(pterm.FgCyan.Sprint(body) + nl)
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}
