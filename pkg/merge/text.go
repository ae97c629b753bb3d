package merge

import (
	"strings"

	"github.com/arthur-debert/dotmerge/pkg/types"
)

// AppendFragment returns the contents after ensuring fragment, together
// with the outcome. It never touches the filesystem.
//
// A missing file is created with the fragment content only; the comment is
// dropped in that case. An existing file gets a blank separator line, the
// comment (if any) and the content, each newline terminated.
func AppendFragment(content string, exists bool, fragment types.Fragment, d Detector) (string, types.Outcome) {
	if exists && d.Present(content, fragment) {
		return content, types.OutcomeAlreadyPresent
	}

	if !exists {
		return terminate(fragment.Content), types.OutcomeCreated
	}

	var b strings.Builder
	b.WriteString(terminate(content))
	b.WriteString("\n")
	if fragment.Comment != "" {
		b.WriteString(terminate(fragment.Comment))
	}
	b.WriteString(terminate(fragment.Content))
	return b.String(), types.OutcomeAppended
}

// terminate newline-terminates a non-empty s.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// splitLines splits file contents into lines without their terminators.
// The second result reports whether the final line was newline terminated.
func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, true
	}
	trailing := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	return lines, trailing
}

// joinLines is the inverse of splitLines.
func joinLines(lines []string, trailing bool) string {
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}
