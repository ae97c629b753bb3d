package merge

import (
	"strings"

	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Detector decides whether a fragment is already present in file contents.
type Detector interface {
	Present(content string, fragment types.Fragment) bool
}

// TextDetector is the default Detector: literal marker search per line,
// falling back to an exact substring match of the fragment content.
type TextDetector struct{}

// Present implements Detector.
func (TextDetector) Present(content string, fragment types.Fragment) bool {
	if fragment.HasMarker() {
		for _, line := range strings.Split(content, "\n") {
			if strings.Contains(line, fragment.Marker) {
				return true
			}
		}
		return false
	}
	if fragment.Content == "" {
		return false
	}
	return strings.Contains(content, fragment.Content)
}

var _ Detector = TextDetector{}
