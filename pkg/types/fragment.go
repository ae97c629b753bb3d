package types

import "strings"

// Fragment is a block of configuration text that must be present in a
// target file. Fragments are defined by the worklist and never persisted.
type Fragment struct {
	// Content is one or more newline separated lines.
	Content string `koanf:"content" yaml:"content" toml:"content"`

	// Comment is an optional header line written above Content when the
	// fragment is appended to an existing file.
	Comment string `koanf:"comment" yaml:"comment,omitempty" toml:"comment,omitempty"`

	// Marker, when set, replaces exact matching of Content with a literal
	// substring search on each line of the file.
	Marker string `koanf:"marker" yaml:"marker,omitempty" toml:"marker,omitempty"`
}

// HasMarker reports whether presence is decided by Marker.
func (f Fragment) HasMarker() bool {
	return f.Marker != ""
}

// Label returns a short human readable name for reporting.
func (f Fragment) Label() string {
	if f.Marker != "" {
		return f.Marker
	}
	first, _, _ := strings.Cut(strings.TrimSpace(f.Content), "\n")
	return first
}
