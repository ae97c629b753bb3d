package types

import "fmt"

// ValueKind distinguishes single-value declarations from set-valued ones.
type ValueKind string

const (
	// ValueScalar is a declaration of the form name="value"; updates overwrite.
	ValueScalar ValueKind = "scalar"

	// ValueSet is a declaration of the form name=(a b c); updates merge.
	ValueSet ValueKind = "set"
)

// Valid reports whether k is a known kind.
func (k ValueKind) Valid() bool {
	return k == ValueScalar || k == ValueSet
}

// StructuredField is a named single-line declaration whose value is
// updated in place. Only the first matching declaration in a file is
// authoritative; later duplicates are neither detected nor removed.
type StructuredField struct {
	Name string    `koanf:"name" yaml:"name" toml:"name"`
	Kind ValueKind `koanf:"kind" yaml:"kind" toml:"kind"`

	// Value is the target for scalar fields, stored without quotes.
	Value string `koanf:"value" yaml:"value,omitempty" toml:"value,omitempty"`

	// Values are the tokens to merge into set fields.
	Values []string `koanf:"values" yaml:"values,omitempty" toml:"values,omitempty"`
}

// Label returns a short human readable name for reporting.
func (f StructuredField) Label() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Kind)
}
