// Package types defines the core data model shared across dotmerge:
// fragments and structured fields that make up a worklist, the outcomes
// produced when they are applied to a configuration file, and the
// RunContext threaded through every mutating call.
package types
