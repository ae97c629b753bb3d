// Package commands provides high-level command implementations for dotmerge.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the merge engine. Each command is
// implemented in its own subdirectory:
//   - merge/ - the full merge run
package commands

import (
	"context"

	"github.com/arthur-debert/dotmerge/pkg/commands/merge"
	"github.com/arthur-debert/dotmerge/pkg/report"
)

// MergeOptions defines the options for Merge.
type MergeOptions = merge.Options

// Merge runs precondition, collaborators, merge and validation.
func Merge(ctx context.Context, opts MergeOptions) (*report.Run, error) {
	return merge.Merge(ctx, opts)
}
