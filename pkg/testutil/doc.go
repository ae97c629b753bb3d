// Package testutil provides utilities for testing dotmerge components.
//
// Key components:
//   - TestEnvironment: a home directory on an in-memory or real filesystem
//   - FaultyFs: an afero.Fs that fails writes to chosen paths
//   - Worklists: representative fragment and field sequences
//
// Usage guidelines:
//   - Engine and orchestrator tests should use EnvMemoryOnly
//   - Only tests that exercise the OS filesystem or the CLI use EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
