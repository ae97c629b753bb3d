// Package merge is the configuration-merging engine. It decides whether a
// fragment is already present in a shell configuration file, appends the
// ones that are missing, and updates single-value declarations in place.
//
// # Decide, then write
//
// Every mutation is split in two steps:
//
//	change, err := engine.PlanFragment(path, fragment) // pure decision
//	err = engine.Commit(change)                         // the only write
//
// Planning reads the current file, runs the pure text functions
// (AppendFragment, UpdateField) and returns a Change holding the outcome and
// the would-be contents. Commit writes the new contents. Under dry run the
// engine writes into an in-memory overlay instead of the disk, so the same
// decision code serves both modes and later steps still see earlier ones.
//
// # Presence detection
//
// A fragment with a marker is present when any line contains the marker as
// a literal substring; without a marker the whole content must appear
// verbatim. Detection sits behind the Detector interface.
//
// # Structured fields
//
// A field is a declaration such as ZSH_THEME="agnoster" (scalar) or
// plugins=(git docker) (set). The first well-formed declaration of the name
// is authoritative. Scalars are overwritten; sets are merged with the target
// tokens and written back sorted. A declaration that cannot be parsed is
// skipped, so a fresh declaration gets appended instead of failing the run.
package merge
