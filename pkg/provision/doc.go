// Package provision holds the collaborators that run before the merge:
// installing command line tools through a package manager and fetching
// shell plugins from git.
//
// Collaborators report an outcome per item and never stop the merge
// phase. Under dry run they report what they would do and do nothing.
package provision
