// Package paths provides centralized path handling for dotmerge.
//
// It covers three concerns:
//
//   - Home expansion of user supplied paths (~/.zshrc)
//   - XDG locations for the user configuration and log state
//   - Naming of backup copies written before a file is mutated
//
// # Environment Variables
//
//   - DOTMERGE_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/dotmerge)
//   - HOME: used for ~ expansion
//
// # Backup naming
//
// A backup of /home/u/.zshrc taken at 2024-03-01 14:05:09 is written next to
// the original as /home/u/.zshrc.backup.20240301_140509.
package paths
