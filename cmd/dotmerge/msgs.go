package dotmerge

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Idempotently merge shell configuration fragments into your dotfiles"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgVersionFormat = "dotmerge version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrUnknownFormat = "unknown output format %q"

	// Flag descriptions
	MsgFlagVerbose           = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun            = "Report what would change without writing anything"
	MsgFlagConfig            = "Configuration file (default $XDG_CONFIG_HOME/dotmerge/config.toml)"
	MsgFlagNoBackup          = "Do not back up files before changing them"
	MsgFlagSkipCollaborators = "Skip package installation and plugin fetching"
	MsgFlagOutput            = "Output style: auto, term or text"
	MsgFlagConfigFormat      = "Serialization format: toml or yaml"
	MsgFlagConfigDefaults    = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
