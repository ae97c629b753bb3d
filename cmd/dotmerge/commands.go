package dotmerge

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotmerge/internal/version"
	"github.com/arthur-debert/dotmerge/pkg/cobrax/topics"
	"github.com/arthur-debert/dotmerge/pkg/commands"
	"github.com/arthur-debert/dotmerge/pkg/config"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/report"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity         int
		dryRun            bool
		configPath        string
		noBackup          bool
		skipCollaborators bool
		output            string
	)

	rootCmd := &cobra.Command{
		Use:     "dotmerge",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return fmt.Errorf(MsgErrUnknownFormat, output)
			}

			run, err := commands.Merge(cmd.Context(), commands.MergeOptions{
				ConfigPath:        configPath,
				DryRun:            dryRun,
				NoBackup:          noBackup,
				SkipCollaborators: skipCollaborators,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return report.NewRenderer(out, plainOutput(format, out)).Render(*run)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&noBackup, "no-backup", false, MsgFlagNoBackup)
	rootCmd.Flags().BoolVar(&skipCollaborators, "skip-collaborators", false, MsgFlagSkipCollaborators)
	rootCmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(&configPath))
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// plainOutput decides whether the report is rendered without styling
func plainOutput(format report.Format, out io.Writer) bool {
	if format == report.FormatAuto {
		f, ok := out.(*os.File)
		if !ok {
			return true
		}
		format = report.DetectFormat(f)
	}
	if format == report.FormatText {
		report.DisableColor()
		return true
	}
	return false
}

func newConfigCmd(configPath *string) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}

			cfg, err := config.Load(*configPath, nil)
			if err != nil {
				return err
			}
			data, err := cfg.Dump(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagConfigFormat)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagConfigDefaults)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newDocsCmd() *cobra.Command {
	cmd, err := topics.NewCommand(topicFiles(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(!isTerminal()),
	})
	if err != nil {
		// embedded topics are read at build time; a failure here is a packaging bug
		panic(err)
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "DOTMERGE",
				Section: "1",
				Source:  "dotmerge " + version.Version,
				Manual:  "dotmerge manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
