package merge

import (
	"context"
	"time"

	"github.com/spf13/afero"

	"github.com/arthur-debert/dotmerge/pkg/backup"
	"github.com/arthur-debert/dotmerge/pkg/config"
	"github.com/arthur-debert/dotmerge/pkg/filesystem"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	engine "github.com/arthur-debert/dotmerge/pkg/merge"
	"github.com/arthur-debert/dotmerge/pkg/orchestrator"
	"github.com/arthur-debert/dotmerge/pkg/platform"
	"github.com/arthur-debert/dotmerge/pkg/provision"
	"github.com/arthur-debert/dotmerge/pkg/report"
	"github.com/arthur-debert/dotmerge/pkg/types"
	"github.com/arthur-debert/dotmerge/pkg/validate"
)

// Options defines the options for the Merge command.
type Options struct {
	// ConfigPath is an explicit config file; empty looks one up.
	ConfigPath string
	// DryRun reports what would happen without writing anything.
	DryRun bool
	// NoBackup disables backups regardless of configuration.
	NoBackup bool
	// SkipCollaborators skips package installation and plugin fetching.
	SkipCollaborators bool

	// FS is the filesystem to merge into. Nil means the OS filesystem.
	FS afero.Fs
	// Installer and Fetcher replace the configured collaborators.
	Installer provision.Installer
	Fetcher   provision.PluginFetcher
	// GOOS replaces the host platform for the precondition check.
	GOOS string
	// Now replaces the clock used for backup names.
	Now func() time.Time
}

// Merge runs a full invocation: platform precondition, collaborators,
// merge, validation. A returned error is fatal and means nothing was
// touched; per-file failures are reported in the result instead.
func Merge(ctx context.Context, opts Options) (*report.Run, error) {
	log := logging.GetLogger("commands.merge")
	log.Debug().Str("command", "Merge").Bool("dry_run", opts.DryRun).Msg("Executing command")

	var overrides map[string]interface{}
	if opts.NoBackup {
		overrides = map[string]interface{}{"backup.enabled": false}
	}
	cfg, err := config.Load(opts.ConfigPath, overrides)
	if err != nil {
		return nil, err
	}

	goos := opts.GOOS
	if goos == "" {
		goos = platform.Current()
	}
	if err := platform.Check(goos, cfg.Platform.Require); err != nil {
		return nil, err
	}

	targets, err := cfg.Targets()
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	rc := types.NewRunContext(opts.DryRun)
	if opts.Now != nil {
		rc.Now = opts.Now
	}

	run := &report.Run{DryRun: opts.DryRun}

	if !opts.SkipCollaborators {
		installer := opts.Installer
		if installer == nil {
			installer = provision.NewCommandInstaller(cfg.Installer.Command, rc)
		}
		fetcher := opts.Fetcher
		if fetcher == nil {
			fetcher = provision.NewGitFetcher(fsys, rc, nil)
		}
		run.Collaborators = provision.Run(ctx, installer, fetcher, provision.Request{
			Packages:  cfg.Packages,
			Plugins:   cfg.Plugins,
			PluginDir: cfg.PluginDir,
		})
	}

	eng := engine.NewEngine(fsys, rc)
	var backups *backup.Manager
	if cfg.Backup.Enabled {
		backups = backup.NewManager(fsys, rc)
	}
	run.Merge = orchestrator.New(eng, backups).Run(targets)

	run.Validation = validate.New(eng.FS(), rc).Run(validate.ExpectedChecks(targets))
	run.Counters = rc.Counters

	log.Info().
		Str("command", "Merge").
		Int("files", len(run.Merge.Files)).
		Int("failed", len(run.Merge.Failed())).
		Msg("Command finished")
	return run, nil
}
