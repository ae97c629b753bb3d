package provision

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// CommandInstaller drives a Homebrew-style package manager: "list
// --versions NAME" succeeds when NAME is installed and "install NAME"
// installs it.
type CommandInstaller struct {
	command  string
	rc       *types.RunContext
	run      Runner
	lookPath func(string) (string, error)
	logger   zerolog.Logger
}

// InstallerOption configures a CommandInstaller.
type InstallerOption func(*CommandInstaller)

// WithRunner replaces ExecRunner.
func WithRunner(r Runner) InstallerOption {
	return func(c *CommandInstaller) { c.run = r }
}

// WithLookPath replaces exec.LookPath.
func WithLookPath(f func(string) (string, error)) InstallerOption {
	return func(c *CommandInstaller) { c.lookPath = f }
}

// NewCommandInstaller returns an installer shelling out to command.
func NewCommandInstaller(command string, rc *types.RunContext, opts ...InstallerOption) *CommandInstaller {
	c := &CommandInstaller{
		command:  command,
		rc:       rc,
		run:      ExecRunner,
		lookPath: exec.LookPath,
		logger:   logging.GetLogger("provision.installer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Install implements Installer.
func (c *CommandInstaller) Install(ctx context.Context, name string) (Status, error) {
	bin, err := c.lookPath(c.command)
	if err != nil {
		return StatusFailed, errors.Wrapf(err, errors.ErrMissingCollaborator, "%s not found in PATH", c.command).
			WithDetail("package", name)
	}

	if c.installed(ctx, bin, name) {
		c.logger.Debug().Str("package", name).Msg("Already installed")
		return StatusAlreadyInstalled, nil
	}

	if c.rc.IsDryRun() {
		logging.DryRun(c.logger, "install "+name, bin)
		return StatusInstalled, nil
	}

	args := []string{"install", name}
	logging.LogCommand(c.logger, bin, args)
	out, err := c.run(ctx, bin, args...)
	if err != nil {
		return StatusFailed, errors.Wrapf(err, errors.ErrCollaboratorFailed, "%s install %s failed", c.command, name).
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	c.logger.Info().Str("package", name).Msg("Installed")
	return StatusInstalled, nil
}

func (c *CommandInstaller) installed(ctx context.Context, bin, name string) bool {
	args := []string{"list", "--versions", name}
	logging.LogCommand(c.logger, bin, args)
	out, err := c.run(ctx, bin, args...)
	return err == nil && len(bytes.TrimSpace(out)) > 0
}

var _ Installer = (*CommandInstaller)(nil)
