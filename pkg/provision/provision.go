package provision

import (
	"context"

	"github.com/arthur-debert/dotmerge/pkg/logging"
)

// Status is the outcome of one collaborator call.
type Status string

const (
	StatusAlreadyInstalled Status = "already_installed"
	StatusInstalled        Status = "installed"
	StatusAlreadyPresent   Status = "already_present"
	StatusCloned           Status = "cloned"
	StatusFailed           Status = "failed"
)

// Kind tells package results from plugin results.
type Kind string

const (
	KindPackage Kind = "package"
	KindPlugin  Kind = "plugin"
)

// Installer installs a named tool.
type Installer interface {
	Install(ctx context.Context, name string) (Status, error)
}

// PluginFetcher fetches a plugin repository into dest.
type PluginFetcher interface {
	Clone(ctx context.Context, url, dest string) (Status, error)
}

// Plugin is a shell plugin fetched from a git URL.
type Plugin struct {
	Name string `koanf:"name" yaml:"name" toml:"name"`
	URL  string `koanf:"url" yaml:"url" toml:"url"`
}

// Result is one collaborator outcome for the run report.
type Result struct {
	Kind   Kind
	Name   string
	Status Status
	Err    error
}

// Request lists everything the collaborators should provide.
type Request struct {
	Packages  []string
	Plugins   []Plugin
	PluginDir string
}

// Run installs every package and then fetches every plugin. Failures are
// recorded in the results; a nil installer or fetcher skips that kind.
func Run(ctx context.Context, installer Installer, fetcher PluginFetcher, req Request) []Result {
	logger := logging.GetLogger("provision")
	var results []Result

	if installer != nil {
		for _, name := range req.Packages {
			status, err := installer.Install(ctx, name)
			if err != nil {
				logger.Warn().Err(err).Str("package", name).Msg("Package not installed")
			}
			results = append(results, Result{Kind: KindPackage, Name: name, Status: status, Err: err})
		}
	}

	if fetcher != nil {
		for _, p := range req.Plugins {
			r := Result{Kind: KindPlugin, Name: p.Name, Status: StatusFailed}
			dest, err := PluginDest(req.PluginDir, p.Name)
			if err == nil {
				r.Status, err = fetcher.Clone(ctx, p.URL, dest)
			}
			if err != nil {
				logger.Warn().Err(err).Str("plugin", p.Name).Msg("Plugin not fetched")
			}
			r.Err = err
			results = append(results, r)
		}
	}
	return results
}
