package provision

import (
	"context"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/paths"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// CloneFunc clones url into dest.
type CloneFunc func(ctx context.Context, url, dest string) error

// ShallowClone clones the default branch of url at depth 1.
func ShallowClone(ctx context.Context, url, dest string) error {
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	})
	return err
}

// PluginDest returns the directory plugin name is cloned into. The result
// always stays inside pluginDir.
func PluginDest(pluginDir, name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.ErrInvalidInput, "plugin has no name")
	}
	return securejoin.SecureJoin(paths.ExpandHome(pluginDir), name)
}

// GitFetcher fetches plugins with go-git.
type GitFetcher struct {
	fs     afero.Fs
	rc     *types.RunContext
	clone  CloneFunc
	logger zerolog.Logger
}

// NewGitFetcher returns a fetcher that checks for existing plugins on
// fsys. A nil clone uses ShallowClone.
func NewGitFetcher(fsys afero.Fs, rc *types.RunContext, clone CloneFunc) *GitFetcher {
	if clone == nil {
		clone = ShallowClone
	}
	return &GitFetcher{fs: fsys, rc: rc, clone: clone, logger: logging.GetLogger("provision.plugins")}
}

// Clone implements PluginFetcher. An existing dest is left alone.
func (g *GitFetcher) Clone(ctx context.Context, url, dest string) (Status, error) {
	exists, err := afero.Exists(g.fs, dest)
	if err != nil {
		return StatusFailed, errors.ForFile(err, errors.ErrFileRead, dest, "cannot inspect plugin directory")
	}
	if exists {
		g.logger.Debug().Str("dest", dest).Msg("Plugin already present")
		return StatusAlreadyPresent, nil
	}

	if g.rc.IsDryRun() {
		logging.DryRun(g.logger, "clone "+url, dest)
		return StatusCloned, nil
	}

	g.logger.Info().Str("url", url).Str("dest", dest).Msg("Cloning plugin")
	if err := g.clone(ctx, url, dest); err != nil {
		if rmErr := g.fs.RemoveAll(dest); rmErr != nil {
			g.logger.Warn().Err(rmErr).Str("dest", dest).Msg("Cannot remove partial clone")
		}
		return StatusFailed, errors.Wrapf(err, errors.ErrCollaboratorFailed, "cloning %s failed", url).
			WithDetail("dest", dest)
	}
	return StatusCloned, nil
}

var _ PluginFetcher = (*GitFetcher)(nil)
