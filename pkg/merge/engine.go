package merge

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/dotmerge/pkg/errors"
	"github.com/arthur-debert/dotmerge/pkg/filesystem"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Change is a decided but not yet written effect on one file.
type Change struct {
	Path    string
	Outcome types.Outcome

	// Existed reports whether the file existed when the change was planned.
	Existed bool

	Before string
	After  string
}

// Mutates reports whether committing the change writes anything.
func (c Change) Mutates() bool {
	return c.Outcome.Mutates()
}

// Engine applies fragments and fields to files. Its filesystem is the
// real one for normal runs and a copy-on-write overlay for dry runs.
type Engine struct {
	fs       afero.Fs
	rc       *types.RunContext
	detector Detector
	logger   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDetector replaces the default TextDetector.
func WithDetector(d Detector) Option {
	return func(e *Engine) { e.detector = d }
}

// NewEngine returns an engine operating on fsys. When rc requests a dry
// run, fsys is wrapped so that writes never reach it.
func NewEngine(fsys afero.Fs, rc *types.RunContext, opts ...Option) *Engine {
	if rc.IsDryRun() {
		fsys = filesystem.NewDryRun(fsys)
	}
	e := &Engine{
		fs:       fsys,
		rc:       rc,
		detector: TextDetector{},
		logger:   logging.GetLogger("merge.engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FS returns the filesystem the engine reads and writes. Under dry run
// this is the overlay holding the would-be contents.
func (e *Engine) FS() afero.Fs {
	return e.fs
}

// IsPresent reports whether fragment is present in the file at path. A
// missing file never contains anything.
func (e *Engine) IsPresent(path string, fragment types.Fragment) (bool, error) {
	content, exists, err := e.read(path)
	if err != nil || !exists {
		return false, err
	}
	return e.detector.Present(content, fragment), nil
}

// PlanFragment decides what ensuring fragment in path would do.
func (e *Engine) PlanFragment(path string, fragment types.Fragment) (Change, error) {
	content, exists, err := e.read(path)
	if err != nil {
		return Change{}, err
	}
	after, outcome := AppendFragment(content, exists, fragment, e.detector)
	return Change{Path: path, Outcome: outcome, Existed: exists, Before: content, After: after}, nil
}

// PlanField decides what updating field in path would do.
func (e *Engine) PlanField(path string, field types.StructuredField) (Change, error) {
	content, exists, err := e.read(path)
	if err != nil {
		return Change{}, err
	}
	res, err := UpdateField(content, exists, field)
	if err != nil {
		return Change{}, err
	}
	for _, line := range res.Malformed {
		e.logger.Warn().
			Str("path", path).
			Str("field", field.Name).
			Int("line", line).
			Msg("Unparseable declaration left untouched")
	}
	return Change{Path: path, Outcome: res.Outcome, Existed: exists, Before: content, After: res.Content}, nil
}

// Plan dispatches on the operation type.
func (e *Engine) Plan(path string, op types.Operation) (Change, error) {
	switch op.Type {
	case types.OperationFragment:
		return e.PlanFragment(path, op.Fragment)
	case types.OperationField:
		return e.PlanField(path, op.Field)
	}
	return Change{}, errors.Newf(errors.ErrInvalidInput, "unknown operation type %q", op.Type)
}

// Commit writes a planned change. Non-mutating changes are ignored.
func (e *Engine) Commit(c Change) error {
	if !c.Mutates() {
		return nil
	}
	if e.rc.IsDryRun() {
		logging.DryRun(e.logger, string(c.Outcome), c.Path)
	}
	if err := filesystem.WriteText(e.fs, c.Path, c.After); err != nil {
		return errors.ForFile(err, errors.ErrFileWrite, c.Path, "failed to write configuration file")
	}
	e.logger.Debug().Str("path", c.Path).Str("outcome", string(c.Outcome)).Msg("Change written")
	return nil
}

// EnsureFragment plans and commits fragment in one step.
func (e *Engine) EnsureFragment(path string, fragment types.Fragment) (types.Outcome, error) {
	c, err := e.PlanFragment(path, fragment)
	if err != nil {
		return types.OutcomeFailed, err
	}
	if err := e.Commit(c); err != nil {
		return types.OutcomeFailed, err
	}
	return c.Outcome, nil
}

// UpdateField plans and commits field in one step.
func (e *Engine) UpdateField(path string, field types.StructuredField) (types.Outcome, error) {
	c, err := e.PlanField(path, field)
	if err != nil {
		return types.OutcomeFailed, err
	}
	if err := e.Commit(c); err != nil {
		return types.OutcomeFailed, err
	}
	return c.Outcome, nil
}

func (e *Engine) read(path string) (string, bool, error) {
	content, exists, err := filesystem.ReadText(e.fs, path)
	if err != nil {
		return "", false, errors.ForFile(err, errors.ErrFileRead, path, "failed to read configuration file")
	}
	return content, exists, nil
}
