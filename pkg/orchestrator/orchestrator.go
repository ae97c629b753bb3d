// Package orchestrator sequences a worklist against its target files.
//
// Steps run strictly in order and each step sees the effects of the ones
// before it. Before the first mutating step on a file the file is backed
// up, exactly once. There is no transaction: a failing step leaves earlier
// steps applied, and re-running converges because every step is
// idempotent.
package orchestrator

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotmerge/pkg/backup"
	"github.com/arthur-debert/dotmerge/pkg/filesystem"
	"github.com/arthur-debert/dotmerge/pkg/logging"
	"github.com/arthur-debert/dotmerge/pkg/merge"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

// Orchestrator applies worklists through a merge engine.
type Orchestrator struct {
	engine  *merge.Engine
	backups *backup.Manager
	logger  zerolog.Logger
}

// New returns an Orchestrator. A nil backups disables backups.
func New(engine *merge.Engine, backups *backup.Manager) *Orchestrator {
	return &Orchestrator{
		engine:  engine,
		backups: backups,
		logger:  logging.GetLogger("orchestrator"),
	}
}

// Run applies every target in order and collects the results.
func (o *Orchestrator) Run(targets []types.Target) *Report {
	done := logging.LogOperationStart(o.logger, "merge")
	defer done()

	report := &Report{}
	for _, target := range targets {
		report.Files = append(report.Files, o.ApplyAll(target))
	}
	return report
}

// ApplyAll applies the operations of target in order. A failure aborts the
// remaining operations for this file only; they are reported as skipped.
func (o *Orchestrator) ApplyAll(target types.Target) FileReport {
	fr := FileReport{Path: target.Path}
	logger := o.logger.With().Str("path", target.Path).Logger()

	before, existed, err := filesystem.ReadText(o.engine.FS(), target.Path)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot read target")
	}
	fr.Before, fr.Existed = before, existed

	for i, op := range target.Operations {
		if fr.Err != nil {
			fr.Steps = append(fr.Steps, StepResult{Operation: op, Outcome: types.OutcomeSkipped})
			continue
		}

		step, err := o.apply(&fr, op)
		fr.Steps = append(fr.Steps, step)
		if err != nil {
			fr.Err = err
			logger.Error().Err(err).Int("step", i).Str("label", op.Label()).Msg("Step failed, skipping the rest of this file")
			continue
		}
		logger.Debug().Int("step", i).Str("label", op.Label()).Str("outcome", string(step.Outcome)).Msg("Step applied")
	}

	after, _, err := filesystem.ReadText(o.engine.FS(), target.Path)
	if err == nil {
		fr.After = after
	}
	return fr
}

func (o *Orchestrator) apply(fr *FileReport, op types.Operation) (StepResult, error) {
	step := StepResult{Operation: op, Outcome: types.OutcomeFailed}

	change, err := o.engine.Plan(fr.Path, op)
	if err != nil {
		step.Err = err
		return step, err
	}

	if change.Mutates() && o.backups != nil && !o.backups.Done(fr.Path) {
		dest, err := o.backups.Backup(fr.Path)
		if err != nil {
			step.Err = err
			return step, err
		}
		fr.Backup = dest
	}

	if err := o.engine.Commit(change); err != nil {
		step.Err = err
		return step, err
	}

	step.Outcome = change.Outcome
	return step, nil
}
