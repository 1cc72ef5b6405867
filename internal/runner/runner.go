// Package runner executes drill sample cases and reports pass/fail per case.
// A failing case is recorded, never retried, and never stops the remaining
// cases from running.
package runner

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"drill/internal/config"
	"drill/internal/exercise"
	"drill/pkg/domain"
	"drill/pkg/logger"
)

// Options configure a run.
type Options struct {
	// Seed reseeds the drill random source before the run when nonzero, making
	// random draws reproducible.
	Seed uint64
	// Only restricts the run to the named drills, in the given order. Empty
	// means every registered drill.
	Only []string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Seed: cfg.Runner.Seed,
	}
}

// Runner invokes drill sample cases against their expectations.
type Runner struct {
	// options holds runtime configuration that affects selection and seeding.
	options Options
	// registry is the source of drill specs to execute.
	registry *exercise.Registry
}

// New creates a Runner backed by the provided registry and configured with
// the given options.
func New(registry *exercise.Registry, options Options) *Runner {
	return &Runner{
		options:  options,
		registry: registry,
	}
}

// Run executes every selected drill's cases in registry order and returns the
// aggregated report. Case failures are recorded in the report, not returned
// as an error; only selection of an unknown drill fails the run itself.
func (r *Runner) Run(ctx context.Context) (*domain.RunReport, error) {
	report := &domain.RunReport{ID: domain.NewRunID()}
	ctx = logger.WithFields(ctx, zap.String("runID", report.ID.String()))

	if r.options.Seed != 0 {
		exercise.Reseed(r.options.Seed)
		logger.Debug(ctx, "reseeded random source", zap.Uint64("seed", r.options.Seed))
	}

	specs, err := r.selected()
	if err != nil {
		return nil, err
	}

	for _, spec := range specs {
		for _, c := range spec.Cases {
			result := runCase(ctx, spec, c)
			if result.Status == domain.CaseStatusPassed {
				report.Passed++
			} else {
				report.Failed++
			}
			report.Results = append(report.Results, result)
		}
	}

	logger.Info(ctx, "run finished",
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

// selected resolves the Only filter against the registry, defaulting to all
// drills in registration order.
func (r *Runner) selected() ([]exercise.Spec, error) {
	if len(r.options.Only) == 0 {
		return r.registry.All(), nil
	}

	specs := make([]exercise.Spec, 0, len(r.options.Only))
	for _, name := range r.options.Only {
		spec, err := r.registry.Get(name)
		if err != nil {
			return nil, errors.Wrap(err, "could not select drills")
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// runCase executes a single sample case and maps its outcome to a CaseResult.
func runCase(ctx context.Context, spec exercise.Spec, c exercise.Case) domain.CaseResult {
	label := spec.Name + "(" + c.Give + ")"
	ctx = logger.WithFields(ctx, zap.String("case", label))

	result := domain.CaseResult{
		Drill: spec.Name,
		Case:  label,
		Want:  c.Want,
	}

	got, err := c.Run()
	if err != nil {
		logger.Error(ctx, "drill returned error", zap.Error(err))
		result.Status = domain.CaseStatusFailed
		result.Err = err.Error()

		return result
	}
	result.Got = got

	switch {
	case c.Check != nil:
		if err := c.Check(got); err != nil {
			logger.Warn(ctx, "case check failed", zap.String("got", got), zap.Error(err))
			result.Status = domain.CaseStatusFailed
			result.Err = err.Error()

			return result
		}
	case got != c.Want:
		logger.Warn(ctx, "case output mismatch",
			zap.String("got", got),
			zap.String("want", c.Want),
		)
		result.Status = domain.CaseStatusFailed

		return result
	}

	logger.Debug(ctx, "case passed", zap.String("got", got))
	result.Status = domain.CaseStatusPassed

	return result
}
