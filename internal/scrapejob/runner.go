package scrapejob

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/athena/internal/scheduler"
)

// Operations is the orchestrator surface a job drives.
// *scheduler.Orchestrator implements it.
type Operations interface {
	SetSports(ctx context.Context) (*scheduler.RunResult, error)
	SetStandings(ctx context.Context, leagueCode string) (*scheduler.RunResult, error)
	SetGames(ctx context.Context, leagueCode string) (*scheduler.RunResult, error)
	SetRoster(ctx context.Context, leagueCode string) (*scheduler.RunResult, error)
	SetAll(ctx context.Context) (*scheduler.RunResult, error)
	UpdateDueToSeason(ctx context.Context, now time.Time) (*scheduler.RunResult, error)
}

// Runner executes job specs against the orchestrator.
type Runner struct {
	ops Operations
	now func() time.Time
}

// NewRunner constructs a runner.
func NewRunner(ops Operations) *Runner {
	return &Runner{ops: ops, now: time.Now}
}

// Run executes the job spec, reporting progress via the Reporter if provided.
// A league that fails is reported and the remaining leagues still run; the
// returned error lists every failure.
func (r *Runner) Run(ctx context.Context, spec JobSpec, reporter Reporter) error {
	if reporter != nil {
		reporter.OnJobStart(spec)
	}

	if spec.DryRun {
		if reporter != nil {
			reporter.OnProgress("Dry-run mode: no data will be written", 0, 0)
			reporter.OnJobComplete()
		}
		return nil
	}

	var err error
	if spec.Type.PerLeague() {
		err = r.runLeagues(ctx, spec, reporter)
	} else {
		err = r.runOnce(ctx, spec, reporter)
	}
	if err != nil {
		if reporter != nil {
			reporter.OnJobError(err)
		}
		return err
	}

	if reporter != nil {
		reporter.OnJobComplete()
	}
	return nil
}

func (r *Runner) runOnce(ctx context.Context, spec JobSpec, reporter Reporter) error {
	var (
		run *scheduler.RunResult
		err error
	)

	if reporter != nil {
		reporter.OnProgress(fmt.Sprintf("Running %s", spec.Type), 0, 1)
	}

	switch spec.Type {
	case JobTypeSports:
		run, err = r.ops.SetSports(ctx)
	case JobTypeAll:
		run, err = r.ops.SetAll(ctx)
	case JobTypeSeason:
		date := spec.RunDate
		if date.IsZero() {
			date = r.now()
		}
		run, err = r.ops.UpdateDueToSeason(ctx, date)
	default:
		return fmt.Errorf("unsupported job type %s", spec.Type)
	}
	if err != nil {
		return err
	}

	// league failures in a batch run are recorded, not fatal
	if reporter != nil {
		reporter.OnRunComplete(run)
		if err := runError(run); err != nil {
			reporter.OnJobError(err)
		}
		reporter.OnProgress(run.Summary(), 1, 1)
	}
	return nil
}

func (r *Runner) runLeagues(ctx context.Context, spec JobSpec, reporter Reporter) error {
	if len(spec.LeagueCodes) == 0 {
		return fmt.Errorf("%s job requires at least one league code", spec.Type)
	}

	var op func(ctx context.Context, leagueCode string) (*scheduler.RunResult, error)
	switch spec.Type {
	case JobTypeStandings:
		op = r.ops.SetStandings
	case JobTypeGames:
		op = r.ops.SetGames
	case JobTypeRoster:
		op = r.ops.SetRoster
	default:
		return fmt.Errorf("unsupported job type %s", spec.Type)
	}

	total := len(spec.LeagueCodes)
	failed := 0
	var firstErr error
	for idx, code := range spec.LeagueCodes {
		if err := ctx.Err(); err != nil {
			return err
		}

		if reporter != nil {
			reporter.OnProgress(fmt.Sprintf("Processing league %s (%d/%d)", code, idx+1, total), idx, total)
		}

		run, err := op(ctx, code)
		if err == nil {
			err = runError(run)
		}
		if run != nil && reporter != nil {
			reporter.OnRunComplete(run)
		}
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			if reporter != nil {
				reporter.OnJobError(fmt.Errorf("league %s: %w", code, err))
				reporter.OnProgress(fmt.Sprintf("✗ League %s failed", code), idx+1, total)
			}
			continue
		}

		if reporter != nil {
			reporter.OnProgress(fmt.Sprintf("✓ League %s complete", code), idx+1, total)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d leagues failed: %w", failed, total, firstErr)
	}
	return nil
}

// runError turns the per-league failures of a run into an error.
func runError(run *scheduler.RunResult) error {
	if run == nil {
		return nil
	}
	if n := run.Count(scheduler.OutcomeFailed); n > 0 {
		return fmt.Errorf("%d leagues failed: %s", n, run.Summary())
	}
	return nil
}
