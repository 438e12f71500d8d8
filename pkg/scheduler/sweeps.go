// Package scheduler emits pending jobs for eligible work at fixed cadences.
// Sweep handlers enumerate candidate scopes, consult the gates, and insert
// PENDING jobs; the beat fires the sweeps by task name. Nothing here
// dispatches to workers directly — that is the reconciler's job.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/gates"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
)

// Locker guards each tick against overlapping its successor.
type Locker interface {
	WithLock(ctx context.Context, name string, safetyTimeout time.Duration, fn func(context.Context) error) (bool, error)
}

// SweepStats summarises one tick.
type SweepStats struct {
	Candidates int
	Created    int
	Deduped    int
	Skipped    int
}

// Sweeper holds the tick handlers that turn eligibility into pending jobs.
type Sweeper struct {
	svc    *services.Services
	gates  *gates.Gates
	locker Locker
	cfg    *config.SchedulerConfig
}

// NewSweeper creates the tick handlers.
func NewSweeper(svc *services.Services, g *gates.Gates, locker Locker, cfg *config.SchedulerConfig) *Sweeper {
	return &Sweeper{svc: svc, gates: g, locker: locker, cfg: cfg}
}

// Register binds the sweep handlers to their task names so the beat (and
// external components) can fire them by string.
func (s *Sweeper) Register(reg interface {
	Register(name string, handler taskqueue.Handler)
}) {
	reg.Register(tasks.DiscoverAgents, s.tickHandler("agent_discovery", s.sweepDiscovery))
	reg.Register(tasks.EvaluateUnscoredSpans, s.tickHandler("auto_evaluation", s.sweepScoring))
	reg.Register(tasks.ImprovePromptTemplates, s.tickHandler("prompt_improvement", s.sweepTuning))
	reg.Register(tasks.CheckBacktestingCandidates, s.tickHandler("model_backtesting", s.sweepBacktesting))
}

// tickHandler wraps a sweep in its single-flight lock, keyed by tick name.
func (s *Sweeper) tickHandler(tickName string, sweep func(ctx context.Context) (SweepStats, error)) taskqueue.Handler {
	return func(ctx context.Context, _ *taskqueue.Task) (map[string]interface{}, error) {
		var stats SweepStats
		executed, err := s.locker.WithLock(ctx, tickName, s.cfg.TickLockTimeout, func(ctx context.Context) error {
			var sweepErr error
			stats, sweepErr = sweep(ctx)
			return sweepErr
		})
		if err != nil {
			return nil, err
		}
		if !executed {
			slog.Debug("Tick already running elsewhere, skipping", "tick", tickName)
			return map[string]interface{}{"status": "skipped"}, nil
		}
		if stats.Created > 0 {
			slog.Info("Tick created jobs", "tick", tickName,
				"candidates", stats.Candidates, "created", stats.Created,
				"deduped", stats.Deduped, "skipped", stats.Skipped)
		}
		return map[string]interface{}{
			"candidates": stats.Candidates,
			"created":    stats.Created,
			"deduped":    stats.Deduped,
			"skipped":    stats.Skipped,
		}, nil
	}
}

// sweepDiscovery enumerates projects and creates agent_discovery jobs.
func (s *Sweeper) sweepDiscovery(ctx context.Context) (SweepStats, error) {
	var stats SweepStats
	projects, err := s.svc.Projects.List(ctx)
	if err != nil {
		return stats, err
	}

	for _, project := range projects {
		stats.Candidates++
		res, err := s.gates.Discovery(ctx, project.ID)
		if err != nil {
			return stats, err
		}
		s.applyGateResult(ctx, &stats, res, services.CreateJobInput{
			Type:            job.TypeAgentDiscovery,
			ProjectID:       project.ID,
			ValidationStats: res.Stats,
		})
	}
	return stats, nil
}

// sweepScoring enumerates latest prompts and creates judge_scoring jobs.
func (s *Sweeper) sweepScoring(ctx context.Context) (SweepStats, error) {
	return s.sweepPrompts(ctx, s.gates.Scoring, func(p *ent.Prompt, res gates.Result) services.CreateJobInput {
		return services.CreateJobInput{
			Type:            job.TypeJudgeScoring,
			ProjectID:       p.ProjectID,
			PromptSlug:      &p.Slug,
			ValidationStats: res.Stats,
		}
	})
}

// sweepTuning enumerates latest prompts and creates prompt_tuning jobs.
func (s *Sweeper) sweepTuning(ctx context.Context) (SweepStats, error) {
	return s.sweepPrompts(ctx, s.gates.Tuning, func(p *ent.Prompt, res gates.Result) services.CreateJobInput {
		return services.CreateJobInput{
			Type:            job.TypePromptTuning,
			ProjectID:       p.ProjectID,
			PromptSlug:      &p.Slug,
			ValidationStats: res.Stats,
		}
	})
}

// sweepBacktesting enumerates latest prompts and creates model_backtesting
// jobs carrying the candidate model list.
func (s *Sweeper) sweepBacktesting(ctx context.Context) (SweepStats, error) {
	return s.sweepPrompts(ctx, s.gates.Backtesting, func(p *ent.Prompt, res gates.Result) services.CreateJobInput {
		return services.CreateJobInput{
			Type:       job.TypeModelBacktesting,
			ProjectID:  p.ProjectID,
			PromptSlug: &p.Slug,
			Parameters: map[string]interface{}{
				tasks.ParamModels:    s.cfg.BacktestCandidateModels,
				tasks.ParamSpanCount: config.MaxSpansForBacktesting,
			},
			ValidationStats: res.Stats,
		}
	})
}

// sweepPrompts runs one gate over every project's latest prompt versions.
func (s *Sweeper) sweepPrompts(ctx context.Context, gate func(context.Context, *ent.Prompt) (gates.Result, error), input func(*ent.Prompt, gates.Result) services.CreateJobInput) (SweepStats, error) {
	var stats SweepStats
	projects, err := s.svc.Projects.List(ctx)
	if err != nil {
		return stats, err
	}

	for _, project := range projects {
		prompts, err := s.svc.Prompts.LatestVersions(ctx, project.ID)
		if err != nil {
			return stats, err
		}
		for _, p := range prompts {
			stats.Candidates++
			res, err := gate(ctx, p)
			if err != nil {
				return stats, err
			}
			s.applyGateResult(ctx, &stats, res, input(p, res))
		}
	}
	return stats, nil
}

// applyGateResult inserts the job when eligible and classifies rejections.
func (s *Sweeper) applyGateResult(ctx context.Context, stats *SweepStats, res gates.Result, in services.CreateJobInput) {
	if !res.Eligible {
		if gates.InProgress(res.Reason) {
			stats.Deduped++
		} else {
			stats.Skipped++
		}
		return
	}

	if _, err := s.svc.Jobs.Create(ctx, in); err != nil {
		if errors.Is(err, services.ErrTooManyPending) {
			stats.Deduped++
			return
		}
		slog.Warn("Failed to create scheduled job", "type", in.Type, "project_id", in.ProjectID, "error", err)
		stats.Skipped++
		return
	}
	stats.Created++
}
