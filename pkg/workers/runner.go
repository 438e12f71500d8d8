// Package workers implements the job handlers executed by the task broker:
// agent discovery, judge scoring, prompt tuning, model backtesting, job
// cleanup and periodic reviews, plus the fire-and-forget generator tasks.
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
)

// GatewayFactory returns a gateway for one handler run plus its dispose
// function. Dispose releases every pooled connection so nothing leaks across
// handler lifecycles.
type GatewayFactory func() (llm.Gateway, func())

// Locker guards periodic handlers against overlapping their successors.
type Locker interface {
	WithLock(ctx context.Context, name string, safetyTimeout time.Duration, fn func(context.Context) error) (bool, error)
}

// Runner holds the shared dependencies and wraps every job handler in the
// common lifecycle contract: claim the row, execute, classify, and fail the
// row if the handler was cut down mid-flight.
type Runner struct {
	svc        *services.Services
	cfg        *config.WorkerConfig
	newGateway GatewayFactory
	broker     taskqueue.Broker
	locker     Locker
}

// NewRunner creates the handler runner.
func NewRunner(svc *services.Services, cfg *config.WorkerConfig, newGateway GatewayFactory, broker taskqueue.Broker, locker Locker) *Runner {
	return &Runner{svc: svc, cfg: cfg, newGateway: newGateway, broker: broker, locker: locker}
}

// jobBody is a type-specific handler body. It returns the terminal status
// and the output fields merged into the job result.
type jobBody func(ctx context.Context, j *ent.Job, gw llm.Gateway, params map[string]interface{}) (job.Status, map[string]interface{}, error)

// wrap applies the shared lifecycle contract around a handler body.
func (r *Runner) wrap(fn jobBody) taskqueue.Handler {
	return func(ctx context.Context, task *taskqueue.Task) (map[string]interface{}, error) {
		jobID, _ := task.Params[tasks.ParamJobID].(string)
		if jobID == "" {
			return nil, fmt.Errorf("task %s missing %s", task.Name, tasks.ParamJobID)
		}

		j, runnable, err := r.svc.Jobs.ClaimRunning(ctx, jobID, task.ID)
		if err != nil {
			return nil, err
		}
		if !runnable {
			slog.Info("Job not runnable, skipping", "job_id", jobID, "status", j.Status)
			return map[string]interface{}{models.ResultReason: "job is " + string(j.Status)}, nil
		}

		gw, dispose := r.newGateway()
		defer dispose()

		// Safety net: a handler cancelled mid-flight leaves the row running.
		defer func() {
			cleanupCtx := context.WithoutCancel(ctx)
			if err := r.svc.Jobs.FailIfStillRunning(cleanupCtx, jobID, "cancelled or interrupted"); err != nil {
				slog.Warn("Safety-net update failed", "job_id", jobID, "error", err)
			}
		}()

		status, output, err := fn(ctx, j, gw, task.Params)
		if err != nil {
			if terr := r.svc.Jobs.MarkTerminal(ctx, jobID, job.StatusFailed, map[string]interface{}{
				models.ResultError: err.Error(),
			}); terr != nil {
				slog.Warn("Failed to record job failure", "job_id", jobID, "error", terr)
			}
			return nil, err
		}

		if output == nil {
			output = map[string]interface{}{}
		}
		if err := r.svc.Jobs.MarkTerminal(ctx, jobID, status, output); err != nil {
			return nil, err
		}
		return output, nil
	}
}

// underLock guards a periodic handler with a distributed single-flight lock
// keyed by the tick name, mirroring the scheduler's tick contract.
func (r *Runner) underLock(name string, fn taskqueue.Handler) taskqueue.Handler {
	return func(ctx context.Context, task *taskqueue.Task) (map[string]interface{}, error) {
		var out map[string]interface{}
		executed, err := r.locker.WithLock(ctx, name, r.cfg.ReviewLockTimeout, func(ctx context.Context) error {
			var innerErr error
			out, innerErr = fn(ctx, task)
			return innerErr
		})
		if err != nil {
			return nil, err
		}
		if !executed {
			slog.Debug("Task already running elsewhere, skipping", "lock", name)
			return map[string]interface{}{"status": "skipped"}, nil
		}
		return out, nil
	}
}

// classifyPartial maps a success count over total units to a terminal state.
func classifyPartial(success, total int) job.Status {
	switch {
	case total == 0:
		return job.StatusCompleted
	case success == 0:
		return job.StatusFailed
	case success < total:
		return job.StatusPartiallyCompleted
	default:
		return job.StatusCompleted
	}
}
