// Package reconciler owns the pending → running transition: it sweeps stale
// running jobs against the broker's result backend, then dispatches pending
// jobs FIFO under per-(type, scope) uniqueness.
package reconciler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/locks"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
)

const lockName = "job_reconciler"

// JobStore is the job lifecycle surface the reconciler needs.
type JobStore interface {
	ListPending(ctx context.Context) ([]*ent.Job, error)
	ListRunningWithTask(ctx context.Context) ([]*ent.Job, error)
	ListRunningForScope(ctx context.Context, t job.Type, projectID string, slug *string) ([]*ent.Job, error)
	MarkRunning(ctx context.Context, jobID, taskID string) error
	MarkTerminalIfRunning(ctx context.Context, jobID string, status job.Status, output map[string]interface{}) (bool, error)
}

// TaskDispatcher is the broker surface the reconciler needs.
type TaskDispatcher interface {
	SendTask(ctx context.Context, name string, params map[string]interface{}) (string, error)
	Result(ctx context.Context, taskID string) (*taskqueue.AsyncResult, error)
}

// Locker guards the reconciler's single-flight execution.
type Locker interface {
	WithLock(ctx context.Context, name string, safetyTimeout time.Duration, fn func(ctx context.Context) error) (bool, error)
}

// Stats summarises one reconciler run.
type Stats struct {
	Swept      int
	Dispatched int
	Skipped    int
}

// Reconciler runs the two-phase sweep-and-dispatch loop.
type Reconciler struct {
	jobs   JobStore
	broker TaskDispatcher
	locker Locker

	lockTimeout time.Duration
	nudgeCh     chan struct{}
}

// New creates a reconciler. lockTimeout is the single-flight lock's safety
// TTL and must exceed the longest reconciler run.
func New(jobs JobStore, broker TaskDispatcher, locker Locker, lockTimeout time.Duration) *Reconciler {
	return &Reconciler{
		jobs:        jobs,
		broker:      broker,
		locker:      locker,
		lockTimeout: lockTimeout,
		nudgeCh:     make(chan struct{}, 1),
	}
}

// Register binds the reconcile pass to its task name so the beat (and
// external components) can fire it like any other periodic task.
func (r *Reconciler) Register(reg interface {
	Register(name string, handler taskqueue.Handler)
}) {
	reg.Register(tasks.ReconcilePendingJobs, func(ctx context.Context, _ *taskqueue.Task) (map[string]interface{}, error) {
		stats, err := r.Run(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"swept":      stats.Swept,
			"dispatched": stats.Dispatched,
			"skipped":    stats.Skipped,
		}, nil
	})
}

// Run executes one reconcile pass under the single-flight lock. A pass that
// lost the lock race returns zero stats and no error.
func (r *Reconciler) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	executed, err := r.locker.WithLock(ctx, lockName, r.lockTimeout, func(ctx context.Context) error {
		var runErr error
		stats, runErr = r.reconcile(ctx)
		return runErr
	})
	if err != nil {
		return stats, err
	}
	if !executed {
		slog.Debug("Reconciler already running elsewhere, skipping pass")
	}
	return stats, nil
}

// Nudge requests an immediate pass from the loop started by Start. Used by
// user-triggered job creation so execution starts within seconds.
func (r *Reconciler) Nudge() {
	select {
	case r.nudgeCh <- struct{}{}:
	default:
	}
}

// Start runs reconcile passes at the given interval (and on every nudge)
// until the context is cancelled.
func (r *Reconciler) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-r.nudgeCh:
		}
		if stats, err := r.Run(ctx); err != nil {
			slog.Error("Reconciler pass failed", "error", err)
		} else if stats.Swept > 0 || stats.Dispatched > 0 {
			slog.Info("Reconciler pass finished",
				"swept", stats.Swept,
				"dispatched", stats.Dispatched,
				"skipped", stats.Skipped)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) (Stats, error) {
	var stats Stats

	swept, err := r.sweepRunning(ctx)
	if err != nil {
		return stats, err
	}
	stats.Swept = swept

	dispatched, skipped, err := r.dispatchPending(ctx)
	if err != nil {
		return stats, err
	}
	stats.Dispatched = dispatched
	stats.Skipped = skipped
	return stats, nil
}

// sweepRunning reconciles running jobs against broker state. Live broker
// states and lookup errors leave the row alone.
func (r *Reconciler) sweepRunning(ctx context.Context) (int, error) {
	running, err := r.jobs.ListRunningWithTask(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, j := range running {
		result, err := r.broker.Result(ctx, *j.TaskID)
		if err != nil {
			slog.Debug("Broker lookup failed, leaving job alone",
				"job_id", j.ID, "task_id", *j.TaskID, "error", err)
			continue
		}

		switch result.State {
		case taskqueue.StateSuccess:
			output := result.Result
			if output == nil {
				output = map[string]interface{}{}
			}
			// Conditional on the row still being running: the worker may have
			// finalised it (e.g. partially_completed) since the listing.
			updated, err := r.jobs.MarkTerminalIfRunning(ctx, j.ID, job.StatusCompleted, output)
			if err != nil {
				slog.Warn("Failed to complete swept job", "job_id", j.ID, "error", err)
				continue
			}
			if updated {
				swept++
			}
		case taskqueue.StateFailure, taskqueue.StateRevoked:
			updated, err := r.jobs.MarkTerminalIfRunning(ctx, j.ID, job.StatusFailed, map[string]interface{}{
				models.ResultError: result.Error,
			})
			if err != nil {
				slog.Warn("Failed to fail swept job", "job_id", j.ID, "error", err)
				continue
			}
			if updated {
				swept++
			}
		default:
			// PENDING, STARTED, RETRY: still live.
		}
	}
	return swept, nil
}

// dispatchPending sends pending jobs to the broker FIFO, skipping any scope
// that still has a broker-live running job.
func (r *Reconciler) dispatchPending(ctx context.Context) (dispatched, skipped int, err error) {
	pending, err := r.jobs.ListPending(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, j := range pending {
		live, err := r.scopeHasLiveJob(ctx, j)
		if err != nil {
			return dispatched, skipped, err
		}
		if live {
			skipped++
			continue
		}

		taskName, err := tasks.ForJobType(j.Type)
		if err != nil {
			slog.Error("Pending job has no task mapping", "job_id", j.ID, "type", j.Type)
			skipped++
			continue
		}

		params := map[string]interface{}{tasks.ParamJobID: j.ID}
		for k, v := range models.JobParameters(j.Result) {
			params[k] = v
		}

		taskID, err := r.broker.SendTask(ctx, taskName, params)
		if err != nil {
			slog.Error("Failed to dispatch job", "job_id", j.ID, "task", taskName, "error", err)
			skipped++
			continue
		}

		if err := r.jobs.MarkRunning(ctx, j.ID, taskID); err != nil {
			if errors.Is(err, services.ErrNotPending) {
				// Cancelled between listing and dispatch; the enqueued task
				// will see the cancelled row and return immediately.
				skipped++
				continue
			}
			return dispatched, skipped, err
		}
		dispatched++
	}
	return dispatched, skipped, nil
}

// scopeHasLiveJob reports whether another running job of the same (type,
// scope) is still live on the broker side. Broker-terminal running jobs do
// not block; the next sweep flips them.
func (r *Reconciler) scopeHasLiveJob(ctx context.Context, j *ent.Job) (bool, error) {
	running, err := r.jobs.ListRunningForScope(ctx, j.Type, j.ProjectID, j.PromptSlug)
	if err != nil {
		return false, err
	}

	for _, other := range running {
		if other.TaskID == nil {
			// Running without a task id: treat as live, it was claimed
			// directly by a worker.
			return true, nil
		}
		result, err := r.broker.Result(ctx, *other.TaskID)
		if err != nil {
			slog.Debug("Broker lookup failed during uniqueness check",
				"job_id", other.ID, "error", err)
			return true, nil
		}
		if result.State.IsLive() {
			return true, nil
		}
	}
	return false, nil
}

var _ Locker = (*locks.Service)(nil)
