package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/models"
)

// JobService manages the job lifecycle state machine.
//
// Ownership: the reconciler owns a job until it hands off to a worker via the
// running transition; the worker then owns all mutations until a terminal
// state. Users may only cancel or delete pending jobs.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJobInput carries everything needed to insert a PENDING job.
type CreateJobInput struct {
	Type              job.Type
	ProjectID         string
	PromptSlug        *string
	TriggeredByUserID *string
	Parameters        map[string]interface{}
	ValidationStats   map[string]interface{}
}

// Create inserts a PENDING job.
//
// The per-(project, slug, type) cap (pending+running <= 2) is enforced here.
// A user-triggered create additionally cancels any PENDING system-triggered
// job with the same scope; a RUNNING system job is left alone — reconciler
// uniqueness delays the user job's dispatch until it finishes.
func (s *JobService) Create(ctx context.Context, in CreateJobInput) (*ent.Job, error) {
	if in.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inFlight, err := tx.Job.Query().
		Where(scopePredicates(in.Type, in.ProjectID, in.PromptSlug)...).
		Where(job.StatusIn(job.StatusPending, job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-flight jobs: %w", err)
	}
	if inFlight >= config.MaxPendingJobsPerPromptAndType {
		return nil, ErrTooManyPending
	}

	if in.TriggeredByUserID != nil {
		// Supersede: cancel pending system-triggered jobs with the same scope.
		_, err := tx.Job.Update().
			Where(scopePredicates(in.Type, in.ProjectID, in.PromptSlug)...).
			Where(
				job.StatusEQ(job.StatusPending),
				job.TriggeredByUserIDIsNil(),
			).
			SetStatus(job.StatusCancelled).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to supersede system jobs: %w", err)
		}
	}

	builder := tx.Job.Create().
		SetID(uuid.New().String()).
		SetType(in.Type).
		SetProjectID(in.ProjectID).
		SetStatus(job.StatusPending).
		SetResult(models.NewJobResult(in.Parameters, in.ValidationStats))
	if in.PromptSlug != nil {
		builder.SetPromptSlug(*in.PromptSlug)
	}
	if in.TriggeredByUserID != nil {
		builder.SetTriggeredByUserID(*in.TriggeredByUserID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job create: %w", err)
	}
	return created, nil
}

// scopePredicates selects jobs of the same (type, scope). Scope is the
// prompt slug for per-prompt types and the whole project otherwise.
func scopePredicates(t job.Type, projectID string, slug *string) []predicate.Job {
	preds := []predicate.Job{
		job.TypeEQ(t),
		job.ProjectIDEQ(projectID),
	}
	if slug != nil {
		preds = append(preds, job.PromptSlugEQ(*slug))
	} else {
		preds = append(preds, job.PromptSlugIsNil())
	}
	return preds
}

// Get loads a job by id.
func (s *JobService) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return j, nil
}

// ListPending returns pending jobs in FIFO order.
func (s *JobService) ListPending(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending jobs: %w", err)
	}
	return jobs, nil
}

// ListRunningWithTask returns running jobs that have a dispatch handle.
func (s *JobService) ListRunningWithTask(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.TaskIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running jobs: %w", err)
	}
	return jobs, nil
}

// ListRunningForScope returns running jobs with the same (type, scope).
func (s *JobService) ListRunningForScope(ctx context.Context, t job.Type, projectID string, slug *string) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(scopePredicates(t, projectID, slug)...).
		Where(job.StatusEQ(job.StatusRunning)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running jobs for scope: %w", err)
	}
	return jobs, nil
}

// HasInFlightForScope reports whether a pending or running job exists for the
// (type, scope).
func (s *JobService) HasInFlightForScope(ctx context.Context, t job.Type, projectID string, slug *string) (bool, error) {
	n, err := s.client.Job.Query().
		Where(scopePredicates(t, projectID, slug)...).
		Where(job.StatusIn(job.StatusPending, job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count in-flight jobs: %w", err)
	}
	return n > 0, nil
}

// MarkRunning flips a pending job to running and records its dispatch
// handle. Returns ErrNotPending when the job was cancelled (or already
// dispatched) in the meantime.
func (s *JobService) MarkRunning(ctx context.Context, jobID, taskID string) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusPending),
		).
		SetStatus(job.StatusRunning).
		SetTaskID(taskID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}
	if n == 0 {
		return ErrNotPending
	}
	return nil
}

// ClaimRunning is the worker-side start-of-execution transition: a pending
// job becomes running; an already-running job is left alone (re-delivery).
// Returns the fresh row and whether the worker should execute.
func (s *JobService) ClaimRunning(ctx context.Context, jobID, taskID string) (*ent.Job, bool, error) {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, false, err
	}

	switch j.Status {
	case job.StatusCancelled:
		return j, false, nil
	case job.StatusRunning:
		return j, true, nil
	case job.StatusPending:
		updated, err := j.Update().
			SetStatus(job.StatusRunning).
			SetTaskID(taskID).
			Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to claim job: %w", err)
		}
		return updated, true, nil
	default:
		// Terminal — nothing to do.
		return j, false, nil
	}
}

// MarkTerminal moves a job to a terminal state, merging output fields into
// the existing result payload in one transaction.
func (s *JobService) MarkTerminal(ctx context.Context, jobID string, status job.Status, output map[string]interface{}) error {
	switch status {
	case job.StatusCompleted, job.StatusPartiallyCompleted, job.StatusFailed, job.StatusCancelled:
	default:
		return NewValidationError("status", "not a terminal state")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}

	if err := j.Update().
		SetStatus(status).
		SetResult(models.MergeJobResult(j.Result, output)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit job update: %w", err)
	}
	return nil
}

// MarkTerminalIfRunning moves a job to a terminal state only while the row is
// still running. The reconciler sweep uses it so a worker that already
// finalised the row (e.g. partially_completed) is never overwritten by the
// broker-state mirror. Returns false when the row had already left running.
func (s *JobService) MarkTerminalIfRunning(ctx context.Context, jobID string, status job.Status, output map[string]interface{}) (bool, error) {
	switch status {
	case job.StatusCompleted, job.StatusPartiallyCompleted, job.StatusFailed:
	default:
		return false, NewValidationError("status", "not a terminal state")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load job: %w", err)
	}

	if err := j.Update().
		SetStatus(status).
		SetResult(models.MergeJobResult(j.Result, output)).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit job update: %w", err)
	}
	return true, nil
}

// FailIfStillRunning is the worker safety net: if the row is still running
// after the handler body (cancelled mid-flight), it is marked failed.
func (s *JobService) FailIfStillRunning(ctx context.Context, jobID, reason string) error {
	j, err := s.client.Job.Query().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to check job status: %w", err)
	}
	return j.Update().
		SetStatus(job.StatusFailed).
		SetResult(models.MergeJobResult(j.Result, map[string]interface{}{
			models.ResultError: reason,
		})).
		Exec(ctx)
}

// CancelPending cancels a pending job (user PATCH). Running and terminal jobs
// are rejected.
func (s *JobService) CancelPending(ctx context.Context, jobID string) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusPending),
		).
		SetStatus(job.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel job: %w", err)
	}
	if n == 0 {
		return ErrNotPending
	}
	return nil
}

// DeletePending deletes a pending job. Only pending jobs may be deleted by
// users.
func (s *JobService) DeletePending(ctx context.Context, jobID string) error {
	n, err := s.client.Job.Delete().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusPending),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if n == 0 {
		return ErrNotPending
	}
	return nil
}

// CleanupOld deletes terminal system-triggered jobs older than the retention
// window. User-triggered jobs are never auto-deleted.
func (s *JobService) CleanupOld(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.CreatedAtLT(cutoff),
			job.TriggeredByUserIDIsNil(),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old jobs: %w", err)
	}
	return n, nil
}

// LastBacktestScoredCount returns the scored-span count recorded by the most
// recent finished backtest for the scope, or 0 when none has run. This feeds
// the backtest threshold ladder.
func (s *JobService) LastBacktestScoredCount(ctx context.Context, projectID, slug string) (int, error) {
	last, err := s.client.Job.Query().
		Where(scopePredicates(job.TypeModelBacktesting, projectID, &slug)...).
		Where(job.StatusIn(job.StatusCompleted, job.StatusPartiallyCompleted)).
		Order(ent.Desc(job.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load last backtest job: %w", err)
	}
	n, _ := models.IntAttr(last.Result, models.ResultScoredCountAtCreation)
	return n, nil
}

// ListByProject returns a project's jobs, newest first.
func (s *JobService) ListByProject(ctx context.Context, projectID string) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(job.ProjectIDEQ(projectID)).
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}
