package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
)

func TestJobCreateEnforcesScopeCap(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	slug := "greeter"

	in := services.CreateJobInput{
		Type:       job.TypeJudgeScoring,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	}
	_, err := svc.Jobs.Create(ctx, in)
	require.NoError(t, err)
	_, err = svc.Jobs.Create(ctx, in)
	require.NoError(t, err)

	_, err = svc.Jobs.Create(ctx, in)
	assert.ErrorIs(t, err, services.ErrTooManyPending)

	// A different type in the same scope is unaffected.
	in.Type = job.TypePromptTuning
	_, err = svc.Jobs.Create(ctx, in)
	assert.NoError(t, err)
}

func TestUserCreateSupersedesPendingSystemJob(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	slug := "greeter"

	system, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeJudgeScoring,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	})
	require.NoError(t, err)

	user, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:              job.TypeJudgeScoring,
		ProjectID:         p.ID,
		PromptSlug:        &slug,
		TriggeredByUserID: strPtr("u-1"),
	})
	require.NoError(t, err)

	reloaded, err := svc.Jobs.Get(ctx, system.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, reloaded.Status)
	assert.Equal(t, job.StatusPending, user.Status)
}

func TestUserCreateLeavesRunningSystemJobAlone(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	slug := "greeter"

	system, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeJudgeScoring,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.MarkRunning(ctx, system.ID, "task-1"))

	_, err = svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:              job.TypeJudgeScoring,
		ProjectID:         p.ID,
		PromptSlug:        &slug,
		TriggeredByUserID: strPtr("u-1"),
	})
	require.NoError(t, err)

	reloaded, err := svc.Jobs.Get(ctx, system.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, reloaded.Status)
}

func TestMarkRunningRequiresPending(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Jobs.CancelPending(ctx, j.ID))
	assert.ErrorIs(t, svc.Jobs.MarkRunning(ctx, j.ID, "task-1"), services.ErrNotPending)
}

func TestClaimRunningSkipsCancelledJob(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.CancelPending(ctx, j.ID))

	_, execute, err := svc.Jobs.ClaimRunning(ctx, j.ID, "task-1")
	require.NoError(t, err)
	assert.False(t, execute)
}

func TestMarkTerminalMergesOutputIntoResult(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeAgentDiscovery,
		ProjectID:  p.ID,
		Parameters: map[string]interface{}{"span_ids": []string{"s1"}},
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.MarkRunning(ctx, j.ID, "task-1"))
	require.NoError(t, svc.Jobs.MarkTerminal(ctx, j.ID, job.StatusCompleted, map[string]interface{}{
		"mapped": 12,
	}))

	reloaded, err := svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, reloaded.Status)
	// Output fields merge without clobbering the original parameters.
	assert.NotNil(t, reloaded.Result[models.ResultParameters])
	mapped, ok := models.IntAttr(reloaded.Result, "mapped")
	assert.True(t, ok)
	assert.Equal(t, 12, mapped)
}

func TestMarkTerminalRejectsNonTerminalStatus(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)

	err = svc.Jobs.MarkTerminal(ctx, j.ID, job.StatusRunning, nil)
	assert.True(t, services.IsValidation(err))
}

func TestMarkTerminalIfRunningSkipsFinalisedJob(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeJudgeScoring,
		ProjectID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.MarkRunning(ctx, j.ID, "task-1"))
	require.NoError(t, svc.Jobs.MarkTerminal(ctx, j.ID, job.StatusPartiallyCompleted, map[string]interface{}{
		"spans_evaluated": 10,
	}))

	// The worker already finalised the row; the broker-state mirror must not
	// downgrade partially_completed to completed.
	updated, err := svc.Jobs.MarkTerminalIfRunning(ctx, j.ID, job.StatusCompleted, map[string]interface{}{
		"swept": true,
	})
	require.NoError(t, err)
	assert.False(t, updated)

	reloaded, err := svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPartiallyCompleted, reloaded.Status)
	_, hasSwept := reloaded.Result["swept"]
	assert.False(t, hasSwept)
}

func TestMarkTerminalIfRunningUpdatesRunningJob(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeJudgeScoring,
		ProjectID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.MarkRunning(ctx, j.ID, "task-1"))

	updated, err := svc.Jobs.MarkTerminalIfRunning(ctx, j.ID, job.StatusCompleted, map[string]interface{}{
		"mapped": 3,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	reloaded, err := svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, reloaded.Status)
	mapped, ok := models.IntAttr(reloaded.Result, "mapped")
	assert.True(t, ok)
	assert.Equal(t, 3, mapped)
}

func TestFailIfStillRunningFlipsOnlyRunningJobs(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.MarkRunning(ctx, j.ID, "task-1"))

	require.NoError(t, svc.Jobs.FailIfStillRunning(ctx, j.ID, "cancelled or interrupted"))
	reloaded, err := svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, reloaded.Status)
	assert.Equal(t, "cancelled or interrupted", reloaded.Result[models.ResultError])

	// Second call is a no-op on the already-failed row.
	require.NoError(t, svc.Jobs.FailIfStillRunning(ctx, j.ID, "other reason"))
	reloaded, err = svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled or interrupted", reloaded.Result[models.ResultError])
}

func TestCleanupOldSparesUserTriggeredJobs(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	system, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.CancelPending(ctx, system.ID))

	slug := "greeter"
	user, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:              job.TypeJudgeScoring,
		ProjectID:         p.ID,
		PromptSlug:        &slug,
		TriggeredByUserID: strPtr("u-1"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.CancelPending(ctx, user.ID))

	// Zero retention: everything terminal and system-triggered is eligible.
	n, err := svc.Jobs.CleanupOld(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Jobs.Get(ctx, system.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.Jobs.Get(ctx, user.ID)
	assert.NoError(t, err)
}

func TestLastBacktestScoredCount(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	slug := "greeter"

	// No finished backtest yet.
	n, err := svc.Jobs.LastBacktestScoredCount(ctx, p.ID, slug)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	j, err := svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeModelBacktesting,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Jobs.MarkRunning(ctx, j.ID, "task-1"))
	require.NoError(t, svc.Jobs.MarkTerminal(ctx, j.ID, job.StatusCompleted, map[string]interface{}{
		models.ResultScoredCountAtCreation: 55,
	}))

	n, err = svc.Jobs.LastBacktestScoredCount(ctx, p.ID, slug)
	require.NoError(t, err)
	assert.Equal(t, 55, n)
}
