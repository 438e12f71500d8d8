package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
)

type fakeJobStore struct {
	pending []*ent.Job
	running []*ent.Job

	terminal    map[string]job.Status
	terminalOut map[string]map[string]interface{}
	dispatched  map[string]string
	notPending  map[string]bool
	notRunning  map[string]bool
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{
		terminal:    map[string]job.Status{},
		terminalOut: map[string]map[string]interface{}{},
		dispatched:  map[string]string{},
		notPending:  map[string]bool{},
		notRunning:  map[string]bool{},
	}
}

func (f *fakeJobStore) ListPending(context.Context) ([]*ent.Job, error) {
	return f.pending, nil
}

func (f *fakeJobStore) ListRunningWithTask(context.Context) ([]*ent.Job, error) {
	var out []*ent.Job
	for _, j := range f.running {
		if j.TaskID != nil {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobStore) ListRunningForScope(_ context.Context, t job.Type, projectID string, slug *string) ([]*ent.Job, error) {
	var out []*ent.Job
	for _, j := range f.running {
		if j.Type != t || j.ProjectID != projectID {
			continue
		}
		if (slug == nil) != (j.PromptSlug == nil) {
			continue
		}
		if slug != nil && *slug != *j.PromptSlug {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobStore) MarkRunning(_ context.Context, jobID, taskID string) error {
	if f.notPending[jobID] {
		return services.ErrNotPending
	}
	f.dispatched[jobID] = taskID
	return nil
}

func (f *fakeJobStore) MarkTerminalIfRunning(_ context.Context, jobID string, status job.Status, output map[string]interface{}) (bool, error) {
	if f.notRunning[jobID] {
		return false, nil
	}
	f.terminal[jobID] = status
	f.terminalOut[jobID] = output
	return true, nil
}

type fakeBroker struct {
	results map[string]*taskqueue.AsyncResult
	sent    []string
	sendErr error
}

func (f *fakeBroker) SendTask(_ context.Context, name string, _ map[string]interface{}) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, name)
	return "task-" + name, nil
}

func (f *fakeBroker) Result(_ context.Context, taskID string) (*taskqueue.AsyncResult, error) {
	r, ok := f.results[taskID]
	if !ok {
		return nil, taskqueue.ErrTaskNotFound
	}
	return r, nil
}

type fakeLocker struct {
	held bool
}

func (f *fakeLocker) WithLock(ctx context.Context, _ string, _ time.Duration, fn func(context.Context) error) (bool, error) {
	if f.held {
		return false, nil
	}
	return true, fn(ctx)
}

func strPtr(s string) *string { return &s }

func runningJob(id, taskID string) *ent.Job {
	return &ent.Job{
		ID:         id,
		Type:       job.TypeJudgeScoring,
		ProjectID:  "proj",
		PromptSlug: strPtr("agent-abc"),
		Status:     job.StatusRunning,
		TaskID:     strPtr(taskID),
	}
}

func pendingJob(id string) *ent.Job {
	return &ent.Job{
		ID:         id,
		Type:       job.TypeJudgeScoring,
		ProjectID:  "proj",
		PromptSlug: strPtr("agent-abc"),
		Status:     job.StatusPending,
		Result:     map[string]interface{}{},
	}
}

func TestSweepCompletesSuccessfulTasks(t *testing.T) {
	store := newFakeJobStore()
	store.running = []*ent.Job{runningJob("j1", "t1")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{
		"t1": {TaskID: "t1", State: taskqueue.StateSuccess, Result: map[string]interface{}{"mapped": 12}},
	}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Swept)
	assert.Equal(t, job.StatusCompleted, store.terminal["j1"])
	assert.Equal(t, 12, store.terminalOut["j1"]["mapped"])
}

func TestSweepFailsFailedAndRevokedTasks(t *testing.T) {
	store := newFakeJobStore()
	store.running = []*ent.Job{runningJob("j1", "t1"), runningJob("j2", "t2")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{
		"t1": {TaskID: "t1", State: taskqueue.StateFailure, Error: "boom"},
		"t2": {TaskID: "t2", State: taskqueue.StateRevoked},
	}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Swept)
	assert.Equal(t, job.StatusFailed, store.terminal["j1"])
	assert.Equal(t, "boom", store.terminalOut["j1"]["error"])
	assert.Equal(t, job.StatusFailed, store.terminal["j2"])
}

// A worker that finalised the row between the listing and the sweep write
// must win: the conditional transition no-ops and the job is not counted.
func TestSweepDoesNotOverwriteWorkerFinalisedJob(t *testing.T) {
	store := newFakeJobStore()
	store.running = []*ent.Job{runningJob("j1", "t1")}
	store.notRunning["j1"] = true
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{
		"t1": {TaskID: "t1", State: taskqueue.StateSuccess, Result: map[string]interface{}{"mapped": 12}},
	}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Swept)
	assert.Empty(t, store.terminal)
}

func TestSweepLeavesLiveAndUnknownTasksAlone(t *testing.T) {
	store := newFakeJobStore()
	store.running = []*ent.Job{runningJob("j1", "t1"), runningJob("j2", "missing")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{
		"t1": {TaskID: "t1", State: taskqueue.StateStarted},
	}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Swept)
	assert.Empty(t, store.terminal)
}

func TestDispatchPendingFIFO(t *testing.T) {
	store := newFakeJobStore()
	discovery := pendingJob("j1")
	discovery.Type = job.TypeAgentDiscovery
	discovery.PromptSlug = nil
	store.pending = []*ent.Job{discovery, pendingJob("j2")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Dispatched)
	assert.Equal(t, []string{
		"agent_discovery.run_agent_discovery",
		"auto_evaluation.evaluate_prompt_spans",
	}, broker.sent)
	assert.NotEmpty(t, store.dispatched["j1"])
	assert.NotEmpty(t, store.dispatched["j2"])
}

func TestDispatchSkipsScopeWithLiveRunningJob(t *testing.T) {
	store := newFakeJobStore()
	store.pending = []*ent.Job{pendingJob("j2")}
	store.running = []*ent.Job{runningJob("j1", "t1")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{
		"t1": {TaskID: "t1", State: taskqueue.StateStarted},
	}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Dispatched)
	assert.Equal(t, 1, stats.Skipped)
	assert.Empty(t, broker.sent)
}

func TestDispatchProceedsWhenRunningJobIsBrokerTerminal(t *testing.T) {
	store := newFakeJobStore()
	store.pending = []*ent.Job{pendingJob("j2")}
	store.running = []*ent.Job{runningJob("j1", "t1")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{
		"t1": {TaskID: "t1", State: taskqueue.StateSuccess},
	}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	// Phase A already swept j1, so j2's scope is free in Phase B.
	assert.Equal(t, 1, stats.Swept)
	assert.Equal(t, 1, stats.Dispatched)
}

func TestDispatchSkipsJobCancelledInFlight(t *testing.T) {
	store := newFakeJobStore()
	store.pending = []*ent.Job{pendingJob("j1")}
	store.notPending["j1"] = true
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{}}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Dispatched)
	assert.Equal(t, 1, stats.Skipped)
}

func TestDispatchCountsSendFailuresAsSkipped(t *testing.T) {
	store := newFakeJobStore()
	store.pending = []*ent.Job{pendingJob("j1")}
	broker := &fakeBroker{sendErr: errors.New("queue closed")}

	r := New(store, broker, &fakeLocker{}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Dispatched)
	assert.Equal(t, 1, stats.Skipped)
}

func TestRunSkipsWhenLockHeldElsewhere(t *testing.T) {
	store := newFakeJobStore()
	store.pending = []*ent.Job{pendingJob("j1")}
	broker := &fakeBroker{results: map[string]*taskqueue.AsyncResult{}}

	r := New(store, broker, &fakeLocker{held: true}, time.Hour)
	stats, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Dispatched)
	assert.Empty(t, broker.sent)
}
