package taskqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(t *testing.T) *InProcessBroker {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	backend := NewResultBackend(client, time.Hour)
	broker := NewInProcessBroker(backend, 2, 16)
	t.Cleanup(broker.Stop)
	return broker
}

func waitForState(t *testing.T, broker *InProcessBroker, taskID string, want TaskState) *AsyncResult {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		res, err := broker.Result(context.Background(), taskID)
		require.NoError(t, err)
		if res.State == want {
			return res
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("task %s never reached state %s", taskID, want)
	return nil
}

func TestSendTaskSuccess(t *testing.T) {
	broker := newTestBroker(t)
	broker.Register("auto_evaluation.evaluate_prompt_spans", func(_ context.Context, task *Task) (map[string]interface{}, error) {
		return map[string]interface{}{"spans_evaluated": 10, "slug": task.Params["prompt_slug"]}, nil
	})
	broker.Start(context.Background())

	taskID, err := broker.SendTask(context.Background(), "auto_evaluation.evaluate_prompt_spans",
		map[string]interface{}{"prompt_slug": "greeter"})
	require.NoError(t, err)
	require.NotEmpty(t, taskID)

	res := waitForState(t, broker, taskID, StateSuccess)
	assert.Equal(t, "greeter", res.Result["slug"])
	assert.EqualValues(t, 10, res.Result["spans_evaluated"])
}

func TestSendTaskFailure(t *testing.T) {
	broker := newTestBroker(t)
	broker.Register("job_reconciler.reconcile_pending_jobs", func(context.Context, *Task) (map[string]interface{}, error) {
		return nil, errors.New("worker lost")
	})
	broker.Start(context.Background())

	taskID, err := broker.SendTask(context.Background(), "job_reconciler.reconcile_pending_jobs", nil)
	require.NoError(t, err)

	res := waitForState(t, broker, taskID, StateFailure)
	assert.Contains(t, res.Error, "worker lost")
}

func TestSendTaskUnknownName(t *testing.T) {
	broker := newTestBroker(t)
	broker.Start(context.Background())

	_, err := broker.SendTask(context.Background(), "no.such.task", nil)
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestHandlerPanicBecomesFailure(t *testing.T) {
	broker := newTestBroker(t)
	broker.Register("backtesting.run_model_backtesting", func(context.Context, *Task) (map[string]interface{}, error) {
		panic("boom")
	})
	broker.Start(context.Background())

	taskID, err := broker.SendTask(context.Background(), "backtesting.run_model_backtesting", nil)
	require.NoError(t, err)

	res := waitForState(t, broker, taskID, StateFailure)
	assert.Contains(t, res.Error, "panicked")
}

func TestRevokePendingTask(t *testing.T) {
	broker := newTestBroker(t)
	started := make(chan struct{})
	release := make(chan struct{})
	broker.Register("slow", func(context.Context, *Task) (map[string]interface{}, error) {
		close(started)
		<-release
		return nil, nil
	})
	broker.Register("victim", func(context.Context, *Task) (map[string]interface{}, error) {
		t.Error("revoked task must not execute")
		return nil, nil
	})
	// Single worker so the second task stays queued behind the first.
	broker.workers = 1
	broker.Start(context.Background())

	_, err := broker.SendTask(context.Background(), "slow", nil)
	require.NoError(t, err)
	<-started

	victimID, err := broker.SendTask(context.Background(), "victim", nil)
	require.NoError(t, err)
	require.NoError(t, broker.Revoke(context.Background(), victimID))

	res, err := broker.Result(context.Background(), victimID)
	require.NoError(t, err)
	assert.Equal(t, StateRevoked, res.State)

	close(release)
	// The revoked task's state must survive the worker draining the queue.
	time.Sleep(50 * time.Millisecond)
	res, err = broker.Result(context.Background(), victimID)
	require.NoError(t, err)
	assert.Equal(t, StateRevoked, res.State)
}

func TestResultUnknownTask(t *testing.T) {
	broker := newTestBroker(t)
	_, err := broker.Result(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestStateClassification(t *testing.T) {
	for _, live := range []TaskState{StatePending, StateStarted, StateRetry} {
		assert.True(t, live.IsLive(), live)
		assert.False(t, live.IsTerminal(), live)
	}
	for _, terminal := range []TaskState{StateSuccess, StateFailure, StateRevoked} {
		assert.True(t, terminal.IsTerminal(), terminal)
		assert.False(t, terminal.IsLive(), terminal)
	}
}
