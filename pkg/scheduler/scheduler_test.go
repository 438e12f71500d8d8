package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/gates"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
)

type fakeLocker struct {
	held  bool
	names []string
}

func (l *fakeLocker) WithLock(ctx context.Context, name string, _ time.Duration, fn func(context.Context) error) (bool, error) {
	l.names = append(l.names, name)
	if l.held {
		return false, nil
	}
	return true, fn(ctx)
}

func TestTickHandlerRunsSweepUnderLock(t *testing.T) {
	locker := &fakeLocker{}
	s := NewSweeper(nil, nil, locker, config.DefaultSchedulerConfig())

	handler := s.tickHandler("auto_evaluation", func(context.Context) (SweepStats, error) {
		return SweepStats{Candidates: 4, Created: 2, Deduped: 1, Skipped: 1}, nil
	})

	out, err := handler(context.Background(), &taskqueue.Task{})
	require.NoError(t, err)
	assert.Equal(t, []string{"auto_evaluation"}, locker.names)
	assert.Equal(t, 2, out["created"])
	assert.Equal(t, 1, out["deduped"])
}

func TestTickHandlerSkipsWhenLockHeld(t *testing.T) {
	locker := &fakeLocker{held: true}
	s := NewSweeper(nil, nil, locker, config.DefaultSchedulerConfig())

	ran := false
	handler := s.tickHandler("agent_discovery", func(context.Context) (SweepStats, error) {
		ran = true
		return SweepStats{}, nil
	})

	out, err := handler(context.Background(), &taskqueue.Task{})
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, "skipped", out["status"])
}

func TestTickHandlerPropagatesSweepError(t *testing.T) {
	s := NewSweeper(nil, nil, &fakeLocker{}, config.DefaultSchedulerConfig())

	handler := s.tickHandler("prompt_improvement", func(context.Context) (SweepStats, error) {
		return SweepStats{}, errors.New("db down")
	})

	_, err := handler(context.Background(), &taskqueue.Task{})
	assert.ErrorContains(t, err, "db down")
}

func TestApplyGateResultClassifiesIneligible(t *testing.T) {
	s := NewSweeper(nil, nil, &fakeLocker{}, config.DefaultSchedulerConfig())

	var stats SweepStats
	s.applyGateResult(context.Background(), &stats, gates.Result{
		Eligible: false,
		Reason:   gates.ReasonInProgress,
	}, services.CreateJobInput{})
	s.applyGateResult(context.Background(), &stats, gates.Result{
		Eligible: false,
		Reason:   "only 3 unscored spans, need 10",
	}, services.CreateJobInput{})

	assert.Equal(t, 1, stats.Deduped)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Created)
}

type fakeDispatcher struct {
	mu    sync.Mutex
	sent  []string
	errCh error
}

func (d *fakeDispatcher) SendTask(_ context.Context, name string, _ map[string]interface{}) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, name)
	return "task-1", d.errCh
}

func TestNewBeatSchedulesAllEntries(t *testing.T) {
	b, err := NewBeat(&fakeDispatcher{}, config.DefaultSchedulerConfig())
	require.NoError(t, err)
	assert.Len(t, b.cron.Entries(), 6)
}

func TestNewBeatRejectsBadCleanupCron(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()
	cfg.JobCleanupCron = "not a cron spec"
	_, err := NewBeat(&fakeDispatcher{}, cfg)
	assert.Error(t, err)
}

func TestBeatFireSendsTaskName(t *testing.T) {
	d := &fakeDispatcher{}
	b, err := NewBeat(d, config.DefaultSchedulerConfig())
	require.NoError(t, err)

	b.fire("agent_discovery.discover_agents")()

	d.mu.Lock()
	defer d.mu.Unlock()
	require.Len(t, d.sent, 1)
	assert.Equal(t, "agent_discovery.discover_agents", d.sent[0])
}
