package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/tasks"
)

// Dispatcher fires a task by name.
type Dispatcher interface {
	SendTask(ctx context.Context, name string, params map[string]interface{}) (string, error)
}

// Beat fires the registered periodic task names on their cadences. It never
// executes work itself; every entry is a SendTask. The reconciler is absent
// here: it runs its own nudge-aware loop and stays addressable by task name.
type Beat struct {
	cron   *cron.Cron
	broker Dispatcher
	cfg    *config.SchedulerConfig
}

// NewBeat builds the cron schedule from the configured cadences.
func NewBeat(broker Dispatcher, cfg *config.SchedulerConfig) (*Beat, error) {
	b := &Beat{
		cron:   cron.New(),
		broker: broker,
		cfg:    cfg,
	}

	entries := []struct {
		spec string
		task string
	}{
		{everySpec(cfg.AgentDiscoveryInterval), tasks.DiscoverAgents},
		{everySpec(cfg.AutoEvaluationInterval), tasks.EvaluateUnscoredSpans},
		{everySpec(cfg.PromptImprovementInterval), tasks.ImprovePromptTemplates},
		{everySpec(cfg.ModelBacktestingInterval), tasks.CheckBacktestingCandidates},
		{everySpec(cfg.PeriodicReviewsInterval), tasks.CheckReviewTriggers},
		{cfg.JobCleanupCron, tasks.CleanupOldJobs},
	}
	for _, e := range entries {
		if _, err := b.cron.AddFunc(e.spec, b.fire(e.task)); err != nil {
			return nil, fmt.Errorf("failed to schedule %s (%q): %w", e.task, e.spec, err)
		}
	}
	return b, nil
}

// Start begins firing entries. Non-blocking.
func (b *Beat) Start() {
	slog.Info("Starting beat scheduler", "entries", len(b.cron.Entries()))
	b.cron.Start()
}

// Stop halts the schedule and waits for in-flight fires to return.
func (b *Beat) Stop() {
	<-b.cron.Stop().Done()
	slog.Info("Beat scheduler stopped")
}

func (b *Beat) fire(task string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := b.broker.SendTask(ctx, task, nil); err != nil {
			slog.Warn("Beat dispatch failed", "task", task, "error", err)
		}
	}
}

func everySpec(d time.Duration) string {
	return "@every " + d.String()
}
