package config

import "time"

// SchedulerConfig holds the cadences of all periodic ticks.
type SchedulerConfig struct {
	// AgentDiscoveryInterval is how often projects are scanned for unmapped spans.
	AgentDiscoveryInterval time.Duration

	// AutoEvaluationInterval is how often judge_scoring candidates are checked.
	AutoEvaluationInterval time.Duration

	// PromptImprovementInterval is how often prompt_tuning candidates are checked.
	PromptImprovementInterval time.Duration

	// ModelBacktestingInterval is how often model_backtesting candidates are checked.
	ModelBacktestingInterval time.Duration

	// ReconcilerInterval is how often the job reconciler sweeps.
	ReconcilerInterval time.Duration

	// PeriodicReviewsInterval is how often review triggers are checked.
	PeriodicReviewsInterval time.Duration

	// JobCleanupCron is the crontab spec for the daily job cleanup.
	JobCleanupCron string

	// TickLockTimeout is the safety TTL on per-tick single-flight locks.
	// Must exceed the longest legitimate tick duration.
	TickLockTimeout time.Duration

	// BacktestCandidateModels are the models every scheduled backtest
	// evaluates against the current one.
	BacktestCandidateModels []string
}

// DefaultSchedulerConfig returns the built-in cadence defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		AgentDiscoveryInterval:    20 * time.Second,
		AutoEvaluationInterval:    20 * time.Second,
		PromptImprovementInterval: 300 * time.Second,
		ModelBacktestingInterval:  300 * time.Second,
		ReconcilerInterval:        30 * time.Second,
		PeriodicReviewsInterval:   20 * time.Second,
		JobCleanupCron:            "0 0 * * *",
		TickLockTimeout:           24 * time.Hour,
		BacktestCandidateModels: []string{
			"gpt-5-mini",
			"claude-haiku-4-5",
			"gemini-2.5-flash",
		},
	}
}
