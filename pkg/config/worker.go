package config

import "time"

// Domain constants shared by gates, workers and the recommender.
const (
	// MinSpansForDiscovery is the minimum total span count before a project
	// is considered for agent discovery.
	MinSpansForDiscovery = 10

	// MinSpansForScoring is the minimum unscored-span count before a
	// judge_scoring job is created.
	MinSpansForScoring = 10

	// MaxSpansPerScoringBatch caps how many spans one scoring job evaluates.
	MaxSpansPerScoringBatch = 50

	// MinSpansForBacktesting gates backtest creation and sampling.
	MinSpansForBacktesting = 10

	// MaxSpansForBacktesting caps the backtest sample size.
	MaxSpansForBacktesting = 50

	// MaxComparisonSpans caps the tuning replay comparison set.
	MaxComparisonSpans = 50

	// MaxSpansPerScoreBucket caps each of the five score bands when
	// bucketing scored spans for tuning.
	MaxSpansPerScoreBucket = 15

	// MaxPendingJobsPerPromptAndType bounds pending+running jobs for the
	// same (project, slug, type). Additional user creates fail.
	MaxPendingJobsPerPromptAndType = 2

	// MinAdoptionRatio is the latest-version adoption share required before
	// tuning runs.
	MinAdoptionRatio = 0.25

	// ActivityWindow is the recent-traffic window used by tuning and
	// backtesting gates.
	ActivityWindow = 7 * 24 * time.Hour

	// ScoreDropDisqualifyPct disqualifies a backtest candidate whose score
	// drops more than this many percentage points below baseline.
	ScoreDropDisqualifyPct = 15.0

	// ScoreTolerancePct is the band around baseline within which a candidate
	// may still win on latency or cost.
	ScoreTolerancePct = 5.0
)

// WorkerConfig bounds the concurrency and retry behavior of job handlers.
type WorkerConfig struct {
	// BrokerWorkers is the number of goroutines executing broker tasks.
	BrokerWorkers int

	// MaxConcurrentScoring bounds parallel LLM calls inside one
	// judge_scoring job.
	MaxConcurrentScoring int

	// MaxConcurrentBacktests bounds parallel (model × span) calls inside
	// one model_backtesting job.
	MaxConcurrentBacktests int

	// LLMRetryInitialBackoff is the first backoff applied to rate-limited calls.
	LLMRetryInitialBackoff time.Duration

	// LLMRetryMaxBackoff caps the rate-limit backoff.
	LLMRetryMaxBackoff time.Duration

	// LLMCallDeadline is the per-call wall-clock deadline including retries.
	LLMCallDeadline time.Duration

	// TaskResultTTL is how long broker task states are retained in the
	// result backend.
	TaskResultTTL time.Duration

	// ReviewLockTimeout is the safety TTL on the periodic-review
	// single-flight lock.
	ReviewLockTimeout time.Duration
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		BrokerWorkers:          8,
		MaxConcurrentScoring:   10,
		MaxConcurrentBacktests: 5,
		LLMRetryInitialBackoff: 1 * time.Second,
		LLMRetryMaxBackoff:     60 * time.Second,
		LLMCallDeadline:        300 * time.Second,
		TaskResultTTL:          24 * time.Hour,
		ReviewLockTimeout:      24 * time.Hour,
	}
}
