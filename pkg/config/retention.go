package config

import "time"

// RetentionConfig controls job-row retention.
type RetentionConfig struct {
	// JobRetention is the minimum age of a terminal system-triggered job
	// before the daily cleanup deletes it. User-triggered jobs are never
	// auto-deleted.
	JobRetention time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetention: 24 * time.Hour,
	}
}
