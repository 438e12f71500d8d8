package config

// Config is the umbrella configuration object handed to every component at
// boot. Settings comes from the environment; the rest are code defaults that
// tests override directly.
type Config struct {
	Settings  *Settings
	Scheduler *SchedulerConfig
	Worker    *WorkerConfig
	Retention *RetentionConfig
}

// Initialize loads env settings and attaches the built-in defaults.
func Initialize() (*Config, error) {
	settings, err := Load()
	if err != nil {
		return nil, err
	}
	return &Config{
		Settings:  settings,
		Scheduler: DefaultSchedulerConfig(),
		Worker:    DefaultWorkerConfig(),
		Retention: DefaultRetentionConfig(),
	}, nil
}
