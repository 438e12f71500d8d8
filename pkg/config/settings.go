// Package config provides the immutable boot-time settings object and
// per-concern configuration structs for the orchestration core.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Settings is the env-driven configuration surface, read once at boot.
// It is never mutated after Load returns.
type Settings struct {
	// Postgres
	DatabaseURL string

	// Key-value store (locks, task result backend, identity caches)
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	// Broker URL; derived from the Redis settings when absent.
	BrokerURL string

	// LLM provider API keys
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string

	// API-token prefix for issued tokens
	APITokenPrefix string

	// Optional integrations
	AWSRegion    string
	OTLPEndpoint string
	ProxyToken   string
}

// Load reads Settings from the environment. Only the database URL is
// mandatory; everything else has a workable default.
func Load() (*Settings, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisPort, err := strconv.Atoi(getEnvOrDefault("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	s := &Settings{
		DatabaseURL:     dbURL,
		RedisHost:       getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:       redisPort,
		RedisDB:         redisDB,
		RedisPassword:   os.Getenv("REDIS_AUTH_TOKEN"),
		BrokerURL:       os.Getenv("BROKER_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		APITokenPrefix:  getEnvOrDefault("API_TOKEN_PREFIX", "pl"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		OTLPEndpoint:    os.Getenv("OTLP_ENDPOINT"),
		ProxyToken:      os.Getenv("PROXY_TOKEN"),
	}

	if s.BrokerURL == "" {
		s.BrokerURL = s.RedisAddr()
	}
	return s, nil
}

// RedisAddr returns the host:port address of the key-value store.
func (s *Settings) RedisAddr() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
