// PromptLens backend — discovers prompt templates from observed LLM traffic,
// scores them with judge models, tunes and backtests them, and serves the
// job/suggestion API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/promptlens/promptlens/pkg/api"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/database"
	"github.com/promptlens/promptlens/pkg/gates"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/locks"
	"github.com/promptlens/promptlens/pkg/reconciler"
	"github.com/promptlens/promptlens/pkg/scheduler"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/version"
	"github.com/promptlens/promptlens/pkg/workers"
)

const brokerQueueSize = 256

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting PromptLens", "version", version.Full(), "http_port", httpPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database (pool + migrations).
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.Settings.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Key-value store: locks and the task result backend.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Settings.RedisAddr(),
		Password: cfg.Settings.RedisPassword,
		DB:       cfg.Settings.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "addr", cfg.Settings.RedisAddr(), "error", err)
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()
	slog.Info("Connected to Redis", "addr", cfg.Settings.RedisAddr())

	lockSvc := locks.NewService(redisClient)

	// Task broker.
	backend := taskqueue.NewResultBackend(redisClient, cfg.Worker.TaskResultTTL)
	broker := taskqueue.NewInProcessBroker(backend, cfg.Worker.BrokerWorkers, brokerQueueSize)

	// Domain services and gates.
	svc := services.New(dbClient.Client)
	g := gates.New(svc.Spans, svc.Jobs)

	// LLM transport: every handler run gets a fresh bounded client pool and
	// disposes it when the run ends, so nothing leaks across task lifecycles.
	clientFactory := llm.NewHTTPClientFactory(llm.HTTPClientConfig{
		BaseURL:   getEnv("LLM_PROXY_URL", "https://api.openai.com/v1"),
		APIKeyFor: apiKeyResolver(cfg.Settings),
	})
	retryCfg := llm.RetryConfig{
		InitialBackoff: cfg.Worker.LLMRetryInitialBackoff,
		MaxBackoff:     cfg.Worker.LLMRetryMaxBackoff,
		CallDeadline:   cfg.Worker.LLMCallDeadline,
	}
	gatewayFactory := func() (llm.Gateway, func()) {
		pool := llm.NewClientPool(clientFactory, 8)
		return llm.NewRetryingGateway(llm.NewPoolGateway(pool), retryCfg), pool.Close
	}

	// Worker handlers, reconciler, and periodic sweeps all register on the
	// broker by task name.
	runner := workers.NewRunner(svc, cfg.Worker, gatewayFactory, broker, lockSvc)
	runner.Register(broker, cfg.Retention.JobRetention)

	rec := reconciler.New(svc.Jobs, broker, lockSvc, cfg.Scheduler.TickLockTimeout)
	rec.Register(broker)

	sweeper := scheduler.NewSweeper(svc, g, lockSvc, cfg.Scheduler)
	sweeper.Register(broker)

	broker.Start(ctx)
	go rec.Start(ctx, cfg.Scheduler.ReconcilerInterval)

	beat, err := scheduler.NewBeat(broker, cfg.Scheduler)
	if err != nil {
		slog.Error("Failed to build beat schedule", "error", err)
		os.Exit(1)
	}
	beat.Start()

	// HTTP API.
	httpServer := api.NewServer(svc, g, rec, cfg.Scheduler, dbClient)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("PromptLens started", "broker_workers", cfg.Worker.BrokerWorkers)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop producing ticks, drain the broker, stop the
	// reconciler loop, then the HTTP server.
	beat.Stop()
	broker.Stop()
	cancel()

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// apiKeyResolver maps each provider to its configured API key. When all calls
// go through a proxy, the proxy token wins.
func apiKeyResolver(s *config.Settings) func(llm.Provider) string {
	return func(p llm.Provider) string {
		if s.ProxyToken != "" {
			return s.ProxyToken
		}
		switch p {
		case llm.ProviderOpenAI:
			return s.OpenAIAPIKey
		case llm.ProviderAnthropic:
			return s.AnthropicAPIKey
		case llm.ProviderGoogle:
			return s.GeminiAPIKey
		default:
			return ""
		}
	}
}
