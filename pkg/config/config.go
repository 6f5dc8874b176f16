// Package config provides environment-driven configuration with defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Server    *ServerConfig
	Runner    *RunnerConfig
	Stream    *StreamConfig
	Retention *RetentionConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// BindAddr is the listen address, e.g. ":8000".
	BindAddr string

	// APIBase is the path prefix all routes are mounted under.
	APIBase string

	// AgentRunnerAddr is the gRPC address of the agent runner service.
	AgentRunnerAddr string
}

// RunnerConfig contains worker pool configuration. These values control how
// runs are polled, claimed, and executed.
type RunnerConfig struct {
	// WorkerCount is the number of worker goroutines polling for runs.
	WorkerCount int

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// RunTimeout is the maximum time a run can execute.
	RunTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// StreamConfig contains event streaming configuration.
type StreamConfig struct {
	// SubscriberBuffer is the bounded per-subscriber queue size. A consumer
	// that falls this many events behind is dropped.
	SubscriberBuffer int
}

// RetentionConfig contains data retention configuration.
type RetentionConfig struct {
	// RunRetentionDays is how long terminal runs (and their events, via the
	// cascade) are kept before deletion.
	RunRetentionDays int

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval time.Duration
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Server: &ServerConfig{
			BindAddr:        ":8000",
			APIBase:         "/api/executor/v1",
			AgentRunnerAddr: "localhost:50051",
		},
		Runner: &RunnerConfig{
			WorkerCount:             8,
			PollInterval:            1 * time.Second,
			PollIntervalJitter:      500 * time.Millisecond,
			RunTimeout:              30 * time.Minute,
			GracefulShutdownTimeout: 30 * time.Second,
		},
		Stream: &StreamConfig{
			SubscriberBuffer: 256,
		},
		Retention: &RetentionConfig{
			RunRetentionDays: 90,
			CleanupInterval:  6 * time.Hour,
		},
	}
}

// Load builds the configuration from environment variables on top of the
// defaults. Database settings are read separately by pkg/database.
func Load() (*Config, error) {
	cfg := Default()

	cfg.Server.BindAddr = getEnv("BIND_ADDR", cfg.Server.BindAddr)
	cfg.Server.APIBase = getEnv("API_BASE", cfg.Server.APIBase)
	cfg.Server.AgentRunnerAddr = getEnv("AGENT_RUNNER_ADDR", cfg.Server.AgentRunnerAddr)

	var err error
	if cfg.Runner.WorkerCount, err = getEnvInt("WORKER_POOL_SIZE", cfg.Runner.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.Runner.PollInterval, err = getEnvDuration("POLL_INTERVAL", cfg.Runner.PollInterval); err != nil {
		return nil, err
	}
	if cfg.Runner.PollIntervalJitter, err = getEnvDuration("POLL_INTERVAL_JITTER", cfg.Runner.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.Runner.RunTimeout, err = getEnvDuration("RUN_TIMEOUT", cfg.Runner.RunTimeout); err != nil {
		return nil, err
	}
	if cfg.Runner.GracefulShutdownTimeout, err = getEnvDuration("GRACEFUL_SHUTDOWN_TIMEOUT", cfg.Runner.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.Stream.SubscriberBuffer, err = getEnvInt("SUBSCRIBER_BUFFER", cfg.Stream.SubscriberBuffer); err != nil {
		return nil, err
	}
	if cfg.Retention.RunRetentionDays, err = getEnvInt("RUN_RETENTION_DAYS", cfg.Retention.RunRetentionDays); err != nil {
		return nil, err
	}
	if cfg.Retention.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", cfg.Retention.CleanupInterval); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Runner.WorkerCount < 1 {
		return fmt.Errorf("WORKER_POOL_SIZE must be at least 1, got %d", c.Runner.WorkerCount)
	}
	if c.Runner.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %v", c.Runner.PollInterval)
	}
	if c.Runner.PollIntervalJitter >= c.Runner.PollInterval {
		return fmt.Errorf("POLL_INTERVAL_JITTER (%v) must be smaller than POLL_INTERVAL (%v)",
			c.Runner.PollIntervalJitter, c.Runner.PollInterval)
	}
	if c.Stream.SubscriberBuffer < 1 {
		return fmt.Errorf("SUBSCRIBER_BUFFER must be at least 1, got %d", c.Stream.SubscriberBuffer)
	}
	if c.Retention.RunRetentionDays < 1 {
		return fmt.Errorf("RUN_RETENTION_DAYS must be at least 1, got %d", c.Retention.RunRetentionDays)
	}
	if c.Retention.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL must be positive, got %v", c.Retention.CleanupInterval)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
