package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8, cfg.Runner.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Runner.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Runner.PollIntervalJitter)
	assert.Equal(t, 256, cfg.Stream.SubscriberBuffer)
	assert.Equal(t, ":8000", cfg.Server.BindAddr)
	assert.Equal(t, "/api/executor/v1", cfg.Server.APIBase)
	assert.Equal(t, 90, cfg.Retention.RunRetentionDays)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORKER_POOL_SIZE", "3")
	t.Setenv("POLL_INTERVAL", "2s")
	t.Setenv("SUBSCRIBER_BUFFER", "64")
	t.Setenv("BIND_ADDR", ":9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Runner.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.Runner.PollInterval)
	assert.Equal(t, 64, cfg.Stream.SubscriberBuffer)
	assert.Equal(t, ":9000", cfg.Server.BindAddr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero workers", "WORKER_POOL_SIZE", "0"},
		{"malformed duration", "POLL_INTERVAL", "fast"},
		{"jitter above interval", "POLL_INTERVAL_JITTER", "5s"},
		{"zero buffer", "SUBSCRIBER_BUFFER", "0"},
		{"zero retention", "RUN_RETENTION_DAYS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
