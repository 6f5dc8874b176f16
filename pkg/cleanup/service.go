// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/hiveflow/hiveflow/pkg/config"
)

// RunPruner deletes terminal runs past the retention window.
// Implemented by services.RunService.
type RunPruner interface {
	DeleteOldRuns(ctx context.Context, retentionDays int) (int, error)
}

// Service periodically enforces the retention policy: terminal runs older
// than the retention window are deleted, taking their events with them via
// the cascade. The operation is idempotent and safe to run from multiple
// replicas.
type Service struct {
	config *config.RetentionConfig
	runs   RunPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, runs RunPruner) *Service {
	return &Service{
		config: cfg,
		runs:   runs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteOldRuns(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteOldRuns(ctx)
		}
	}
}

func (s *Service) deleteOldRuns(ctx context.Context) {
	count, err := s.runs.DeleteOldRuns(ctx, s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: run cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old runs", "count", count)
	}
}
