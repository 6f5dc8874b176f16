package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hiveflow/hiveflow/pkg/config"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// Manager owns the run worker pool and the run-level control operations the
// API depends on: starting runs, cancelling them, and pool health.
type Manager struct {
	cfg         *config.RunnerConfig
	runs        RunStore
	hierarchies HierarchyStore
	executor    RunExecutor
	registry    *stream.Registry
	sink        *stream.Sink

	workers  []*Worker
	stopOnce sync.Once
	started  bool

	// Run cancel registry: run_id → cancel function for claimed runs.
	mu         sync.RWMutex
	activeRuns map[string]context.CancelFunc
}

// NewManager creates a manager. Start must be called before runs are
// processed; StartRun and CancelRun work either way.
func NewManager(cfg *config.RunnerConfig, runs RunStore, hierarchies HierarchyStore, executor RunExecutor, registry *stream.Registry, sink *stream.Sink) *Manager {
	return &Manager{
		cfg:         cfg,
		runs:        runs,
		hierarchies: hierarchies,
		executor:    executor,
		registry:    registry,
		sink:        sink,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		activeRuns:  make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines. Safe to call multiple times;
// subsequent calls are no-ops.
func (m *Manager) Start(ctx context.Context) {
	if m.started {
		slog.Warn("Run manager already started, ignoring duplicate Start call")
		return
	}
	m.started = true

	slog.Info("Starting run manager", "worker_count", m.cfg.WorkerCount)
	for i := 0; i < m.cfg.WorkerCount; i++ {
		worker := NewWorker(fmt.Sprintf("worker-%d", i), m.cfg, m.runs, m.executor, m.registry, m)
		m.workers = append(m.workers, worker)
		worker.Start(ctx)
	}
}

// Stop signals all workers to stop and waits for them to finish their
// current runs (graceful shutdown).
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		active := m.activeRunIDs()
		if len(active) > 0 {
			slog.Info("Waiting for active runs to complete", "count", len(active), "run_ids", active)
		}
		for _, worker := range m.workers {
			worker.Stop()
		}
		slog.Info("Run manager stopped")
	})
}

// StartRun validates the hierarchy, creates a pending run, and opens its
// hub. The hub is open before StartRun returns, so a subscriber attaching
// immediately observes the stream from sequence 1.
func (m *Manager) StartRun(ctx context.Context, hierarchyID, task string) (*models.Run, error) {
	if _, err := m.hierarchies.GetHierarchy(ctx, hierarchyID); err != nil {
		return nil, err
	}
	run, err := m.runs.CreateRun(ctx, hierarchyID, task)
	if err != nil {
		return nil, err
	}
	if _, err := m.registry.Open(ctx, run.ID); err != nil {
		return nil, fmt.Errorf("failed to open hub for run %s: %w", run.ID, err)
	}
	slog.Info("Run enqueued", "run_id", run.ID, "hierarchy_id", hierarchyID)
	return run, nil
}

// CancelRun requests cancellation of a run. Fire-and-forget: it reports
// whether a cancellable run was found, not whether execution has stopped.
//
// A claimed run gets its context cancelled; the executor notices between
// emissions. A run still pending is transitioned directly: it never ran, so
// the manager emits the lone lifecycle.cancelled event and closes the hub.
func (m *Manager) CancelRun(ctx context.Context, runID string) (bool, error) {
	m.mu.RLock()
	cancel, running := m.activeRuns[runID]
	m.mu.RUnlock()
	if running {
		cancel()
		slog.Info("Run cancellation requested", "run_id", runID)
		return true, nil
	}

	cancelled, err := m.runs.CancelPending(ctx, runID)
	if err != nil {
		return false, err
	}
	if !cancelled {
		return false, nil
	}
	if _, err := m.sink.Emit(ctx, runID, &stream.Envelope{
		Category: stream.CategoryLifecycle,
		Action:   stream.ActionCancelled,
	}); err != nil {
		slog.Error("Failed to emit cancellation event", "run_id", runID, "error", err)
	}
	m.registry.Close(runID)
	slog.Info("Pending run cancelled", "run_id", runID)
	return true, nil
}

// RegisterRun stores a cancel function for a claimed run.
func (m *Manager) RegisterRun(runID string, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeRuns[runID] = cancel
}

// UnregisterRun removes the cancel function when processing ends.
func (m *Manager) UnregisterRun(runID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.activeRuns, runID)
}

// Health returns the current health status of the pool.
func (m *Manager) Health(ctx context.Context) *PoolHealth {
	queueDepth, errQ := m.runs.CountByStatus(ctx, models.RunStatusPending)
	activeRuns, errA := m.runs.CountByStatus(ctx, models.RunStatusRunning)

	workerStats := make([]WorkerHealth, len(m.workers))
	activeWorkers := 0
	for i, worker := range m.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errA != nil {
		dbError = fmt.Sprintf("active runs query failed: %v", errA)
	}

	return &PoolHealth{
		IsHealthy:     dbHealthy && len(m.workers) > 0,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(m.workers),
		ActiveRuns:    activeRuns,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}

func (m *Manager) activeRunIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.activeRuns))
	for id := range m.activeRuns {
		ids = append(ids, id)
	}
	return ids
}
