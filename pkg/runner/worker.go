package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hiveflow/hiveflow/pkg/config"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/services"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// RunRegistry is the subset of Manager used by Worker for cancel
// registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// Worker is a single pool worker that polls for and processes runs.
type Worker struct {
	id       string
	cfg      *config.RunnerConfig
	runs     RunStore
	executor RunExecutor
	registry *stream.Registry
	pool     RunRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new pool worker.
func NewWorker(id string, cfg *config.RunnerConfig, runs RunStore, executor RunExecutor, registry *stream.Registry, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		cfg:          cfg,
		runs:         runs,
		executor:     executor,
		registry:     registry,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNoRunsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next pending run and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	run, err := w.runs.ClaimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// The hub normally exists already (opened by StartRun); after a process
	// restart the registry is empty and the hub is recreated here, resuming
	// the sequence from the store.
	if w.registry.Get(run.ID) == nil {
		if _, err := w.registry.Open(ctx, run.ID); err != nil {
			log.Error("Failed to reopen hub", "error", err)
		}
	}
	// The hub outlives the executor just long enough for subscribers to
	// drain the terminal event.
	defer w.registry.Close(run.ID)

	runCtx, cancelRun := context.WithTimeout(ctx, w.cfg.RunTimeout)
	defer cancelRun()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	result := w.executor.Execute(runCtx, run)
	if result == nil {
		result = &ExecutionResult{
			Status: models.RunStatusFailed,
			Err:    fmt.Errorf("executor returned nil result"),
		}
	}

	// Terminal status write uses a fresh context: the run context may be
	// cancelled by now.
	if err := w.updateTerminalStatus(context.Background(), run.ID, result); err != nil {
		log.Error("Failed to update run terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// updateTerminalStatus writes the final run status.
func (w *Worker) updateTerminalStatus(ctx context.Context, runID string, result *ExecutionResult) error {
	upd := models.TerminalUpdate{Statistics: result.Statistics}
	if result.Status == models.RunStatusCompleted {
		upd.Result = &result.Result
	}
	if result.Err != nil && result.Status == models.RunStatusFailed {
		msg := result.Err.Error()
		upd.Error = &msg
	}
	return w.runs.MarkTerminal(ctx, runID, result.Status, upd)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
