// Package runner provides run execution: the depth-first hierarchy executor
// and the worker pool that claims and processes pending runs.
package runner

import (
	"context"
	"time"

	"github.com/hiveflow/hiveflow/pkg/models"
)

// RunStore is the run persistence surface the runner depends on.
// Implemented by services.RunService.
type RunStore interface {
	CreateRun(ctx context.Context, hierarchyID, task string) (*models.Run, error)
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ClaimNext(ctx context.Context) (*models.Run, error)
	SetTopology(ctx context.Context, id string, topo *models.Topology) error
	MarkTerminal(ctx context.Context, id string, status models.RunStatus, upd models.TerminalUpdate) error
	CancelPending(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context, status models.RunStatus) (int, error)
}

// HierarchyStore resolves hierarchy definitions.
// Implemented by services.HierarchyService.
type HierarchyStore interface {
	GetHierarchy(ctx context.Context, id string) (*models.Hierarchy, error)
}

// RunExecutor executes one claimed run to completion.
//
// The executor owns the ENTIRE emission protocol internally: lifecycle and
// topology events, the depth-first supervisor/team/worker traversal, and the
// terminal event. It writes events progressively during execution. The
// worker only handles claiming, the run context, terminal status update,
// and hub close.
type RunExecutor interface {
	Execute(ctx context.Context, run *models.Run) *ExecutionResult
}

// ExecutionResult is lightweight, just the terminal state. All events were
// already persisted by the executor during processing.
type ExecutionResult struct {
	Status     models.RunStatus // completed, failed, cancelled
	Result     string           // global supervisor's final text (if completed)
	Err        error            // error details (if failed)
	Statistics map[string]int   // per-category event counts
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveRuns    int            `json:"active_runs"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
