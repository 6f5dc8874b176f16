package models

import "time"

// RunStatus is the lifecycle state of a run.
type RunStatus string

// Run status constants. Transitions form a DAG:
// pending → running → {completed, failed, cancelled}; pending → cancelled
// is also legal (cancel before the executor picks the run up).
const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether a cancel request is legal for this status.
func (s RunStatus) Cancellable() bool {
	return s == RunStatusPending || s == RunStatusRunning
}

// Run is one execution of a hierarchy against a task.
type Run struct {
	ID          string         `json:"id"`
	HierarchyID string         `json:"hierarchy_id"`
	Task        string         `json:"task"`
	Status      RunStatus      `json:"status"`
	Result      *string        `json:"result,omitempty"`
	Error       *string        `json:"error,omitempty"`
	Statistics  map[string]int `json:"statistics,omitempty"`
	Topology    *Topology      `json:"topology_snapshot,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// RunListFilter narrows RunService.List.
type RunListFilter struct {
	HierarchyID string
	Status      RunStatus
}

// TerminalUpdate carries the fields written together with a terminal status.
type TerminalUpdate struct {
	Result     *string
	Error      *string
	Statistics map[string]int
}
