package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hiveflow/hiveflow/ent"
	"github.com/hiveflow/hiveflow/ent/run"
	"github.com/hiveflow/hiveflow/pkg/models"
)

// RunService manages run lifecycle state in the database. Status writes go
// through transition-guarded updates so concurrent workers and cancel
// requests cannot produce an illegal transition.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun inserts a new pending run.
func (s *RunService) CreateRun(ctx context.Context, hierarchyID, task string) (*models.Run, error) {
	if task == "" {
		return nil, NewValidationError("task", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetHierarchyID(hierarchyID).
		SetTask(task).
		SetStatus(run.StatusPending).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("hierarchy %s: %w", hierarchyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return runToModel(row), nil
}

// GetRun retrieves a run by id.
func (s *RunService) GetRun(ctx context.Context, id string) (*models.Run, error) {
	row, err := s.client.Run.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return runToModel(row), nil
}

// ListRuns returns a page of runs, newest first, optionally filtered by
// hierarchy and status.
func (s *RunService) ListRuns(ctx context.Context, filter models.RunListFilter, page, size int) (*models.Page, error) {
	page, size = normalizePage(page, size)

	q := s.client.Run.Query()
	if filter.HierarchyID != "" {
		q = q.Where(run.HierarchyIDEQ(filter.HierarchyID))
	}
	if filter.Status != "" {
		q = q.Where(run.StatusEQ(run.Status(filter.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	rows, err := q.
		Order(ent.Desc(run.FieldCreatedAt)).
		Offset((page - 1) * size).
		Limit(size).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	out := make([]*models.Run, len(rows))
	for i, row := range rows {
		out[i] = runToModel(row)
	}
	return models.NewPage(out, page, size, int64(total)), nil
}

// ClaimNext atomically claims the oldest pending run using FOR UPDATE SKIP
// LOCKED, transitioning it to running and stamping started_at.
func (s *RunService) ClaimNext(ctx context.Context) (*models.Run, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Order by created_at for FIFO processing.
	row, err := tx.Run.Query().
		Where(run.StatusEQ(run.StatusPending)).
		Order(ent.Asc(run.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	row, err = row.Update().
		SetStatus(run.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return runToModel(row), nil
}

// SetTopology records the topology snapshot taken when execution starts.
func (s *RunService) SetTopology(ctx context.Context, id string, topo *models.Topology) error {
	err := s.client.Run.UpdateOneID(id).
		SetTopologySnapshot(topo).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("run %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set topology snapshot: %w", err)
	}
	return nil
}

// MarkTerminal writes a terminal status together with its result fields.
// The update is guarded so an already-terminal run is left untouched.
func (s *RunService) MarkTerminal(ctx context.Context, id string, status models.RunStatus, upd models.TerminalUpdate) error {
	if !status.Terminal() {
		return fmt.Errorf("status %s is not terminal: %w", status, ErrInvalidInput)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := s.client.Run.Update().
		Where(
			run.IDEQ(id),
			run.StatusIn(run.StatusPending, run.StatusRunning),
		).
		SetStatus(run.Status(status)).
		SetCompletedAt(time.Now())
	if upd.Result != nil {
		q = q.SetResult(*upd.Result)
	}
	if upd.Error != nil {
		q = q.SetErrorMessage(*upd.Error)
	}
	if upd.Statistics != nil {
		q = q.SetStatistics(upd.Statistics)
	}

	n, err := q.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark run %s %s: %w", id, status, err)
	}
	if n == 0 {
		return fmt.Errorf("run %s already terminal: %w", id, ErrNotCancellable)
	}
	return nil
}

// CancelPending transitions a pending run straight to cancelled. Returns
// false without error when the run is no longer pending (a worker claimed
// it in the meantime, or it already terminated).
func (s *RunService) CancelPending(ctx context.Context, id string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Run.Update().
		Where(
			run.IDEQ(id),
			run.StatusEQ(run.StatusPending),
		).
		SetStatus(run.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending run %s: %w", id, err)
	}
	return n > 0, nil
}

// DeleteOldRuns removes terminal runs whose completed_at is older than the
// retention window. Their events go with them via the cascade. Returns the
// number of runs deleted.
func (s *RunService) DeleteOldRuns(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	n, err := s.client.Run.Delete().
		Where(
			run.StatusIn(run.StatusCompleted, run.StatusFailed, run.StatusCancelled),
			run.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}
	return n, nil
}

// CountByStatus returns the number of runs in the given status.
func (s *RunService) CountByStatus(ctx context.Context, status models.RunStatus) (int, error) {
	n, err := s.client.Run.Query().
		Where(run.StatusEQ(run.Status(status))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s runs: %w", status, err)
	}
	return n, nil
}

func runToModel(row *ent.Run) *models.Run {
	m := &models.Run{
		ID:          row.ID,
		HierarchyID: row.HierarchyID,
		Task:        row.Task,
		Status:      models.RunStatus(row.Status),
		Result:      row.Result,
		Error:       row.ErrorMessage,
		Statistics:  row.Statistics,
		Topology:    row.TopologySnapshot,
		CreatedAt:   row.CreatedAt,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
	return m
}
