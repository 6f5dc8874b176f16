package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hiveflow/hiveflow/ent"
	"github.com/hiveflow/hiveflow/ent/hierarchy"
	"github.com/hiveflow/hiveflow/pkg/models"
)

// HierarchyService manages hierarchy definitions.
type HierarchyService struct {
	client *ent.Client
}

// NewHierarchyService creates a new HierarchyService
func NewHierarchyService(client *ent.Client) *HierarchyService {
	return &HierarchyService{client: client}
}

// CreateHierarchy validates and stores a hierarchy definition. Team and
// worker ids are assigned when the request leaves them empty.
func (s *HierarchyService) CreateHierarchy(ctx context.Context, req models.CreateHierarchyRequest) (*models.Hierarchy, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Supervisor == "" {
		return nil, NewValidationError("supervisor", "required")
	}
	if len(req.Teams) == 0 {
		return nil, NewValidationError("teams", "at least one team required")
	}
	teams := make([]models.Team, len(req.Teams))
	for i, t := range req.Teams {
		if t.Name == "" {
			return nil, NewValidationError("teams", fmt.Sprintf("team %d: name required", i))
		}
		if t.Agent == "" {
			return nil, NewValidationError("teams", fmt.Sprintf("team %q: agent required", t.Name))
		}
		if len(t.Workers) == 0 {
			return nil, NewValidationError("teams", fmt.Sprintf("team %q: at least one worker required", t.Name))
		}
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		workers := make([]models.Worker, len(t.Workers))
		for j, w := range t.Workers {
			if w.Name == "" {
				return nil, NewValidationError("teams", fmt.Sprintf("team %q: worker %d: name required", t.Name, j))
			}
			if w.Agent == "" {
				return nil, NewValidationError("teams", fmt.Sprintf("team %q: worker %q: agent required", t.Name, w.Name))
			}
			if w.ID == "" {
				w.ID = uuid.New().String()
			}
			workers[j] = w
		}
		t.Workers = workers
		teams[i] = t
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.Hierarchy.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetSupervisor(req.Supervisor).
		SetTeams(teams).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("hierarchy %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create hierarchy: %w", err)
	}
	return hierarchyToModel(row), nil
}

// GetHierarchy retrieves a hierarchy by id.
func (s *HierarchyService) GetHierarchy(ctx context.Context, id string) (*models.Hierarchy, error) {
	row, err := s.client.Hierarchy.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("hierarchy %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hierarchy: %w", err)
	}
	return hierarchyToModel(row), nil
}

// ListHierarchies returns a page of hierarchies ordered by creation time.
func (s *HierarchyService) ListHierarchies(ctx context.Context, page, size int) (*models.Page, error) {
	page, size = normalizePage(page, size)

	q := s.client.Hierarchy.Query()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count hierarchies: %w", err)
	}

	rows, err := q.
		Order(ent.Desc(hierarchy.FieldCreatedAt)).
		Offset((page - 1) * size).
		Limit(size).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hierarchies: %w", err)
	}

	out := make([]*models.Hierarchy, len(rows))
	for i, row := range rows {
		out[i] = hierarchyToModel(row)
	}
	return models.NewPage(out, page, size, int64(total)), nil
}

// DeleteHierarchy removes a hierarchy. Hierarchies with runs are protected
// by the FK restrict and surface as a conflict.
func (s *HierarchyService) DeleteHierarchy(ctx context.Context, id string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Hierarchy.DeleteOneID(id).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("hierarchy %s: %w", id, ErrNotFound)
		}
		if ent.IsConstraintError(err) {
			return fmt.Errorf("hierarchy %s has runs: %w", id, ErrInvalidInput)
		}
		return fmt.Errorf("failed to delete hierarchy: %w", err)
	}
	return nil
}

func hierarchyToModel(row *ent.Hierarchy) *models.Hierarchy {
	return &models.Hierarchy{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Supervisor:  row.Supervisor,
		Teams:       row.Teams,
	}
}

// normalizePage clamps paging parameters: page is 1-based, size 1..100.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
