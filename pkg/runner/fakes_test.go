package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/services"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// memEventStore is an in-memory stream.Store.
type memEventStore struct {
	mu     sync.Mutex
	events map[string][]*stream.Envelope
}

func newMemEventStore() *memEventStore {
	return &memEventStore{events: make(map[string][]*stream.Envelope)}
}

func (s *memEventStore) Insert(_ context.Context, ev *stream.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *ev
	s.events[ev.RunID] = append(s.events[ev.RunID], &clone)
	return nil
}

func (s *memEventStore) MaxSequence(_ context.Context, runID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	evs := s.events[runID]
	if len(evs) == 0 {
		return 0, nil
	}
	return evs[len(evs)-1].Sequence, nil
}

func (s *memEventStore) ListByRun(_ context.Context, runID string) ([]*stream.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*stream.Envelope, len(s.events[runID]))
	copy(out, s.events[runID])
	return out, nil
}

// fakeRunStore is an in-memory RunStore.
type fakeRunStore struct {
	mu    sync.Mutex
	runs  map[string]*models.Run
	order []string
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{runs: make(map[string]*models.Run)}
}

func (s *fakeRunStore) CreateRun(_ context.Context, hierarchyID, task string) (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run := &models.Run{
		ID:          uuid.New().String(),
		HierarchyID: hierarchyID,
		Task:        task,
		Status:      models.RunStatusPending,
		CreatedAt:   time.Now(),
	}
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	clone := *run
	return &clone, nil
}

func (s *fakeRunStore) GetRun(_ context.Context, id string) (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", id, services.ErrNotFound)
	}
	clone := *run
	return &clone, nil
}

func (s *fakeRunStore) ClaimNext(_ context.Context) (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		run := s.runs[id]
		if run.Status == models.RunStatusPending {
			run.Status = models.RunStatusRunning
			now := time.Now()
			run.StartedAt = &now
			clone := *run
			return &clone, nil
		}
	}
	return nil, services.ErrNoRunsAvailable
}

func (s *fakeRunStore) SetTopology(_ context.Context, id string, topo *models.Topology) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return fmt.Errorf("run %s: %w", id, services.ErrNotFound)
	}
	run.Topology = topo
	return nil
}

func (s *fakeRunStore) MarkTerminal(_ context.Context, id string, status models.RunStatus, upd models.TerminalUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return fmt.Errorf("run %s: %w", id, services.ErrNotFound)
	}
	if run.Status.Terminal() {
		return fmt.Errorf("run %s already terminal: %w", id, services.ErrNotCancellable)
	}
	run.Status = status
	now := time.Now()
	run.CompletedAt = &now
	run.Result = upd.Result
	run.Error = upd.Error
	run.Statistics = upd.Statistics
	return nil
}

func (s *fakeRunStore) CancelPending(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok || run.Status != models.RunStatusPending {
		return false, nil
	}
	run.Status = models.RunStatusCancelled
	now := time.Now()
	run.CompletedAt = &now
	return true, nil
}

func (s *fakeRunStore) CountByStatus(_ context.Context, status models.RunStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, run := range s.runs {
		if run.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeHierarchyStore is an in-memory HierarchyStore.
type fakeHierarchyStore struct {
	hierarchies map[string]*models.Hierarchy
}

func newFakeHierarchyStore(hs ...*models.Hierarchy) *fakeHierarchyStore {
	s := &fakeHierarchyStore{hierarchies: make(map[string]*models.Hierarchy)}
	for _, h := range hs {
		s.hierarchies[h.ID] = h
	}
	return s
}

func (s *fakeHierarchyStore) GetHierarchy(_ context.Context, id string) (*models.Hierarchy, error) {
	h, ok := s.hierarchies[id]
	if !ok {
		return nil, fmt.Errorf("hierarchy %s: %w", id, services.ErrNotFound)
	}
	return h, nil
}

// testHierarchy is the one-team, one-worker tree the scenario tests use.
func testHierarchy() *models.Hierarchy {
	return &models.Hierarchy{
		ID:         "h-1",
		Name:       "research-org",
		Supervisor: "sup-agent",
		Teams: []models.Team{
			{
				ID:    "t-1",
				Name:  "research",
				Role:  "find facts",
				Agent: "team-agent",
				Workers: []models.Worker{
					{ID: "w-1", Name: "digger", Role: "dig", Agent: "worker-agent"},
				},
			},
		},
	}
}
