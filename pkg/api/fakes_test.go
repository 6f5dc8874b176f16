package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/config"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/runner"
	"github.com/hiveflow/hiveflow/pkg/services"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// memStore is an in-memory stream.Store backing the registry in tests.
type memStore struct {
	mu     sync.Mutex
	events map[string][]*stream.Envelope
}

func newMemStore() *memStore {
	return &memStore{events: make(map[string][]*stream.Envelope)}
}

func (s *memStore) Insert(_ context.Context, ev *stream.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *ev
	s.events[ev.RunID] = append(s.events[ev.RunID], &clone)
	return nil
}

func (s *memStore) MaxSequence(_ context.Context, runID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	evs := s.events[runID]
	if len(evs) == 0 {
		return 0, nil
	}
	return evs[len(evs)-1].Sequence, nil
}

func (s *memStore) ListByRun(_ context.Context, runID string) ([]*stream.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*stream.Envelope, len(s.events[runID]))
	copy(out, s.events[runID])
	return out, nil
}

// fakeRunReader serves fixed runs.
type fakeRunReader struct {
	runs map[string]*models.Run
}

func (f *fakeRunReader) GetRun(_ context.Context, id string) (*models.Run, error) {
	run, ok := f.runs[id]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", id, services.ErrNotFound)
	}
	clone := *run
	return &clone, nil
}

func (f *fakeRunReader) ListRuns(_ context.Context, filter models.RunListFilter, page, size int) (*models.Page, error) {
	var out []*models.Run
	for _, run := range f.runs {
		if filter.Status != "" && run.Status != filter.Status {
			continue
		}
		if filter.HierarchyID != "" && run.HierarchyID != filter.HierarchyID {
			continue
		}
		out = append(out, run)
	}
	return models.NewPage(out, page, size, int64(len(out))), nil
}

// fakeManager records calls and answers from canned state.
type fakeManager struct {
	startErr  error
	started   *models.Run
	cancelled []string
	cancelOK  bool
	health    *runner.PoolHealth
}

func (f *fakeManager) StartRun(_ context.Context, hierarchyID, task string) (*models.Run, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started = &models.Run{
		ID:          "run-1",
		HierarchyID: hierarchyID,
		Task:        task,
		Status:      models.RunStatusPending,
		CreatedAt:   time.Now(),
	}
	return f.started, nil
}

func (f *fakeManager) CancelRun(_ context.Context, runID string) (bool, error) {
	f.cancelled = append(f.cancelled, runID)
	return f.cancelOK, nil
}

func (f *fakeManager) Health(_ context.Context) *runner.PoolHealth {
	if f.health != nil {
		return f.health
	}
	return &runner.PoolHealth{IsHealthy: true, DBReachable: true, TotalWorkers: 1}
}

// fakeHierarchies is an in-memory HierarchyStore.
type fakeHierarchies struct {
	hierarchies map[string]*models.Hierarchy
	deleteErr   error
}

func newFakeHierarchies(hs ...*models.Hierarchy) *fakeHierarchies {
	f := &fakeHierarchies{hierarchies: make(map[string]*models.Hierarchy)}
	for _, h := range hs {
		f.hierarchies[h.ID] = h
	}
	return f
}

func (f *fakeHierarchies) CreateHierarchy(_ context.Context, req models.CreateHierarchyRequest) (*models.Hierarchy, error) {
	if req.Name == "" {
		return nil, services.NewValidationError("name", "is required")
	}
	h := &models.Hierarchy{
		ID:          "h-new",
		Name:        req.Name,
		Description: req.Description,
		Supervisor:  req.Supervisor,
		Teams:       req.Teams,
	}
	f.hierarchies[h.ID] = h
	return h, nil
}

func (f *fakeHierarchies) GetHierarchy(_ context.Context, id string) (*models.Hierarchy, error) {
	h, ok := f.hierarchies[id]
	if !ok {
		return nil, fmt.Errorf("hierarchy %s: %w", id, services.ErrNotFound)
	}
	return h, nil
}

func (f *fakeHierarchies) ListHierarchies(_ context.Context, page, size int) (*models.Page, error) {
	out := make([]*models.Hierarchy, 0, len(f.hierarchies))
	for _, h := range f.hierarchies {
		out = append(out, h)
	}
	return models.NewPage(out, page, size, int64(len(out))), nil
}

func (f *fakeHierarchies) DeleteHierarchy(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.hierarchies[id]; !ok {
		return fmt.Errorf("hierarchy %s: %w", id, services.ErrNotFound)
	}
	delete(f.hierarchies, id)
	return nil
}

// fakeEvents reads from the same memStore the registry persists into.
type fakeEvents struct {
	store *memStore
}

func (f *fakeEvents) ListByRun(ctx context.Context, runID string) ([]*stream.Envelope, error) {
	return f.store.ListByRun(ctx, runID)
}

// testServer bundles a Server wired to fakes with direct access to them.
type testServer struct {
	server      *Server
	echo        *echo.Echo
	store       *memStore
	registry    *stream.Registry
	runs        *fakeRunReader
	hierarchies *fakeHierarchies
	manager     *fakeManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.ServerConfig{APIBase: "/api/executor/v1"}
	store := newMemStore()
	registry := stream.NewRegistry(store, 256)
	runs := &fakeRunReader{runs: make(map[string]*models.Run)}
	hierarchies := newFakeHierarchies()
	manager := &fakeManager{cancelOK: true}
	server := NewServer(cfg, nil, runs, hierarchies, &fakeEvents{store: store}, registry, manager)
	return &testServer{
		server:      server,
		echo:        server.Echo(),
		store:       store,
		registry:    registry,
		runs:        runs,
		hierarchies: hierarchies,
		manager:     manager,
	}
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// post issues a JSON POST against the router and decodes the envelope.
func (ts *testServer) post(t *testing.T, path string, body any) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()
	rec := ts.postRaw(t, path, body)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, &env
}

// postRaw issues a JSON POST without interpreting the response body.
func (ts *testServer) postRaw(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/executor/v1"+path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}
