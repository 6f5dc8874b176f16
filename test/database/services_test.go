package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/services"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

func hierarchyRequest(name string) models.CreateHierarchyRequest {
	return models.CreateHierarchyRequest{
		Name:       name,
		Supervisor: "sup-agent",
		Teams: []models.Team{
			{Name: "research", Agent: "team-agent", Workers: []models.Worker{
				{Name: "digger", Agent: "worker-agent"},
			}},
		},
	}
}

func TestHierarchyServiceCRUD(t *testing.T) {
	client := NewTestClient(t)
	svc := services.NewHierarchyService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateHierarchy(ctx, hierarchyRequest("research-org"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// Missing team/worker ids are assigned on create.
	require.Len(t, created.Teams, 1)
	assert.NotEmpty(t, created.Teams[0].ID)
	require.Len(t, created.Teams[0].Workers, 1)
	assert.NotEmpty(t, created.Teams[0].Workers[0].ID)

	got, err := svc.GetHierarchy(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "research-org", got.Name)
	assert.Equal(t, created.Teams, got.Teams)

	// Names are unique.
	_, err = svc.CreateHierarchy(ctx, hierarchyRequest("research-org"))
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	page, err := svc.ListHierarchies(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)

	require.NoError(t, svc.DeleteHierarchy(ctx, created.ID))
	_, err = svc.GetHierarchy(ctx, created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHierarchyServiceValidation(t *testing.T) {
	client := NewTestClient(t)
	svc := services.NewHierarchyService(client.Client)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateHierarchyRequest)
	}{
		{"empty name", func(r *models.CreateHierarchyRequest) { r.Name = "" }},
		{"empty supervisor", func(r *models.CreateHierarchyRequest) { r.Supervisor = "" }},
		{"no teams", func(r *models.CreateHierarchyRequest) { r.Teams = nil }},
		{"team without agent", func(r *models.CreateHierarchyRequest) { r.Teams[0].Agent = "" }},
		{"team without workers", func(r *models.CreateHierarchyRequest) { r.Teams[0].Workers = nil }},
		{"worker without agent", func(r *models.CreateHierarchyRequest) { r.Teams[0].Workers[0].Agent = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := hierarchyRequest("x")
			tc.mutate(&req)
			_, err := svc.CreateHierarchy(ctx, req)
			assert.True(t, services.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestDeleteHierarchyWithRunsRestricted(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	ctx := context.Background()

	h, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("busy"))
	require.NoError(t, err)
	_, err = runs.CreateRun(ctx, h.ID, "task")
	require.NoError(t, err)

	err = hierarchies.DeleteHierarchy(ctx, h.ID)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestRunServiceLifecycle(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	ctx := context.Background()

	h, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org"))
	require.NoError(t, err)

	run, err := runs.CreateRun(ctx, h.ID, "investigate")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusPending, run.Status)
	assert.Nil(t, run.StartedAt)

	// FK violation surfaces as not-found.
	_, err = runs.CreateRun(ctx, "no-such-hierarchy", "task")
	assert.ErrorIs(t, err, services.ErrNotFound)

	claimed, err := runs.ClaimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, claimed.ID)
	assert.Equal(t, models.RunStatusRunning, claimed.Status)
	require.NotNil(t, claimed.StartedAt)

	// The queue is empty now.
	_, err = runs.ClaimNext(ctx)
	assert.ErrorIs(t, err, services.ErrNoRunsAvailable)

	topo := &models.Topology{HierarchyID: h.ID, Name: h.Name, Supervisor: h.Supervisor, Teams: h.Teams}
	require.NoError(t, runs.SetTopology(ctx, run.ID, topo))

	result := "all done"
	err = runs.MarkTerminal(ctx, run.ID, models.RunStatusCompleted, models.TerminalUpdate{
		Result:     &result,
		Statistics: map[string]int{"lifecycle": 2, "llm": 5},
	})
	require.NoError(t, err)

	got, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, "all done", *got.Result)
	assert.Equal(t, map[string]int{"lifecycle": 2, "llm": 5}, got.Statistics)
	require.NotNil(t, got.Topology)
	assert.Equal(t, h.ID, got.Topology.HierarchyID)
	require.NotNil(t, got.CompletedAt)

	// Terminal runs admit no further transitions.
	err = runs.MarkTerminal(ctx, run.ID, models.RunStatusFailed, models.TerminalUpdate{})
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestClaimNextIsFIFO(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	ctx := context.Background()

	h, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org"))
	require.NoError(t, err)

	first, err := runs.CreateRun(ctx, h.ID, "first")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond) // distinct created_at
	second, err := runs.CreateRun(ctx, h.ID, "second")
	require.NoError(t, err)

	claimed, err := runs.ClaimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)

	claimed, err = runs.ClaimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)
}

func TestCancelPending(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	ctx := context.Background()

	h, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org"))
	require.NoError(t, err)
	run, err := runs.CreateRun(ctx, h.ID, "task")
	require.NoError(t, err)

	cancelled, err := runs.CancelPending(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	got, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCancelled, got.Status)

	// Second attempt finds nothing pending.
	cancelled, err = runs.CancelPending(ctx, run.ID)
	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestListRunsFilters(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	ctx := context.Background()

	h1, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org-a"))
	require.NoError(t, err)
	h2, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org-b"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = runs.CreateRun(ctx, h1.ID, "task")
		require.NoError(t, err)
	}
	r, err := runs.CreateRun(ctx, h2.ID, "task")
	require.NoError(t, err)
	_, err = runs.CancelPending(ctx, r.ID)
	require.NoError(t, err)

	page, err := runs.ListRuns(ctx, models.RunListFilter{HierarchyID: h1.ID}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)

	page, err = runs.ListRuns(ctx, models.RunListFilter{Status: models.RunStatusCancelled}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)

	counted, err := runs.CountByStatus(ctx, models.RunStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 3, counted)
}

func TestEventServiceRoundTrip(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	h, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org"))
	require.NoError(t, err)
	run, err := runs.CreateRun(ctx, h.ID, "task")
	require.NoError(t, err)

	seq, err := events.MaxSequence(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)

	team := "research"
	for i := int64(1); i <= 3; i++ {
		err := events.Insert(ctx, &stream.Envelope{
			ID:        uuid.New().String(),
			RunID:     run.ID,
			Sequence:  i,
			Timestamp: time.Now().UTC(),
			Source: &stream.Source{
				AgentID:   "w-1",
				AgentType: models.AgentTypeWorker,
				AgentName: "digger",
				TeamName:  &team,
			},
			Category: stream.CategoryLLM,
			Action:   stream.ActionStream,
			Data:     map[string]any{"delta": "chunk"},
		})
		require.NoError(t, err)
	}

	seq, err = events.MaxSequence(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)

	list, err := events.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, ev := range list {
		assert.Equal(t, int64(i+1), ev.Sequence)
		assert.Equal(t, "llm.stream", ev.Name())
		require.NotNil(t, ev.Source)
		assert.Equal(t, models.AgentTypeWorker, ev.Source.AgentType)
		require.NotNil(t, ev.Source.TeamName)
		assert.Equal(t, "research", *ev.Source.TeamName)
		assert.Equal(t, map[string]any{"delta": "chunk"}, ev.Data)
	}
}

func TestEventServiceRejectsDuplicateSequence(t *testing.T) {
	client := NewTestClient(t)
	hierarchies := services.NewHierarchyService(client.Client)
	runs := services.NewRunService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	h, err := hierarchies.CreateHierarchy(ctx, hierarchyRequest("org"))
	require.NoError(t, err)
	run, err := runs.CreateRun(ctx, h.ID, "task")
	require.NoError(t, err)

	ev := func() *stream.Envelope {
		return &stream.Envelope{
			ID:        uuid.New().String(),
			RunID:     run.ID,
			Sequence:  1,
			Timestamp: time.Now().UTC(),
			Category:  stream.CategoryLifecycle,
			Action:    stream.ActionStarted,
		}
	}
	require.NoError(t, events.Insert(ctx, ev()))

	// The unique (run_id, sequence) index guards the gap-free ordering.
	err = events.Insert(ctx, ev())
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}
