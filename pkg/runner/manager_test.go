package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/adapter"
	"github.com/hiveflow/hiveflow/pkg/config"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/services"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

type managerFixture struct {
	store    *memEventStore
	registry *stream.Registry
	runs     *fakeRunStore
	invoker  *adapter.ScriptInvoker
	manager  *Manager
}

func newManagerFixture(t *testing.T, cfg *config.RunnerConfig) *managerFixture {
	t.Helper()
	if cfg == nil {
		cfg = &config.RunnerConfig{
			WorkerCount:  1,
			PollInterval: 5 * time.Millisecond,
			RunTimeout:   time.Minute,
		}
	}
	store := newMemEventStore()
	registry := stream.NewRegistry(store, 256)
	runs := newFakeRunStore()
	invoker := adapter.NewScriptInvoker()
	sink := stream.NewSink(store, registry)
	hierarchies := newFakeHierarchyStore(testHierarchy())
	executor := NewExecutor(invoker, sink, runs, hierarchies)
	manager := NewManager(cfg, runs, hierarchies, executor, registry, sink)
	return &managerFixture{
		store:    store,
		registry: registry,
		runs:     runs,
		invoker:  invoker,
		manager:  manager,
	}
}

func TestStartRunCreatesPendingRunAndOpensHub(t *testing.T) {
	f := newManagerFixture(t, nil)

	run, err := f.manager.StartRun(context.Background(), "h-1", "analyze the logs")
	require.NoError(t, err)

	assert.Equal(t, models.RunStatusPending, run.Status)
	assert.Equal(t, "h-1", run.HierarchyID)
	assert.Equal(t, "analyze the logs", run.Task)

	// The hub is live before StartRun returns, so subscribers never race the
	// first event.
	require.NotNil(t, f.registry.Get(run.ID))
}

func TestStartRunUnknownHierarchy(t *testing.T) {
	f := newManagerFixture(t, nil)

	_, err := f.manager.StartRun(context.Background(), "h-missing", "task")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCancelRunPendingTransitionsAndClosesHub(t *testing.T) {
	f := newManagerFixture(t, nil)
	run, err := f.manager.StartRun(context.Background(), "h-1", "task")
	require.NoError(t, err)

	sub, err := f.registry.Get(run.ID).Subscribe(context.Background())
	require.NoError(t, err)

	found, err := f.manager.CancelRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.True(t, found)

	stored, err := f.runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCancelled, stored.Status)

	// The subscriber sees exactly one event: the lone lifecycle.cancelled.
	ev, err := sub.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lifecycle.cancelled", ev.Name())
	_, err = sub.Next(context.Background())
	assert.ErrorIs(t, err, stream.ErrSubscriberClosed)

	assert.Nil(t, f.registry.Get(run.ID))
}

func TestCancelRunUnknownRun(t *testing.T) {
	f := newManagerFixture(t, nil)

	found, err := f.manager.CancelRun(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCancelRunAlreadyTerminal(t *testing.T) {
	f := newManagerFixture(t, nil)
	run, err := f.manager.StartRun(context.Background(), "h-1", "task")
	require.NoError(t, err)

	_, err = f.runs.ClaimNext(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.runs.MarkTerminal(context.Background(), run.ID, models.RunStatusCompleted, models.TerminalUpdate{}))

	found, err := f.manager.CancelRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPoolProcessesRunToCompletion(t *testing.T) {
	f := newManagerFixture(t, nil)
	scriptHappyPath(f.invoker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.manager.Start(ctx)
	defer f.manager.Stop()

	run, err := f.manager.StartRun(ctx, "h-1", "find the answer")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		stored, err := f.runs.GetRun(context.Background(), run.ID)
		return err == nil && stored.Status.Terminal()
	}, 5*time.Second, 10*time.Millisecond)

	stored, err := f.runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, stored.Status)
	require.NotNil(t, stored.Result)
	assert.Equal(t, "the answer is 42", *stored.Result)
	events, err := f.store.ListByRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Len(t, events, 11)
	assert.NotNil(t, stored.Statistics)

	// The worker closes the hub once the run reaches a terminal state.
	require.Eventually(t, func() bool {
		return f.registry.Get(run.ID) == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPoolCancelRunningRun(t *testing.T) {
	f := newManagerFixture(t, nil)
	gate := make(chan struct{})
	f.invoker.Gate = gate
	f.invoker.Script("sup-agent",
		&adapter.TextChunk{Delta: "working"},
		&adapter.TextChunk{Delta: "still working"},
		&adapter.FinalChunk{Text: "never reached"},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.manager.Start(ctx)
	defer f.manager.Stop()

	run, err := f.manager.StartRun(ctx, "h-1", "task")
	require.NoError(t, err)

	// The gate send blocks until a worker has claimed the run and the
	// supervisor stream is live.
	gate <- struct{}{}

	found, err := f.manager.CancelRun(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, found)

	require.Eventually(t, func() bool {
		stored, err := f.runs.GetRun(context.Background(), run.ID)
		return err == nil && stored.Status == models.RunStatusCancelled
	}, 5*time.Second, 10*time.Millisecond)

	events, err := f.store.ListByRun(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "lifecycle.cancelled", events[len(events)-1].Name())
}

func TestRunTimeoutMarksRunFailed(t *testing.T) {
	cfg := &config.RunnerConfig{
		WorkerCount:  1,
		PollInterval: 5 * time.Millisecond,
		RunTimeout:   50 * time.Millisecond,
	}
	f := newManagerFixture(t, cfg)
	// No gate receive ever happens, so the supervisor stream stalls until the
	// run context times out.
	f.invoker.Gate = make(chan struct{})
	f.invoker.Script("sup-agent", &adapter.TextChunk{Delta: "stuck"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.manager.Start(ctx)
	defer f.manager.Stop()

	run, err := f.manager.StartRun(ctx, "h-1", "task")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		stored, err := f.runs.GetRun(context.Background(), run.ID)
		return err == nil && stored.Status == models.RunStatusFailed
	}, 5*time.Second, 10*time.Millisecond)

	stored, err := f.runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Error)
	assert.Equal(t, "run timed out", *stored.Error)
}

func TestManagerHealth(t *testing.T) {
	f := newManagerFixture(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.manager.Start(ctx)
	defer f.manager.Stop()

	health := f.manager.Health(ctx)
	require.NotNil(t, health)
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.TotalWorkers)
	require.Len(t, health.WorkerStats, 1)
	assert.Equal(t, "worker-0", health.WorkerStats[0].ID)
}

func TestManagerStopIsIdempotent(t *testing.T) {
	f := newManagerFixture(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.manager.Start(ctx)

	f.manager.Stop()
	f.manager.Stop()
}
