package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/adapter"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

type executorFixture struct {
	store    *memEventStore
	registry *stream.Registry
	runs     *fakeRunStore
	invoker  *adapter.ScriptInvoker
	executor *Executor
}

func newExecutorFixture(t *testing.T) *executorFixture {
	t.Helper()
	store := newMemEventStore()
	registry := stream.NewRegistry(store, 256)
	runs := newFakeRunStore()
	invoker := adapter.NewScriptInvoker()
	sink := stream.NewSink(store, registry)
	executor := NewExecutor(invoker, sink, runs, newFakeHierarchyStore(testHierarchy()))
	return &executorFixture{
		store:    store,
		registry: registry,
		runs:     runs,
		invoker:  invoker,
		executor: executor,
	}
}

func (f *executorFixture) startRun(t *testing.T) *models.Run {
	t.Helper()
	run, err := f.runs.CreateRun(context.Background(), "h-1", "find the answer")
	require.NoError(t, err)
	_, err = f.registry.Open(context.Background(), run.ID)
	require.NoError(t, err)
	claimed, err := f.runs.ClaimNext(context.Background())
	require.NoError(t, err)
	return claimed
}

func (f *executorFixture) eventNames(t *testing.T, runID string) []string {
	t.Helper()
	events, err := f.store.ListByRun(context.Background(), runID)
	require.NoError(t, err)
	names := make([]string, len(events))
	for i, ev := range events {
		names[i] = ev.Name()
	}
	return names
}

// scriptHappyPath registers the full supervisor → team → worker traversal.
func scriptHappyPath(inv *adapter.ScriptInvoker) {
	inv.Script("sup-agent",
		&adapter.TextChunk{Delta: "Planning research"},
		&adapter.ToolCallChunk{CallID: "c1", Name: adapter.ToolDispatchTeam, Arguments: `{"name":"research","task":"dig into it"}`},
		&adapter.FinalChunk{Text: "the answer is 42"},
	)
	inv.Script("team-agent",
		&adapter.ToolCallChunk{CallID: "c2", Name: adapter.ToolDispatchWorker, Arguments: `{"name":"digger","task":"dig deep"}`},
		&adapter.FinalChunk{Text: "team verdict"},
	)
	inv.Script("worker-agent",
		&adapter.TextChunk{Delta: "digging"},
		&adapter.FinalChunk{Text: "raw findings"},
	)
}

func TestExecuteHappyPath(t *testing.T) {
	f := newExecutorFixture(t)
	scriptHappyPath(f.invoker)
	run := f.startRun(t)

	result := f.executor.Execute(context.Background(), run)

	require.Equal(t, models.RunStatusCompleted, result.Status)
	assert.Equal(t, "the answer is 42", result.Result)

	assert.Equal(t, []string{
		"lifecycle.started",
		"system.topology",
		"llm.stream",
		"llm.tool_call",
		"dispatch.team",
		"llm.tool_call",
		"dispatch.worker",
		"llm.stream",
		"llm.tool_result",
		"llm.tool_result",
		"lifecycle.completed",
	}, f.eventNames(t, run.ID))

	events, err := f.store.ListByRun(context.Background(), run.ID)
	require.NoError(t, err)
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Sequence)
	}

	// Sub-agent finals flow back as synthetic tool results.
	assert.Equal(t, "raw findings", events[8].Data["result"])
	assert.Equal(t, "c2", events[8].Data["call_id"])
	assert.Equal(t, "team verdict", events[9].Data["result"])
	assert.Equal(t, "c1", events[9].Data["call_id"])

	// Source attribution follows the depth-first traversal.
	assert.Nil(t, events[0].Source)
	assert.Equal(t, models.AgentTypeGlobalSupervisor, events[2].Source.AgentType)
	assert.Equal(t, models.AgentTypeTeamSupervisor, events[5].Source.AgentType)
	assert.Equal(t, models.AgentTypeWorker, events[7].Source.AgentType)
	require.NotNil(t, events[7].Source.TeamName)
	assert.Equal(t, "research", *events[7].Source.TeamName)

	assert.Equal(t, map[string]int{
		"lifecycle": 2,
		"system":    1,
		"llm":       6,
		"dispatch":  2,
	}, result.Statistics)

	// Topology snapshot recorded at start.
	stored, err := f.runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Topology)
	assert.Equal(t, "h-1", stored.Topology.HierarchyID)
}

func TestExecuteCancelMidRun(t *testing.T) {
	f := newExecutorFixture(t)
	gate := make(chan struct{})
	f.invoker.Gate = gate
	f.invoker.Script("sup-agent",
		&adapter.TextChunk{Delta: "one"},
		&adapter.TextChunk{Delta: "two"},
		&adapter.TextChunk{Delta: "three"},
		&adapter.FinalChunk{Text: "never reached"},
	)
	run := f.startRun(t)

	ctx, cancel := context.WithCancel(context.Background())
	resultCh := make(chan *ExecutionResult, 1)
	go func() { resultCh <- f.executor.Execute(ctx, run) }()

	// Let two chunks through, then cancel.
	gate <- struct{}{}
	gate <- struct{}{}
	cancel()

	var result *ExecutionResult
	select {
	case result = <-resultCh:
	case <-time.After(5 * time.Second):
		t.Fatal("executor did not stop after cancellation")
	}

	require.Equal(t, models.RunStatusCancelled, result.Status)
	names := f.eventNames(t, run.ID)
	assert.Equal(t, "lifecycle.cancelled", names[len(names)-1])
	// started, topology, at most two streamed chunks, cancelled.
	assert.LessOrEqual(t, len(names), 5)
}

func TestExecuteCancelBeforeStart(t *testing.T) {
	f := newExecutorFixture(t)
	run := f.startRun(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := f.executor.Execute(ctx, run)

	require.Equal(t, models.RunStatusCancelled, result.Status)
	assert.Equal(t, []string{"lifecycle.cancelled"}, f.eventNames(t, run.ID))
}

func TestExecuteAdapterFailure(t *testing.T) {
	f := newExecutorFixture(t)
	f.invoker.Script("sup-agent",
		&adapter.TextChunk{Delta: "thinking"},
		&adapter.ErrorChunk{Message: "runner unavailable"},
	)
	run := f.startRun(t)

	result := f.executor.Execute(context.Background(), run)

	require.Equal(t, models.RunStatusFailed, result.Status)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "runner unavailable")

	names := f.eventNames(t, run.ID)
	assert.Equal(t, []string{
		"lifecycle.started",
		"system.topology",
		"llm.stream",
		"system.error",
		"lifecycle.failed",
	}, names)
}

func TestExecuteUnknownTeamFails(t *testing.T) {
	f := newExecutorFixture(t)
	f.invoker.Script("sup-agent",
		&adapter.ToolCallChunk{CallID: "c1", Name: adapter.ToolDispatchTeam, Arguments: `{"name":"marketing","task":"x"}`},
	)
	run := f.startRun(t)

	result := f.executor.Execute(context.Background(), run)

	require.Equal(t, models.RunStatusFailed, result.Status)
	assert.Contains(t, result.Err.Error(), `unknown team "marketing"`)
	names := f.eventNames(t, run.ID)
	assert.Equal(t, "lifecycle.failed", names[len(names)-1])
}

func TestExecuteWorkerCannotDispatch(t *testing.T) {
	f := newExecutorFixture(t)
	f.invoker.Script("sup-agent",
		&adapter.ToolCallChunk{CallID: "c1", Name: adapter.ToolDispatchTeam, Arguments: `{"name":"research","task":"x"}`},
		&adapter.FinalChunk{Text: "done"},
	)
	f.invoker.Script("team-agent",
		&adapter.ToolCallChunk{CallID: "c2", Name: adapter.ToolDispatchWorker, Arguments: `{"name":"digger","task":"y"}`},
		&adapter.FinalChunk{Text: "team"},
	)
	f.invoker.Script("worker-agent",
		// Workers hold no dispatch authority.
		&adapter.ToolCallChunk{CallID: "c3", Name: adapter.ToolDispatchWorker, Arguments: `{"name":"digger","task":"z"}`},
	)
	run := f.startRun(t)

	result := f.executor.Execute(context.Background(), run)

	require.Equal(t, models.RunStatusFailed, result.Status)
	assert.Contains(t, result.Err.Error(), "dispatch_worker called by worker")
}

func TestExecuteUnknownHierarchyFails(t *testing.T) {
	f := newExecutorFixture(t)
	run, err := f.runs.CreateRun(context.Background(), "h-missing", "task")
	require.NoError(t, err)
	_, err = f.registry.Open(context.Background(), run.ID)
	require.NoError(t, err)

	result := f.executor.Execute(context.Background(), run)

	require.Equal(t, models.RunStatusFailed, result.Status)
	assert.Equal(t, []string{"system.error", "lifecycle.failed"}, f.eventNames(t, run.ID))
}
