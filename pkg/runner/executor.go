package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hiveflow/hiveflow/pkg/adapter"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// Executor runs one hierarchy execution depth-first: the global supervisor
// streams until it dispatches a team, the team supervisor streams until it
// dispatches a worker, and each sub-agent's final text is fed back to its
// parent as a synthetic tool result. Exactly one agent streams at a time.
type Executor struct {
	invoker     adapter.Invoker
	sink        *stream.Sink
	runs        RunStore
	hierarchies HierarchyStore
}

// NewExecutor creates an executor.
func NewExecutor(invoker adapter.Invoker, sink *stream.Sink, runs RunStore, hierarchies HierarchyStore) *Executor {
	return &Executor{
		invoker:     invoker,
		sink:        sink,
		runs:        runs,
		hierarchies: hierarchies,
	}
}

// Execute processes a claimed run through the full emission protocol:
// lifecycle.started, system.topology, the agent traversal, and exactly one
// terminal lifecycle event. Cancellation is cooperative and checked between
// emissions. The caller closes the run's hub after Execute returns.
func (e *Executor) Execute(ctx context.Context, run *models.Run) *ExecutionResult {
	// Terminal events must persist even after the run context ends.
	emitCtx := context.WithoutCancel(ctx)
	log := slog.With("run_id", run.ID)
	st := &runState{sink: e.sink, runID: run.ID, stats: make(map[string]int)}

	if ctx.Err() != nil {
		// Cancelled before the first emission: the stream carries only
		// lifecycle.cancelled.
		return e.finishCancelled(emitCtx, st, log)
	}

	hierarchy, err := e.hierarchies.GetHierarchy(ctx, run.HierarchyID)
	if err != nil {
		return e.finishFailed(emitCtx, st, log, fmt.Errorf("failed to load hierarchy %s: %w", run.HierarchyID, err))
	}

	if err := st.emit(emitCtx, nil, stream.CategoryLifecycle, stream.ActionStarted, map[string]any{
		"task": run.Task,
	}); err != nil {
		return e.finishFailed(emitCtx, st, log, err)
	}

	topo := hierarchy.Snapshot()
	if err := e.runs.SetTopology(emitCtx, run.ID, topo); err != nil {
		log.Warn("Failed to store topology snapshot", "error", err)
	}
	if err := st.emit(emitCtx, nil, stream.CategorySystem, stream.ActionTopology, map[string]any{
		"topology": topo,
	}); err != nil {
		return e.finishFailed(emitCtx, st, log, err)
	}

	supervisor := adapter.AgentRef{
		RunID: run.ID,
		ID:    hierarchy.ID,
		Name:  "supervisor",
		Type:  models.AgentTypeGlobalSupervisor,
		Agent: hierarchy.Supervisor,
	}
	result, err := e.runAgent(ctx, emitCtx, st, hierarchy, supervisor, run.Task)
	if err != nil {
		if canceled(ctx, err) {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return e.finishFailed(emitCtx, st, log, errors.New("run timed out"))
			}
			return e.finishCancelled(emitCtx, st, log)
		}
		return e.finishFailed(emitCtx, st, log, err)
	}

	if err := st.emit(emitCtx, nil, stream.CategoryLifecycle, stream.ActionCompleted, map[string]any{
		"result": result,
	}); err != nil {
		return e.finishFailed(emitCtx, st, log, err)
	}
	log.Info("Run completed", "events", st.total())
	return &ExecutionResult{Status: models.RunStatusCompleted, Result: result, Statistics: st.stats}
}

// runAgent invokes one agent and streams its chunks into events. Dispatch
// tool calls recurse into the selected sub-agent; the returned string is the
// agent's final text.
func (e *Executor) runAgent(ctx, emitCtx context.Context, st *runState, h *models.Hierarchy, ref adapter.AgentRef, input string) (string, error) {
	src := sourceFor(ref)

	chunks, err := e.invoker.Invoke(ctx, ref, input)
	if err != nil {
		return "", fmt.Errorf("failed to invoke agent %s: %w", ref.Name, err)
	}

	var accumulated strings.Builder
	var finalText string
	haveFinal := false

	for chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		switch c := chunk.(type) {
		case *adapter.TextChunk:
			accumulated.WriteString(c.Delta)
			if err := st.emit(emitCtx, src, stream.CategoryLLM, stream.ActionStream, map[string]any{
				"delta": c.Delta,
			}); err != nil {
				return "", err
			}
		case *adapter.ReasoningChunk:
			if err := st.emit(emitCtx, src, stream.CategoryLLM, stream.ActionReasoning, map[string]any{
				"delta": c.Delta,
			}); err != nil {
				return "", err
			}
		case *adapter.ToolCallChunk:
			if err := st.emit(emitCtx, src, stream.CategoryLLM, stream.ActionToolCall, map[string]any{
				"call_id":   c.CallID,
				"name":      c.Name,
				"arguments": c.Arguments,
			}); err != nil {
				return "", err
			}
			if c.Name == adapter.ToolDispatchTeam || c.Name == adapter.ToolDispatchWorker {
				result, err := e.dispatch(ctx, emitCtx, st, h, ref, c)
				if err != nil {
					return "", err
				}
				// Synthetic tool result: the sub-agent's final text flows
				// back into the parent's stream.
				if err := st.emit(emitCtx, src, stream.CategoryLLM, stream.ActionToolResult, map[string]any{
					"call_id": c.CallID,
					"result":  result,
				}); err != nil {
					return "", err
				}
			}
		case *adapter.ToolResultChunk:
			if err := st.emit(emitCtx, src, stream.CategoryLLM, stream.ActionToolResult, map[string]any{
				"call_id": c.CallID,
				"result":  c.Result,
			}); err != nil {
				return "", err
			}
		case *adapter.FinalChunk:
			finalText = c.Text
			haveFinal = true
		case *adapter.ErrorChunk:
			return "", fmt.Errorf("agent %s failed: %s", ref.Name, c.Message)
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !haveFinal {
		finalText = accumulated.String()
	}
	return finalText, nil
}

// dispatch resolves a dispatch tool call against the hierarchy, emits the
// dispatch event, and executes the selected sub-agent.
func (e *Executor) dispatch(ctx, emitCtx context.Context, st *runState, h *models.Hierarchy, parent adapter.AgentRef, call *adapter.ToolCallChunk) (string, error) {
	var args adapter.DispatchArgs
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		return "", fmt.Errorf("invalid %s arguments: %w", call.Name, err)
	}

	parentSrc := sourceFor(parent)

	switch call.Name {
	case adapter.ToolDispatchTeam:
		if parent.Type != models.AgentTypeGlobalSupervisor {
			return "", fmt.Errorf("%s called by %s agent %s", call.Name, parent.Type, parent.Name)
		}
		team := h.Team(args.Name)
		if team == nil {
			return "", fmt.Errorf("unknown team %q", args.Name)
		}
		if err := st.emit(emitCtx, parentSrc, stream.CategoryDispatch, stream.ActionTeam, map[string]any{
			"team": team.Name,
			"task": args.Task,
		}); err != nil {
			return "", err
		}
		ref := adapter.AgentRef{
			RunID: parent.RunID,
			ID:    team.ID,
			Name:  team.Name,
			Role:  team.Role,
			Type:  models.AgentTypeTeamSupervisor,
			Agent: team.Agent,
			Team:  team.Name,
		}
		return e.runAgent(ctx, emitCtx, st, h, ref, args.Task)

	case adapter.ToolDispatchWorker:
		if parent.Type != models.AgentTypeTeamSupervisor {
			return "", fmt.Errorf("%s called by %s agent %s", call.Name, parent.Type, parent.Name)
		}
		team := h.Team(parent.Team)
		if team == nil {
			return "", fmt.Errorf("unknown team %q", parent.Team)
		}
		worker := team.Worker(args.Name)
		if worker == nil {
			return "", fmt.Errorf("unknown worker %q in team %q", args.Name, team.Name)
		}
		if err := st.emit(emitCtx, parentSrc, stream.CategoryDispatch, stream.ActionWorker, map[string]any{
			"team":   team.Name,
			"worker": worker.Name,
			"task":   args.Task,
		}); err != nil {
			return "", err
		}
		ref := adapter.AgentRef{
			RunID: parent.RunID,
			ID:    worker.ID,
			Name:  worker.Name,
			Role:  worker.Role,
			Type:  models.AgentTypeWorker,
			Agent: worker.Agent,
			Team:  team.Name,
		}
		return e.runAgent(ctx, emitCtx, st, h, ref, args.Task)
	}
	return "", fmt.Errorf("unknown dispatch tool %q", call.Name)
}

// finishCancelled closes the run with lifecycle.cancelled as the only
// terminal event.
func (e *Executor) finishCancelled(emitCtx context.Context, st *runState, log *slog.Logger) *ExecutionResult {
	if err := st.emit(emitCtx, nil, stream.CategoryLifecycle, stream.ActionCancelled, nil); err != nil {
		log.Error("Failed to emit cancellation event", "error", err)
	}
	log.Info("Run cancelled", "events", st.total())
	return &ExecutionResult{Status: models.RunStatusCancelled, Err: context.Canceled, Statistics: st.stats}
}

// finishFailed closes the run with system.error followed by
// lifecycle.failed. Both emissions are best-effort: a run whose store is
// failing still must reach a terminal state.
func (e *Executor) finishFailed(emitCtx context.Context, st *runState, log *slog.Logger, cause error) *ExecutionResult {
	log.Error("Run failed", "error", cause)
	if err := st.emit(emitCtx, nil, stream.CategorySystem, stream.ActionError, map[string]any{
		"message": cause.Error(),
	}); err != nil {
		log.Error("Failed to emit error event", "error", err)
	}
	if err := st.emit(emitCtx, nil, stream.CategoryLifecycle, stream.ActionFailed, map[string]any{
		"error": cause.Error(),
	}); err != nil {
		log.Error("Failed to emit failure event", "error", err)
	}
	return &ExecutionResult{Status: models.RunStatusFailed, Err: cause, Statistics: st.stats}
}

// runState tracks per-run emission statistics.
type runState struct {
	sink  *stream.Sink
	runID string
	stats map[string]int
}

func (s *runState) emit(ctx context.Context, src *stream.Source, cat stream.Category, act stream.Action, data map[string]any) error {
	_, err := s.sink.Emit(ctx, s.runID, &stream.Envelope{
		Source:   src,
		Category: cat,
		Action:   act,
		Data:     data,
	})
	if err == nil {
		s.stats[string(cat)]++
	}
	return err
}

func (s *runState) total() int {
	n := 0
	for _, c := range s.stats {
		n += c
	}
	return n
}

func sourceFor(ref adapter.AgentRef) *stream.Source {
	src := &stream.Source{
		AgentID:   ref.ID,
		AgentType: ref.Type,
		AgentName: ref.Name,
	}
	if ref.Team != "" {
		team := ref.Team
		src.TeamName = &team
	}
	return src
}

func canceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
