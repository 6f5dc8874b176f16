package adapter

import (
	"context"
	"fmt"
	"sync"
)

// Script is a canned chunk sequence for one agent definition.
type Script struct {
	// Chunks are emitted in order, one per step.
	Chunks []Chunk
	// Err, when set, fails the Invoke call itself instead of streaming.
	Err error
}

// ScriptInvoker is a deterministic Invoker for tests. Each agent definition
// reference maps to a fixed chunk sequence. An optional Gate channel paces
// emission: when set, one value must be received before each chunk, letting
// tests cancel mid-stream at an exact point.
type ScriptInvoker struct {
	Gate <-chan struct{}

	mu      sync.Mutex
	scripts map[string]Script
	invoked []AgentRef
}

// NewScriptInvoker creates an empty scripted invoker.
func NewScriptInvoker() *ScriptInvoker {
	return &ScriptInvoker{scripts: make(map[string]Script)}
}

// Script registers the chunk sequence for an agent definition reference.
func (s *ScriptInvoker) Script(agent string, chunks ...Chunk) *ScriptInvoker {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts[agent] = Script{Chunks: chunks}
	return s
}

// Fail makes Invoke for the given agent definition return err.
func (s *ScriptInvoker) Fail(agent string, err error) *ScriptInvoker {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts[agent] = Script{Err: err}
	return s
}

// Invoked returns the agents invoked so far, in order.
func (s *ScriptInvoker) Invoked() []AgentRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AgentRef, len(s.invoked))
	copy(out, s.invoked)
	return out
}

// Invoke replays the registered script for agent.Agent.
func (s *ScriptInvoker) Invoke(ctx context.Context, agent AgentRef, _ string) (<-chan Chunk, error) {
	s.mu.Lock()
	sc, ok := s.scripts[agent.Agent]
	s.invoked = append(s.invoked, agent)
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("no script registered for agent %q", agent.Agent)
	}
	if sc.Err != nil {
		return nil, sc.Err
	}

	ch := make(chan Chunk)
	go func() {
		defer close(ch)
		for _, chunk := range sc.Chunks {
			if s.Gate != nil {
				select {
				case <-s.Gate:
				case <-ctx.Done():
					return
				}
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Close implements Invoker.
func (s *ScriptInvoker) Close() error { return nil }
