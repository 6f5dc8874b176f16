// Package adapter defines the agent invocation capability consumed by the
// run executor: given an agent definition and input text, an Invoker yields
// a lazy, finite, non-restartable sequence of chunks. The production
// implementation calls the agent runner service over gRPC; tests use the
// scripted invoker.
package adapter

import (
	"context"

	"github.com/hiveflow/hiveflow/pkg/models"
)

// Built-in dispatch tools surfaced by supervisor agents. A dispatch_team
// tool call from the global supervisor selects a team; a dispatch_worker
// call from a team supervisor selects a worker.
const (
	ToolDispatchTeam   = "dispatch_team"
	ToolDispatchWorker = "dispatch_worker"
)

// AgentRef identifies the agent being invoked and the run it is invoked
// for. Agent is the adapter-side definition reference from the hierarchy;
// Team is set for team supervisors and workers.
type AgentRef struct {
	RunID string
	ID    string
	Name  string
	Role  string
	Type  models.AgentType
	Agent string
	Team  string
}

// Invoker produces a stream of chunks from an agent. The returned channel is
// closed when the sequence ends; cancelling the context ends the sequence
// promptly, in which case no Final chunk is required. Errors from the
// underlying transport are delivered in-band as ErrorChunk values.
type Invoker interface {
	Invoke(ctx context.Context, agent AgentRef, input string) (<-chan Chunk, error)

	// Close releases the invoker's resources.
	Close() error
}

// Chunk is the interface for all streaming chunk variants.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

// Chunk type constants.
const (
	ChunkTypeText       ChunkType = "text"
	ChunkTypeReasoning  ChunkType = "reasoning"
	ChunkTypeToolCall   ChunkType = "tool_call"
	ChunkTypeToolResult ChunkType = "tool_result"
	ChunkTypeFinal      ChunkType = "final"
	ChunkTypeError      ChunkType = "error"
)

// TextChunk is a delta of the agent's output text.
type TextChunk struct{ Delta string }

// ReasoningChunk is a delta of the agent's inner reasoning.
type ReasoningChunk struct{ Delta string }

// ToolCallChunk signals the agent wants to call a tool.
type ToolCallChunk struct {
	CallID    string
	Name      string
	Arguments string // JSON
}

// ToolResultChunk carries a tool's result back into the stream.
type ToolResultChunk struct {
	CallID string
	Result string // JSON
}

// FinalChunk carries the accumulated final text and is the last chunk of a
// completed sequence.
type FinalChunk struct{ Text string }

// ErrorChunk signals a failure inside the adapter or the agent itself.
type ErrorChunk struct{ Message string }

func (c *TextChunk) chunkType() ChunkType       { return ChunkTypeText }
func (c *ReasoningChunk) chunkType() ChunkType  { return ChunkTypeReasoning }
func (c *ToolCallChunk) chunkType() ChunkType   { return ChunkTypeToolCall }
func (c *ToolResultChunk) chunkType() ChunkType { return ChunkTypeToolResult }
func (c *FinalChunk) chunkType() ChunkType      { return ChunkTypeFinal }
func (c *ErrorChunk) chunkType() ChunkType      { return ChunkTypeError }

// DispatchArgs is the argument shape of the built-in dispatch tools.
type DispatchArgs struct {
	Name string `json:"name"`
	Task string `json:"task"`
}
