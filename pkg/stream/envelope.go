// Package stream implements the run event pipeline: the canonical event
// envelope, per-run broadcast hubs with replay-then-live subscribers, the
// process-wide hub registry, and the sink that sequences, persists, and
// publishes events.
package stream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hiveflow/hiveflow/pkg/models"
)

// Category classifies an event.
type Category string

// Event categories.
const (
	CategoryLifecycle Category = "lifecycle"
	CategoryLLM       Category = "llm"
	CategoryDispatch  Category = "dispatch"
	CategorySystem    Category = "system"
)

// Action is the event action within a category. The vocabulary is closed:
//
//	lifecycle: started, completed, failed, cancelled
//	llm:       stream, reasoning, tool_call, tool_result
//	dispatch:  team, worker
//	system:    topology, warning, error
type Action string

// Event actions.
const (
	ActionStarted   Action = "started"
	ActionCompleted Action = "completed"
	ActionFailed    Action = "failed"
	ActionCancelled Action = "cancelled"

	ActionStream     Action = "stream"
	ActionReasoning  Action = "reasoning"
	ActionToolCall   Action = "tool_call"
	ActionToolResult Action = "tool_result"

	ActionTeam   Action = "team"
	ActionWorker Action = "worker"

	ActionTopology Action = "topology"
	ActionWarning  Action = "warning"
	ActionError    Action = "error"
)

// Source identifies the agent an event originated from.
type Source struct {
	AgentID   string           `json:"agent_id"`
	AgentType models.AgentType `json:"agent_type"`
	AgentName string           `json:"agent_name"`
	TeamName  *string          `json:"team_name"`
}

// Classification is the category/action pair of an event.
type Classification struct {
	Category Category `json:"category"`
	Action   Action   `json:"action"`
}

// Envelope is the canonical event record. Sequence numbers are strictly
// increasing per run, starting at 1, with no gaps; persisted order by
// sequence equals emission order.
type Envelope struct {
	ID        string
	RunID     string
	Sequence  int64
	Timestamp time.Time
	Source    *Source
	Category  Category
	Action    Action
	Data      map[string]any
}

// Name returns the "<category>.<action>" event name used on the wire.
func (e *Envelope) Name() string {
	return string(e.Category) + "." + string(e.Action)
}

// wireTime is the ISO-8601 UTC millisecond timestamp format.
const wireTime = "2006-01-02T15:04:05.000Z"

type envelopeJSON struct {
	ID        string         `json:"id,omitempty"`
	RunID     string         `json:"run_id"`
	Timestamp string         `json:"timestamp"`
	Sequence  int64          `json:"sequence"`
	Source    *Source        `json:"source"`
	Event     Classification `json:"event"`
	Data      map[string]any `json:"data"`
}

func (e *Envelope) wire(includeID string) envelopeJSON {
	return envelopeJSON{
		ID:        includeID,
		RunID:     e.RunID,
		Timestamp: e.Timestamp.UTC().Format(wireTime),
		Sequence:  e.Sequence,
		Source:    e.Source,
		Event:     Classification{Category: e.Category, Action: e.Action},
		Data:      e.Data,
	}
}

// MarshalJSON renders the envelope in the wire shape, including the id.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.wire(e.ID))
}

// EncodeSSE renders the envelope as one SSE frame:
//
//	event: <category>.<action>
//	data: {...}
//
// terminated by a blank line. The id field is omitted from the data payload.
func (e *Envelope) EncodeSSE() ([]byte, error) {
	payload, err := json.Marshal(e.wire(""))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s seq %d: %w", e.Name(), e.Sequence, err)
	}
	var buf bytes.Buffer
	buf.Grow(len(payload) + 64)
	buf.WriteString("event: ")
	buf.WriteString(e.Name())
	buf.WriteString("\ndata: ")
	buf.Write(payload)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
