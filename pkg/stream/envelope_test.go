package stream

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/models"
)

func TestEnvelopeName(t *testing.T) {
	ev := &Envelope{Category: CategoryLLM, Action: ActionToolCall}
	assert.Equal(t, "llm.tool_call", ev.Name())
}

func TestEncodeSSE(t *testing.T) {
	team := "research"
	ev := &Envelope{
		ID:        "ev-1",
		RunID:     "run-1",
		Sequence:  7,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC),
		Source: &Source{
			AgentID:   "w-1",
			AgentType: models.AgentTypeWorker,
			AgentName: "analyst",
			TeamName:  &team,
		},
		Category: CategoryLLM,
		Action:   ActionStream,
		Data:     map[string]any{"delta": "hello"},
	}

	frame, err := ev.EncodeSSE()
	require.NoError(t, err)

	text := string(frame)
	require.True(t, strings.HasPrefix(text, "event: llm.stream\ndata: "), text)
	require.True(t, strings.HasSuffix(text, "\n\n"), text)

	payload := strings.TrimSuffix(strings.TrimPrefix(text, "event: llm.stream\ndata: "), "\n\n")
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))

	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, float64(7), decoded["sequence"])
	assert.Equal(t, "2026-01-02T03:04:05.678Z", decoded["timestamp"])
	assert.Equal(t, map[string]any{"category": "llm", "action": "stream"}, decoded["event"])
	assert.Equal(t, map[string]any{"delta": "hello"}, decoded["data"])
	// The id is wire-internal and stays out of the SSE payload.
	assert.NotContains(t, decoded, "id")

	src, ok := decoded["source"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "worker", src["agent_type"])
	assert.Equal(t, "research", src["team_name"])
}

func TestMarshalJSONIncludesID(t *testing.T) {
	ev := &Envelope{
		ID:        "ev-9",
		RunID:     "run-1",
		Sequence:  1,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Category:  CategoryLifecycle,
		Action:    ActionStarted,
	}

	payload, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "ev-9", decoded["id"])
}

func TestTimestampNormalizedToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	ev := &Envelope{
		Timestamp: time.Date(2026, 1, 2, 5, 4, 5, 0, loc),
		Category:  CategorySystem,
		Action:    ActionTopology,
	}

	frame, err := ev.EncodeSSE()
	require.NoError(t, err)
	assert.Contains(t, string(frame), `"timestamp":"2026-01-02T03:04:05.000Z"`)
}
