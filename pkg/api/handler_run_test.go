package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

func seedRun(ts *testServer, id string, status models.RunStatus) *models.Run {
	run := &models.Run{
		ID:          id,
		HierarchyID: "h-1",
		Task:        "investigate",
		Status:      status,
		CreatedAt:   time.Now(),
	}
	ts.runs.runs[id] = run
	return run
}

func TestStartRunEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/runs/start", map[string]string{
		"hierarchy_id": "h-1",
		"task":         "investigate the outage",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var data StartRunResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "run-1", data.ID)
	assert.Equal(t, "pending", data.Status)
	assert.Equal(t, "/api/executor/v1/runs/stream", data.StreamURL)

	require.NotNil(t, ts.manager.started)
	assert.Equal(t, "investigate the outage", ts.manager.started.Task)
}

func TestStartRunValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
		want string
	}{
		{"missing hierarchy", map[string]string{"task": "x"}, "hierarchy_id is required"},
		{"missing task", map[string]string{"hierarchy_id": "h-1"}, "task is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := ts.post(t, "/runs/start", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tc.want, env.Error)
		})
	}
}

func TestGetRunEndpoint(t *testing.T) {
	ts := newTestServer(t)
	seedRun(ts, "run-1", models.RunStatusRunning)

	rec, env := ts.post(t, "/runs/get", map[string]string{"run_id": "run-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var run models.Run
	require.NoError(t, json.Unmarshal(env.Data, &run))
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, models.RunStatusRunning, run.Status)
}

func TestGetRunNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/runs/get", map[string]string{"run_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "resource not found", env.Error)
}

func TestListRunsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	seedRun(ts, "run-1", models.RunStatusCompleted)
	seedRun(ts, "run-2", models.RunStatusPending)

	rec, env := ts.post(t, "/runs/list", map[string]any{"page": 1, "size": 20, "status": "pending"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var page models.Page
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestListRunsRejectsBadStatus(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/runs/list", map[string]any{"status": "exploded"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid status: exploded", env.Error)
}

func TestCancelRunEndpoint(t *testing.T) {
	ts := newTestServer(t)
	seedRun(ts, "run-1", models.RunStatusRunning)

	rec, env := ts.post(t, "/runs/cancel", map[string]string{"run_id": "run-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var data CancelResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "run-1", data.RunID)
	assert.Equal(t, "cancellation requested", data.Message)
	assert.Equal(t, []string{"run-1"}, ts.manager.cancelled)
}

func TestCancelRunAlreadyTerminal(t *testing.T) {
	ts := newTestServer(t)
	seedRun(ts, "run-1", models.RunStatusCompleted)

	rec, env := ts.post(t, "/runs/cancel", map[string]string{"run_id": "run-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "run is not cancellable in status completed", env.Error)
	assert.Empty(t, ts.manager.cancelled)
}

func TestCancelRunLosesRace(t *testing.T) {
	ts := newTestServer(t)
	// Cancellable at the status check, but the manager reports no
	// cancellable run: it terminated in between.
	run := seedRun(ts, "run-1", models.RunStatusRunning)
	ts.manager.cancelOK = false
	run.Status = models.RunStatusRunning

	rec, env := ts.post(t, "/runs/cancel", map[string]string{"run_id": "run-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "run is not cancellable in status")
}

func TestRunEventsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	seedRun(ts, "run-1", models.RunStatusCompleted)
	for i := 1; i <= 3; i++ {
		require.NoError(t, ts.store.Insert(context.Background(), &stream.Envelope{
			RunID:    "run-1",
			Sequence: int64(i),
			Category: stream.CategoryLLM,
			Action:   stream.ActionStream,
		}))
	}

	rec, env := ts.post(t, "/runs/events", map[string]string{"run_id": "run-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var data EventsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "run-1", data.RunID)
	assert.Equal(t, "completed", data.Status)
	require.Len(t, data.Events, 3)
	assert.Equal(t, int64(1), data.Events[0].Sequence)
}

func TestRunEventsUnknownRun(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/runs/events", map[string]string{"run_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}
