package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

func TestStreamRunReplaysAndEndsOnClose(t *testing.T) {
	ts := newTestServer(t)
	seedRun(ts, "run-1", models.RunStatusRunning)

	_, err := ts.registry.Open(context.Background(), "run-1")
	require.NoError(t, err)
	sink := stream.NewSink(ts.store, ts.registry)
	for _, act := range []stream.Action{stream.ActionStarted, stream.ActionCompleted} {
		_, err := sink.Emit(context.Background(), "run-1", &stream.Envelope{
			Category: stream.CategoryLifecycle,
			Action:   act,
		})
		require.NoError(t, err)
	}

	// The handler holds the stream open until the hub closes.
	go func() {
		time.Sleep(100 * time.Millisecond)
		ts.registry.Close("run-1")
	}()

	rec := ts.postRaw(t, "/runs/stream", map[string]string{"run_id": "run-1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	frames := strings.Split(strings.TrimSuffix(body, "\n\n"), "\n\n")
	require.Len(t, frames, 2)
	assert.True(t, strings.HasPrefix(frames[0], "event: lifecycle.started\ndata: "), frames[0])
	assert.True(t, strings.HasPrefix(frames[1], "event: lifecycle.completed\ndata: "), frames[1])
}

func TestStreamRunUnknownRun(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/runs/stream", map[string]string{"run_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", env.Error)
}

func TestStreamRunEnded(t *testing.T) {
	ts := newTestServer(t)
	// Terminal run with no live hub: the stream is over, use /runs/events.
	seedRun(ts, "run-1", models.RunStatusCompleted)

	rec, env := ts.post(t, "/runs/stream", map[string]string{"run_id": "run-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "run ended", env.Error)
}

func TestStreamRunNoLiveHub(t *testing.T) {
	ts := newTestServer(t)
	// Run claims to be live but the hub is gone (restart window).
	seedRun(ts, "run-1", models.RunStatusRunning)

	rec, env := ts.post(t, "/runs/stream", map[string]string{"run_id": "run-1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no live stream for run", env.Error)
}

func TestStreamRunMissingRunID(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/runs/stream", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "run_id is required", env.Error)
}
