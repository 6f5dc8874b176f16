package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hiveflow/hiveflow/pkg/stream"
)

// streamRunHandler handles POST /runs/stream: a Server-Sent Events stream
// that replays the run's persisted events and then follows live. The stream
// ends after the terminal lifecycle event, when the client disconnects, or
// when the subscriber is dropped as a slow consumer.
func (s *Server) streamRunHandler(c *echo.Context) error {
	var req RunIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RunID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run_id is required")
	}
	ctx := c.Request().Context()

	sub, err := s.subscribeRun(ctx, req.RunID)
	if err != nil {
		return err
	}
	hub := s.registry.Get(req.RunID)
	defer func() {
		if hub != nil {
			hub.Unsubscribe(sub)
		} else {
			sub.Close()
		}
	}()

	resp := c.Response()
	h := resp.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for {
		ev, err := sub.Next(ctx)
		if err != nil {
			// Closed hub or departed client; either way the stream is over.
			return nil
		}
		frame, err := ev.EncodeSSE()
		if err != nil {
			slog.Error("Failed to encode event", "run_id", req.RunID, "error", err)
			continue
		}
		if _, err := resp.Write(frame); err != nil {
			return nil
		}
		_ = http.NewResponseController(resp).Flush()
	}
}

// subscribeRun attaches a subscriber to the run's hub, translating the
// registry state into the API error taxonomy: unknown run 404, terminated
// run 400, live run without a hub 404.
func (s *Server) subscribeRun(ctx context.Context, runID string) (*stream.Subscriber, error) {
	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	hub := s.registry.Get(runID)
	if hub == nil {
		if run.Status.Terminal() {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "run ended")
		}
		return nil, echo.NewHTTPError(http.StatusNotFound, "no live stream for run")
	}

	sub, err := hub.Subscribe(ctx)
	if err != nil {
		if errors.Is(err, stream.ErrHubClosed) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "run ended")
		}
		return nil, mapServiceError(err)
	}
	return sub, nil
}
