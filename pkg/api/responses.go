package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hiveflow/hiveflow/pkg/database"
	"github.com/hiveflow/hiveflow/pkg/runner"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// Response is the uniform envelope all endpoints answer with.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ok writes a successful envelope.
func ok(c *echo.Context, data any) error {
	return c.JSON(http.StatusOK, &Response{Success: true, Data: data})
}

// StartRunResponse is returned by POST /runs/start.
type StartRunResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	StreamURL string    `json:"stream_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CancelResponse is returned by POST /runs/cancel.
type CancelResponse struct {
	RunID   string `json:"run_id"`
	Message string `json:"message"`
}

// EventsResponse is returned by POST /runs/events.
type EventsResponse struct {
	RunID  string             `json:"run_id"`
	Status string             `json:"status"`
	Events []*stream.Envelope `json:"events"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *runner.PoolHealth     `json:"worker_pool,omitempty"`
}
