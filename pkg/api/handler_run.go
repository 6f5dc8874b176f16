package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hiveflow/hiveflow/pkg/models"
)

// startRunHandler handles POST /runs/start.
func (s *Server) startRunHandler(c *echo.Context) error {
	var req models.StartRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HierarchyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hierarchy_id is required")
	}
	if req.Task == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task is required")
	}

	run, err := s.manager.StartRun(c.Request().Context(), req.HierarchyID, req.Task)
	if err != nil {
		return mapServiceError(err)
	}

	return ok(c, &StartRunResponse{
		ID:        run.ID,
		Status:    string(run.Status),
		StreamURL: fmt.Sprintf("%s/runs/stream", s.cfg.APIBase),
		CreatedAt: run.CreatedAt,
	})
}

// listRunsHandler handles POST /runs/list.
func (s *Server) listRunsHandler(c *echo.Context) error {
	var req ListRunsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Status != "" && !validRunStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+req.Status)
	}

	page, err := s.runs.ListRuns(c.Request().Context(), models.RunListFilter{
		HierarchyID: req.HierarchyID,
		Status:      models.RunStatus(req.Status),
	}, req.Page, req.Size)
	if err != nil {
		return mapServiceError(err)
	}
	return ok(c, page)
}

// getRunHandler handles POST /runs/get.
func (s *Server) getRunHandler(c *echo.Context) error {
	var req RunIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RunID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run_id is required")
	}

	run, err := s.runs.GetRun(c.Request().Context(), req.RunID)
	if err != nil {
		return mapServiceError(err)
	}
	return ok(c, run)
}

// cancelRunHandler handles POST /runs/cancel. Cancellation is
// fire-and-forget: success means the request was accepted, not that the run
// has stopped.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	var req RunIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RunID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run_id is required")
	}
	ctx := c.Request().Context()

	run, err := s.runs.GetRun(ctx, req.RunID)
	if err != nil {
		return mapServiceError(err)
	}
	if !run.Status.Cancellable() {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("run is not cancellable in status %s", run.Status))
	}

	found, err := s.manager.CancelRun(ctx, req.RunID)
	if err != nil {
		return mapServiceError(err)
	}
	if !found {
		// Lost the race: the run reached a terminal state between the status
		// check and the cancel request.
		run, err = s.runs.GetRun(ctx, req.RunID)
		if err != nil {
			return mapServiceError(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("run is not cancellable in status %s", run.Status))
	}

	return ok(c, &CancelResponse{
		RunID:   req.RunID,
		Message: "cancellation requested",
	})
}

// runEventsHandler handles POST /runs/events: the full historical dump.
func (s *Server) runEventsHandler(c *echo.Context) error {
	var req RunIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RunID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run_id is required")
	}
	ctx := c.Request().Context()

	run, err := s.runs.GetRun(ctx, req.RunID)
	if err != nil {
		return mapServiceError(err)
	}
	events, err := s.events.ListByRun(ctx, req.RunID)
	if err != nil {
		return mapServiceError(err)
	}

	return ok(c, &EventsResponse{
		RunID:  run.ID,
		Status: string(run.Status),
		Events: events,
	})
}

func validRunStatus(v string) bool {
	switch models.RunStatus(v) {
	case models.RunStatusPending, models.RunStatusRunning,
		models.RunStatusCompleted, models.RunStatusFailed, models.RunStatusCancelled:
		return true
	}
	return false
}
