// Package api exposes the HTTP facade: run control endpoints, SSE and
// WebSocket event streaming, hierarchy management, and health.
package api

import (
	"context"

	echo "github.com/labstack/echo/v5"

	"github.com/hiveflow/hiveflow/pkg/config"
	"github.com/hiveflow/hiveflow/pkg/database"
	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/runner"
	"github.com/hiveflow/hiveflow/pkg/stream"
)

// RunManager is the run control surface the API depends on.
// Implemented by runner.Manager.
type RunManager interface {
	StartRun(ctx context.Context, hierarchyID, task string) (*models.Run, error)
	CancelRun(ctx context.Context, runID string) (bool, error)
	Health(ctx context.Context) *runner.PoolHealth
}

// RunReader is the run query surface. Implemented by services.RunService.
type RunReader interface {
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, filter models.RunListFilter, page, size int) (*models.Page, error)
}

// HierarchyStore is the hierarchy repository surface.
// Implemented by services.HierarchyService.
type HierarchyStore interface {
	CreateHierarchy(ctx context.Context, req models.CreateHierarchyRequest) (*models.Hierarchy, error)
	GetHierarchy(ctx context.Context, id string) (*models.Hierarchy, error)
	ListHierarchies(ctx context.Context, page, size int) (*models.Page, error)
	DeleteHierarchy(ctx context.Context, id string) error
}

// EventReader reads back persisted run events.
// Implemented by services.EventService.
type EventReader interface {
	ListByRun(ctx context.Context, runID string) ([]*stream.Envelope, error)
}

// Server holds the handlers' dependencies.
type Server struct {
	cfg         *config.ServerConfig
	dbClient    *database.Client
	runs        RunReader
	hierarchies HierarchyStore
	events      EventReader
	registry    *stream.Registry
	manager     RunManager
}

// NewServer creates the API server. dbClient may be nil in tests; the health
// endpoint then skips the database check.
func NewServer(cfg *config.ServerConfig, dbClient *database.Client, runs RunReader, hierarchies HierarchyStore, events EventReader, registry *stream.Registry, manager RunManager) *Server {
	return &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		runs:        runs,
		hierarchies: hierarchies,
		events:      events,
		registry:    registry,
		manager:     manager,
	}
}

// Echo builds the router with all routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(securityHeaders())

	g := e.Group(s.cfg.APIBase)

	g.POST("/hierarchies/create", s.createHierarchyHandler)
	g.POST("/hierarchies/list", s.listHierarchiesHandler)
	g.POST("/hierarchies/get", s.getHierarchyHandler)
	g.POST("/hierarchies/delete", s.deleteHierarchyHandler)

	g.POST("/runs/start", s.startRunHandler)
	g.POST("/runs/list", s.listRunsHandler)
	g.POST("/runs/get", s.getRunHandler)
	g.POST("/runs/cancel", s.cancelRunHandler)
	g.POST("/runs/events", s.runEventsHandler)
	g.POST("/runs/stream", s.streamRunHandler)
	g.GET("/runs/stream/ws", s.streamRunWSHandler)

	e.GET("/health", s.healthHandler)

	return e
}
