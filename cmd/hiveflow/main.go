// Hiveflow run executor server — provides the HTTP API, manages the run
// worker pool, and orchestrates hierarchical agent execution.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hiveflow/hiveflow/pkg/adapter"
	"github.com/hiveflow/hiveflow/pkg/api"
	"github.com/hiveflow/hiveflow/pkg/cleanup"
	"github.com/hiveflow/hiveflow/pkg/config"
	"github.com/hiveflow/hiveflow/pkg/database"
	"github.com/hiveflow/hiveflow/pkg/runner"
	"github.com/hiveflow/hiveflow/pkg/services"
	"github.com/hiveflow/hiveflow/pkg/stream"
	"github.com/hiveflow/hiveflow/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting hiveflow",
		"version", version.Full(),
		"bind_addr", cfg.Server.BindAddr,
		"workers", cfg.Runner.WorkerCount)

	ctx := context.Background()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Services
	hierarchyService := services.NewHierarchyService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Event pipeline
	registry := stream.NewRegistry(eventService, cfg.Stream.SubscriberBuffer)
	sink := stream.NewSink(eventService, registry)

	// Agent runner client.
	// Note: grpc.NewClient uses lazy dialing; the connection happens on the
	// first Invoke call.
	invoker, err := adapter.NewGRPCInvoker(cfg.Server.AgentRunnerAddr)
	if err != nil {
		slog.Error("Failed to initialize agent runner client", "addr", cfg.Server.AgentRunnerAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := invoker.Close(); err != nil {
			slog.Error("Error closing agent runner client", "error", err)
		}
	}()
	slog.Info("Agent runner client initialized", "addr", cfg.Server.AgentRunnerAddr)

	// Worker pool (started before the HTTP server)
	executor := runner.NewExecutor(invoker, sink, runService, hierarchyService)
	manager := runner.NewManager(cfg.Runner, runService, hierarchyService, executor, registry, sink)
	manager.Start(ctx)

	// Retention
	cleanupService := cleanup.NewService(cfg.Retention, runService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// HTTP server
	server := api.NewServer(cfg.Server, dbClient, runService, hierarchyService, eventService, registry, manager)
	e := server.Echo()
	httpServer := &http.Server{
		Addr:              cfg.Server.BindAddr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: drain active runs, then stop the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Runner.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		manager.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Run manager stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs remain running in the store")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
