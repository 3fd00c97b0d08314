package bootstrap

import (
	"context"
	"log/slog"

	"github.com/renlow/LinkForge_Go/internal/database"
	"github.com/renlow/LinkForge_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	DBPool database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in the correct order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Database pool (close connections once nothing can issue queries)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabasePool)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
