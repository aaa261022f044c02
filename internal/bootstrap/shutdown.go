package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FreshMeal_Go/internal/repository"
	"github.com/osse101/FreshMeal_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  repository.Store
}

// GracefulShutdown stops the HTTP server first so no request is still using
// the store when it closes. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
