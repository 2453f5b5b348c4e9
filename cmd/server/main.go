package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/surpluslink/surpluslink/internal/config"
	"github.com/surpluslink/surpluslink/internal/logging"
	"github.com/surpluslink/surpluslink/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()))

	// Create a new server instance.
	s, err := server.New(cfg, afero.NewOsFs())
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
