package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/avatarkit/internal/app"
	"github.com/nfrund/avatarkit/internal/config"
	"github.com/nfrund/avatarkit/internal/logging"
)

// Version can be set at build time.
// Example: go build -ldflags "-X 'main.Version=1.0.0'"
var Version = "dev"

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, Version); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
