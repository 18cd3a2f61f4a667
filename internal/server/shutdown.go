package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// signalContext is canceled by an interrupt or terminate signal.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Shutdown stops accepting requests, then stops the modules.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server...")
	httpErr := s.E.Shutdown(ctx)
	modErr := s.shutdownModules(ctx)
	return errors.Join(httpErr, modErr)
}
