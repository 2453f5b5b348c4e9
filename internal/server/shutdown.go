package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context cancelled on interrupt or terminate.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		s.E.Shutdown(ctx),
		s.Services.Bus.Close(),
	)
}
