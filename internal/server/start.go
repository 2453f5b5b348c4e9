package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/surpluslink/surpluslink/internal/theme"
)

const shutdownTimeout = 10 * time.Second

// StartBackground launches the event subscribers, the theme hub and, when
// enabled, the theme file watcher. They stop when ctx is cancelled.
func (s *Server) StartBackground(ctx context.Context) error {
	svc := s.Services

	go svc.ThemeHub.Run(ctx)

	if err := svc.Activity.Start(ctx, svc.Bus); err != nil {
		return fmt.Errorf("start activity feed: %w", err)
	}
	if err := svc.ThemeSync.Start(ctx, svc.Bus); err != nil {
		return fmt.Errorf("start theme sync: %w", err)
	}

	if s.Cfg.GetThemeWatch() {
		go func() {
			if err := theme.Watch(ctx, svc.ThemeStore.Path(), svc.Theme); err != nil {
				s.logger.Warn("Theme watcher stopped", "error", err)
			}
		}()
	}
	return nil
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.StartBackground(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.Cfg.GetServerAddr(), "env", s.Cfg.GetAppEnv())
		if err := s.E.Start(s.Cfg.GetServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	return s.shutdown()
}
