// Package theme holds the process-wide light/dark preference.
package theme

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/events"
	"github.com/surpluslink/surpluslink/internal/pubsub"
)

// Service is the theme holder. Toggle is the only writer path.
type Service struct {
	// writeMu serializes Toggle and Reload so the stored value and the
	// published order follow the in-memory order.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	current   domain.Theme
	store     Store
	publisher pubsub.Publisher
	logger    *slog.Logger
}

// NewService initializes the theme from the stored preference. A store that
// cannot be read falls back to the default theme; it never fails startup.
// publisher may be nil.
func NewService(ctx context.Context, store Store, publisher pubsub.Publisher) *Service {
	svc := &Service{
		current:   domain.DefaultTheme,
		store:     store,
		publisher: publisher,
		logger:    slog.Default().With("service", "theme"),
	}

	t, err := store.Load(ctx)
	if err != nil {
		svc.logger.Warn("Could not load stored theme, using default", "default", domain.DefaultTheme, "error", err)
	} else {
		svc.current = t
	}
	svc.logger.Info("Theme initialized", "theme", svc.current)
	return svc
}

// Current returns the active theme.
func (s *Service) Current() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle flips the theme and persists it. If saving fails the new value is
// still active for this process and the save error is returned.
func (s *Service) Toggle(ctx context.Context) (domain.Theme, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next := s.current.Toggled()
	s.current = next
	s.mu.Unlock()

	s.logger.Info("Theme toggled", "theme", next)
	s.publish(ctx, next, "toggle")

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Error("Failed to persist theme", "theme", next, "error", err)
		return next, err
	}
	return next, nil
}

// Reload re-reads the store and adopts its value when it differs.
func (s *Service) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	t, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changed := t != s.current
	s.current = t
	s.mu.Unlock()

	if changed {
		s.logger.Info("Theme reloaded from store", "theme", t)
		s.publish(ctx, t, "reload")
	}
	return nil
}

func (s *Service) publish(ctx context.Context, t domain.Theme, source string) {
	if s.publisher == nil {
		return
	}
	payload := events.ThemeChanged{Theme: t, Source: source, At: time.Now().UTC()}
	if err := pubsub.Publish(ctx, s.publisher, events.ThemeToggled, "", payload); err != nil {
		s.logger.Warn("Failed to publish theme change", "error", err)
	}
}
