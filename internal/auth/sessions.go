// Package auth implements the mock session: login by role, no credentials.
package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/events"
	"github.com/surpluslink/surpluslink/internal/pubsub"
)

const (
	// SessionName is the cookie session holding the current user.
	SessionName = "surpluslink-session"

	keyUserID    = "user_id"
	keySessionID = "sid"
)

// Sessions is the auth session holder. Each browser session holds at most one user.
type Sessions struct {
	directory *Directory
	publisher pubsub.Publisher
	logger    *slog.Logger
}

// NewSessions creates the session holder. publisher may be nil.
func NewSessions(directory *Directory, publisher pubsub.Publisher) *Sessions {
	return &Sessions{
		directory: directory,
		publisher: publisher,
		logger:    slog.Default().With("service", "auth"),
	}
}

func (s *Sessions) get(c echo.Context) (*sessions.Session, error) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		// A cookie that no longer decodes yields a fresh session alongside the error.
		if sess == nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		s.logger.Debug("Discarding undecodable session cookie", "error", err)
	}
	return sess, nil
}

// Login replaces the session user with the demo user for role. The only
// failure is an unknown role; no credentials are involved.
func (s *Sessions) Login(c echo.Context, role domain.Role) (*domain.User, error) {
	user, err := s.directory.ForRole(role)
	if err != nil {
		return nil, err
	}

	sess, err := s.get(c)
	if err != nil {
		return nil, err
	}
	ensureSessionID(sess)
	sess.Values[keyUserID] = user.ID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	s.publish(c, events.Login, user)
	return &user, nil
}

// Logout clears the session user. Logging out without a user is a no-op.
func (s *Sessions) Logout(c echo.Context) error {
	sess, err := s.get(c)
	if err != nil {
		return err
	}

	user, had := s.userFrom(sess)
	if !had {
		return nil
	}
	delete(sess.Values, keyUserID)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("User logged out", "user_id", user.ID)
	s.publish(c, events.Logout, user)
	return nil
}

// Current returns the session user.
func (s *Sessions) Current(c echo.Context) (*domain.User, bool) {
	sess, err := s.get(c)
	if err != nil {
		return nil, false
	}
	user, ok := s.userFrom(sess)
	if !ok {
		return nil, false
	}
	return &user, true
}

// SessionID returns a stable identifier for the browser session, creating
// and saving one if needed.
func (s *Sessions) SessionID(c echo.Context) (string, error) {
	sess, err := s.get(c)
	if err != nil {
		return "", err
	}
	if id, ok := sess.Values[keySessionID].(string); ok && id != "" {
		return id, nil
	}
	id := ensureSessionID(sess)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

func (s *Sessions) userFrom(sess *sessions.Session) (domain.User, bool) {
	id, ok := sess.Values[keyUserID].(string)
	if !ok || id == "" {
		return domain.User{}, false
	}
	return s.directory.ByID(id)
}

func ensureSessionID(sess *sessions.Session) string {
	if id, ok := sess.Values[keySessionID].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Values[keySessionID] = id
	return id
}

func (s *Sessions) publish(c echo.Context, event pubsub.Event[events.SessionChanged], user domain.User) {
	if s.publisher == nil {
		return
	}
	payload := events.SessionChanged{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		At:     time.Now().UTC(),
	}
	if err := pubsub.Publish(c.Request().Context(), s.publisher, event, user.ID, payload); err != nil {
		s.logger.Warn("Failed to publish session event", "topic", event.Name(), "error", err)
	}
}
