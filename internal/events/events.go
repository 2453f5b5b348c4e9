// Package events declares the application events carried on the pub/sub bus.
package events

import (
	"time"

	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/pubsub"
)

// SessionChanged is published when a mock user logs in or out.
type SessionChanged struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
	At     time.Time   `json:"at"`
}

// ThemeChanged is published whenever the process-wide theme changes.
type ThemeChanged struct {
	Theme domain.Theme `json:"theme"`
	// Source is "toggle" for a user action or "reload" for a change picked up from the store.
	Source string    `json:"source"`
	At     time.Time `json:"at"`
}

var (
	Login        = pubsub.NewEvent[SessionChanged]("session.login")
	Logout       = pubsub.NewEvent[SessionChanged]("session.logout")
	ThemeToggled = pubsub.NewEvent[ThemeChanged]("theme.toggled")
)
