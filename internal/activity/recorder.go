// Package activity keeps a short in-memory feed of session and theme events.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/surpluslink/surpluslink/internal/events"
	"github.com/surpluslink/surpluslink/internal/pubsub"
)

// DefaultCapacity is how many entries the feed retains.
const DefaultCapacity = 20

// Entry is one line of the feed.
type Entry struct {
	Kind    string
	Summary string
	UserID  string
	At      time.Time
}

// Recorder is a bounded ring of recent entries.
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool

	logger *slog.Logger
}

// NewRecorder creates a recorder keeping up to capacity entries.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		entries: make([]Entry, capacity),
		logger:  slog.Default().With("service", "activity"),
	}
}

// Start subscribes the recorder to the session and theme events.
func (r *Recorder) Start(ctx context.Context, sub pubsub.Subscriber) error {
	if err := pubsub.Subscribe(ctx, sub, events.Login, r.onSession("login", "%s signed in as %s")); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Login.Name(), err)
	}
	if err := pubsub.Subscribe(ctx, sub, events.Logout, r.onSession("logout", "%s signed out (%s)")); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Logout.Name(), err)
	}
	if err := pubsub.Subscribe(ctx, sub, events.ThemeToggled, r.onTheme); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.ThemeToggled.Name(), err)
	}
	return nil
}

func (r *Recorder) onSession(kind, format string) func(context.Context, pubsub.Message, events.SessionChanged) error {
	return func(ctx context.Context, msg pubsub.Message, ev events.SessionChanged) error {
		r.Add(Entry{
			Kind:    kind,
			Summary: fmt.Sprintf(format, ev.Name, ev.Role),
			UserID:  ev.UserID,
			At:      ev.At,
		})
		return nil
	}
}

func (r *Recorder) onTheme(ctx context.Context, msg pubsub.Message, ev events.ThemeChanged) error {
	summary := "Theme switched to " + string(ev.Theme)
	if ev.Source == "reload" {
		summary += " (from stored preference)"
	}
	r.Add(Entry{Kind: "theme", Summary: summary, At: ev.At})
	return nil
}

// Add appends an entry, evicting the oldest when full.
func (r *Recorder) Add(e Entry) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	r.mu.Lock()
	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	r.mu.Unlock()
	r.logger.Debug("Activity recorded", "kind", e.Kind, "summary", e.Summary)
}

// Recent returns the retained entries, newest first.
func (r *Recorder) Recent() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := r.next
	if r.full {
		n = len(r.entries)
	}
	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[idx])
	}
	return out
}
