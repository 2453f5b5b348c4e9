// Package login runs the login form's submit cycle: idle, then submitting
// for a fixed simulated round trip, then back to idle.
package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/surpluslink/surpluslink/internal/domain"
)

// State of a browser session's login form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// Mode selects which tab of the form was submitted.
type Mode string

const (
	ModeSignIn   Mode = "sign-in"
	ModeRegister Mode = "register"
)

var (
	// ErrSubmitting is returned for a second submission while one is still in flight.
	ErrSubmitting = errors.New("a login request is already in progress")
	// ErrLoginFailed wraps an apply error on the sign-in path.
	ErrLoginFailed = errors.New("login failed")
)

// Notice is the toast shown after a submission.
type Notice struct {
	Title       string
	Description string
	Failed      bool
}

// Outcome describes where a finished submission leads.
type Outcome struct {
	User   *domain.User
	Target string
	Notice Notice
}

// ApplyFunc performs the session mutation once the simulated round trip is over.
type ApplyFunc func(role domain.Role) (*domain.User, error)

// Flow tracks in-flight submissions per browser session.
type Flow struct {
	delay time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}

	logger *slog.Logger
}

// NewFlow creates a Flow that simulates a round trip of delay.
func NewFlow(delay time.Duration) *Flow {
	return &Flow{
		delay:    delay,
		inFlight: make(map[string]struct{}),
		logger:   slog.Default().With("service", "login"),
	}
}

// Delay returns the simulated round trip length.
func (f *Flow) Delay() time.Duration { return f.delay }

// State reports the form state for a browser session.
func (f *Flow) State(sid string) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.inFlight[sid]; ok {
		return StateSubmitting
	}
	return StateIdle
}

func (f *Flow) begin(sid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.inFlight[sid]; ok {
		return ErrSubmitting
	}
	f.inFlight[sid] = struct{}{}
	return nil
}

func (f *Flow) end(sid string) {
	f.mu.Lock()
	delete(f.inFlight, sid)
	f.mu.Unlock()
}

// Submit moves sid to submitting, waits the fixed delay, calls apply and
// returns to idle whatever happened. The wait only ends early if ctx is
// cancelled, in which case apply is not called.
func (f *Flow) Submit(ctx context.Context, sid string, mode Mode, role domain.Role, apply ApplyFunc) (Outcome, error) {
	if err := f.begin(sid); err != nil {
		f.logger.Debug("Rejected overlapping submission", "sid", sid, "mode", mode)
		return Outcome{}, err
	}
	defer f.end(sid)
	f.logger.Debug("Login form submitting", "sid", sid, "mode", mode, "role", role)

	if err := f.wait(ctx); err != nil {
		return Outcome{}, err
	}

	user, err := apply(role)
	if err != nil {
		if mode == ModeSignIn {
			f.logger.Warn("Sign-in failed", "role", role, "error", err)
			return Outcome{Notice: Notice{Title: "Login failed", Description: "Please try again", Failed: true}},
				fmt.Errorf("%w: %w", ErrLoginFailed, err)
		}
		return Outcome{}, err
	}

	out := Outcome{User: user, Target: user.Role.DashboardPath()}
	switch mode {
	case ModeRegister:
		out.Notice = Notice{Title: "Account created!", Description: "Welcome to SurplusLink"}
	default:
		out.Notice = Notice{Title: "Welcome back!", Description: "Logged in as " + string(user.Role)}
	}
	return out, nil
}

func (f *Flow) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
