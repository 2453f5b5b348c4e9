package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/auth"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/login"
	"github.com/surpluslink/surpluslink/internal/middleware"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/pages"
)

// statusClientClosedRequest is the nginx status for a client that hung up
// before the response was written.
const statusClientClosedRequest = 499

// SessionManager is the session surface the auth handlers need.
type SessionManager interface {
	SessionReader
	Login(c echo.Context, role domain.Role) (*domain.User, error)
	Logout(c echo.Context) error
	SessionID(c echo.Context) (string, error)
}

// AuthHandler handles the login page and the mock sign-in, register and
// logout actions.
type AuthHandler struct {
	pages    *Pages
	sessions SessionManager
	flow     *login.Flow
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(p *Pages, sessions SessionManager, flow *login.Flow) *AuthHandler {
	return &AuthHandler{pages: p, sessions: sessions, flow: flow}
}

// form reads the role and tab from the query and reflects whether this
// browser session already has a submission in flight.
func (h *AuthHandler) form(c echo.Context) pages.LoginForm {
	form := pages.NewLoginForm(
		domain.Role(c.QueryParam("role")),
		pages.ParseTab(c.QueryParam("tab")),
		auth.DemoEmail,
		auth.DemoPassword,
	)
	if sid, err := h.sessions.SessionID(c); err == nil {
		form.Submitting = h.flow.State(sid) == login.StateSubmitting
	}
	return form
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	form := h.form(c)
	return c.Render(http.StatusOK, "", pages.Login(h.pages.Page(c, "Login"), form))
}

// LoginPanel renders only the login card for the htmx role picker and tabs.
// Plain requests are sent to the full page.
func (h *AuthHandler) LoginPanel(c echo.Context) error {
	form := h.form(c)
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, pages.LoginURL(form.Role, form.Tab))
	}
	return c.Render(http.StatusOK, "", pages.LoginCard(form))
}

// LoginPost handles the sign-in form (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.submit(c, login.ModeSignIn, pages.TabSignIn, domain.Role(req.Role))
}

// RegisterPost handles the register form (POST /register). Registration
// is the same mock login with a different toast.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.submit(c, login.ModeRegister, pages.TabRegister, domain.Role(req.Role))
}

func (h *AuthHandler) submit(c echo.Context, mode login.Mode, tab pages.Tab, role domain.Role) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	sid, err := h.sessions.SessionID(c)
	if err != nil {
		return fmt.Errorf("resolve session id: %w", err)
	}

	outcome, err := h.flow.Submit(ctx, sid, mode, role, func(r domain.Role) (*domain.User, error) {
		return h.sessions.Login(c, r)
	})
	switch {
	case err == nil:
		view.SetFlashSuccess(c, outcome.Notice.Title, outcome.Notice.Description)
		return redirect(c, outcome.Target)

	case errors.Is(err, login.ErrSubmitting):
		form := pages.NewLoginForm(role, tab, auth.DemoEmail, auth.DemoPassword)
		form.Submitting = true
		if isHTMX(c) {
			return c.Render(http.StatusOK, "", pages.LoginCard(form))
		}
		return c.Render(http.StatusConflict, "", pages.Login(h.pages.Page(c, "Login"), form))

	case errors.Is(err, login.ErrLoginFailed):
		view.SetFlashError(c, outcome.Notice.Title, outcome.Notice.Description)
		form := pages.NewLoginForm(role, tab, "", "")
		return redirect(c, pages.LoginURL(form.Role, form.Tab))

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Info("Login abandoned by client", "mode", mode, "role", role)
		return c.NoContent(statusClientClosedRequest)

	case errors.Is(err, domain.ErrInvalidRole):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role").SetInternal(err)

	default:
		return err
	}
}

// Logout clears the session user and returns to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return redirect(c, "/")
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data").SetInternal(err)
	}
	return nil
}
