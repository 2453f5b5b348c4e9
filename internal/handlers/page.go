package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
)

// SessionReader resolves the mock user of the current browser session.
type SessionReader interface {
	Current(c echo.Context) (*domain.User, bool)
}

// ThemeReader reports the process-wide theme.
type ThemeReader interface {
	Current() domain.Theme
}

// UnreadCounter reports a user's unread notification count.
type UnreadCounter interface {
	UnreadCount(userID string) int
}

// Pages assembles the view model every full page needs: theme, session
// user, navbar badge count and pending toasts.
type Pages struct {
	sessions SessionReader
	theme    ThemeReader
	unread   UnreadCounter
}

// NewPages creates a Pages builder.
func NewPages(sessions SessionReader, theme ThemeReader, unread UnreadCounter) *Pages {
	return &Pages{sessions: sessions, theme: theme, unread: unread}
}

// Page builds the view model for the current request. Reading it consumes
// the queued toasts.
func (p *Pages) Page(c echo.Context, title string) view.Page {
	page := view.Page{
		Title: title,
		Theme: p.theme.Current(),
		Flash: view.GetFlashData(c),
		Path:  c.Request().URL.Path,
	}
	if user, ok := p.sessions.Current(c); ok {
		page.User = user
		page.UnreadCount = p.unread.UnreadCount(user.ID)
	}
	return page
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// redirect sends the browser to target. htmx requests get HX-Redirect so
// the whole page navigates instead of swapping the response into a target.
func redirect(c echo.Context, target string) error {
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", target)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// safeReturn accepts only local absolute paths.
func safeReturn(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}
