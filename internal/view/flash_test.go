package view_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the session store is on the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashToasts(t *testing.T) {
	t.Run("Set and Get Success Toast", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Welcome back!", "Logged in as donor")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Toasts, 1)
		assert.Equal(t, "Welcome back!", flashes.Toasts[0].Title)
		assert.Equal(t, "Logged in as donor", flashes.Toasts[0].Description)
		assert.Equal(t, view.VariantDefault, flashes.Toasts[0].Variant)

		assert.True(t, view.GetFlashData(c).Empty(), "Toasts should be cleared after being read")
	})

	t.Run("Set and Get Error Toast", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Login failed", "Please try again")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Toasts, 1)
		assert.Equal(t, view.VariantDestructive, flashes.Toasts[0].Variant)
	})

	t.Run("Multiple toasts keep order", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetToast(c, view.Toast{Title: "one"})
		view.SetToast(c, view.Toast{Title: "two"})

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Toasts, 2)
		assert.Equal(t, "one", flashes.Toasts[0].Title)
		assert.Equal(t, "two", flashes.Toasts[1].Title)
	})

	t.Run("GetFlashData with nothing set", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})
}

func TestPageBadge(t *testing.T) {
	user := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}

	assert.False(t, view.Page{}.ShowBadge())
	assert.False(t, view.Page{UnreadCount: 3}.ShowBadge(), "anonymous visitors never see a badge")
	assert.False(t, view.Page{User: user, UnreadCount: 0}.ShowBadge())
	assert.True(t, view.Page{User: user, UnreadCount: 1}.ShowBadge())
	assert.True(t, view.Page{User: user}.Authenticated())
}

// unsavableStore loads sessions normally but every save fails.
type unsavableStore struct {
	*sessions.CookieStore
}

func (unsavableStore) Save(r *http.Request, w http.ResponseWriter, s *sessions.Session) error {
	return errors.New("cookie too large")
}

func TestGetFlashData_LogsSaveFailure(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	store := unsavableStore{sessions.NewCookieStore([]byte(testSessionSecret))}

	var c echo.Context
	session.Middleware(store)(func(ctx echo.Context) error { c = ctx; return nil })(e.NewContext(req, rec))

	view.SetFlashSuccess(c, "Welcome back!", "Logged in as donor")
	flashes := view.GetFlashData(c)

	require.Len(t, flashes.Toasts, 1)
	assert.Contains(t, logs.String(), "Failed to save flash session")
	assert.Contains(t, logs.String(), "Failed to clear flash session")
	assert.Contains(t, logs.String(), "cookie too large")
}
