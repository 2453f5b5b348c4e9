package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/surpluslink/surpluslink/internal/domain"
)

type fakeSessions struct {
	user *domain.User
}

func (f fakeSessions) Current(echo.Context) (*domain.User, bool) {
	return f.user, f.user != nil
}

func TestRequireRole(t *testing.T) {
	ngo := &domain.User{ID: "ngo-1", Name: "City Food Bank", Role: domain.RoleNGO}

	tests := []struct {
		name         string
		user         *domain.User
		path         string
		wantCode     int
		wantLocation string
		wantBody     string
	}{
		{name: "anonymous visitor goes to login", path: "/ngo", wantCode: http.StatusSeeOther, wantLocation: "/login?role=ngo"},
		{name: "matching role passes", user: ngo, path: "/ngo", wantCode: http.StatusOK, wantBody: "City Food Bank"},
		{name: "other role goes to own dashboard", user: ngo, path: "/admin", wantCode: http.StatusSeeOther, wantLocation: "/ngo"},
		{name: "unknown role is not found", user: ngo, path: "/root", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			g := e.Group("/:role", RequireRole(fakeSessions{user: tt.user}))
			g.GET("", func(c echo.Context) error {
				user, ok := CurrentUser(c)
				if !ok {
					return c.String(http.StatusInternalServerError, "no user")
				}
				return c.String(http.StatusOK, user.Name)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
