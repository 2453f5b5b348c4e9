package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/domain"
)

// UserContextKey is where RequireRole stores the session user.
const UserContextKey = "user"

// SessionReader resolves the mock user of the current browser session.
type SessionReader interface {
	Current(c echo.Context) (*domain.User, bool)
}

// RequireRole guards the /:role route group. Unknown roles are 404,
// anonymous visitors go to /login, and users of another role are sent to
// their own dashboard.
func RequireRole(sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := domain.ParseRole(c.Param("role"))
			if err != nil {
				return echo.ErrNotFound
			}

			user, ok := sessions.Current(c)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/login?role="+role.String())
			}
			if user.Role != role {
				return c.Redirect(http.StatusSeeOther, user.Role.DashboardPath())
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by RequireRole.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	return user, ok
}
