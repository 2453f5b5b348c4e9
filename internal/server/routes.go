package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	svc := s.Services
	rateLimiter := middleware.RateLimiter(s.Cfg.GetLoginRateLimit())

	s.E.GET("/", svc.Home.HomeGet)

	s.E.GET("/login", svc.Auth.LoginGet)
	s.E.GET("/login/panel", svc.Auth.LoginPanel)
	s.E.POST("/login", svc.Auth.LoginPost, rateLimiter)
	s.E.POST("/register", svc.Auth.RegisterPost, rateLimiter)
	s.E.POST("/logout", svc.Auth.Logout)

	s.E.POST("/theme/toggle", svc.ThemeBtn.Toggle)
	s.E.GET("/ws/theme", svc.ThemeSync.ServeWS)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Role routes are registered last so the fixed paths above win.
	roles := s.E.Group("/:role", middleware.RequireRole(svc.Sessions))
	roles.GET("", svc.Dashboard.DashboardGet)
	roles.GET("/notifications", svc.Dashboard.NotificationsGet)
}

// Routes lists the registered routes as "METHOD path", for the CLI.
func (s *Server) Routes() []string {
	var out []string
	for _, r := range s.E.Routes() {
		// Groups with middleware register catch-all not-found routes.
		if r.Method == echo.RouteNotFound {
			continue
		}
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}
