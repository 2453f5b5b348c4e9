package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	"github.com/surpluslink/surpluslink/internal/app"
	"github.com/surpluslink/surpluslink/internal/config"
	"github.com/surpluslink/surpluslink/internal/handlers"
	appmiddleware "github.com/surpluslink/surpluslink/internal/middleware"
	"github.com/surpluslink/surpluslink/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Services *app.Services
	logger   *slog.Logger
}

// New builds the service graph on fsys and configures Echo. Routes are
// added by RegisterRoutes.
func New(cfg config.Provider, fsys afero.Fs) (*Server, error) {
	services, err := app.Resolve(app.NewInjector(cfg, fsys))
	if err != nil {
		return nil, fmt.Errorf("resolve services: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = services.Renderer
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GetAppEnv() == "production",
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	setupErrorHandling(e, services.Pages.Page)

	return &Server{
		E:        e,
		Cfg:      cfg,
		Services: services,
		logger:   slog.Default().With("service", "server"),
	}, nil
}
