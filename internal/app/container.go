package app

import (
	"context"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/surpluslink/surpluslink/internal/activity"
	"github.com/surpluslink/surpluslink/internal/auth"
	"github.com/surpluslink/surpluslink/internal/config"
	"github.com/surpluslink/surpluslink/internal/handlers"
	"github.com/surpluslink/surpluslink/internal/hub"
	"github.com/surpluslink/surpluslink/internal/login"
	"github.com/surpluslink/surpluslink/internal/notifications"
	"github.com/surpluslink/surpluslink/internal/pubsub"
	"github.com/surpluslink/surpluslink/internal/rendering"
	"github.com/surpluslink/surpluslink/internal/theme"
	"github.com/surpluslink/surpluslink/internal/themesync"
)

// Services holds everything the HTTP server wires into routes and
// background workers. It is resolved once from the injector.
type Services struct {
	Config        config.Provider
	Bus           *pubsub.WatermillBridge
	Theme         *theme.Service
	ThemeStore    *theme.FileStore
	Sessions      *auth.Sessions
	Notifications *notifications.Repository
	Flow          *login.Flow
	Activity      *activity.Recorder
	ThemeHub      *hub.Hub
	ThemeSync     *themesync.Handler
	Renderer      *rendering.UniversalRenderer

	Pages     *handlers.Pages
	Home      *handlers.HomeHandler
	Auth      *handlers.AuthHandler
	ThemeBtn  *handlers.ThemeHandler
	Dashboard *handlers.DashboardHandler
}

// NewInjector registers the providers of the application graph. fsys is
// where the theme preference lives; tests pass an afero.MemMapFs.
func NewInjector(cfg config.Provider, fsys afero.Fs) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fsys)

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (*theme.FileStore, error) {
		fs := do.MustInvoke[afero.Fs](i)
		return theme.NewFileStore(fs, do.MustInvoke[config.Provider](i).GetThemeFile()), nil
	})
	do.Provide(i, func(i do.Injector) (*theme.Service, error) {
		store := do.MustInvoke[*theme.FileStore](i)
		return theme.NewService(context.Background(), store, do.MustInvoke[*pubsub.WatermillBridge](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*auth.Directory, error) {
		return auth.NewDirectory(), nil
	})
	do.Provide(i, func(i do.Injector) (*auth.Sessions, error) {
		return auth.NewSessions(do.MustInvoke[*auth.Directory](i), do.MustInvoke[*pubsub.WatermillBridge](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*notifications.Repository, error) {
		return notifications.NewRepository(), nil
	})
	do.Provide(i, func(i do.Injector) (*login.Flow, error) {
		return login.NewFlow(do.MustInvoke[config.Provider](i).GetLoginDelay()), nil
	})
	do.Provide(i, func(i do.Injector) (*activity.Recorder, error) {
		return activity.NewRecorder(activity.DefaultCapacity), nil
	})
	do.Provide(i, func(i do.Injector) (*hub.Hub, error) {
		return hub.New("theme"), nil
	})
	do.Provide(i, func(i do.Injector) (*themesync.Handler, error) {
		svc := do.MustInvoke[*theme.Service](i)
		return themesync.NewHandler(do.MustInvoke[*hub.Hub](i), svc.Current), nil
	})
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.Pages, error) {
		return handlers.NewPages(
			do.MustInvoke[*auth.Sessions](i),
			do.MustInvoke[*theme.Service](i),
			do.MustInvoke[*notifications.Repository](i),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.HomeHandler, error) {
		return handlers.NewHomeHandler(do.MustInvoke[*handlers.Pages](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(
			do.MustInvoke[*handlers.Pages](i),
			do.MustInvoke[*auth.Sessions](i),
			do.MustInvoke[*login.Flow](i),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.ThemeHandler, error) {
		return handlers.NewThemeHandler(do.MustInvoke[*theme.Service](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.DashboardHandler, error) {
		return handlers.NewDashboardHandler(
			do.MustInvoke[*handlers.Pages](i),
			do.MustInvoke[*notifications.Repository](i),
			do.MustInvoke[*activity.Recorder](i),
		), nil
	})

	return i
}

// Resolve builds every service from the injector.
func Resolve(i do.Injector) (*Services, error) {
	var (
		s   Services
		err error
	)
	invoke(i, &s.Config, &err)
	invoke(i, &s.Bus, &err)
	invoke(i, &s.ThemeStore, &err)
	invoke(i, &s.Theme, &err)
	invoke(i, &s.Sessions, &err)
	invoke(i, &s.Notifications, &err)
	invoke(i, &s.Flow, &err)
	invoke(i, &s.Activity, &err)
	invoke(i, &s.ThemeHub, &err)
	invoke(i, &s.ThemeSync, &err)
	invoke(i, &s.Renderer, &err)
	invoke(i, &s.Pages, &err)
	invoke(i, &s.Home, &err)
	invoke(i, &s.Auth, &err)
	invoke(i, &s.ThemeBtn, &err)
	invoke(i, &s.Dashboard, &err)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// invoke resolves into dst unless an earlier resolution already failed.
func invoke[T any](i do.Injector, dst *T, err *error) {
	if *err != nil {
		return
	}
	*dst, *err = do.Invoke[T](i)
}
