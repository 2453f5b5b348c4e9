package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/surpluslink/surpluslink/internal/middleware"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/pages"
)

// PageFunc builds the layout view model for an error page.
type PageFunc func(c echo.Context, title string) view.Page

// setupErrorHandling installs the HTTP error handler. Expected HTTP errors
// are logged at warn level; anything else is logged with a stack trace.
// page may be nil, in which case the error page renders without session
// state.
func setupErrorHandling(e *echo.Echo, page PageFunc) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := appmiddleware.FromContext(c.Request().Context())
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			logger.Warn("HTTP error",
				"status", code,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		p := view.Page{Title: message}
		if page != nil {
			p = page(c, message)
		}
		if rerr := c.Render(code, "", pages.Error(p, code, message)); rerr != nil {
			logger.Debug("Error page not rendered, falling back to text", "error", rerr)
			_ = c.String(code, message)
		}
	}
}
