package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/middleware"
)

// ThemeToggler flips the process-wide theme.
type ThemeToggler interface {
	Toggle(ctx context.Context) (domain.Theme, error)
}

// ThemeHandler handles the navbar theme button.
type ThemeHandler struct {
	theme ThemeToggler
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(theme ThemeToggler) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

// Toggle flips the theme and returns to the page the button was on. A
// failed save is logged only; the in-memory theme has already changed.
func (h *ThemeHandler) Toggle(c echo.Context) error {
	var req ThemeToggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	t, err := h.theme.Toggle(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Theme preference not saved", "theme", t, "error", err)
	}
	return redirect(c, safeReturn(req.Return))
}
