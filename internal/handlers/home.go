package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/web/src/templates/pages"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	pages *Pages
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(p *Pages) *HomeHandler {
	return &HomeHandler{pages: p}
}

// HomeGet renders the landing page. The component is passed to the
// universal renderer as c.Render's data argument.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", pages.Landing(h.pages.Page(c, "")))
}
