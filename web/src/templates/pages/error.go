package pages

import (
	"strconv"

	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/components"
	"github.com/surpluslink/surpluslink/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Error renders an HTTP error with a way back home.
func Error(page view.Page, code int, message string) g.Node {
	return layouts.Base(page,
		h.Main(h.Class("container mx-auto flex flex-col items-center px-4 py-24 text-center"),
			h.P(h.Class("text-gradient text-6xl font-bold"), g.Text(strconv.Itoa(code))),
			h.H1(h.Class("mt-4 text-2xl font-semibold"), g.Text(message)),
			h.Div(h.Class("mt-8"), components.ButtonLink("/", "hero", g.Text("Back to home"))),
		),
	)
}
