package layouts

import (
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Base is the document shell with the navbar.
func Base(page view.Page, content ...g.Node) g.Node {
	return document(page, partials.Navbar(page), content)
}

// Bare is the document shell without the navbar, used by the login page.
func Bare(page view.Page, content ...g.Node) g.Node {
	return document(page, nil, content)
}

func document(page view.Page, navbar g.Node, content []g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.If(page.Theme == domain.ThemeDark, h.Class("dark")),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(page.Title))),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(g.Raw(`tailwind.config = { darkMode: 'class' }`)),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/surpluslink.css")),
				h.Script(h.Src("/static/js/surpluslink.js"), g.Attr("defer")),
			),
			h.Body(
				h.Class("min-h-screen bg-white text-slate-900 dark:bg-slate-950 dark:text-slate-100"),
				g.Attr("data-theme", page.Theme.String()),
				navbar,
				g.Group(content),
				view.AdaptTemplToGomponent(partials.Toasts(page.Flash.Toasts)),
			),
		),
	)
}
