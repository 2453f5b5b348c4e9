package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Logo is the brand mark with the product name next to it.
func Logo(size string) g.Node {
	box, icon, text := "rounded-lg p-2", "h-5 w-5 text-white", "font-bold text-xl"
	if size == "lg" {
		box, icon, text = "rounded-xl p-3", "h-6 w-6 text-white", "font-bold text-2xl"
	}
	return g.Group([]g.Node{
		h.Div(h.Class("gradient-primary "+box), Icon(IconLogo, icon)),
		h.Span(h.Class(text), g.Text("SurplusLink")),
	})
}

// ButtonLink is an anchor styled as a button.
func ButtonLink(href, variant string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Class(buttonClass(variant)), g.Group(children))
}

func buttonClass(variant string) string {
	base := "inline-flex items-center justify-center gap-2 rounded-lg px-6 py-3 font-medium transition-colors "
	switch variant {
	case "hero":
		return base + "gradient-primary text-white shadow hover:opacity-90"
	case "accent":
		return base + "gradient-accent text-white shadow hover:opacity-90"
	case "outline":
		return base + "border border-slate-300 hover:bg-slate-100 dark:border-slate-700 dark:hover:bg-slate-800"
	default:
		return base + "bg-white text-emerald-700 hover:bg-white/90"
	}
}

// Card is a bordered panel.
func Card(class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class("rounded-xl border border-slate-200 bg-white shadow-sm dark:border-slate-800 dark:bg-slate-900 "+class),
		g.Group(children),
	)
}
