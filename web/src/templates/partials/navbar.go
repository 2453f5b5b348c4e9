package partials

import (
	"strconv"

	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const iconButton = "relative inline-flex h-10 w-10 items-center justify-center rounded-full hover:bg-slate-100 dark:hover:bg-slate-800"

// Navbar renders the sticky top bar from the page's theme and session state.
func Navbar(page view.Page) g.Node {
	return h.Header(
		h.ID("navbar"),
		h.Class("sticky top-0 z-50 w-full border-b border-slate-200 bg-white/95 backdrop-blur dark:border-slate-800 dark:bg-slate-950/90"),
		h.Div(
			h.Class("flex h-16 items-center justify-between px-4 lg:px-6"),
			h.Div(
				h.Class("flex items-center gap-4"),
				g.If(page.ShowMenu, h.Button(
					h.Type("button"),
					h.Class(iconButton+" lg:hidden"),
					g.Attr("data-sidebar-toggle", ""),
					g.Attr("aria-label", "Toggle menu"),
					components.Icon(components.IconMenu, "h-5 w-5"),
				)),
				g.If(!page.Authenticated(), h.A(
					h.Href("/"),
					h.Class("flex items-center gap-2"),
					components.Logo(""),
				)),
			),
			h.Div(
				h.Class("flex items-center gap-2"),
				themeToggle(page),
				g.Iff(page.Authenticated(), func() g.Node { return userControls(page) }),
			),
		),
	)
}

// themeToggle posts to the server; both icons are rendered and CSS picks one
// so a pushed theme change updates the button without a reload.
func themeToggle(page view.Page) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action("/theme/toggle"),
		h.Input(h.Type("hidden"), h.Name("return"), h.Value(page.Path)),
		h.Button(
			h.Type("submit"),
			h.ID("theme-toggle"),
			h.Class(iconButton),
			g.Attr("aria-label", "Toggle theme"),
			h.Span(h.Class("block dark:hidden"), components.Icon(components.IconMoon, "h-5 w-5")),
			h.Span(h.Class("hidden dark:block"), components.Icon(components.IconSun, "h-5 w-5")),
		),
	)
}

func userControls(page view.Page) g.Node {
	user := page.User
	return g.Group([]g.Node{
		h.A(
			h.Href(user.Role.NotificationsPath()),
			h.ID("notifications-link"),
			h.Class(iconButton),
			g.Attr("aria-label", "Notifications"),
			components.Icon(components.IconBell, "h-5 w-5"),
			g.If(page.ShowBadge(), h.Span(
				h.ID("notification-badge"),
				h.Class("gradient-accent absolute -right-1 -top-1 flex h-5 w-5 items-center justify-center rounded-full text-xs text-white"),
				g.Text(strconv.Itoa(page.UnreadCount)),
			)),
		),
		h.Div(
			h.Class("ml-2 hidden items-center gap-3 border-l border-slate-200 pl-4 sm:flex dark:border-slate-800"),
			h.Div(
				h.Class("text-right"),
				h.P(h.Class("text-sm font-medium"), g.Text(user.Name)),
				h.P(h.Class("text-xs text-slate-500"), g.Text(user.Role.Display())),
			),
			h.Img(h.Src(user.Avatar), h.Alt(user.Name), h.Class("h-9 w-9 rounded-full bg-slate-100")),
		),
		h.Form(
			h.Method("post"),
			h.Action("/logout"),
			h.Button(
				h.Type("submit"),
				h.ID("logout"),
				h.Class(iconButton+" text-slate-500 hover:text-red-600"),
				g.Attr("aria-label", "Log out"),
				components.Icon(components.IconLogOut, "h-5 w-5"),
			),
		),
	})
}
