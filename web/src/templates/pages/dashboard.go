package pages

import (
	"github.com/surpluslink/surpluslink/internal/activity"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/components"
	"github.com/surpluslink/surpluslink/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DashboardData is the role-specific content of a dashboard.
type DashboardData struct {
	Notifications []domain.Notification
	// Activity is only filled for admins.
	Activity []activity.Entry
}

type roleCopy struct {
	heading string
	intro   string
	stats   []stat
}

var dashboardCopy = map[domain.Role]roleCopy{
	domain.RoleDonor: {
		heading: "Donor Dashboard",
		intro:   "Post surplus food and follow your pickups.",
		stats:   []stat{{"18", "Donations Posted"}, {"342", "Meals Provided"}, {"96%", "Pickup Rate"}},
	},
	domain.RoleNGO: {
		heading: "NGO Dashboard",
		intro:   "Browse nearby donations and coordinate volunteers.",
		stats:   []stat{{"7", "Available Nearby"}, {"26", "Accepted This Month"}, {"12", "Active Volunteers"}},
	},
	domain.RoleAdmin: {
		heading: "Admin Dashboard",
		intro:   "Monitor platform activity across donors and NGOs.",
		stats:   []stat{{"47", "Active Donors"}, {"23", "NGO Partners"}, {"12,450+", "Meals Saved"}},
	},
}

// DashboardTitle is the page heading of a role's dashboard.
func DashboardTitle(role domain.Role) string {
	return dashboardCopy[role].heading
}

// Dashboard is the landing page of a signed-in role.
func Dashboard(page view.Page, data DashboardData) g.Node {
	role := page.User.Role
	text := dashboardCopy[role]
	return layouts.Base(page,
		shell(role, "dashboard",
			h.H1(h.Class("mb-2 text-3xl font-bold"), g.Text(text.heading)),
			h.P(h.Class("mb-8 text-slate-500"), g.Textf("Welcome, %s. %s", page.User.Name, text.intro)),
			h.Div(h.Class("mb-8 grid gap-4 md:grid-cols-3"),
				g.Map(text.stats, func(s stat) g.Node {
					return components.Card("p-6",
						h.P(h.Class("text-sm text-slate-500"), g.Text(s.label)),
						h.P(h.Class("mt-1 text-3xl font-bold"), g.Text(s.value)),
					)
				}),
			),
			components.Card("p-6",
				h.Div(h.Class("mb-4 flex items-center justify-between"),
					h.H2(h.Class("text-lg font-semibold"), g.Text("Recent notifications")),
					h.A(h.Href(role.NotificationsPath()), h.Class("text-sm text-emerald-600 hover:underline"), g.Text("View all")),
				),
				notificationList(data.Notifications),
			),
			g.Iff(role == domain.RoleAdmin, func() g.Node { return activityFeed(data.Activity) }),
		),
	)
}

// shell lays out the sidebar next to the page content.
func shell(role domain.Role, active string, content ...g.Node) g.Node {
	link := func(key, href, label string, icon components.IconName) g.Node {
		class := "flex items-center gap-3 rounded-lg px-3 py-2 text-sm text-slate-600 hover:bg-slate-100 dark:text-slate-400 dark:hover:bg-slate-800"
		if key == active {
			class = "flex items-center gap-3 rounded-lg bg-emerald-50 px-3 py-2 text-sm font-medium text-emerald-700 dark:bg-emerald-900/30 dark:text-emerald-300"
		}
		return h.A(h.Href(href), h.Class(class), components.Icon(icon, "h-4 w-4"), g.Text(label))
	}
	return h.Div(h.Class("flex"),
		h.Aside(
			h.ID("sidebar"),
			h.Class("hidden w-64 shrink-0 border-r border-slate-200 p-4 lg:block dark:border-slate-800"),
			h.A(h.Href("/"), h.Class("mb-6 flex items-center gap-2"), components.Logo("")),
			h.Nav(h.Class("space-y-1"),
				link("dashboard", role.DashboardPath(), "Dashboard", components.IconBarChart),
				link("notifications", role.NotificationsPath(), "Notifications", components.IconBell),
			),
		),
		h.Main(h.Class("flex-1 p-6 lg:p-8"), g.Group(content)),
	)
}

func notificationList(items []domain.Notification) g.Node {
	if len(items) == 0 {
		return h.P(h.Class("text-sm text-slate-500"), g.Text("You're all caught up."))
	}
	return h.Ul(h.Class("divide-y divide-slate-200 dark:divide-slate-800"),
		g.Map(items, func(n domain.Notification) g.Node {
			return h.Li(h.Class("flex items-start gap-3 py-3"),
				g.Attr("data-notification", n.ID),
				h.Span(h.Class(unreadDot(n.Read))),
				h.Div(h.Class("flex-1"),
					h.P(h.Class("text-sm font-medium"), g.Text(n.Title)),
					h.P(h.Class("text-sm text-slate-500"), g.Text(n.Message)),
				),
				h.Time(
					g.Attr("datetime", n.CreatedAt.Format("2006-01-02T15:04:05Z07:00")),
					h.Class("text-xs text-slate-400"),
					g.Text(n.CreatedAt.Format("Jan 2, 15:04")),
				),
			)
		}),
	)
}

func unreadDot(read bool) string {
	if read {
		return "mt-1.5 h-2 w-2 shrink-0 rounded-full bg-transparent"
	}
	return "mt-1.5 h-2 w-2 shrink-0 rounded-full bg-emerald-500"
}

func activityFeed(entries []activity.Entry) g.Node {
	return components.Card("mt-8 p-6",
		h.ID("activity-feed"),
		h.H2(h.Class("mb-4 text-lg font-semibold"), g.Text("Platform activity")),
		g.If(len(entries) == 0, h.P(h.Class("text-sm text-slate-500"), g.Text("No activity yet."))),
		h.Ul(h.Class("space-y-2"),
			g.Map(entries, func(e activity.Entry) g.Node {
				return h.Li(h.Class("flex items-center justify-between text-sm"),
					g.Attr("data-kind", e.Kind),
					h.Span(g.Text(e.Summary)),
					h.Span(h.Class("text-xs text-slate-400"), g.Text(e.At.Format("15:04:05"))),
				)
			}),
		),
	)
}
