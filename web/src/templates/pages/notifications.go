package pages

import (
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/components"
	"github.com/surpluslink/surpluslink/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Notifications lists every notification of the signed-in user.
func Notifications(page view.Page, items []domain.Notification) g.Node {
	return layouts.Base(page,
		shell(page.User.Role, "notifications",
			h.H1(h.Class("mb-2 text-3xl font-bold"), g.Text("Notifications")),
			h.P(h.Class("mb-8 text-slate-500"), g.Textf("%d unread", page.UnreadCount)),
			components.Card("p-6", notificationList(items)),
		),
	)
}
