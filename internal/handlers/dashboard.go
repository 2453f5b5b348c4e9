package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/activity"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/middleware"
	"github.com/surpluslink/surpluslink/web/src/templates/pages"
)

const recentNotifications = 3

// NotificationLister lists a user's notifications, newest first.
type NotificationLister interface {
	List(userID string) []domain.Notification
}

// ActivityFeed returns the most recent platform events.
type ActivityFeed interface {
	Recent() []activity.Entry
}

// DashboardHandler serves the role routes behind RequireRole.
type DashboardHandler struct {
	pages         *Pages
	notifications NotificationLister
	activity      ActivityFeed
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(p *Pages, notifications NotificationLister, feed ActivityFeed) *DashboardHandler {
	return &DashboardHandler{pages: p, notifications: notifications, activity: feed}
}

// DashboardGet renders the dashboard of the signed-in role (GET /:role).
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	page := h.pages.Page(c, pages.DashboardTitle(user.Role))
	page.ShowMenu = true

	data := pages.DashboardData{Notifications: h.notifications.List(user.ID)}
	if len(data.Notifications) > recentNotifications {
		data.Notifications = data.Notifications[:recentNotifications]
	}
	if user.Role == domain.RoleAdmin {
		data.Activity = h.activity.Recent()
	}
	return c.Render(http.StatusOK, "", pages.Dashboard(page, data))
}

// NotificationsGet lists every notification of the signed-in user.
func (h *DashboardHandler) NotificationsGet(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	page := h.pages.Page(c, "Notifications")
	page.ShowMenu = true
	return c.Render(http.StatusOK, "", pages.Notifications(page, h.notifications.List(user.ID)))
}
