package partials_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/partials"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

var donor = &domain.User{
	ID:     "donor-1",
	Name:   "Green Valley Restaurant",
	Role:   domain.RoleDonor,
	Avatar: "https://example.test/avatar.svg",
}

func TestNavbar_Unauthenticated(t *testing.T) {
	out := render(t, partials.Navbar(view.Page{Theme: domain.ThemeLight, Path: "/"}))

	assert.Contains(t, out, `href="/"`, "logo links home")
	assert.Contains(t, out, "SurplusLink")
	assert.Contains(t, out, `action="/theme/toggle"`)
	assert.Contains(t, out, `name="return" value="/"`)
	assert.NotContains(t, out, "notifications-link")
	assert.NotContains(t, out, `action="/logout"`)
}

func TestNavbar_Authenticated(t *testing.T) {
	out := render(t, partials.Navbar(view.Page{User: donor, UnreadCount: 2, Path: "/donor", ShowMenu: true}))

	assert.Contains(t, out, `href="/donor/notifications"`)
	assert.Contains(t, out, "Green Valley Restaurant")
	assert.Contains(t, out, ">Donor<")
	assert.Contains(t, out, `src="https://example.test/avatar.svg"`)
	assert.Contains(t, out, `action="/logout"`)
	assert.Contains(t, out, "data-sidebar-toggle")
	assert.NotContains(t, out, `<span class="font-bold text-xl">SurplusLink</span>`, "logo is hidden once signed in")
}

func TestNavbar_Badge(t *testing.T) {
	tests := []struct {
		name   string
		unread int
		want   bool
	}{
		{"zero unread hides badge", 0, false},
		{"unread shows badge", 2, true},
		{"many unread", 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, partials.Navbar(view.Page{User: donor, UnreadCount: tt.unread}))
			if tt.want {
				assert.Contains(t, out, "notification-badge")
				assert.Regexp(t, `id="notification-badge"[^>]*>`+"\\d+"+`</span>`, out)
			} else {
				assert.NotContains(t, out, "notification-badge")
			}
		})
	}
}

func TestToasts(t *testing.T) {
	var b strings.Builder
	err := partials.Toasts([]view.Toast{
		{Title: "Welcome back!", Description: "Logged in as <donor>", Variant: view.VariantDefault},
		{Title: "Login failed", Description: "Please try again", Variant: view.VariantDestructive},
	}).Render(context.Background(), &b)
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, `id="toasts"`)
	assert.Contains(t, out, "Welcome back!")
	assert.Contains(t, out, "Logged in as &lt;donor&gt;")
	assert.Contains(t, out, `data-variant="destructive"`)
}

func TestNavbar_ConcurrentRenders(t *testing.T) {
	users := []*domain.User{
		donor,
		{ID: "ngo-1", Name: "City Food Bank", Role: domain.RoleNGO},
		{ID: "admin-1", Name: "Platform Admin", Role: domain.RoleAdmin},
		nil,
	}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(u *domain.User) {
			defer wg.Done()
			var b strings.Builder
			assert.NoError(t, partials.Navbar(view.Page{User: u, UnreadCount: 1, Path: "/"}).Render(&b))
			if u != nil {
				assert.Contains(t, b.String(), u.Role.Display())
			} else {
				assert.NotContains(t, b.String(), "notifications-link")
			}
		}(users[i%len(users)])
	}
	wg.Wait()
}
