package pages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surpluslink/surpluslink/internal/activity"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/view"
	"github.com/surpluslink/surpluslink/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestLanding(t *testing.T) {
	out := render(t, pages.Landing(view.Page{Theme: domain.ThemeDark, Path: "/"}))

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, `<html lang="en" class="dark">`)
	assert.Contains(t, out, "<title>SurplusLink</title>")
	assert.Contains(t, out, "How SurplusLink Works")
	assert.Contains(t, out, "Simple Steps to Make a Difference")
	assert.Contains(t, out, "Built for Everyone")
	assert.Contains(t, out, "Ready to Make an Impact?")
	assert.Contains(t, out, "© 2026 SurplusLink. All rights reserved.")
	assert.Contains(t, out, `id="toasts"`)
}

func TestLoginCard(t *testing.T) {
	t.Run("sign-in tab", func(t *testing.T) {
		out := render(t, pages.LoginCard(pages.NewLoginForm(domain.RoleNGO, pages.TabSignIn, "demo@surpluslink.com", "password123")))

		assert.Contains(t, out, `id="login-card"`)
		assert.Contains(t, out, `id="sign-in-form"`)
		assert.NotContains(t, out, `id="register-form"`)
		assert.Contains(t, out, `name="role" value="ngo"`)
		assert.Contains(t, out, `value="demo@surpluslink.com"`)
		assert.Contains(t, out, `value="password123"`)
		assert.Contains(t, out, `hx-get="/login/panel?role=admin&amp;tab=login"`)
		assert.Contains(t, out, "Demo mode: Click sign in to access the ngo dashboard")
		assert.Regexp(t, `data-role="ngo"[^>]*aria-current="true"`, out)
		assert.NotRegexp(t, `<button[^>]* disabled[ >]`, out)
	})

	t.Run("register tab", func(t *testing.T) {
		out := render(t, pages.LoginCard(pages.NewLoginForm(domain.RoleAdmin, pages.TabRegister, "", "")))

		assert.Contains(t, out, `id="register-form"`)
		assert.Contains(t, out, `hx-post="/register"`)
		assert.Contains(t, out, `name="org_name"`)
		assert.Contains(t, out, "Create Account")
	})

	t.Run("invalid role falls back to donor", func(t *testing.T) {
		form := pages.NewLoginForm(domain.Role("root"), pages.ParseTab("bogus"), "", "")
		assert.Equal(t, domain.RoleDonor, form.Role)
		assert.Equal(t, pages.TabSignIn, form.Tab)
	})

	t.Run("submitting disables the button", func(t *testing.T) {
		form := pages.NewLoginForm(domain.RoleDonor, pages.TabSignIn, "", "")
		form.Submitting = true
		out := render(t, pages.LoginCard(form))

		assert.Regexp(t, `<button[^>]* disabled[ >]`, out)
		assert.Contains(t, out, `<span class="">Signing in...</span>`)
	})
}

func TestDashboard(t *testing.T) {
	admin := &domain.User{ID: "admin-1", Name: "Platform Admin", Role: domain.RoleAdmin}
	out := render(t, pages.Dashboard(
		view.Page{Title: "Admin Dashboard", User: admin},
		pages.DashboardData{Activity: []activity.Entry{{Kind: "login", Summary: "City Food Bank signed in"}}},
	))

	assert.Contains(t, out, "<title>Admin Dashboard - SurplusLink</title>")
	assert.Contains(t, out, "Admin Dashboard")
	assert.Contains(t, out, `id="activity-feed"`)
	assert.Contains(t, out, "City Food Bank signed in")
	assert.Contains(t, out, "You&#39;re all caught up.")

	donor := &domain.User{ID: "donor-1", Name: "Green Valley Restaurant", Role: domain.RoleDonor}
	out = render(t, pages.Dashboard(view.Page{User: donor}, pages.DashboardData{}))
	assert.NotContains(t, out, "activity-feed")
}

func TestErrorPage(t *testing.T) {
	out := render(t, pages.Error(view.Page{}, 404, "Not Found"))
	assert.Contains(t, out, ">404<")
	assert.Contains(t, out, "Not Found")
}
