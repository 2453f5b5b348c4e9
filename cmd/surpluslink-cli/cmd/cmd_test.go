package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	notificationsUser = ""
	themeFile = "data/theme.json"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })
	return appFs
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "SurplusLink CLI v"+version+"\n", run(t, "version"))
}

func TestNotifications(t *testing.T) {
	t.Run("all users", func(t *testing.T) {
		out := run(t, "notifications")
		assert.Contains(t, out, "USER")
		assert.Contains(t, out, "donor-1")
		assert.Contains(t, out, "ngo-1")
		assert.Contains(t, out, "admin-1")
	})

	t.Run("single user", func(t *testing.T) {
		out := run(t, "notifications", "--user", "donor-1")
		assert.Contains(t, out, "Pickup confirmed")
		assert.NotContains(t, out, "ngo-1")
	})

	t.Run("unknown user", func(t *testing.T) {
		out := run(t, "notifications", "--user", "nobody")
		assert.Contains(t, out, "(none)")
	})
}

func TestThemeShowAndToggle(t *testing.T) {
	fsys := useMemFs(t)

	assert.Equal(t, "light\n", run(t, "theme", "show", "--file", "/tmp/theme.json"))
	assert.Equal(t, "dark\n", run(t, "theme", "toggle", "--file", "/tmp/theme.json"))

	data, err := afero.ReadFile(fsys, "/tmp/theme.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(data))

	assert.Equal(t, "dark\n", run(t, "theme", "show", "--file", "/tmp/theme.json"))
	assert.Equal(t, "light\n", run(t, "theme", "toggle", "--file", "/tmp/theme.json"))
}

func TestRoutes(t *testing.T) {
	out := run(t, "routes")
	assert.Contains(t, out, "METHOD")
	assert.Regexp(t, `POST\s+/login\n`, out)
	assert.Regexp(t, `GET\s+/ws/theme\n`, out)
	assert.Regexp(t, `GET\s+/:role/notifications\n`, out)
}
