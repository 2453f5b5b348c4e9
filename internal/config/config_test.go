package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "development", cfg.GetAppEnv())
	assert.Equal(t, 800*time.Millisecond, cfg.GetLoginDelay())
	assert.Equal(t, "data/theme.json", cfg.GetThemeFile())
	assert.False(t, cfg.GetThemeWatch())
	assert.Equal(t, 10, cfg.GetLoginRateLimit())
	assert.NotEmpty(t, cfg.GetSessionSecret(), "a development secret should be filled in")
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"SERVER_ADDR":      ":9000",
		"LOGIN_DELAY":      "50ms",
		"THEME_WATCH":      "true",
		"LOGIN_RATE_LIMIT": "100",
		"SESSION_SECRET":   "s3cret",
		"LOG_FORMAT":       "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, 50*time.Millisecond, cfg.LoginDelay)
	assert.True(t, cfg.ThemeWatch)
	assert.Equal(t, 100, cfg.LoginRateLimit)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad delay":      {"LOGIN_DELAY": "soon"},
		"negative delay": {"LOGIN_DELAY": "-1s"},
		"bad watch":      {"THEME_WATCH": "maybe"},
		"bad rate":       {"LOGIN_RATE_LIMIT": "0"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envFrom(env))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_ProductionNeedsSecret(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{"APP_ENV": "production"}))
	assert.ErrorIs(t, err, ErrMissingSessionSecret)

	cfg, err := FromEnv(envFrom(map[string]string{"APP_ENV": "Production", "SESSION_SECRET": "x"}))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
