package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr     = ":8080"
	defaultAppEnv         = "development"
	defaultLoginDelay     = 800 * time.Millisecond
	defaultThemeFile      = "data/theme.json"
	defaultLoginRateLimit = 10
	defaultLogFormat      = "text"
	defaultLogLevel       = "debug"

	// devSessionSecret is only accepted outside production.
	devSessionSecret = "surpluslink-development-secret-change-me"
)

// ErrMissingSessionSecret is returned when running in production without SESSION_SECRET.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set when APP_ENV=production")

// Provider exposes the configuration values the application reads.
type Provider interface {
	GetServerAddr() string
	GetAppEnv() string
	GetSessionSecret() string
	GetLoginDelay() time.Duration
	GetThemeFile() string
	GetThemeWatch() bool
	GetLoginRateLimit() int
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppEnv         string
	SessionSecret  string
	LoginDelay     time.Duration
	ThemeFile      string
	ThemeWatch     bool
	LoginRateLimit int
	LogFormat      string
	LogLevel       string
}

// New loads configuration from a .env file (if present) and environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerAddr:     valueOr(getenv("SERVER_ADDR"), defaultServerAddr),
		AppEnv:         strings.ToLower(valueOr(getenv("APP_ENV"), defaultAppEnv)),
		SessionSecret:  getenv("SESSION_SECRET"),
		LoginDelay:     defaultLoginDelay,
		ThemeFile:      valueOr(getenv("THEME_FILE"), defaultThemeFile),
		LoginRateLimit: defaultLoginRateLimit,
		LogFormat:      valueOr(getenv("LOG_FORMAT"), defaultLogFormat),
		LogLevel:       valueOr(getenv("LOG_LEVEL"), defaultLogLevel),
	}

	if v := getenv("LOGIN_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOGIN_DELAY %q: %w", v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid LOGIN_DELAY %q: must not be negative", v)
		}
		cfg.LoginDelay = d
	}

	if v := getenv("THEME_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid THEME_WATCH %q: %w", v, err)
		}
		cfg.ThemeWatch = b
	}

	if v := getenv("LOGIN_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: must be a positive integer", v)
		}
		cfg.LoginRateLimit = n
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingSessionSecret
		}
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetAppEnv() string            { return c.AppEnv }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetLoginDelay() time.Duration { return c.LoginDelay }
func (c *Config) GetThemeFile() string         { return c.ThemeFile }
func (c *Config) GetThemeWatch() bool          { return c.ThemeWatch }
func (c *Config) GetLoginRateLimit() int       { return c.LoginRateLimit }
func (c *Config) GetLogFormat() string         { return c.LogFormat }
func (c *Config) GetLogLevel() string          { return c.LogLevel }
