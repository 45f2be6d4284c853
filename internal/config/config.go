// internal/config/config.go
//
// Runtime configuration.
// Values come from (highest first): command-line flags bound by the caller,
// environment variables, a `.env` file in the working directory, defaults.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by Load. They double as environment variable names.
const (
	KeyPort          = "PORT"
	KeyLogLevel      = "LOG_LEVEL"
	KeyLogFile       = "LOG_FILE"
	KeyJWTSecret     = "JWT_SECRET"
	KeyCookieName    = "COOKIE_NAME"
	KeyClientOrigin  = "CLIENT_ORIGIN"
	KeySessionTTL    = "SESSION_TTL"
	KeyFillAnimation = "FILL_ANIMATION"
	KeyAppEnv        = "APP_ENV"
)

const devSecret = "dev_secret_change_me"

// Config is the resolved configuration for both the terminal game and the
// HTTP server.
type Config struct {
	Port          string
	LogLevel      string
	LogFile       string // empty: stderr for serve, discarded for play
	JWTSecret     string
	CookieName    string
	ClientOrigin  string
	SessionTTL    time.Duration // idle sessions are dropped after this
	FillAnimation time.Duration // how long a newly filled cell stays highlighted
	Production    bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "5175")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyJWTSecret, devSecret)
	v.SetDefault(KeyCookieName, "wurdle_session")
	v.SetDefault(KeyClientOrigin, "http://localhost:5173")
	v.SetDefault(KeySessionTTL, "24h")
	v.SetDefault(KeyFillAnimation, "150ms")
	v.SetDefault(KeyAppEnv, "development")
}

// Load reads `.env` (if present) into the process environment and resolves
// every key through v.
func Load(v *viper.Viper) (Config, error) {
	_ = godotenv.Load()
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Port:          v.GetString(KeyPort),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFile:       v.GetString(KeyLogFile),
		JWTSecret:     v.GetString(KeyJWTSecret),
		CookieName:    v.GetString(KeyCookieName),
		ClientOrigin:  v.GetString(KeyClientOrigin),
		SessionTTL:    v.GetDuration(KeySessionTTL),
		FillAnimation: v.GetDuration(KeyFillAnimation),
		Production:    strings.EqualFold(v.GetString(KeyAppEnv), "production"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%s must be a positive duration", KeySessionTTL)
	}
	if c.FillAnimation < 0 {
		return fmt.Errorf("%s must not be negative", KeyFillAnimation)
	}
	if c.CookieName == "" {
		return errors.New(KeyCookieName + " must not be empty")
	}
	if c.Production && (c.JWTSecret == "" || c.JWTSecret == devSecret) {
		return errors.New(KeyJWTSecret + " must be set in production")
	}
	return nil
}
