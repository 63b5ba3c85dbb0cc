package passgen

import (
	"github.com/dmitrymomot/passwords/core/server"
	"github.com/dmitrymomot/passwords/pkg/password"
	"github.com/dmitrymomot/passwords/pkg/ratelimiter"
)

// Config is the application configuration, loaded with core/config.
type Config struct {
	Server    server.Config
	Password  password.Config
	RateLimit RateLimitConfig

	AppName   string `env:"APP_NAME" envDefault:"passwords"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// RateLimitConfig limits password requests per client IP.
type RateLimitConfig struct {
	Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Bucket  ratelimiter.Config
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Server:    server.DefaultConfig(),
		Password:  password.DefaultConfig(),
		RateLimit: RateLimitConfig{Enabled: true, Bucket: ratelimiter.DefaultConfig()},
		AppName:   "passwords",
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "text",
	}
}
