// Package config loads runtime configuration from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/repoquest/repoquest/internal/errors"
)

// envPrefix namespaces every variable, e.g. REPOQUEST_REDIS_ADDR.
const envPrefix = "repoquest"

// Config holds the application configuration.
type Config struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	GithubBaseURL string        `envconfig:"GITHUB_BASE_URL" default:"https://api.github.com"`
	GithubToken   string        `envconfig:"GITHUB_TOKEN"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// SlogLevel maps the configured log level onto slog. Unknown values fall
// back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; missing files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process environment")
	}

	return &cfg, nil
}
