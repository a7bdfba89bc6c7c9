// Package config loads and validates service configuration from the
// environment (and an optional .env file for development).
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
	AdminToken  string `env:"ADMIN_TOKEN"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`

	AggregateCacheTTL time.Duration `env:"AGGREGATE_CACHE_TTL" default:"30s"`

	// Per-IP rate limit for the public feedback endpoint.
	SubmitRatePerSecond float64 `env:"SUBMIT_RATE_PER_SECOND" default:"5"`
	SubmitBurst         int     `env:"SUBMIT_BURST" default:"10"`
}

const minAdminTokenLength = 16

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"REDIS_URL":    cfg.RedisURL,
		"ADMIN_TOKEN":  cfg.AdminToken,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.AdminToken) < minAdminTokenLength {
		return fmt.Errorf("ADMIN_TOKEN must be at least %d characters", minAdminTokenLength)
	}

	if cfg.AggregateCacheTTL <= 0 {
		return fmt.Errorf("AGGREGATE_CACHE_TTL must be positive")
	}
	if cfg.SubmitRatePerSecond <= 0 {
		return fmt.Errorf("SUBMIT_RATE_PER_SECOND must be positive")
	}
	if cfg.SubmitBurst <= 0 {
		return fmt.Errorf("SUBMIT_BURST must be positive")
	}

	return nil
}
