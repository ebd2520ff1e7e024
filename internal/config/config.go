package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds the application configuration, populated from environment
// variables. Only logging depends on it; the ledger itself has no settings.
type Config struct {
	App AppConfig
	Log LogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
}

type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Royalties"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config values are ones the app understands
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Name, validation.Required.Error("APP_NAME must not be empty")),
		validation.Field(&c.App.Environment,
			validation.In("development", "staging", "production").Error("APP_ENV must be development, staging or production"),
		),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level,
			validation.In("trace", "debug", "info", "warn", "error").Error("LOG_LEVEL is not a known level"),
		),
	)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
