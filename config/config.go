// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/alem-hub/university-patterns/internal/domain/shared"
	"github.com/alem-hub/university-patterns/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig `envPrefix:"APP_"`

	// Observability
	Observability ObservabilityConfig `envPrefix:"LOG_"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"NAME" envDefault:"university-patterns" validate:"required"`
	Environment Environment `env:"ENV" envDefault:"development" validate:"oneof=development staging production"`
	Version     string      `env:"VERSION" envDefault:"0.1.0"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	AddCaller bool   `env:"CALLER" envDefault:"false"`
}

// Load reads optional .env files (default ".env"), then parses and validates
// the process environment. Variables already set win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: load %s: %w", shared.ErrInvalidConfig, file, err)
		}
	}

	return parse(env.Options{})
}

// Parse builds a Config from the given variables only, ignoring the process environment.
func Parse(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidConfig, err)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// LoggerOptions converts the observability settings into logger options.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(c.Observability.LogLevel)
	opts.AddCaller = c.Observability.AddCaller
	return opts
}
