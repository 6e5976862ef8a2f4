// Package config loads the application configuration from environment
// variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all runtime settings. Every field has a default, so the
// binary runs with no environment at all.
type Config struct {
	Environment string `env:"SCHEDULER_ENVIRONMENT" envDefault:"development" validate:"oneof=development production"`
	Server      struct {
		Port            int           `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
		ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
		WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"120s"`
		IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	} `envPrefix:"SCHEDULER_SERVER_"`
	Jobs struct {
		CacheLimit int `env:"CACHE_LIMIT" envDefault:"2" validate:"min=1"`
	} `envPrefix:"SCHEDULER_JOBS_"`
	Solver struct {
		TimeLimit      time.Duration `env:"TIME_LIMIT" envDefault:"60s" validate:"min=0"`
		MaxSteps       int           `env:"MAX_STEPS" envDefault:"0" validate:"min=0"`
		BestScoreLimit string        `env:"BEST_SCORE_LIMIT" envDefault:"0hard/0medium/10soft"`
		Seed           int64         `env:"SEED" envDefault:"0"`
	} `envPrefix:"SCHEDULER_SOLVER_"`
	Logging struct {
		Level string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
		File  string `env:"FILE" envDefault:""`
	} `envPrefix:"SCHEDULER_LOGGING_"`
}

var validate = validator.New()

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) {
			// Return only the first error to keep logs readable.
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
