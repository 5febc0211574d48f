// Package config loads runtime settings for the giglink CLI. Sources are
// layered; later ones win: built-in defaults, environment variables (with an
// optional .env file), a JSON config file, command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the giglink CLI.
type Config struct {
	// APIBaseURL is the root of the marketplace REST API, e.g.
	// "https://api.giglink.io/api".
	APIBaseURL string `env:"GIGLINK_API_BASE_URL" validate:"required,http_url"`

	// RequestTimeout bounds every single API request. There are no retries.
	RequestTimeout time.Duration `env:"GIGLINK_REQUEST_TIMEOUT" validate:"required"`

	// DatabasePath locates the sqlite file holding local client state.
	DatabasePath string `env:"GIGLINK_DB_PATH" validate:"required"`

	// Env selects log output formatting.
	Env string `env:"GIGLINK_ENV" validate:"required,oneof=local staging production"`

	// Debug enables debug-level logging.
	Debug bool `env:"GIGLINK_DEBUG"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "giglink.db"
	c.Env = "local"
}

// LoadConfig constructs a Config from all sources and validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
