package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, loading a
// .env file first when one is present. Unset variables leave the existing
// values alone.
func parseEnv(cfg *Config) error {
	// missing .env is the normal case
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
