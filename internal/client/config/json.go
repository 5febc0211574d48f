package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/giglink/giglink-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds; zero-valued fields leave the runtime Config alone.
type JsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	DatabasePath      string `json:"database_path"`
	Env               string `json:"env"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. When neither flag is present nothing is loaded.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.Env != "" {
		cfg.Env = jc.Env
	}
	return nil
}
