// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. Command-line flags may override
// individual fields after loading.
type Config struct {
	ListenAddr string `env:"HWFADMIN_ADDR" envDefault:":8080"`
	DBPath     string `env:"HWFADMIN_DB" envDefault:"hwfadmin.sqlite3"`
	AdminUser  string `env:"HWFADMIN_ADMIN_USER" envDefault:"Admin"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"LOG_FILE"`
	Demo       bool   `env:"HWFADMIN_DEMO"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
