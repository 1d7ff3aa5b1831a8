// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	DBPath  string
	LogPath string
	NoColor bool
}

// Load resolves configuration with precedence: environment variables over a
// .env file in the working directory over built-in defaults.
func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	cfg := &Config{}

	if dbPath := os.Getenv("SITEPLAN_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logPath := os.Getenv("SITEPLAN_LOG"); logPath != "" {
		cfg.LogPath = logPath
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SITEPLAN_NO_COLOR") != "" {
		cfg.NoColor = true
	}

	if cfg.DBPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(homeDir, ".local", "share", "siteplan", "siteplan.db")
	}

	return cfg, nil
}
