// Package config handles application configuration management.
package config

import (
	"os"
	"strconv"
)

// DefaultAPIURL is the production marketplace API.
const DefaultAPIURL = "https://api.wastra.id/v1"

// DefaultWebURL is the public web frontend, used for share links.
const DefaultWebURL = "https://wastra.id"

// Config holds all application configuration.
type Config struct {
	// Base directory for all Wastra data (~/.wastra)
	BaseDir string

	// API settings
	API APIConfig

	// UserID identifies the signed-in user for owner-scoped resources.
	UserID int
}

// APIConfig holds marketplace API settings.
type APIConfig struct {
	BaseURL   string
	WebURL    string
	Token     string
	RateLimit int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			WebURL:  DefaultWebURL,
		},
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if url := os.Getenv("WASTRA_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if url := os.Getenv("WASTRA_WEB_URL"); url != "" {
		cfg.API.WebURL = url
	}
	if token := os.Getenv("WASTRA_TOKEN"); token != "" {
		cfg.API.Token = token
	}
	if raw := os.Getenv("WASTRA_USER_ID"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			cfg.UserID = id
		}
	}
	if raw := os.Getenv("WASTRA_RATE_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.API.RateLimit = n
		}
	}

	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}
