// Package config provides configuration management for the autopro CLI.
package config

import (
	"time"

	"github.com/sylvanlake-autopro/autopro/internal/dataapi"
	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features/dashboard"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// Default configuration values.
const (
	DefaultPort   = 8765
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix     = "AUTOPRO_"
)

// ConfigFileNames are searched in order.
var ConfigFileNames = []string{"autopro.yaml", "autopro.yml"}

// APIConfig holds the data API endpoint and key.
type APIConfig struct {
	URL     string `koanf:"url"`
	AnonKey string `koanf:"anon_key"`
}

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:     DefaultPort,
		AutoOpen: true,
	}
}

// Config holds all CLI configuration options.
type Config struct {
	API          APIConfig                 `koanf:"api"`
	UI           *UIConfig                 `koanf:"ui"`
	Brand        components.Brand          `koanf:"brand"`
	Tabs         tabs.List                 `koanf:"tabs"`
	Views        map[string]dashboard.View `koanf:"views"`
	TimeZone     string                    `koanf:"timezone"`
	Verbose      bool                      `koanf:"verbose"`
	OutputFormat string                    `koanf:"output"`
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := *c.UI
	if ui.Port == 0 {
		ui.Port = DefaultPort
	}
	return &ui
}

// HasAPI reports whether a data API endpoint is configured.
func (c *Config) HasAPI() bool {
	return c.API.URL != ""
}

// DataAPIConfig returns the data client configuration.
func (c *Config) DataAPIConfig() dataapi.Config {
	return dataapi.Config{
		BaseURL: c.API.URL,
		APIKey:  c.API.AnonKey,
	}
}

// Location returns the display time zone. An empty TimeZone means local time.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}
