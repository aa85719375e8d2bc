package config

import (
	"fmt"
	"sort"

	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Tabs.Validate(); err != nil {
		return fmt.Errorf("tabs: %w", err)
	}

	ids := make([]string, 0, len(c.Views))
	for id := range c.Views {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := c.Tabs.Find(id); !ok {
			return fmt.Errorf("views: %q is not a configured tab", id)
		}
		if err := c.Views[id].Validate(); err != nil {
			return fmt.Errorf("views: %q: %w", id, err)
		}
	}

	if c.API.URL != "" || c.API.AnonKey != "" {
		if err := c.DataAPIConfig().Validate(); err != nil {
			return fmt.Errorf("api: %w\nHint: set api.url and api.anon_key in autopro.yaml or AUTOPRO_API__URL and AUTOPRO_API__ANON_KEY", err)
		}
	}

	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}
