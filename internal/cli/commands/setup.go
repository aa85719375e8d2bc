package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/cli/config"
	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
	"github.com/sylvanlake-autopro/autopro/internal/dataapi"
	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/pkg/display"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// ErrNoAPI is returned by commands that need the data API when none is configured.
var ErrNoAPI = errors.New("data API is not configured\nHint: set api.url and api.anon_key in autopro.yaml, AUTOPRO_API__URL/AUTOPRO_API__ANON_KEY, or --api-url/--api-key")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer for cmd's output.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		mode = output.ModeAuto
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// DataClient creates a data API client from the configuration.
func (c *CommandContext) DataClient() (*dataapi.Client, error) {
	if !c.Cfg.HasAPI() {
		return nil, ErrNoAPI
	}
	apiCfg := c.Cfg.DataAPIConfig()
	apiCfg.Logger = c.Logger
	return dataapi.New(apiCfg)
}

// Formatter returns the display formatter for the configured time zone.
func (c *CommandContext) Formatter() display.Formatter {
	loc, err := c.Cfg.Location()
	if err != nil {
		c.Logger.Warn("unknown time zone, using local time", "timezone", c.Cfg.TimeZone, "error", err)
		return display.Default
	}
	return display.Formatter{Location: loc}
}

// getConfig returns the loaded configuration, or the defaults when commands
// run outside the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Tabs:         tabs.Default(),
		Brand:        components.DefaultBrand,
		OutputFormat: config.DefaultOutput,
	}
}
