package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/ui"
	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features/dashboard"
	"github.com/sylvanlake-autopro/autopro/internal/ui/resources"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"ui"},
		Short:   "Start the staff dashboard",
		Long: `Start a local web server with the staff dashboard.

Every tab gets its own page. Tabs with a configured view load their rows
from the data API and show them as a table with copy buttons.`,
		Example: `  # Start on the default port
  autopro serve

  # Start on a custom port without opening a browser
  autopro serve --port 3000 --no-browser

  # Reload browsers when static assets change (dev builds)
  autopro serve --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload browsers when static assets change")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg, logger := cmdCtx.Cfg, cmdCtx.Logger

	uiCfg := cfg.GetUIConfig()

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	dashCfg := dashboard.Config{
		Tabs:      cfg.Tabs,
		Views:     cfg.Views,
		Brand:     cfg.Brand,
		Formatter: cmdCtx.Formatter(),
		Actions:   components.ScriptActions{},
		Logger:    logger,
	}
	if cfg.HasAPI() {
		client, err := cmdCtx.DataClient()
		if err != nil {
			return fmt.Errorf("failed to create data API client: %w", err)
		}
		dashCfg.API = client
	} else {
		cmdCtx.Renderer.Warning("No data API configured, views will show an error")
	}

	secret := uiCfg.SessionSecret
	if secret == "" {
		secret = generateSessionSecret()
		logger.Debug("generated session secret, sessions reset on restart")
	}

	if watch && resources.Dir() == "" {
		logger.Warn("assets are embedded in this build, --watch has no effect")
	}

	server := ui.NewServer(ui.Config{
		Dashboard:     dashCfg,
		Port:          port,
		Watch:         watch,
		WatchDir:      resources.Dir(),
		SessionSecret: secret,
		Logger:        logger,
	})

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	cmdCtx.Renderer.Printf("Starting dashboard on http://localhost:%d\n", port)
	cmdCtx.Renderer.Muted("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// generateSessionSecret returns a random per-process secret.
func generateSessionSecret() string {
	return uuid.NewString() + uuid.NewString()
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
