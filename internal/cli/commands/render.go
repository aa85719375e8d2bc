package commands

import (
	"bytes"
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features/dashboard"
)

// RenderOptions holds options for the render commands.
type RenderOptions struct {
	Tab    string
	Format string
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render dashboard fragments",
		Long: `Render dashboard fragments without starting the server.

Fragments are rendered without event handlers, so the output can be pasted
into other pages or inspected as Markdown.`,
	}

	cmd.AddCommand(newRenderHeaderCommand())
	cmd.AddCommand(newRenderViewCommand())

	return cmd
}

func newRenderHeaderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "header",
		Short: "Render the tab header",
		Example: `  # Header with the invoices tab highlighted
  autopro render header --tab invoices

  # As Markdown
  autopro render header --tab chat --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := NewCommandContext(cmd)
			header := components.Header(components.HeaderProps{
				Brand:   c.Cfg.Brand,
				Tabs:    c.Cfg.Tabs,
				Active:  opts.Tab,
				Actions: components.StaticActions{},
			})
			return writeFragment(cmd.Context(), c, header, opts.Format, "Header")
		},
	}

	cmd.Flags().StringVar(&opts.Tab, "tab", "", "Active tab id")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Fragment format: html or markdown (default follows --output)")
	_ = cmd.RegisterFlagCompletionFunc("tab", completeTabIDs)

	return cmd
}

func newRenderViewCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "view <tab>",
		Short: "Fetch and render a tab's data view",
		Example: `  # Invoices view as Markdown
  autopro render view invoices --format markdown`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTabIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			view, err := loadView(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return writeFragment(cmd.Context(), c, view, opts.Format, "View")
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Fragment format: html or markdown (default follows --output)")

	return cmd
}

// loadView fetches the rows of a tab's configured view.
func loadView(ctx context.Context, c *CommandContext, tabID string) (templ.Component, error) {
	tab, ok := c.Cfg.Tabs.Find(tabID)
	if !ok {
		return nil, fmt.Errorf("tab %q not found", tabID)
	}
	view, ok := c.Cfg.Views[tab.ID]
	if !ok {
		return nil, fmt.Errorf("tab %q has no view configured", tab.ID)
	}
	client, err := c.DataClient()
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := client.GetJSON(ctx, view.Resource, &rows); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", view.Resource, err)
	}

	title := view.Title
	if title == "" {
		title = dashboard.TabTitle(tab)
	}
	return components.DataView(components.ViewData{
		Title:        title,
		Columns:      view.Columns,
		Rows:         rows,
		EmptyMessage: view.Empty,
		Formatter:    c.Formatter(),
		Actions:      components.StaticActions{},
	}), nil
}

type fragmentOutput struct {
	HTML     string `json:"html" yaml:"html"`
	Markdown string `json:"markdown" yaml:"markdown"`
}

// writeFragment renders c as HTML, Markdown, or both inside JSON/YAML.
func writeFragment(ctx context.Context, c *CommandContext, comp templ.Component, format, title string) error {
	var buf bytes.Buffer
	if err := comp.Render(ctx, &buf); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	markup := buf.String()
	r := c.Renderer

	if format == "" {
		switch r.EffectiveMode() {
		case output.ModeJSON, output.ModeYAML:
			md, err := htmltomarkdown.ConvertString(markup)
			if err != nil {
				return fmt.Errorf("failed to convert to markdown: %w", err)
			}
			out := fragmentOutput{HTML: markup, Markdown: md}
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(out)
			}
			return r.YAML(out)
		case output.ModeMarkdown:
			format = "markdown"
		default:
			format = "html"
		}
	}

	switch format {
	case "html":
		r.Println(markup)
	case "markdown", "md":
		md, err := htmltomarkdown.ConvertString(markup)
		if err != nil {
			return fmt.Errorf("failed to convert to markdown: %w", err)
		}
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Println(output.FormatHeader(1, title))
			r.Println()
		}
		r.Println(md)
	default:
		return fmt.Errorf("unknown format %q (want html or markdown)", format)
	}
	return nil
}

func completeTabIDs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return getConfig().Tabs.IDs(), cobra.ShellCompDirectiveNoFileComp
}
