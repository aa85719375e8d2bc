package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features/dashboard"
)

// NewTabsCommand creates the tabs command.
func NewTabsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the dashboard tabs",
		Long: `List the dashboard tabs in display order, with the page each tab links to
and the data view configured for it.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Show the tab list
  autopro tabs

  # As JSON
  autopro tabs -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTabs(NewCommandContext(cmd))
		},
	}
}

func runTabs(c *CommandContext) error {
	r := c.Renderer
	list := c.Cfg.Tabs

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(list)
	case output.ModeYAML:
		return r.YAML(list)
	}

	rows := make([][]string, len(list))
	for i, t := range list {
		view := "-"
		if v, ok := c.Cfg.Views[t.ID]; ok {
			view = v.Resource
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			t.ID,
			dashboard.TabTitle(t),
			t.Target,
			view,
		}
	}
	r.Table([]string{"#", "ID", "Label", "Page", "View"}, rows)
	return nil
}
