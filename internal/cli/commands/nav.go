package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
	"github.com/sylvanlake-autopro/autopro/pkg/nav"
)

// NewNavCommand creates the nav command.
func NewNavCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nav [header|footer|paths]",
		Short: "Show the website navigation tables",
		Long: `Print the public website's header and footer link tables.

The paths section lists every site-relative page the tables link to, once
each, in menu order.`,
		ValidArgs: []string{"header", "footer", "paths"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Example: `  # Both tables
  autopro nav

  # Footer as YAML
  autopro nav footer -o yaml

  # Pages linked from the site menus
  autopro nav paths`,
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			return runNav(NewCommandContext(cmd), section, time.Now().Year())
		},
	}
}

type navOutput struct {
	Header   *nav.HeaderData `json:"header,omitempty" yaml:"header,omitempty"`
	Footer   *nav.FooterData `json:"footer,omitempty" yaml:"footer,omitempty"`
	FootNote string          `json:"footNote,omitempty" yaml:"footNote,omitempty"`
}

func runNav(c *CommandContext, section string, year int) error {
	r := c.Renderer
	if section == "paths" {
		return runNavPaths(r)
	}
	showHeader := section == "" || section == "header"
	showFooter := section == "" || section == "footer"

	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		out := navOutput{}
		if showHeader {
			header := nav.Header
			out.Header = &header
		}
		if showFooter {
			footer := nav.Footer
			out.Footer = &footer
			out.FootNote = nav.FootNote(year)
		}
		if r.EffectiveMode() == output.ModeJSON {
			return r.JSON(out)
		}
		return r.YAML(out)
	}

	if showHeader {
		r.Header(1, "Header")
		r.Table([]string{"Menu", "Link", "Href"}, groupRows(nav.Header.Links))
		r.Println()
		r.Header(2, "Mobile only")
		r.Table([]string{"Link", "Href"}, linkRows(nav.Header.MobileOnlyLinks))
		r.Println()
		r.Header(2, "Actions")
		r.Table([]string{"Link", "Href"}, linkRows(nav.Header.Actions))
		r.Println()
	}
	if showFooter {
		r.Header(1, "Footer")
		r.Table([]string{"Section", "Link", "Href"}, groupRows(nav.Footer.Links))
		r.Println()
		r.Header(2, "Secondary")
		r.Table([]string{"Link", "Href"}, linkRows(nav.Footer.SecondaryLinks))
		r.Println()
		r.Header(2, "Social")
		r.Table([]string{"Link", "Href"}, linkRows(nav.Footer.SocialLinks))
		r.Println()
		r.Muted(nav.FootNote(year))
	}
	return nil
}

func runNavPaths(r *output.Renderer) error {
	paths := nav.All()
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string][]string{"paths": paths})
	case output.ModeYAML:
		return r.YAML(map[string][]string{"paths": paths})
	}

	rows := make([][]string, len(paths))
	for i, p := range paths {
		rows[i] = []string{p}
	}
	r.Header(1, "Pages")
	r.Table([]string{"Href"}, rows)
	return nil
}

func groupRows(groups []nav.Group) [][]string {
	var rows [][]string
	for _, g := range groups {
		if len(g.Links) == 0 {
			rows = append(rows, []string{g.Title, "", g.Href})
			continue
		}
		for _, l := range g.Links {
			rows = append(rows, []string{g.Title, linkText(l), l.Href})
		}
	}
	return rows
}

func linkRows(links []nav.Link) [][]string {
	rows := make([][]string, len(links))
	for i, l := range links {
		rows[i] = []string{linkText(l), l.Href}
	}
	return rows
}

// linkText names icon-only links by their aria label.
func linkText(l nav.Link) string {
	switch {
	case l.Text != "":
		return l.Text
	case l.AriaLabel != "":
		return l.AriaLabel
	case l.Icon != "":
		return fmt.Sprintf("(%s)", l.Icon)
	}
	return ""
}
