package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sylvanlake-autopro/autopro/internal/cli/config"
	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
	"github.com/sylvanlake-autopro/autopro/pkg/display"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Env         string
	Description string
	Category    string // "api", "ui", "display", "cli"
}

// configFields mirrors internal/cli/config.Config. Keys under brand, tabs and
// views are documented by example instead.
func configFields() []ConfigField {
	modes := make([]string, len(output.Modes))
	for i, m := range output.Modes {
		modes[i] = string(m)
	}
	return []ConfigField{
		{Name: "api.url", Type: "string", Env: envName("api.url"), Description: "Data API base URL", Category: "api"},
		{Name: "api.anon_key", Type: "string", Env: envName("api.anon_key"), Description: "Data API anon key, sent as apikey and bearer token", Category: "api"},

		{Name: "ui.port", Type: "int", Default: fmt.Sprint(config.DefaultPort), Env: envName("ui.port"), Description: "Dashboard server port", Category: "ui"},
		{Name: "ui.auto_open", Type: "bool", Default: "true", Env: envName("ui.auto_open"), Description: "Open the browser when the server starts", Category: "ui"},
		{Name: "ui.watch", Type: "bool", Default: "false", Env: envName("ui.watch"), Description: "Reload the browser when static assets change", Category: "ui"},
		{Name: "ui.session_secret", Type: "string", Env: envName("ui.session_secret"), Description: "Cookie signing key; a random key is used when empty", Category: "ui"},

		{Name: "timezone", Type: "string", Env: envName("timezone"), Description: "IANA time zone for dates and times; local time when empty", Category: "display"},

		{Name: "verbose", Type: "bool", Default: "false", Env: envName("verbose"), Description: "Debug logging", Category: "cli"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Env: envName("output"), Description: "Output format: " + strings.Join(modes, ", "), Category: "cli"},
	}
}

func envName(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "autopro configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("autopro reads %s from the working directory or the nearest parent directory. Every key is optional.",
		InlineCode(config.ConfigFileNames[0])))

	fields := configFields()
	sections := []struct {
		category, title string
	}{
		{"api", "Data API"},
		{"ui", "Dashboard Server"},
		{"display", "Display"},
		{"cli", "Command Line"},
	}
	for _, s := range sections {
		w.Header(2, s.title)
		var rows [][]string
		for _, f := range fields {
			if f.Category != s.category {
				continue
			}
			defVal := f.Default
			if defVal == "" {
				defVal = "-"
			}
			rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, f.Description})
		}
		w.Table([]string{"Field", "Type", "Default", "Description"}, rows)
	}

	w.Header(2, "Data Views")
	w.Paragraph("A view renders rows from the data API under a tab. Views are keyed by tab id.")
	kinds := []string{
		InlineCode(string(display.KindText)),
		InlineCode(string(display.KindCurrency)),
		InlineCode(string(display.KindDate)),
		InlineCode(string(display.KindTime)),
		InlineCode(string(display.KindDateTime)),
	}
	w.Paragraph("Column formats: " + strings.Join(kinds, ", ") + ".")

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# autopro.yaml
api:
  url: ${SUPABASE_URL}
  anon_key: ${SUPABASE_ANON_KEY}

ui:
  port: 8765
  session_secret: ${AUTOPRO_SESSION_SECRET}

timezone: America/Edmonton

brand:
  badge: NAPA
  title: Sylvan Lake AutoPro
  subtitle: Business Dashboard

views:
  invoices:
    resource: invoices?select=*&order=created_at.desc
    title: Invoices
    empty: No invoices yet.
    columns:
      - {key: invoice_number, label: Invoice, copy: true}
      - {key: total, label: Total, format: currency}
      - {key: created_at, label: Created, format: datetime}`)

	w.Header(2, "Environment Variables")
	w.Paragraph("Use `${VAR_NAME}` in api.url, api.anon_key and ui.session_secret to read a value from the environment.")

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
