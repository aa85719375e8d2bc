// Package dashboard provides the staff dashboard tab pages and their data views.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/pkg/display"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// Session keys.
const (
	SessionName   = "autopro_dashboard"
	sessionTabKey = "last_tab"
)

// View is the read-only data view shown under a tab.
type View struct {
	// Resource is the data API path, including any query string.
	Resource string              `koanf:"resource"`
	Title    string              `koanf:"title"`
	Empty    string              `koanf:"empty"`
	Columns  []components.Column `koanf:"columns"`
}

// Validate checks the resource and column formats.
func (v View) Validate() error {
	if strings.TrimSpace(v.Resource) == "" {
		return fmt.Errorf("resource is required")
	}
	for i, c := range v.Columns {
		if c.Key == "" {
			return fmt.Errorf("column %d: key is required", i)
		}
		if _, err := display.ParseKind(string(c.Format)); err != nil {
			return fmt.Errorf("column %q: %w", c.Key, err)
		}
	}
	return nil
}

// DataSource reads JSON from the data API.
type DataSource interface {
	GetJSON(ctx context.Context, path string, out any) error
}

// Config holds the dependencies of the dashboard handlers.
type Config struct {
	Tabs      tabs.List
	Views     map[string]View // keyed by tab id
	Brand     components.Brand
	API       DataSource // nil when the data API is not configured
	Formatter display.Formatter
	Actions   components.Actions
	Logger    *slog.Logger
}

var titleCaser = cases.Title(language.English)

// TabTitle returns a display title for t, deriving one from the id for
// icon-only tabs.
func TabTitle(t tabs.Tab) string {
	if t.Label != "" {
		return t.Label
	}
	return titleCaser.String(strings.ReplaceAll(t.ID, "_", " "))
}
