// Package components provides the dashboard's HTML components.
package components

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -path .

import (
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/sylvanlake-autopro/autopro/pkg/display"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// Brand is the header branding block.
type Brand struct {
	Badge    string `koanf:"badge"`
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`
}

// DefaultBrand is used when no branding is configured.
var DefaultBrand = Brand{
	Badge:    "NAPA",
	Title:    "Sylvan Lake AutoPro",
	Subtitle: "Business Dashboard",
}

// Tab class sets.
const (
	TabActiveClass   = "bg-white text-slate-800 border-t border-l border-r border-slate-300"
	TabInactiveClass = "bg-slate-100 text-slate-600 hover:bg-slate-50 border border-transparent"
)

// HeaderProps configures Header.
type HeaderProps struct {
	Brand  Brand
	Tabs   tabs.List
	Active string

	// Right replaces the refresh control when set.
	Right   templ.Component
	Actions Actions
}

// DatastarScript is the datastar client bundle.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// TailwindScript is the Tailwind play CDN used for styling.
const TailwindScript = "https://cdn.tailwindcss.com"

// PageProps configures Page.
type PageProps struct {
	Title  string
	Header HeaderProps
	Body   templ.Component

	// Dev subscribes the page to /reload for live reload of static assets.
	Dev bool
}

// ViewContentID is the element id patched by view updates.
const ViewContentID = "view-content"

// Column describes one column of a data view.
type Column struct {
	Key    string       `koanf:"key"`
	Label  string       `koanf:"label"`
	Format display.Kind `koanf:"format"`
	Copy   bool         `koanf:"copy"`
}

// Heading returns the column label, falling back to the key.
func (c Column) Heading() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

// ViewData is a rendered snapshot of a remote resource.
type ViewData struct {
	Title        string
	Columns      []Column
	Rows         []map[string]any
	EmptyMessage string
	Formatter    display.Formatter
	Actions      Actions
}

// classes joins non-empty class lists.
func classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func tabClass(t tabs.Tab, index int, active bool) string {
	state := TabInactiveClass
	if active {
		state = TabActiveClass
	}
	if t.Settings {
		return classes("flex items-center justify-center w-10 h-10 rounded-t-lg ml-1", state)
	}

	spacing := ""
	if index > 0 {
		spacing = "ml-1"
	}
	return classes("flex items-center gap-2 px-5 py-2.5 text-sm font-medium rounded-t-lg", spacing, "whitespace-nowrap", state)
}

func copyButtonClass(small bool) string {
	size := "w-6 h-6 text-xs"
	if small {
		size = "w-5 h-5 text-xs"
	}
	return classes(size, "inline-flex items-center justify-center rounded hover:bg-slate-200 text-slate-400 hover:text-slate-600 transition-colors ml-1")
}

func pageTitle(p PageProps) string {
	if p.Title == "" {
		return p.Header.Brand.Title
	}
	return p.Title + " - " + p.Header.Brand.Title
}

// viewInit is the datastar expression that loads a view from url.
func viewInit(url string) string {
	return "@get(" + jsString(url) + ")"
}

func emptyMessage(msg string) string {
	if msg == "" {
		return "No records found."
	}
	return msg
}

// viewColumns returns the configured columns, or the keys of the first row
// in sorted order.
func viewColumns(v ViewData) []Column {
	if len(v.Columns) > 0 || len(v.Rows) == 0 {
		return v.Columns
	}
	return columnsFromRow(v.Rows[0])
}

func columnsFromRow(row map[string]any) []Column {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cols := make([]Column, len(keys))
	for i, k := range keys {
		cols[i] = Column{Key: k, Format: display.KindText}
	}
	return cols
}
