package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/sylvanlake-autopro/autopro/pkg/display"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// =============================================================================
// Helpers
// =============================================================================

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// tabAnchors returns the anchors of the tab strip.
func tabAnchors(t *testing.T, markup string) []*html.Node {
	t.Helper()
	navs := findAll(parse(t, markup), isElement("nav"))
	require.Len(t, navs, 1)
	return findAll(navs[0], isElement("a"))
}

func highlighted(anchors []*html.Node) []string {
	var hrefs []string
	for _, a := range anchors {
		if strings.Contains(attr(a, "class"), TabActiveClass) {
			hrefs = append(hrefs, attr(a, "href"))
		}
	}
	return hrefs
}

// recordingActions is an Actions capability with recognisable attributes.
type recordingActions struct{}

func (recordingActions) Reload() templ.Attributes {
	return templ.Attributes{"data-action": "reload"}
}

func (recordingActions) Copy(value string) templ.Attributes {
	return templ.Attributes{"data-copy": value}
}

// =============================================================================
// Header
// =============================================================================

func TestHeader_HighlightsAtMostOneTab(t *testing.T) {
	list := tabs.Default()

	actives := append(list.IDs(), "", "unknown", "Invoices", "invoices.html")
	for _, active := range actives {
		t.Run("active="+active, func(t *testing.T) {
			out := render(t, Header(HeaderProps{Brand: DefaultBrand, Tabs: list, Active: active}))
			anchors := tabAnchors(t, out)
			require.Len(t, anchors, len(list))

			got := highlighted(anchors)
			if tab, ok := list.Find(active); ok {
				assert.Equal(t, []string{tab.Target}, got)
			} else {
				assert.Empty(t, got, "unknown ids highlight nothing")
			}
		})
	}
}

func TestHeader_TabOrderAndShape(t *testing.T) {
	list := tabs.Default()
	out := render(t, Header(HeaderProps{Brand: DefaultBrand, Tabs: list, Active: "chat"}))
	anchors := tabAnchors(t, out)

	for i, a := range anchors {
		tab := list[i]
		assert.Equal(t, tab.Target, attr(a, "href"))

		class := attr(a, "class")
		if tab.Settings {
			assert.Contains(t, class, "w-10 h-10")
			assert.Equal(t, "Settings", attr(a, "title"))
			assert.Empty(t, strings.TrimSpace(textOf(a)), "settings tab has no label")
			continue
		}

		assert.Contains(t, class, "whitespace-nowrap")
		assert.Equal(t, tab.Label, strings.TrimSpace(textOf(a)))
		if i == 0 {
			assert.NotContains(t, class, "ml-1", "first tab has no left margin")
		} else {
			assert.Contains(t, class, "ml-1")
		}
		if !strings.Contains(class, TabActiveClass) {
			assert.Contains(t, class, TabInactiveClass)
		}
	}
}

func TestTabLink_SanitizesTarget(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "invoices.html", want: "invoices.html"},
		{target: "https://example.com/x", want: "https://example.com/x"},
		{target: "javascript:alert(1)", want: string(templ.FailedSanitizationURL)},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			out := render(t, TabLink(tabs.Tab{ID: "x", Label: "X", Target: tt.target}, 0, false))
			anchors := findAll(parse(t, out), isElement("a"))
			require.Len(t, anchors, 1)
			assert.Equal(t, tt.want, attr(anchors[0], "href"))
		})
	}
}

func TestTabLink_AriaCurrent(t *testing.T) {
	tab := tabs.Tab{ID: "invoices", Label: "Invoices", Target: "invoices.html"}

	active := findAll(parse(t, render(t, TabLink(tab, 0, true))), isElement("a"))
	require.Len(t, active, 1)
	assert.Equal(t, "page", attr(active[0], "aria-current"))

	inactive := render(t, TabLink(tab, 0, false))
	assert.NotContains(t, inactive, "aria-current")
}

func TestHeader_EscapesLabels(t *testing.T) {
	out := render(t, Header(HeaderProps{Tabs: tabs.Default()}))
	assert.Contains(t, out, "Core &amp; Warranty")
}

func TestHeader_RightContent(t *testing.T) {
	t.Run("defaults to refresh control", func(t *testing.T) {
		out := render(t, Header(HeaderProps{Brand: DefaultBrand, Tabs: tabs.Default()}))
		assert.Contains(t, out, `onclick="location.reload()"`)
		assert.Contains(t, out, "Refresh")
	})

	t.Run("uses injected actions", func(t *testing.T) {
		out := render(t, Header(HeaderProps{Tabs: tabs.Default(), Actions: recordingActions{}}))
		assert.Contains(t, out, `data-action="reload"`)
		assert.NotContains(t, out, "onclick")
	})

	t.Run("custom content replaces refresh", func(t *testing.T) {
		out := render(t, Header(HeaderProps{
			Tabs:  tabs.Default(),
			Right: templ.Raw(`<span id="custom">Hi</span>`),
		}))
		assert.Contains(t, out, `<span id="custom">Hi</span>`)
		assert.NotContains(t, out, "Refresh")
	})
}

func TestHeader_Brand(t *testing.T) {
	out := render(t, Header(HeaderProps{Brand: DefaultBrand}))
	assert.Contains(t, out, "NAPA")
	assert.Contains(t, out, "Sylvan Lake AutoPro")
	assert.Contains(t, out, "Business Dashboard")
}

// =============================================================================
// Feedback fragments
// =============================================================================

func TestCopyButton(t *testing.T) {
	for _, v := range []string{"", "-"} {
		assert.Empty(t, render(t, CopyButton(v, false, nil)), "value %q", v)
	}

	out := render(t, CopyButton(`O'Brien "Auto"`, true, ScriptActions{}))
	buttons := findAll(parse(t, out), isElement("button"))
	require.Len(t, buttons, 1)

	assert.Equal(t, `event.stopPropagation(); copyToClipboard("O'Brien \"Auto\"", this)`, attr(buttons[0], "onclick"))
	assert.Contains(t, attr(buttons[0], "class"), "w-5 h-5")
	assert.Equal(t, "Copy", attr(buttons[0], "title"))

	large := render(t, CopyButton("x", false, recordingActions{}))
	assert.Contains(t, large, "w-6 h-6")
	assert.Contains(t, large, `data-copy="x"`)
}

func TestStaticActions(t *testing.T) {
	out := render(t, CopyButton("x", false, StaticActions{}))
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "📋")
}

func TestFragments(t *testing.T) {
	assert.Contains(t, render(t, Loading()), "Loading...")
	assert.Contains(t, render(t, ErrorBox("HTTP 500 <b>")), "HTTP 500 &lt;b&gt;")
	assert.Contains(t, render(t, Empty("No invoices")), "No invoices")
}

// =============================================================================
// Data view and page
// =============================================================================

func TestDataView(t *testing.T) {
	total := 1234.5
	out := render(t, DataView(ViewData{
		Title: "Invoices",
		Columns: []Column{
			{Key: "number", Label: "Invoice", Copy: true},
			{Key: "total", Label: "Total", Format: display.KindCurrency},
			{Key: "due", Format: display.KindDate},
		},
		Rows: []map[string]any{
			{"number": "INV-1001", "total": total, "due": "2024-01-15"},
			{"number": "INV-1002", "total": nil, "due": nil},
		},
		Actions: recordingActions{},
	}))

	doc := parse(t, out)
	headers := findAll(doc, isElement("th"))
	require.Len(t, headers, 3)
	assert.Equal(t, "due", textOf(headers[2]), "label falls back to key")

	cells := findAll(doc, isElement("td"))
	require.Len(t, cells, 6)
	assert.Equal(t, "INV-1001📋", textOf(cells[0]))
	assert.Equal(t, "$1,234.50", textOf(cells[1]))
	assert.Equal(t, "2024-01-15", textOf(cells[2]))
	assert.Equal(t, "-", textOf(cells[4]))
	assert.Equal(t, "-", textOf(cells[5]))
	assert.Contains(t, out, `data-copy="INV-1001"`)
	assert.Contains(t, out, `id="view-content"`)
}

func TestDataView_Empty(t *testing.T) {
	out := render(t, DataView(ViewData{EmptyMessage: "No statements yet."}))
	assert.Contains(t, out, "No statements yet.")
	assert.NotContains(t, out, "<table")
}

func TestDataView_InfersColumns(t *testing.T) {
	out := render(t, DataView(ViewData{Rows: []map[string]any{{"b": "2", "a": "1"}}}))
	headers := findAll(parse(t, out), isElement("th"))
	require.Len(t, headers, 2)
	assert.Equal(t, "a", textOf(headers[0]))
	assert.Equal(t, "b", textOf(headers[1]))
}

func TestViewPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain path", url: "/views/invoices", want: `@get("/views/invoices")`},
		{name: "single quote stays inside the literal", url: "/views/x')+alert(1)+('", want: `@get("/views/x')+alert(1)+('")`},
		{name: "double quote is escaped", url: `/views/"x"`, want: `@get("/views/\"x\"")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, ViewPlaceholder(tt.url))
			sections := findAll(parse(t, out), isElement("section"))
			require.Len(t, sections, 1)
			assert.Equal(t, ViewContentID, attr(sections[0], "id"))
			assert.Equal(t, tt.want, attr(sections[0], "data-init"))
			assert.Contains(t, out, "Loading...")
		})
	}
}

func TestViewMessage(t *testing.T) {
	out := render(t, ViewMessage(ErrorBox("boom")))
	sections := findAll(parse(t, out), isElement("section"))
	require.Len(t, sections, 1)
	assert.Equal(t, ViewContentID, attr(sections[0], "id"))
	assert.Equal(t, "boom", textOf(sections[0]))
}

func TestPage(t *testing.T) {
	out := render(t, Page(PageProps{
		Title:  "Invoices",
		Header: HeaderProps{Brand: DefaultBrand, Tabs: tabs.Default(), Active: "invoices"},
		Body:   Empty("nothing"),
		Dev:    true,
	}))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Invoices - Sylvan Lake AutoPro</title>")
	assert.Contains(t, out, `src="/static/dashboard.js"`)
	assert.Contains(t, out, DatastarScript)
	assert.Contains(t, out, "@get('/reload')")
	assert.Contains(t, out, "nothing")
}
