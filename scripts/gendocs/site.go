package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sylvanlake-autopro/autopro/pkg/nav"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// generateSiteDocs writes the dashboard tab table and the website link tables.
func generateSiteDocs(outDir string) error {
	log.Printf("Generating site docs to %s", outDir)

	w := NewMarkdownWriter()
	w.Frontmatter("Tabs and Navigation", "Dashboard tabs and website navigation links")
	w.GeneratedMarker()

	w.Header(1, "Tabs and Navigation")

	w.Header(2, "Dashboard Tabs")
	var tabRows [][]string
	for i, t := range tabs.Default() {
		label := t.Label
		if t.Settings {
			label = "(icon only)"
		}
		tabRows = append(tabRows, []string{strconv.Itoa(i + 1), InlineCode(t.ID), label, InlineCode(t.Target)})
	}
	w.Table([]string{"#", "ID", "Label", "Page"}, tabRows)

	w.Header(2, "Header")
	writeGroups(w, nav.Header.Links)
	w.Header(3, "Mobile Only")
	writeLinks(w, nav.Header.MobileOnlyLinks)
	w.Header(3, "Actions")
	writeLinks(w, nav.Header.Actions)

	w.Header(2, "Footer")
	writeGroups(w, nav.Footer.Links)
	w.Header(3, "Secondary")
	writeLinks(w, nav.Footer.SecondaryLinks)
	w.Header(3, "Social")
	writeLinks(w, nav.Footer.SocialLinks)
	w.Paragraph(nav.FootNote(time.Now().Year()))

	return os.WriteFile(filepath.Join(outDir, "navigation.md"), w.Bytes(), 0600)
}

func writeGroups(w *MarkdownWriter, groups []nav.Group) {
	for _, g := range groups {
		if len(g.Links) == 0 {
			w.Paragraph("**" + g.Title + "**: " + InlineCode(g.Href))
			continue
		}
		w.Header(3, g.Title)
		writeLinks(w, g.Links)
	}
}

func writeLinks(w *MarkdownWriter, links []nav.Link) {
	var rows [][]string
	for _, l := range links {
		text := l.Text
		if text == "" {
			text = l.AriaLabel
		}
		rows = append(rows, []string{text, InlineCode(l.Href)})
	}
	w.Table([]string{"Text", "Href"}, rows)
}
