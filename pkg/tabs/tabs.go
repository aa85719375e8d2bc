// Package tabs defines the staff dashboard tab list.
//
// The list is configuration data: Default returns the canonical ordering and
// callers may replace it from the config file. Either way a List is validated
// once at startup and treated as read-only afterwards.
package tabs

import (
	"errors"
	"fmt"
	"regexp"
)

// Tab describes one dashboard destination.
type Tab struct {
	ID       string `koanf:"id" json:"id" yaml:"id"`
	Label    string `koanf:"label" json:"label" yaml:"label"`
	Target   string `koanf:"target" json:"target" yaml:"target"`
	Icon     string `koanf:"icon" json:"icon" yaml:"icon"` // SVG path data
	Settings bool   `koanf:"settings" json:"settings,omitempty" yaml:"settings,omitempty"`
}

// List is an ordered tab list. Display order is slice order.
type List []Tab

// Icon path data for the canonical tabs.
const (
	iconInvoices   = "M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z"
	iconCores      = "M4 4v5h.582m15.356 2A8.001 8.001 0 004.582 9m0 0H9m11 11v-5h-.581m0 0a8.003 8.003 0 01-15.357-2m15.357 2H15"
	iconChat       = "M8 12h.01M12 12h.01M16 12h.01M21 12c0 4.418-4.03 8-9 8a9.863 9.863 0 01-4.255-.949L3 20l1.395-3.72C3.512 15.042 3 13.574 3 12c0-4.418 4.03-8 9-8s9 3.582 9 8z"
	iconEmails     = "M3 8l7.89 5.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"
	iconStatements = "M9 17v-2m3 2v-4m3 4v-6m2 10H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z"
	iconBookkeeper = "M17 20h5v-2a3 3 0 00-5.356-1.857M17 20H7m10 0v-2c0-.656-.126-1.283-.356-1.857M7 20H2v-2a3 3 0 015.356-1.857M7 20v-2c0-.656.126-1.283.356-1.857m0 0a5.002 5.002 0 019.288 0M15 7a3 3 0 11-6 0 3 3 0 016 0z"
	iconSearch     = "M21 21l-6-6m2-5a7 7 0 11-14 0 7 7 0 0114 0z"
	iconSettings   = "M10.325 4.317c.426-1.756 2.924-1.756 3.35 0a1.724 1.724 0 002.573 1.066c1.543-.94 3.31.826 2.37 2.37a1.724 1.724 0 001.065 2.572c1.756.426 1.756 2.924 0 3.35a1.724 1.724 0 00-1.066 2.573c.94 1.543-.826 3.31-2.37 2.37a1.724 1.724 0 00-2.572 1.065c-.426 1.756-2.924 1.756-3.35 0a1.724 1.724 0 00-2.573-1.066c-1.543.94-3.31-.826-2.37-2.37a1.724 1.724 0 00-1.065-2.572c-1.756-.426-1.756-2.924 0-3.35a1.724 1.724 0 001.066-2.573c-.94-1.543.826-3.31 2.37-2.37.996.608 2.296.07 2.572-1.065z M15 12a3 3 0 11-6 0 3 3 0 016 0z"
)

// Default returns a fresh copy of the canonical dashboard tab list.
func Default() List {
	return List{
		{ID: "invoices", Label: "Invoices", Target: "invoices.html", Icon: iconInvoices},
		{ID: "cores_warranty", Label: "Core & Warranty", Target: "cores-warranty.html", Icon: iconCores},
		{ID: "chat", Label: "Ask Protractor", Target: "chat.html", Icon: iconChat},
		{ID: "emails", Label: "Emails", Target: "emails.html", Icon: iconEmails},
		{ID: "statements", Label: "Statements", Target: "statements.html", Icon: iconStatements},
		{ID: "bookkeeper", Label: "Bookkeeper", Target: "bookkeeper.html", Icon: iconBookkeeper},
		{ID: "search", Label: "Search", Target: "search.html", Icon: iconSearch},
		{ID: "settings", Label: "", Target: "settings.html", Icon: iconSettings, Settings: true},
	}
}

// ErrEmptyList is returned by Validate for a list without tabs.
var ErrEmptyList = errors.New("tab list is empty")

// idPattern restricts ids to characters that are safe in URL paths and
// element attributes.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate checks that every tab has a slug id and a target and that ids are
// unique.
func (l List) Validate() error {
	if len(l) == 0 {
		return ErrEmptyList
	}

	seen := make(map[string]int, len(l))
	for i, t := range l {
		if t.ID == "" {
			return fmt.Errorf("tab %d: id is required", i)
		}
		if !idPattern.MatchString(t.ID) {
			return fmt.Errorf("tab %q: id may only contain letters, digits, '_' and '-'", t.ID)
		}
		if t.Target == "" {
			return fmt.Errorf("tab %q: target is required", t.ID)
		}
		if prev, ok := seen[t.ID]; ok {
			return fmt.Errorf("tab %q: duplicate id (also at position %d)", t.ID, prev)
		}
		seen[t.ID] = i
	}
	return nil
}

// Find returns the tab with the given id.
func (l List) Find(id string) (Tab, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// ByTarget returns the tab whose Target equals target.
func (l List) ByTarget(target string) (Tab, bool) {
	for _, t := range l {
		if t.Target == target {
			return t, true
		}
	}
	return Tab{}, false
}

// IDs returns the tab ids in display order.
func (l List) IDs() []string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}
