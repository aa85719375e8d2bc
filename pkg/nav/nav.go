// Package nav holds the public website's header and footer link tables.
package nav

import (
	"fmt"
	"path"
	"strings"
)

// Link is a single navigation entry.
type Link struct {
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Href      string `json:"href" yaml:"href"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	AriaLabel string `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
}

// Group is a titled set of links. A group without links is a plain link
// itself and uses Href.
type Group struct {
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`
}

// HeaderData is the site header menu.
type HeaderData struct {
	Links           []Group `json:"links" yaml:"links"`
	MobileOnlyLinks []Link  `json:"mobileOnlyLinks" yaml:"mobileOnlyLinks"`
	Actions         []Link  `json:"actions" yaml:"actions"`
}

// FooterData is the site footer.
type FooterData struct {
	Links          []Group `json:"links" yaml:"links"`
	SecondaryLinks []Link  `json:"secondaryLinks" yaml:"secondaryLinks"`
	SocialLinks    []Link  `json:"socialLinks" yaml:"socialLinks"`
}

// Permalink normalises a site-relative path: a single leading slash and no
// trailing slash. Absolute URLs are returned untouched.
func Permalink(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	cleaned := path.Clean("/" + strings.TrimSpace(p))
	return cleaned
}

// FootNote returns the footer copyright line for the given year.
func FootNote(year int) string {
	return fmt.Sprintf("© %d %s. All rights reserved. %s · %s", year, BusinessName, BusinessAddress, BusinessPhone)
}

// All returns every distinct site-relative href referenced by the header and
// footer, in first-seen order.
func All() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(href string) {
		if href == "" || strings.HasPrefix(href, "http") {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}
		out = append(out, href)
	}

	for _, g := range Header.Links {
		add(g.Href)
		for _, l := range g.Links {
			add(l.Href)
		}
	}
	for _, l := range Header.MobileOnlyLinks {
		add(l.Href)
	}
	for _, g := range Footer.Links {
		for _, l := range g.Links {
			add(l.Href)
		}
	}
	for _, l := range Footer.SecondaryLinks {
		add(l.Href)
	}
	return out
}
