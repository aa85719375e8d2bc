package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermalink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/about", "/about"},
		{"about", "/about"},
		{"/services/tires/", "/services/tires"},
		{"", "/"},
		{"https://g.page/sylvan-lake-autopro", "https://g.page/sylvan-lake-autopro"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Permalink(tt.in))
		})
	}
}

func TestHeader(t *testing.T) {
	titles := make([]string, len(Header.Links))
	for i, g := range Header.Links {
		titles[i] = g.Title
	}
	assert.Equal(t, []string{"Services", "Inspections", "About", "Shop Tires", "Contact"}, titles)

	assert.Len(t, Header.Links[0].Links, 16)
	assert.Equal(t, "/services/tire-pricing", Header.Links[3].Href)
	assert.Empty(t, Header.Links[3].Links)

	assert.Equal(t, "_blank", Header.Actions[0].Target)
	assert.Equal(t, BookingURL, Header.Actions[0].Href)
}

func TestFooter(t *testing.T) {
	assert.Len(t, Footer.Links, 4)
	for _, g := range Footer.Links {
		assert.NotEmpty(t, g.Links, g.Title)
	}
	assert.Len(t, Footer.SocialLinks, 2)
	assert.Equal(t, "Facebook", Footer.SocialLinks[0].AriaLabel)
}

func TestFootNote(t *testing.T) {
	note := FootNote(2025)
	assert.True(t, strings.HasPrefix(note, "© 2025 Sylvan Lake AUTOPRO."))
	assert.Contains(t, note, BusinessPhone)
}

func TestAll(t *testing.T) {
	hrefs := All()

	seen := make(map[string]bool)
	for _, h := range hrefs {
		assert.False(t, seen[h], "duplicate href %s", h)
		seen[h] = true
		assert.True(t, strings.HasPrefix(h, "/"), h)
	}

	assert.True(t, seen["/services/fleet-services"], "footer-only links are included")
	assert.True(t, seen["/privacy"])
	assert.False(t, seen[BookingURL], "external links are skipped")
}
