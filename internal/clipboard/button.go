package clipboard

import (
	"slices"
	"strings"
	"sync"
)

// Button is an in-memory Indicator holding content and a class list.
type Button struct {
	mu      sync.Mutex
	content string
	classes []string
}

// NewButton returns a Button with the given content and classes.
func NewButton(content string, classes ...string) *Button {
	return &Button{content: content, classes: slices.Clone(classes)}
}

// Content returns the current content.
func (b *Button) Content() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.content
}

// SetContent replaces the content.
func (b *Button) SetContent(content string) {
	b.mu.Lock()
	b.content = content
	b.mu.Unlock()
}

// AddClass adds classes that are not present yet.
func (b *Button) AddClass(classes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range classes {
		if !slices.Contains(b.classes, c) {
			b.classes = append(b.classes, c)
		}
	}
}

// RemoveClass removes classes.
func (b *Button) RemoveClass(classes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.classes = slices.DeleteFunc(b.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

// HasClass reports whether class is set.
func (b *Button) HasClass(class string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Contains(b.classes, class)
}

// Class returns the class attribute value.
func (b *Button) Class() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.classes, " ")
}
