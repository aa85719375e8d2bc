package output

import (
	"fmt"
	"slices"
	"sync"
)

// Indicator shows copy feedback on the error stream. On a terminal the
// line is redrawn in place; otherwise every state is printed on its own line.
type Indicator struct {
	mu      sync.Mutex
	r       *Renderer
	content string
	classes []string
}

// NewIndicator creates an indicator showing content and draws it.
func (r *Renderer) NewIndicator(content string) *Indicator {
	ind := &Indicator{r: r, content: content}
	ind.draw()
	return ind
}

// Content returns the current content.
func (i *Indicator) Content() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.content
}

// SetContent replaces the content and redraws.
func (i *Indicator) SetContent(content string) {
	i.mu.Lock()
	i.content = content
	i.mu.Unlock()
	i.draw()
}

// AddClass marks the indicator as highlighted while any class is set.
func (i *Indicator) AddClass(classes ...string) {
	i.mu.Lock()
	for _, c := range classes {
		if !slices.Contains(i.classes, c) {
			i.classes = append(i.classes, c)
		}
	}
	i.mu.Unlock()
	i.draw()
}

// RemoveClass removes classes and redraws.
func (i *Indicator) RemoveClass(classes ...string) {
	i.mu.Lock()
	i.classes = slices.DeleteFunc(i.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
	i.mu.Unlock()
	i.draw()
}

// Highlighted reports whether any class is set.
func (i *Indicator) Highlighted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.classes) > 0
}

// Done ends the indicator line.
func (i *Indicator) Done() {
	if i.r.isTTY {
		_, _ = fmt.Fprintln(i.r.errW)
	}
}

func (i *Indicator) draw() {
	i.mu.Lock()
	text, highlighted := i.content, len(i.classes) > 0
	i.mu.Unlock()

	if highlighted {
		text = i.r.styled(i.r.Styles.Badge, text)
	}
	if i.r.isTTY {
		// Clear the line, then redraw.
		_, _ = fmt.Fprintf(i.r.errW, "\r\033[K%s", text)
		return
	}
	_, _ = fmt.Fprintln(i.r.errW, text)
}
