// Package clipboard copies text to the system clipboard and flashes a
// confirmation on whatever control triggered the copy.
package clipboard

import (
	"time"

	"github.com/atotto/clipboard"
)

// RevertDelay is how long the confirmation stays visible.
const RevertDelay = 1000 * time.Millisecond

// Confirmed replaces the indicator content while the confirmation is shown.
const Confirmed = "✓"

// ConfirmClasses are added to the indicator while the confirmation is shown.
var ConfirmClasses = []string{"bg-green-100", "text-green-700"}

// Indicator is the visual state of a copy control.
type Indicator interface {
	Content() string
	SetContent(content string)
	AddClass(classes ...string)
	RemoveClass(classes ...string)
}

// Writer puts text on a clipboard.
type Writer func(text string) error

// System writes to the operating system clipboard.
var System Writer = clipboard.WriteAll

// Feedback copies text and shows a timed confirmation.
type Feedback struct {
	Write Writer

	// AfterFunc schedules the revert. Defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func()) *time.Timer
}

// New returns a Feedback writing through w.
func New(w Writer) *Feedback {
	return &Feedback{Write: w}
}

// Copy writes text, then replaces the indicator content with Confirmed and
// adds ConfirmClasses. After RevertDelay the original content is restored
// and the classes removed. The returned channel is closed once reverted.
//
// The revert timer cannot be cancelled and overlapping copies are not
// coalesced: each one restores the content it saw when it started.
func (f *Feedback) Copy(text string, ind Indicator) (<-chan struct{}, error) {
	write := f.Write
	if write == nil {
		write = System
	}
	if err := write(text); err != nil {
		return nil, err
	}

	original := ind.Content()
	ind.SetContent(Confirmed)
	ind.AddClass(ConfirmClasses...)

	after := f.AfterFunc
	if after == nil {
		after = time.AfterFunc
	}

	done := make(chan struct{})
	after(RevertDelay, func() {
		ind.SetContent(original)
		ind.RemoveClass(ConfirmClasses...)
		close(done)
	})
	return done, nil
}
