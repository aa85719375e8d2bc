package clipboard

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualTimers captures scheduled reverts so tests decide when they fire.
type manualTimers struct {
	mu     sync.Mutex
	delays []time.Duration
	funcs  []func()
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) *time.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays = append(m.delays, d)
	m.funcs = append(m.funcs, f)
	return nil
}

func (m *manualTimers) fire(i int) {
	m.mu.Lock()
	f := m.funcs[i]
	m.mu.Unlock()
	f()
}

func TestCopy_ConfirmsThenReverts(t *testing.T) {
	var written string
	timers := &manualTimers{}
	fb := &Feedback{
		Write:     func(s string) error { written = s; return nil },
		AfterFunc: timers.AfterFunc,
	}

	btn := NewButton("📋", "text-slate-400")
	done, err := fb.Copy("INV-1001", btn)
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", written)
	assert.Equal(t, Confirmed, btn.Content())
	assert.True(t, btn.HasClass("bg-green-100"))
	assert.True(t, btn.HasClass("text-green-700"))
	require.Len(t, timers.delays, 1)
	assert.Equal(t, time.Second, timers.delays[0])

	timers.fire(0)

	<-done
	assert.Equal(t, "📋", btn.Content())
	assert.Equal(t, "text-slate-400", btn.Class())
}

func TestCopy_WriteErrorLeavesIndicator(t *testing.T) {
	fb := &Feedback{Write: func(string) error { return errors.New("no clipboard") }}

	btn := NewButton("📋")
	done, err := fb.Copy("x", btn)
	require.Error(t, err)
	assert.Nil(t, done)
	assert.Equal(t, "📋", btn.Content())
}

func TestCopy_OverlappingCopiesRevertIndependently(t *testing.T) {
	timers := &manualTimers{}
	fb := &Feedback{
		Write:     func(string) error { return nil },
		AfterFunc: timers.AfterFunc,
	}

	btn := NewButton("📋")
	_, err := fb.Copy("a", btn)
	require.NoError(t, err)
	_, err = fb.Copy("b", btn)
	require.NoError(t, err)
	require.Len(t, timers.funcs, 2)

	// The second copy saw the confirmation as its original content.
	timers.fire(0)
	assert.Equal(t, "📋", btn.Content())
	timers.fire(1)
	assert.Equal(t, Confirmed, btn.Content())
}

func TestCopy_RealTimer(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the revert delay")
	}

	fb := New(func(string) error { return nil })
	btn := NewButton("copy")

	done, err := fb.Copy("x", btn)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("revert did not happen")
	}
	assert.Equal(t, "copy", btn.Content())
	assert.False(t, btn.HasClass("bg-green-100"))
}
