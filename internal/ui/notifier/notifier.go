// Package notifier fans out asset change events to connected browsers.
package notifier

import "sync"

// Change describes a changed static asset.
type Change struct {
	Path string
}

// Subscription receives changes until Close is called.
type Subscription struct {
	C <-chan Change

	ch chan Change
	n  *Notifier
}

// Close unsubscribes and closes C. It is safe to call more than once.
func (s *Subscription) Close() {
	s.n.remove(s.ch)
}

// Notifier broadcasts changes to all subscribers. A slow subscriber keeps
// only the most recent pending change.
type Notifier struct {
	mu          sync.Mutex
	subscribers map[chan Change]struct{}
}

// New creates a Notifier.
func New() *Notifier {
	return &Notifier{subscribers: make(map[chan Change]struct{})}
}

// Subscribe registers a new subscriber.
func (n *Notifier) Subscribe() *Subscription {
	ch := make(chan Change, 1)
	n.mu.Lock()
	n.subscribers[ch] = struct{}{}
	n.mu.Unlock()
	return &Subscription{C: ch, ch: ch, n: n}
}

func (n *Notifier) remove(ch chan Change) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subscribers[ch]; !ok {
		return
	}
	delete(n.subscribers, ch)
	close(ch)
}

// Len returns the number of subscribers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}

// Broadcast delivers c to every subscriber without blocking.
func (n *Notifier) Broadcast(c Change) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subscribers {
		select {
		case ch <- c:
		default:
			// Replace the stale pending change.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- c:
			default:
			}
		}
	}
}
