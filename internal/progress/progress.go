// Package progress provides thread-safe, best-effort progress reporting
// for scan and removal operations. Delivery is advisory: updates to slow
// listeners are dropped, and invocation order across scan roots is not
// guaranteed.
package progress

import (
	"sync"
	"time"
)

// Phase represents the current phase of operation.
type Phase string

const (
	PhaseScanning Phase = "scanning"
	PhaseRemoving Phase = "removing"
	PhaseComplete Phase = "complete"
)

// ScanUpdate reports progress during scanning.
type ScanUpdate struct {
	Phase        Phase
	CurrentPath  string
	RootsTotal   int
	RootsDone    int
	EntriesFound int
	StartTime    time.Time
}

// Fraction returns the fraction of roots completed, in [0, 1].
func (u ScanUpdate) Fraction() float64 {
	if u.RootsTotal == 0 {
		return 0
	}
	return float64(u.RootsDone) / float64(u.RootsTotal)
}

// RemoveUpdate reports progress during removal.
type RemoveUpdate struct {
	Phase       Phase
	CurrentPath string
	Done        int
	Total       int
	FreedBytes  int64
	StartTime   time.Time
}

// Reporter fans updates out to subscribed listeners.
type Reporter struct {
	mu        sync.Mutex
	listeners []chan any
}

// NewReporter creates a Reporter with no listeners.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Subscribe returns a channel that receives progress updates.
func (r *Reporter) Subscribe() <-chan any {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan any, 16)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel.
func (r *Reporter) Unsubscribe(ch <-chan any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, listener := range r.listeners {
		if listener == ch {
			close(listener)
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Close closes all listener channels.
func (r *Reporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, listener := range r.listeners {
		close(listener)
	}
	r.listeners = nil
}

// Publish sends an update to all listeners without blocking; updates to
// full channels are dropped.
func (r *Reporter) Publish(update any) {
	r.mu.Lock()
	listeners := make([]chan any, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		select {
		case listener <- update:
		default:
		}
	}
}
