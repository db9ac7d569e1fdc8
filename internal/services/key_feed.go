package services

import (
	"sync"

	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/ports"
)

// KeyFeed is an in-process key source with a single subscriber slot.
// Input loops call Feed for every raw key event; only the current
// subscriber sees it.
type KeyFeed struct {
	handler ports.KeyHandler
	mu      sync.Mutex
	seq     uint64
}

// Verify interface compliance at compile time
var _ ports.KeySource = (*KeyFeed)(nil)

// NewKeyFeed creates an empty KeyFeed
func NewKeyFeed() *KeyFeed {
	return &KeyFeed{}
}

// Subscribe replaces any previous subscriber. The returned function only
// detaches this subscription, so a stale unsubscribe cannot drop a newer one.
func (f *KeyFeed) Subscribe(handler ports.KeyHandler) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	id := f.seq
	f.handler = handler

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.seq == id {
			f.handler = nil
		}
	}
}

// Active reports whether a subscriber is attached
func (f *KeyFeed) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handler != nil
}

// Feed delivers ev to the subscriber. Returns false when nobody listens.
func (f *KeyFeed) Feed(ev domain.KeyEvent) bool {
	f.mu.Lock()
	handler := f.handler
	f.mu.Unlock()

	if handler == nil {
		return false
	}
	return handler(ev)
}
