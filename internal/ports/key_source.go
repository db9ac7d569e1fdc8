package ports

import "github.com/renato0307/clipkeys/internal/domain"

// KeyHandler consumes a raw key event and reports whether it was consumed
type KeyHandler func(ev domain.KeyEvent) bool

// KeySource delivers raw key events to at most one subscriber.
// The returned function detaches the subscription; calling it twice is safe.
type KeySource interface {
	Subscribe(handler KeyHandler) (unsubscribe func())
}
