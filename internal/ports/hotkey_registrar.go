package ports

import (
	"context"

	"github.com/renato0307/clipkeys/internal/domain"
)

// HotkeyBinding ties a chord to the action it triggers
type HotkeyBinding struct {
	Action string
	Chord  domain.Chord
}

// HotkeyRegistrar registers system-wide hotkeys and blocks until ctx ends,
// calling onFire for every activation.
type HotkeyRegistrar interface {
	Listen(ctx context.Context, bindings []HotkeyBinding, onFire func(action string)) error
	// Supports returns an error when the chord cannot be grabbed system-wide
	Supports(chord domain.Chord) error
}
