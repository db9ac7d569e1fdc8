//go:build nohotkey || (!darwin && !linux && !windows)

package globalhotkey

import (
	"context"
	"errors"

	"github.com/renato0307/clipkeys/internal/ports"
)

// ErrUnsupported is returned by builds without global hotkey support: other
// platforms, and binaries built with -tags nohotkey for hosts with no display.
var ErrUnsupported = errors.New("global hotkeys are not supported by this build")

// Registrar is unavailable in this build
type Registrar struct{}

// Verify interface compliance at compile time
var _ ports.HotkeyRegistrar = (*Registrar)(nil)

// NewRegistrar creates a new Registrar
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// Listen always fails in this build
func (r *Registrar) Listen(ctx context.Context, bindings []ports.HotkeyBinding, onFire func(action string)) error {
	return ErrUnsupported
}

// RunOnMain runs fn directly
func RunOnMain(fn func()) {
	fn()
}
