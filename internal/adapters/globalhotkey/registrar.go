//go:build (darwin || linux || windows) && !nohotkey

package globalhotkey

import (
	"context"
	"fmt"
	"sync"

	"golang.design/x/hotkey"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

// Registrar grabs chords through golang.design/x/hotkey
type Registrar struct{}

// Verify interface compliance at compile time
var _ ports.HotkeyRegistrar = (*Registrar)(nil)

// NewRegistrar creates a new Registrar
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// Listen registers every binding, then blocks until ctx ends. All hotkeys are
// unregistered on return. onFire calls are serialized.
func (r *Registrar) Listen(ctx context.Context, bindings []ports.HotkeyBinding, onFire func(action string)) error {
	registered := make([]*hotkey.Hotkey, 0, len(bindings))
	actions := make([]string, 0, len(bindings))
	defer func() {
		for i, hk := range registered {
			if err := hk.Unregister(); err != nil {
				logging.Logger.Warn("Failed to unregister hotkey", "action", actions[i], "error", err)
			}
		}
	}()

	for _, b := range bindings {
		hk, err := toHotkey(newBindingSpec(b.Action, b.Chord))
		if err != nil {
			return fmt.Errorf("hotkey for '%s': %w", b.Action, err)
		}
		if err := hk.Register(); err != nil {
			return fmt.Errorf("failed to register %s for '%s': %w", b.Chord.String(), b.Action, err)
		}
		logging.Logger.Debug("Hotkey registered", "action", b.Action, "chord", b.Chord.String())
		registered = append(registered, hk)
		actions = append(actions, b.Action)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, hk := range registered {
		action := actions[i]
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-hk.Keydown():
					mu.Lock()
					onFire(action)
					mu.Unlock()
				}
			}
		})
	}

	return g.Wait()
}

// toHotkey maps a binding onto the platform tables
func toHotkey(spec bindingSpec) (*hotkey.Hotkey, error) {
	if err := checkBindable(spec); err != nil {
		return nil, err
	}

	key, ok := keyMap[spec.key]
	if !ok {
		return nil, fmt.Errorf("key '%s' has no platform code", spec.key)
	}

	mods := make([]hotkey.Modifier, 0, len(spec.modifiers))
	for _, m := range spec.modifiers {
		mod, ok := modMap[m]
		if !ok {
			return nil, fmt.Errorf("modifier %d is not supported on this platform", m)
		}
		mods = append(mods, mod)
	}

	return hotkey.New(mods, key), nil
}

// keyMap is shared by all platforms; the key constants differ per OS.
// Its names match bindableKeys.
var keyMap = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
	"space": hotkey.KeySpace, "return": hotkey.KeyReturn, "escape": hotkey.KeyEscape,
	"delete": hotkey.KeyDelete, "tab": hotkey.KeyTab,
	"up": hotkey.KeyUp, "down": hotkey.KeyDown,
	"left": hotkey.KeyLeft, "right": hotkey.KeyRight,
}
