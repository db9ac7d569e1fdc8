package services

import (
	"context"
	"fmt"

	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

// ListenerService registers the effective hotkeys system-wide and reports
// every activation.
type ListenerService struct {
	preferences *PreferencesService
	registrar   ports.HotkeyRegistrar
}

// NewListenerService creates a new ListenerService
func NewListenerService(preferences *PreferencesService, registrar ports.HotkeyRegistrar) *ListenerService {
	return &ListenerService{
		preferences: preferences,
		registrar:   registrar,
	}
}

// Bindings returns one binding per action whose chord the registrar can grab.
// Modifier-only chords and keys without a global key code are skipped, so one
// such assignment never disables the rest.
func (s *ListenerService) Bindings(ctx context.Context) ([]ports.HotkeyBinding, error) {
	labels, err := s.preferences.EffectiveLabels(ctx)
	if err != nil {
		return nil, err
	}

	var bindings []ports.HotkeyBinding
	for _, action := range domain.ActionNames() {
		label := labels[action]
		if label == "" {
			continue
		}

		chord, err := domain.ParseChord(label, s.preferences.Platform())
		if err != nil {
			return nil, fmt.Errorf("hotkey for '%s': %w", action, err)
		}
		if chord.Key() == "" {
			logging.Logger.Warn("Skipping modifier-only hotkey", "action", action, "chord", label)
			continue
		}
		if err := s.registrar.Supports(chord); err != nil {
			logging.Logger.Warn("Skipping hotkey", "action", action, "chord", label, "reason", err)
			continue
		}

		bindings = append(bindings, ports.HotkeyBinding{Action: action, Chord: chord})
	}

	return bindings, nil
}

// Listen blocks until ctx ends, calling onFire with the action of each
// activated hotkey.
func (s *ListenerService) Listen(ctx context.Context, onFire func(action string)) error {
	bindings, err := s.Bindings(ctx)
	if err != nil {
		return err
	}
	if len(bindings) == 0 {
		return fmt.Errorf("no hotkeys to register")
	}

	logging.Logger.Info("Registering global hotkeys", "count", len(bindings))
	err = s.registrar.Listen(ctx, bindings, func(action string) {
		logging.Logger.Info("Hotkey fired", "action", action)
		if onFire != nil {
			onFire(action)
		}
	})
	if err != nil {
		logging.Logger.Error("Global hotkey listener failed", "error", err)
		return fmt.Errorf("global hotkey listener failed: %w", err)
	}

	logging.Logger.Info("Global hotkey listener stopped")
	return nil
}
