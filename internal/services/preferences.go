package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/renato0307/clipkeys/internal/config"
	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

// PreferencesService resolves the effective hotkey labels from three layers:
// registry defaults, settings.json overrides and stored assignments.
type PreferencesService struct {
	overrides config.HotkeysConfig
	platform  domain.Platform
	repo      ports.AssignmentRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(
	repo ports.AssignmentRepository,
	overrides config.HotkeysConfig,
	platform domain.Platform,
) *PreferencesService {
	return &PreferencesService{
		overrides: overrides,
		platform:  platform,
		repo:      repo,
	}
}

// Platform returns the platform labels are rendered for
func (s *PreferencesService) Platform() domain.Platform {
	return s.platform
}

// ValidateAction returns ErrUnknownAction for names outside the registry
func (s *PreferencesService) ValidateAction(action string) error {
	if domain.GetActionByName(action) == nil {
		return fmt.Errorf("%w '%s' (valid: %v)", domain.ErrUnknownAction, action, domain.ActionNames())
	}
	return nil
}

// DefaultLabels returns registry defaults with settings.json overrides applied
func (s *PreferencesService) DefaultLabels() map[string]string {
	return s.resolve(nil)
}

// EffectiveLabels returns the labels the recorder should be seeded with.
// Stored assignments win over overrides, which win over defaults.
func (s *PreferencesService) EffectiveLabels(ctx context.Context) (map[string]string, error) {
	stored, err := s.repo.LoadAssignments(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load stored hotkeys", "error", err)
		return nil, fmt.Errorf("failed to load hotkeys: %w", err)
	}

	labels := s.resolve(stored)
	logging.Logger.Debug("Effective hotkeys resolved",
		"stored", len(stored),
		"overrides", len(s.overrides),
		"actions", len(labels))
	return labels, nil
}

// Reset removes stored assignments for the given actions (all when none are
// given) and returns the recomputed effective labels.
func (s *PreferencesService) Reset(ctx context.Context, actions ...string) (map[string]string, error) {
	for _, action := range actions {
		if err := s.ValidateAction(action); err != nil {
			return nil, err
		}
	}

	logging.Logger.Info("Resetting hotkeys", "actions", actions)
	if err := s.repo.DeleteAssignments(ctx, actions...); err != nil {
		logging.Logger.Error("Failed to reset hotkeys", "error", err)
		return nil, fmt.Errorf("failed to reset hotkeys: %w", err)
	}

	return s.EffectiveLabels(ctx)
}

// resolve layers stored > overrides > defaults per action, canonicalizing
// every label. A lower layer whose chord is already held by a higher layer
// leaves its action unassigned instead of breaking uniqueness.
func (s *PreferencesService) resolve(stored map[string]string) map[string]string {
	names := domain.ActionNames()
	labels := make(map[string]string, len(names))
	owners := make(map[string]string, len(names))

	layers := []struct {
		name   string
		labels map[string]string
	}{
		{"stored", stored},
		{"settings", s.overrides},
		{"default", domain.DefaultLabels()},
	}

	for _, layer := range layers {
		for _, action := range names {
			if _, done := labels[action]; done {
				continue
			}
			raw, ok := layer.labels[action]
			if !ok {
				continue
			}

			canonical, err := s.canonical(raw)
			if err != nil {
				logging.Logger.Warn("Ignoring invalid hotkey",
					"action", action,
					"layer", layer.name,
					"label", raw,
					"error", err)
				continue
			}

			if canonical != "" {
				if owner, taken := owners[canonical]; taken {
					logging.Logger.Warn("Hotkey already taken, leaving action unassigned",
						"action", action,
						"layer", layer.name,
						"chord", canonical,
						"owner", owner)
					canonical = ""
				} else {
					owners[canonical] = action
				}
			}
			labels[action] = canonical
		}
	}

	for action := range stored {
		if !slices.Contains(names, action) {
			logging.Logger.Warn("Ignoring stored hotkey for unknown action", "action", action)
		}
	}

	return labels
}

func (s *PreferencesService) canonical(label string) (string, error) {
	if label == "" {
		return "", nil
	}
	chord, err := domain.ParseChord(label, s.platform)
	if err != nil {
		return "", err
	}
	return chord.String(), nil
}
