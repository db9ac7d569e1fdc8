package services

import (
	"errors"

	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

// Texts shown on the capture surface
const (
	DuplicateChordText = "Combo already in use!"
	EmptyChordText     = "Please press a valid key combo!"
	PromptText         = "Press new key combination..."
)

// ErrMissingCollaborator is returned when the recorder has no surface or key source
var ErrMissingCollaborator = errors.New("hotkey recorder needs a capture surface and a key source")

// captureSession is the transient state while recording a chord for one action
type captureSession struct {
	pendingChord domain.Chord
	targetAction string
}

// HotkeyRecorder records a new chord for one action at a time and commits it
// only if no other action already owns it.
//
// The recorder is not safe for concurrent use. All calls are expected from a
// single event loop (the bubbletea Update loop or straight-line CLI code).
type HotkeyRecorder struct {
	assignments domain.Assignments
	keys        ports.KeySource
	platform    domain.Platform
	saver       ports.AssignmentSaver
	session     *captureSession
	surface     ports.CaptureSurface
	unsubscribe func()
}

// NewHotkeyRecorder creates a recorder seeded with the current action labels.
// An empty label leaves the action unassigned. surface and keys are required;
// a nil saver keeps assignments in memory only.
func NewHotkeyRecorder(
	seed map[string]string,
	platform domain.Platform,
	surface ports.CaptureSurface,
	saver ports.AssignmentSaver,
	keys ports.KeySource,
) (*HotkeyRecorder, error) {
	if surface == nil || keys == nil {
		return nil, ErrMissingCollaborator
	}

	assignments, err := domain.NewAssignments(seed, platform)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Hotkey recorder created",
		"actions", len(assignments),
		"platform", platform.String())

	return &HotkeyRecorder{
		assignments: assignments,
		keys:        keys,
		platform:    platform,
		saver:       saver,
		surface:     surface,
	}, nil
}

// BeginCapture opens a capture session for action. An open session for any
// action is discarded without committing.
func (r *HotkeyRecorder) BeginCapture(action string) {
	if r.session != nil {
		logging.Logger.Debug("Discarding open capture session",
			"action", r.session.targetAction,
			"superseded_by", action)
		r.detach()
	}

	r.session = &captureSession{targetAction: action}
	logging.Logger.Info("Capture session opened", "action", action)

	r.surface.SetDisplayText(PromptText)
	r.surface.ShowPrompt()
	r.unsubscribe = r.keys.Subscribe(r.OnKeyEvent)
}

// OnKeyEvent consumes a raw key event. It returns false when no session is
// open. Escape aborts the session; any other event replaces the pending chord.
func (r *HotkeyRecorder) OnKeyEvent(ev domain.KeyEvent) bool {
	if r.session == nil {
		return false
	}

	if ev.IsEscape() {
		r.Cancel()
		return true
	}

	r.session.pendingChord = domain.NewChordFromEvent(ev, r.platform)
	r.surface.SetDisplayText(r.session.pendingChord.String())
	return true
}

// Commit validates the pending chord and assigns it to the target action.
// Validation failures keep the session open so the user can retry.
func (r *HotkeyRecorder) Commit() error {
	if r.session == nil {
		return domain.ErrNoCaptureSession
	}

	action := r.session.targetAction
	chord := r.session.pendingChord

	if chord.IsEmpty() {
		logging.Logger.Debug("Rejected empty chord", "action", action)
		r.surface.SetDisplayText(EmptyChordText)
		return domain.ErrEmptyChord
	}

	// The target's own chord is excluded, so re-capturing it succeeds
	if owner, taken := r.assignments.Owner(chord, action); taken {
		logging.Logger.Debug("Rejected duplicate chord",
			"action", action,
			"chord", chord.String(),
			"owner", owner)
		r.surface.SetDisplayText(DuplicateChordText)
		return &domain.DuplicateChordError{Chord: chord.String(), Owner: owner}
	}

	r.assignments[action] = chord
	r.detach()

	label := chord.String()
	logging.Logger.Info("Hotkey assigned", "action", action, "chord", label)

	r.surface.HidePrompt()
	r.surface.SetActionLabel(action, label)
	r.persist()
	return nil
}

// Cancel discards the open session without touching assignments
func (r *HotkeyRecorder) Cancel() {
	if r.session == nil {
		return
	}

	logging.Logger.Info("Capture session cancelled", "action", r.session.targetAction)
	r.detach()
	r.surface.HidePrompt()
}

// Reseed replaces every assignment, e.g. when restoring defaults.
// An open session is cancelled first.
func (r *HotkeyRecorder) Reseed(labels map[string]string) error {
	assignments, err := domain.NewAssignments(labels, r.platform)
	if err != nil {
		return err
	}

	r.Cancel()
	r.assignments = assignments
	for _, action := range assignments.Names() {
		r.surface.SetActionLabel(action, assignments[action].String())
	}

	logging.Logger.Info("Hotkeys reseeded", "actions", len(assignments))
	r.persist()
	return nil
}

// IsCapturing reports whether a capture session is open
func (r *HotkeyRecorder) IsCapturing() bool {
	return r.session != nil
}

// TargetAction returns the action being captured, or "" when idle
func (r *HotkeyRecorder) TargetAction() string {
	if r.session == nil {
		return ""
	}
	return r.session.targetAction
}

// PendingChord returns the chord captured so far (empty when idle)
func (r *HotkeyRecorder) PendingChord() domain.Chord {
	if r.session == nil {
		return domain.Chord{}
	}
	return r.session.pendingChord
}

// Label returns the canonical chord string assigned to action
func (r *HotkeyRecorder) Label(action string) string {
	return r.assignments[action].String()
}

// Assignments returns a snapshot of action -> canonical chord string
func (r *HotkeyRecorder) Assignments() map[string]string {
	return r.assignments.Labels()
}

// Platform returns the platform the recorder renders chords for
func (r *HotkeyRecorder) Platform() domain.Platform {
	return r.platform
}

// detach closes the session and drops the key subscription
func (r *HotkeyRecorder) detach() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.session = nil
}

// persist hands the snapshot to the saver without waiting for the write.
// A rejected snapshot never rolls back the in-memory assignments.
func (r *HotkeyRecorder) persist() {
	if r.saver == nil {
		return
	}
	if err := r.saver.SaveAssignments(r.assignments.Labels()); err != nil {
		logging.Logger.Error("Failed to queue hotkey assignments", "error", err)
	}
}
