package domain

import (
	"fmt"
	"sort"
)

// Assignments maps action names to chords. Committed assignments never hold
// two actions with equal chords; empty chords mean "unassigned".
type Assignments map[string]Chord

// NewAssignments parses action -> label pairs. Empty labels stay unassigned.
// Fails on unparseable labels and on two actions sharing a chord.
func NewAssignments(labels map[string]string, platform Platform) (Assignments, error) {
	a := make(Assignments, len(labels))
	for _, action := range sortedKeys(labels) {
		label := labels[action]
		if label == "" {
			a[action] = Chord{platform: platform}
			continue
		}
		chord, err := ParseChord(label, platform)
		if err != nil {
			return nil, fmt.Errorf("hotkey for '%s': %w", action, err)
		}
		a[action] = chord
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Owner returns the action other than except that is bound to chord
func (a Assignments) Owner(chord Chord, except string) (string, bool) {
	if chord.IsEmpty() {
		return "", false
	}
	for _, action := range a.Names() {
		if action == except {
			continue
		}
		if a[action].Equal(chord) {
			return action, true
		}
	}
	return "", false
}

// Validate checks the global uniqueness invariant
func (a Assignments) Validate() error {
	seen := make(map[string]string, len(a))
	for _, action := range a.Names() {
		chord := a[action]
		if chord.IsEmpty() {
			continue
		}
		key := chord.String()
		if existing, found := seen[key]; found {
			return fmt.Errorf("%w: %s is assigned to both '%s' and '%s'", ErrDuplicateChord, key, existing, action)
		}
		seen[key] = action
	}
	return nil
}

// Labels returns a snapshot of action -> canonical chord string
func (a Assignments) Labels() map[string]string {
	labels := make(map[string]string, len(a))
	for action, chord := range a {
		labels[action] = chord.String()
	}
	return labels
}

// Names returns the assigned action names sorted alphabetically
func (a Assignments) Names() []string {
	names := make([]string, 0, len(a))
	for action := range a {
		names = append(names, action)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
