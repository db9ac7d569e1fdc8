// Package globalhotkey registers chords as system-wide hotkeys.
package globalhotkey

import (
	"fmt"
	"strings"

	"github.com/renato0307/clipkeys/internal/domain"
)

// keyAliases maps canonical key tokens to the names used in the key tables
var keyAliases = map[string]string{
	"ARROWDOWN":  "down",
	"ARROWLEFT":  "left",
	"ARROWRIGHT": "right",
	"ARROWUP":    "up",
	"BACKSPACE":  "delete",
	"DELETE":     "delete",
	"ENTER":      "return",
	"ESC":        "escape",
	"ESCAPE":     "escape",
	"RETURN":     "return",
	"SPACE":      "space",
	"TAB":        "tab",
}

// keyName returns the key table name for a chord's key token
func keyName(token string) string {
	if alias, ok := keyAliases[token]; ok {
		return alias
	}
	return strings.ToLower(token)
}

// modifierList splits a chord's modifiers in canonical order
func modifierList(chord domain.Chord) []domain.Modifier {
	var mods []domain.Modifier
	for _, m := range []domain.Modifier{domain.ModCtrl, domain.ModShift, domain.ModAlt, domain.ModMeta} {
		if chord.Has(m) {
			mods = append(mods, m)
		}
	}
	return mods
}

// bindableKeys lists the key table names every platform can grab.
// keyMap in registrar.go carries one entry per name.
var bindableKeys = func() map[string]bool {
	names := []string{"space", "return", "escape", "delete", "tab", "up", "down", "left", "right"}
	for c := 'a'; c <= 'z'; c++ {
		names = append(names, string(c))
	}
	for d := '0'; d <= '9'; d++ {
		names = append(names, string(d))
	}
	for n := 1; n <= 12; n++ {
		names = append(names, fmt.Sprintf("f%d", n))
	}

	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}()

// checkBindable rejects chords the OS cannot grab on its own
func checkBindable(binding bindingSpec) error {
	if binding.key == "" {
		return fmt.Errorf("'%s' has no key besides modifiers", binding.label)
	}
	if !bindableKeys[binding.key] {
		return fmt.Errorf("key '%s' cannot be registered globally", binding.key)
	}
	return nil
}

// Supports reports whether chord can be registered as a global hotkey
func (r *Registrar) Supports(chord domain.Chord) error {
	return checkBindable(newBindingSpec("", chord))
}

// bindingSpec is a chord flattened to table lookups
type bindingSpec struct {
	action    string
	key       string
	label     string
	modifiers []domain.Modifier
}

func newBindingSpec(action string, chord domain.Chord) bindingSpec {
	spec := bindingSpec{
		action:    action,
		label:     chord.String(),
		modifiers: modifierList(chord),
	}
	if chord.Key() != "" {
		spec.key = keyName(chord.Key())
	}
	return spec
}
