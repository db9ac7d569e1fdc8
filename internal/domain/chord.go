package domain

import (
	"fmt"
	"strings"
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModMeta
)

// ChordSeparator joins the parts of a canonical chord string
const ChordSeparator = " + "

// Canonical modifier tokens
const (
	TokenAlt   = "ALT"
	TokenCmd   = "CMD"
	TokenCtrl  = "CTRL"
	TokenShift = "SHIFT"
	TokenWin   = "WIN"
)

// Key tokens renamed so canonical strings stay parseable
const (
	KeyTokenPlus  = "PLUS"
	KeyTokenSpace = "SPACE"
)

// modifierKeyNames are raw key names that only report a modifier being pressed.
// They never occupy the non-modifier slot of a chord.
var modifierKeyNames = map[string]bool{
	"alt":      true,
	"altgraph": true,
	"control":  true,
	"hyper":    true,
	"meta":     true,
	"os":       true,
	"shift":    true,
	"super":    true,
}

// modifierAliases maps user-typed modifier names to modifier bits
var modifierAliases = map[string]Modifier{
	"alt":     ModAlt,
	"cmd":     ModMeta,
	"command": ModMeta,
	"control": ModCtrl,
	"ctrl":    ModCtrl,
	"meta":    ModMeta,
	"option":  ModAlt,
	"shift":   ModShift,
	"super":   ModMeta,
	"win":     ModMeta,
}

// Chord is an immutable key combination: a set of modifiers plus an optional
// non-modifier key. The zero value is the empty chord.
type Chord struct {
	key       string
	modifiers Modifier
	platform  Platform
}

// NewChord builds a chord from modifiers and a key token.
// The key is normalized the same way as keys read from events.
func NewChord(modifiers Modifier, key string, platform Platform) Chord {
	return Chord{
		key:       normalizeKey(key),
		modifiers: modifiers,
		platform:  platform,
	}
}

// NewChordFromEvent recomputes the full chord from a raw key event.
// Modifier order comes from the fixed canonical order, never from press order.
func NewChordFromEvent(ev KeyEvent, platform Platform) Chord {
	var mods Modifier
	if ev.Ctrl {
		mods |= ModCtrl
	}
	if ev.Shift {
		mods |= ModShift
	}
	if ev.Alt {
		mods |= ModAlt
	}
	if ev.Meta {
		mods |= ModMeta
	}

	key := ""
	if !IsModifierKey(ev.Key) {
		key = ev.Key
	}

	return NewChord(mods, key, platform)
}

// ParseChord parses canonical ("CTRL + SHIFT + C") and compact ("ctrl+shift+c")
// chord strings. The meta modifier is rendered for the given platform.
func ParseChord(s string, platform Platform) (Chord, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Chord{}, fmt.Errorf("%w: empty chord", ErrInvalidChord)
	}

	var mods Modifier
	key := ""
	for _, part := range splitChord(trimmed) {
		token := strings.TrimSpace(part)
		if token == "" {
			return Chord{}, fmt.Errorf("%w: empty part in %q", ErrInvalidChord, s)
		}

		if mod, ok := modifierAliases[strings.ToLower(token)]; ok {
			mods |= mod
			continue
		}

		if IsModifierKey(token) {
			return Chord{}, fmt.Errorf("%w: %s is a modifier key, not a key", ErrInvalidChord, strings.ToUpper(token))
		}
		if key != "" {
			return Chord{}, fmt.Errorf("%w: %q has more than one key (%s, %s)", ErrInvalidChord, s, key, strings.ToUpper(token))
		}
		key = token
	}

	return NewChord(mods, key, platform), nil
}

// MustParseChord is ParseChord for static tables; it panics on error
func MustParseChord(s string, platform Platform) Chord {
	c, err := ParseChord(s, platform)
	if err != nil {
		panic(err)
	}
	return c
}

// splitChord splits on "+" while keeping a literal "+" key ("ctrl++", "CTRL + +")
func splitChord(s string) []string {
	parts := strings.Split(s, "+")
	var result []string
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if strings.TrimSpace(p) == "" && i+1 < len(parts) && strings.TrimSpace(parts[i+1]) == "" && i+1 == len(parts)-1 {
			result = append(result, "+")
			break
		}
		result = append(result, p)
	}
	return result
}

// IsModifierKey reports whether a raw key name denotes a modifier key itself
func IsModifierKey(key string) bool {
	return modifierKeyNames[strings.ToLower(key)]
}

func normalizeKey(key string) string {
	switch key {
	case "":
		return ""
	case " ":
		return KeyTokenSpace
	case "+":
		return KeyTokenPlus
	}
	return strings.ToUpper(strings.TrimSpace(key))
}

// Key returns the non-modifier key token, or "" for modifier-only chords
func (c Chord) Key() string {
	return c.key
}

// Modifiers returns the modifier bit set
func (c Chord) Modifiers() Modifier {
	return c.modifiers
}

// Has reports whether the modifier is held in this chord
func (c Chord) Has(mod Modifier) bool {
	return c.modifiers&mod != 0
}

// IsEmpty reports whether the chord has neither modifiers nor a key
func (c Chord) IsEmpty() bool {
	return c.modifiers == 0 && c.key == ""
}

// Parts returns the canonical tokens in fixed order
func (c Chord) Parts() []string {
	parts := make([]string, 0, 5)
	if c.Has(ModCtrl) {
		parts = append(parts, TokenCtrl)
	}
	if c.Has(ModShift) {
		parts = append(parts, TokenShift)
	}
	if c.Has(ModAlt) {
		parts = append(parts, TokenAlt)
	}
	if c.Has(ModMeta) {
		parts = append(parts, c.platform.MetaToken())
	}
	if c.key != "" {
		parts = append(parts, c.key)
	}
	return parts
}

// String returns the canonical form, e.g. "CTRL + SHIFT + C"
func (c Chord) String() string {
	return strings.Join(c.Parts(), ChordSeparator)
}

// Equal compares canonical strings
func (c Chord) Equal(other Chord) bool {
	return c.String() == other.String()
}

// KeyEvent returns a raw event that reproduces this chord when captured
func (c Chord) KeyEvent() KeyEvent {
	ev := KeyEvent{
		Alt:   c.Has(ModAlt),
		Ctrl:  c.Has(ModCtrl),
		Meta:  c.Has(ModMeta),
		Shift: c.Has(ModShift),
	}

	switch {
	case c.key == KeyTokenSpace:
		ev.Key = " "
	case c.key == KeyTokenPlus:
		ev.Key = "+"
	case c.key != "":
		ev.Key = c.key
	case c.Has(ModMeta):
		ev.Key = "Meta"
	case c.Has(ModAlt):
		ev.Key = "Alt"
	case c.Has(ModShift):
		ev.Key = "Shift"
	case c.Has(ModCtrl):
		ev.Key = "Control"
	}

	return ev
}
