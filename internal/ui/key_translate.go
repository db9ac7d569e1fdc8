package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipkeys/internal/domain"
)

// terminalKeyNames maps bubbletea key names to the raw key names the recorder
// expects. Printable keys pass through unchanged.
var terminalKeyNames = map[string]string{
	"backspace": "Backspace",
	"delete":    "Delete",
	"down":      "ArrowDown",
	"end":       "End",
	"enter":     "Enter",
	"esc":       domain.KeyEscape,
	"home":      "Home",
	"insert":    "Insert",
	"left":      "ArrowLeft",
	"pgdown":    "PageDown",
	"pgup":      "PageUp",
	"right":     "ArrowRight",
	"space":     " ",
	"tab":       "Tab",
	"up":        "ArrowUp",
}

// translateKey converts a terminal key message into a raw key event.
// Pastes and multi-rune input are not key presses and report false.
// Terminals never report the meta key, so Meta is always false.
func translateKey(msg tea.KeyMsg) (domain.KeyEvent, bool) {
	if msg.Paste {
		return domain.KeyEvent{}, false
	}

	name := msg.String()
	var ev domain.KeyEvent

	for {
		prefix, rest, found := strings.Cut(name, "+")
		// A bare "+" or a trailing "+" is the plus key itself
		if !found || rest == "" {
			break
		}
		switch prefix {
		case "alt":
			ev.Alt = true
		case "ctrl":
			ev.Ctrl = true
		case "shift":
			ev.Shift = true
		default:
			return domain.KeyEvent{}, false
		}
		name = rest
	}

	if mapped, ok := terminalKeyNames[name]; ok {
		ev.Key = mapped
		return ev, true
	}

	if isFunctionKey(name) {
		ev.Key = strings.ToUpper(name)
		return ev, true
	}

	if utf8.RuneCountInString(name) != 1 {
		return domain.KeyEvent{}, false
	}

	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		ev.Shift = true
	}
	ev.Key = name
	return ev, true
}

// isFunctionKey matches f1..f20
func isFunctionKey(name string) bool {
	if len(name) < 2 || len(name) > 3 || name[0] != 'f' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
