package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/clipkeys/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected domain.KeyEvent
	}{
		{
			name:     "lowercase letter",
			msg:      runes("c"),
			expected: domain.KeyEvent{Key: "c"},
		},
		{
			name:     "uppercase letter implies shift",
			msg:      runes("C"),
			expected: domain.KeyEvent{Key: "C", Shift: true},
		},
		{
			name:     "alt letter",
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v"), Alt: true},
			expected: domain.KeyEvent{Key: "v", Alt: true},
		},
		{
			name:     "ctrl letter",
			msg:      tea.KeyMsg{Type: tea.KeyCtrlX},
			expected: domain.KeyEvent{Key: "x", Ctrl: true},
		},
		{
			name:     "ctrl alt letter",
			msg:      tea.KeyMsg{Type: tea.KeyCtrlV, Alt: true},
			expected: domain.KeyEvent{Key: "v", Ctrl: true, Alt: true},
		},
		{
			name:     "escape",
			msg:      tea.KeyMsg{Type: tea.KeyEsc},
			expected: domain.KeyEvent{Key: domain.KeyEscape},
		},
		{
			name:     "arrow",
			msg:      tea.KeyMsg{Type: tea.KeyUp},
			expected: domain.KeyEvent{Key: "ArrowUp"},
		},
		{
			name:     "shift tab",
			msg:      tea.KeyMsg{Type: tea.KeyShiftTab},
			expected: domain.KeyEvent{Key: "Tab", Shift: true},
		},
		{
			name:     "ctrl shift arrow",
			msg:      tea.KeyMsg{Type: tea.KeyCtrlShiftLeft},
			expected: domain.KeyEvent{Key: "ArrowLeft", Ctrl: true, Shift: true},
		},
		{
			name:     "function key",
			msg:      tea.KeyMsg{Type: tea.KeyF5},
			expected: domain.KeyEvent{Key: "F5"},
		},
		{
			name:     "plus key",
			msg:      runes("+"),
			expected: domain.KeyEvent{Key: "+"},
		},
		{
			name:     "alt plus key",
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+"), Alt: true},
			expected: domain.KeyEvent{Key: "+", Alt: true},
		},
		{
			name:     "space",
			msg:      tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")},
			expected: domain.KeyEvent{Key: " "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateKey(tt.msg)
			require.True(t, ok, "key %q", tt.msg.String())
			assert.Equal(t, tt.expected, ev)
		})
	}
}

func TestTranslateKeyRejectsPasteAndMultiRune(t *testing.T) {
	_, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.False(t, ok)

	_, ok = translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Paste: true})
	assert.False(t, ok)
}

func TestTranslateKeyProducesCanonicalChords(t *testing.T) {
	ev, ok := translateKey(tea.KeyMsg{Type: tea.KeyCtrlV, Alt: true})
	require.True(t, ok)
	assert.Equal(t, "CTRL + ALT + V", domain.NewChordFromEvent(ev, domain.PlatformOther).String())

	ev, ok = translateKey(runes("B"))
	require.True(t, ok)
	assert.Equal(t, "SHIFT + B", domain.NewChordFromEvent(ev, domain.PlatformOther).String())
}
