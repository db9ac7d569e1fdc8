package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChordFromEvent_Canonicalization(t *testing.T) {
	tests := []struct {
		name     string
		event    KeyEvent
		platform Platform
		expected string
	}{
		{"ctrl and letter", KeyEvent{Key: "c", Ctrl: true}, PlatformOther, "CTRL + C"},
		{"shift alt fixed order", KeyEvent{Key: "b", Shift: true, Alt: true}, PlatformOther, "SHIFT + ALT + B"},
		{"all modifiers", KeyEvent{Key: "k", Ctrl: true, Shift: true, Alt: true, Meta: true}, PlatformOther, "CTRL + SHIFT + ALT + WIN + K"},
		{"control alone", KeyEvent{Key: "Control", Ctrl: true}, PlatformOther, "CTRL"},
		{"shift alone", KeyEvent{Key: "Shift", Shift: true}, PlatformOther, "SHIFT"},
		{"meta on windows", KeyEvent{Key: "z", Meta: true}, PlatformOther, "WIN + Z"},
		{"meta on mac", KeyEvent{Key: "a", Meta: true}, PlatformMac, "CMD + A"},
		{"meta key alone on mac", KeyEvent{Key: "Meta", Meta: true}, PlatformMac, "CMD"},
		{"uppercase letter", KeyEvent{Key: "V", Ctrl: true}, PlatformOther, "CTRL + V"},
		{"named key", KeyEvent{Key: "F5"}, PlatformOther, "F5"},
		{"space renamed", KeyEvent{Key: " ", Ctrl: true}, PlatformOther, "CTRL + SPACE"},
		{"plus renamed", KeyEvent{Key: "+", Ctrl: true}, PlatformOther, "CTRL + PLUS"},
		{"altgraph ignored as key", KeyEvent{Key: "AltGraph", Alt: true, Ctrl: true}, PlatformOther, "CTRL + ALT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := NewChordFromEvent(tt.event, tt.platform)
			assert.Equal(t, tt.expected, chord.String())
			assert.False(t, chord.IsEmpty())
		})
	}
}

func TestNewChordFromEvent_PressOrderDoesNotMatter(t *testing.T) {
	// Shift pressed first, then Alt, then b: the event only carries flags
	shiftFirst := NewChordFromEvent(KeyEvent{Key: "b", Shift: true, Alt: true}, PlatformOther)
	altFirst := NewChordFromEvent(KeyEvent{Key: "B", Alt: true, Shift: true}, PlatformOther)

	assert.True(t, shiftFirst.Equal(altFirst))
	assert.Equal(t, "SHIFT + ALT + B", altFirst.String())
}

func TestChord_ZeroValueIsEmpty(t *testing.T) {
	var c Chord
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "", c.String())
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		input    string
		platform Platform
		expected string
	}{
		{"CTRL + SHIFT + C", PlatformOther, "CTRL + SHIFT + C"},
		{"ctrl+shift+c", PlatformOther, "CTRL + SHIFT + C"},
		{"shift+ctrl+c", PlatformOther, "CTRL + SHIFT + C"},
		{"alt+shift+b", PlatformOther, "SHIFT + ALT + B"},
		{"cmd+a", PlatformOther, "WIN + A"},
		{"WIN + Z", PlatformMac, "CMD + Z"},
		{"option+v", PlatformMac, "ALT + V"},
		{"CTRL", PlatformOther, "CTRL"},
		{"ctrl++", PlatformOther, "CTRL + PLUS"},
		{"CTRL + PLUS", PlatformOther, "CTRL + PLUS"},
		{"ctrl+space", PlatformOther, "CTRL + SPACE"},
		{"  f12  ", PlatformOther, "F12"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			chord, err := ParseChord(tt.input, tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, chord.String())
		})
	}
}

func TestParseChord_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"trailing separator", "ctrl+"},
		{"two keys", "ctrl+a+b"},
		{"os key", "ctrl+os"},
		{"hyper key", "CTRL + HYPER"},
		{"altgraph key", "alt+altgraph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseChord(tt.input, PlatformOther)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidChord)
		})
	}
}

func TestChord_KeyEventRoundTrip(t *testing.T) {
	inputs := []string{"CTRL + C", "SHIFT + ALT + B", "CTRL", "WIN + Z", "CTRL + SPACE", "CTRL + PLUS", "ALT"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			chord := MustParseChord(input, PlatformOther)
			captured := NewChordFromEvent(chord.KeyEvent(), PlatformOther)
			assert.Equal(t, input, captured.String())
		})
	}
}

func TestParsePlatform(t *testing.T) {
	mac, err := ParsePlatform("mac")
	require.NoError(t, err)
	assert.True(t, mac.IsMac())

	win, err := ParsePlatform("windows")
	require.NoError(t, err)
	assert.False(t, win.IsMac())

	_, err = ParsePlatform("amiga")
	assert.Error(t, err)
}
