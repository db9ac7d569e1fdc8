package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCompositeOverlay(t *testing.T) {
	background := "copy\npaste\nclear_history"

	out := compositeOverlay(background, "[ CTRL + X ]", 40, 6)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 6)
	assert.Contains(t, lines[2], "[ CTRL + X ]")
	assert.Equal(t, "copy", strings.TrimSpace(ansi.Strip(lines[0])))
	assert.NotContains(t, out, "clear_history", "row under the popup is replaced")
}

func TestCompositeOverlayWiderThanScreen(t *testing.T) {
	out := compositeOverlay("", "a very long prompt line", 5, 1)

	assert.Equal(t, "a very long prompt line", ansi.Strip(out))
}
