package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/clipkeys/internal/theme"
)

// compositeOverlay centers overlay over a dimmed copy of background.
// The result is at least height lines tall and every line spans width cells.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	popup := strings.Split(overlay, "\n")
	popupWidth := lipgloss.Width(overlay)
	left := max(0, (width-popupWidth)/2)
	top := max(0, (height-len(popup))/2)

	result := make([]string, len(bgLines))
	for y, line := range bgLines {
		row := y - top
		if row < 0 || row >= len(popup) {
			result[y] = dimLine(line, width)
			continue
		}
		right := max(0, width-left-lipgloss.Width(popup[row]))
		result[y] = dimmedPad(left) + popup[row] + dimmedPad(right)
	}

	return strings.Join(result, "\n")
}

// dimLine drops the line's own colors and pads it to width
func dimLine(line string, width int) string {
	dimmed := theme.DimmedStyle.Render(ansi.Strip(line))
	if pad := width - lipgloss.Width(dimmed); pad > 0 {
		dimmed += strings.Repeat(" ", pad)
	}
	return dimmed
}

func dimmedPad(n int) string {
	return theme.DimmedStyle.Render(strings.Repeat(" ", n))
}
