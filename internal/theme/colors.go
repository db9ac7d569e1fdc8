package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Hotkey colors
const (
	ColorChord      Color = "226" // Yellow - assigned chords
	ColorPending    Color = "214" // Orange - chord being recorded
	ColorUnassigned Color = "8"   // Gray - no chord
)

// UI semantic colors
const (
	ColorDimmed    Color = "240" // Background behind overlays
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green - saved
	ColorVersion   Color = "240" // Dark gray
)
