package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Action list styles
var (
	ActionNameStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Width(18)

	ChordStyle = lipgloss.NewStyle().
			Foreground(ColorChord).
			Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorSelected).
				Foreground(ColorHighlight).
				Bold(true)

	UnassignedStyle = lipgloss.NewStyle().
			Foreground(ColorUnassigned).
			Italic(true)
)

// Capture prompt styles
var (
	PromptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 3)

	PromptChordStyle = lipgloss.NewStyle().
				Foreground(ColorPending).
				Bold(true)

	PromptHintStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	PromptTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Status line styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SavedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorChord).
			Width(14)
)
