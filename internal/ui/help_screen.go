package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipkeys/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a shortcut line from a key binding's help text
func renderBinding(binding key.Binding) string {
	return renderShortcut(binding.Help().Key, binding.Help().Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderBinding(keys.Navigation.Up)
	content += renderBinding(keys.Navigation.Down)

	content += "\n" + theme.HelpGroupStyle.Render("Hotkeys") + "\n"
	content += renderBinding(keys.Hotkeys.Record)
	content += renderBinding(keys.Hotkeys.Save)
	content += renderBinding(keys.Hotkeys.Reset)

	content += "\n" + theme.HelpGroupStyle.Render("While recording") + "\n"
	content += renderShortcut("any combo", "becomes the pending hotkey")
	content += renderBinding(keys.Capture.Commit)
	content += renderBinding(keys.Capture.Cancel)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Help)
	content += renderBinding(keys.Application.Quit)
	content += renderBinding(keys.Application.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("Terminal limits") + "\n"
	content += renderShortcut("CMD / WIN", "never reported by terminals")
	content += renderShortcut("lone CTRL", "never reported by terminals")
	content += renderShortcut("keys set", "use `clipkeys keys set <action> <combo>` for these")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := max(msg.Height-6, 5)

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return h.content
	}
	return h.viewport.View() + "\n" + theme.HelpStyle.Render("↑/↓ scroll • esc close")
}
