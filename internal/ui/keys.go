package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Capture     CaptureKeys
	Hotkeys     HotkeyKeys
	Navigation  NavigationKeys
}

// ApplicationKeys are available whenever no capture is running
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// CaptureKeys are the only keys not forwarded to the recorder while capturing.
// Cancel is informational: esc reaches the recorder, which aborts on Escape.
type CaptureKeys struct {
	Cancel key.Binding
	Commit key.Binding
}

// HotkeyKeys act on the selected action or on all assignments
type HotkeyKeys struct {
	Record key.Binding
	Reset  key.Binding
	Save   key.Binding
}

// NavigationKeys move the cursor through the action list
type NavigationKeys struct {
	Down key.Binding
	Up   key.Binding
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
			Help:      key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
			Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		},
		Capture: CaptureKeys{
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save combo")),
		},
		Hotkeys: HotkeyKeys{
			Record: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "record")),
			Reset:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "restore defaults")),
			Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save again")),
		},
		Navigation: NavigationKeys{
			Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		},
	}
}

// ShortHelp returns the bindings for the bottom bar (bubbles/help.KeyMap)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Up,
		k.Navigation.Down,
		k.Hotkeys.Record,
		k.Hotkeys.Reset,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns all list bindings grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up, k.Navigation.Down},
		{k.Hotkeys.Record, k.Hotkeys.Save, k.Hotkeys.Reset},
		{k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}

// ShortHelp returns the bindings shown under the capture prompt
func (k CaptureKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

// FullHelp returns the capture bindings as a single column
func (k CaptureKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
