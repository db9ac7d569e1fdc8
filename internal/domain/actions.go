package domain

// Action represents a clipboard action that can be bound to a global hotkey.
type Action struct {
	DefaultChord string
	Description  string
	Name         string
}

// Actions is the canonical registry of all bindable actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "clear_history", Description: "Clear clipboard history", DefaultChord: "CTRL + SHIFT + X"},
	{Name: "copy", Description: "Capture the current selection into history", DefaultChord: "CTRL + SHIFT + C"},
	{Name: "paste", Description: "Paste the most recent history entry", DefaultChord: "CTRL + SHIFT + V"},
	{Name: "paste_plain", Description: "Paste the most recent entry as plain text", DefaultChord: "CTRL + ALT + V"},
	{Name: "show_history", Description: "Open the clipboard history window", DefaultChord: "CTRL + SHIFT + H"},
	{Name: "toggle_capture", Description: "Pause or resume clipboard capture", DefaultChord: "CTRL + SHIFT + P"},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// ActionNames returns the registered action names in registry order.
func ActionNames() []string {
	names := make([]string, len(Actions))
	for i, a := range Actions {
		names[i] = a.Name
	}
	return names
}

// DefaultLabels returns action -> default chord label for every registered action.
func DefaultLabels() map[string]string {
	labels := make(map[string]string, len(Actions))
	for _, a := range Actions {
		labels[a.Name] = a.DefaultChord
	}
	return labels
}
