package domain

// KeyEscape is the raw key name that aborts a capture session
const KeyEscape = "Escape"

// KeyEvent is a raw key press as reported by an input source.
// Key holds the pressed key name ("a", "C", "Control", "Escape", "ArrowUp").
type KeyEvent struct {
	Alt   bool
	Ctrl  bool
	Key   string
	Meta  bool
	Shift bool
}

// IsEscape reports whether the event is an Escape press, with or without modifiers
func (e KeyEvent) IsEscape() bool {
	return e.Key == KeyEscape
}
