package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay to trigger error clearing.
// The generation lets a newer error survive the timer of an older one.
type clearErrorMsg struct {
	generation int
}

// ErrorManager handles error display and auto-clearing.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error to be displayed.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
	em.generation++
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay.
// A non-positive delay keeps errors until the next SetError or ClearError.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	if em.errorClearDelay <= 0 {
		return nil
	}
	generation := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// handleClear clears the error only if msg belongs to the current error
func (em *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.ClearError()
	}
}
