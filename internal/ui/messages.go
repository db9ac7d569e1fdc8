package ui

import "github.com/renato0307/clipkeys/internal/services"

// saveResultMsg carries the outcome of one background write
type saveResultMsg struct {
	result services.SaveResult
}

// statusClearMsg hides the status line once it has been shown long enough
type statusClearMsg struct {
	generation int
}
