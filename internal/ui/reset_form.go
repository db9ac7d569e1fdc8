package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/services"
)

// ResetFormResult contains the result of the reset confirmation
type ResetFormResult struct {
	Cancelled bool
	Error     error
	Labels    map[string]string // Effective labels after the reset
}

// ResetForm asks for confirmation before restoring default hotkeys
type ResetForm struct {
	Completed   bool
	confirmed   bool
	form        *huh.Form
	preferences *services.PreferencesService
	result      ResetFormResult
}

// NewResetForm creates a new reset confirmation form
func NewResetForm(preferences *services.PreferencesService) *ResetForm {
	rf := &ResetForm{
		preferences: preferences,
	}

	rf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restore default hotkeys?").
				Description("Every recorded combination is replaced by its default.").
				Affirmative("Restore").
				Negative("Keep").
				Value(&rf.confirmed),
		),
	)

	return rf
}

func (rf *ResetForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *ResetForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			rf.result.Cancelled = true
			rf.Completed = true
			return rf, nil
		}
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}

	if rf.form.State == huh.StateCompleted {
		rf.Completed = true
		if !rf.confirmed {
			rf.result.Cancelled = true
			return rf, nil
		}
		labels, err := rf.resetAll()
		if err != nil {
			logging.Logger.Error("Failed to restore default hotkeys", "error", err)
			rf.result.Error = err
			return rf, nil
		}
		rf.result.Labels = labels
		return rf, nil
	}

	return rf, cmd
}

func (rf *ResetForm) View() string {
	if rf.form != nil {
		return rf.form.View()
	}
	return ""
}

// Result returns the form result
func (rf *ResetForm) Result() ResetFormResult {
	return rf.result
}

// resetAll removes every stored assignment and returns the recomputed labels
func (rf *ResetForm) resetAll() (map[string]string, error) {
	logging.Logger.Info("Restoring default hotkeys")

	labels, err := rf.preferences.Reset(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to restore defaults: %w", err)
	}
	return labels, nil
}
