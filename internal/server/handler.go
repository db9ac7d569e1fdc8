package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/services"
	"github.com/renato0307/clipkeys/internal/ui"
)

// teaHandler creates a preferences model for each SSH session.
// Every session gets its own recorder and persister; the repository is shared.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	persister := services.NewAssignmentPersister(s.cfg.Repository)

	// SSH mode never uses dev mode
	model, err := ui.NewModel(s.cfg.Preferences, persister, s.cfg.ErrorClearDelay, false)
	if err != nil {
		logging.Logger.Error("Failed to create model for SSH session",
			"error", err,
			"session_id", sessionID)
		closePersister(persister, sessionID)
		return errorModel{err}, nil
	}

	startTime := time.Now()
	go func() {
		<-sess.Context().Done()
		closePersister(persister, sessionID)
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// closePersister flushes the last snapshot of a session
func closePersister(persister *services.AssignmentPersister, sessionID string) {
	if err := persister.Close(); err != nil {
		logging.Logger.Error("Failed to flush hotkeys for SSH session",
			"error", err,
			"session_id", sessionID)
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
