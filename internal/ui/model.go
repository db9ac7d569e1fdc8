package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
	"github.com/renato0307/clipkeys/internal/services"
	"github.com/renato0307/clipkeys/internal/theme"
)

// statusDisplayTime is how long a status message stays visible
const statusDisplayTime = 3 * time.Second

type uiState int

const (
	stateList uiState = iota
	stateCapturing
	stateHelp
	stateResetConfirm
)

// SaveQueue is the background saver whose outcomes the model displays
type SaveQueue interface {
	ports.AssignmentSaver
	Results() <-chan services.SaveResult
}

// Model is the hotkey preferences screen. It is the capture surface of its
// recorder: the recorder opens and closes the prompt through it.
type Model struct {
	actions          []domain.Action
	cursor           int
	devMode          bool
	errorManager     *ErrorManager
	feed             *services.KeyFeed
	help             help.Model
	helpScreen       *HelpScreen
	keys             KeyMap
	labels           map[string]string
	preferences      *services.PreferencesService
	promptText       string
	recorder         *services.HotkeyRecorder
	resetDialog      *Dialog
	saves            SaveQueue
	state            uiState
	statusGeneration int
	statusText       string
	width            int
	height           int
}

// Verify interface compliance at compile time
var _ ports.CaptureSurface = (*Model)(nil)

// NewModel loads the effective hotkeys and builds the recorder behind the screen
func NewModel(
	preferences *services.PreferencesService,
	saves SaveQueue,
	errorClearDelay time.Duration,
	devMode bool,
) (*Model, error) {
	labels, err := preferences.EffectiveLabels(context.Background())
	if err != nil {
		return nil, err
	}

	m := &Model{
		actions:      domain.GetActions(),
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		feed:         services.NewKeyFeed(),
		help:         help.New(),
		keys:         NewKeyMap(),
		labels:       labels,
		preferences:  preferences,
		saves:        saves,
		state:        stateList,
	}

	m.recorder, err = services.NewHotkeyRecorder(labels, preferences.Platform(), m, saves, m.feed)
	if err != nil {
		return nil, fmt.Errorf("failed to create hotkey recorder: %w", err)
	}

	logging.Logger.Debug("Preferences model created",
		"actions", len(m.actions),
		"platform", preferences.Platform().String())
	return m, nil
}

// ShowPrompt implements ports.CaptureSurface
func (m *Model) ShowPrompt() {
	m.state = stateCapturing
}

// HidePrompt implements ports.CaptureSurface
func (m *Model) HidePrompt() {
	m.state = stateList
	m.promptText = ""
}

// SetDisplayText implements ports.CaptureSurface
func (m *Model) SetDisplayText(text string) {
	m.promptText = text
}

// SetActionLabel implements ports.CaptureSurface
func (m *Model) SetActionLabel(action, label string) {
	m.labels[action] = label
}

func (m *Model) Init() tea.Cmd {
	return waitForSaveResult(m.saves.Results())
}

// waitForSaveResult turns the next persister outcome into a message.
// A closed channel ends the loop.
func waitForSaveResult(results <-chan services.SaveResult) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-results
		if !ok {
			return nil
		}
		return saveResultMsg{result: result}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.helpScreen != nil {
			m.helpScreen.Update(msg)
		}
		return m, nil
	case saveResultMsg:
		return m, m.handleSaveResult(msg.result)
	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return m, nil
	case statusClearMsg:
		if msg.generation == m.statusGeneration {
			m.statusText = ""
		}
		return m, nil
	}

	switch m.state {
	case stateCapturing:
		return m.updateCapturing(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateResetConfirm:
		return m.updateResetConfirm(msg)
	default:
		return m.updateList(msg)
	}
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit, m.keys.Application.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewHelpScreen(&m.keys)
		cmd := m.helpScreen.Init()
		m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.state = stateHelp
		return m, cmd

	case key.Matches(keyMsg, m.keys.Navigation.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Navigation.Down):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Hotkeys.Record):
		m.errorManager.ClearError()
		m.recorder.BeginCapture(m.selectedAction())

	case key.Matches(keyMsg, m.keys.Hotkeys.Save):
		if err := m.saves.SaveAssignments(m.recorder.Assignments()); err != nil {
			m.errorManager.SetError(err)
			return m, m.errorManager.ClearAfterDelay()
		}
		return m, m.setStatus("Saving...")

	case key.Matches(keyMsg, m.keys.Hotkeys.Reset):
		m.resetDialog = NewDialog("Restore defaults", NewResetForm(m.preferences), m.devMode)
		m.state = stateResetConfirm
		return m, m.resetDialog.Init()
	}

	return m, nil
}

// updateCapturing forwards every key to the recorder except commit and force quit
func (m *Model) updateCapturing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit):
		m.recorder.Cancel()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Capture.Commit):
		if err := m.recorder.Commit(); err != nil {
			m.errorManager.SetError(err)
			return m, m.errorManager.ClearAfterDelay()
		}
		m.errorManager.ClearError()
		return m, m.setStatus("Saving...")
	}

	ev, ok := translateKey(keyMsg)
	if !ok {
		logging.Logger.Debug("Ignoring untranslatable key", "key", keyMsg.String())
		return m, nil
	}
	m.feed.Feed(ev)
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}

	_, cmd := m.helpScreen.Update(msg)
	if m.helpScreen.Completed {
		m.helpScreen = nil
		m.state = stateList
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateResetConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.resetDialog.Update(msg)

	content, ok := m.resetDialog.Content().(*ResetForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	m.resetDialog = nil
	m.state = stateList

	result := content.Result()
	switch {
	case result.Error != nil:
		m.errorManager.SetError(result.Error)
		return m, m.errorManager.ClearAfterDelay()
	case result.Cancelled:
		return m, nil
	}

	if err := m.recorder.Reseed(result.Labels); err != nil {
		logging.Logger.Error("Failed to apply default hotkeys", "error", err)
		m.errorManager.SetError(err)
		return m, m.errorManager.ClearAfterDelay()
	}
	return m, m.setStatus("Defaults restored")
}

func (m *Model) handleSaveResult(result services.SaveResult) tea.Cmd {
	next := waitForSaveResult(m.saves.Results())
	if result.Err != nil {
		m.errorManager.SetError(fmt.Errorf("hotkeys not saved, press s to retry: %w", result.Err))
		return tea.Batch(next, m.errorManager.ClearAfterDelay())
	}
	return tea.Batch(next, m.setStatus("Saved"))
}

// setStatus shows text on the status line and schedules its removal
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusText = text
	m.statusGeneration++
	generation := m.statusGeneration
	return tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return statusClearMsg{generation: generation}
	})
}

func (m *Model) selectedAction() string {
	return m.actions[m.cursor].Name
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return renderDialogHeader(m.devMode, "Keyboard shortcuts") + m.helpScreen.View()
	case stateResetConfirm:
		return m.resetDialog.View()
	case stateCapturing:
		return compositeOverlay(m.listView(), m.promptView(), m.width, m.height)
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString(theme.TitleStyle.Render("Hotkeys"))
	b.WriteString("\n")

	for i, action := range m.actions {
		cursor := "  "
		name := theme.ActionNameStyle.Render(action.Name)
		if i == m.cursor {
			cursor = "› "
			name = theme.SelectedRowStyle.Inherit(theme.ActionNameStyle).Render(action.Name)
		}

		label := theme.UnassignedStyle.Render("unassigned")
		if l := m.labels[action.Name]; l != "" {
			label = theme.ChordStyle.Render(l)
		}

		b.WriteString(cursor + name + " " + label + "\n")
		b.WriteString("    " + theme.DescriptionStyle.Render(action.Description) + "\n")
	}

	b.WriteString("\n" + m.statusView())
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) statusView() string {
	if m.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)) + "\n"
	}
	if m.statusText != "" {
		return theme.SavedStyle.Render(m.statusText) + "\n"
	}
	return "\n"
}

func (m *Model) promptView() string {
	title := theme.PromptTitleStyle.Render(fmt.Sprintf("Recording %s", m.recorder.TargetAction()))

	var text string
	switch m.promptText {
	case services.PromptText:
		text = theme.PromptHintStyle.Render(m.promptText)
	case services.DuplicateChordText, services.EmptyChordText:
		text = theme.ErrorStyle.Render(m.promptText)
	default:
		text = theme.PromptChordStyle.Render(m.promptText)
	}

	return theme.PromptBoxStyle.Render(title + "\n\n" + text + "\n\n" + m.help.View(m.keys.Capture))
}
