package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/services"
)

// unassignedLabel is printed for actions without a chord
const unassignedLabel = "(unassigned)"

// KeysCmd manages hotkeys
type KeysCmd struct {
	List  KeysListCmd  `cmd:"list" help:"List actions and their hotkeys" default:"1"`
	Reset KeysResetCmd `cmd:"reset" help:"Restore the default hotkey of one or all actions"`
	Set   KeysSetCmd   `cmd:"set" help:"Assign a hotkey to an action"`
}

// KeysListCmd lists every action with its effective and default hotkey
type KeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyListEntry is one row of keys list
type keyListEntry struct {
	Action      string `json:"action"`
	Chord       string `json:"chord"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// Run executes the list command
func (k *KeysListCmd) Run(cli *CLI) error {
	prefs := cli.Container.PreferencesService

	labels, err := prefs.EffectiveLabels(context.Background())
	if err != nil {
		return err
	}
	defaults := prefs.DefaultLabels()

	entries := make([]keyListEntry, 0, len(domain.Actions))
	for _, action := range domain.GetActions() {
		entries = append(entries, keyListEntry{
			Action:      action.Name,
			Chord:       labels[action.Name],
			Default:     defaults[action.Name],
			Description: action.Description,
		})
	}

	if k.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tHOTKEY\tDEFAULT\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Action, displayLabel(e.Chord), displayLabel(e.Default), e.Description)
	}
	return w.Flush()
}

// KeysSetCmd assigns a chord through the same recorder the TUI uses
type KeysSetCmd struct {
	Action string `arg:"" help:"Action name (e.g., paste, show_history)"`
	Chord  string `arg:"" help:"Key combination (e.g., 'ctrl+shift+v' or 'CTRL + SHIFT + V')"`
}

// Run executes the set command
func (k *KeysSetCmd) Run(cli *CLI) error {
	prefs := cli.Container.PreferencesService
	ctx := context.Background()

	logging.Logger.Info("Executing keys set command", "action", k.Action, "chord", k.Chord)

	if err := prefs.ValidateAction(k.Action); err != nil {
		return err
	}

	chord, err := domain.ParseChord(k.Chord, prefs.Platform())
	if err != nil {
		return err
	}

	labels, err := prefs.EffectiveLabels(ctx)
	if err != nil {
		return err
	}

	persister := services.NewAssignmentPersister(cli.Container.Repository)
	feed := services.NewKeyFeed()
	surface := &consoleSurface{}

	recorder, err := services.NewHotkeyRecorder(labels, prefs.Platform(), surface, persister, feed)
	if err != nil {
		persister.Close()
		return err
	}

	recorder.BeginCapture(k.Action)
	feed.Feed(chord.KeyEvent())

	if err := recorder.Commit(); err != nil {
		recorder.Cancel()
		persister.Close()
		logging.Logger.Warn("Hotkey rejected", "action", k.Action, "chord", chord.String(), "error", err)
		return fmt.Errorf("%s %w", surface.text, err)
	}

	if err := flush(persister); err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", k.Action, recorder.Label(k.Action))
	return nil
}

// KeysResetCmd removes stored hotkeys so defaults apply again
type KeysResetCmd struct {
	Action string `arg:"" optional:"" help:"Action to reset (all actions when omitted)"`
}

// Run executes the reset command
func (k *KeysResetCmd) Run(cli *CLI) error {
	var actions []string
	if k.Action != "" {
		actions = append(actions, k.Action)
	}

	labels, err := cli.Container.PreferencesService.Reset(context.Background(), actions...)
	if err != nil {
		return err
	}

	if k.Action != "" {
		fmt.Printf("%s: %s\n", k.Action, displayLabel(labels[k.Action]))
		return nil
	}

	fmt.Println("All hotkeys restored to defaults")
	return nil
}

// flush closes the persister and reports the first failed write
func flush(persister *services.AssignmentPersister) error {
	if err := persister.Close(); err != nil {
		return err
	}
	for result := range persister.Results() {
		if result.Err != nil {
			return result.Err
		}
	}
	return nil
}

func displayLabel(label string) string {
	if label == "" {
		return unassignedLabel
	}
	return label
}

// consoleSurface is the capture surface of the headless recorder.
// It keeps the last displayed text so rejections can be reported.
type consoleSurface struct {
	text string
}

func (s *consoleSurface) ShowPrompt() {}

func (s *consoleSurface) HidePrompt() {}

func (s *consoleSurface) SetDisplayText(text string) {
	s.text = text
}

func (s *consoleSurface) SetActionLabel(action, label string) {
	logging.Logger.Debug("Hotkey label updated", "action", action, "label", label)
}
