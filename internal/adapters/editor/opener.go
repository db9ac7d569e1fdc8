package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

// EnvEditor overrides $VISUAL and $EDITOR for clipkeys only
const EnvEditor = "CLIPKEYS_EDITOR"

// Opener implements ports.EditorOpener
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open edits path in the terminal and waits for the editor to exit.
// Priority: cliEditor → $CLIPKEYS_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor := findEditor(cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $%s, $VISUAL, or $EDITOR", EnvEditor)
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

func findEditor(cliEditor string) string {
	if cliEditor != "" {
		return cliEditor
	}

	for _, env := range []string{EnvEditor, "VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}

	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor
		}
	}
	return ""
}
