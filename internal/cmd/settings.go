package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/renato0307/clipkeys/internal/config"
	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
)

// settingsEditCommand is the kong command path of SettingsEditCmd
const settingsEditCommand = "settings edit"

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit SettingsEditCmd `cmd:"edit" help:"Open settings.json in an editor and validate it"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsEditCmd edits settings.json
type SettingsEditCmd struct {
	Editor string `help:"Editor to use (overrides $CLIPKEYS_EDITOR, $VISUAL, $EDITOR)"`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.Logger.Info("Creating empty settings file", "path", path)
		if err := config.SaveSettings(&config.Settings{}); err != nil {
			return err
		}
	}

	if err := cli.Container.Editor.Open(path, s.Editor); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	platform := cli.Container.PreferencesService.Platform()
	if err := settings.Hotkeys.Validate(domain.ActionNames(), platform); err != nil {
		return fmt.Errorf("invalid hotkeys in settings.json: %w", err)
	}

	fmt.Printf("Settings saved: %s\n", path)
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case map[string]string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure clipkeys.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
