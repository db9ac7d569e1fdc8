package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/clipkeys/internal/domain"
)

// Defaults for settings that also have CLI flags
const (
	DefaultErrorClearDelay = 10
	DefaultPlatform        = domain.PlatformNameAuto
	DefaultSSHHost         = "localhost"
	DefaultSSHPort         = 23234
)

// HotkeysConfig holds chord overrides per action, e.g. {"paste": "CTRL + V"}.
// An empty value unassigns the action.
type HotkeysConfig map[string]string

// Validate checks action names against validNames, parses every chord and
// rejects two actions sharing a chord.
func (h HotkeysConfig) Validate(validNames []string, platform domain.Platform) error {
	if h == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	for name := range h {
		if !validSet[name] {
			return fmt.Errorf("%w '%s'", domain.ErrUnknownAction, name)
		}
	}

	if _, err := domain.NewAssignments(h, platform); err != nil {
		return err
	}
	return nil
}

// Settings represents the structure of ~/.clipkeys/settings.json
type Settings struct {
	Debug           *bool         `json:"debug,omitempty"`
	ErrorClearDelay *int          `json:"error_clear_delay,omitempty"`
	Hotkeys         HotkeysConfig `json:"hotkeys,omitempty"`
	MaxLogFiles     *int          `json:"max_log_files,omitempty"`
	Platform        string        `json:"platform,omitempty"`
	SSHHost         string        `json:"ssh_host,omitempty"`
	SSHPort         *int          `json:"ssh_port,omitempty"`
}

// LoadSettings loads settings from $CLIPKEYS_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CLIPKEYS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// EnvPlatform overrides the platform used to render the meta modifier
const EnvPlatform = "CLIPKEYS_PLATFORM"
