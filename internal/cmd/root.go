package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipkeys/internal/config"
	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/services"
	"github.com/renato0307/clipkeys/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Platform    string           `help:"Platform used to name the meta key (CMD on mac, WIN elsewhere)" enum:"auto,mac,windows,linux" default:"auto"`

	Run      RunCmd      `cmd:"" help:"Start the hotkey preferences TUI (default)" default:"1"`
	Keys     KeysCmd     `cmd:"keys" help:"Manage hotkeys (list, set, reset)"`
	Listen   ListenCmd   `cmd:"listen" help:"Register hotkeys system-wide and report activations"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the preferences TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.Platform == config.DefaultPlatform {
		if envPlatform, hasEnv := os.LookupEnv(config.EnvPlatform); hasEnv {
			c.Platform = envPlatform
		} else if c.settings.Platform != "" {
			c.Platform = c.settings.Platform
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	platform, err := domain.ParsePlatform(c.Platform)
	if err != nil {
		return err
	}

	overrides := c.settings.Hotkeys
	if err := overrides.Validate(domain.ActionNames(), platform); err != nil {
		// settings edit must stay usable to fix the file
		if kctx.Command() != settingsEditCommand {
			return fmt.Errorf("invalid hotkeys in settings.json: %w", err)
		}
		logging.Logger.Warn("Ignoring invalid hotkeys in settings.json", "error", err)
		overrides = nil
	}

	// Container is created after logging so the gorm logger has somewhere to write
	container, err := NewContainer(platform, overrides)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in headers)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear (0 = never)" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *cli.settings.ErrorClearDelay
	}

	logging.Logger.Info("Starting clipkeys TUI")

	persister := services.NewAssignmentPersister(cli.Container.Repository)
	defer func() {
		// Flush the last snapshot before the database is closed
		if err := persister.Close(); err != nil {
			logging.Logger.Error("Failed to flush hotkeys", "error", err)
		}
	}()

	errorClearDelay := time.Duration(r.ErrorClearDelay) * time.Second
	model, err := ui.NewModel(cli.Container.PreferencesService, persister, errorClearDelay, r.Dev)
	if err != nil {
		return err
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
