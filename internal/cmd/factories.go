package cmd

import (
	adaptereditor "github.com/renato0307/clipkeys/internal/adapters/editor"
	"github.com/renato0307/clipkeys/internal/adapters/globalhotkey"
	adapterstorage "github.com/renato0307/clipkeys/internal/adapters/storage"
	"github.com/renato0307/clipkeys/internal/config"
	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
	"github.com/renato0307/clipkeys/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ListenerService    *services.ListenerService
	PreferencesService *services.PreferencesService

	// Adapters
	Editor ports.EditorOpener

	// Shared by every persister (TUI, SSH sessions, keys set)
	Repository ports.AssignmentRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(platform domain.Platform, overrides config.HotkeysConfig) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	preferencesService := services.NewPreferencesService(repo, overrides, platform)
	listenerService := services.NewListenerService(preferencesService, globalhotkey.NewRegistrar())

	logging.Logger.Debug("Container created",
		"db_path", config.GetDBPath(),
		"platform", platform.String(),
		"overrides", len(overrides))

	return &Container{
		Editor:             adaptereditor.NewOpener(),
		ListenerService:    listenerService,
		PreferencesService: preferencesService,
		Repository:         repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}
