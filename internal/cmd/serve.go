package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/clipkeys/internal/config"
	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port int    `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if s.Host == config.DefaultSSHHost && cli.settings.SSHHost != "" {
		s.Host = cli.settings.SSHHost
	}
	if s.Port == config.DefaultSSHPort && cli.settings.SSHPort != nil {
		s.Port = *cli.settings.SSHPort
	}

	errorClearDelay := config.DefaultErrorClearDelay
	if cli.settings.ErrorClearDelay != nil {
		errorClearDelay = *cli.settings.ErrorClearDelay
	}

	logging.Logger.Info("Starting clipkeys SSH server",
		"host", s.Host,
		"port", s.Port,
		"db_path", config.GetDBPath())

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: config.GetAuthorizedKeysPath(),
		ErrorClearDelay:    time.Duration(errorClearDelay) * time.Second,
		Host:               s.Host,
		HostKeyPath:        config.GetHostKeyPath(),
		Port:               s.Port,
		Preferences:        cli.Container.PreferencesService,
		Repository:         cli.Container.Repository,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("SSH server listening on %s\n", srv.Address())
	return srv.Start(ctx)
}
