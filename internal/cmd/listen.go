package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/clipkeys/internal/adapters/globalhotkey"
	"github.com/renato0307/clipkeys/internal/adapters/lock"
	"github.com/renato0307/clipkeys/internal/config"
	"github.com/renato0307/clipkeys/internal/logging"
)

// ListenCmd registers the effective hotkeys system-wide
type ListenCmd struct {
	Quiet bool `help:"Do not print activations" short:"q"`
}

// Run executes the listen command; it blocks until SIGINT or SIGTERM
func (l *ListenCmd) Run(cli *CLI) error {
	fileLock, err := lock.Acquire(config.GetListenLockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := fileLock.Release(); err != nil {
			logging.Logger.Error("Failed to release listen lock", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bindings, err := cli.Container.ListenerService.Bindings(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Listening for %d hotkeys (ctrl+c to stop)\n", len(bindings))

	var listenErr error
	globalhotkey.RunOnMain(func() {
		listenErr = cli.Container.ListenerService.Listen(ctx, func(action string) {
			if !l.Quiet {
				fmt.Printf("%s %s\n", time.Now().Format(time.TimeOnly), action)
			}
		})
	})
	return listenErr
}
