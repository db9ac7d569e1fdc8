package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

// buildTags leaves golang.design/x/hotkey out of the test binary. Its init
// needs an X display on linux, and CI runners have none.
const buildTags = "nohotkey"

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles the headless clipkeys binary once per test run.
// Call it from TestMain and pair it with CleanupBinary.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		binaryPath, buildErr = build()
	})
	return binaryPath, buildErr
}

func build() (string, error) {
	root, err := moduleRoot()
	if err != nil {
		return "", fmt.Errorf("locate module root: %w", err)
	}

	dir, err := os.MkdirTemp("", "clipkeys-integration-*")
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, "clipkeys")

	cmd := exec.Command("go", "build", "-tags", buildTags, "-o", out, "./cmd")
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("go build -tags %s: %w", buildTags, err)
	}
	return out, nil
}

// CleanupBinary removes the compiled binary and its temp directory
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to remove %s: %v", filepath.Dir(binaryPath), err)
	}
}

// RunCommand runs clipkeys with args inside env using the default timeout
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout runs clipkeys with args inside env. A timeout or a
// failure to start reports exit code -1.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{ExitCode: exitCode(tb, ctx, cmd.Run(), args)}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func exitCode(tb testing.TB, ctx context.Context, err error, args []string) int {
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("clipkeys %v timed out", args)
		return -1
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	case err != nil:
		tb.Logf("clipkeys %v did not run: %v", args, err)
		return -1
	}
	return 0
}

// moduleRoot asks the go tool for the directory holding go.mod
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
