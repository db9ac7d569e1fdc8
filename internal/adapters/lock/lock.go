// Package lock provides a single-instance lock file.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/clipkeys/internal/logging"
)

// ErrLocked is returned when another process holds the lock
var ErrLocked = errors.New("another instance is already running")

// FileLock is an exclusive, non-blocking lock on a file
type FileLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path, failing immediately with ErrLocked when
// another process holds it. The holder's PID is written into the file.
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		holder := readHolder(file)
		file.Close()
		logging.Logger.Warn("Lock held by another process", "path", path, "pid", holder)
		if holder != "" {
			return nil, fmt.Errorf("%w (pid %s)", ErrLocked, holder)
		}
		return nil, ErrLocked
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logging.Logger.Debug("Lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := unlockFile(l.file); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to unlock %s: %w", l.path, err)
	}
	logging.Logger.Debug("Lock released", "path", l.path)
	return l.file.Close()
}

func readHolder(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}
