//go:build unix

package lock

import (
	"os"

	"golang.org/x/sys/unix"
)

// tryLockFile takes an exclusive lock without blocking
func tryLockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

// unlockFile releases the lock on the file
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
