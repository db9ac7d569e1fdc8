package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the clipkeys home directory
const EnvHome = "CLIPKEYS_HOME"

// GetHome returns CLIPKEYS_HOME or ~/.clipkeys default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".clipkeys"
		}
		return filepath.Join(homeDir, ".clipkeys")
	}
	return ExpandPath(home)
}

// GetDBPath returns $CLIPKEYS_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $CLIPKEYS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetListenLockPath returns $CLIPKEYS_HOME/listen.lock
func GetListenLockPath() string {
	return filepath.Join(GetHome(), "listen.lock")
}

// GetHostKeyPath returns $CLIPKEYS_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh_host_ed25519")
}

// GetAuthorizedKeysPath returns ~/.ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return ExpandPath("~/.ssh/authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
