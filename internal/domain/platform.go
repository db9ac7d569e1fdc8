package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects how the meta modifier is rendered
type Platform int

const (
	PlatformOther Platform = iota
	PlatformMac
)

// Platform names accepted in settings and flags
const (
	PlatformNameAuto    = "auto"
	PlatformNameLinux   = "linux"
	PlatformNameMac     = "mac"
	PlatformNameWindows = "windows"
)

// DetectPlatform returns the platform of the running OS
func DetectPlatform() Platform {
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}

// ParsePlatform resolves a platform name; "auto" and "" detect the running OS
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PlatformNameAuto:
		return DetectPlatform(), nil
	case PlatformNameMac, "darwin", "macos":
		return PlatformMac, nil
	case PlatformNameLinux, PlatformNameWindows:
		return PlatformOther, nil
	}
	return PlatformOther, fmt.Errorf("unknown platform '%s' (valid: auto, mac, windows, linux)", name)
}

// MetaToken is the canonical token of the meta modifier on this platform
func (p Platform) MetaToken() string {
	if p == PlatformMac {
		return TokenCmd
	}
	return TokenWin
}

// IsMac reports whether this is the Mac platform
func (p Platform) IsMac() bool {
	return p == PlatformMac
}

func (p Platform) String() string {
	if p == PlatformMac {
		return PlatformNameMac
	}
	return "other"
}
