package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CLIPKEYS_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
	unset    map[string]bool
}

// NewTestEnvironment creates an isolated test environment with a temp CLIPKEYS_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
		unset:    make(map[string]bool),
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CLIPKEYS_* variables and sets:
//   - CLIPKEYS_HOME to the temp directory
//   - CLIPKEYS_DEBUG to empty string (disables debug logging)
//   - CLIPKEYS_PLATFORM to linux
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"CLIPKEYS_DEBUG":    true,
		"CLIPKEYS_HOME":     true,
		"CLIPKEYS_PLATFORM": true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CLIPKEYS_") || overrideKeys[key] || e.unset[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CLIPKEYS_HOME="+e.Home,
		"CLIPKEYS_DEBUG=",
		"CLIPKEYS_PLATFORM=linux",
	)

	// Extra variables come last so they win over the defaults above
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes settings.json into the test home.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// UnsetEnv drops an inherited variable, e.g. DISPLAY to mimic a headless host.
func (e *TestEnvironment) UnsetEnv(key string) {
	if e.unset == nil {
		e.unset = make(map[string]bool)
	}
	e.unset[key] = true
}
