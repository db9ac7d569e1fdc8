package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/clipkeys/test/integration/harness"
)

type keyEntry struct {
	Action      string `json:"action"`
	Chord       string `json:"chord"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// listKeys returns action -> chord from keys list --format json
func listKeys(t *testing.T, env *harness.TestEnvironment, extraArgs ...string) map[string]string {
	t.Helper()

	args := append([]string{"keys", "list", "--format", "json"}, extraArgs...)
	result := harness.RunCommand(t, env, args...)
	harness.AssertSuccess(t, result)

	var entries []keyEntry
	harness.AssertValidJSON(t, result, &entries)

	chords := make(map[string]string, len(entries))
	for _, e := range entries {
		chords[e.Action] = e.Chord
	}
	return chords
}

func TestKeysList(t *testing.T) {
	t.Run("table shows defaults", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "keys", "list")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "ACTION")
		harness.AssertStdoutContains(t, result, "paste_plain")
		harness.AssertStdoutContains(t, result, "CTRL + ALT + V")
	})

	t.Run("json lists every action", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		chords := listKeys(t, env)

		assert.Len(t, chords, 6)
		assert.Equal(t, "CTRL + SHIFT + C", chords["copy"])
		assert.Equal(t, "CTRL + SHIFT + V", chords["paste"])
	})

	t.Run("invalid format fails", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "keys", "list", "--format", "yaml")

		harness.AssertFailure(t, result)
	})
}

func TestKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "assigns a free chord",
			args:         []string{"keys", "set", "paste", "ctrl+alt+p"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "paste: CTRL + ALT + P")
				assert.Equal(t, "CTRL + ALT + P", listKeys(t, env)["paste"])
			},
		},
		{
			name:         "modifier order is canonical",
			args:         []string{"keys", "set", "paste", "alt+shift+b"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "paste: SHIFT + ALT + B")
			},
		},
		{
			name:         "meta renders as WIN on linux",
			args:         []string{"keys", "set", "paste", "cmd+z"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "paste: WIN + Z")
			},
		},
		{
			name:         "meta renders as CMD on mac",
			args:         []string{"--platform", "mac", "keys", "set", "paste", "meta+a"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "paste: CMD + A")
			},
		},
		{
			name:         "modifier-only chord is accepted",
			args:         []string{"keys", "set", "toggle_capture", "ctrl"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "toggle_capture: CTRL")
			},
		},
		{
			name:         "re-capturing the own chord succeeds",
			args:         []string{"keys", "set", "copy", "CTRL + SHIFT + C"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "copy: CTRL + SHIFT + C")
			},
		},
		{
			name:         "duplicate chord is rejected",
			args:         []string{"keys", "set", "paste", "ctrl+shift+c"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "Combo already in use!")
				harness.AssertStderrContains(t, result, "'copy'")
				assert.Equal(t, "CTRL + SHIFT + V", listKeys(t, env)["paste"])
			},
		},
		{
			name:         "unknown action is rejected",
			args:         []string{"keys", "set", "launch_rockets", "ctrl+l"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown action")
			},
		},
		{
			name:         "two keys are rejected",
			args:         []string{"keys", "set", "paste", "ctrl+a+b"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid key combination")
			},
		},
		{
			name:         "modifier key name as key is rejected",
			args:         []string{"keys", "set", "paste", "ctrl+os"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "OS is a modifier key")
				assert.Equal(t, "CTRL + SHIFT + V", listKeys(t, env)["paste"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestKeysSetSwap(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	// Free paste's chord, then give it to copy
	harness.AssertSuccess(t, harness.RunCommand(t, env, "keys", "set", "paste", "ctrl+alt+p"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "keys", "set", "copy", "ctrl+shift+v"))

	chords := listKeys(t, env)
	assert.Equal(t, "CTRL + ALT + P", chords["paste"])
	assert.Equal(t, "CTRL + SHIFT + V", chords["copy"])
}

func TestKeysReset(t *testing.T) {
	t.Run("single action", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "keys", "set", "paste", "ctrl+alt+p"))

		result := harness.RunCommand(t, env, "keys", "reset", "paste")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "paste: CTRL + SHIFT + V")
	})

	t.Run("all actions", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "keys", "set", "paste", "ctrl+alt+p"))
		harness.AssertSuccess(t, harness.RunCommand(t, env, "keys", "set", "copy", "ctrl+alt+c"))

		result := harness.RunCommand(t, env, "keys", "reset")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "All hotkeys restored to defaults")
		chords := listKeys(t, env)
		assert.Equal(t, "CTRL + SHIFT + V", chords["paste"])
		assert.Equal(t, "CTRL + SHIFT + C", chords["copy"])
	})

	t.Run("unknown action", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "keys", "reset", "nope")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "unknown action")
	})
}

func TestKeysSettingsOverrides(t *testing.T) {
	t.Run("override replaces default", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(map[string]any{
			"hotkeys": map[string]string{"paste": "ctrl+v"},
		})

		chords := listKeys(t, env)

		assert.Equal(t, "CTRL + V", chords["paste"])
	})

	t.Run("stored assignment wins over override", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(map[string]any{
			"hotkeys": map[string]string{"paste": "ctrl+v"},
		})
		harness.AssertSuccess(t, harness.RunCommand(t, env, "keys", "set", "paste", "ctrl+alt+p"))

		chords := listKeys(t, env)

		assert.Equal(t, "CTRL + ALT + P", chords["paste"])
	})

	t.Run("unknown action in settings fails", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(map[string]any{
			"hotkeys": map[string]string{"nope": "ctrl+n"},
		})

		result := harness.RunCommand(t, env, "keys", "list")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "invalid hotkeys in settings.json")
	})

	t.Run("duplicate chords in settings fail", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(map[string]any{
			"hotkeys": map[string]string{"paste": "ctrl+v", "copy": "CTRL + V"},
		})

		result := harness.RunCommand(t, env, "keys", "list")

		harness.AssertFailure(t, result)
		require.Contains(t, result.Stderr, "invalid hotkeys in settings.json")
	})
}

func TestKeysSettingsModifierKeyOverride(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{
		"hotkeys": map[string]string{"paste": "ctrl+hyper"},
	})

	result := harness.RunCommand(t, env, "keys", "list")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid hotkeys in settings.json")
}

func TestKeysPlatformFromEnv(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("CLIPKEYS_PLATFORM", "mac")

	result := harness.RunCommand(t, env, "keys", "set", "paste", "win+v")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "paste: CMD + V")
}
