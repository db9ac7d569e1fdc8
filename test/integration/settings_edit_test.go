package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/clipkeys/test/integration/harness"
)

func TestSettingsEdit(t *testing.T) {
	t.Run("creates the file and validates it", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "edit", "--editor", "true")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Settings saved")
		_, err := os.Stat(env.SettingsPath())
		assert.NoError(t, err)
	})

	t.Run("editor from environment", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.SetEnv("CLIPKEYS_EDITOR", "true")

		result := harness.RunCommand(t, env, "settings", "edit")

		harness.AssertSuccess(t, result)
	})

	t.Run("still runs with invalid hotkeys and reports them", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(map[string]any{
			"hotkeys": map[string]string{"nope": "ctrl+n"},
		})

		result := harness.RunCommand(t, env, "settings", "edit", "--editor", "true")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "invalid hotkeys in settings.json")
		harness.AssertStderrContains(t, result, "unknown action")
	})

	t.Run("failing editor is reported", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "edit", "--editor", "false")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "editor false failed")
	})
}
