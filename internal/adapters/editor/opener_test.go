package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEditorPrecedence(t *testing.T) {
	t.Setenv(EnvEditor, "from-clipkeys")
	t.Setenv("VISUAL", "from-visual")
	t.Setenv("EDITOR", "from-editor")

	assert.Equal(t, "from-flag", findEditor("from-flag"))
	assert.Equal(t, "from-clipkeys", findEditor(""))

	t.Setenv(EnvEditor, "")
	assert.Equal(t, "from-visual", findEditor(""))

	t.Setenv("VISUAL", "")
	assert.Equal(t, "from-editor", findEditor(""))
}

func TestOpenMissingPath(t *testing.T) {
	err := NewOpener().Open(filepath.Join(t.TempDir(), "missing.json"), "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")
}

func TestOpenRunsEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the true and false commands")
	}

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	// "true" ignores its argument and exits 0
	assert.NoError(t, NewOpener().Open(path, "true"))
	assert.Error(t, NewOpener().Open(path, "false"))
}
