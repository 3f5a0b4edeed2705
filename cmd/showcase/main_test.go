package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"showcase/internal/prefs"
	"showcase/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points the preference store at a temp dir.
func writeConfig(t *testing.T) (cfgPath, prefsPath string) {
	t.Helper()
	dir := t.TempDir()
	prefsPath = filepath.Join(dir, "prefs.yaml")
	cfgPath = testutils.WriteTestFile(t, dir, "config.yaml", "log:\n  level: error\nprefs_path: "+prefsPath+"\n")
	return cfgPath, prefsPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return testutils.StripANSI(out.String()), err
}

func TestRoutesCmd(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "main/guidelines")
	assert.Contains(t, out, "components/variant/1")
	assert.Contains(t, out, "own chrome")
	assert.Contains(t, out, "search")

	out, err = execute(t, "--config", cfgPath, "routes", "main/*")
	require.NoError(t, err)
	assert.Contains(t, out, "main/about")
	assert.NotContains(t, out, "components/variant")

	out, err = execute(t, "--config", cfgPath, "routes", "nothing/*")
	require.NoError(t, err)
	assert.Contains(t, out, "No routes match.")

	_, err = execute(t, "--config", cfgPath, "routes", "[")
	assert.Error(t, err)
}

func TestThemesCmd(t *testing.T) {
	cfgPath, prefsPath := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* Baseline")
	assert.Contains(t, out, "  Ocean")

	out, err = execute(t, "--config", cfgPath, "themes", "set", "Ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to Ocean")

	store, err := prefs.OpenFile(prefsPath)
	require.NoError(t, err)
	name, ok := store.GetString(prefs.ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "Ocean", name)

	out, err = execute(t, "--config", cfgPath, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* Ocean")

	out, err = execute(t, "--config", cfgPath, "themes", "set", "Ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "already selected")

	_, err = execute(t, "--config", cfgPath, "themes", "set", "Neon")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutils.WriteTestFile(t, dir, "config.yaml", "theme:\n  dark_mode: sometimes\n")

	_, err := execute(t, "--config", cfgPath, "routes")
	assert.Error(t, err)
}
