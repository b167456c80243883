package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idursun/splitview/internal/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGetConfigDir_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPLITVIEW_CONFIG_DIR", dir)
	assert.Equal(t, dir, GetConfigDir())
}

func TestResolve_UserFileFromEnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPLITVIEW_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[split]
fraction = 0.3
axis = "v"
`)

	config, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 0.3, config.Split.Fraction)
	assert.Equal(t, split.Vertical, config.Split.Axis)
	assert.Equal(t, filepath.Join(dir, "state.toml"), config.StateFilePath())
}

func TestResolve_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Setenv("SPLITVIEW_CONFIG_DIR", t.TempDir())

	config, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, config.Split.Fraction)
}

func TestResolve_ExplicitFile(t *testing.T) {
	t.Setenv("SPLITVIEW_CONFIG_DIR", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[state]\nfile = \"/tmp/elsewhere.toml\"\n")

	config, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.toml", config.StateFilePath())
}

func TestResolve_Errors(t *testing.T) {
	t.Setenv("SPLITVIEW_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	_, err := Resolve(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "reading config file")

	broken := filepath.Join(dir, "broken.toml")
	writeFile(t, broken, "[split\n")
	_, err = Resolve(broken)
	assert.ErrorContains(t, err, "parsing config file")

	invalid := filepath.Join(dir, "invalid.toml")
	writeFile(t, invalid, "[split]\nfraction = 3.0\n")
	_, err = Resolve(invalid)
	assert.ErrorContains(t, err, "invalid config")
}
