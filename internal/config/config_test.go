package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmadev/gostarter/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	testlog.Start(t)

	cfg := Default()
	assert.Equal(t, "gostarter", cfg.Name)
	assert.Equal(t, "Hello from gostarter", cfg.Demo.Message)
	assert.Equal(t, "Enigma", cfg.Record.Name)
	assert.Equal(t, 1020, cfg.Record.Age)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Timestamp)
	assert.False(t, cfg.Log.NoColor)
}

func TestLoadOverrides(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, `name = "demo-app"

[demo]
message = "from file"

[record]
name = "John"
age = 30

[log]
level = "debug"
timestamp = false
no_color = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo-app", cfg.Name)
	assert.Equal(t, "from file", cfg.Demo.Message)
	assert.Equal(t, "John", cfg.Record.Name)
	assert.Equal(t, 30, cfg.Record.Age)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Timestamp)
	assert.True(t, cfg.Log.NoColor)
}

func TestLoadKeepsDefaultsForUndefinedKeys(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, `[record]
age = 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gostarter", cfg.Name)
	assert.Equal(t, "Hello from gostarter", cfg.Demo.Message)
	assert.Equal(t, "Enigma", cfg.Record.Name)
	assert.Equal(t, 7, cfg.Record.Age)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadAllowsEmptyMessage(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, `[demo]
message = ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Demo.Message)
}

func TestLoadIgnoresBlankName(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, `name = "   "
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gostarter", cfg.Name)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, `[log]
level = "verbose"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestValidateMissingName(t *testing.T) {
	testlog.Start(t)

	cfg := Default()
	cfg.Name = "  "
	require.Error(t, Validate(cfg))
}

func TestTemplateMatchesDefaults(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, Template())
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteTemplate(path, false))

	err := WriteTemplate(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, WriteTemplate(path, true))
}
