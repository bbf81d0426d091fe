package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "claude-flow", cfg.Tool.Package)
	assert.Equal(t, "alpha", cfg.Tool.Tag)
	assert.Equal(t, "npx", cfg.Tool.Launcher)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, ".freshd", cfg.Updater.StateDir)
	assert.Equal(t, time.Hour, cfg.CheckInterval())
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tool:
  package: my-tool
  tag: latest
updater:
  checkInterval: 30m
  stateDir: /var/lib/freshd
server:
  port: 8080
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "my-tool", cfg.Tool.Package)
	assert.Equal(t, "latest", cfg.Tool.Tag)
	assert.Equal(t, 30*time.Minute, cfg.CheckInterval())
	assert.Equal(t, "/var/lib/freshd", cfg.Updater.StateDir)
	assert.Equal(t, 8080, cfg.Server.Port)

	// Keys not present in the file keep their defaults.
	assert.Equal(t, "npx", cfg.Tool.Launcher)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "tool: [not a mapping")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_PortEnvOverride(t *testing.T) {
	t.Setenv(PortEnvVar, "9999")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoadConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv(PortEnvVar, "not-a-port")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Server.Port)
}

func TestCheckInterval_Malformed(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Updater.CheckInterval = "soon"
	assert.Equal(t, time.Hour, cfg.CheckInterval())

	cfg.Updater.CheckInterval = "-5m"
	assert.Equal(t, time.Hour, cfg.CheckInterval())
}
