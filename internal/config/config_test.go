package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPollIntervalMs, cfg.PollInterval)
	assert.Equal(t, DefaultNotifyThreshold, cfg.NotifyThreshold)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.DisableNotifications)
}

func TestLoadAppliesDefaultsToMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("pollIntervalMs: 5000\noutlineCollapsed: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.PollInterval)
	assert.True(t, cfg.OutlineCollapsed)
	assert.Equal(t, DefaultNotifyThreshold, cfg.NotifyThreshold)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestSaveWritesBackToLoadedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("outlineCollapsed: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.OutlineCollapsed = true
	require.NoError(t, Save(cfg))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, reloaded.OutlineCollapsed)

	// No stray temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.PollInterval = 15000
	require.NoError(t, Save(cfg))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15000, reloaded.PollInterval)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("pollIntervalMs: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
