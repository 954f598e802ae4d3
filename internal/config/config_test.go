package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultForHome(t *testing.T) {
	cfg := defaultForHome("/Users/testuser")

	assert.GreaterOrEqual(t, len(cfg.SearchRoots), 20)
	assert.Contains(t, cfg.SearchRoots, "/Users/testuser/Library/Caches")
	assert.Contains(t, cfg.SearchRoots, "/Library/LaunchDaemons")
	assert.Contains(t, cfg.SearchRoots, "/private/var/db/receipts")
	assert.Contains(t, cfg.ApplicationDirs, "/Applications")
	assert.Equal(t, "/Users/testuser/.Trash", cfg.TrashDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := defaultForHome("/Users/testuser")
	cfg.ExtraRoots = []string{"/opt/custom"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.SearchRoots, loaded.SearchRoots)
	assert.Equal(t, []string{"/opt/custom"}, loaded.ExtraRoots)
	assert.Equal(t, cfg.TrashDir, loaded.TrashDir)
}

func TestLoadAppliesFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extra_roots:\n  - /opt/custom\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Roots and trash dir come from the built-in defaults.
	assert.NotEmpty(t, cfg.SearchRoots)
	assert.NotEmpty(t, cfg.TrashDir)
	assert.Equal(t, []string{"/opt/custom"}, cfg.ExtraRoots)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search_roots: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRootsAppendsExtras(t *testing.T) {
	cfg := &Config{
		SearchRoots: []string{"/a", "/b"},
		ExtraRoots:  []string{"/c"},
	}
	assert.Equal(t, []string{"/a", "/b", "/c"}, cfg.Roots())
}
