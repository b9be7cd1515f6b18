package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, DefaultMaxInputChars, cfg.MaxInputChars)
	require.Equal(t, "wbwt", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingPathReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wbwtc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: lz\nlogLevel: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxInputChars, cfg.MaxInputChars)
	require.Equal(t, "lz", cfg.Format)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
