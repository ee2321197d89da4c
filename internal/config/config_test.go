package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TERMFOLIO_CONFIG", "")
}

func TestDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "#terminal", c.Terminal.Selector)
	require.Equal(t, 50*time.Millisecond, c.Animation.Delay)
	require.Equal(t, "dark", c.Render.Style)
	require.Equal(t, 8080, c.Serve.Port)
	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Content.Path)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TERMFOLIO_ANIMATION_DELAY", "10ms")
	t.Setenv("TERMFOLIO_SERVE_PORT", "9090")
	t.Setenv("TERMFOLIO_TERMINAL_SELECTOR", "#shell")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, c.Animation.Delay)
	require.Equal(t, 9090, c.Serve.Port)
	require.Equal(t, "#shell", c.Terminal.Selector)
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "termfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
render:
  style: notty
log:
  level: debug
  file: /tmp/termfolio.log
`), 0o644))
	t.Setenv("TERMFOLIO_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "notty", c.Render.Style)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, "/tmp/termfolio.log", c.Log.File)
}

func TestMissingExplicitFileFails(t *testing.T) {
	isolate(t)
	t.Setenv("TERMFOLIO_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.ErrorContains(t, err, "read config")
}

func TestRejectsNonPositiveDelay(t *testing.T) {
	isolate(t)
	t.Setenv("TERMFOLIO_ANIMATION_DELAY", "0s")

	_, err := Load()
	require.ErrorContains(t, err, "animation.delay")
}

func TestRejectsUnitlessDelay(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "termfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animation:\n  delay: 50\n"), 0o644))
	t.Setenv("TERMFOLIO_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "at least 1ms")
}
