package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendRaylib, cfg.Backend)
	assert.Equal(t, float32(CameraFov), cfg.Camera.Fov)
	assert.Equal(t, FuseTimeout, cfg.Cursor.FuseTimeout)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
backend: ebiten
seed: 42
window:
  width: 800
camera:
  fov: 70
log:
  level: debug
  format: json
debug:
  addr: "localhost:7070"
`))
	require.NoError(t, err)
	assert.Equal(t, BackendEbiten, cfg.Backend)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, ScreenHeight, cfg.Window.Height, "unset fields keep defaults")
	assert.Equal(t, float32(70), cfg.Camera.Fov)
	assert.Equal(t, "localhost:7070", cfg.Debug.Addr)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("backend: vulkan"))
	assert.ErrorIs(t, err, ErrUnknownBackend)

	for _, doc := range []string{
		"window: {width: 0}",
		"window: {targetFPS: -1}",
		"camera: {fov: 190}",
		"camera: {sensitivity: 0}",
		"cursor: {fuseTimeout: 0}",
		"log: {level: loud}",
		"log: {format: xml}",
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidConfig, doc)
	}

	_, err = Parse([]byte("backend: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "vrscene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf, lvl)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	lvl.Set(slog.LevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestWatcherPublishesReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vrscene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0o644))

	w, err := Watch(path, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("seed: 2\nhud: false\n"), 0o644))

	select {
	case cfg := <-w.Updates:
		assert.Equal(t, int64(2), cfg.Seed)
		assert.False(t, cfg.HUD)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload published")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "close is idempotent")
}
