package engine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vr-scene/internal/app"
	"go-vr-scene/internal/config"
)

func TestNewBackend(t *testing.T) {
	for _, name := range []string{config.BackendRaylib, config.BackendEbiten} {
		b, err := New(name, Options{})
		require.NoError(t, err, name)
		assert.NotNil(t, b)
	}

	_, err := New("vulkan", Options{})
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestNewBackendDefaults(t *testing.T) {
	b, err := New(config.BackendEbiten, Options{})
	require.NoError(t, err)
	eb := b.(*ebitenBackend)
	assert.Equal(t, config.ScreenWidth, eb.opts.Width)
	assert.Equal(t, config.TargetFPS, eb.opts.TargetFPS)
	assert.Equal(t, config.WindowTitle, eb.opts.Title)
}

func TestDrainReloads(t *testing.T) {
	a, err := app.New(app.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), HUD: true})
	require.NoError(t, err)

	ch := make(chan config.Config, 2)
	cfg := config.Default()
	cfg.HUD = false
	ch <- cfg
	drainReloads(ch, a)
	assert.False(t, a.HUD())

	// пустой канал не блокирует
	drainReloads(ch, a)
	drainReloads(nil, a)
	close(ch)
	drainReloads(ch, a)
}
