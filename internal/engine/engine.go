// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"go-vr-scene/internal/app"
	"go-vr-scene/internal/config"
)

// Options are the window settings shared by every backend.
type Options struct {
	Width, Height int
	Title         string
	TargetFPS     int
	// Reloads delivers configs from the file watcher; drained once per frame.
	Reloads <-chan config.Config
	Logger  *slog.Logger
}

// Backend owns the window and the loop. Run returns when the window is
// closed, ctx is cancelled, or a frame fails.
type Backend interface {
	Run(ctx context.Context, a *app.App) error
}

// New returns the backend registered under name.
func New(name string, opts Options) (Backend, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if opts.TargetFPS <= 0 {
		opts.TargetFPS = config.TargetFPS
	}
	if opts.Title == "" {
		opts.Title = config.WindowTitle
	}
	switch name {
	case config.BackendRaylib:
		return &raylibBackend{opts: opts}, nil
	case config.BackendEbiten:
		return &ebitenBackend{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, name)
	}
}

// drainReloads applies every pending config without blocking.
func drainReloads(reloads <-chan config.Config, a *app.App) {
	for {
		select {
		case cfg, ok := <-reloads:
			if !ok {
				return
			}
			a.ApplyConfig(cfg)
		default:
			return
		}
	}
}
