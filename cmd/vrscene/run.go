// cmd/vrscene/run.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go-vr-scene/internal/app"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/defs"
	"go-vr-scene/internal/engine"
	"go-vr-scene/internal/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the scene in a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("backend") {
			cfg.Backend, _ = cmd.Flags().GetString("backend")
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if cmd.Flags().Changed("debug-addr") {
			cfg.Debug.Addr, _ = cmd.Flags().GetString("debug-addr")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runScene(ctx, cfg, cfgPath)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("backend", config.BackendRaylib, "render backend: raylib or ebiten")
	runCmd.Flags().String("debug-addr", "", "serve /metrics, /scene, /state and pprof on this address")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

func runScene(ctx context.Context, cfg config.Config, cfgPath string) error {
	level := new(slog.LevelVar)
	logger := config.NewLogger(cfg.Log, os.Stderr, level)
	slog.SetDefault(logger)

	presets, err := loadPresets(cfg.PresetsFile)
	if err != nil {
		return err
	}

	m := metrics.New()
	a, err := app.New(app.Options{
		Seed:        cfg.Seed,
		Presets:     presets,
		Logger:      logger,
		LogLevel:    level,
		Metrics:     m,
		Fov:         cfg.Camera.Fov,
		Sensitivity: cfg.Camera.Sensitivity,
		FuseTimeout: cfg.Cursor.FuseTimeout,
		HUD:         cfg.HUD,
	})
	if err != nil {
		return err
	}

	opts := engine.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		Logger:    logger,
	}
	if cfgPath != "" {
		w, err := config.Watch(cfgPath, logger)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer w.Close()
		opts.Reloads = w.Updates
	}

	backend, err := engine.New(cfg.Backend, opts)
	if err != nil {
		return err
	}

	if cfg.Debug.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Debug.Addr, metrics.NewHandler(m, a, logger), logger); err != nil {
				logger.Error("debug server stopped", "error", err)
			}
		}()
	}

	logger.Info("starting", "backend", cfg.Backend, "width", cfg.Window.Width, "height", cfg.Window.Height)
	return backend.Run(ctx, a)
}

func loadPresets(path string) (defs.PresetLibrary, error) {
	if path == "" {
		return defs.BuiltinPresets()
	}
	return defs.LoadPresetDefinitions(path)
}
