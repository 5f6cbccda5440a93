// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "VR Scene"
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	// Камера: рост зрителя и параметры перспективы
	CameraHeight = 1.6
	CameraFov    = 80.0
	NearPlane    = 0.05
	FarPlane     = 1000.0

	LookSensitivity = 0.003 // радиан на пиксель
	FuseTimeout     = 1.5   // секунды
	CursorDistance  = 1.0   // кольцо курсора перед камерой

	StageSize = 200.0

	IndicatorX      = 40
	IndicatorY      = 40
	IndicatorRadius = 16.0

	DebugAddr = "localhost:6060"
)

const (
	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
)

var (
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 140}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	// цвет для "невидимого" курсора, пока сцена на паузе
	CursorIdleColor = color.RGBA{255, 255, 255, 90}
)

var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrUnknownBackend = errors.New("unknown backend")
)

// Config is the runtime configuration, loaded from YAML.
type Config struct {
	Backend     string       `yaml:"backend"`
	Seed        int64        `yaml:"seed"`
	HUD         bool         `yaml:"hud"`
	PresetsFile string       `yaml:"presetsFile"`
	Window      WindowConfig `yaml:"window"`
	Camera      CameraConfig `yaml:"camera"`
	Cursor      CursorConfig `yaml:"cursor"`
	Log         LogConfig    `yaml:"log"`
	Debug       DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"targetFPS"`
}

type CameraConfig struct {
	Fov         float32 `yaml:"fov"`
	Sensitivity float32 `yaml:"sensitivity"`
}

type CursorConfig struct {
	FuseTimeout float64 `yaml:"fuseTimeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DebugConfig controls the debug HTTP server; an empty Addr disables it.
type DebugConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: BackendRaylib,
		HUD:     true,
		Window: WindowConfig{
			Width:     ScreenWidth,
			Height:    ScreenHeight,
			Title:     WindowTitle,
			TargetFPS: TargetFPS,
		},
		Camera: CameraConfig{
			Fov:         CameraFov,
			Sensitivity: LookSensitivity,
		},
		Cursor: CursorConfig{FuseTimeout: FuseTimeout},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. A missing path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendRaylib, BackendEbiten:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS <= 0 {
		return fmt.Errorf("%w: targetFPS %d", ErrInvalidConfig, c.Window.TargetFPS)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("%w: camera fov %v", ErrInvalidConfig, c.Camera.Fov)
	}
	if c.Camera.Sensitivity <= 0 {
		return fmt.Errorf("%w: camera sensitivity %v", ErrInvalidConfig, c.Camera.Sensitivity)
	}
	if c.Cursor.FuseTimeout <= 0 {
		return fmt.Errorf("%w: fuse timeout %v", ErrInvalidConfig, c.Cursor.FuseTimeout)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
