// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go-vr-scene/internal/config"
	"go-vr-scene/internal/defs"
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/metrics"
	"go-vr-scene/internal/scene"
	"go-vr-scene/internal/state"
	"go-vr-scene/internal/system"
	"go-vr-scene/internal/types"
	"go-vr-scene/internal/utils"
	"go-vr-scene/internal/view"
)

// Options configure a new App. Zero values fall back to the built-in defaults.
type Options struct {
	Seed        int64
	Presets     defs.PresetLibrary
	Logger      *slog.Logger
	LogLevel    *slog.LevelVar
	Metrics     *metrics.Metrics
	Fov         float32
	Sensitivity float32
	FuseTimeout float64
	HUD         bool
}

// Snapshot is a copy of the app state published after every frame for
// readers on other goroutines.
type Snapshot struct {
	State          string         `json:"state"`
	Color          string         `json:"color"`
	SpherePosition scene.Vec3     `json:"spherePosition"`
	Seed           int64          `json:"seed"`
	Renders        int            `json:"renders"`
	Frames         uint64         `json:"frames"`
	Entities       int            `json:"entities"`
	Yaw            float32        `json:"yaw"`
	Pitch          float32        `json:"pitch"`
	Hovered        types.EntityID `json:"hovered"`
}

// App owns the view and the world built from it. Frame and everything it
// calls run on the backend's loop goroutine.
type App struct {
	view       *view.Main
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	sm         *state.StateMachine
	ecs        *entity.ECS
	loader     *entity.Loader
	look       *system.LookSystem
	cursor     *system.CursorSystem
	logger     *slog.Logger
	logLevel   *slog.LevelVar
	metrics    *metrics.Metrics

	hud     bool
	dirty   bool
	renders int
	frames  uint64

	snapshot atomic.Pointer[Snapshot]
	lastDesc atomic.Pointer[sceneHolder]
}

type sceneHolder struct {
	root scene.Node
}

// New mounts the view and renders it once.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Presets == nil {
		lib, err := defs.BuiltinPresets()
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		opts.Presets = lib
	}
	if opts.Fov <= 0 {
		opts.Fov = config.CameraFov
	}
	if opts.FuseTimeout <= 0 {
		opts.FuseTimeout = config.FuseTimeout
	}

	rng := utils.NewPRNGService(opts.Seed)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	a := &App{
		view:       view.New(rng),
		rng:        rng,
		dispatcher: dispatcher,
		sm:         state.NewStateMachine(),
		ecs:        ecs,
		loader:     entity.NewLoader(opts.Presets, opts.Logger, entity.LoaderOptions{Fov: opts.Fov, FuseTimeout: opts.FuseTimeout}),
		look:       system.NewLookSystem(ecs, opts.Sensitivity),
		cursor:     system.NewCursorSystem(ecs, dispatcher),
		logger:     opts.Logger,
		logLevel:   opts.LogLevel,
		metrics:    opts.Metrics,
		hud:        opts.HUD,
	}
	a.view.OnRedraw(func() { a.dirty = true })

	listener := &AppEventListener{app: a}
	dispatcher.Subscribe(event.CursorClick, listener)
	dispatcher.Subscribe(event.ColorChangeRequested, listener)
	dispatcher.Subscribe(event.Paused, listener)
	dispatcher.Subscribe(event.Resumed, listener)

	a.sm.SetState(state.NewSceneState(a.sm, a, dispatcher))

	if err := a.render(); err != nil {
		return nil, err
	}
	a.publish()
	a.logger.Info("scene mounted", "seed", rng.Seed(), "color", a.view.State().Color, "entities", ecs.Count())
	return a, nil
}

// Frame advances the app by one tick: input, state machine, then at most
// one render if the view asked for a redraw.
func (a *App) Frame(deltaTime float64, in input.Frame) error {
	start := time.Now()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	a.sm.Update(deltaTime, in)

	var err error
	if a.dirty {
		err = a.render()
	}
	a.frames++
	a.metrics.Frame(time.Since(start).Seconds())
	a.publish()
	return err
}

// Step implements state.Stepper; it only runs while the scene is not paused.
func (a *App) Step(deltaTime float64, in input.Frame) {
	a.look.Update(in)
	a.cursor.Update(deltaTime, in)
}

func (a *App) render() error {
	a.dirty = false
	desc := a.view.Render()
	a.renders++
	a.metrics.Rendered()
	a.lastDesc.Store(&sceneHolder{root: desc})

	changed, err := a.loader.Load(a.ecs, desc)
	if err != nil {
		return fmt.Errorf("app: load scene: %w", err)
	}
	if changed {
		a.metrics.WorldReloaded()
	}
	return nil
}

// changeColor is the single path every trigger goes through.
func (a *App) changeColor(reason string) {
	from := a.view.State().Color
	a.view.ChangeColor()
	to := a.view.State().Color
	a.metrics.ColorChanged(to)
	a.logger.Info("color changed", "from", from, "to", to, "trigger", reason)
	a.dispatcher.Dispatch(event.Event{Type: event.ColorChanged, Data: event.ColorData{From: from, To: to}})
}

func (a *App) publish() {
	st := a.view.State()
	snap := &Snapshot{
		State:          a.StateName(),
		Color:          st.Color,
		SpherePosition: st.SpherePosition,
		Seed:           a.rng.Seed(),
		Renders:        a.Renders(),
		Frames:         a.frames,
		Entities:       a.ecs.Count(),
	}
	if cam, _, ok := a.ecs.Camera(); ok {
		snap.Yaw, snap.Pitch = cam.Yaw, cam.Pitch
	}
	if _, cur, ok := a.ecs.Cursor(); ok {
		snap.Hovered = cur.Hovered
	}
	a.snapshot.Store(snap)
}

// ApplyConfig takes the hot-reloadable part of a new configuration.
func (a *App) ApplyConfig(cfg config.Config) {
	a.look.SetSensitivity(cfg.Camera.Sensitivity)
	a.loader.SetOptions(entity.LoaderOptions{Fov: cfg.Camera.Fov, FuseTimeout: cfg.Cursor.FuseTimeout})
	if cam, _, ok := a.ecs.Camera(); ok && cfg.Camera.Fov > 0 {
		cam.Fov = cfg.Camera.Fov
	}
	if _, cur, ok := a.ecs.Cursor(); ok && cfg.Cursor.FuseTimeout > 0 {
		cur.FuseTimeout = cfg.Cursor.FuseTimeout
	}
	a.hud = cfg.HUD
	if a.logLevel != nil {
		if lvl, err := config.ParseLevel(cfg.Log.Level); err == nil {
			a.logLevel.Set(lvl)
		}
	}
	a.logger.Info("config applied", "fov", cfg.Camera.Fov, "sensitivity", cfg.Camera.Sensitivity, "hud", cfg.HUD, "level", cfg.Log.Level)
	a.dispatcher.Dispatch(event.Event{Type: event.ConfigReloaded, Data: cfg})
}

func (a *App) World() *entity.ECS            { return a.ecs }
func (a *App) Dispatcher() *event.Dispatcher { return a.dispatcher }
func (a *App) ViewState() view.ViewState     { return a.view.State() }
func (a *App) Paused() bool                  { return a.StateName() == state.PauseStateName }
func (a *App) HUD() bool                     { return a.hud }
func (a *App) Renders() int                  { return a.renders }
func (a *App) StateName() string             { return a.sm.Name() }
func (a *App) Logger() *slog.Logger          { return a.logger }
func (a *App) Metrics() *metrics.Metrics     { return a.metrics }

// Snapshot returns the state published after the last frame. Safe for
// concurrent use.
func (a *App) Snapshot() Snapshot {
	return *a.snapshot.Load()
}

// Scene implements metrics.Inspector.
func (a *App) Scene() scene.Node {
	h := a.lastDesc.Load()
	if h == nil {
		return nil
	}
	return h.root
}

// Status implements metrics.Inspector.
func (a *App) Status() any {
	return a.Snapshot()
}

// AppEventListener обрабатывает события, важные для основного цикла.
type AppEventListener struct {
	app *App
}

// OnEvent реализует интерфейс event.Listener.
func (l *AppEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CursorClick:
		data, ok := e.Data.(event.CursorData)
		if !ok {
			return
		}
		// только клики по фигурам меняют цвет
		if _, isMesh := l.app.ecs.Meshes[data.Target]; !isMesh {
			return
		}
		l.app.metrics.CursorClicked(data.Fused)
		trigger := "cursor"
		if data.Fused {
			trigger = "fuse"
		}
		l.app.changeColor(trigger)
	case event.ColorChangeRequested:
		l.app.changeColor("request")
	case event.Paused:
		l.app.logger.Info("paused")
	case event.Resumed:
		l.app.logger.Info("resumed")
	}
}
