// internal/engine/raylib.go
package engine

import (
	"context"
	"time"

	"go-vr-scene/internal/app"
	"go-vr-scene/internal/assets"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/renderer"
	"go-vr-scene/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type raylibBackend struct {
	opts Options
}

func (b *raylibBackend) Run(ctx context.Context, a *app.App) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(b.opts.Width), int32(b.opts.Height), b.opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(b.opts.TargetFPS))
	// Esc ставит на паузу, а не закрывает окно
	rl.SetExitKey(rl.KeyNull)

	models := assets.NewModelManager(b.opts.Logger)
	defer models.Cleanup()
	rs := renderer.NewRenderSystemRL(a.World(), models, b.opts.Logger)

	indicator := ui.NewColorIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius)
	a.Dispatcher().Subscribe(event.ColorChanged, indicator)
	defer a.Dispatcher().Unsubscribe(event.ColorChanged, indicator)
	overlay := ui.NewPauseOverlay(b.opts.Width, b.opts.Height)

	var clicks input.ClickTracker
	lastUpdateTime := time.Now()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		lastUpdateTime = now

		drainReloads(b.opts.Reloads, a)

		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		overlay.Layout(w, h)
		mouse := rl.GetMousePosition()
		delta := rl.GetMouseDelta()

		in := input.Frame{
			MouseDX:      delta.X,
			MouseDY:      delta.Y,
			ChangeColor:  rl.IsKeyPressed(rl.KeyC),
			Pause:        rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape),
			ScreenWidth:  w,
			ScreenHeight: h,
		}
		down := rl.IsMouseButtonDown(rl.MouseButtonLeft)
		if clicks.Update(down, mouse.X, mouse.Y) {
			var swatch input.HitArea
			if a.HUD() {
				swatch = indicator
			}
			in.RouteClick(mouse.X, mouse.Y, a.Paused(), swatch, overlay.Resume)
		}
		in.Look = clicks.Pressed()

		if err := a.Frame(deltaTime, in); err != nil {
			return err
		}
		rs.Update()

		// --- Отрисовка ---
		rl.BeginDrawing()
		rs.Draw()
		if a.HUD() {
			indicator.DrawRL(a.ViewState().Color)
		}
		if a.Paused() {
			overlay.DrawRL(int32(w), int32(h), mouse.X, mouse.Y)
		}
		rl.EndDrawing()
	}
	return nil
}
