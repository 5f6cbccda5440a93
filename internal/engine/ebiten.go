// internal/engine/ebiten.go
package engine

import (
	"context"

	"go-vr-scene/internal/app"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/renderer"
	"go-vr-scene/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ebitenBackend struct {
	opts Options
}

func (b *ebitenBackend) Run(ctx context.Context, a *app.App) error {
	ebiten.SetWindowSize(b.opts.Width, b.opts.Height)
	ebiten.SetWindowTitle(b.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(b.opts.TargetFPS)

	g := &ebitenGame{
		ctx:       ctx,
		app:       a,
		opts:      b.opts,
		rs:        renderer.NewRenderSystemEB(a.World()),
		indicator: ui.NewColorIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius),
		overlay:   ui.NewPauseOverlay(b.opts.Width, b.opts.Height),
		width:     b.opts.Width,
		height:    b.opts.Height,
	}
	a.Dispatcher().Subscribe(event.ColorChanged, g.indicator)
	defer a.Dispatcher().Unsubscribe(event.ColorChanged, g.indicator)

	err := ebiten.RunGame(g)
	if err != nil {
		return err
	}
	return g.err
}

// ebitenGame реализует ebiten.Game.
type ebitenGame struct {
	ctx       context.Context
	app       *app.App
	opts      Options
	rs        *renderer.RenderSystemEB
	indicator *ui.ColorIndicator
	overlay   *ui.PauseOverlay
	clicks    input.ClickTracker
	lastX     int
	lastY     int
	width     int
	height    int
	err       error
}

func (g *ebitenGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	drainReloads(g.opts.Reloads, g.app)

	mx, my := ebiten.CursorPosition()
	in := input.Frame{
		MouseDX:      float32(mx - g.lastX),
		MouseDY:      float32(my - g.lastY),
		ChangeColor:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ScreenWidth:  g.width,
		ScreenHeight: g.height,
	}
	g.lastX, g.lastY = mx, my

	g.overlay.Layout(g.width, g.height)
	fx, fy := float32(mx), float32(my)
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if g.clicks.Update(down, fx, fy) {
		var swatch input.HitArea
		if g.app.HUD() {
			swatch = g.indicator
		}
		in.RouteClick(fx, fy, g.app.Paused(), swatch, g.overlay.Resume)
	}
	in.Look = g.clicks.Pressed()

	if err := g.app.Frame(1/float64(ebiten.TPS()), in); err != nil {
		g.err = err
		return ebiten.Termination
	}
	g.rs.Update()
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.rs.Draw(screen)
	mx, my := ebiten.CursorPosition()
	if g.app.HUD() {
		g.indicator.DrawEB(screen, g.app.ViewState().Color)
	}
	if g.app.Paused() {
		g.overlay.DrawEB(screen, float32(mx), float32(my))
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
