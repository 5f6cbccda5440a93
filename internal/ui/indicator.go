// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"go-vr-scene/internal/config"
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/ui/layout"
	"go-vr-scene/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ input.HitArea = (*ColorIndicator)(nil)

// ColorIndicator — кружок с текущим цветом сцены. It pulses after every
// ColorChanged event and is shared by both backends.
type ColorIndicator struct {
	Area       layout.Circle
	LastChange time.Time
}

func NewColorIndicator(x, y, radius float32) *ColorIndicator {
	return &ColorIndicator{Area: layout.Circle{X: x, Y: y, R: radius}}
}

// OnEvent реализует интерфейс event.Listener.
func (i *ColorIndicator) OnEvent(e event.Event) {
	if e.Type == event.ColorChanged {
		i.LastChange = time.Now()
	}
}

// Contains hit-tests the resting circle; the pulse does not widen the target.
func (i *ColorIndicator) Contains(x, y float32) bool {
	return i.Area.Contains(x, y)
}

// Radius is the current drawn radius including the pulse.
func (i *ColorIndicator) Radius() float32 {
	return i.Area.R * layout.Pulse(time.Since(i.LastChange).Seconds())
}

// swatch resolves a view color name; unknown names draw as gray.
func swatch(name string) color.RGBA {
	c, err := render.ParseColor(name)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return c
}

// DrawRL отрисовывает индикатор через raylib.
func (i *ColorIndicator) DrawRL(colorName string) {
	center := rl.NewVector2(i.Area.X, i.Area.Y)
	r := i.Radius()
	rl.DrawCircleV(center, r, swatch(colorName))
	rl.DrawCircleLines(int32(i.Area.X), int32(i.Area.Y), r, config.IndicatorStroke)
	rl.DrawText(colorName, int32(i.Area.X+i.Area.R+12), int32(i.Area.Y-8), 16, config.TextLightColor)
}
