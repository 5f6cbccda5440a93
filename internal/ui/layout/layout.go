// internal/ui/layout/layout.go
package layout

import "math"

const (
	ResumeWidth  = 180
	ResumeHeight = 48
)

// Circle is a round hit area in screen pixels.
type Circle struct {
	X, Y, R float32
}

func (c Circle) Contains(x, y float32) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Rect is a rectangular hit area in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ResumeButton is the resume button, centred under the "PAUSED" caption.
func ResumeButton(screenW, screenH int) Rect {
	return Rect{
		X: float32(screenW-ResumeWidth) / 2,
		Y: float32(screenH)/2 + 30,
		W: ResumeWidth,
		H: ResumeHeight,
	}
}

// Pulse is the scale of a swatch elapsed seconds after a change: 1.3 right
// after, decaying back to 1.
func Pulse(elapsed float64) float32 {
	if elapsed < 0 {
		elapsed = 0
	}
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}
