// internal/input/input.go
package input

// Frame is the input gathered by a backend for one tick. Backends translate
// their own key and mouse APIs into this struct so the rest of the app does
// not depend on raylib or ebiten.
type Frame struct {
	// смещение мыши за кадр, пиксели
	MouseDX, MouseDY float32
	// Look is true while the look drag is active (left button held).
	Look bool
	// Click is a primary click that was not consumed by the HUD.
	Click bool

	ChangeColor bool // клавиша C
	Pause       bool // Esc или P
	SwatchClick bool // клик по индикатору цвета
	ResumeClick bool // клик по кнопке "Resume"

	ScreenWidth, ScreenHeight int
}

// DragThreshold is how far, in pixels, the pointer may move between press
// and release for the release to still count as a click.
const DragThreshold = 5

// ClickTracker turns the primary button state into clicks. A press that
// moves further than DragThreshold is a look drag, not a click.
type ClickTracker struct {
	down           bool
	dragged        bool
	startX, startY float32
}

// Update takes the button state and pointer position for one frame and
// reports whether a click completed this frame.
func (c *ClickTracker) Update(down bool, x, y float32) (click bool) {
	switch {
	case down && !c.down:
		c.down, c.dragged = true, false
		c.startX, c.startY = x, y
	case down && c.down:
		dx, dy := x-c.startX, y-c.startY
		if dx*dx+dy*dy > DragThreshold*DragThreshold {
			c.dragged = true
		}
	case !down && c.down:
		c.down = false
		return !c.dragged
	}
	return false
}

// Pressed reports whether the button is held.
func (c *ClickTracker) Pressed() bool {
	return c.down
}

// HitArea is anything that can claim a click at a screen point.
type HitArea interface {
	Contains(x, y float32) bool
}

// RouteClick assigns a completed click at (x, y) to the HUD or the scene.
// While paused only the resume button takes clicks; swatch may be nil when
// the HUD is hidden.
func (f *Frame) RouteClick(x, y float32, paused bool, swatch, resume HitArea) {
	switch {
	case paused:
		f.ResumeClick = resume != nil && resume.Contains(x, y)
	case swatch != nil && swatch.Contains(x, y):
		f.SwatchClick = true
	default:
		f.Click = true
	}
}
