package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClickTracker(t *testing.T) {
	var c ClickTracker
	assert.False(t, c.Update(true, 10, 10))
	assert.True(t, c.Pressed())
	assert.False(t, c.Update(true, 12, 11))
	assert.True(t, c.Update(false, 12, 11), "small jitter is still a click")
	assert.False(t, c.Pressed())

	assert.False(t, c.Update(false, 12, 11), "no release without a press")
}

func TestClickTrackerDrag(t *testing.T) {
	var c ClickTracker
	c.Update(true, 100, 100)
	c.Update(true, 130, 100)
	c.Update(true, 101, 100)
	assert.False(t, c.Update(false, 101, 100), "a drag that returns is still a drag")
	assert.False(t, c.Pressed())

	c.Update(true, 0, 0)
	assert.True(t, c.Update(false, 0, 0), "next press starts fresh")
}

type box struct{ x0, y0, x1, y1 float32 }

func (b box) Contains(x, y float32) bool { return x >= b.x0 && x <= b.x1 && y >= b.y0 && y <= b.y1 }

func TestRouteClick(t *testing.T) {
	swatch := box{0, 0, 10, 10}
	resume := box{50, 50, 60, 60}

	var f Frame
	f.RouteClick(5, 5, false, swatch, resume)
	assert.True(t, f.SwatchClick)
	assert.False(t, f.Click)

	f = Frame{}
	f.RouteClick(55, 55, false, swatch, resume)
	assert.True(t, f.Click, "resume is inactive outside pause")
	assert.False(t, f.ResumeClick)

	f = Frame{}
	f.RouteClick(5, 5, false, nil, resume)
	assert.True(t, f.Click, "hidden HUD passes clicks to the scene")

	f = Frame{}
	f.RouteClick(55, 55, true, swatch, resume)
	assert.True(t, f.ResumeClick)

	f = Frame{}
	f.RouteClick(5, 5, true, swatch, resume)
	assert.Equal(t, Frame{}, f, "paused clicks elsewhere are dropped")
}
