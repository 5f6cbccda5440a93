// internal/ui/pause_overlay.go
package ui

import (
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const pausedText = "PAUSED"

// PauseOverlay затемняет сцену на паузе и держит кнопку "Resume".
type PauseOverlay struct {
	Resume *Button
}

func NewPauseOverlay(screenW, screenH int) *PauseOverlay {
	return &PauseOverlay{Resume: NewButton(layout.ResumeButton(screenW, screenH), "Resume")}
}

// Layout re-centres the button after a resize.
func (p *PauseOverlay) Layout(screenW, screenH int) {
	p.Resume.Area = layout.ResumeButton(screenW, screenH)
}

// DrawRL рисует оверлей паузы через raylib.
func (p *PauseOverlay) DrawRL(screenW, screenH int32, mouseX, mouseY float32) {
	rl.DrawRectangle(0, 0, screenW, screenH, config.PauseOverlay)

	fontSize := int32(40)
	textWidth := rl.MeasureText(pausedText, fontSize)
	rl.DrawText(pausedText, (screenW-textWidth)/2, screenH/2-30, fontSize, rl.White)

	p.Resume.DrawRL(mouseX, mouseY)
}
