// internal/ui/hud_eb.go
package ui

import (
	"image/color"

	"go-vr-scene/internal/config"
	"go-vr-scene/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const borderWidth = 1

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DrawEB отрисовывает индикатор на ebiten.
func (i *ColorIndicator) DrawEB(screen *ebiten.Image, colorName string) {
	r := i.Radius()
	vector.DrawFilledCircle(screen, i.Area.X, i.Area.Y, r, swatch(colorName), true)
	vector.StrokeCircle(screen, i.Area.X, i.Area.Y, r, borderWidth, config.IndicatorStroke, true)
	ebitenutil.DebugPrintAt(screen, colorName, int(i.Area.X+i.Area.R+12), int(i.Area.Y-8))
}

// DrawEB отрисовывает кнопку на ebiten.
func (b *Button) DrawEB(screen *ebiten.Image, mouseX, mouseY float32) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.Area.X, b.Area.Y, b.Area.W, b.Area.H, nrgba(bg), true)
	vector.StrokeRect(screen, b.Area.X, b.Area.Y, b.Area.W, b.Area.H, 2, nrgba(render.ScaleColor(bg, 0.5)), true)
	// DebugPrint рисует моноширинным шрифтом 6x16
	textX := b.Area.X + (b.Area.W-float32(6*len(b.Text)))/2
	ebitenutil.DebugPrintAt(screen, b.Text, int(textX), int(b.Area.Y+b.Area.H/2-8))
}

// DrawEB рисует оверлей паузы на ebiten.
func (p *PauseOverlay) DrawEB(screen *ebiten.Image, mouseX, mouseY float32) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, nrgba(config.PauseOverlay), false)
	ebitenutil.DebugPrintAt(screen, pausedText, int(w/2)-3*len(pausedText), int(h/2)-20)
	p.Resume.DrawEB(screen, mouseX, mouseY)
}
