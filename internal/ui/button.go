// internal/ui/button.go
package ui

import (
	"image/color"

	"go-vr-scene/internal/config"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/ui/layout"
	"go-vr-scene/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ input.HitArea = (*Button)(nil)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Area       layout.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	FontSize   int32
}

// NewButton создает новую кнопку.
func NewButton(area layout.Rect, text string) *Button {
	return &Button{
		Area:       area,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		FontSize:   20,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y float32) bool {
	return b.Area.Contains(x, y)
}

// DrawRL отрисовывает кнопку через raylib.
func (b *Button) DrawRL(mouseX, mouseY float32) {
	bgColor := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bgColor = b.HoverColor
	}
	rect := rl.NewRectangle(b.Area.X, b.Area.Y, b.Area.W, b.Area.H)
	rl.DrawRectangleRec(rect, bgColor)
	rl.DrawRectangleLinesEx(rect, 2, render.ScaleColor(bgColor, 0.5))

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	textX := int32(b.Area.X + (b.Area.W-float32(textWidth))/2)
	textY := int32(b.Area.Y + (b.Area.H-float32(b.FontSize))/2)
	rl.DrawText(b.Text, textX, textY, b.FontSize, b.TextColor)
}
