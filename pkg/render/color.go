// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrBadColor is returned for strings that are neither a hex color nor a CSS color name.
var ErrBadColor = errors.New("render: bad color")

// ParseColor understands "#RGB", "#RRGGBB" and the CSS named colors
// ("white", "red", ...), which is what scene attributes carry.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrBadColor)
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

func parseHex(h string) (color.RGBA, error) {
	switch len(h) {
	case 3:
		// #FFF -> #FFFFFF
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("%w: #%s", ErrBadColor, h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: #%s", ErrBadColor, h)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ScaleColor multiplies RGB by f (clamped to [0, 255]), alpha is kept.
func ScaleColor(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: clampByte(float32(c.R) * f),
		G: clampByte(float32(c.G) * f),
		B: clampByte(float32(c.B) * f),
		A: c.A,
	}
}

// LerpColor blends from a to b, t in [0, 1].
func LerpColor(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: clampByte(float32(a.R)*(1-t) + float32(b.R)*t),
		G: clampByte(float32(a.G)*(1-t) + float32(b.G)*t),
		B: clampByte(float32(a.B)*(1-t) + float32(b.B)*t),
		A: clampByte(float32(a.A)*(1-t) + float32(b.A)*t),
	}
}

// WithAlpha replaces alpha with opacity in [0, 1].
func WithAlpha(c color.RGBA, opacity float32) color.RGBA {
	c.A = clampByte(opacity * 255)
	return c
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
