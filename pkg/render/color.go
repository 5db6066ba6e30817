// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colors used to draw the crafting screen.
type Palette struct {
	Background  color.RGBA
	Panel       color.RGBA
	PanelStroke color.RGBA
	SlotFill    color.RGBA
	SlotStroke  color.RGBA
	Garbage     color.RGBA
	TextLight   color.RGBA
	TextDark    color.RGBA
	TextMuted   color.RGBA
	Preview     color.RGBA
	Highlight   color.RGBA
	StrokeWidth float32
}

// ParseHex разбирает цвет вида "#RRGGBB" (или "#RRGGBBAA").
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#RRGGBB", dropping alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// MustParseHex is ParseHex for colors already validated at catalog load.
// Invalid input yields opaque gray instead of panicking mid-frame.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return c
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Shade scales the RGB channels of c by k, clamped to [0, 1].
func Shade(c color.RGBA, k float64) color.RGBA {
	k = max(0, min(k, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// IsLight сообщает, светлый ли цвет (по относительной яркости).
func IsLight(c color.RGBA) bool {
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return lum > 160
}

// TextColorFor picks the label color readable on top of bg.
func TextColorFor(bg color.RGBA, light, dark color.RGBA) color.RGBA {
	if IsLight(bg) {
		return dark
	}
	return light
}
