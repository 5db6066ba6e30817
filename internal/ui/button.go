// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-crafting/internal/config"
	"go-crafting/pkg/render"
)

// Button is a rectangular labelled button.
type Button struct {
	Rect     image.Rectangle
	Label    string
	Color    color.RGBA
	Disabled bool
}

// NewButton создает новую кнопку.
func NewButton(r image.Rectangle, label string, clr color.RGBA) *Button {
	return &Button{Rect: r, Label: label, Color: clr}
}

// Contains reports whether pt is on the button.
func (b *Button) Contains(pt image.Point) bool {
	return pt.In(b.Rect)
}

// Draw отрисовывает кнопку; под курсором она темнее.
func (b *Button) Draw(dst *ebiten.Image, f *Fonts, cursor image.Point) {
	bg := b.Color
	switch {
	case b.Disabled:
		bg = config.Palette.PanelStroke
	case b.Contains(cursor):
		bg = render.Shade(bg, 0.8)
	}
	DrawPanel(dst, b.Rect, bg, render.DarkenColor(bg))
	DrawCentered(dst, f.Body, f.Label(b.Label), b.Rect, config.Palette.TextLight)
}
