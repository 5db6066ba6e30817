// internal/ui/draw.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-crafting/internal/config"
	"go-crafting/pkg/render"
)

// DrawPanel fills r and outlines it.
func DrawPanel(dst *ebiten.Image, r image.Rectangle, fill, stroke color.Color) {
	x, y, w, h := rectF(r)
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, stroke, false)
}

// DrawTile draws a colored square with its name centered on it.
func DrawTile(dst *ebiten.Image, f *Fonts, r image.Rectangle, fill color.RGBA, label string) {
	x, y, w, h := rectF(r)
	vector.DrawFilledRect(dst, x, y, w, h, fill, true)
	vector.StrokeRect(dst, x, y, w, h, 1.5, render.DarkenColor(fill), true)

	pal := config.Palette
	DrawCentered(dst, f.Body, f.Label(label), r, render.TextColorFor(fill, pal.TextLight, pal.TextDark))
}

// DrawCentered draws s centered in r. Text wider than r is clipped by
// the caller's image bounds, not wrapped.
func DrawCentered(dst *ebiten.Image, face font.Face, s string, r image.Rectangle, clr color.Color) {
	b := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-b.Dx())/2 - b.Min.X
	y := r.Min.Y + (r.Dy()-b.Dy())/2 - b.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// DrawTitle draws a panel heading above its content.
func DrawTitle(dst *ebiten.Image, f *Fonts, s string, r image.Rectangle) {
	text.Draw(dst, f.Label(s), f.Body, r.Min.X+10, r.Min.Y+config.LineHeight, config.Palette.TextDark)
}

// Clip returns the part of dst inside r.
func Clip(dst *ebiten.Image, r image.Rectangle) *ebiten.Image {
	return dst.SubImage(r).(*ebiten.Image)
}

func rectF(r image.Rectangle) (x, y, w, h float32) {
	return float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
}
