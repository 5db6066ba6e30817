// internal/ui/recipe_book.go
package ui

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-crafting/internal/config"
	"go-crafting/internal/defs"
)

// RecipeBook отображает рецепты, которые можно собрать из инвентаря.
// Уже созданные результаты подсвечиваются.
type RecipeBook struct {
	Rect  image.Rectangle
	fonts *Fonts
}

// NewRecipeBook создает панель открытий.
func NewRecipeBook(r image.Rectangle, fonts *Fonts) *RecipeBook {
	return &RecipeBook{Rect: r, fonts: fonts}
}

// Draw draws discoverable, marking the recipes whose result isCrafted.
func (rb *RecipeBook) Draw(dst *ebiten.Image, discoverable []defs.Recipe, isCrafted func(string) bool) {
	pal := config.Palette
	DrawPanel(dst, rb.Rect, pal.Panel, pal.PanelStroke)
	DrawTitle(dst, rb.fonts, "Descoperire:", rb.Rect)

	face := rb.fonts.Body
	lineY := rb.Rect.Min.Y + config.LineHeight*2 + 4
	if len(discoverable) == 0 {
		text.Draw(dst, rb.fonts.Label("Nicio rețetă disponibilă"), face, rb.Rect.Min.X+10, lineY, pal.TextMuted)
		return
	}

	area := Clip(dst, rb.Rect.Inset(2))
	rowH := config.LineHeight + 10
	for i, r := range discoverable {
		row := image.Rect(rb.Rect.Min.X+8, lineY-config.LineHeight+4+i*rowH, rb.Rect.Max.X-8, lineY+8+i*rowH)
		bg := pal.SlotFill
		if isCrafted(r.Result.Name) {
			bg = config.DiscoveredColor
		}
		DrawPanel(area, row, bg, pal.PanelStroke)

		line := r.Result.Name + " = " + strings.Join(r.Ingredients, " + ")
		text.Draw(area, rb.fonts.Label(line), face, row.Min.X+8, row.Max.Y-9, pal.TextDark)
	}
}
