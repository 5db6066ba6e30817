// Package layout places the panels of the crafting screen. It only deals
// in rectangles so hit-testing can be checked without a window.
package layout

import (
	"image"

	"go-crafting/internal/config"
	"go-crafting/internal/input"
)

// Zone names used for drop targets and buttons.
const (
	ZonePalette   = "palette"
	ZoneInventory = "inventory"
	ZoneSlot      = "slot"
	ZoneGarbage   = "garbage"
	ZoneReturn    = "return"
	ZoneClear     = "clear"
	ZoneReset     = "reset"
)

const craftedTile = 48

// Layout is the fixed arrangement of the screen.
type Layout struct {
	Palette   image.Rectangle
	Crafted   image.Rectangle
	Slot      image.Rectangle
	Preview   image.Rectangle
	Inventory image.Rectangle
	Discovery image.Rectangle
	Garbage   image.Rectangle

	ReturnButton image.Rectangle
	ClearButton  image.Rectangle
	ResetButton  image.Rectangle
}

// Default builds the layout for config.ScreenWidth x config.ScreenHeight.
//
//	palette | crafted history        | discovery
//	        |  slot   preview        |
//	        |  [return]              | [clear] [reset]
//	        | inventory              |       garbage
func Default() Layout {
	const (
		m       = config.Margin
		step    = config.TileSize + config.TileGap
		centerX = m + config.PaletteCols*step + m
		rightX  = config.ScreenWidth - m - 330
	)
	var l Layout

	l.Palette = image.Rect(m, m+config.LineHeight, m+config.PaletteCols*step-config.TileGap, config.ScreenHeight-m)
	l.Crafted = image.Rect(centerX, m, rightX-m, m+110)

	slotX := centerX + (rightX-m-centerX-config.SlotSize)/2
	l.Slot = image.Rect(slotX, config.SlotTop, slotX+config.SlotSize, config.SlotTop+config.SlotSize)
	l.Preview = image.Rect(l.Slot.Max.X+24, l.Slot.Min.Y+70, l.Slot.Max.X+24+80, l.Slot.Min.Y+150)

	bx := l.Slot.Min.X + (config.SlotSize-config.ButtonWidth)/2
	l.ReturnButton = image.Rect(bx, l.Slot.Max.Y+14, bx+config.ButtonWidth, l.Slot.Max.Y+14+config.ButtonHeight)

	l.Inventory = image.Rect(centerX, l.ReturnButton.Max.Y+20, rightX-m, config.ScreenHeight-m)

	l.Discovery = image.Rect(rightX, m, config.ScreenWidth-m, 560)
	l.ClearButton = image.Rect(rightX, 580, rightX+config.ButtonWidth, 580+config.ButtonHeight)
	l.ResetButton = image.Rect(rightX, 624, rightX+config.ButtonWidth, 624+config.ButtonHeight)
	l.Garbage = image.Rect(config.ScreenWidth-m-config.GarbageSize, config.ScreenHeight-m-config.GarbageSize,
		config.ScreenWidth-m, config.ScreenHeight-m)

	return l
}

// PaletteTile is the i-th resource tile of the palette.
func (l Layout) PaletteTile(i int) image.Rectangle {
	return grid(l.Palette.Min, i, config.PaletteCols, config.TileSize, config.TileGap)
}

// InventoryTile is the i-th inventory tile, below the panel title.
func (l Layout) InventoryTile(i int) image.Rectangle {
	origin := l.Inventory.Min.Add(image.Pt(10, config.LineHeight+14))
	return grid(origin, i, config.InventoryCols, config.TileSize, config.TileGap)
}

// SlotTile is the i-th item shown inside the crafting slot.
func (l Layout) SlotTile(i int) image.Rectangle {
	const inner = config.SlotCols*config.TileSize + (config.SlotCols-1)*config.TileGap
	pad := (config.SlotSize - inner) / 2
	return grid(l.Slot.Min.Add(image.Pt(pad, pad)), i, config.SlotCols, config.TileSize, config.TileGap)
}

// CraftedTile is the i-th entry of the crafted history strip.
func (l Layout) CraftedTile(i int) image.Rectangle {
	cols := (l.Crafted.Dx() - 20 + config.TileGap) / (craftedTile + config.TileGap)
	origin := l.Crafted.Min.Add(image.Pt(10, config.LineHeight+14))
	return grid(origin, i, max(cols, 1), craftedTile, config.TileGap)
}

// IndexAt returns which of n tiles produced by tile contains pt.
func IndexAt(pt image.Point, n int, tile func(int) image.Rectangle) (int, bool) {
	for i := 0; i < n; i++ {
		if pt.In(tile(i)) {
			return i, true
		}
	}
	return -1, false
}

// Zones lists the drop targets and buttons, buttons first so they win
// over the panels they sit in.
func (l Layout) Zones() []input.Zone {
	return []input.Zone{
		{Name: ZoneReturn, Rect: l.ReturnButton},
		{Name: ZoneClear, Rect: l.ClearButton},
		{Name: ZoneReset, Rect: l.ResetButton},
		{Name: ZoneGarbage, Rect: l.Garbage},
		{Name: ZoneSlot, Rect: l.Slot},
		{Name: ZoneInventory, Rect: l.Inventory},
		{Name: ZonePalette, Rect: l.Palette},
	}
}

func grid(origin image.Point, i, cols, size, gap int) image.Rectangle {
	step := size + gap
	x := origin.X + (i%cols)*step
	y := origin.Y + (i/cols)*step
	return image.Rect(x, y, x+size, y+size)
}
