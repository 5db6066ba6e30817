// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"go-crafting/pkg/render"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 820
	MaxDeltaTime = 0.06 // секунды; защищает от скачков после паузы окна

	TileSize      = 64
	TileGap       = 8
	TileRadius    = 10.0
	Margin        = 20
	PaletteCols   = 2
	InventoryCols = 8

	SlotSize     = 220
	SlotCols     = 3
	SlotTop      = 150
	GarbageSize  = 100
	ButtonWidth  = 170
	ButtonHeight = 34

	DragThreshold = 4 // пикселей до начала перетаскивания
	LineHeight    = 20
	FontSize      = 14
	TitleFontSize = 20

	DefaultCraftDelay = 500 * time.Millisecond
)

var (
	Palette = render.Palette{
		Background:  color.RGBA{224, 247, 250, 255},
		Panel:       color.RGBA{240, 240, 240, 255},
		PanelStroke: color.RGBA{170, 170, 170, 255},
		SlotFill:    color.RGBA{240, 248, 255, 255},
		SlotStroke:  color.RGBA{136, 136, 136, 255},
		Garbage:     color.RGBA{255, 105, 97, 255},
		TextLight:   color.RGBA{255, 255, 255, 255},
		TextDark:    color.RGBA{30, 30, 30, 255},
		TextMuted:   color.RGBA{102, 102, 102, 255},
		Preview:     color.RGBA{255, 140, 0, 255},
		Highlight:   color.RGBA{255, 215, 0, 204},
		StrokeWidth: 3,
	}
	ReturnButtonColor = color.RGBA{255, 105, 97, 255}
	ResetButtonColor  = color.RGBA{106, 90, 205, 255}
	DiscoveredColor   = color.RGBA{255, 235, 59, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 153}
	WinTitleColor     = color.RGBA{76, 175, 80, 255}
)
