// internal/state/crafting_state.go
package state

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-crafting/internal/config"
	"go-crafting/internal/craft"
	"go-crafting/internal/input"
	"go-crafting/internal/ui"
	"go-crafting/internal/ui/layout"
	"go-crafting/pkg/render"
)

var _ State = (*CraftingState)(nil)

// CraftingState is the main screen with the palette, slot and inventory.
type CraftingState struct {
	sm      *StateMachine
	game    *craft.Game
	fonts   *ui.Fonts
	log     *slog.Logger
	layout  layout.Layout
	tracker *input.Tracker
	book    *ui.RecipeBook

	returnBtn *ui.Button
	clearBtn  *ui.Button
	resetBtn  *ui.Button

	cursor    image.Point
	showDebug bool
}

// NewCraftingState builds the main screen over g.
func NewCraftingState(sm *StateMachine, g *craft.Game, fonts *ui.Fonts, logger *slog.Logger) *CraftingState {
	l := layout.Default()
	return &CraftingState{
		sm:        sm,
		game:      g,
		fonts:     fonts,
		log:       logger.With("component", "screen"),
		layout:    l,
		tracker:   input.NewTracker(config.DragThreshold),
		book:      ui.NewRecipeBook(l.Discovery, fonts),
		returnBtn: ui.NewButton(l.ReturnButton, "Return to Inventory", config.ReturnButtonColor),
		clearBtn:  ui.NewButton(l.ClearButton, "Clear Inventory", config.ReturnButtonColor),
		resetBtn:  ui.NewButton(l.ResetButton, "Reset Game", config.ResetButtonColor),
	}
}

func (s *CraftingState) Enter() {
	s.tracker.Cancel()
}

func (s *CraftingState) Exit() {
	s.tracker.Cancel()
}

func (s *CraftingState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	s.cursor = image.Pt(x, y)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.tracker.Press(s.cursor, s.payloadAt(s.cursor))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.tracker.Move(s.cursor)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.handleGesture(s.tracker.Release(s.cursor))
	}

	s.game.Update(deltaTime)

	if s.game.IsWon() {
		s.sm.SetState(NewVictoryState(s.sm, s, s.game, s.fonts))
	}
}

// payloadAt returns what a press at pt picks up.
func (s *CraftingState) payloadAt(pt image.Point) input.Payload {
	resources := s.game.Catalog().Resources()
	if i, ok := layout.IndexAt(pt, len(resources), s.layout.PaletteTile); ok {
		return input.Payload{Source: input.SourcePalette, Ref: resources[i].Name}
	}
	if pt.In(s.layout.Inventory) {
		inv := s.game.Inventory()
		if i, ok := layout.IndexAt(pt, len(inv), s.layout.InventoryTile); ok {
			return input.Payload{Source: input.SourceInventory, Ref: inv[i].ID.String()}
		}
	}
	return input.Payload{}
}

func (s *CraftingState) handleGesture(g input.Gesture) {
	switch g.Kind {
	case input.GestureClick:
		s.handleClick(g)
	case input.GestureDrop:
		s.handleDrop(g)
	}
}

func (s *CraftingState) handleClick(g input.Gesture) {
	if g.Payload.Source == input.SourcePalette {
		s.game.AddResource(g.Payload.Ref)
		return
	}
	zone, ok := input.HitTest(g.At, s.layout.Zones())
	if !ok {
		return
	}
	switch zone.Name {
	case layout.ZoneReturn:
		if s.returnVisible() {
			s.game.ReturnSlotToInventory()
		}
	case layout.ZoneClear:
		s.game.ClearInventory()
	case layout.ZoneReset:
		s.game.ResetGame()
	}
}

func (s *CraftingState) handleDrop(g input.Gesture) {
	zone, ok := input.HitTest(g.At, s.layout.Zones())
	if !ok {
		return
	}

	switch g.Payload.Source {
	case input.SourcePalette:
		switch zone.Name {
		case layout.ZoneInventory:
			s.game.AddResource(g.Payload.Ref)
		case layout.ZoneSlot:
			if s.game.Phase() == craft.PhaseMatched {
				return
			}
			if item, ok := s.game.AddResource(g.Payload.Ref); ok {
				s.game.MoveToCraftingSlot(item.ID)
			}
		}

	case input.SourceInventory:
		id, err := uuid.Parse(g.Payload.Ref)
		if err != nil {
			s.log.Warn("bad drag payload", "ref", g.Payload.Ref, "error", err)
			return
		}
		switch zone.Name {
		case layout.ZoneSlot:
			s.game.MoveToCraftingSlot(id)
		case layout.ZoneGarbage:
			s.game.DiscardItem(id)
		}
	}
}

func (s *CraftingState) returnVisible() bool {
	_, previewing := s.game.Preview()
	return !previewing && len(s.game.Slot()) > 0
}

func (s *CraftingState) Draw(screen *ebiten.Image) {
	pal := config.Palette
	screen.Fill(pal.Background)

	snap := s.game.Snapshot()
	s.drawCrafted(screen, snap)
	s.drawSlot(screen, snap)
	s.drawPalette(screen)
	s.drawInventory(screen, snap)
	s.book.Draw(screen, snap.Discoverable, s.game.IsCrafted)
	s.drawGarbage(screen)

	s.clearBtn.Draw(screen, s.fonts, s.cursor)
	s.resetBtn.Draw(screen, s.fonts, s.cursor)

	if p, at, ok := s.tracker.Dragging(); ok {
		s.drawDragged(screen, p, at)
	}

	if s.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("phase: %s  fps: %.0f  tps: %.0f",
			snap.Phase, ebiten.ActualFPS(), ebiten.ActualTPS()), 4, config.ScreenHeight-16)
	}
}

func (s *CraftingState) drawCrafted(screen *ebiten.Image, snap craft.Snapshot) {
	pal := config.Palette
	r := s.layout.Crafted
	ui.DrawPanel(screen, r, pal.Panel, pal.PanelStroke)
	ui.DrawTitle(screen, s.fonts, "Obiecte create", r)

	area := ui.Clip(screen, r.Inset(2))
	for i, c := range snap.Crafted {
		ui.DrawTile(area, s.fonts, s.layout.CraftedTile(i), c.RGBA(), c.Name)
	}
}

func (s *CraftingState) drawSlot(screen *ebiten.Image, snap craft.Snapshot) {
	pal := config.Palette
	r := s.layout.Slot

	title := image.Rect(r.Min.X, r.Min.Y-34, r.Max.X, r.Min.Y-4)
	ui.DrawCentered(screen, s.fonts.Title, "Crafting", title, pal.TextDark)

	stroke := pal.SlotStroke
	if s.hoveringWith(layout.ZoneSlot) {
		stroke = pal.Highlight
	}
	ui.DrawPanel(screen, r, pal.SlotFill, stroke)
	for i, it := range snap.Slot {
		ui.DrawTile(screen, s.fonts, s.layout.SlotTile(i), it.Kind.RGBA(), it.Kind.Name)
	}

	if preview := snap.Preview; preview != nil {
		ui.DrawTile(screen, s.fonts, s.layout.Preview, preview.RGBA(), preview.Name)
		line := s.layout.ReturnButton
		line.Min.X, line.Max.X = r.Min.X-120, r.Max.X+120
		ui.DrawCentered(screen, s.fonts.Body, s.fonts.Label(preview.Name+" - "+preview.Description), line, pal.Preview)
		return
	}
	if len(snap.Slot) > 0 {
		s.returnBtn.Draw(screen, s.fonts, s.cursor)
	}
}

func (s *CraftingState) drawPalette(screen *ebiten.Image) {
	ui.DrawTitle(screen, s.fonts, "Resources", s.layout.Palette.Sub(image.Pt(10, config.LineHeight+6)))
	for i, res := range s.game.Catalog().Resources() {
		ui.DrawTile(screen, s.fonts, s.layout.PaletteTile(i), res.RGBA(), res.Name)
	}
}

func (s *CraftingState) drawInventory(screen *ebiten.Image, snap craft.Snapshot) {
	pal := config.Palette
	r := s.layout.Inventory
	inv := snap.Inventory

	ui.DrawPanel(screen, r, pal.Panel, pal.PanelStroke)
	ui.DrawTitle(screen, s.fonts, fmt.Sprintf("Inventar (%d)", len(inv)), r)

	dragged, _, dragging := s.tracker.Dragging()
	area := ui.Clip(screen, r.Inset(2))
	for i, it := range inv {
		fill := it.Kind.RGBA()
		if dragging && dragged.Source == input.SourceInventory && dragged.Ref == it.ID.String() {
			fill = render.Shade(fill, 0.6)
		}
		ui.DrawTile(area, s.fonts, s.layout.InventoryTile(i), fill, it.Kind.Name)
	}
}

func (s *CraftingState) drawGarbage(screen *ebiten.Image) {
	pal := config.Palette
	r := s.layout.Garbage
	fill := pal.Panel
	if s.hoveringWith(layout.ZoneGarbage) {
		fill = pal.Highlight
	}
	ui.DrawPanel(screen, r, fill, pal.Garbage)
	ui.DrawCentered(screen, s.fonts.Body, "Garbage", r, pal.Garbage)
}

func (s *CraftingState) drawDragged(screen *ebiten.Image, p input.Payload, at image.Point) {
	name, fill := "", config.Palette.PanelStroke
	switch p.Source {
	case input.SourcePalette:
		if res, ok := s.game.Catalog().Resource(p.Ref); ok {
			name, fill = res.Name, res.RGBA()
		}
	case input.SourceInventory:
		if id, err := uuid.Parse(p.Ref); err == nil {
			if it, ok := s.game.Item(id); ok {
				name, fill = it.Kind.Name, it.Kind.RGBA()
			}
		}
	}
	half := config.TileSize / 2
	ui.DrawTile(screen, s.fonts, image.Rect(at.X-half, at.Y-half, at.X+half, at.Y+half), fill, name)
}

// hoveringWith reports whether a drag that zone accepts is over it.
func (s *CraftingState) hoveringWith(zone string) bool {
	p, at, ok := s.tracker.Dragging()
	if !ok {
		return false
	}
	z, hit := input.HitTest(at, s.layout.Zones())
	if !hit || z.Name != zone {
		return false
	}
	switch zone {
	case layout.ZoneSlot:
		return s.game.Phase() != craft.PhaseMatched
	case layout.ZoneGarbage:
		return p.Source == input.SourceInventory
	}
	return false
}
