// internal/state/victory_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-crafting/internal/config"
	"go-crafting/internal/craft"
	"go-crafting/internal/ui"
)

var _ State = (*VictoryState)(nil)

// VictoryState рисует поверх предыдущего экрана окно победы.
type VictoryState struct {
	sm            *StateMachine
	previousState State
	game          *craft.Game
	fonts         *ui.Fonts

	box      image.Rectangle
	resetBtn *ui.Button
	cursor   image.Point
}

// NewVictoryState shows the win overlay over prev.
func NewVictoryState(sm *StateMachine, prev State, g *craft.Game, fonts *ui.Fonts) *VictoryState {
	const w, h = 480, 220
	x := (config.ScreenWidth - w) / 2
	y := (config.ScreenHeight - h) / 2
	box := image.Rect(x, y, x+w, y+h)

	bx := x + (w-config.ButtonWidth)/2
	btn := image.Rect(bx, box.Max.Y-config.ButtonHeight-30, bx+config.ButtonWidth, box.Max.Y-30)

	return &VictoryState{
		sm:            sm,
		previousState: prev,
		game:          g,
		fonts:         fonts,
		box:           box,
		resetBtn:      ui.NewButton(btn, "Reset Game", config.ResetButtonColor),
	}
}

func (s *VictoryState) Enter() {}

func (s *VictoryState) Exit() {}

func (s *VictoryState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	s.cursor = image.Pt(x, y)

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && s.resetBtn.Contains(s.cursor) {
		s.game.ResetGame()
	}
	if !s.game.IsWon() {
		s.sm.SetState(s.previousState)
	}
}

func (s *VictoryState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	pal := config.Palette
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawPanel(screen, s.box, pal.TextLight, pal.PanelStroke)

	title := image.Rect(s.box.Min.X, s.box.Min.Y+20, s.box.Max.X, s.box.Min.Y+70)
	ui.DrawCentered(screen, s.fonts.Title, s.fonts.Label("Ai câștigat!"), title, config.WinTitleColor)

	sub := image.Rect(s.box.Min.X, title.Max.Y, s.box.Max.X, title.Max.Y+40)
	ui.DrawCentered(screen, s.fonts.Body, s.fonts.Label("Ai descoperit toate obiectele disponibile!"), sub, pal.TextDark)

	s.resetBtn.Draw(screen, s.fonts, s.cursor)
}
