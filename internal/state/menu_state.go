// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-body-defense/internal/app"
	"go-body-defense/internal/config"
	"go-body-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	game  *app.Game
	fonts *Fonts
}

func NewMenuState(sm *StateMachine, game *app.Game, fonts *Fonts) *MenuState {
	return &MenuState{sm: sm, game: game, fonts: fonts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m.game.StartGame() {
			m.sm.SetState(NewGameState(m.sm, m.game, m.fonts))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	render.DrawCentered(screen, "Защита организма", m.fonts.Huge, cx, config.ScreenHeight/2-60, config.TextLightColor)
	render.DrawCentered(screen, "Пробел или клик - начать", m.fonts.Title, cx, config.ScreenHeight/2+20, color.RGBA{200, 200, 200, 255})
}

func (m *MenuState) Exit() {}
