// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"go-body-defense/internal/config"
	"go-body-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог партии; R или клик начинает заново.
type GameOverState struct {
	sm        *StateMachine
	gameState *GameState
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	return &GameOverState{sm: sm, gameState: gs}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		game := s.gameState.Game()
		game.Restart()
		s.sm.SetState(NewGameState(s.sm, game, s.gameState.fonts))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{60, 0, 0, 160}, false)

	snap := s.gameState.snapshot
	fonts := s.gameState.fonts
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	render.DrawCentered(screen, "Организм пал", fonts.Huge, cx, cy-80, color.White)
	render.DrawCentered(screen, fmt.Sprintf("Очки: %d   Волна: %d", snap.Score, snap.Wave+1), fonts.Title, cx, cy, color.White)
	render.DrawCentered(screen, fmt.Sprintf("Убито: %d   Прорвалось: %d   Построено: %d", snap.Stats.Kills, snap.Stats.Breaches, snap.Stats.TowersBuilt), fonts.Regular, cx, cy+36, config.TextLightColor)
	render.DrawCentered(screen, "R или клик - заново", fonts.Title, cx, cy+90, config.SelectedColor)
}

func (s *GameOverState) Exit() {}
