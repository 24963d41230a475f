// internal/state/game_state.go
package state

import (
	"math"

	"go-body-defense/internal/app"
	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/geom"
	"go-body-defense/pkg/hud"
	"go-body-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	fonts     *Fonts
	renderer  *render.WorldRenderer
	infoPanel *render.InfoPanel
	menu      []hud.MenuButton
	snapshot  *app.Snapshot
}

func NewGameState(sm *StateMachine, game *app.Game, fonts *Fonts) *GameState {
	snap := game.Snapshot()
	return &GameState{
		sm:        sm,
		game:      game,
		fonts:     fonts,
		renderer:  render.NewWorldRenderer(mapColors(), fonts.Regular, fonts.Small),
		infoPanel: render.NewInfoPanel(fonts.Regular, fonts.Title, config.ScreenHeight),
		menu:      hud.TowerMenuLayout(snap.Width, snap.Height, config.TowerMenuHeight),
		snapshot:  snap,
	}
}

// Game отдаёт игру для оверлеев (пауза, конец игры).
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.CycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.infoPanel.Hide()
	}
	for i, key := range towerKeys {
		if i < len(defs.TowerTypes) && inpututil.IsKeyJustPressed(key) {
			g.game.SelectTowerType(defs.TowerTypes[i])
		}
	}

	g.infoPanel.Update()
	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleLeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.inspect(float64(x), float64(y))
	}

	g.snapshot = g.game.Snapshot()
	if g.snapshot.Phase == component.GameOverPhase {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleLeftClick(x, y int) {
	if g.infoPanel.UpgradeClicked(x, y) {
		g.game.UpgradeTower(g.infoPanel.TargetEntity)
		return
	}
	if g.infoPanel.Contains(x, y) {
		return
	}
	fx, fy := float64(x), float64(y)
	if fy >= g.snapshot.Height {
		if t, ok := hud.HitMenu(g.menu, geom.Pt(fx, fy)); ok {
			g.game.SelectTowerType(t)
		}
		return
	}

	// Тап по башне улучшает её, панель показывает результат
	if id := g.game.TowerAt(fx, fy); id != 0 {
		g.game.HandleGameAreaTap(fx, fy)
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()
	g.game.HandleGameAreaTap(fx, fy)
}

// inspect показывает панель для башни или врага под курсором.
func (g *GameState) inspect(x, y float64) {
	if id := g.game.TowerAt(x, y); id != 0 {
		g.infoPanel.SetTarget(id)
		return
	}
	if id, ok := g.enemyAt(x, y); ok {
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()
}

func (g *GameState) enemyAt(x, y float64) (types.EntityID, bool) {
	best := types.EntityID(0)
	bestDist := math.MaxFloat64
	for _, e := range g.snapshot.Enemies {
		if e.Status != component.EnemyAlive {
			continue
		}
		d := math.Hypot(e.X-x, e.Y-y)
		if d <= float64(e.Radius)+4 && d < bestDist {
			best, bestDist = e.ID, d
		}
	}
	return best, best != 0
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.snapshot
	selected := types.EntityID(0)
	if g.infoPanel.IsVisible {
		selected = g.infoPanel.TargetEntity
	}
	g.renderer.Draw(screen, s, selected)
	g.renderer.DrawTowerMenu(screen, s, g.menu)
	g.infoPanel.Draw(screen, s)
}

func (g *GameState) Exit() {}
