// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/internal/system"
	"go-body-defense/pkg/gamemap"
	"go-body-defense/pkg/geom"
)

// Game holds the world state and runs the simulation. It is the only mutator
// of the world; hosts read it through Snapshot.
type Game struct {
	Map                *gamemap.Map
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	SpeedMultiplier    int

	width, height float64
	gameTime      float64
	isPaused      bool
	stats         Stats
}

// Stats — счётчики текущей партии.
type Stats struct {
	Kills       int
	Breaches    int
	TowersBuilt int
	Upgrades    int
}

// NewGame initializes a new game instance for a game area of the given size.
func NewGame(width, height float64) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid game area %.0fx%.0f", width, height)
	}
	m, err := gamemap.NewMap(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Map:             m,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		SpeedMultiplier: 1,
		width:           width,
		height:          height,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, g, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.EnemyKilled, event.EnemyBreached, event.TowerPlaced, event.TowerUpgraded)

	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.game.stats.Kills++
	case event.EnemyBreached:
		l.game.stats.Breaches++
	case event.TowerPlaced:
		l.game.stats.TowersBuilt++
	case event.TowerUpgraded:
		l.game.stats.Upgrades++
	}
}

// GetPath реализует system.MovementGameContext.
func (g *Game) GetPath() *gamemap.Path {
	return g.Map.Path
}

// Phase возвращает текущую фазу игры.
func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

// StartGame переводит игру из меню в игру.
func (g *Game) StartGame() bool {
	if !g.StateSystem.SwitchToPlaying() {
		return false
	}
	g.ECS.Wave = system.PlanWave(g.ECS.GameState.CurrentWave)
	log.Println("Game started")
	return true
}

// Restart полностью сбрасывает мир и сразу начинает новую партию.
// Из меню не работает: партию начинает StartGame.
func (g *Game) Restart() bool {
	if g.ECS.GameState.Phase == component.MenuPhase {
		return false
	}
	g.ECS.Reset()
	g.Map.ResetSlots()
	g.gameTime = 0
	g.isPaused = false
	g.stats = Stats{}
	g.ECS.GameState.Phase = component.PlayingPhase
	g.ECS.Wave = system.PlanWave(0)
	log.Println("Game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
	return true
}

// Update progresses the game state. Outside Playing it does nothing.
// The speed multiplier runs several clamped steps instead of one long one.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.isPaused {
		return
	}
	for i := 0; i < g.SpeedMultiplier; i++ {
		if g.ECS.GameState.Phase != component.PlayingPhase {
			return
		}
		g.step(deltaTime)
	}
}

func (g *Game) step(dt float64) {
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	system.RemoveFinishedEnemies(g.ECS)

	if g.WaveSystem.CheckCompletion() {
		g.StateSystem.CompleteWave(g.ECS.Wave.Spawned)
	}
	g.StateSystem.CheckGameOver()
}

// TogglePause ставит симуляцию на паузу или снимает с неё.
func (g *Game) TogglePause() bool {
	g.isPaused = !g.isPaused
	return g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// CycleSpeed переключает множитель скорости x1 → x2 → x4 → x1.
func (g *Game) CycleSpeed() int {
	g.SpeedMultiplier *= 2
	if g.SpeedMultiplier > config.MaxSpeedFactor {
		g.SpeedMultiplier = 1
	}
	return g.SpeedMultiplier
}

// SetScreenDimensions перестраивает путь под новый размер игровой области.
// Повторный вызов с теми же размерами ничего не меняет.
func (g *Game) SetScreenDimensions(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == g.width && height == g.height {
		return true
	}
	m, err := gamemap.NewMap(width, height)
	if err != nil {
		log.Printf("SetScreenDimensions: %v", err)
		return false
	}
	// Построенные башни остаются на месте и занимают свои места в наборе
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		pos := g.ECS.Positions[id].Point()
		slot := -1
		for i, s := range m.Slots {
			if !s.Occupied && geom.Distance(pos, s.Pos) <= 1 {
				slot = i
				break
			}
		}
		if slot >= 0 {
			m.Occupy(slot)
		} else {
			m.AddPlacement(pos)
		}
	}
	// Размеченные слоты рядом с башнями закрыты: FreeSlotNear и
	// TryPlaceInSlot проверяют их через SlotAvailable
	// Враги переезжают на новый путь с тем же прогрессом
	for id, enemy := range g.ECS.Enemies {
		if pos, ok := g.ECS.Positions[id]; ok {
			pos.Set(m.Path.PositionAt(enemy.Progress))
		}
	}
	g.Map = m
	g.width, g.height = width, height
	return true
}

// Stats возвращает счётчики текущей партии.
func (g *Game) Stats() Stats {
	return g.stats
}
