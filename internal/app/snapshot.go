// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-body-defense/internal/component"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/geom"
)

// Snapshot — копия мира для отрисовки. Ничего в ней не ссылается на живое состояние игры.
type Snapshot struct {
	Width, Height     float64
	Phase             component.Phase
	Health            int
	Money             int
	Score             int
	Wave              int
	SelectedTowerType defs.TowerType
	GameOver          bool
	SpeedMultiplier   int
	Paused            bool
	GameTime          float64
	Stats             Stats

	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	Path        []geom.Point // Плотные отсчёты кривой
	Waypoints   []geom.Point
	Slots       []SlotView
	Spawner     SpawnerView
}

type EnemyView struct {
	ID        types.EntityID
	Type      defs.EnemyType
	X, Y      float64
	Health    float64
	MaxHealth float64
	Progress  float64
	Status    component.EnemyStatus
	Color     color.RGBA
	Radius    float32
	Flash     float64 // Доля оставшейся вспышки урона, 0 — нет вспышки
}

type TowerView struct {
	ID          types.EntityID
	Type        defs.TowerType
	X, Y        float64
	Level       int
	MaxLevel    int
	Range       float64
	Damage      float64
	TargetID    types.EntityID
	Color       color.RGBA
	Radius      float32
	UpgradeCost int // 0, если улучшать некуда
}

type ProjectileView struct {
	ID     types.EntityID
	X, Y   float64
	Color  color.RGBA
	Radius float32
	Homing bool
}

type SlotView struct {
	X, Y     float64
	Occupied bool
	Seeded   bool
}

type SpawnerView struct {
	Wave       int
	Phase      component.WavePhase
	Remaining  int
	Spawned    int
	BreakTimer float64
}

// Snapshot строит копию текущего мира. Порядок сущностей — по возрастанию ID.
func (g *Game) Snapshot() *Snapshot {
	gs := g.ECS.GameState
	s := &Snapshot{
		Width:             g.width,
		Height:            g.height,
		Phase:             gs.Phase,
		Health:            gs.Health,
		Money:             gs.Money,
		Score:             gs.Score,
		Wave:              gs.CurrentWave,
		SelectedTowerType: gs.SelectedTowerType,
		GameOver:          gs.GameOver,
		SpeedMultiplier:   g.SpeedMultiplier,
		Paused:            g.isPaused,
		GameTime:          g.gameTime,
		Stats:             g.stats,
		Path:              g.Map.Path.Samples(),
		Waypoints:         g.Map.Path.Waypoints(),
	}

	for _, slot := range g.Map.Slots {
		s.Slots = append(s.Slots, SlotView{X: slot.Pos.X, Y: slot.Pos.Y, Occupied: slot.Occupied, Seeded: slot.Seeded})
	}

	if wave := g.ECS.Wave; wave != nil {
		s.Spawner = SpawnerView{
			Wave:       wave.Number,
			Phase:      wave.Phase,
			Remaining:  wave.EnemiesToSpawn,
			Spawned:    wave.Spawned,
			BreakTimer: wave.BreakTimer,
		}
	}

	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		enemy := g.ECS.Enemies[id]
		view := EnemyView{ID: id, Type: enemy.Type, Progress: enemy.Progress, Status: enemy.Status}
		if pos, ok := g.ECS.Positions[id]; ok {
			view.X, view.Y = pos.X, pos.Y
		}
		if h, ok := g.ECS.Healths[id]; ok {
			view.Health, view.MaxHealth = h.Value, h.Max
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color, view.Radius = r.Color, r.Radius
		}
		if f, ok := g.ECS.DamageFlashes[id]; ok && f.Duration > 0 {
			view.Flash = f.Timer / f.Duration
		}
		s.Enemies = append(s.Enemies, view)
	}

	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		tower := g.ECS.Towers[id]
		view := TowerView{ID: id, Type: tower.Type, Level: tower.Level, TargetID: tower.TargetID}
		if pos, ok := g.ECS.Positions[id]; ok {
			view.X, view.Y = pos.X, pos.Y
		}
		if c, ok := g.ECS.Combats[id]; ok {
			view.Range, view.Damage = c.Range, c.Damage
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color, view.Radius = r.Color, r.Radius
		}
		if def, ok := defs.TowerLibrary[tower.Type]; ok {
			view.MaxLevel = def.MaxLevel
			if tower.Level < def.MaxLevel {
				view.UpgradeCost = def.UpgradeCostAt(tower.Level)
			}
		}
		s.Towers = append(s.Towers, view)
	}

	for _, id := range entity.SortedIDs(g.ECS.Projectiles) {
		proj := g.ECS.Projectiles[id]
		view := ProjectileView{ID: id, Color: proj.Color, Homing: proj.Homing}
		if pos, ok := g.ECS.Positions[id]; ok {
			view.X, view.Y = pos.X, pos.Y
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Radius = r.Radius
		}
		s.Projectiles = append(s.Projectiles, view)
	}

	return s
}

// TowerByID ищет башню в снимке.
func (s *Snapshot) TowerByID(id types.EntityID) (TowerView, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return TowerView{}, false
}
