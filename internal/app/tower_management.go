// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/geom"
)

var (
	ErrNotPlaying        = errors.New("game is not in progress")
	ErrUnknownTowerType  = errors.New("unknown tower type")
	ErrInvalidPlacement  = errors.New("invalid tower placement")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMaxLevel          = errors.New("tower is at max level")
	ErrNoTower           = errors.New("no such tower")
)

// SelectTowerType выбирает вариант для следующей постройки.
func (g *Game) SelectTowerType(towerType defs.TowerType) bool {
	return g.accept("SelectTowerType", g.TrySelectTowerType(towerType))
}

func (g *Game) TrySelectTowerType(towerType defs.TowerType) error {
	if _, ok := defs.TowerLibrary[towerType]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTowerType, towerType)
	}
	g.ECS.GameState.SelectedTowerType = towerType
	return nil
}

// PlaceTower attempts to place the selected tower at the given point.
func (g *Game) PlaceTower(x, y float64) bool {
	_, err := g.TryPlaceTower(x, y)
	return g.accept("PlaceTower", err)
}

func (g *Game) TryPlaceTower(x, y float64) (types.EntityID, error) {
	def, err := g.selectedDefinition()
	if err != nil {
		return 0, err
	}
	p := geom.Pt(x, y)
	if !g.Map.IsValidPlacement(p) {
		return 0, fmt.Errorf("%w at (%.0f,%.0f)", ErrInvalidPlacement, x, y)
	}
	if g.ECS.GameState.Money < def.Cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, def.ID, def.Cost, g.ECS.GameState.Money)
	}
	g.Map.AddPlacement(p)
	return g.createTowerEntity(def, p), nil
}

// TryPlaceInSlot строит выбранную башню в свободном размеченном слоте.
func (g *Game) TryPlaceInSlot(slot int) (types.EntityID, error) {
	def, err := g.selectedDefinition()
	if err != nil {
		return 0, err
	}
	if !g.Map.SlotAvailable(slot) {
		return 0, fmt.Errorf("%w: slot %d", ErrInvalidPlacement, slot)
	}
	if g.ECS.GameState.Money < def.Cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, def.ID, def.Cost, g.ECS.GameState.Money)
	}
	g.Map.Occupy(slot)
	return g.createTowerEntity(def, g.Map.Slots[slot].Pos), nil
}

// UpgradeTower улучшает башню на один уровень.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	return g.accept("UpgradeTower", g.TryUpgradeTower(id))
}

func (g *Game) TryUpgradeTower(id types.EntityID) error {
	if g.ECS.GameState.Phase != component.PlayingPhase {
		return ErrNotPlaying
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoTower, id)
	}
	def, ok := defs.TowerLibrary[tower.Type]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTowerType, tower.Type)
	}
	if tower.Level >= def.MaxLevel {
		return fmt.Errorf("%w: tower %d level %d", ErrMaxLevel, id, tower.Level)
	}
	cost := def.UpgradeCostAt(tower.Level)
	if g.ECS.GameState.Money < cost {
		return fmt.Errorf("%w: upgrade costs %d, have %d", ErrInsufficientFunds, cost, g.ECS.GameState.Money)
	}

	g.ECS.GameState.Money -= cost
	tower.Level++
	tower.Spent += cost
	stats := def.StatsAt(tower.Level)
	if combat, ok := g.ECS.Combats[id]; ok {
		// Перезарядка сохраняется, меняются только параметры
		combat.Damage = stats.Damage
		combat.Range = stats.Range
		combat.FireRate = stats.AttackSpeed
	}

	pos := g.ECS.Positions[id]
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{TowerID: id, Type: tower.Type, Level: tower.Level, Cost: cost, X: pos.X, Y: pos.Y},
	})
	return nil
}

// HandleGameAreaTap — тап по игровой области: улучшение башни под пальцем,
// иначе постройка в ближайшем свободном слоте, иначе свободная постройка.
func (g *Game) HandleGameAreaTap(x, y float64) bool {
	return g.accept("HandleGameAreaTap", g.TryGameAreaTap(x, y))
}

func (g *Game) TryGameAreaTap(x, y float64) error {
	if g.ECS.GameState.Phase != component.PlayingPhase {
		return ErrNotPlaying
	}
	if id := g.TowerAt(x, y); id != 0 {
		return g.TryUpgradeTower(id)
	}
	if slot := g.Map.FreeSlotNear(geom.Pt(x, y), config.SlotSnapRadius); slot >= 0 {
		_, err := g.TryPlaceInSlot(slot)
		return err
	}
	_, err := g.TryPlaceTower(x, y)
	return err
}

// TowerAt возвращает ближайшую башню в радиусе тапа или 0.
func (g *Game) TowerAt(x, y float64) types.EntityID {
	p := geom.Pt(x, y)
	var best types.EntityID
	bestDist := config.TowerTapRadius
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if d := geom.Distance(p, pos.Point()); d <= bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

func (g *Game) selectedDefinition() (defs.TowerDefinition, error) {
	if g.ECS.GameState.Phase != component.PlayingPhase {
		return defs.TowerDefinition{}, ErrNotPlaying
	}
	towerType := g.ECS.GameState.SelectedTowerType
	def, ok := defs.TowerLibrary[towerType]
	if !ok {
		return defs.TowerDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTowerType, towerType)
	}
	return def, nil
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, p geom.Point) types.EntityID {
	stats := def.StatsAt(1)
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	g.ECS.Towers[id] = &component.Tower{Type: def.ID, Level: 1, Spent: def.Cost}
	g.ECS.Combats[id] = &component.Combat{
		Damage:          stats.Damage,
		FireRate:        stats.AttackSpeed,
		Range:           stats.Range,
		ProjectileSpeed: def.Projectile.Speed,
		Homing:          def.Projectile.Homing,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(config.TowerRadius * def.Visuals.RadiusFactor),
	}
	g.ECS.GameState.Money -= def.Cost

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: id, Type: def.ID, Level: 1, Cost: def.Cost, X: p.X, Y: p.Y},
	})
	return id
}

// accept переводит результат команды в bool для границы ввода.
func (g *Game) accept(command string, err error) bool {
	if err == nil {
		return true
	}
	if config.Verbose {
		log.Printf("%s rejected: %v", command, err)
	}
	return false
}
