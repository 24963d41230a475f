// internal/system/combat.go
package system

import (
	"log"
	"math"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/geom"
)

// CombatSystem управляет выбором целей и стрельбой башен
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		combat, hasCombat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasCombat || !hasPos {
			continue
		}

		combat.FireCooldown = math.Max(0, combat.FireCooldown-deltaTime)

		// Ссылка на цель слабая: проверяем её каждый кадр
		if tower.TargetID != 0 && !s.targetValid(tower.TargetID, pos.Point(), combat.Range) {
			tower.TargetID = 0
		}
		if combat.FireCooldown > 0 {
			continue
		}
		if tower.TargetID == 0 {
			tower.TargetID = SelectTarget(s.ecs, pos.Point(), combat.Range)
		}
		if tower.TargetID == 0 {
			continue
		}

		s.createProjectile(id, tower, combat, pos)
		combat.FireCooldown = 1.0 / combat.FireRate
	}
}

// SelectTarget выбирает цель среди живых врагов в радиусе: дальше всех
// прошедшего по пути, при равенстве ближайшего к башне, затем с меньшим ID.
func SelectTarget(ecs *entity.ECS, from geom.Point, rangeRadius float64) types.EntityID {
	var best types.EntityID
	bestProgress, bestDist := -1.0, math.MaxFloat64
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		enemy := ecs.Enemies[id]
		if !enemy.Alive() {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		dist := geom.Distance(from, pos.Point())
		if dist > rangeRadius {
			continue
		}
		// Обход по возрастанию ID: при полном равенстве остаётся меньший
		if enemy.Progress > bestProgress || (enemy.Progress == bestProgress && dist < bestDist) {
			best, bestProgress, bestDist = id, enemy.Progress, dist
		}
	}
	return best
}

func (s *CombatSystem) targetValid(targetID types.EntityID, from geom.Point, rangeRadius float64) bool {
	enemy, ok := s.ecs.Enemies[targetID]
	if !ok || !enemy.Alive() {
		return false
	}
	pos, ok := s.ecs.Positions[targetID]
	if !ok {
		return false
	}
	return geom.Distance(from, pos.Point()) <= rangeRadius
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, tower *component.Tower, combat *component.Combat, towerPos *component.Position) {
	enemyPos := s.ecs.Positions[tower.TargetID]
	def, ok := defs.TowerLibrary[tower.Type]
	if !ok {
		log.Printf("CombatSystem: Could not find tower definition for ID %s", tower.Type)
		return
	}

	projID := s.ecs.NewEntity()
	proj := &component.Projectile{
		TargetID:   tower.TargetID,
		SourceType: tower.Type,
		StartX:     towerPos.X,
		StartY:     towerPos.Y,
		AimX:       enemyPos.X,
		AimY:       enemyPos.Y,
		Speed:      combat.ProjectileSpeed,
		Damage:     combat.Damage,
		Color:      def.Visuals.Color,
		Homing:     combat.Homing,
		MaxTravel:  combat.Range * config.ProjectileTravelFactor,
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  proj.Color,
		Radius: config.ProjectileRadius,
	}
}
