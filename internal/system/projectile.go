// internal/system/projectile.go
package system

import (
	"go-body-defense/internal/config"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		// Цель пропала или уже мертва: промах, урона нет
		enemy, targetExists := s.ecs.Enemies[proj.TargetID]
		targetPos := s.ecs.Positions[proj.TargetID]
		if !targetExists || targetPos == nil || !enemy.Alive() {
			s.removeProjectile(id)
			continue
		}

		proj.Lifetime += deltaTime
		if proj.Homing {
			proj.AimX, proj.AimY = targetPos.X, targetPos.Y
		}

		from := pos.Point()
		aim := geom.Pt(proj.AimX, proj.AimY)
		toAim := aim.Sub(from)
		step := proj.Speed * deltaTime
		reached := false
		var to geom.Point
		if dist := toAim.Len(); dist <= step {
			to = aim
			step = dist
			reached = true
		} else {
			to = from.Add(toAim.Normalize().Scale(step))
		}
		pos.Set(to)
		proj.Traveled += step

		// Попадание проверяется по всему отрезку пути за кадр, чтобы быстрый снаряд не проскочил цель
		if geom.DistanceToSegment(targetPos.Point(), from, to) <= config.HitRadius {
			ApplyDamage(s.ecs, s.eventDispatcher, proj.TargetID, proj.Damage)
			s.removeProjectile(id)
			continue
		}

		if reached && !proj.Homing {
			s.removeProjectile(id)
			continue
		}
		if proj.Lifetime >= config.ProjectileMaxLife || proj.Traveled >= proj.MaxTravel {
			s.removeProjectile(id)
		}
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}
