// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	Combats       map[types.EntityID]*component.Combat
	Enemies       map[types.EntityID]*component.Enemy
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Wave          *component.Wave
	GameState     *component.GameState
}

func NewECS() *ECS {
	ecs := &ECS{}
	ecs.Reset()
	return ecs
}

// Reset очищает все таблицы и возвращает состояние игры к начальным значениям.
// Счётчик идентификаторов не сбрасывается: старые ссылки не должны совпасть с новыми сущностями.
func (ecs *ECS) Reset() {
	if ecs.NextID == 0 {
		ecs.NextID = 1
	}
	ecs.GameTime = 0
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.Towers = make(map[types.EntityID]*component.Tower)
	ecs.Projectiles = make(map[types.EntityID]*component.Projectile)
	ecs.Combats = make(map[types.EntityID]*component.Combat)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.DamageFlashes = make(map[types.EntityID]*component.DamageFlash)
	ecs.Wave = nil
	ecs.GameState = &component.GameState{
		Phase:             component.MenuPhase,
		Health:            config.InitialHealth,
		Money:             config.InitialMoney,
		SelectedTowerType: defs.TowerBasic,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех таблиц.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Combats, id)
	delete(ecs.Enemies, id)
	delete(ecs.DamageFlashes, id)
}

// SortedIDs возвращает ключи таблицы по возрастанию: порядок обхода систем детерминирован.
func SortedIDs[T any](table map[types.EntityID]*T) []types.EntityID {
	return slices.Sorted(maps.Keys(table))
}
