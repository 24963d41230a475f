// internal/system/utils.go
package system

import (
	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/internal/types"
)

// ApplyDamage наносит урон врагу. Враг, у которого здоровье упало до нуля,
// один раз помечается мёртвым и порождает EnemyKilled.
// Возвращает true, если урон был нанесён.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, entityID types.EntityID, damage float64) bool {
	health, hasHealth := ecs.Healths[entityID]
	enemy, isEnemy := ecs.Enemies[entityID]
	if !hasHealth || !isEnemy || !enemy.Alive() {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	// Добавляем или сбрасываем компонент "вспышки"
	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}

	if health.Value <= 0 {
		enemy.Status = component.EnemyDead
		dispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{EnemyID: entityID, Type: enemy.Type, Reward: enemy.Reward},
		})
	}
	return true
}

// RemoveFinishedEnemies удаляет мёртвых и дошедших до конца врагов.
// Вызывается один раз в конце кадра, после всех систем.
func RemoveFinishedEnemies(ecs *entity.ECS) int {
	removed := 0
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		if !ecs.Enemies[id].Alive() {
			ecs.RemoveEntity(id)
			removed++
		}
	}
	return removed
}
