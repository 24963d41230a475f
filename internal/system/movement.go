// internal/system/movement.go
package system

import (
	"go-body-defense/internal/component"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/pkg/gamemap"
)

// MovementGameContext определяет методы, которые системы требуют от Game.
// Это помогает избежать циклических зависимостей.
type MovementGameContext interface {
	GetPath() *gamemap.Path
}

// MovementSystem продвигает врагов по пути
type MovementSystem struct {
	ecs             *entity.ECS
	game            MovementGameContext
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, game MovementGameContext, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, game: game, eventDispatcher: eventDispatcher}
}

// Update сдвигает каждого живого врага на speed*dt/длина пути.
// Дошедший до конца получает статус ReachedEnd; удаляется он в конце кадра.
func (s *MovementSystem) Update(deltaTime float64) {
	path := s.game.GetPath()
	if path == nil || path.Length() <= 0 {
		return
	}
	length := path.Length()

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if !enemy.Alive() {
			continue
		}
		enemy.Progress += enemy.Speed * deltaTime / length
		if enemy.Progress >= 1 {
			enemy.Progress = 1
			enemy.Status = component.EnemyReachedEnd
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyBreached,
				Data: event.EnemyBreachedData{EnemyID: id, Type: enemy.Type, BreachCost: enemy.BreachCost},
			})
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Set(path.PositionAt(enemy.Progress))
		}
	}
}
