// internal/system/state.go
package system

import (
	"log"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
)

// StateSystem ведёт фазы игры и применяет к GameState награды и прорывы.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.SubscribeAll(ss, event.EnemyKilled, event.EnemyBreached)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	gs := s.ecs.GameState
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		gs.Money += data.Reward
		gs.Score += data.Reward * config.ScorePerReward
	case event.EnemyBreached:
		data, ok := e.Data.(event.EnemyBreachedData)
		if !ok {
			return
		}
		gs.Health -= data.BreachCost
		if gs.Health < 0 {
			gs.Health = 0
		}
	}
}

// SwitchToPlaying переводит игру из меню в игру.
func (s *StateSystem) SwitchToPlaying() bool {
	if s.ecs.GameState.Phase != component.MenuPhase {
		return false
	}
	s.ecs.GameState.Phase = component.PlayingPhase
	return true
}

// CheckGameOver завершает игру, если жизни кончились. Вызывается в конце кадра.
func (s *StateSystem) CheckGameOver() bool {
	gs := s.ecs.GameState
	if gs.Phase != component.PlayingPhase || gs.Health > 0 {
		return false
	}
	gs.Phase = component.GameOverPhase
	gs.GameOver = true
	log.Printf("Game over: wave %d, score %d", gs.CurrentWave+1, gs.Score)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: gs.Score, Wave: gs.CurrentWave},
	})
	return true
}

// CompleteWave засчитывает законченную волну.
func (s *StateSystem) CompleteWave(count int) {
	gs := s.ecs.GameState
	log.Printf("Wave %d cleared", gs.CurrentWave+1)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Wave: gs.CurrentWave, Count: count},
	})
	gs.CurrentWave++
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
