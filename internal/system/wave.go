// internal/system/wave.go
package system

import (
	"log"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/internal/utils"
)

// WaveSystem ведёт спавнер по фазам Idle → Spawning → Draining → Complete.
type WaveSystem struct {
	ecs             *entity.ECS
	game            MovementGameContext
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, game MovementGameContext, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// PlanWave собирает волну по номеру. Состав зависит только от номера.
func PlanWave(number int) *component.Wave {
	waveDef := defs.WaveFor(number)
	table := defs.SpawnTableFor(number)
	prng := utils.NewPRNGService(waveDef.Seed)

	breakTimer := config.WaveBreakDuration
	if number == 0 {
		breakTimer = config.FirstWaveDelay
	}
	return &component.Wave{
		Number:         number,
		Phase:          component.WaveIdle,
		EnemiesToSpawn: waveDef.Count,
		SpawnInterval:  waveDef.SpawnInterval,
		BreakTimer:     breakTimer,
		Composition:    prng.Composition(table.Entries, waveDef.Count),
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		s.ecs.Wave = PlanWave(s.ecs.GameState.CurrentWave)
		wave = s.ecs.Wave
	}

	switch wave.Phase {
	case component.WaveIdle:
		wave.BreakTimer -= deltaTime
		if wave.BreakTimer > 0 {
			return
		}
		wave.BreakTimer = 0
		wave.Phase = component.WaveSpawning
		wave.SpawnTimer = 0
		log.Printf("Wave %d started: %d enemies", wave.Number+1, wave.EnemiesToSpawn)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveStarted,
			Data: event.WaveData{Wave: wave.Number, Count: wave.EnemiesToSpawn},
		})
		// Первый враг выходит сразу
		if wave.EnemiesToSpawn > 0 {
			s.spawnNext(wave)
		}
	case component.WaveSpawning:
		wave.SpawnTimer += deltaTime
		for wave.EnemiesToSpawn > 0 && wave.SpawnTimer >= wave.SpawnInterval {
			wave.SpawnTimer -= wave.SpawnInterval
			s.spawnNext(wave)
		}
	case component.WaveComplete:
		s.ecs.Wave = PlanWave(s.ecs.GameState.CurrentWave)
		return
	}

	if wave.Phase == component.WaveSpawning && wave.EnemiesToSpawn == 0 {
		wave.Phase = component.WaveDraining
	}
}

// CheckCompletion переводит волну в Complete, если все выпущены и в мире нет врагов.
// Вызывается после уборки в конце кадра.
func (s *WaveSystem) CheckCompletion() bool {
	wave := s.ecs.Wave
	if wave == nil || wave.Phase != component.WaveDraining {
		return false
	}
	if wave.EnemiesToSpawn > 0 || len(s.ecs.Enemies) > 0 {
		return false
	}
	wave.Phase = component.WaveComplete
	return true
}

func (s *WaveSystem) spawnNext(wave *component.Wave) {
	enemyType := defs.EnemyNormal
	if wave.Spawned < len(wave.Composition) {
		enemyType = wave.Composition[wave.Spawned]
	}
	wave.Spawned++
	wave.EnemiesToSpawn--
	s.spawnEnemy(enemyType, wave.Number)
}

func (s *WaveSystem) spawnEnemy(enemyType defs.EnemyType, waveNumber int) {
	def, ok := defs.EnemyLibrary[enemyType]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", enemyType)
		return
	}
	path := s.game.GetPath()
	if path == nil {
		return
	}
	stats := defs.ScaleEnemy(def, waveNumber)

	id := s.ecs.NewEntity()
	start := path.PositionAt(0)
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Healths[id] = &component.Health{Value: stats.Health, Max: stats.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(config.EnemyRadius * def.Visuals.RadiusFactor),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Type:       enemyType,
		Speed:      stats.Speed,
		Reward:     stats.Reward,
		BreachCost: stats.BreachCost,
		Status:     component.EnemyAlive,
	}
}
