package component

import "go-body-defense/internal/defs"

// WavePhase — состояние спавнера внутри волны.
type WavePhase int

const (
	WaveIdle     WavePhase = iota // Пауза перед волной
	WaveSpawning                  // Враги выпускаются по таймеру
	WaveDraining                  // Все выпущены, ждём, пока умрут или дойдут
	WaveComplete                  // Волна закончена
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "Idle"
	case WaveSpawning:
		return "Spawning"
	case WaveDraining:
		return "Draining"
	case WaveComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Wave — состояние текущей волны.
type Wave struct {
	Number         int
	Phase          WavePhase
	EnemiesToSpawn int
	Spawned        int
	SpawnTimer     float64
	SpawnInterval  float64
	BreakTimer     float64 // Остаток паузы в фазе Idle
	Composition    []defs.EnemyType
}
