// internal/event/types.go
package event

import (
	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"
)

const (
	EnemyKilled   EventType = "EnemyKilled"   // Враг убит снарядом
	EnemyBreached EventType = "EnemyBreached" // Враг дошёл до конца пути
	WaveStarted   EventType = "WaveStarted"   // Выпущен первый враг волны
	WaveEnded     EventType = "WaveEnded"     // Волна закончилась
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerUpgraded EventType = "TowerUpgraded"
	GameOver      EventType = "GameOver"
	GameRestarted EventType = "GameRestarted"
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	Reward  int
}

// EnemyBreachedData — данные события EnemyBreached.
type EnemyBreachedData struct {
	EnemyID    types.EntityID
	Type       defs.EnemyType
	BreachCost int
}

// WaveData — данные событий WaveStarted и WaveEnded.
type WaveData struct {
	Wave  int
	Count int
}

// TowerData — данные событий TowerPlaced и TowerUpgraded.
type TowerData struct {
	TowerID types.EntityID
	Type    defs.TowerType
	Level   int
	Cost    int
	X, Y    float64
}

// GameOverData — итог партии.
type GameOverData struct {
	Score int
	Wave  int
}
