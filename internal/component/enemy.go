package component

import "go-body-defense/internal/defs"

// EnemyStatus — жизненный цикл врага.
type EnemyStatus int

const (
	EnemyAlive EnemyStatus = iota
	EnemyDead
	EnemyReachedEnd
)

func (s EnemyStatus) String() string {
	switch s {
	case EnemyAlive:
		return "Alive"
	case EnemyDead:
		return "Dead"
	case EnemyReachedEnd:
		return "ReachedEnd"
	default:
		return "Unknown"
	}
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	Type       defs.EnemyType
	Progress   float64 // Доля пройденной длины пути, [0, 1]
	Speed      float64 // Пикселей в секунду вдоль пути
	Reward     int     // Деньги за убийство
	BreachCost int     // Сколько здоровья игрок теряет, если враг дошёл до конца
	Status     EnemyStatus
}

// Alive — можно ли целиться в этого врага.
func (e *Enemy) Alive() bool {
	return e.Status == EnemyAlive
}
