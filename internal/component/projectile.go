// internal/component/projectile.go
package component

import (
	"image/color"

	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	TargetID   types.EntityID // Слабая ссылка: цель проверяется каждый кадр
	SourceType defs.TowerType
	StartX     float64
	StartY     float64
	AimX, AimY float64 // Последняя известная позиция цели
	Speed      float64
	Damage     float64
	Color      color.RGBA
	Homing     bool
	Lifetime   float64 // Сколько секунд снаряд уже летит
	Traveled   float64 // Пройденное расстояние
	MaxTravel  float64
}
