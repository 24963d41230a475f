// component/tower.go
package component

import (
	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"
)

type Tower struct {
	Type     defs.TowerType // Вариант башни из towers.json
	Level    int            // Уровень улучшения, с 1
	TargetID types.EntityID // Текущая цель; ноль — цели нет
	Spent    int            // Сколько денег вложено в башню
}
