// internal/defs/types.go
package defs

// TowerType — вариант башни, ключ таблицы TowerLibrary.
type TowerType string

const (
	TowerBasic  TowerType = "BASIC"
	TowerSniper TowerType = "SNIPER"
	TowerRapid  TowerType = "RAPID"
)

// TowerTypes — все варианты в порядке меню.
var TowerTypes = []TowerType{TowerBasic, TowerSniper, TowerRapid}

// Valid проверяет, что тип входит в закрытый набор вариантов.
func (t TowerType) Valid() bool {
	for _, known := range TowerTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EnemyType — вариант врага, ключ таблицы EnemyLibrary.
type EnemyType string

const (
	EnemyNormal EnemyType = "NORMAL"
	EnemyFast   EnemyType = "FAST"
	EnemyTough  EnemyType = "TOUGH"
)
