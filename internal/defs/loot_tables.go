// internal/defs/loot_tables.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// Weight — относительный шанс, что очередной враг волны будет этого типа.
type SpawnEntry struct {
	EnemyID EnemyType `json:"enemy_id"`
	Weight  int       `json:"weight"`
}

// SpawnTable определяет состав волн начиная с FromWave.
type SpawnTable struct {
	FromWave int          `json:"from_wave"`
	Entries  []SpawnEntry `json:"entries"`
}

// SpawnTables упорядочены по FromWave; действует последняя таблица с FromWave <= номера волны.
var SpawnTables = []SpawnTable{
	{FromWave: 0, Entries: []SpawnEntry{{EnemyID: EnemyNormal, Weight: 1}}},
	{FromWave: 2, Entries: []SpawnEntry{{EnemyID: EnemyNormal, Weight: 6}, {EnemyID: EnemyFast, Weight: 3}}},
	{FromWave: 4, Entries: []SpawnEntry{{EnemyID: EnemyNormal, Weight: 5}, {EnemyID: EnemyFast, Weight: 3}, {EnemyID: EnemyTough, Weight: 2}}},
	{FromWave: 8, Entries: []SpawnEntry{{EnemyID: EnemyNormal, Weight: 3}, {EnemyID: EnemyFast, Weight: 4}, {EnemyID: EnemyTough, Weight: 3}}},
}

// SpawnTableFor возвращает таблицу, действующую для волны.
func SpawnTableFor(wave int) SpawnTable {
	table := SpawnTables[0]
	for _, t := range SpawnTables {
		if t.FromWave <= wave {
			table = t
		}
	}
	return table
}
