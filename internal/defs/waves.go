package defs

import (
	"math"

	"go-body-defense/internal/config"
)

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Index         int     // Номер волны, с нуля
	Count         int     // Количество врагов в волне
	SpawnInterval float64 // Интервал между появлением врагов, секунд
	Seed          int64   // Сид для выбора состава волны
}

// WaveFor вычисляет параметры волны. Зависит только от номера волны.
func WaveFor(index int) WaveDefinition {
	if index < 0 {
		index = 0
	}
	interval := math.Max(config.MinSpawnInterval, config.InitialSpawnInterval-float64(index)*config.SpawnIntervalDecrement)
	return WaveDefinition{
		Index:         index,
		Count:         config.EnemiesPerWave + index*config.EnemiesIncrementPerWave,
		SpawnInterval: interval,
		Seed:          int64(config.WaveSeedBase) + int64(index),
	}
}
