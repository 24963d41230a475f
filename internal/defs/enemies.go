// internal/defs/enemies.go
package defs

import (
	"math"

	"go-body-defense/internal/config"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         EnemyType `json:"id"`
	Name       string    `json:"name"`
	Health     float64   `json:"health"`
	Speed      float64   `json:"speed"`
	Reward     int       `json:"reward"`
	BreachCost int       `json:"breach_cost"`
	Visuals    Visuals   `json:"visuals"`
}

// EnemyStats are the wave-scaled values an enemy spawns with.
type EnemyStats struct {
	Health     float64
	Speed      float64
	Reward     int
	BreachCost int
}

// ScaleEnemy applies wave difficulty to a definition. It depends only on the
// definition and the wave index and never decreases as the index grows.
func ScaleEnemy(def EnemyDefinition, wave int) EnemyStats {
	if wave < 0 {
		wave = 0
	}
	w := float64(wave)
	speedMult := math.Min(1+config.EnemySpeedGrowth*w, config.EnemySpeedCap)
	return EnemyStats{
		Health:     def.Health * (1 + config.EnemyHealthGrowth*w),
		Speed:      def.Speed * speedMult,
		Reward:     int(math.Round(float64(def.Reward) * (1 + config.EnemyRewardGrowth*w))),
		BreachCost: def.BreachCost,
	}
}
