// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          TowerType       `json:"id"`
	Name        string          `json:"name"`
	Cost        int             `json:"cost"`
	Range       float64         `json:"range"`
	Damage      float64         `json:"damage"`
	AttackSpeed float64         `json:"attack_speed"` // Attacks per second
	UpgradeCost int             `json:"upgrade_cost"`
	MaxLevel    int             `json:"max_level"`
	Scaling     LevelScaling    `json:"scaling"`
	Projectile  ProjectileStats `json:"projectile"`
	Visuals     Visuals         `json:"visuals"`
}

// LevelScaling describes per-level stat growth, as a fraction of the base value.
type LevelScaling struct {
	Damage      float64 `json:"damage"`
	Range       float64 `json:"range"`
	AttackSpeed float64 `json:"attack_speed"`
}

// ProjectileStats describes what a tower fires.
type ProjectileStats struct {
	Speed  float64 `json:"speed"`
	Homing bool    `json:"homing"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}

// TowerStats are the effective combat values of a tower at some level.
type TowerStats struct {
	Damage      float64
	Range       float64
	AttackSpeed float64
}

// StatsAt returns the tower stats at the given level. Level 1 is the base.
func (d TowerDefinition) StatsAt(level int) TowerStats {
	if level < 1 {
		level = 1
	}
	k := float64(level - 1)
	return TowerStats{
		Damage:      d.Damage * (1 + d.Scaling.Damage*k),
		Range:       d.Range * (1 + d.Scaling.Range*k),
		AttackSpeed: d.AttackSpeed * (1 + d.Scaling.AttackSpeed*k),
	}
}

// UpgradeCostAt returns the price of upgrading from the given level to the next one.
func (d TowerDefinition) UpgradeCostAt(level int) int {
	if level < 1 {
		level = 1
	}
	return d.UpgradeCost * level
}
