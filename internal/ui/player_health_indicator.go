// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthRows          = 5
	HealthCols          = 4
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье организма сеткой кружков.
type PlayerHealthIndicator struct {
	Position rl.Vector2
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		Position: rl.NewVector2(x, y),
	}
}

// filledCells — сколько из cells кружков закрашено при данном здоровье.
// Любой ненулевой остаток даёт ещё один кружок.
func filledCells(health, maxHealth, cells int) int {
	if health <= 0 || maxHealth <= 0 {
		return 0
	}
	if health >= maxHealth {
		return cells
	}
	return (health*cells + maxHealth - 1) / maxHealth
}

// Draw рисует индикатор. Каждый кружок — maxHealth/20 единиц здоровья.
func (i *PlayerHealthIndicator) Draw(health int, maxHealth int) {
	startX := i.Position.X
	startY := i.Position.Y
	cells := HealthRows * HealthCols
	filled := filledCells(health, maxHealth, cells)

	for j := 0; j < cells; j++ {
		row := j / HealthCols
		col := j % HealthCols

		x := startX + float32(col*(HealthCircleRadius*2+HealthCircleSpacing))
		y := startY + float32(row*(HealthCircleRadius*2+HealthCircleSpacing))

		var color rl.Color
		switch {
		case j >= filled:
			color = rl.Black
		case filled <= cells/2:
			// Меньше половины — всё красное
			color = rl.Red
		case j < filled-cells/2:
			color = rl.Blue
		default:
			color = rl.Red
		}

		rl.DrawCircle(int32(x+HealthCircleRadius), int32(y+HealthCircleRadius), HealthCircleRadius, color)
		rl.DrawCircleLines(int32(x+HealthCircleRadius), int32(y+HealthCircleRadius), HealthCircleRadius, rl.White)
	}

	// Текстовое отображение здоровья над сеткой
	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	textWidth := rl.MeasureText(healthText, 20)
	rl.DrawText(healthText, int32(startX+((HealthCols*(HealthCircleRadius*2+HealthCircleSpacing))-float32(textWidth))/2), int32(startY)-25, 20, rl.White)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	// Высота текста над сеткой + отступ + высота самой сетки
	textHeight := float32(25)
	gridHeight := float32(HealthRows * (HealthCircleRadius*2 + HealthCircleSpacing))
	return textHeight + gridHeight
}
