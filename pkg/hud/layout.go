// Package hud — раскладка интерфейса и работа с цветом, общие для всех клиентов.
package hud

import (
	"go-body-defense/internal/defs"
	"go-body-defense/pkg/geom"
)

const (
	menuButtonWidth  = 220.0
	menuButtonHeight = 100.0
	menuButtonGap    = 30.0
)

// MenuButton — кнопка выбора варианта башни в нижнем меню.
type MenuButton struct {
	Type defs.TowerType
	Rect geom.Rect
}

// TowerMenuLayout раскладывает кнопки вариантов по центру полосы меню.
func TowerMenuLayout(width, top, height float64) []MenuButton {
	n := float64(len(defs.TowerTypes))
	total := n*menuButtonWidth + (n-1)*menuButtonGap
	x := (width - total) / 2
	y := top + (height-menuButtonHeight)/2

	buttons := make([]MenuButton, 0, len(defs.TowerTypes))
	for _, t := range defs.TowerTypes {
		buttons = append(buttons, MenuButton{
			Type: t,
			Rect: geom.Rect{MinX: x, MinY: y, MaxX: x + menuButtonWidth, MaxY: y + menuButtonHeight},
		})
		x += menuButtonWidth + menuButtonGap
	}
	return buttons
}

// HitMenu возвращает вариант под точкой или пустую строку.
func HitMenu(buttons []MenuButton, p geom.Point) (defs.TowerType, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(p) {
			return b.Type, true
		}
	}
	return "", false
}
