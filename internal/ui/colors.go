// internal/ui/colors.go
package ui

import (
	"image/color"

	"go-body-defense/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	selectedColor = config.SelectedColor
	waveColor     = color.RGBA{70, 130, 180, 255}
)

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// ColorToRL — экспортируемая версия для хостов.
func ColorToRL(c color.Color) rl.Color {
	return colorToRL(c)
}
