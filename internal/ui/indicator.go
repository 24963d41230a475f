// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StateIndicatorRL — кружок фазы игры в углу экрана
type StateIndicatorRL struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	lastColor     color.RGBA
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор; при смене цвета он коротко "вздрагивает".
func (i *StateIndicatorRL) Draw(stateColor color.RGBA) {
	if stateColor != i.lastColor {
		i.lastColor = stateColor
		i.LastClickTime = time.Now()
	}
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, colorToRL(stateColor))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicatorRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(i.X, i.Y), i.Radius)
}
