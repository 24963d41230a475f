// internal/ui/speed_button.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButtonRL - версия кнопки скорости для Raylib
type SpeedButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []rl.Color
	CurrentState  int
}

func NewSpeedButtonRL(x, y, size float32, stateColors []rl.Color) *SpeedButtonRL {
	return &SpeedButtonRL{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetMultiplier выбирает цвет по множителю скорости: x1, x2, x4.
func (b *SpeedButtonRL) SetMultiplier(m int) {
	state := 0
	for v := m; v > 1 && state < len(b.StateColors)-1; v /= 2 {
		state++
	}
	if state != b.CurrentState {
		b.CurrentState = state
		b.LastClickTime = time.Now()
	}
}

func (b *SpeedButtonRL) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	rlColor := b.StateColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		p1 := rl.NewVector2(b.X-width+dx, b.Y-height/2)
		p2 := rl.NewVector2(b.X-width+dx, b.Y+height/2)
		p3 := rl.NewVector2(b.X+dx, b.Y)
		// raylib ждёт вершины против часовой стрелки
		rl.DrawTriangle(p1, p2, p3, rlColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}

func (b *SpeedButtonRL) IsClicked(mousePos rl.Vector2) bool {
	// Используем круг для определения попадания, так как форма сложная
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}
