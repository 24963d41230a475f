// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          rl.Rectangle
	Text          string
	Caption       string // Вторая строка мелким шрифтом, например цена
	TextColor     rl.Color
	BgColor       rl.Color
	HoverColor    rl.Color
	SelectedColor rl.Color
	Selected      bool
	Disabled      bool
	Font          rl.Font
	FontSize      float32
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:          rect,
		Text:          text,
		TextColor:     rl.White,
		BgColor:       rl.NewColor(40, 60, 70, 255),
		HoverColor:    rl.NewColor(60, 85, 95, 255),
		SelectedColor: colorToRL(selectedColor),
		Font:          font,
		FontSize:      20,
	}
}

// Contains — попадает ли точка в кнопку.
func (b *Button) Contains(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Contains(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if b.Contains(mousePos) {
		bgColor = b.HoverColor
	}
	if b.Disabled {
		bgColor = rl.Fade(bgColor, 0.5)
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	border := rl.DarkGray
	if b.Selected {
		border = b.SelectedColor
	}
	rl.DrawRectangleLinesEx(b.Rect, 3, border)

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2
	if b.Caption != "" {
		textY -= b.FontSize / 2
	}
	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)

	if b.Caption != "" {
		small := b.FontSize * 0.75
		capSize := rl.MeasureTextEx(b.Font, b.Caption, small, 1)
		rl.DrawTextEx(b.Font, b.Caption, rl.NewVector2(b.Rect.X+(b.Rect.Width-capSize.X)/2, textY+textSize.Y+4), small, 1, rl.LightGray)
	}
}
