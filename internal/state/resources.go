// internal/state/resources.go
package state

import (
	"go-body-defense/internal/config"
	"go-body-defense/pkg/render"

	"golang.org/x/image/font"
)

// Fonts — шрифты, общие для всех состояний.
type Fonts struct {
	Regular font.Face
	Small   font.Face
	Title   font.Face
	Huge    font.Face
}

func LoadFonts() (*Fonts, error) {
	sizes := []float64{16, 13, 20, 48}
	faces := make([]font.Face, len(sizes))
	for i, size := range sizes {
		face, err := render.NewFace(size)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return &Fonts{Regular: faces[0], Small: faces[1], Title: faces[2], Huge: faces[3]}, nil
}

// mapColors собирает палитру рендерера из конфига.
func mapColors() *render.MapColors {
	return &render.MapColors{
		BackgroundColor:  config.BackgroundColor,
		PathColor:        config.PathColor,
		PathGlowColor:    config.PathGlowColor,
		SlotColor:        config.SlotColor,
		RangeColor:       config.RangeColor,
		TextDarkColor:    config.TextDarkColor,
		TextLightColor:   config.TextLightColor,
		MenuColor:        config.MenuColor,
		SelectedColor:    config.SelectedColor,
		HealthBarColor:   config.HealthBarColor,
		HealthBackColor:  config.HealthBackColor,
		DamageFlashColor: config.DamageFlashColor,
	}
}
