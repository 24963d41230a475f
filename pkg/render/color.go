// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the world.
type MapColors struct {
	BackgroundColor  color.RGBA
	PathColor        color.RGBA
	PathGlowColor    color.RGBA
	SlotColor        color.RGBA
	RangeColor       color.RGBA
	TextDarkColor    color.RGBA
	TextLightColor   color.RGBA
	MenuColor        color.RGBA
	SelectedColor    color.RGBA
	HealthBarColor   color.RGBA
	HealthBackColor  color.RGBA
	DamageFlashColor color.RGBA
}
