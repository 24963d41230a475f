package hud

import (
	"image/color"
	"testing"

	"go-body-defense/internal/defs"
	"go-body-defense/pkg/geom"
)

func TestTowerMenuLayout(t *testing.T) {
	buttons := TowerMenuLayout(1200, 750, 150)
	if len(buttons) != len(defs.TowerTypes) {
		t.Fatalf("len = %d, want %d", len(buttons), len(defs.TowerTypes))
	}
	for i, b := range buttons {
		if b.Rect.MinY < 750 || b.Rect.MaxY > 900 || b.Rect.MinX < 0 || b.Rect.MaxX > 1200 {
			t.Errorf("button %s outside menu: %+v", b.Type, b.Rect)
		}
		if i > 0 && b.Rect.MinX <= buttons[i-1].Rect.MaxX {
			t.Errorf("buttons %d and %d overlap", i-1, i)
		}
	}
}

func TestHitMenu(t *testing.T) {
	buttons := TowerMenuLayout(1200, 750, 150)
	center := geom.Pt((buttons[1].Rect.MinX+buttons[1].Rect.MaxX)/2, (buttons[1].Rect.MinY+buttons[1].Rect.MaxY)/2)
	if got, ok := HitMenu(buttons, center); !ok || got != buttons[1].Type {
		t.Errorf("HitMenu(center of %s) = %s, %v", buttons[1].Type, got, ok)
	}
	if _, ok := HitMenu(buttons, geom.Pt(5, 5)); ok {
		t.Error("HitMenu hit outside the menu")
	}
}

func TestMixColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	if MixColor(a, b, 0) != a || MixColor(a, b, 1) != b {
		t.Error("MixColor endpoints")
	}
	if got := MixColor(a, b, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("MixColor(0.5) = %v", got)
	}
}
