package gamemap

import (
	"errors"
	"math"
	"testing"

	"go-body-defense/internal/config"
	"go-body-defense/pkg/geom"
)

const tolerance = 1e-6

func TestNewPathRejectsDegenerateWaypoints(t *testing.T) {
	cases := [][]geom.Point{
		nil,
		{geom.Pt(1, 1)},
		{geom.Pt(5, 5), geom.Pt(5, 5)},
		{geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(5, 5)},
	}
	for _, wps := range cases {
		if _, err := NewPath(wps); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("NewPath(%v): expected ErrInvalidPath, got %v", wps, err)
		}
	}
}

func TestPositionAtEndpoints(t *testing.T) {
	cases := [][]geom.Point{
		{geom.Pt(0, 0), geom.Pt(100, 0)},
		{geom.Pt(10, 20), geom.Pt(200, 300), geom.Pt(400, 50)},
		{geom.Pt(0, 450), geom.Pt(120, 300), geom.Pt(240, 450), geom.Pt(360, 225), geom.Pt(1200, 450)},
	}
	for _, wps := range cases {
		p, err := NewPath(wps)
		if err != nil {
			t.Fatalf("NewPath: %v", err)
		}
		if got := p.PositionAt(0); geom.Distance(got, wps[0]) > tolerance {
			t.Errorf("PositionAt(0) = %v, want %v", got, wps[0])
		}
		last := wps[len(wps)-1]
		if got := p.PositionAt(1); geom.Distance(got, last) > tolerance {
			t.Errorf("PositionAt(1) = %v, want %v", got, last)
		}
		// За пределами [0,1] значение ограничивается
		if got := p.PositionAt(1.7); geom.Distance(got, last) > tolerance {
			t.Errorf("PositionAt(1.7) = %v, want %v", got, last)
		}
		if got := p.PositionAt(-0.2); geom.Distance(got, wps[0]) > tolerance {
			t.Errorf("PositionAt(-0.2) = %v, want %v", got, wps[0])
		}
	}
}

func TestPositionAtIsArcLength(t *testing.T) {
	// Прямой путь: опорные точки на 30%/70% дают неравномерный параметр Безье,
	// но позиция по длине дуги должна быть равномерной.
	p, err := NewPath([]geom.Point{geom.Pt(0, 0), geom.Pt(200, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Length()-200) > tolerance {
		t.Fatalf("Length() = %v, want 200", p.Length())
	}
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.8} {
		got := p.PositionAt(tt)
		if math.Abs(got.X-200*tt) > 1e-3 || math.Abs(got.Y) > tolerance {
			t.Errorf("PositionAt(%v) = %v, want (%v, 0)", tt, got, 200*tt)
		}
	}
}

func TestPositionAtMonotonic(t *testing.T) {
	m, err := NewMap(1200, 750)
	if err != nil {
		t.Fatal(err)
	}
	path := m.Path
	prev := 0.0
	// Пройденное расстояние по отсчётам не убывает и совпадает с t*Length
	for i := 1; i <= 200; i++ {
		tt := float64(i) / 200
		step := geom.Distance(path.PositionAt(tt-1.0/200), path.PositionAt(tt))
		if step > path.Length()/200+1e-6 {
			t.Fatalf("step %d covers %v, longer than arc step %v", i, step, path.Length()/200)
		}
		prev += step
	}
	if prev > path.Length()+1e-6 {
		t.Errorf("chord sum %v exceeds arc length %v", prev, path.Length())
	}
}

func TestTangentAt(t *testing.T) {
	p, _ := NewPath([]geom.Point{geom.Pt(0, 0), geom.Pt(0, 100)})
	for _, tt := range []float64{0, 0.5, 1} {
		tan := p.TangentAt(tt)
		if math.Abs(tan.X) > tolerance || math.Abs(tan.Y-1) > tolerance {
			t.Errorf("TangentAt(%v) = %v, want (0,1)", tt, tan)
		}
	}
}

func TestIsNearPath(t *testing.T) {
	wps := []geom.Point{geom.Pt(0, 100), geom.Pt(500, 100), geom.Pt(1000, 100)}
	p, _ := NewPath(wps)
	for _, wp := range wps {
		if !p.IsNearPath(wp, config.PathWidth) {
			t.Errorf("waypoint %v must be near the path", wp)
		}
	}
	if !p.IsNearPath(geom.Pt(250, 120), config.PathWidth) {
		t.Error("point 20px off the path must be near it")
	}
	if p.IsNearPath(geom.Pt(250, 140), config.PathWidth) {
		t.Error("point 40px off the path must not be near it")
	}
}

func TestIsValidPlacement(t *testing.T) {
	wps := []geom.Point{geom.Pt(0, 100), geom.Pt(300, 100), geom.Pt(600, 100)}
	p, _ := NewPath(wps)
	bounds := geom.RectWH(1200, 900).Inset(config.MinTowerDistance)
	towers := []geom.Point{geom.Pt(900, 700)}

	tests := []struct {
		name  string
		point geom.Point
		want  bool
	}{
		{"exact waypoint", wps[1], false},
		{"far from everything", geom.Pt(300, 600), true},
		{"too close to a tower", geom.Pt(950, 700), false},
		{"exactly min distance from a tower", geom.Pt(900-config.MinTowerDistance, 700), true},
		{"outside inset bounds", geom.Pt(1150, 500), false},
		{"inside bounds edge", geom.Pt(config.MinTowerDistance, 500), true},
	}
	for _, tc := range tests {
		if got := p.IsValidPlacement(tc.point, towers, config.MinTowerDistance, bounds); got != tc.want {
			t.Errorf("%s: IsValidPlacement(%v) = %v, want %v", tc.name, tc.point, got, tc.want)
		}
	}
}
