package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); math.Abs(d-5) > eps {
		t.Errorf("Distance((0,0),(3,4)) = %v, want 5", d)
	}
	if d := Distance(Pt(1, 1), Pt(1, 1)); d != 0 {
		t.Errorf("Distance of a point to itself = %v, want 0", d)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	p0, c1, c2, p3 := Pt(0, 0), Pt(10, 50), Pt(90, -50), Pt(100, 0)
	if got := CubicBezier(p0, c1, c2, p3, 0); got != p0 {
		t.Errorf("t=0: got %v, want %v", got, p0)
	}
	if got := CubicBezier(p0, c1, c2, p3, 1); got != p3 {
		t.Errorf("t=1: got %v, want %v", got, p3)
	}
}

func TestCubicBezierCollinearControlsIsStraight(t *testing.T) {
	a, b := Pt(0, 0), Pt(100, 0)
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
		p := CubicBezier(a, Lerp(a, b, 0.3), Lerp(a, b, 0.7), b, tt)
		if math.Abs(p.Y) > eps {
			t.Errorf("t=%v: point %v left the segment", tt, p)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above middle", Pt(5, 3), 3},
		{"before start", Pt(-3, 4), 5},
		{"after end", Pt(13, 0), 3},
		{"on segment", Pt(7, 0), 0},
	}
	for _, tc := range tests {
		if got := DistanceToSegment(tc.p, a, b); math.Abs(got-tc.want) > eps {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
	if got := DistanceToSegment(Pt(3, 4), a, a); math.Abs(got-5) > eps {
		t.Errorf("degenerate segment: got %v, want 5", got)
	}
}

func TestRectInsetContains(t *testing.T) {
	r := RectWH(100, 50).Inset(10)
	if !r.Contains(Pt(10, 10)) || !r.Contains(Pt(90, 40)) {
		t.Error("inset bounds must be inclusive")
	}
	if r.Contains(Pt(5, 20)) || r.Contains(Pt(50, 45)) {
		t.Error("points in the margin must be outside")
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(3π) = %v, want π", got)
	}
	if got := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.5); math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("LerpAngle across the seam = %v, want ±π", got)
	}
}
