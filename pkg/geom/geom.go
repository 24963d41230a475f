// pkg/geom/geom.go
package geom

import "math"

// Point — точка или вектор на плоскости, в пикселях.
type Point struct {
	X, Y float64
}

// Pt — короткий конструктор точки.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len возвращает длину вектора.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Distance — евклидово расстояние между двумя точками.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp выполняет линейную интерполяцию между двумя точками.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// CubicBezier вычисляет точку кубической кривой Безье с опорными точками c1, c2.
func CubicBezier(p0, c1, c2, p3 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*c1.X + b2*c2.X + b3*p3.X,
		Y: b0*p0.Y + b1*c1.Y + b2*c2.Y + b3*p3.Y,
	}
}

// DistanceToSegment возвращает расстояние от точки p до отрезка ab.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = ClampF(t, 0, 1)
	return Distance(p, a.Add(ab.Scale(t)))
}

// ClampF ограничивает значение диапазоном [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Angle — угол вектора в радианах.
func Angle(p Point) float64 {
	return math.Atan2(p.Y, p.X)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to, t float64) float64 {
	diff := NormalizeAngle(NormalizeAngle(to) - NormalizeAngle(from))
	return NormalizeAngle(from + diff*t)
}

// Rect — прямоугольник, заданный углами.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectWH создаёт прямоугольник от начала координат.
func RectWH(w, h float64) Rect {
	return Rect{MaxX: w, MaxY: h}
}

// Inset сжимает прямоугольник на d с каждой стороны.
func (r Rect) Inset(d float64) Rect {
	return Rect{MinX: r.MinX + d, MinY: r.MinY + d, MaxX: r.MaxX - d, MaxY: r.MaxY - d}
}

// Contains проверяет попадание точки, границы включительно.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
