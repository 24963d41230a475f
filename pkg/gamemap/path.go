// pkg/gamemap/path.go
package gamemap

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go-body-defense/internal/config"
	"go-body-defense/pkg/geom"
)

// ErrInvalidPath возвращается, если путь задан меньше чем двумя точками
// или все точки совпадают и длина пути нулевая.
var ErrInvalidPath = errors.New("invalid path")

// Path — гладкая кривая через контрольные точки, параметризованная длиной дуги.
// После построения не меняется; при смене размеров экрана строится заново.
type Path struct {
	waypoints []geom.Point
	samples   []geom.Point // Плотные отсчёты кривой
	cumLen    []float64    // cumLen[i] — длина дуги от начала до samples[i]
	length    float64
	nearPath  []geom.Point // NearPathSamples+1 равномерных по длине точек
}

// NewPath строит кривую из кубических сегментов. Опорные точки сегмента
// лежат на 30% и 70% отрезка между соседними контрольными точками.
func NewPath(waypoints []geom.Point) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: at least 2 waypoints required, got %d", ErrInvalidPath, len(waypoints))
	}

	p := &Path{waypoints: append([]geom.Point(nil), waypoints...)}

	steps := config.PathSegmentSteps
	p.samples = make([]geom.Point, 0, (len(waypoints)-1)*steps+1)
	p.samples = append(p.samples, waypoints[0])
	for i := 0; i < len(waypoints)-1; i++ {
		cur, next := waypoints[i], waypoints[i+1]
		c1 := geom.Lerp(cur, next, 0.3)
		c2 := geom.Lerp(cur, next, 0.7)
		for s := 1; s < steps; s++ {
			p.samples = append(p.samples, geom.CubicBezier(cur, c1, c2, next, float64(s)/float64(steps)))
		}
		// Конец сегмента берём точно, без погрешности полинома
		p.samples = append(p.samples, next)
	}

	p.cumLen = make([]float64, len(p.samples))
	for i := 1; i < len(p.samples); i++ {
		p.cumLen[i] = p.cumLen[i-1] + geom.Distance(p.samples[i-1], p.samples[i])
	}
	p.length = p.cumLen[len(p.cumLen)-1]
	if p.length == 0 {
		// По такому пути враги никогда не дойдут до конца
		return nil, fmt.Errorf("%w: zero length", ErrInvalidPath)
	}

	p.nearPath = make([]geom.Point, config.NearPathSamples+1)
	for i := range p.nearPath {
		p.nearPath[i] = p.PositionAt(float64(i) / float64(config.NearPathSamples))
	}

	return p, nil
}

// Length — полная длина пути в пикселях.
func (p *Path) Length() float64 {
	return p.length
}

// Waypoints возвращает копию контрольных точек.
func (p *Path) Waypoints() []geom.Point {
	return append([]geom.Point(nil), p.waypoints...)
}

// Samples возвращает копию плотных отсчётов кривой (для отрисовки).
func (p *Path) Samples() []geom.Point {
	return append([]geom.Point(nil), p.samples...)
}

// PositionAt возвращает точку на расстоянии t*Length() от начала пути.
// t ограничивается диапазоном [0, 1].
func (p *Path) PositionAt(t float64) geom.Point {
	i, frac := p.locate(t)
	if frac == 0 {
		return p.samples[i]
	}
	return geom.Lerp(p.samples[i], p.samples[i+1], frac)
}

// TangentAt возвращает единичное направление движения в точке t.
func (p *Path) TangentAt(t float64) geom.Point {
	i, _ := p.locate(t)
	if i >= len(p.samples)-1 {
		i = len(p.samples) - 2
	}
	// Вырожденные отрезки (совпадающие точки) пропускаем
	for j := i; j < len(p.samples)-1; j++ {
		if d := p.samples[j+1].Sub(p.samples[j]); d.Len() > 0 {
			return d.Normalize()
		}
	}
	for j := i; j > 0; j-- {
		if d := p.samples[j].Sub(p.samples[j-1]); d.Len() > 0 {
			return d.Normalize()
		}
	}
	return geom.Point{}
}

// locate находит отрезок таблицы длин для параметра t: индекс начала и долю внутри.
func (p *Path) locate(t float64) (int, float64) {
	t = geom.ClampF(t, 0, 1)
	last := len(p.samples) - 1
	if t <= 0 || p.length == 0 {
		return 0, 0
	}
	if t >= 1 {
		return last, 0
	}
	target := t * p.length
	// Первый индекс, где накопленная длина >= target
	j := sort.SearchFloat64s(p.cumLen, target)
	if j == 0 {
		return 0, 0
	}
	if j > last {
		return last, 0
	}
	segLen := p.cumLen[j] - p.cumLen[j-1]
	if segLen == 0 {
		return j, 0
	}
	return j - 1, (target - p.cumLen[j-1]) / segLen
}

// DistanceTo — минимальное расстояние от точки до фиксированных отсчётов пути.
// Разрешение задаёт config.NearPathSamples.
func (p *Path) DistanceTo(point geom.Point) float64 {
	minDistance := math.MaxFloat64
	for _, s := range p.nearPath {
		if d := geom.Distance(point, s); d < minDistance {
			minDistance = d
		}
	}
	return minDistance
}

// IsNearPath проверяет, лежит ли точка ближе threshold к пути.
func (p *Path) IsNearPath(point geom.Point, threshold float64) bool {
	return p.DistanceTo(point) < threshold
}

// IsValidPlacement — можно ли поставить башню в точку: не на дороге,
// не ближе minDistance к другим башням и внутри bounds.
func (p *Path) IsValidPlacement(point geom.Point, existingTowers []geom.Point, minDistance float64, bounds geom.Rect) bool {
	if p.IsNearPath(point, config.PathWidth) {
		return false
	}
	for _, t := range existingTowers {
		if geom.Distance(point, t) < minDistance {
			return false
		}
	}
	return bounds.Contains(point)
}
