// component/movement.go
package component

import "go-body-defense/pkg/geom"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Point переводит позицию в геометрическую точку.
func (p Position) Point() geom.Point {
	return geom.Pt(p.X, p.Y)
}

// Set записывает точку в позицию.
func (p *Position) Set(pt geom.Point) {
	p.X, p.Y = pt.X, pt.Y
}
