// Package termrender рисует снимок мира в терминале через tcell.
package termrender

import "go-body-defense/pkg/geom"

// Строки над и под игровым полем: HUD сверху, подсказка и меню снизу.
const (
	hudRows    = 1
	footerRows = 2
)

// Viewport отображает координаты мира в клетки терминала и обратно.
type Viewport struct {
	Cols, Rows    int // Размер терминала
	Width, Height float64
}

func NewViewport(cols, rows int, width, height float64) Viewport {
	return Viewport{Cols: cols, Rows: rows, Width: width, Height: height}
}

func (v Viewport) fieldRows() int {
	return max(1, v.Rows-hudRows-footerRows)
}

// ToCell переводит точку мира в клетку. ok=false, если поле пустое или точка вне мира.
func (v Viewport) ToCell(p geom.Point) (col, row int, ok bool) {
	if v.Cols <= 0 || v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	if p.X < 0 || p.Y < 0 || p.X > v.Width || p.Y > v.Height {
		return 0, 0, false
	}
	rows := v.fieldRows()
	col = min(int(p.X/v.Width*float64(v.Cols)), v.Cols-1)
	row = min(int(p.Y/v.Height*float64(rows)), rows-1)
	return col, row + hudRows, true
}

// ToWorld возвращает центр клетки в координатах мира.
func (v Viewport) ToWorld(col, row int) (geom.Point, bool) {
	rows := v.fieldRows()
	row -= hudRows
	if col < 0 || col >= v.Cols || row < 0 || row >= rows {
		return geom.Point{}, false
	}
	return geom.Pt(
		(float64(col)+0.5)*v.Width/float64(v.Cols),
		(float64(row)+0.5)*v.Height/float64(rows),
	), true
}
