// pkg/gamemap/map.go
package gamemap

import (
	"log"

	"go-body-defense/internal/config"
	"go-body-defense/pkg/geom"
)

// Slot — точка набора мест под башни. Заранее размеченные слоты свободны,
// пока в них не построят башню; свободно поставленная башня добавляет занятый слот.
type Slot struct {
	Pos      geom.Point
	Occupied bool
	Seeded   bool
}

// Map — путь врагов и набор мест под башни для экрана заданного размера.
type Map struct {
	Width, Height float64
	Path          *Path
	Slots         []Slot
}

// Контрольные точки пути в долях экрана: вход слева, петли, выход справа.
var defaultWaypoints = [][2]float64{
	{0, 0.5},
	{0.1, 0.4}, {0.2, 0.6},
	{0.3, 0.3}, {0.4, 0.7}, {0.5, 0.4},
	{0.6, 0.6}, {0.7, 0.3}, {0.8, 0.5},
	{0.9, 0.4}, {1, 0.5},
}

// Стратегические места у каждой петли.
var defaultSlots = [][2]float64{
	{0.1, 0.35}, {0.1, 0.65},
	{0.3, 0.25}, {0.3, 0.75},
	{0.5, 0.35}, {0.5, 0.65},
	{0.7, 0.25}, {0.7, 0.75},
	{0.9, 0.35}, {0.9, 0.65},
}

// NewMap строит карту под размеры игровой области.
func NewMap(width, height float64) (*Map, error) {
	waypoints := make([]geom.Point, len(defaultWaypoints))
	for i, f := range defaultWaypoints {
		waypoints[i] = geom.Pt(width*f[0], height*f[1])
	}
	path, err := NewPath(waypoints)
	if err != nil {
		return nil, err
	}

	m := &Map{Width: width, Height: height, Path: path}
	for _, f := range defaultSlots {
		p := geom.Pt(width*f[0], height*f[1])
		// Слот, нарушающий инварианты набора на этом экране, не заводим
		if !path.IsValidPlacement(p, m.slotPositions(), config.MinTowerDistance, m.Bounds()) {
			log.Printf("gamemap: seeded slot (%.0f,%.0f) dropped for %.0fx%.0f screen", p.X, p.Y, width, height)
			continue
		}
		m.Slots = append(m.Slots, Slot{Pos: p, Seeded: true})
	}
	return m, nil
}

// Bounds — допустимая для башен область: экран минус отступ MinTowerDistance.
func (m *Map) Bounds() geom.Rect {
	return geom.RectWH(m.Width, m.Height).Inset(config.MinTowerDistance)
}

// IsValidPlacement проверяет свободную постройку в точке p.
func (m *Map) IsValidPlacement(p geom.Point) bool {
	return m.Path.IsValidPlacement(p, m.slotPositions(), config.MinTowerDistance, m.Bounds())
}

// FreeSlotNear возвращает индекс ближайшего доступного слота
// в радиусе radius или -1.
func (m *Map) FreeSlotNear(p geom.Point, radius float64) int {
	best := -1
	bestDist := radius
	for i, s := range m.Slots {
		if !m.SlotAvailable(i) {
			continue
		}
		if d := geom.Distance(p, s.Pos); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// SlotAvailable — слот свободен и не ближе MinTowerDistance к занятым местам.
// После смены размеров экрана размеченные слоты могут оказаться рядом
// с уже построенными башнями.
func (m *Map) SlotAvailable(i int) bool {
	if i < 0 || i >= len(m.Slots) || m.Slots[i].Occupied {
		return false
	}
	for j, s := range m.Slots {
		if j != i && s.Occupied && geom.Distance(s.Pos, m.Slots[i].Pos) < config.MinTowerDistance {
			return false
		}
	}
	return true
}

// Occupy помечает размеченный слот занятым.
func (m *Map) Occupy(i int) bool {
	if i < 0 || i >= len(m.Slots) || m.Slots[i].Occupied {
		return false
	}
	m.Slots[i].Occupied = true
	return true
}

// AddPlacement добавляет в набор занятое место свободно построенной башни.
func (m *Map) AddPlacement(p geom.Point) {
	m.Slots = append(m.Slots, Slot{Pos: p, Occupied: true})
}

// ResetSlots возвращает набор к размеченным слотам, все свободны.
func (m *Map) ResetSlots() {
	seeded := m.Slots[:0]
	for _, s := range m.Slots {
		if s.Seeded {
			s.Occupied = false
			seeded = append(seeded, s)
		}
	}
	m.Slots = seeded
}

func (m *Map) slotPositions() []geom.Point {
	points := make([]geom.Point, len(m.Slots))
	for i, s := range m.Slots {
		points[i] = s.Pos
	}
	return points
}
