// pkg/termrender/render.go
package termrender

import (
	"fmt"
	"image/color"

	"go-body-defense/internal/app"
	"go-body-defense/internal/component"
	"go-body-defense/internal/defs"
	"go-body-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

var (
	towerRunes = map[defs.TowerType]rune{defs.TowerBasic: 'M', defs.TowerSniper: 'T', defs.TowerRapid: 'N'}
	enemyRunes = map[defs.EnemyType]rune{defs.EnemyNormal: 'b', defs.EnemyFast: 'v', defs.EnemyTough: 'g'}

	pathStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	slotStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	footerStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw выводит снимок целиком. cursorCol/cursorRow — клетка курсора (-1 — без курсора).
func Draw(screen tcell.Screen, s *app.Snapshot, cursorCol, cursorRow int) {
	screen.Clear()
	cols, rows := screen.Size()
	vp := NewViewport(cols, rows, s.Width, s.Height)

	put := func(p geom.Point, r rune, style tcell.Style) {
		if col, row, ok := vp.ToCell(p); ok {
			screen.SetContent(col, row, r, nil, style)
		}
	}

	for _, p := range s.Path {
		put(p, '·', pathStyle)
	}
	for _, slot := range s.Slots {
		if slot.Seeded && !slot.Occupied {
			put(geom.Pt(slot.X, slot.Y), 'o', slotStyle)
		}
	}
	for _, t := range s.Towers {
		style := tcell.StyleDefault.Foreground(rgb(t.Color)).Bold(t.Level > 1)
		put(geom.Pt(t.X, t.Y), towerRunes[t.Type], style)
	}
	for _, e := range s.Enemies {
		if e.Status != component.EnemyAlive {
			continue
		}
		style := tcell.StyleDefault.Foreground(rgb(e.Color))
		if e.Flash > 0 {
			style = style.Reverse(true)
		}
		put(geom.Pt(e.X, e.Y), enemyRunes[e.Type], style)
	}
	for _, p := range s.Projectiles {
		put(geom.Pt(p.X, p.Y), '*', tcell.StyleDefault.Foreground(rgb(p.Color)))
	}

	if cursorCol >= 0 && cursorRow >= 0 {
		mainc, combc, style, _ := screen.GetContent(cursorCol, cursorRow)
		if mainc == 0 {
			mainc = ' '
		}
		screen.SetContent(cursorCol, cursorRow, mainc, combc, style.Reverse(true))
	}

	drawText(screen, 0, 0, hudStyle, HUDLine(s))
	drawText(screen, 0, rows-2, footerStyle, MenuLine(s))
	drawText(screen, 0, rows-1, footerStyle, "стрелки/мышь - курсор  enter - построить/улучшить  p - пауза  s - скорость  r - заново  q - выход")
	screen.Show()
}

// HUDLine — строка состояния партии.
func HUDLine(s *app.Snapshot) string {
	line := fmt.Sprintf("Здоровье %d  Деньги %d  Очки %d  Волна %d", s.Health, s.Money, s.Score, s.Wave+1)
	if s.SpeedMultiplier > 1 {
		line += fmt.Sprintf("  x%d", s.SpeedMultiplier)
	}
	switch {
	case s.Phase == component.MenuPhase:
		line += "  [пробел - начать]"
	case s.GameOver:
		line += "  ОРГАНИЗМ ПАЛ"
	case s.Paused:
		line += "  ПАУЗА"
	}
	return line
}

// MenuLine — варианты башен с ценами; выбранный в квадратных скобках.
func MenuLine(s *app.Snapshot) string {
	line := ""
	for i, t := range defs.TowerTypes {
		def := defs.TowerLibrary[t]
		item := fmt.Sprintf("%d:%c %s %d", i+1, towerRunes[t], def.Name, def.Cost)
		if t == s.SelectedTowerType {
			item = "[" + item + "]"
		} else {
			item = " " + item + " "
		}
		line += item + " "
	}
	return line
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
