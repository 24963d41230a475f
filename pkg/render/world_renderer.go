// pkg/render/world_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-body-defense/internal/app"
	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/hud"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WorldRenderer рисует снимок мира: карту, башни, врагов, снаряды и HUD.
type WorldRenderer struct {
	colors    *MapColors
	whiteImg  *ebiten.Image
	mapImage  *ebiten.Image // Предрендеренные фон и дорога
	mapW      float64
	mapH      float64
	vs        []ebiten.Vertex
	is        []uint16
	fontFace  font.Face
	smallFace font.Face
}

func NewWorldRenderer(colors *MapColors, fontFace, smallFace font.Face) *WorldRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	return &WorldRenderer{
		colors:    colors,
		whiteImg:  whiteImg,
		fontFace:  fontFace,
		smallFace: smallFace,
	}
}

// RenderMapImage перерисовывает статичную часть карты. Вызывается при смене размеров.
func (r *WorldRenderer) RenderMapImage(s *app.Snapshot) {
	w, h := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	if w <= 0 || h <= 0 {
		return
	}
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImage(w, h)
	r.mapImage.Fill(r.colors.BackgroundColor)

	// Свечение шире самой дороги
	r.strokePolyline(r.mapImage, s, config.PathWidth*2+12, r.colors.PathGlowColor)
	r.strokePolyline(r.mapImage, s, config.PathWidth*2, r.colors.PathColor)

	r.mapW, r.mapH = s.Width, s.Height
}

func (r *WorldRenderer) strokePolyline(dst *ebiten.Image, s *app.Snapshot, width float32, clr color.RGBA) {
	if len(s.Path) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(s.Path[0].X), float32(s.Path[0].Y))
	for _, p := range s.Path[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range r.vs {
		r.vs[i].SrcX, r.vs[i].SrcY = 0, 0
		r.vs[i].ColorR, r.vs[i].ColorG, r.vs[i].ColorB, r.vs[i].ColorA = cr*ca, cg*ca, cb*ca, ca
	}
	dst.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Draw рисует игровую область. selected — башня, для которой показывается радиус.
func (r *WorldRenderer) Draw(screen *ebiten.Image, s *app.Snapshot, selected types.EntityID) {
	if r.mapImage == nil || r.mapW != s.Width || r.mapH != s.Height {
		r.RenderMapImage(s)
	}
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	}

	r.drawPathEnds(screen, s)

	for _, slot := range s.Slots {
		if slot.Seeded && !slot.Occupied {
			vector.StrokeCircle(screen, float32(slot.X), float32(slot.Y), config.TowerRadius, 2, r.colors.SlotColor, true)
		}
	}

	for _, t := range s.Towers {
		if t.ID == selected {
			vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), r.colors.RangeColor, true)
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), 1, r.colors.TextLightColor, true)
		}
	}
	for _, t := range s.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range s.Enemies {
		if e.Status == component.EnemyAlive {
			r.drawEnemy(screen, e)
		}
	}
	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), p.Radius, p.Color, true)
	}

	r.drawHUD(screen, s)
}

func (r *WorldRenderer) drawPathEnds(screen *ebiten.Image, s *app.Snapshot) {
	if len(s.Waypoints) < 2 {
		return
	}
	start, end := s.Waypoints[0], s.Waypoints[len(s.Waypoints)-1]
	vector.DrawFilledCircle(screen, float32(start.X), float32(start.Y), config.PathWidth*0.6, color.RGBA{220, 60, 60, 200}, true)
	vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), config.PathWidth*0.6, color.RGBA{70, 180, 90, 200}, true)
}

func (r *WorldRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y := float32(t.X), float32(t.Y)
	def := defs.TowerLibrary[t.Type]
	stroke := float32(def.Visuals.StrokeWidth)
	if stroke <= 0 {
		stroke = 2
	}
	vector.DrawFilledCircle(screen, x, y, t.Radius, t.Color, true)
	vector.StrokeCircle(screen, x, y, t.Radius, stroke, hud.DarkenColor(t.Color), true)

	// Уровень — точки под башней
	const pip = 3
	total := float32(t.Level-1) * pip * 3
	for i := 0; i < t.Level; i++ {
		px := x - total/2 + float32(i)*pip*3
		vector.DrawFilledCircle(screen, px, y+t.Radius+6, pip, r.colors.SelectedColor, true)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.X), float32(e.Y)
	body := hud.MixColor(e.Color, r.colors.DamageFlashColor, e.Flash)
	vector.DrawFilledCircle(screen, x, y, e.Radius, body, true)
	vector.StrokeCircle(screen, x, y, e.Radius, 1.5, hud.DarkenColor(e.Color), true)

	if e.MaxHealth <= 0 || e.Health >= e.MaxHealth {
		return
	}
	const barH = 4
	barW := e.Radius * 2
	bx, by := x-e.Radius, y-e.Radius-barH-4
	frac := float32(math.Max(0, e.Health/e.MaxHealth))
	vector.DrawFilledRect(screen, bx, by, barW, barH, r.colors.HealthBackColor, false)
	vector.DrawFilledRect(screen, bx, by, barW*frac, barH, r.colors.HealthBarColor, false)
}

func (r *WorldRenderer) drawHUD(screen *ebiten.Image, s *app.Snapshot) {
	lines := []string{
		fmt.Sprintf("Здоровье: %d", s.Health),
		fmt.Sprintf("Деньги: %d", s.Money),
		fmt.Sprintf("Очки: %d", s.Score),
		fmt.Sprintf("Волна: %d", s.Wave+1),
	}
	if s.Spawner.Phase == component.WaveIdle && s.Spawner.BreakTimer > 0 {
		lines = append(lines, fmt.Sprintf("До волны: %.1f", s.Spawner.BreakTimer))
	}
	if s.SpeedMultiplier > 1 {
		lines = append(lines, fmt.Sprintf("Скорость: x%d", s.SpeedMultiplier))
	}
	y := 24
	for _, line := range lines {
		text.Draw(screen, line, r.fontFace, 12, y, r.colors.TextLightColor)
		y += 22
	}
}

// DrawTowerMenu рисует нижнюю полосу выбора башен.
func (r *WorldRenderer) DrawTowerMenu(screen *ebiten.Image, s *app.Snapshot, buttons []hud.MenuButton) {
	top := float32(s.Height)
	vector.DrawFilledRect(screen, 0, top, float32(s.Width), config.TowerMenuHeight, r.colors.MenuColor, false)

	for _, b := range buttons {
		def := defs.TowerLibrary[b.Type]
		x, y := float32(b.Rect.MinX), float32(b.Rect.MinY)
		w, h := float32(b.Rect.Width()), float32(b.Rect.Height())

		bg := color.RGBA{40, 60, 70, 255}
		if s.Money < def.Cost {
			bg = hud.DarkenColor(bg)
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, true)
		border := hud.DarkenColor(def.Visuals.Color)
		if b.Type == s.SelectedTowerType {
			border = r.colors.SelectedColor
		}
		vector.StrokeRect(screen, x, y, w, h, 3, border, true)

		vector.DrawFilledCircle(screen, x+30, y+h/2, config.TowerRadius, def.Visuals.Color, true)
		text.Draw(screen, def.Name, r.fontFace, int(x)+60, int(y)+40, r.colors.TextLightColor)
		text.Draw(screen, fmt.Sprintf("%d", def.Cost), r.smallFace, int(x)+60, int(y)+65, r.colors.SelectedColor)
	}
}

// DrawCentered выводит строку по центру области.
func DrawCentered(screen *ebiten.Image, str string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, str)
	text.Draw(screen, str, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2, clr)
}
