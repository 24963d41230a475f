// pkg/render/info_panel.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-body-defense/internal/app"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = config.TowerMenuHeight
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 220
)

// PanelButton — кликабельная кнопка на панели.
type PanelButton struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel выезжает снизу и показывает сведения о выбранной башне или враге.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	bottom        float64
	UpgradeButton PanelButton
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(font font.Face, titleFont font.Face, bottom float64) *InfoPanel {
	return &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      bottom,
		targetY:       bottom,
		bottom:        bottom,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = p.bottom - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.bottom
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.bottom {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

// Contains — попадает ли точка в видимую панель.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// UpgradeClicked — попал ли клик в кнопку улучшения.
func (p *InfoPanel) UpgradeClicked(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.UpgradeButton.Rect)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, s *app.Snapshot) {
	p.UpgradeButton.Rect = image.Rectangle{}
	if !p.IsVisible && p.currentY >= p.bottom {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		int(s.Width)-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	startX, y := panelRect.Min.X+15, panelRect.Min.Y+15+18

	if tower, ok := s.TowerByID(p.TargetEntity); ok {
		def := defs.TowerLibrary[tower.Type]
		text.Draw(screen, fmt.Sprintf("%s, уровень %d/%d", def.Name, tower.Level, tower.MaxLevel), p.titleFontFace, startX, y, config.TextLightColor)
		y += lineHeight + 4
		stats := def.StatsAt(tower.Level)
		text.Draw(screen, fmt.Sprintf("Урон: %.1f", stats.Damage), p.fontFace, startX, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Радиус: %.0f", stats.Range), p.fontFace, startX+columnSpacing, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Выстрелов в секунду: %.2f", stats.AttackSpeed), p.fontFace, startX, y, config.TextLightColor)

		if tower.UpgradeCost > 0 {
			p.drawUpgradeButton(screen, panelRect, tower.UpgradeCost, s.Money >= tower.UpgradeCost)
		}
		return
	}

	for _, e := range s.Enemies {
		if e.ID != p.TargetEntity {
			continue
		}
		def := defs.EnemyLibrary[e.Type]
		text.Draw(screen, def.Name, p.titleFontFace, startX, y, config.TextLightColor)
		y += lineHeight + 4
		text.Draw(screen, fmt.Sprintf("Здоровье: %.0f / %.0f", e.Health, e.MaxHealth), p.fontFace, startX, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Пройдено: %.0f%%", e.Progress*100), p.fontFace, startX+columnSpacing, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Урон организму: %d", def.BreachCost), p.fontFace, startX, y, config.TextLightColor)
		return
	}

	// Цель исчезла из мира
	p.Hide()
}

func (p *InfoPanel) drawUpgradeButton(screen *ebiten.Image, panelRect image.Rectangle, cost int, affordable bool) {
	btnWidth := 180
	btnHeight := 40
	p.UpgradeButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth-20,
		panelRect.Max.Y-btnHeight-20,
		panelRect.Max.X-20,
		panelRect.Max.Y-20,
	)
	p.UpgradeButton.Text = fmt.Sprintf("Улучшить (%d)", cost)

	btnColor := color.RGBA{R: 60, G: 120, B: 60, A: 255}
	if !affordable {
		btnColor = color.RGBA{R: 100, G: 60, B: 60, A: 255}
	}
	vector.DrawFilledRect(screen, float32(p.UpgradeButton.Rect.Min.X), float32(p.UpgradeButton.Rect.Min.Y), float32(btnWidth), float32(btnHeight), btnColor, true)

	textBounds := text.BoundString(p.fontFace, p.UpgradeButton.Text)
	textX := p.UpgradeButton.Rect.Min.X + (btnWidth-textBounds.Dx())/2
	textY := p.UpgradeButton.Rect.Min.Y + (btnHeight-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, p.UpgradeButton.Text, p.fontFace, textX, textY, color.White)
}
