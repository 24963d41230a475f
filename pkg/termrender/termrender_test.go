package termrender

import (
	"strings"
	"testing"

	"go-body-defense/internal/app"
	"go-body-defense/internal/component"
	"go-body-defense/internal/defs"
	"go-body-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(120, 40, 1200, 750)
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(600, 375), geom.Pt(1199, 749), geom.Pt(1200, 750)} {
		col, row, ok := vp.ToCell(p)
		if !ok {
			t.Fatalf("ToCell(%v) not ok", p)
		}
		back, ok := vp.ToWorld(col, row)
		if !ok {
			t.Fatalf("ToWorld(%d,%d) not ok", col, row)
		}
		// Центр клетки не дальше половины клетки от исходной точки
		if dx := back.X - p.X; dx > 5.01 || dx < -5.01 {
			t.Errorf("x round trip %v -> %v", p, back)
		}
	}
}

func TestViewportReservesHUDRows(t *testing.T) {
	vp := NewViewport(80, 24, 1200, 750)
	if _, row, _ := vp.ToCell(geom.Pt(0, 0)); row != hudRows {
		t.Errorf("top of the world maps to row %d, want %d", row, hudRows)
	}
	if _, row, _ := vp.ToCell(geom.Pt(0, 750)); row != 24-footerRows-1 {
		t.Errorf("bottom of the world maps to row %d, want %d", row, 24-footerRows-1)
	}
	if _, ok := vp.ToWorld(0, 0); ok {
		t.Error("HUD row must not map into the world")
	}
	if _, _, ok := vp.ToCell(geom.Pt(-1, 10)); ok {
		t.Error("point outside the world must not map to a cell")
	}
}

func TestDrawPutsEntitiesOnScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(120, 40)

	s := &app.Snapshot{
		Width: 1200, Height: 750,
		Phase:             component.PlayingPhase,
		Health:            80,
		Money:             150,
		SelectedTowerType: defs.TowerSniper,
		Towers:            []app.TowerView{{ID: 1, Type: defs.TowerBasic, X: 300, Y: 300, Level: 1}},
		Enemies:           []app.EnemyView{{ID: 2, Type: defs.EnemyFast, X: 900, Y: 500, Status: component.EnemyAlive}},
	}
	Draw(screen, s, -1, -1)

	vp := NewViewport(120, 40, 1200, 750)
	check := func(p geom.Point, want rune) {
		t.Helper()
		col, row, _ := vp.ToCell(p)
		if got, _, _, _ := screen.GetContent(col, row); got != want {
			t.Errorf("cell at %v = %q, want %q", p, got, want)
		}
	}
	check(geom.Pt(300, 300), 'M')
	check(geom.Pt(900, 500), 'v')
}

func TestHUDAndMenuLines(t *testing.T) {
	s := &app.Snapshot{Health: 42, Money: 7, Wave: 2, SpeedMultiplier: 4, Phase: component.PlayingPhase, SelectedTowerType: defs.TowerRapid}
	hud := HUDLine(s)
	for _, want := range []string{"42", "Волна 3", "x4"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q lacks %q", hud, want)
		}
	}
	menu := MenuLine(s)
	if !strings.Contains(menu, "[3:N") {
		t.Errorf("menu %q does not mark the selected tower", menu)
	}
}
