// cmd/viewer_raylib/main.go
package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"strconv"

	"go-body-defense/internal/app"
	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/loop"
	"go-body-defense/internal/ui"
	"go-body-defense/pkg/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"
)

func init() {
	// raylib работает только из главного потока
	runtime.LockOSThread()
}

// viewer рисует снимки раннера и переводит ввод в команды игры.
type viewer struct {
	game      *app.Game
	runner    *loop.Runner[app.Snapshot]
	font      rl.Font
	menu      []*ui.Button
	speed     *ui.SpeedButtonRL
	pause     *ui.PauseButtonRL
	indicator *ui.StateIndicatorRL
	health    *ui.PlayerHealthIndicator
	wave      *ui.WaveIndicator
}

func main() {
	verbose := flag.Bool("v", false, "log rejected input commands")
	defsDir := flag.String("defs", "", "directory with towers.json / enemies.json overrides")
	flag.Parse()
	config.Verbose = *verbose

	if *defsDir != "" {
		if err := defs.LoadDir(*defsDir); err != nil {
			log.Fatalf("load definitions: %v", err)
		}
	}

	game, err := app.NewGame(config.ScreenWidth, config.ScreenHeight-config.TowerMenuHeight)
	if err != nil {
		log.Fatalf("create game: %v", err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Body Defense")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// --- Загрузка шрифта ---
	var fontChars []rune
	for i := 32; i <= 127; i++ {
		fontChars = append(fontChars, rune(i))
	}
	for i := 0x0400; i <= 0x04FF; i++ {
		fontChars = append(fontChars, rune(i))
	}
	font := rl.LoadFontFromMemory(".ttf", goregular.TTF, 64, fontChars)
	defer rl.UnloadFont(font)

	runner := loop.NewRunner[app.Snapshot](game)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner.Start(ctx)
	defer runner.Stop()

	v := newViewer(game, runner, font)
	for !rl.WindowShouldClose() {
		v.handleInput()
		v.draw()
	}
}

func newViewer(game *app.Game, runner *loop.Runner[app.Snapshot], font rl.Font) *viewer {
	s := runner.Latest()
	v := &viewer{
		game:      game,
		runner:    runner,
		font:      font,
		speed:     ui.NewSpeedButtonRL(config.ScreenWidth-140, 40, 14, speedColors()),
		pause:     ui.NewPauseButtonRL(config.ScreenWidth-80, 40, 12, config.PlayingColor, config.ButtonColor),
		indicator: ui.NewStateIndicatorRL(config.ScreenWidth-30, 40, 12),
		health:    ui.NewPlayerHealthIndicator(20, 40),
		wave:      ui.NewWaveIndicator(config.ScreenWidth/2, 10, 40),
	}
	for _, b := range hud.TowerMenuLayout(s.Width, s.Height, config.TowerMenuHeight) {
		def := defs.TowerLibrary[b.Type]
		btn := ui.NewButton(rl.NewRectangle(float32(b.Rect.MinX), float32(b.Rect.MinY), float32(b.Rect.Width()), float32(b.Rect.Height())), def.Name, font)
		btn.Caption = "цена " + itoa(def.Cost)
		v.menu = append(v.menu, btn)
	}
	return v
}

func speedColors() []rl.Color {
	colors := make([]rl.Color, len(config.SpeedButtonColors))
	for i, c := range config.SpeedButtonColors {
		colors[i] = ui.ColorToRL(c)
	}
	return colors
}

func (v *viewer) handleInput() {
	s := v.runner.Latest()
	mouse := rl.GetMousePosition()

	switch {
	case rl.IsKeyPressed(rl.KeySpace) && s.Phase == component.MenuPhase:
		v.runner.Do(func() { v.game.StartGame() })
	case rl.IsKeyPressed(rl.KeyR) && s.Phase == component.GameOverPhase:
		v.runner.Do(func() { v.game.Restart() })
	case rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9):
		v.runner.Do(func() { v.game.TogglePause() })
	case rl.IsKeyPressed(rl.KeyS):
		v.runner.Do(func() { v.game.CycleSpeed() })
	}
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if i < len(defs.TowerTypes) && rl.IsKeyPressed(key) {
			t := defs.TowerTypes[i]
			v.runner.Do(func() { v.game.SelectTowerType(t) })
		}
	}

	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	if s.Phase == component.MenuPhase {
		v.runner.Do(func() { v.game.StartGame() })
		return
	}
	if v.speed.IsClicked(mouse) {
		v.runner.Do(func() { v.game.CycleSpeed() })
		return
	}
	if v.pause.IsClicked(mouse) {
		v.runner.Do(func() { v.game.TogglePause() })
		return
	}
	for i, b := range v.menu {
		if b.Contains(mouse) {
			t := defs.TowerTypes[i]
			v.runner.Do(func() { v.game.SelectTowerType(t) })
			return
		}
	}
	if float64(mouse.Y) < s.Height {
		x, y := float64(mouse.X), float64(mouse.Y)
		v.runner.Do(func() { v.game.HandleGameAreaTap(x, y) })
	}
}

func (v *viewer) draw() {
	s := v.runner.Latest()
	mouse := rl.GetMousePosition()

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))

	drawPath(s)
	for _, slot := range s.Slots {
		if slot.Seeded && !slot.Occupied {
			rl.DrawCircleLines(int32(slot.X), int32(slot.Y), config.TowerRadius, ui.ColorToRL(config.SlotColor))
		}
	}
	for _, t := range s.Towers {
		center := vec(t.X, t.Y)
		if rl.CheckCollisionPointCircle(mouse, center, t.Radius) {
			rl.DrawCircleV(center, float32(t.Range), ui.ColorToRL(config.RangeColor))
		}
		rl.DrawCircleV(center, t.Radius, ui.ColorToRL(t.Color))
		rl.DrawCircleLines(int32(t.X), int32(t.Y), t.Radius, ui.ColorToRL(hud.DarkenColor(t.Color)))
		for i := 0; i < t.Level; i++ {
			rl.DrawCircleV(vec(t.X-float64(t.Level-1)*4.5+float64(i)*9, t.Y+float64(t.Radius)+6), 3, ui.ColorToRL(config.SelectedColor))
		}
	}
	for _, e := range s.Enemies {
		if e.Status != component.EnemyAlive {
			continue
		}
		body := hud.MixColor(e.Color, config.DamageFlashColor, e.Flash)
		rl.DrawCircleV(vec(e.X, e.Y), e.Radius, ui.ColorToRL(body))
		if e.MaxHealth > 0 && e.Health < e.MaxHealth {
			w := e.Radius * 2
			x, y := float32(e.X)-e.Radius, float32(e.Y)-e.Radius-8
			rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w, 4), ui.ColorToRL(config.HealthBackColor))
			rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w*float32(e.Health/e.MaxHealth), 4), ui.ColorToRL(config.HealthBarColor))
		}
	}
	for _, p := range s.Projectiles {
		rl.DrawCircleV(vec(p.X, p.Y), p.Radius, ui.ColorToRL(p.Color))
	}

	v.drawUI(s, mouse)
}

func drawPath(s *app.Snapshot) {
	for i := 1; i < len(s.Path); i++ {
		a, b := s.Path[i-1], s.Path[i]
		rl.DrawLineEx(vec(a.X, a.Y), vec(b.X, b.Y), config.PathWidth*2, ui.ColorToRL(config.PathColor))
	}
	for _, p := range s.Path {
		// Круги на стыках закрывают щели между толстыми отрезками
		rl.DrawCircleV(vec(p.X, p.Y), config.PathWidth, ui.ColorToRL(config.PathColor))
	}
}

func (v *viewer) drawUI(s *app.Snapshot, mouse rl.Vector2) {
	rl.DrawRectangle(0, int32(s.Height), int32(s.Width), config.TowerMenuHeight, ui.ColorToRL(config.MenuColor))
	for i, b := range v.menu {
		t := defs.TowerTypes[i]
		b.Selected = t == s.SelectedTowerType
		b.Disabled = s.Money < defs.TowerLibrary[t].Cost
		b.Draw(mouse)
	}

	v.speed.SetMultiplier(s.SpeedMultiplier)
	v.speed.Draw()
	v.pause.SetPaused(s.Paused)
	v.pause.Draw()
	stateColor := config.PlayingColor
	if s.Phase == component.GameOverPhase {
		stateColor = config.GameOverColor
	}
	v.indicator.Draw(stateColor)
	v.health.Draw(s.Health, config.InitialHealth)
	v.wave.Draw(s.Wave+1, v.font)

	rl.DrawTextEx(v.font, "Деньги: "+itoa(s.Money)+"   Очки: "+itoa(s.Score), rl.NewVector2(20, 40+v.health.GetHeight()), 22, 1, rl.White)

	switch {
	case s.Phase == component.MenuPhase:
		centered(v.font, "Пробел или клик - начать", 40)
	case s.GameOver:
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(60, 0, 0, 160))
		centered(v.font, "Организм пал. Очки: "+itoa(s.Score)+". R - заново", 40)
	case s.Paused:
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 128))
		centered(v.font, "ПАУЗА", 48)
	}
}

func centered(font rl.Font, text string, size float32) {
	m := rl.MeasureTextEx(font, text, size, 1)
	rl.DrawTextEx(font, text, rl.NewVector2((config.ScreenWidth-m.X)/2, (config.ScreenHeight-m.Y)/2), size, 1, rl.White)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
