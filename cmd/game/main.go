// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-body-defense/internal/app"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	verbose := flag.Bool("v", false, "log rejected input commands")
	defsDir := flag.String("defs", "", "directory with towers.json / enemies.json overrides")
	skipMenu := flag.Bool("skip-menu", false, "start playing right away")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	config.Verbose = *verbose
	if *defsDir != "" {
		if err := defs.LoadDir(*defsDir); err != nil {
			log.Fatalf("load definitions: %v", err)
		}
	}
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	game, err := app.NewGame(config.ScreenWidth, config.ScreenHeight-config.TowerMenuHeight)
	if err != nil {
		log.Fatalf("create game: %v", err)
	}
	fonts, err := state.LoadFonts()
	if err != nil {
		log.Fatalf("load fonts: %v", err)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		game.StartGame()
		sm.SetState(state.NewGameState(sm, game, fonts))
	} else {
		sm.SetState(state.NewMenuState(sm, game, fonts))
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Body Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
