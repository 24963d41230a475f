// cmd/game_tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-body-defense/internal/app"
	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/loop"
	"go-body-defense/pkg/termrender"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit")

// ui — состояние терминального клиента. Живёт только в горутине ввода/отрисовки.
type ui struct {
	screen  tcell.Screen
	game    *app.Game
	runner  *loop.Runner[app.Snapshot]
	col     int
	row     int
	buttons tcell.ButtonMask
}

func main() {
	defsDir := flag.String("defs", "", "directory with towers.json / enemies.json overrides")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// Терминал занят под игру, логи уходят в файл или никуда
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
		config.Verbose = true
	} else {
		log.SetOutput(io.Discard)
	}

	if *defsDir != "" {
		if err := defs.LoadDir(*defsDir); err != nil {
			log.Fatalf("load definitions: %v", err)
		}
	}

	game, err := app.NewGame(config.ScreenWidth, config.ScreenHeight-config.TowerMenuHeight)
	if err != nil {
		log.Fatalf("create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	err = run(screen, game)
	screen.Fini()
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, game *app.Game) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := loop.NewRunner[app.Snapshot](game)
	cols, rows := screen.Size()
	u := &ui{screen: screen, game: game, runner: runner, col: cols / 2, row: rows / 2}

	g, ctx := errgroup.WithContext(ctx)
	runner.Start(ctx)

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	g.Go(func() error {
		<-ctx.Done()
		close(quit)
		runner.Stop()
		return nil
	})
	g.Go(func() error {
		return u.loop(ctx, events)
	})
	return g.Wait()
}

func (u *ui) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := u.handle(ev); err != nil {
				return err
			}
		case <-ticker.C:
			termrender.Draw(u.screen, u.runner.Latest(), u.col, u.row)
		}
	}
}

func (u *ui) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
		u.buttons = ev.Buttons()
		u.col, u.row = ev.Position()
		if pressed {
			u.activate()
		}
	case *tcell.EventKey:
		return u.handleKey(ev)
	}
	return nil
}

func (u *ui) handleKey(ev *tcell.EventKey) error {
	cols, rows := u.screen.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return errQuit
	case tcell.KeyUp:
		u.row = max(0, u.row-1)
	case tcell.KeyDown:
		u.row = min(rows-1, u.row+1)
	case tcell.KeyLeft:
		u.col = max(0, u.col-1)
	case tcell.KeyRight:
		u.col = min(cols-1, u.col+1)
	case tcell.KeyEnter:
		u.activate()
	case tcell.KeyRune:
		return u.handleRune(ev.Rune())
	}
	return nil
}

func (u *ui) handleRune(r rune) error {
	switch r {
	case 'q':
		return errQuit
	case ' ':
		if u.runner.Latest().Phase == component.MenuPhase {
			u.runner.Do(func() { u.game.StartGame() })
		} else {
			u.activate()
		}
	case 'p':
		u.runner.Do(func() { u.game.TogglePause() })
	case 's':
		u.runner.Do(func() { u.game.CycleSpeed() })
	case 'r':
		u.runner.Do(func() {
			if u.game.Phase() == component.GameOverPhase {
				u.game.Restart()
			}
		})
	case '1', '2', '3':
		i := int(r - '1')
		if i < len(defs.TowerTypes) {
			u.runner.Do(func() { u.game.SelectTowerType(defs.TowerTypes[i]) })
		}
	}
	return nil
}

// activate — тап в клетке курсора.
func (u *ui) activate() {
	s := u.runner.Latest()
	cols, rows := u.screen.Size()
	p, ok := termrender.NewViewport(cols, rows, s.Width, s.Height).ToWorld(u.col, u.row)
	if !ok {
		return
	}
	u.runner.Do(func() { u.game.HandleGameAreaTap(p.X, p.Y) })
}
