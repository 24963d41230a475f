package system

import (
	"testing"

	"go-body-defense/internal/component"
	"go-body-defense/internal/defs"
	"go-body-defense/internal/entity"
	"go-body-defense/internal/event"
	"go-body-defense/internal/types"
	"go-body-defense/pkg/gamemap"
	"go-body-defense/pkg/geom"
)

type testGame struct {
	path *gamemap.Path
}

func (g *testGame) GetPath() *gamemap.Path { return g.path }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs        *entity.ECS
	game       *testGame
	dispatcher *event.Dispatcher
	rec        *recorder
}

// newWorld строит мир с прямым путём от (-100,0) до (100,0).
func newWorld(t *testing.T) *world {
	t.Helper()
	path, err := gamemap.NewPath([]geom.Point{geom.Pt(-100, 0), geom.Pt(100, 0)})
	if err != nil {
		t.Fatal(err)
	}
	w := &world{
		ecs:        entity.NewECS(),
		game:       &testGame{path: path},
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
	}
	w.ecs.GameState.Phase = component.PlayingPhase
	w.dispatcher.SubscribeAll(w.rec,
		event.EnemyKilled, event.EnemyBreached, event.WaveStarted, event.WaveEnded, event.GameOver)
	return w
}

func (w *world) addEnemy(progress, health float64) types.EntityID {
	id := w.ecs.NewEntity()
	p := w.game.path.PositionAt(progress)
	w.ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{
		Type:       defs.EnemyNormal,
		Progress:   progress,
		Speed:      80,
		Reward:     10,
		BreachCost: 10,
		Status:     component.EnemyAlive,
	}
	return id
}

func (w *world) addTower(x, y float64, towerType defs.TowerType) types.EntityID {
	def := defs.TowerLibrary[towerType]
	stats := def.StatsAt(1)
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Towers[id] = &component.Tower{Type: towerType, Level: 1}
	w.ecs.Combats[id] = &component.Combat{
		Damage:          stats.Damage,
		FireRate:        stats.AttackSpeed,
		Range:           stats.Range,
		ProjectileSpeed: def.Projectile.Speed,
		Homing:          def.Projectile.Homing,
	}
	return id
}
