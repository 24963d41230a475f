package system

import (
	"testing"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/event"
	"go-body-defense/internal/types"
)

func (w *world) addProjectile(x, y float64, target types.EntityID, damage float64, homing bool) types.EntityID {
	tp := w.ecs.Positions[target]
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Projectiles[id] = &component.Projectile{
		TargetID:  target,
		StartX:    x,
		StartY:    y,
		AimX:      tp.X,
		AimY:      tp.Y,
		Speed:     600,
		Damage:    damage,
		Homing:    homing,
		MaxTravel: 1000,
	}
	return id
}

func TestProjectileKillsAndRewards(t *testing.T) {
	w := newWorld(t)
	NewStateSystem(w.ecs, w.dispatcher)
	enemy := w.addEnemy(0.5, 10)
	proj := w.addProjectile(0, 20, enemy, 10, false)
	money := w.ecs.GameState.Money

	NewProjectileSystem(w.ecs, w.dispatcher).Update(1.0 / 60)

	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Error("projectile survived a hit")
	}
	if got := w.ecs.Enemies[enemy].Status; got != component.EnemyDead {
		t.Fatalf("enemy status = %v, want Dead", got)
	}
	if got := w.ecs.GameState.Money - money; got != 10 {
		t.Errorf("money gained %d, want exactly the reward 10", got)
	}
	if got := w.ecs.GameState.Score; got != 10*config.ScorePerReward {
		t.Errorf("score = %d", got)
	}
	if w.rec.count(event.EnemyKilled) != 1 {
		t.Errorf("EnemyKilled dispatched %d times", w.rec.count(event.EnemyKilled))
	}

	// Мёртвый враг остаётся до уборки в конце кадра
	if _, ok := w.ecs.Enemies[enemy]; !ok {
		t.Fatal("dead enemy removed mid-frame")
	}
	if n := RemoveFinishedEnemies(w.ecs); n != 1 {
		t.Errorf("RemoveFinishedEnemies = %d, want 1", n)
	}
	if _, ok := w.ecs.Enemies[enemy]; ok {
		t.Error("dead enemy not removed at frame end")
	}
}

func TestProjectileAtDeadTargetMisses(t *testing.T) {
	w := newWorld(t)
	enemy := w.addEnemy(0.5, 10)
	first := w.addProjectile(0, 10, enemy, 10, false)
	second := w.addProjectile(0, 10, enemy, 10, false)

	NewProjectileSystem(w.ecs, w.dispatcher).Update(1.0 / 60)

	// Первый снаряд убивает, второй в том же кадре уходит в промах
	if w.rec.count(event.EnemyKilled) != 1 {
		t.Fatalf("EnemyKilled dispatched %d times, want 1", w.rec.count(event.EnemyKilled))
	}
	if _, ok := w.ecs.Projectiles[first]; ok {
		t.Error("first projectile survived")
	}
	if _, ok := w.ecs.Projectiles[second]; ok {
		t.Error("projectile at a dead target must be removed as a miss")
	}
	if got := w.ecs.Healths[enemy].Value; got != 0 {
		t.Errorf("health = %v, dead enemies take no more damage", got)
	}
}

func TestProjectileMissesMovedTarget(t *testing.T) {
	w := newWorld(t)
	enemy := w.addEnemy(0.5, 30)
	proj := w.addProjectile(0, 100, enemy, 10, false)
	// Цель ушла далеко от точки прицеливания
	w.ecs.Positions[enemy].X = 90

	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
	}
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Error("straight projectile must be removed after reaching its aim point")
	}
	if got := w.ecs.Healths[enemy].Value; got != 30 {
		t.Errorf("health = %v, want 30 after a miss", got)
	}
}

func TestHomingProjectileFollowsTarget(t *testing.T) {
	w := newWorld(t)
	enemy := w.addEnemy(0.5, 30)
	proj := w.addProjectile(0, 100, enemy, 5, true)
	w.ecs.Positions[enemy].X = 90

	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
	}
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Error("homing projectile never hit")
	}
	if got := w.ecs.Healths[enemy].Value; got != 25 {
		t.Errorf("health = %v, want 25", got)
	}
}

func TestProjectileExpires(t *testing.T) {
	w := newWorld(t)
	enemy := w.addEnemy(0.5, 30)
	proj := w.addProjectile(0, 500, enemy, 5, true)
	w.ecs.Projectiles[proj].Speed = 1
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	for elapsed := 0.0; elapsed < config.ProjectileMaxLife+0.1; elapsed += 0.05 {
		ps.Update(0.05)
	}
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Error("projectile outlived its lifetime")
	}
}

func TestProjectileTargetRemoved(t *testing.T) {
	w := newWorld(t)
	enemy := w.addEnemy(0.5, 30)
	proj := w.addProjectile(0, 100, enemy, 5, true)
	w.ecs.RemoveEntity(enemy)
	NewProjectileSystem(w.ecs, w.dispatcher).Update(0.01)
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Error("projectile with a missing target must be dropped")
	}
}
