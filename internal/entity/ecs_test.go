package entity

import (
	"testing"

	"go-body-defense/internal/component"
	"go-body-defense/internal/config"
	"go-body-defense/internal/types"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	prev := ecs.NewEntity()
	if prev == 0 {
		t.Fatal("entity ID 0 is reserved for none")
	}
	for i := 0; i < 10; i++ {
		id := ecs.NewEntity()
		if id <= prev {
			t.Fatalf("NewEntity() = %d after %d", id, prev)
		}
		prev = id
	}
}

func TestResetClearsTables(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Towers[id] = &component.Tower{}
	ecs.Projectiles[id] = &component.Projectile{}
	ecs.GameState.Money = 1
	ecs.GameState.Phase = component.GameOverPhase
	ecs.Wave = &component.Wave{Number: 4}

	ecs.Reset()

	if len(ecs.Enemies)+len(ecs.Towers)+len(ecs.Projectiles) != 0 {
		t.Error("Reset left entities behind")
	}
	if ecs.Wave != nil {
		t.Error("Reset left the wave behind")
	}
	if ecs.GameState.Money != config.InitialMoney || ecs.GameState.Health != config.InitialHealth {
		t.Errorf("GameState after Reset = %+v", ecs.GameState)
	}
	if next := ecs.NewEntity(); next <= id {
		t.Errorf("IDs must keep growing across Reset: %d <= %d", next, id)
	}
}

func TestRemoveEntity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Healths[id] = &component.Health{}
	ecs.RemoveEntity(id)
	if _, ok := ecs.Positions[id]; ok {
		t.Error("position survived RemoveEntity")
	}
	if _, ok := ecs.Enemies[id]; ok {
		t.Error("enemy survived RemoveEntity")
	}
}

func TestSortedIDs(t *testing.T) {
	table := map[types.EntityID]*component.Enemy{7: {}, 2: {}, 5: {}}
	got := SortedIDs(table)
	want := []types.EntityID{2, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedIDs = %v, want %v", got, want)
		}
	}
}
