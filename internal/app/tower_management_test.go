package app

import (
	"errors"
	"testing"

	"go-body-defense/internal/config"
	"go-body-defense/internal/defs"
	"go-body-defense/pkg/geom"
)

func TestPlaceTower(t *testing.T) {
	g := newPlayingGame(t)
	cost := defs.TowerLibrary[defs.TowerBasic].Cost
	slots := len(g.Map.Slots)

	id, err := g.TryPlaceTower(freeSpot.X, freeSpot.Y)
	if err != nil {
		t.Fatalf("TryPlaceTower: %v", err)
	}
	if g.ECS.GameState.Money != config.InitialMoney-cost {
		t.Errorf("money = %d, want %d", g.ECS.GameState.Money, config.InitialMoney-cost)
	}
	if tower := g.ECS.Towers[id]; tower == nil || tower.Level != 1 || tower.Type != defs.TowerBasic {
		t.Errorf("tower = %+v", tower)
	}
	if len(g.Map.Slots) != slots+1 {
		t.Error("built tower must join the placement set")
	}
	if g.Stats().TowersBuilt != 1 {
		t.Errorf("TowersBuilt = %d", g.Stats().TowersBuilt)
	}

	// Рядом с построенной башней ставить нельзя
	if _, err := g.TryPlaceTower(freeSpot.X+20, freeSpot.Y); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("placement next to a tower: %v, want ErrInvalidPlacement", err)
	}
}

func TestPlaceTowerOnPathRejected(t *testing.T) {
	g := newPlayingGame(t)
	wp := g.Map.Path.Waypoints()[3]
	money := g.ECS.GameState.Money
	if g.PlaceTower(wp.X, wp.Y) {
		t.Fatal("tower placed on the path")
	}
	if g.ECS.GameState.Money != money || len(g.ECS.Towers) != 0 {
		t.Error("rejected placement changed state")
	}
}

func TestInsufficientFundsLeavesStateUnchanged(t *testing.T) {
	g := newPlayingGame(t)
	g.ECS.GameState.Money = 50
	slots := len(g.Map.Slots)

	_, err := g.TryPlaceTower(freeSpot.X, freeSpot.Y)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if _, err := g.TryPlaceInSlot(0); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("slot placement err = %v, want ErrInsufficientFunds", err)
	}
	if g.ECS.GameState.Money != 50 || len(g.ECS.Towers) != 0 || len(g.Map.Slots) != slots || g.Map.Slots[0].Occupied {
		t.Error("rejected purchase changed state")
	}
}

func TestUpgradeTower(t *testing.T) {
	g := newPlayingGame(t)
	g.ECS.GameState.Money = 1000
	def := defs.TowerLibrary[defs.TowerBasic]
	id, err := g.TryPlaceTower(freeSpot.X, freeSpot.Y)
	if err != nil {
		t.Fatal(err)
	}

	money := g.ECS.GameState.Money
	if !g.UpgradeTower(id) {
		t.Fatal("first upgrade failed")
	}
	if !g.UpgradeTower(id) {
		t.Fatal("second upgrade failed")
	}
	if spent := money - g.ECS.GameState.Money; spent != def.UpgradeCostAt(1)+def.UpgradeCostAt(2) {
		t.Errorf("upgrades cost %d", spent)
	}
	tower := g.ECS.Towers[id]
	if tower.Level != def.MaxLevel {
		t.Fatalf("level = %d, want %d", tower.Level, def.MaxLevel)
	}
	want := def.StatsAt(def.MaxLevel)
	combat := g.ECS.Combats[id]
	if combat.Damage != want.Damage || combat.Range != want.Range || combat.FireRate != want.AttackSpeed {
		t.Errorf("combat = %+v, want %+v", combat, want)
	}

	money = g.ECS.GameState.Money
	if err := g.TryUpgradeTower(id); !errors.Is(err, ErrMaxLevel) {
		t.Errorf("err = %v, want ErrMaxLevel", err)
	}
	if g.ECS.GameState.Money != money {
		t.Error("rejected upgrade charged money")
	}
	if err := g.TryUpgradeTower(9999); !errors.Is(err, ErrNoTower) {
		t.Errorf("err = %v, want ErrNoTower", err)
	}
}

func TestUpgradeInsufficientFunds(t *testing.T) {
	g := newPlayingGame(t)
	id, err := g.TryPlaceTower(freeSpot.X, freeSpot.Y)
	if err != nil {
		t.Fatal(err)
	}
	g.ECS.GameState.Money = 10
	if err := g.TryUpgradeTower(id); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if g.ECS.Towers[id].Level != 1 || g.ECS.GameState.Money != 10 {
		t.Error("rejected upgrade changed state")
	}
}

func TestSelectTowerType(t *testing.T) {
	g := newPlayingGame(t)
	if g.ECS.GameState.SelectedTowerType != defs.TowerBasic {
		t.Errorf("default selection = %s", g.ECS.GameState.SelectedTowerType)
	}
	if !g.SelectTowerType(defs.TowerSniper) || g.ECS.GameState.SelectedTowerType != defs.TowerSniper {
		t.Error("SelectTowerType(SNIPER) failed")
	}
	if g.SelectTowerType("LASER") || g.ECS.GameState.SelectedTowerType != defs.TowerSniper {
		t.Error("unknown type must be ignored")
	}
	id, err := g.TryPlaceTower(freeSpot.X, freeSpot.Y)
	if err != nil {
		t.Fatal(err)
	}
	if g.ECS.Towers[id].Type != defs.TowerSniper {
		t.Errorf("placed %s, want SNIPER", g.ECS.Towers[id].Type)
	}
}

func TestHandleGameAreaTap(t *testing.T) {
	g := newPlayingGame(t)
	g.ECS.GameState.Money = 1000
	slot := g.Map.Slots[0].Pos

	// Тап рядом со слотом ставит башню ровно в слот
	if !g.HandleGameAreaTap(slot.X+5, slot.Y+5) {
		t.Fatal("tap near a free slot did not build")
	}
	if len(g.ECS.Towers) != 1 || !g.Map.Slots[0].Occupied {
		t.Fatal("slot not occupied")
	}
	var id = g.TowerAt(slot.X, slot.Y)
	if pos := g.ECS.Positions[id]; geom.Distance(pos.Point(), slot) > 1e-9 {
		t.Errorf("tower at %v, want snapped to %v", pos, slot)
	}

	// Повторный тап по башне улучшает её
	if !g.HandleGameAreaTap(slot.X, slot.Y+3) {
		t.Fatal("tap on a tower did not upgrade")
	}
	if g.ECS.Towers[id].Level != 2 || len(g.ECS.Towers) != 1 {
		t.Errorf("level = %d, towers = %d", g.ECS.Towers[id].Level, len(g.ECS.Towers))
	}

	// Свободная точка вдали от слотов
	if !g.HandleGameAreaTap(freeSpot.X, freeSpot.Y) {
		t.Error("tap on a free spot did not build")
	}

	// На пути ничего не строится
	wp := g.Map.Path.Waypoints()[6]
	if g.HandleGameAreaTap(wp.X, wp.Y) {
		t.Error("tap on the path built a tower")
	}
	if err := g.TryGameAreaTap(wp.X, wp.Y); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("err = %v, want ErrInvalidPlacement", err)
	}
}
