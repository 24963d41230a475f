// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var defaultData embed.FS

const (
	towersFile  = "towers.json"
	enemiesFile = "enemies.json"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[TowerType]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[EnemyType]EnemyDefinition

func init() {
	// Встроенные таблицы доступны сразу, без вызова Load.
	if err := LoadDefaults(); err != nil {
		panic(err)
	}
}

// LoadDefaults populates both libraries from the embedded JSON tables.
func LoadDefaults() error {
	towers, err := defaultData.ReadFile("data/" + towersFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded tower definitions: %w", err)
	}
	if err := parseTowerDefinitions(towers); err != nil {
		return err
	}
	enemies, err := defaultData.ReadFile("data/" + enemiesFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded enemy definitions: %w", err)
	}
	return parseEnemyDefinitions(enemies)
}

// LoadDir overrides the libraries with towers.json and enemies.json from dir.
// A missing file keeps the current table.
func LoadDir(dir string) error {
	if err := LoadTowerDefinitions(filepath.Join(dir, towersFile)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := LoadEnemyDefinitions(filepath.Join(dir, enemiesFile)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadTowerDefinitions reads the tower configuration file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	return parseTowerDefinitions(file)
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return parseEnemyDefinitions(file)
}

func parseTowerDefinitions(data []byte) error {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	library := make(map[TowerType]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		if !def.ID.Valid() {
			return fmt.Errorf("unknown tower type %q", def.ID)
		}
		if def.AttackSpeed <= 0 || def.MaxLevel < 1 {
			return fmt.Errorf("tower %s: attack_speed and max_level must be positive", def.ID)
		}
		library[def.ID] = def
	}
	TowerLibrary = library

	log.Printf("Loaded %d tower definitions", len(TowerLibrary))
	return nil
}

func parseEnemyDefinitions(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyType]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		library[def.ID] = def
	}
	EnemyLibrary = library

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}
