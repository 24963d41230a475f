package component

import "go-body-defense/internal/defs"

// Phase — фаза игры: меню, идёт игра, конец игры.
type Phase int

const (
	MenuPhase Phase = iota
	PlayingPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case MenuPhase:
		return "Menu"
	case PlayingPhase:
		return "Playing"
	case GameOverPhase:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase             Phase
	Health            int // Жизни игрока
	Money             int
	Score             int
	CurrentWave       int // Номер текущей волны, с нуля
	SelectedTowerType defs.TowerType
	GameOver          bool
}
