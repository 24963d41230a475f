// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth     = 1200
	ScreenHeight    = 900
	TowerMenuHeight = 150 // Нижняя полоса с меню башен, не входит в игровую область

	PathWidth         = 30.0 // Ширина дороги; ближе к кривой строить нельзя
	MinTowerDistance  = 80.0 // Минимум между башнями, он же отступ от краёв экрана
	PathSegmentSteps  = 32   // Отсчётов таблицы длин на один кубический сегмент
	NearPathSamples   = 100  // Интервалов проверки близости к пути (101 точка)
	SlotSnapRadius    = 40.0 // Тап ближе этого к свободному слоту ставит башню в слот
	TowerTapRadius    = 30.0 // Тап ближе этого к башне означает улучшение
	EnemyRadius       = 14.0
	TowerRadius       = 20.0
	ProjectileRadius  = 5.0
	HitRadius         = EnemyRadius + ProjectileRadius
	ProjectileMaxLife = 3.0 // секунд

	ProjectileTravelFactor = 1.5 // Максимальная дальность полёта в долях радиуса башни

	InitialHealth  = 100
	InitialMoney   = 250
	ScorePerReward = 10

	EnemiesPerWave          = 5
	EnemiesIncrementPerWave = 2
	InitialSpawnInterval    = 1.0  // секунд
	MinSpawnInterval        = 0.3  // секунд
	SpawnIntervalDecrement  = 0.05 // секунд за волну
	FirstWaveDelay          = 2.0  // секунд
	WaveBreakDuration       = 3.0  // секунд
	WaveSeedBase            = 7919

	EnemyHealthGrowth = 0.25 // +25% здоровья за волну
	EnemySpeedGrowth  = 0.05 // +5% скорости за волну
	EnemySpeedCap     = 2.0  // но не больше чем вдвое
	EnemyRewardGrowth = 0.10

	DamageFlashDuration = 0.12

	TicksPerSecond = 60
	MaxDeltaTime   = 0.06
	MaxSpeedFactor = 4 // x1, x2, x4
)

// Verbose включает логирование отклонённых команд ввода.
var Verbose = false

var (
	BackgroundColor   = color.RGBA{26, 42, 108, 255}
	PathColor         = color.RGBA{100, 100, 100, 200}
	PathGlowColor     = color.RGBA{255, 255, 255, 50}
	SlotColor         = color.RGBA{200, 200, 200, 90}
	RangeColor        = color.RGBA{255, 255, 255, 40}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	MenuColor         = color.RGBA{15, 32, 39, 255}
	ButtonColor       = color.RGBA{76, 175, 80, 255}
	SelectedColor     = color.RGBA{253, 187, 45, 255}
	HealthBarColor    = color.RGBA{50, 205, 50, 255}
	HealthBackColor   = color.RGBA{120, 20, 20, 255}
	DamageFlashColor  = color.RGBA{255, 255, 255, 255}
	PlayingColor      = color.RGBA{70, 130, 180, 220}
	GameOverColor     = color.RGBA{220, 60, 60, 220}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
