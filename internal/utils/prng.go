// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-body-defense/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом в симуляции.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор типа врага из таблицы появления.
// Сумма весов делится на отрезки, случайное число попадает в один из них.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) defs.EnemyType {
	if len(entries) == 0 {
		return defs.EnemyNormal
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].EnemyID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.EnemyID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].EnemyID
}

// Composition собирает состав волны: count выборов из таблицы entries.
func (s *PRNGService) Composition(entries []defs.SpawnEntry, count int) []defs.EnemyType {
	out := make([]defs.EnemyType, count)
	for i := range out {
		out[i] = s.ChooseWeighted(entries)
	}
	return out
}
