package rng

import "math/rand/v2"

//go:generate mockgen -destination=mock/mock_seeder.go -package=rngmock github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng Seeder

// Seeder picks seeds for callers that did not supply one
type Seeder interface {
	// Seed returns a value in [1, max].
	Seed(max int64) int64
}

// RandomSeeder draws seeds from the runtime's global generator.
type RandomSeeder struct{}

// NewSeeder returns a seeder backed by the global generator
func NewSeeder() Seeder {
	return &RandomSeeder{}
}

func (RandomSeeder) Seed(max int64) int64 {
	if max < 1 {
		return 1
	}
	return rand.Int64N(max) + 1
}

// FixedSeeder hands out the same seed every time, clamped to max.
type FixedSeeder struct {
	Value int64
}

func (f FixedSeeder) Seed(max int64) int64 {
	if f.Value > max {
		return max
	}
	if f.Value < 1 {
		return 1
	}
	return f.Value
}

// Resolve returns seed unchanged when it is set, otherwise a fresh seed in
// [1, max] from the seeder.
func Resolve(s Seeder, seed, max int64) int64 {
	if seed != 0 {
		return seed
	}
	return s.Seed(max)
}
