package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (s *RNGTestSuite) TestSameSeedSameSequence() {
	a := rng.New(1234)
	b := rng.New(1234)

	for i := 0; i < 50; i++ {
		s.Equal(a.IntN(1000), b.IntN(1000))
		s.Equal(a.NormFloat64(), b.NormFloat64())
	}
	s.Equal(int64(1234), a.Seed())
}

func (s *RNGTestSuite) TestRoll() {
	src := rng.New(7)

	for i := 0; i < 200; i++ {
		v, err := src.Roll(100)
		s.Require().NoError(err)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 100)
	}

	_, err := src.Roll(0)
	s.Error(err)

	rolls, err := src.RollN(3, 6)
	s.Require().NoError(err)
	s.Len(rolls, 3)
}

func (s *RNGTestSuite) TestBetween() {
	src := rng.New(99)

	s.Run("closed interval", func() {
		seen := map[int]bool{}
		for i := 0; i < 500; i++ {
			v := rng.Between(src, 3, 6)
			s.GreaterOrEqual(v, 3)
			s.LessOrEqual(v, 6)
			seen[v] = true
		}
		s.Len(seen, 4)
	})

	s.Run("collapsed interval", func() {
		s.Equal(5, rng.Between(src, 5, 5))
	})
}

func (s *RNGTestSuite) TestScripted() {
	src := rng.NewScripted([]int{7, -1}, []float64{0.5})

	s.Equal(1, src.IntN(3))
	s.Equal(2, src.IntN(3))
	s.Equal(0, src.IntN(3))
	s.Equal(0.5, src.NormFloat64())
	s.Equal(0.0, src.NormFloat64())
	s.Equal(0, src.Remaining())
}

func (s *RNGTestSuite) TestResolve() {
	s.Equal(int64(42), rng.Resolve(rng.FixedSeeder{Value: 7}, 42, rng.MaxDungeonSeed))
	s.Equal(int64(7), rng.Resolve(rng.FixedSeeder{Value: 7}, 0, rng.MaxDungeonSeed))
	s.Equal(rng.MaxPopulationSeed, rng.Resolve(rng.FixedSeeder{Value: 123456}, 0, rng.MaxPopulationSeed))

	seeder := rng.NewSeeder()
	for i := 0; i < 100; i++ {
		v := seeder.Seed(rng.MaxPopulationSeed)
		s.GreaterOrEqual(v, int64(1))
		s.LessOrEqual(v, rng.MaxPopulationSeed)
	}
}
