package rng

import "fmt"

// Scripted replays a fixed list of draws. IntN consumes the next int
// (reduced mod n) and NormFloat64 the next float. Exhausted lists yield 0.
// It exists for tests that need to steer a specific branch.
type Scripted struct {
	ints  []int
	norms []float64
}

// NewScripted returns a source replaying ints and norms in order
func NewScripted(ints []int, norms []float64) *Scripted {
	return &Scripted{ints: ints, norms: norms}
}

func (s *Scripted) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *Scripted) NormFloat64() float64 {
	if len(s.norms) == 0 {
		return 0
	}
	v := s.norms[0]
	s.norms = s.norms[1:]
	return v
}

func (s *Scripted) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	return s.IntN(size) + 1, nil
}

func (s *Scripted) RollN(count, size int) ([]int, error) {
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Remaining reports how many int draws are left
func (s *Scripted) Remaining() int {
	return len(s.ints)
}
