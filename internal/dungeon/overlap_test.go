package dungeon

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type OverlapTestSuite struct {
	suite.Suite
}

func TestOverlapSuite(t *testing.T) {
	suite.Run(t, new(OverlapTestSuite))
}

func rooms(rects ...Rect) []Room {
	out := make([]Room, len(rects))
	for i, r := range rects {
		out[i] = Room{ID: i, Leaf: i, Rect: r}
	}
	return out
}

func (s *OverlapTestSuite) TestRectPredicates() {
	a := Rect{X: 0, Y: 0, Width: 5, Height: 5}

	s.True(a.Overlaps(Rect{X: 4, Y: 4, Width: 2, Height: 2}))
	s.False(a.Overlaps(Rect{X: 5, Y: 0, Width: 2, Height: 2}), "half open on x")
	s.False(a.Overlaps(Rect{X: 0, Y: 5, Width: 2, Height: 2}), "half open on y")

	s.True(a.Touches(Rect{X: 5, Y: 0, Width: 2, Height: 2}))
	s.True(a.Touches(Rect{X: 5, Y: 5, Width: 2, Height: 2}), "corner contact")
	s.False(a.Touches(Rect{X: 6, Y: 0, Width: 2, Height: 2}))
}

func (s *OverlapTestSuite) TestMergeAndTouching() {
	input := rooms(
		Rect{X: 0, Y: 0, Width: 5, Height: 5},
		Rect{X: 3, Y: 3, Width: 5, Height: 5},
		Rect{X: 4, Y: 4, Width: 2, Height: 2},
		Rect{X: 5, Y: 0, Width: 3, Height: 3},
	)

	res := ResolveOverlaps(input)

	s.Equal([]Room{input[0], input[3]}, res.Active)
	s.Equal([]Room{input[1], input[2]}, res.Subsumed)
	s.Equal(map[int]int{1: 0, 2: 0}, res.ReplacedBy)
	s.Equal([]int{0, 3}, res.Touching)
}

func (s *OverlapTestSuite) TestChainCollapsesToRoot() {
	input := rooms(
		Rect{X: 0, Y: 0, Width: 4, Height: 4},
		Rect{X: 2, Y: 2, Width: 4, Height: 4},
		Rect{X: 5, Y: 5, Width: 3, Height: 3},
	)

	res := ResolveOverlaps(input)

	s.Equal([]Room{input[0]}, res.Active)
	s.Equal(map[int]int{1: 0, 2: 0}, res.ReplacedBy)
	s.Empty(res.Touching)
}

func (s *OverlapTestSuite) TestDisjointRoomsUntouched() {
	input := rooms(
		Rect{X: 0, Y: 0, Width: 4, Height: 4},
		Rect{X: 10, Y: 10, Width: 4, Height: 4},
	)

	res := ResolveOverlaps(input)

	s.Equal(input, res.Active)
	s.Empty(res.Subsumed)
	s.Empty(res.ReplacedBy)
	s.Empty(res.Touching)
}
