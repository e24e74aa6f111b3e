package dungeon

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

type PlaceTestSuite struct {
	suite.Suite
}

func TestPlaceSuite(t *testing.T) {
	suite.Run(t, new(PlaceTestSuite))
}

func (s *PlaceTestSuite) TestTruncNormal() {
	s.Run("collapsed range returns lower bound without drawing", func() {
		src := rng.NewScripted(nil, []float64{3})
		s.Equal(4, truncNormal(src, 4, 4))
		s.Equal(3.0, src.NormFloat64())
	})

	s.Run("rejects samples outside the range", func() {
		// mean of [4, 10] is 7; 7+5 is rejected, 7-1.5 rounds to even 6
		src := rng.NewScripted(nil, []float64{5, -1.5})
		s.Equal(6, truncNormal(src, 4, 10))
	})

	s.Run("stays in range", func() {
		src := rng.New(11)
		for i := 0; i < 500; i++ {
			v := truncNormal(src, 4, 14)
			s.GreaterOrEqual(v, 4)
			s.LessOrEqual(v, 14)
		}
	})
}

func (s *PlaceTestSuite) TestNoFeasibleMoveIsNoop() {
	layout := Layout{MinLeafSize: 6, MaxMove: 5, Spread: SpreadLeaf}
	leaf := Rect{X: 10, Y: 20, Width: 6, Height: 6}
	// move roll 1 (move), amount 1+4; no direction fits a 4x4 room
	src := rng.NewScripted([]int{1, 4}, nil)

	room := placeRoom(leaf, layout, src)

	s.Equal(Rect{X: 11, Y: 21, Width: 4, Height: 4}, room)
	s.Equal(0, src.Remaining())
}

func (s *PlaceTestSuite) TestMoveUsesFeasibleDirection() {
	layout := Layout{MinLeafSize: 6, MaxMove: 5, Spread: SpreadLeaf}
	leaf := Rect{X: 0, Y: 0, Width: 10, Height: 6}
	// x offset 1, move, amount 1, only "right" fits horizontally
	src := rng.NewScripted([]int{0, 2, 0, 0}, []float64{0})

	room := placeRoom(leaf, layout, src)

	s.Equal(Rect{X: 2, Y: 1, Width: 6, Height: 4}, room)
	s.Equal(0, src.Remaining())
}

func (s *PlaceTestSuite) TestRoomsStayInsideLeafMargin() {
	layout := NewLayout(SizeLarge, ShapeSquare, SpreadLeaf)
	src := rng.New(5)

	for i := 0; i < 300; i++ {
		leaf := Rect{
			X:      rng.Between(src, 0, 20),
			Y:      rng.Between(src, 0, 20),
			Width:  rng.Between(src, layout.MinLeafSize, layout.MaxLeafSize),
			Height: rng.Between(src, layout.MinLeafSize, layout.MaxLeafSize),
		}
		room := placeRoom(leaf, layout, src)
		inner := leaf.Inset(1)

		s.GreaterOrEqual(room.X, inner.X)
		s.GreaterOrEqual(room.Y, inner.Y)
		s.LessOrEqual(room.X+room.Width, inner.X+inner.Width)
		s.LessOrEqual(room.Y+room.Height, inner.Y+inner.Height)
		s.GreaterOrEqual(room.Width, layout.MinLeafSize-2)
		s.GreaterOrEqual(room.Height, layout.MinLeafSize-2)
	}
}

func (s *PlaceTestSuite) TestDungeonSpreadStaysInsideBorder() {
	layout := NewLayout(SizeTiny, ShapeSquare, SpreadDungeon)
	src := rng.New(8)

	for i := 0; i < 300; i++ {
		leaf := Rect{X: 5, Y: 5, Width: 6, Height: 6}
		room := placeRoom(leaf, layout, src)
		s.GreaterOrEqual(room.X, 1)
		s.GreaterOrEqual(room.Y, 1)
		s.Less(room.X+room.Width, layout.Width)
		s.Less(room.Y+room.Height, layout.Height)
	}
}
