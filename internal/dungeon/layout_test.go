package dungeon

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LayoutTestSuite struct {
	suite.Suite
}

func TestLayoutSuite(t *testing.T) {
	suite.Run(t, new(LayoutTestSuite))
}

func (s *LayoutTestSuite) TestTiers() {
	testCases := []struct {
		name    string
		size    SizeTier
		shape   Shape
		width   int
		height  int
		root    Rect
		maxLeaf int
		maxMove int
		odds    int
	}{
		{"tiny square", SizeTiny, ShapeSquare, 25, 25, Rect{5, 5, 15, 15}, 12, 5, 2},
		{"small square", SizeSmall, ShapeSquare, 35, 35, Rect{5, 5, 25, 25}, 16, 5, 3},
		{"medium square", SizeMedium, ShapeSquare, 51, 51, Rect{8, 8, 35, 35}, 18, 7, 4},
		{"large square", SizeLarge, ShapeSquare, 70, 70, Rect{10, 10, 50, 50}, 22, 10, 5},
		{"tiny rectangle", SizeTiny, ShapeRectangle, 25, 22, Rect{5, 5, 15, 12}, 12, 5, 2},
		{"small rectangle", SizeSmall, ShapeRectangle, 35, 25, Rect{5, 5, 25, 15}, 16, 5, 3},
		{"medium rectangle", SizeMedium, ShapeRectangle, 51, 36, Rect{8, 8, 35, 20}, 18, 7, 4},
		{"large rectangle", SizeLarge, ShapeRectangle, 70, 50, Rect{10, 10, 50, 30}, 22, 10, 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			l := NewLayout(tc.size, tc.shape, SpreadLeaf)
			s.Equal(tc.width, l.Width)
			s.Equal(tc.height, l.Height)
			s.Equal(tc.root, l.Root)
			s.Equal(MinLeafSize, l.MinLeafSize)
			s.Equal(tc.maxLeaf, l.MaxLeafSize)
			s.Equal(tc.maxMove, l.MaxMove)
			s.Equal(tc.odds, l.OrganicOdds)
		})
	}
}

func (s *LayoutTestSuite) TestDefaults() {
	l := NewLayout(SizeTier("9"), Shape("Hexagon"), RoomSpread("everywhere"))
	s.Equal(SizeSmall, l.Size)
	s.Equal(ShapeSquare, l.Shape)
	s.Equal(SpreadLeaf, l.Spread)
	s.Equal(35, l.Width)

	zero := NewLayout("", "", "")
	s.Equal(Rect{5, 5, 25, 25}, zero.Root)
}

func (s *LayoutTestSuite) TestParse() {
	s.Equal(SizeTiny, ParseSize("tiny"))
	s.Equal(SizeLarge, ParseSize(" 4 "))
	s.Equal(SizeMedium, ParseSize("Medium"))
	s.Equal(DefaultSize, ParseSize("huge"))

	s.Equal(ShapeRectangle, ParseShape("rectangle"))
	s.Equal(ShapeSquare, ParseShape("circle"))

	s.Equal(CorridorDrunkard, ParseCorridorAlgorithm("drunkard"))
	s.Equal(CorridorBSP, ParseCorridorAlgorithm(""))

	s.Equal(SpreadDungeon, ParseRoomSpread("Dungeon"))
	s.Equal(SpreadLeaf, ParseRoomSpread("nope"))
}
