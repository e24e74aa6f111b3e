package dungeon

// MinLeafSize is the smallest leaf dimension a split may produce.
const MinLeafSize = 6

type dimensions struct {
	width, height int
	root          Rect
}

var squareDimensions = map[SizeTier]dimensions{
	SizeTiny:   {25, 25, Rect{X: 5, Y: 5, Width: 15, Height: 15}},
	SizeSmall:  {35, 35, Rect{X: 5, Y: 5, Width: 25, Height: 25}},
	SizeMedium: {51, 51, Rect{X: 8, Y: 8, Width: 35, Height: 35}},
	SizeLarge:  {70, 70, Rect{X: 10, Y: 10, Width: 50, Height: 50}},
}

var rectangleDimensions = map[SizeTier]dimensions{
	SizeTiny:   {25, 22, Rect{X: 5, Y: 5, Width: 15, Height: 12}},
	SizeSmall:  {35, 25, Rect{X: 5, Y: 5, Width: 25, Height: 15}},
	SizeMedium: {51, 36, Rect{X: 8, Y: 8, Width: 35, Height: 20}},
	SizeLarge:  {70, 50, Rect{X: 10, Y: 10, Width: 50, Height: 30}},
}

// Layout holds every size dependent constant of a generation run.
type Layout struct {
	Size   SizeTier   `json:"size"`
	Shape  Shape      `json:"shape"`
	Spread RoomSpread `json:"spread"`

	Width  int  `json:"width"`
	Height int  `json:"height"`
	Root   Rect `json:"root"`

	MinLeafSize int `json:"min_leaf_size"`
	MaxLeafSize int `json:"max_leaf_size"`
	// MaxMove is the largest jitter applied to a room.
	MaxMove int `json:"max_move"`
	// OrganicOdds is k in the 1-in-k chance that a leaf within the
	// maximum still splits.
	OrganicOdds int `json:"organic_odds"`
}

// NewLayout resolves size and shape into concrete dimensions.
func NewLayout(size SizeTier, shape Shape, spread RoomSpread) Layout {
	table := squareDimensions
	if shape == ShapeRectangle {
		table = rectangleDimensions
	} else {
		shape = ShapeSquare
	}

	dims, ok := table[size]
	if !ok {
		size = DefaultSize
		dims = table[size]
	}
	if spread != SpreadDungeon {
		spread = SpreadLeaf
	}

	l := Layout{
		Size:        size,
		Shape:       shape,
		Spread:      spread,
		Width:       dims.width,
		Height:      dims.height,
		Root:        dims.root,
		MinLeafSize: MinLeafSize,
	}

	switch l.Width {
	case 25:
		l.MaxLeafSize = 12
	case 51:
		l.MaxLeafSize = 18
	case 70:
		l.MaxLeafSize = 22
	default:
		l.MaxLeafSize = 16
	}

	switch l.Width {
	case 51:
		l.MaxMove = 7
	case 70:
		l.MaxMove = 10
	default:
		l.MaxMove = 5
	}

	switch l.MaxLeafSize {
	case 12:
		l.OrganicOdds = 2
	case 16:
		l.OrganicOdds = 3
	case 18:
		l.OrganicOdds = 4
	default:
		l.OrganicOdds = 5
	}

	return l
}
