package dungeon

import (
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Rect is an axis aligned rectangle. X and Y are the top left cell.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns width * height
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Bounds returns the half-open cell range the rectangle covers.
func (r Rect) Bounds() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Overlaps reports whether the rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Bounds().Intersect(o.Bounds()).Empty()
}

// Touches reports whether the rectangles are within zero gap of each other
// on both axes. Overlapping rectangles also touch.
func (r Rect) Touches(o Rect) bool {
	if r.X > o.X+o.Width || o.X > r.X+r.Width {
		return false
	}
	return !(r.Y > o.Y+o.Height || o.Y > r.Y+r.Height)
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p gruid.Point) bool {
	return p.In(r.Bounds())
}

// Inset returns the rectangle shrunk by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// Room is a placed room. ID is its placement order and never changes; Leaf
// is the index of the terminal leaf that produced it.
type Room struct {
	ID   int  `json:"id"`
	Leaf int  `json:"leaf"`
	Rect Rect `json:"rect"`
}

// Area returns the room's cell count
func (r Room) Area() int {
	return r.Rect.Area()
}

// Corridor is one straight corridor segment.
type Corridor struct {
	Rect Rect `json:"rect"`
}

// Tile is a classified grid cell.
type Tile int

// Room tiles. Edge and corner codes name the walls the cell borders.
const (
	TileEmpty Tile = iota
	TileRoom
	TileRoomLeft
	TileRoomRight
	TileRoomBottom
	TileRoomTop
	TileRoomTopLeft
	TileRoomTopRight
	TileRoomBottomLeft
	TileRoomBottomRight
)

// Corridor tiles.
const (
	TileCorridorVertical Tile = iota + 10
	TileCorridorHorizontal
	TileCorridorDoubleVerticalLeft
	TileCorridorDoubleVerticalRight
	TileCorridorDoubleHorizontalTop
	TileCorridorDoubleHorizontalBottom
	TileCorridorTopLeft
	TileCorridorTopRight
	TileCorridorBottomLeft
	TileCorridorBottomRight
	TileCorridorCrossroads
	TileCorridorNotLeft
	TileCorridorNotRight
	TileCorridorNotUp
	TileCorridorNotDown
	TileCorridorUndefined
)

// IsRoom reports whether t is one of the room codes.
func (t Tile) IsRoom() bool {
	return t >= TileRoom && t <= TileRoomBottomRight
}

// IsCorridor reports whether t is a corridor code, including undefined.
func (t Tile) IsCorridor() bool {
	return t >= TileCorridorVertical && t <= TileCorridorUndefined
}

// SizeTier selects the overall dungeon dimensions.
type SizeTier string

const (
	SizeTiny   SizeTier = "1"
	SizeSmall  SizeTier = "2"
	SizeMedium SizeTier = "3"
	SizeLarge  SizeTier = "4"
)

// DefaultSize is used for unrecognized tiers
const DefaultSize = SizeSmall

// ParseSize accepts "1".."4" or tiny/small/medium/large. Anything else is
// DefaultSize.
func ParseSize(s string) SizeTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "tiny":
		return SizeTiny
	case "2", "small":
		return SizeSmall
	case "3", "medium":
		return SizeMedium
	case "4", "large":
		return SizeLarge
	default:
		return DefaultSize
	}
}

// Shape selects square or wide dungeons.
type Shape string

const (
	ShapeSquare    Shape = "Square"
	ShapeRectangle Shape = "Rectangle"
)

// ParseShape defaults to ShapeSquare.
func ParseShape(s string) Shape {
	if strings.EqualFold(strings.TrimSpace(s), string(ShapeRectangle)) {
		return ShapeRectangle
	}
	return ShapeSquare
}

// CorridorAlgorithm selects the corridor carving strategy.
type CorridorAlgorithm string

const (
	CorridorBSP      CorridorAlgorithm = "BSP"
	CorridorDrunkard CorridorAlgorithm = "Drunkard"
)

// ParseCorridorAlgorithm defaults to CorridorBSP.
func ParseCorridorAlgorithm(s string) CorridorAlgorithm {
	if strings.EqualFold(strings.TrimSpace(s), string(CorridorDrunkard)) {
		return CorridorDrunkard
	}
	return CorridorBSP
}

// RoomSpread bounds how far a jittered room may travel.
type RoomSpread string

const (
	// SpreadLeaf keeps rooms inside their leaf's one cell margin.
	SpreadLeaf RoomSpread = "leaf"
	// SpreadDungeon only keeps rooms inside the dungeon border, which lets
	// siblings collide.
	SpreadDungeon RoomSpread = "dungeon"
)

// ParseRoomSpread defaults to SpreadLeaf.
func ParseRoomSpread(s string) RoomSpread {
	if strings.EqualFold(strings.TrimSpace(s), string(SpreadDungeon)) {
		return SpreadDungeon
	}
	return SpreadLeaf
}
