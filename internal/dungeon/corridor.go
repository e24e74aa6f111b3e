package dungeon

import (
	"codeberg.org/anaseto/gruid"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// Link records the corridor carved between two rooms.
type Link struct {
	FromRoom int         `json:"from_room"`
	ToRoom   int         `json:"to_room"`
	From     gruid.Point `json:"from"`
	To       gruid.Point `json:"to"`
	Segments []Corridor  `json:"segments"`
}

// Carver connects two rooms with corridor segments.
type Carver interface {
	Carve(a, b Rect, src rng.Source) Link
}

// NewCarver returns the carver for alg
func NewCarver(alg CorridorAlgorithm) Carver {
	if alg == CorridorDrunkard {
		return DrunkardCarver{}
	}
	return BSPCarver{}
}

// interiorPoint picks a cell that is not on the room's outer ring.
func interiorPoint(r Rect, src rng.Source) gruid.Point {
	x := rng.Between(src, r.X+1, r.X+r.Width-2)
	y := rng.Between(src, r.Y+1, r.Y+r.Height-2)
	return gruid.Point{X: x, Y: y}
}

// horizontalSegment covers x0..x1 inclusive on row y.
func horizontalSegment(x0, x1, y int) Corridor {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	return Corridor{Rect: Rect{X: x0, Y: y, Width: x1 - x0 + 1, Height: 1}}
}

// verticalSegment covers y0..y1 inclusive on column x.
func verticalSegment(x, y0, y1 int) Corridor {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Corridor{Rect: Rect{X: x, Y: y0, Width: 1, Height: y1 - y0 + 1}}
}

// BSPCarver joins the rooms with a single L shaped bend, or a straight
// segment when the points share a row or column.
type BSPCarver struct{}

func (BSPCarver) Carve(a, b Rect, src rng.Source) Link {
	p1 := interiorPoint(a, src)
	p2 := interiorPoint(b, src)
	link := Link{From: p1, To: p2}

	switch {
	case p1 == p2:
		link.Segments = []Corridor{horizontalSegment(p1.X, p1.X, p1.Y)}
	case p1.X == p2.X:
		link.Segments = []Corridor{verticalSegment(p1.X, p1.Y, p2.Y)}
	case p1.Y == p2.Y:
		link.Segments = []Corridor{horizontalSegment(p1.X, p2.X, p1.Y)}
	case src.IntN(3) == 2:
		// bend at (p2.X, p1.Y)
		link.Segments = []Corridor{
			horizontalSegment(p1.X, p2.X, p1.Y),
			verticalSegment(p2.X, p1.Y, p2.Y),
		}
	default:
		// bend at (p1.X, p2.Y)
		link.Segments = []Corridor{
			verticalSegment(p1.X, p1.Y, p2.Y),
			horizontalSegment(p1.X, p2.X, p2.Y),
		}
	}
	return link
}

// DrunkardCarver walks from one room toward the other, stepping on a random
// axis until one axis lines up and then straight along the other. Every
// visited cell is a 1x1 segment.
type DrunkardCarver struct{}

func (DrunkardCarver) Carve(a, b Rect, src rng.Source) Link {
	p1 := interiorPoint(a, src)
	p2 := interiorPoint(b, src)
	link := Link{From: p1, To: p2}

	step := gruid.Point{X: 1, Y: 1}
	if p1.X > p2.X {
		step.X = -1
	}
	if p1.Y > p2.Y {
		step.Y = -1
	}

	cur := p1
	for cur != p2 {
		switch {
		case cur.X == p2.X:
			cur.Y += step.Y
		case cur.Y == p2.Y:
			cur.X += step.X
		case src.IntN(2) == 0:
			cur.X += step.X
		default:
			cur.Y += step.Y
		}
		link.Segments = append(link.Segments, horizontalSegment(cur.X, cur.X, cur.Y))
	}
	return link
}
