package dungeon

import (
	"fmt"
	"log/slog"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"
)

// Occupancy is the coarse class of a cell used by autotiling.
type Occupancy uint8

const (
	OccupancyEmpty Occupancy = iota
	OccupancyRoom
	OccupancyCorridor
)

func (o Occupancy) String() string {
	switch o {
	case OccupancyRoom:
		return "room"
	case OccupancyCorridor:
		return "corridor"
	default:
		return "empty"
	}
}

func occupancyOf(t Tile) Occupancy {
	switch {
	case t.IsRoom():
		return OccupancyRoom
	case t.IsCorridor():
		return OccupancyCorridor
	default:
		return OccupancyEmpty
	}
}

// Neighborhood is the occupancy of the eight cells around a position.
type Neighborhood struct {
	Left, Right, Up, Down Occupancy

	UpLeft, UpRight, DownLeft, DownRight Occupancy
}

func (n Neighborhood) String() string {
	return fmt.Sprintf("left=%s right=%s up=%s down=%s ul=%s ur=%s dl=%s dr=%s",
		n.Left, n.Right, n.Up, n.Down, n.UpLeft, n.UpRight, n.DownLeft, n.DownRight)
}

// Anomaly is a corridor cell that matched no classification rule. It keeps
// TileCorridorUndefined.
type Anomaly struct {
	Point        gruid.Point  `json:"point"`
	Neighborhood Neighborhood `json:"neighborhood"`
}

// Mismatch is a cell whose stored code differs from the code its
// neighborhood implies.
type Mismatch struct {
	Point    gruid.Point
	Stored   Tile
	Expected Tile
}

// TileGrid is the classified dungeon map. Cells outside the grid read as
// TileEmpty.
type TileGrid struct {
	grid      rl.Grid
	fixed     mapset.Set[gruid.Point]
	anomalies []Anomaly
}

// NewTileGrid returns an empty width x height grid
func NewTileGrid(width, height int) *TileGrid {
	return &TileGrid{
		grid:  rl.NewGrid(width, height),
		fixed: mapset.New[gruid.Point](),
	}
}

// BuildGrid paints and classifies rooms, then corridors, then redraws the
// outline of touching rooms.
func BuildGrid(width, height int, res Resolution, corridors []Corridor) *TileGrid {
	g := NewTileGrid(width, height)

	for _, room := range res.Active {
		g.fill(room.Rect, TileRoom)
	}
	for _, room := range res.Subsumed {
		g.fill(room.Rect, TileRoom)
	}
	g.classifyRooms()

	for _, c := range corridors {
		g.paintCorridor(c.Rect)
	}
	g.classifyCorridors()

	byID := make(map[int]Room, len(res.Active))
	for _, room := range res.Active {
		byID[room.ID] = room
	}
	groups := newGroupIndex(res)
	for _, id := range res.Touching {
		if room, ok := byID[id]; ok {
			g.outline(room.Rect, func(q gruid.Point) bool {
				return groups.foreign(id, q)
			})
		}
	}

	return g
}

type groupedRoom struct {
	group int
	rect  Rect
}

// groupIndex lists every painted room with the active room ID of its
// merge group.
type groupIndex []groupedRoom

func newGroupIndex(res Resolution) groupIndex {
	gi := make(groupIndex, 0, len(res.Active)+len(res.Subsumed))
	for _, room := range res.Active {
		gi = append(gi, groupedRoom{group: room.ID, rect: room.Rect})
	}
	for _, room := range res.Subsumed {
		owner, ok := res.ReplacedBy[room.ID]
		if !ok {
			owner = room.ID
		}
		gi = append(gi, groupedRoom{group: owner, rect: room.Rect})
	}
	return gi
}

// foreign reports whether q lies in a room of another group and in none
// of group's own rooms.
func (gi groupIndex) foreign(group int, q gruid.Point) bool {
	other := false
	for _, room := range gi {
		if !room.rect.Contains(q) {
			continue
		}
		if room.group == group {
			return false
		}
		other = true
	}
	return other
}

// Width returns the grid width
func (g *TileGrid) Width() int {
	return g.grid.Range().Size().X
}

// Height returns the grid height
func (g *TileGrid) Height() int {
	return g.grid.Range().Size().Y
}

// At returns the tile at p, or TileEmpty off the grid.
func (g *TileGrid) At(p gruid.Point) Tile {
	if !p.In(g.grid.Range()) {
		return TileEmpty
	}
	return Tile(g.grid.At(p))
}

func (g *TileGrid) set(p gruid.Point, t Tile) {
	if p.In(g.grid.Range()) {
		g.grid.Set(p, rl.Cell(t))
	}
}

// Anomalies returns the cells corridor classification could not resolve.
func (g *TileGrid) Anomalies() []Anomaly {
	return g.anomalies
}

// Rows returns the codes row by row, indexed [y][x].
func (g *TileGrid) Rows() [][]int {
	rows := make([][]int, g.Height())
	for y := range rows {
		row := make([]int, g.Width())
		for x := range row {
			row[x] = int(g.At(gruid.Point{X: x, Y: y}))
		}
		rows[y] = row
	}
	return rows
}

// Neighborhood returns the occupancy around p.
func (g *TileGrid) Neighborhood(p gruid.Point) Neighborhood {
	at := func(dx, dy int) Occupancy {
		return occupancyOf(g.At(p.Add(gruid.Point{X: dx, Y: dy})))
	}
	return Neighborhood{
		Left:      at(-1, 0),
		Right:     at(1, 0),
		Up:        at(0, -1),
		Down:      at(0, 1),
		UpLeft:    at(-1, -1),
		UpRight:   at(1, -1),
		DownLeft:  at(-1, 1),
		DownRight: at(1, 1),
	}
}

func (g *TileGrid) fill(r Rect, t Tile) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.set(gruid.Point{X: x, Y: y}, t)
		}
	}
}

func (g *TileGrid) paintCorridor(r Rect) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			p := gruid.Point{X: x, Y: y}
			if g.At(p) == TileEmpty {
				g.set(p, TileCorridorUndefined)
			}
		}
	}
}

func (g *TileGrid) each(fn func(p gruid.Point)) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			fn(gruid.Point{X: x, Y: y})
		}
	}
}

func (g *TileGrid) classifyRooms() {
	g.each(func(p gruid.Point) {
		if g.At(p).IsRoom() {
			g.set(p, roomTile(g.Neighborhood(p)))
		}
	})
}

func (g *TileGrid) classifyCorridors() {
	g.each(func(p gruid.Point) {
		if g.At(p) != TileCorridorUndefined {
			return
		}
		n := g.Neighborhood(p)
		t, ok := corridorTile(n)
		if !ok {
			g.anomalies = append(g.anomalies, Anomaly{Point: p, Neighborhood: n})
			slog.Error("unclassifiable corridor cell",
				"x", p.X,
				"y", p.Y,
				"neighborhood", n.String())
			return
		}
		g.set(p, t)
	})
}

// outline redraws the ring cells of a room that face a touching room of
// another group, so the wall shared with that neighbor is kept. Ring cells
// facing empty space or the room's own merged rooms keep their code.
func (g *TileGrid) outline(r Rect, faces func(q gruid.Point) bool) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width-1, r.Y+r.Height-1

	left := gruid.Point{X: -1}
	right := gruid.Point{X: 1}
	up := gruid.Point{Y: -1}
	down := gruid.Point{Y: 1}

	mark := func(x, y int, t Tile, outward ...gruid.Point) {
		p := gruid.Point{X: x, Y: y}
		for _, d := range outward {
			if faces(p.Add(d)) {
				g.set(p, t)
				g.fixed.Put(p)
				return
			}
		}
	}

	for x := x0 + 1; x < x1; x++ {
		mark(x, y0, TileRoomTop, up)
		mark(x, y1, TileRoomBottom, down)
	}
	for y := y0 + 1; y < y1; y++ {
		mark(x0, y, TileRoomLeft, left)
		mark(x1, y, TileRoomRight, right)
	}
	mark(x0, y0, TileRoomTopLeft, up, left)
	mark(x1, y0, TileRoomTopRight, up, right)
	mark(x0, y1, TileRoomBottomLeft, down, left)
	mark(x1, y1, TileRoomBottomRight, down, right)
}

// Expected returns the code the neighborhood of p implies. Empty cells
// and redrawn outline cells return their stored code.
func (g *TileGrid) Expected(p gruid.Point) Tile {
	stored := g.At(p)
	if stored == TileEmpty || g.fixed.Has(p) {
		return stored
	}
	n := g.Neighborhood(p)
	if stored.IsRoom() {
		return roomTile(n)
	}
	if t, ok := corridorTile(n); ok {
		return t
	}
	return TileCorridorUndefined
}

// Verify reclassifies every cell and returns the ones that disagree with
// the stored grid.
func (g *TileGrid) Verify() []Mismatch {
	var out []Mismatch
	g.each(func(p gruid.Point) {
		if stored, expected := g.At(p), g.Expected(p); stored != expected {
			out = append(out, Mismatch{Point: p, Stored: stored, Expected: expected})
		}
	})
	return out
}

// passable adapts the grid to paths.Pather. Every non empty cell is
// walkable.
type passable struct {
	g   *TileGrid
	nbs paths.Neighbors
}

func (pp *passable) Neighbors(p gruid.Point) []gruid.Point {
	if pp.g.At(p) == TileEmpty {
		return nil
	}
	return pp.nbs.Cardinal(p, func(q gruid.Point) bool {
		return pp.g.At(q) != TileEmpty
	})
}

// Connected reports whether a walk over room and corridor cells joins a
// and b.
func (g *TileGrid) Connected(a, b gruid.Point) bool {
	if g.At(a) == TileEmpty || g.At(b) == TileEmpty {
		return false
	}
	pr := paths.NewPathRange(g.grid.Range())
	pr.CCMap(&passable{g: g}, a)
	return pr.CCMapAt(b) != -1
}
