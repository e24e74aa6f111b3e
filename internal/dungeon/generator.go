package dungeon

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// Params selects the layout of a generation run. Zero values take the
// documented defaults.
type Params struct {
	Size      SizeTier
	Shape     Shape
	Corridors CorridorAlgorithm
	Spread    RoomSpread
}

// Dungeon is a finished layout.
type Dungeon struct {
	Layout    Layout
	Algorithm CorridorAlgorithm
	Tree      *Tree

	// Rooms are the active rooms. Public room index i+1 is Rooms[i].
	Rooms      []Room
	Subsumed   []Room
	ReplacedBy map[int]int
	Touching   []int
	Corridors  []Corridor
	Links      []Link
	Grid       *TileGrid
}

// Generate runs partitioning, room placement with corridor carving,
// overlap resolution and autotiling against src.
func Generate(params Params, src rng.Source) *Dungeon {
	layout := NewLayout(params.Size, params.Shape, params.Spread)
	algorithm := ParseCorridorAlgorithm(string(params.Corridors))

	tree := Partition(layout, src)
	rooms, links := collapse(tree, layout, NewCarver(algorithm), src)
	res := ResolveOverlaps(rooms)

	var corridors []Corridor
	for _, link := range links {
		corridors = append(corridors, link.Segments...)
	}

	grid := BuildGrid(layout.Width, layout.Height, res, corridors)
	if n := len(grid.Anomalies()); n > 0 {
		slog.Warn("dungeon grid has unclassified cells", "count", n)
	}

	return &Dungeon{
		Layout:     layout,
		Algorithm:  algorithm,
		Tree:       tree,
		Rooms:      res.Active,
		Subsumed:   res.Subsumed,
		ReplacedBy: res.ReplacedBy,
		Touching:   res.Touching,
		Corridors:  corridors,
		Links:      links,
		Grid:       grid,
	}
}

// GenerateSeeded is Generate with a fresh source built from seed.
func GenerateSeeded(params Params, seed int64) *Dungeon {
	return Generate(params, rng.New(seed))
}

// RoomAreas returns the active room areas in room index order.
func (d *Dungeon) RoomAreas() []int {
	areas := make([]int, len(d.Rooms))
	for i, room := range d.Rooms {
		areas[i] = room.Area()
	}
	return areas
}

// Anomalies returns the grid cells that could not be classified
func (d *Dungeon) Anomalies() []Anomaly {
	return d.Grid.Anomalies()
}
