package dungeon

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Resolution is the outcome of the overlap sweep.
type Resolution struct {
	// Active rooms in placement order. Their position in this slice plus
	// one is the public room index.
	Active []Room
	// Subsumed rooms are still painted but no longer stand on their own.
	Subsumed []Room
	// ReplacedBy maps a subsumed room ID to the active room ID that
	// absorbed it.
	ReplacedBy map[int]int
	// Touching holds active room IDs that share a zero gap boundary with
	// another room without overlapping it.
	Touching []int
}

// ResolveOverlaps compares every pair once. The later room of an
// overlapping pair is merged into the earlier room's group.
func ResolveOverlaps(rooms []Room) Resolution {
	parent := make([]int, len(rooms))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	subsumed := mapset.New[int]()
	touching := mapset.New[int]()

	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i].Rect, rooms[j].Rect
			if a.Overlaps(b) {
				if !subsumed.Has(j) {
					parent[j] = find(i)
					subsumed.Put(j)
				}
				continue
			}
			if a.Touches(b) {
				touching.Put(i)
				touching.Put(j)
			}
		}
	}

	res := Resolution{ReplacedBy: make(map[int]int)}
	for i, room := range rooms {
		if subsumed.Has(i) {
			res.Subsumed = append(res.Subsumed, room)
			res.ReplacedBy[room.ID] = rooms[find(i)].ID
			continue
		}
		res.Active = append(res.Active, room)
	}

	touching.Each(func(i int) {
		if !subsumed.Has(i) {
			res.Touching = append(res.Touching, rooms[i].ID)
		}
	})
	sort.Ints(res.Touching)

	return res
}
