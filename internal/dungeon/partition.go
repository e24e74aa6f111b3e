package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"

const noNode = -1

// Leaf is a node of the partition tree. Children and the room are indices
// into the owning Tree and Dungeon; noNode marks an absent link.
type Leaf struct {
	Rect  Rect `json:"rect"`
	Left  int  `json:"left"`
	Right int  `json:"right"`
	Room  int  `json:"room"`

	// settled leaves have made their one split attempt and failed
	settled bool
}

// Terminal reports whether the leaf has no children
func (l Leaf) Terminal() bool {
	return l.Left == noNode && l.Right == noNode
}

// Tree is an arena of leaves. Index 0 is the root.
type Tree struct {
	Leaves []Leaf `json:"leaves"`
}

func newLeaf(r Rect) Leaf {
	return Leaf{Rect: r, Left: noNode, Right: noNode, Room: noNode}
}

// Terminals returns the indices of all leaves without children, in arena
// order.
func (t *Tree) Terminals() []int {
	var out []int
	for i, l := range t.Leaves {
		if l.Terminal() {
			out = append(out, i)
		}
	}
	return out
}

// Partition splits the layout root until a full sweep splits nothing.
// Leaves appended during a sweep are visited by that same sweep.
func Partition(layout Layout, src rng.Source) *Tree {
	t := &Tree{Leaves: []Leaf{newLeaf(layout.Root)}}

	for {
		split := false
		for i := 0; i < len(t.Leaves); i++ {
			if !t.Leaves[i].Terminal() || t.Leaves[i].settled {
				continue
			}
			if t.split(i, layout, src) {
				split = true
				continue
			}
			t.Leaves[i].settled = true
		}
		if !split {
			return t
		}
	}
}

// split attempts to divide leaf i. Horizontal splits stack the children
// vertically.
func (t *Tree) split(i int, layout Layout, src rng.Source) bool {
	r := t.Leaves[i].Rect
	minSize, maxSize := layout.MinLeafSize, layout.MaxLeafSize

	tooTall := r.Height > maxSize
	tooWide := r.Width > maxSize

	var horizontal bool
	switch {
	case tooTall && tooWide:
		switch {
		case r.Height > r.Width && float64(r.Height)/float64(r.Width) >= 1.25:
			horizontal = true
		case r.Width > r.Height && float64(r.Width)/float64(r.Height) >= 1.25:
			horizontal = false
		default:
			horizontal = src.IntN(2) == 0
		}
	case tooTall:
		horizontal = true
	case tooWide:
		horizontal = false
	default:
		if layout.OrganicOdds < 1 || src.IntN(layout.OrganicOdds) != 0 {
			return false
		}
		canTall := r.Height > minSize*2
		canWide := r.Width > minSize*2
		switch {
		case canTall && canWide:
			horizontal = src.IntN(2) == 0
		case canTall:
			horizontal = true
		case canWide:
			horizontal = false
		default:
			return false
		}
	}

	dim := r.Width
	if horizontal {
		dim = r.Height
	}
	hi := dim - minSize
	if hi < minSize {
		return false
	}
	at := rng.Between(src, minSize, hi)

	var a, b Rect
	if horizontal {
		a = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: at}
		b = Rect{X: r.X, Y: r.Y + at, Width: r.Width, Height: r.Height - at}
	} else {
		a = Rect{X: r.X, Y: r.Y, Width: at, Height: r.Height}
		b = Rect{X: r.X + at, Y: r.Y, Width: r.Width - at, Height: r.Height}
	}

	t.Leaves = append(t.Leaves, newLeaf(a), newLeaf(b))
	t.Leaves[i].Left = len(t.Leaves) - 2
	t.Leaves[i].Right = len(t.Leaves) - 1
	return true
}
