package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"

// collapse walks the tree in post order without recursion. Terminal leaves
// get a room; internal nodes carve a corridor between the representative
// rooms of their children and then keep one of the two at random.
func collapse(t *Tree, layout Layout, carver Carver, src rng.Source) ([]Room, []Link) {
	var (
		rooms []Room
		links []Link
	)
	if len(t.Leaves) == 0 {
		return rooms, links
	}

	rep := make([]int, len(t.Leaves))
	for i := range rep {
		rep[i] = noNode
	}

	type frame struct {
		node     int
		expanded bool
	}
	stack := []frame{{node: 0}}

	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		leaf := t.Leaves[f.node]

		if leaf.Terminal() {
			stack = stack[:top]
			room := Room{
				ID:   len(rooms),
				Leaf: f.node,
				Rect: placeRoom(leaf.Rect, layout, src),
			}
			rooms = append(rooms, room)
			t.Leaves[f.node].Room = room.ID
			rep[f.node] = room.ID
			continue
		}

		if !f.expanded {
			stack[top].expanded = true
			// right is pushed first so the left subtree is finished first
			if leaf.Right != noNode {
				stack = append(stack, frame{node: leaf.Right})
			}
			if leaf.Left != noNode {
				stack = append(stack, frame{node: leaf.Left})
			}
			continue
		}

		stack = stack[:top]
		left, right := childRep(rep, leaf.Left), childRep(rep, leaf.Right)
		switch {
		case left == noNode:
			rep[f.node] = right
		case right == noNode:
			rep[f.node] = left
		default:
			link := carver.Carve(rooms[left].Rect, rooms[right].Rect, src)
			link.FromRoom, link.ToRoom = left, right
			links = append(links, link)
			if src.IntN(2) == 0 {
				rep[f.node] = left
			} else {
				rep[f.node] = right
			}
		}
	}

	return rooms, links
}

func childRep(rep []int, node int) int {
	if node == noNode {
		return noNode
	}
	return rep[node]
}
