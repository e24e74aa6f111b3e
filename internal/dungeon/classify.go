package dungeon

// roomTile derives a room code from which sides face a non room cell.
// Corners win over single edges.
func roomTile(n Neighborhood) Tile {
	left := n.Left != OccupancyRoom
	right := n.Right != OccupancyRoom
	top := n.Up != OccupancyRoom
	bottom := n.Down != OccupancyRoom

	switch {
	case top && left:
		return TileRoomTopLeft
	case top && right:
		return TileRoomTopRight
	case top:
		return TileRoomTop
	case bottom && left:
		return TileRoomBottomLeft
	case bottom && right:
		return TileRoomBottomRight
	case bottom:
		return TileRoomBottom
	case left:
		return TileRoomLeft
	case right:
		return TileRoomRight
	default:
		return TileRoom
	}
}

// corridorTile derives a corridor code from the side and diagonal
// occupancy of a cell. Diagonals only count corridors. The second result
// is false when no rule applies.
func corridorTile(n Neighborhood) (Tile, bool) {
	cL, cR := n.Left == OccupancyCorridor, n.Right == OccupancyCorridor
	cU, cD := n.Up == OccupancyCorridor, n.Down == OccupancyCorridor
	rL, rR := n.Left == OccupancyRoom, n.Right == OccupancyRoom
	rU, rD := n.Up == OccupancyRoom, n.Down == OccupancyRoom
	oL, oR, oU, oD := cL || rL, cR || rR, cU || rU, cD || rD

	dUL := n.UpLeft == OccupancyCorridor
	dUR := n.UpRight == OccupancyCorridor
	dDL := n.DownLeft == OccupancyCorridor
	dDR := n.DownRight == OccupancyCorridor

	switch {
	// double wide runs
	case oU && oD && oL && (dDL || dUL):
		return TileCorridorDoubleVerticalRight, true
	case oU && oD && oR && (dDR || dUR):
		return TileCorridorDoubleVerticalLeft, true
	case oR && oL && oD && (dDL || dDR):
		return TileCorridorDoubleHorizontalTop, true
	case oR && oL && oU && (dUL || dUR):
		return TileCorridorDoubleHorizontalBottom, true

	// crossroads, possibly opening into a room on one side
	case cL && cR && cD && cU,
		cL && cR && cD && rU,
		cL && cR && rD && cU,
		rL && cR && cD && cU,
		cL && rR && cD && cU:
		return TileCorridorCrossroads, true

	// three way junctions
	case cL && cR && cU && !cD:
		return TileCorridorNotDown, true
	case cL && cR && !cU && cD:
		return TileCorridorNotUp, true
	case cL && !cR && cU && cD:
		return TileCorridorNotRight, true
	case !cL && cR && cU && cD:
		return TileCorridorNotLeft, true

	// two corridor sides
	case cL && cU:
		return TileCorridorTopLeft, true
	case cL && cD:
		return TileCorridorBottomLeft, true
	case cR && cU:
		return TileCorridorTopRight, true
	case cR && cD:
		return TileCorridorBottomRight, true
	case cR && cL:
		return TileCorridorHorizontal, true
	case cU && cD:
		return TileCorridorVertical, true

	// corridor meeting a room
	case rU && cD, rD && cU:
		return TileCorridorVertical, true
	case rL && cR, rR && cL:
		return TileCorridorHorizontal, true

	case oU && oR:
		return TileCorridorTopRight, true
	case oU && oL:
		return TileCorridorTopLeft, true
	case oD && oR:
		return TileCorridorBottomRight, true
	case oD && oL:
		return TileCorridorBottomLeft, true

	// squeezed between rooms
	case rL && rR:
		return TileCorridorHorizontal, true
	case rU && rD:
		return TileCorridorVertical, true
	}

	return TileCorridorUndefined, false
}
