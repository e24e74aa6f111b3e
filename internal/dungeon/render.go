package dungeon

import "strings"

// Glyph returns a single character picture of a tile for terminal output.
func Glyph(t Tile) rune {
	switch {
	case t == TileEmpty:
		return ' '
	case t == TileRoom:
		return '.'
	case t == TileRoomLeft || t == TileRoomRight:
		return '|'
	case t == TileRoomTop || t == TileRoomBottom:
		return '-'
	case t.IsRoom():
		return '+'
	case t == TileCorridorVertical || t == TileCorridorDoubleVerticalLeft || t == TileCorridorDoubleVerticalRight:
		return ':'
	case t == TileCorridorHorizontal || t == TileCorridorDoubleHorizontalTop || t == TileCorridorDoubleHorizontalBottom:
		return '='
	case t == TileCorridorUndefined:
		return '?'
	case t.IsCorridor():
		return '#'
	default:
		return '?'
	}
}

// RenderRows draws tile rows indexed [y][x], one text line per row.
func RenderRows(rows [][]int) string {
	var b strings.Builder
	for _, row := range rows {
		for _, code := range row {
			b.WriteRune(Glyph(Tile(code)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
