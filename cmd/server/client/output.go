package client

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
)

// PrintResult writes a dungeon response either as indented JSON or as a
// summary with the rendered map and one block per encounter.
func PrintResult(w io.Writer, res *structpb.Struct, asJSON bool) error {
	if asJSON {
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	fields := res.GetFields()
	str := func(name string) string { return fields[name].GetStringValue() }
	num := func(name string) int { return int(fields[name].GetNumberValue()) }

	fmt.Fprintf(w, "Dungeon %s\n", str("session_id"))
	fmt.Fprintf(w, "==================\n")
	fmt.Fprintf(w, "Size: %s  Shape: %s  Corridors: %s  Spread: %s\n",
		str("size"), str("shape"), str("corridors"), str("spread"))
	fmt.Fprintf(w, "Dungeon seed: %s  Population seed: %s\n", str("dungeon_seed"), str("population_seed"))
	fmt.Fprintf(w, "Party: %d characters at level %d  Theme: %s  Density: %d%%\n",
		num("party_size"), num("party_level"), str("theme"), num("density"))
	if expires := str("expires_at"); expires != "" {
		fmt.Fprintf(w, "Expires at: %s\n", expires)
	}

	fmt.Fprintf(w, "\n%s\n", dungeon.RenderRows(TileRows(res)))

	for _, v := range fields["encounters"].GetListValue().GetValues() {
		enc := v.GetStructValue().GetFields()
		fmt.Fprintf(w, "%s\n", enc["text"].GetStringValue())
		if difficulty := enc["difficulty"].GetStringValue(); difficulty != "" {
			fmt.Fprintf(w, "Difficulty: %s\n", difficulty)
		}
		fmt.Fprintln(w)
	}

	if anomalies := fields["anomalies"].GetListValue().GetValues(); len(anomalies) > 0 {
		fmt.Fprintf(w, "Unclassified tiles: %d\n", len(anomalies))
	}
	return nil
}

// TileRows decodes the tiles field of a response into [y][x] codes
func TileRows(res *structpb.Struct) [][]int {
	list := res.GetFields()["tiles"].GetListValue().GetValues()
	rows := make([][]int, len(list))
	for y, row := range list {
		cells := row.GetListValue().GetValues()
		rows[y] = make([]int, len(cells))
		for x, cell := range cells {
			rows[y][x] = int(cell.GetNumberValue())
		}
	}
	return rows
}
