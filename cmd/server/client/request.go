package client

import (
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

// LayoutFlags are the layout options of a generate request.
type LayoutFlags struct {
	Size        string
	Shape       string
	Corridors   string
	Spread      string
	Tileset     string
	DungeonSeed int64
}

// Bind registers the layout flags on cmd
func (f *LayoutFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Size, "size", "small", "Dungeon size: tiny, small, medium, large or 1-4")
	cmd.Flags().StringVar(&f.Shape, "shape", "Square", "Dungeon shape: Square or Rectangle")
	cmd.Flags().StringVar(&f.Corridors, "corridors", "BSP", "Corridor algorithm: BSP or Drunkard")
	cmd.Flags().StringVar(&f.Spread, "spread", "leaf", "How far rooms may move: leaf or dungeon")
	cmd.Flags().StringVar(&f.Tileset, "tileset", "", "Tileset name passed through to renderers")
	cmd.Flags().Int64Var(&f.DungeonSeed, "dungeon-seed", 0, "Dungeon seed (0 picks one)")
}

// Fields returns the request fields for flags the user set
func (f *LayoutFlags) Fields(cmd *cobra.Command) map[string]any {
	fields := map[string]any{}
	setString(cmd, fields, "size", v1alpha1.FieldSize, f.Size)
	setString(cmd, fields, "shape", v1alpha1.FieldShape, f.Shape)
	setString(cmd, fields, "corridors", v1alpha1.FieldCorridors, f.Corridors)
	setString(cmd, fields, "spread", v1alpha1.FieldSpread, f.Spread)
	setString(cmd, fields, "tileset", v1alpha1.FieldTileset, f.Tileset)
	if cmd.Flags().Changed("dungeon-seed") {
		fields[v1alpha1.FieldDungeonSeed] = f.DungeonSeed
	}
	return fields
}

// PopulationFlags are the population options shared by generate and
// repopulate.
type PopulationFlags struct {
	Theme          string
	PartySize      int
	PartyLevel     int
	Density        string
	PopulationSeed int64
}

// Bind registers the population flags on cmd
func (f *PopulationFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Theme, "theme", "everything", "Monster theme, e.g. beasts, undead or everything")
	cmd.Flags().IntVar(&f.PartySize, "party-size", 0, "Number of characters (0 rolls 3-5)")
	cmd.Flags().IntVar(&f.PartyLevel, "party-level", 0, "Average party level (0 rolls 1-20)")
	cmd.Flags().StringVar(&f.Density, "density", "default", "Encounter density: sparse, default, dense, full or a percent")
	cmd.Flags().Int64Var(&f.PopulationSeed, "population-seed", 0, "Population seed (0 picks one)")
}

// Fields returns the request fields for flags the user set
func (f *PopulationFlags) Fields(cmd *cobra.Command) map[string]any {
	fields := map[string]any{}
	setString(cmd, fields, "theme", v1alpha1.FieldTheme, f.Theme)
	setString(cmd, fields, "density", v1alpha1.FieldDensity, f.Density)
	if cmd.Flags().Changed("party-size") {
		fields[v1alpha1.FieldPartySize] = f.PartySize
	}
	if cmd.Flags().Changed("party-level") {
		fields[v1alpha1.FieldPartyLevel] = f.PartyLevel
	}
	if cmd.Flags().Changed("population-seed") {
		fields[v1alpha1.FieldPopulationSeed] = f.PopulationSeed
	}
	return fields
}

// NewRequest merges field maps into a request struct
func NewRequest(parts ...map[string]any) (*structpb.Struct, error) {
	merged := map[string]any{}
	for _, part := range parts {
		for k, v := range part {
			merged[k] = v
		}
	}
	return structpb.NewStruct(merged)
}

func setString(cmd *cobra.Command, fields map[string]any, flag, field, value string) {
	if cmd.Flags().Changed(flag) {
		fields[field] = value
	}
}
