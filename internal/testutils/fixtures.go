package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
)

// Fixture seeds
const (
	TestDungeonSeed    int64 = 12345678
	TestPopulationSeed int64 = 4321
)

// TestTime is the fixed instant fixtures and test clocks start from
var TestTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestSession returns a session with small square BSP layout
// params and a fixed party
func CreateTestSession(id string) *entities.DungeonSession {
	return &entities.DungeonSession{
		ID: id,
		Layout: entities.LayoutParams{
			Size:      dungeon.SizeSmall,
			Shape:     dungeon.ShapeSquare,
			Corridors: dungeon.CorridorBSP,
			Spread:    dungeon.SpreadLeaf,
			Tileset:   "stone",
		},
		DungeonSeed: TestDungeonSeed,
		Population: entities.PopulationParams{
			Theme:      population.ThemeEverything,
			PartySize:  4,
			PartyLevel: 3,
			Density:    population.DensityDefault,
		},
		PopulationSeed: TestPopulationSeed,
	}
}
