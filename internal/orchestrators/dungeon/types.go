package dungeon

import (
	"time"

	dungeongen "github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
)

// Event types published on the event bus
const (
	EventDungeonGenerated = "dungeon.generated"
	EventDungeonPopulated = "dungeon.populated"
	EventEncounterPlaced  = "dungeon.encounter_placed"
)

// Event context keys
const (
	KeyRoomCount      = "room_count"
	KeyEncounterCount = "encounter_count"
	KeyDungeonSeed    = "dungeon_seed"
	KeyPopulationSeed = "population_seed"
	KeyMonster        = "monster"
	KeyCount          = "count"
	KeyTargetXP       = "target_xp"
)

// DefaultSessionTTL is how long sessions live when the config leaves it unset
const DefaultSessionTTL = 15 * time.Minute

// Result is a dungeon regenerated from its session
type Result struct {
	Session    *entities.DungeonSession
	Dungeon    *dungeongen.Dungeon
	Population *population.Result
}

// GenerateInput defines the request for generating a dungeon. Zero seeds
// are replaced with fresh ones.
type GenerateInput struct {
	Layout         entities.LayoutParams
	DungeonSeed    int64
	Population     entities.PopulationParams
	PopulationSeed int64
}

// GenerateOutput defines the response for generating a dungeon
type GenerateOutput struct {
	Result
}

// RepopulateInput defines the request for repopulating a stored dungeon.
// A nil Population keeps the stored parameters.
type RepopulateInput struct {
	SessionID      string
	Population     *entities.PopulationParams
	PopulationSeed int64
}

// RepopulateOutput defines the response for repopulating a dungeon
type RepopulateOutput struct {
	Result
}

// GetDungeonInput defines the request for fetching a stored dungeon
type GetDungeonInput struct {
	SessionID string
}

// GetDungeonOutput defines the response for fetching a stored dungeon
type GetDungeonOutput struct {
	Result
}
