package entities

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
)

// Entity types reported through core.Entity
const (
	EntityTypeDungeon = "dungeon"
	EntityTypeRoom    = "room"
)

// DungeonSession is the stored record of a generated dungeon. Only the
// inputs and resolved seeds are kept; the layout and encounters are
// regenerated from them on demand.
type DungeonSession struct {
	ID             string           `json:"id"`
	Layout         LayoutParams     `json:"layout"`
	DungeonSeed    int64            `json:"dungeon_seed"`
	Population     PopulationParams `json:"population"`
	PopulationSeed int64            `json:"population_seed"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	ExpiresAt      time.Time        `json:"expires_at"`
}

// LayoutParams are the layout inputs of a session
type LayoutParams struct {
	Size      dungeon.SizeTier          `json:"size"`
	Shape     dungeon.Shape             `json:"shape"`
	Corridors dungeon.CorridorAlgorithm `json:"corridors"`
	Spread    dungeon.RoomSpread        `json:"spread"`
	// Tileset is passed through to renderers untouched.
	Tileset string `json:"tileset,omitempty"`
}

// DungeonParams converts the stored layout inputs for the generator
func (p LayoutParams) DungeonParams() dungeon.Params {
	return dungeon.Params{
		Size:      p.Size,
		Shape:     p.Shape,
		Corridors: p.Corridors,
		Spread:    p.Spread,
	}
}

// PopulationParams are the population inputs as requested. Zero party
// values stay zero so the same seed rolls the same party again.
type PopulationParams struct {
	Theme      population.Theme   `json:"theme"`
	PartySize  int                `json:"party_size"`
	PartyLevel int                `json:"party_level"`
	Density    population.Density `json:"density"`
}

// DungeonEntity identifies a session as a toolkit entity.
type DungeonEntity struct {
	ID string
}

func (d *DungeonEntity) GetID() string {
	return d.ID
}

func (d *DungeonEntity) GetType() string {
	return EntityTypeDungeon
}

// RoomEntity identifies one active room of a dungeon. Index is 1-based.
type RoomEntity struct {
	DungeonID string
	Index     int
}

func (r *RoomEntity) GetID() string {
	return RoomID(r.DungeonID, r.Index)
}

func (r *RoomEntity) GetType() string {
	return EntityTypeRoom
}

// RoomID formats the entity id of a room within a dungeon
func RoomID(dungeonID string, index int) string {
	return fmt.Sprintf("%s/room-%d", dungeonID, index)
}

var (
	_ core.Entity = (*DungeonEntity)(nil)
	_ core.Entity = (*RoomEntity)(nil)
)
