package population

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// MaxGroupSize is the largest number of identical monsters in one room.
const MaxGroupSize = 4

// Encounter is the assignment for one room. An empty Monster means the
// room has no encounter; Count, TargetXP and MonsterXP are then zero.
type Encounter struct {
	// RoomIndex is 1-based and follows the dungeon's active room order.
	RoomIndex  int        `json:"room_index"`
	Monster    string     `json:"monster,omitempty"`
	Count      int        `json:"count"`
	TargetXP   int        `json:"target_xp"`
	MonsterXP  int        `json:"monster_xp"`
	Difficulty Difficulty `json:"difficulty"`
}

// Empty reports whether the room has no encounter
func (e Encounter) Empty() bool {
	return e.Monster == ""
}

func (e Encounter) String() string {
	if e.Empty() {
		return fmt.Sprintf("Room: %d\nNo Encounter", e.RoomIndex)
	}
	return fmt.Sprintf("Room: %d\n%d x %s\nApproximate XP: %d", e.RoomIndex, e.Count, e.Monster, e.TargetXP)
}

// Config configures a Populator
type Config struct {
	Catalog *Catalog
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Populator assigns encounters to rooms from an injected catalog.
type Populator struct {
	catalog *Catalog
}

// NewPopulator creates a populator
func NewPopulator(cfg *Config) (*Populator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Populator{catalog: cfg.Catalog}, nil
}

// Input describes one population run. Zero party values are rolled, a
// zero density uses DensityDefault.
type Input struct {
	RoomAreas  []int
	Theme      Theme
	PartySize  int
	PartyLevel int
	Density    Density
}

// Result carries the encounters in room index order and the resolved
// party.
type Result struct {
	Encounters []Encounter `json:"encounters"`
	PartySize  int         `json:"party_size"`
	PartyLevel int         `json:"party_level"`
	Thresholds Thresholds  `json:"thresholds"`
	Density    Density     `json:"density"`
}

// Populate rolls the party if needed, ranks rooms by area to pick their
// difficulty and then fills each room in ascending area order.
func (p *Populator) Populate(in *Input, src rng.Source) (*Result, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("party_size", in.PartySize, vb)
	errors.ValidateRange("party_level", in.PartyLevel, 0, MaxPartyLevel, vb)
	for i, area := range in.RoomAreas {
		if area < 0 {
			vb.Fieldf("room_areas", "room %d has negative area %d", i+1, area)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	density := in.Density
	switch {
	case density <= 0:
		density = DensityDefault
	case density > DensityFull:
		density = DensityFull
	}

	partySize := in.PartySize
	if partySize == 0 {
		partySize = rng.Between(src, MinRandomParty, MaxRandomParty)
	}
	level := in.PartyLevel
	if level == 0 {
		level = rng.Between(src, MinPartyLevel, MaxPartyLevel)
	}

	thresholds, err := NewThresholds(partySize, level)
	if err != nil {
		return nil, err
	}

	areas := in.RoomAreas
	order := make([]int, len(areas))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return areas[order[a]] < areas[order[b]]
	})

	pool := p.catalog.Monsters(in.Theme)
	encounters := make([]Encounter, len(areas))
	for rank, idx := range order {
		difficulty := DifficultyForRank(rank, len(order))
		enc, err := encounter(idx, areas[idx], thresholds.For(difficulty), density, pool, src)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to populate room %d", idx+1)
		}
		enc.Difficulty = difficulty
		encounters[idx] = enc
	}

	return &Result{
		Encounters: encounters,
		PartySize:  partySize,
		PartyLevel: level,
		Thresholds: thresholds,
		Density:    density,
	}, nil
}

// encounter rolls density, then picks a group size uniformly among sizes
// that have a matching monster, then a monster within that group.
func encounter(idx, area, target int, density Density, pool []Monster, src rng.Source) (Encounter, error) {
	empty := Encounter{RoomIndex: idx + 1}

	roll, err := src.Roll(100)
	if err != nil {
		return empty, err
	}
	if roll > int(density) {
		return empty, nil
	}

	groups := candidates(pool, area, target)
	var counts []int
	for n := 1; n <= MaxGroupSize; n++ {
		if len(groups[n-1]) > 0 {
			counts = append(counts, n)
		}
	}
	if len(counts) == 0 {
		return empty, nil
	}

	count := counts[src.IntN(len(counts))]
	group := groups[count-1]
	m := group[src.IntN(len(group))]

	return Encounter{
		RoomIndex: idx + 1,
		Monster:   m.Name,
		Count:     count,
		TargetXP:  target,
		MonsterXP: m.XP,
	}, nil
}

// candidates groups the monsters that fit the room by how many of them
// land within 10% of target.
func candidates(pool []Monster, area, target int) [MaxGroupSize][]Monster {
	var groups [MaxGroupSize][]Monster
	for _, m := range pool {
		if !m.Size.FitsIn(area) {
			continue
		}
		for n := 1; n <= MaxGroupSize; n++ {
			if WithinTolerance(m.XP*n, target) {
				groups[n-1] = append(groups[n-1], m)
			}
		}
	}
	return groups
}

// WithinTolerance reports whether xp is within 10% of target, inclusive.
func WithinTolerance(xp, target int) bool {
	return 10*xp >= 9*target && 10*xp <= 11*target
}
