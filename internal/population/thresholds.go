package population

import "github.com/KirkDiggler/rpg-dungeon/internal/errors"

// Party bounds.
const (
	MinPartyLevel  = 1
	MaxPartyLevel  = 20
	MinRandomParty = 3
	MaxRandomParty = 5
)

// Per character XP budgets indexed by level - 1.
var (
	easyXP   = [MaxPartyLevel]int{25, 50, 75, 125, 250, 300, 350, 450, 550, 600, 800, 1000, 1100, 1250, 1400, 1600, 2000, 2100, 2400, 2800}
	mediumXP = [MaxPartyLevel]int{50, 100, 150, 250, 500, 600, 750, 900, 1100, 1200, 1600, 2000, 2200, 2500, 2800, 3200, 3900, 4200, 4900, 5700}
	hardXP   = [MaxPartyLevel]int{75, 150, 225, 375, 750, 900, 1100, 1400, 1600, 1900, 2400, 3000, 3400, 3800, 4300, 4800, 5900, 6300, 7300, 8500}
	deadlyXP = [MaxPartyLevel]int{100, 200, 400, 500, 1100, 1400, 1700, 2100, 2400, 2800, 3600, 4500, 5100, 5700, 6400, 7200, 8800, 9500, 10900, 12700}
)

// Difficulty is an encounter difficulty band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyDeadly Difficulty = "deadly"
)

// Thresholds are the party's XP targets per difficulty.
type Thresholds struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Deadly int `json:"deadly"`
}

// NewThresholds scales the per character tables by party size.
func NewThresholds(partySize, level int) (Thresholds, error) {
	if partySize < 1 {
		return Thresholds{}, errors.InvalidArgumentf("party size must be at least 1, got %d", partySize)
	}
	if level < MinPartyLevel || level > MaxPartyLevel {
		return Thresholds{}, errors.InvalidArgumentf("party level must be between %d and %d, got %d",
			MinPartyLevel, MaxPartyLevel, level)
	}

	i := level - 1
	return Thresholds{
		Easy:   partySize * easyXP[i],
		Medium: partySize * mediumXP[i],
		Hard:   partySize * hardXP[i],
		Deadly: partySize * deadlyXP[i],
	}, nil
}

// For returns the target for d
func (t Thresholds) For(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return t.Easy
	case DifficultyMedium:
		return t.Medium
	case DifficultyHard:
		return t.Hard
	default:
		return t.Deadly
	}
}

// DifficultyForRank maps a room's position among rooms sorted by ascending
// area to a difficulty: the first 30% are easy, up to 70% medium, up to
// 90% hard, the rest deadly.
func DifficultyForRank(rank, total int) Difficulty {
	if total <= 0 {
		return DifficultyEasy
	}
	pct := float64(rank) / float64(total)
	switch {
	case pct <= 0.3:
		return DifficultyEasy
	case pct <= 0.7:
		return DifficultyMedium
	case pct <= 0.9:
		return DifficultyHard
	default:
		return DifficultyDeadly
	}
}
