package population

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Size is a creature size class.
type Size string

const (
	SizeTiny       Size = "Tiny"
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeHuge       Size = "Huge"
	SizeGargantuan Size = "Gargantuan"
)

var sizeRank = map[Size]int{
	SizeTiny:       0,
	SizeSmall:      1,
	SizeMedium:     2,
	SizeLarge:      3,
	SizeHuge:       4,
	SizeGargantuan: 5,
}

// MaxSizeForArea returns the largest creature a room of the given area can
// hold.
func MaxSizeForArea(area int) Size {
	switch {
	case area < 25:
		return SizeMedium
	case area < 36:
		return SizeLarge
	case area < 64:
		return SizeHuge
	default:
		return SizeGargantuan
	}
}

// FitsIn reports whether a creature of size s fits a room of the given
// area. Unknown sizes never fit.
func (s Size) FitsIn(area int) bool {
	rank, ok := sizeRank[s]
	if !ok {
		return false
	}
	return rank <= sizeRank[MaxSizeForArea(area)]
}

// CreatureType is a catalog type tag.
type CreatureType string

const (
	TypeBeast       CreatureType = "beast"
	TypeHumanoid    CreatureType = "humanoid"
	TypeElemental   CreatureType = "elemental"
	TypeMonstrosity CreatureType = "monstrosity"
	TypeConstruct   CreatureType = "construct"
	TypeDragon      CreatureType = "dragon"
	TypeFiend       CreatureType = "fiend"
	TypeUndead      CreatureType = "undead"
)

// typeOrder is the match order against a record's meta string. The first
// hit decides the type.
var typeOrder = []CreatureType{
	TypeBeast,
	TypeHumanoid,
	TypeElemental,
	TypeMonstrosity,
	TypeConstruct,
	TypeDragon,
	TypeFiend,
	TypeUndead,
}

// Monster is one catalog entry. XP is the experience value the challenge
// rating is worth.
type Monster struct {
	Name string       `json:"name"`
	XP   int          `json:"xp"`
	Size Size         `json:"size"`
	Type CreatureType `json:"type,omitempty"`
}

var (
	xpPattern   = regexp.MustCompile(`\(([^)]*)\)`)
	sizePattern = regexp.MustCompile(`^([\w\-]+)`)
)

// ParseChallengeXP extracts the XP value from text such as
// "10 (15,000 XP)".
func ParseChallengeXP(challenge string) (int, error) {
	m := xpPattern.FindStringSubmatch(challenge)
	if m == nil {
		return 0, errors.InvalidArgumentf("challenge %q has no XP value", challenge)
	}

	raw := strings.TrimSpace(m[1])
	raw = strings.TrimSuffix(raw, "XP")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimSpace(raw)

	xp, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("challenge %q has a malformed XP value", challenge)
	}
	if xp < 0 {
		return 0, errors.InvalidArgumentf("challenge %q has a negative XP value", challenge)
	}
	return xp, nil
}

// ParseMeta reads the size from the leading word of a meta string and the
// type from the first known type tag it contains. The type is empty when
// none match.
func ParseMeta(meta string) (Size, CreatureType) {
	var size Size
	if m := sizePattern.FindStringSubmatch(meta); m != nil {
		size = Size(m[1])
	}

	for _, t := range typeOrder {
		if strings.Contains(meta, string(t)) {
			return size, t
		}
	}
	return size, ""
}
