package population

import "strings"

// Theme restricts the monster pool to one type, or to everything.
type Theme string

const (
	ThemeEverything    Theme = "everything"
	ThemeBeasts        Theme = "beasts"
	ThemeHumanoids     Theme = "humanoids"
	ThemeElementals    Theme = "elementals"
	ThemeMonstrosities Theme = "monstrosities"
	ThemeConstructs    Theme = "constructs"
	ThemeDragons       Theme = "dragons"
	ThemeFiends        Theme = "fiends"
	ThemeUndead        Theme = "undead"
)

var themeTypes = map[Theme]CreatureType{
	ThemeBeasts:        TypeBeast,
	ThemeHumanoids:     TypeHumanoid,
	ThemeElementals:    TypeElemental,
	ThemeMonstrosities: TypeMonstrosity,
	ThemeConstructs:    TypeConstruct,
	ThemeDragons:       TypeDragon,
	ThemeFiends:        TypeFiend,
	ThemeUndead:        TypeUndead,
}

// ParseTheme maps unknown themes to ThemeEverything.
func ParseTheme(s string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := themeTypes[t]; ok {
		return t
	}
	return ThemeEverything
}

// Density is the percent chance that a room gets an encounter.
type Density int

const (
	DensitySparse  Density = 33
	DensityDefault Density = 75
	DensityDense   Density = 90
	DensityFull    Density = 100
)

// ParseDensity accepts sparse, dense and full. Anything else is
// DensityDefault.
func ParseDensity(s string) Density {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sparse":
		return DensitySparse
	case "dense":
		return DensityDense
	case "full":
		return DensityFull
	default:
		return DensityDefault
	}
}
