// Package dungeon builds a dungeon layout from a seed: a binary space
// partition of the root region, one room per terminal leaf, corridors
// between sibling subtrees, overlap resolution and an autotiled grid.
//
// Generation is single threaded and every random draw comes from the
// injected rng.Source, so a seed and a Params value fully determine the
// resulting Dungeon.
package dungeon
