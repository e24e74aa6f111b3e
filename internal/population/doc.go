// Package population assigns monster encounters to dungeon rooms. Rooms
// are ranked by area so that larger rooms get harder encounters, and each
// room's XP target comes from the party's difficulty thresholds.
package population
