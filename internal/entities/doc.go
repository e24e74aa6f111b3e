// Package entities provides the records rpg-dungeon stores and the
// toolkit entities it publishes events about.
package entities
