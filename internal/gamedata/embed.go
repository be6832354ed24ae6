// Package gamedata provides embedded game data and utilities for loading it.
//
// Entity types are rows in data tables rather than code: a monster, NPC or
// the player is built from its definition, looked up by type ID.
package gamedata

import "embed"

// dataFS embeds all data files from this directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS
