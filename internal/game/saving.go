package game

import (
	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/save"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// Snapshot captures the session for the save slot.
func (w *World) Snapshot() save.Data {
	p := w.Player
	return save.Data{
		PlayerPosition: save.Position{X: p.Pos.X, Y: p.Pos.Y},
		PlayerStats: save.PlayerStats{
			Level:       p.Stats.Level,
			HP:          p.Stats.HP,
			MaxHP:       p.Stats.MaxHP,
			Exp:         p.Stats.Exp,
			Gold:        p.Inventory.Gold,
			AttackPower: p.Stats.AttackPower,
		},
		Seed: w.Seed,
	}
}

// Restore applies a saved player onto a world generated from the same seed.
// A position that is no longer on a floor tile falls back to the spawn point.
func (w *World) Restore(d save.Data) {
	pos := world.Point{X: d.PlayerPosition.X, Y: d.PlayerPosition.Y}
	if w.blocked(&w.Player.Body, pos, nil) {
		pos = w.Dungeon.SpawnPosition()
	}
	w.Player.Restore(pos, entity.Stats{
		Level:       d.PlayerStats.Level,
		HP:          d.PlayerStats.HP,
		MaxHP:       d.PlayerStats.MaxHP,
		Exp:         d.PlayerStats.Exp,
		AttackPower: d.PlayerStats.AttackPower,
	}, d.PlayerStats.Gold)
}
