package game

import (
	"math"
	"time"

	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// integrate moves every enabled body by its velocity. Axes are resolved
// separately so a body slides along walls instead of sticking to them.
func (w *World) integrate(dt time.Duration) {
	secs := dt.Seconds()
	solids := make([]*entity.Body, 0, len(w.NPCs))
	for _, n := range w.NPCs {
		solids = append(solids, &n.Body)
	}

	w.move(&w.Player.Body, secs, solids)
	for _, m := range w.Monsters {
		w.move(&m.Body, secs, solids)
	}
}

// laneAssist is how far off a corridor's center line a blocked body may be
// and still be steered into it.
const laneAssist = world.TileSize * 0.6

func (w *World) move(b *entity.Body, secs float64, solids []*entity.Body) {
	if !b.Enabled || b.Immovable {
		return
	}

	if b.Vel.X != 0 {
		dx := b.Vel.X * secs
		ok := w.step(b, world.Point{X: b.Pos.X + dx, Y: b.Pos.Y}, solids, func(lane float64) (world.Point, world.Point) {
			return world.Point{X: b.Pos.X + dx, Y: lane}, world.Point{X: b.Pos.X, Y: approach(b.Pos.Y, lane, math.Abs(dx))}
		}, b.Pos.Y)
		if !ok {
			b.Vel.X = 0
		}
	}
	if b.Vel.Y != 0 {
		dy := b.Vel.Y * secs
		ok := w.step(b, world.Point{X: b.Pos.X, Y: b.Pos.Y + dy}, solids, func(lane float64) (world.Point, world.Point) {
			return world.Point{X: lane, Y: b.Pos.Y + dy}, world.Point{X: approach(b.Pos.X, lane, math.Abs(dy)), Y: b.Pos.Y}
		}, b.Pos.X)
		if !ok {
			b.Vel.Y = 0
		}
	}
}

// step moves b to next, or when next is blocked, sidesteps it toward the
// nearest lane that is open in the direction of travel. across is the
// coordinate perpendicular to the motion. lane returns the position ahead
// on a lane and the sidestep toward it. Reports false when b cannot move.
func (w *World) step(b *entity.Body, next world.Point, solids []*entity.Body, lane func(float64) (world.Point, world.Point), across float64) bool {
	if !w.blocked(b, next, solids) {
		b.Pos = next
		return true
	}
	for _, c := range laneCenters(across) {
		if math.Abs(c-across) > laneAssist {
			continue
		}
		ahead, side := lane(c)
		if w.blocked(b, ahead, solids) {
			continue
		}
		if side == b.Pos || w.blocked(b, side, solids) {
			return false
		}
		b.Pos = side
		return true
	}
	return false
}

// laneCenters returns the center lines of the tile containing v and of its
// two neighbors, nearest first.
func laneCenters(v float64) []float64 {
	c := math.Floor(v/world.TileSize)*world.TileSize + world.TileSize/2
	if v < c {
		return []float64{c, c - world.TileSize, c + world.TileSize}
	}
	return []float64{c, c + world.TileSize, c - world.TileSize}
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	switch {
	case math.Abs(target-v) <= step:
		return target
	case target > v:
		return v + step
	default:
		return v - step
	}
}

// blocked reports whether b's box at p overlaps a wall tile or a solid body.
func (w *World) blocked(b *entity.Body, p world.Point, solids []*entity.Body) bool {
	minX, minY, maxX, maxY := b.Bounds(p)

	// The max edges are exclusive so a box flush against a wall fits.
	x0 := int(math.Floor(minX / world.TileSize))
	y0 := int(math.Floor(minY / world.TileSize))
	x1 := int(math.Ceil(maxX/world.TileSize)) - 1
	y1 := int(math.Ceil(maxY/world.TileSize)) - 1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !w.Dungeon.IsPassable(x, y) {
				return true
			}
		}
	}

	for _, s := range solids {
		if s == b || !s.Enabled {
			continue
		}
		sx0, sy0, sx1, sy1 := s.Bounds(s.Pos)
		if minX < sx1 && maxX > sx0 && minY < sy1 && maxY > sy0 {
			return true
		}
	}
	return false
}
