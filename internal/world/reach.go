package world

import "github.com/zyedidia/generic/mapset"

type cell struct {
	x, y int
}

// Connected reports whether cell b can be reached from cell a by walking
// floor tiles in the four cardinal directions.
func (d *Dungeon) Connected(ax, ay, bx, by int) bool {
	if !d.IsPassable(ax, ay) || !d.IsPassable(bx, by) {
		return false
	}
	return d.reachable(ax, ay).Has(cell{bx, by})
}

// ReachableCount returns how many floor cells can be reached from the start cell.
func (d *Dungeon) ReachableCount(x, y int) int {
	return d.reachable(x, y).Size()
}

// reachable returns every floor cell reachable from the start cell.
func (d *Dungeon) reachable(x, y int) mapset.Set[cell] {
	visited := mapset.New[cell]()
	if !d.IsPassable(x, y) {
		return visited
	}

	queue := []cell{{x, y}}
	visited.Put(queue[0])
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range []cell{{c.x, c.y - 1}, {c.x + 1, c.y}, {c.x, c.y + 1}, {c.x - 1, c.y}} {
			if d.IsPassable(n.x, n.y) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// FloorCount returns the number of floor tiles on the grid.
func (d *Dungeon) FloorCount() int {
	n := 0
	for y := range d.Tiles {
		for _, t := range d.Tiles[y] {
			if t == TileFloor {
				n++
			}
		}
	}
	return n
}
