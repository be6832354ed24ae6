// Package devtools holds developer aids that are not part of play.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/gookit/color"

	"github.com/samdwyer/pixelcrawler/internal/game"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

var (
	colorWall    = color.Style{color.FgWhite}
	colorFloor   = color.Style{color.FgDarkGray}
	colorPlayer  = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	colorMonster = color.Style{color.FgRed, color.OpBold}
	colorCorpse  = color.Style{color.FgGray}
	colorNPC     = color.Style{color.FgYellow, color.OpBold}
)

type cell struct {
	glyph rune
	style color.Style
}

// Dump writes the world's map as text, one rune per cell, followed by a
// summary line. Styles are applied when colored is set.
func Dump(w io.Writer, wd *game.World, colored bool) error {
	grid := layout(wd)
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for _, c := range row {
			if colored {
				bw.WriteString(c.style.Sprint(string(c.glyph)))
			} else {
				bw.WriteRune(c.glyph)
			}
		}
		bw.WriteByte('\n')
	}
	live := 0
	for _, m := range wd.Monsters {
		if !m.IsDead() {
			live++
		}
	}
	d := wd.Dungeon
	px, py := world.CellAt(wd.Player.Pos)
	fmt.Fprintf(bw, "seed %d: %dx%d, %d rooms from %d attempts, %d monsters, %d npcs, %d of %d floor cells reachable\n",
		wd.Seed, d.Width, d.Height, len(d.Rooms), d.Attempts, live, len(wd.NPCs), d.ReachableCount(px, py), d.FloorCount())
	return bw.Flush()
}

// layout composes tiles and entities into one grid. Later layers win, so
// the player is always visible.
func layout(wd *game.World) [][]cell {
	d := wd.Dungeon
	grid := make([][]cell, d.Height)
	for y := range grid {
		grid[y] = make([]cell, d.Width)
		for x := range grid[y] {
			t := d.GetTile(x, y)
			style := colorWall
			if t.IsPassable() {
				style = colorFloor
			}
			grid[y][x] = cell{glyph: t.Rune(), style: style}
		}
	}

	put := func(p world.Point, c cell) {
		x, y := world.CellAt(p)
		if d.InBounds(x, y) {
			grid[y][x] = c
		}
	}
	for _, n := range wd.NPCs {
		put(n.Pos, cell{glyph: initial(n.Type, true), style: colorNPC})
	}
	for _, m := range wd.Monsters {
		if m.IsDead() {
			put(m.Pos, cell{glyph: '%', style: colorCorpse})
		} else {
			put(m.Pos, cell{glyph: initial(m.Type, false), style: colorMonster})
		}
	}
	put(wd.Player.Pos, cell{glyph: '@', style: colorPlayer})
	return grid
}

func initial(name string, upper bool) rune {
	for _, r := range strings.TrimSpace(name) {
		if upper {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	}
	return '?'
}
