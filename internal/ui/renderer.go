package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/game"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	titleStyle  = textStyle.Bold(true)
	goldStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	corpseStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	hitStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame of v.
func (r *Renderer) Render(v game.View) {
	r.screen.Clear()

	if v.World != nil {
		r.renderWorld(v.World, v.Marker)
		r.renderHUD(v)
	}
	if v.Menu != nil {
		r.renderMenu(v.Menu, v.World != nil)
	}
	if v.Panel != nil {
		r.renderPanel(v.Panel)
	}
	r.renderMessages(v.Messages)

	r.screen.Show()
}

// camera returns the map cell drawn at the screen's top-left corner, keeping
// the player centered unless the map edge is in view.
func (r *Renderer) camera(d *world.Dungeon, focus world.Point) (int, int) {
	w, h := r.screen.Size()
	px, py := world.CellAt(focus)
	return clampCamera(px-w/2, d.Width, w), clampCamera(py-h/2, d.Height, h)
}

func clampCamera(offset, mapSize, viewSize int) int {
	if mapSize <= viewSize {
		return -(viewSize - mapSize) / 2
	}
	return max(0, min(offset, mapSize-viewSize))
}

func (r *Renderer) renderWorld(w *game.World, marker string) {
	d := w.Dungeon
	ox, oy := r.camera(d, w.Player.Pos)
	sw, sh := r.screen.Size()

	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			mx, my := x+ox, y+oy
			if !d.InBounds(mx, my) {
				continue
			}
			tile := d.GetTile(mx, my)
			r.screen.SetContent(x, y, tile.Rune(), r.getTileStyle(tile))
		}
	}

	for _, n := range w.NPCs {
		x, y := world.CellAt(n.Pos)
		style := tcell.StyleDefault.Foreground(n.Def.Tint.TCellColor()).Bold(true)
		r.screen.SetContent(x-ox, y-oy, initial(n.Type), style)
		if n.ShowIndicator {
			r.screen.DrawText(x-ox-textWidth(marker)/2, y-oy-1, marker, goldStyle)
		}
	}

	for _, m := range w.Monsters {
		x, y := world.CellAt(m.Pos)
		r.screen.SetContent(x-ox, y-oy, monsterRune(m), monsterStyle(m))
	}

	// Draw player on top
	x, y := world.CellAt(w.Player.Pos)
	glyph := '@'
	if w.Player.IsDead() {
		glyph = '%'
	}
	r.screen.SetContent(x-ox, y-oy, glyph, playerStyle)
}

func initial(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

func monsterRune(m *entity.Monster) rune {
	if m.IsDead() {
		return '%'
	}
	// Lowercase initial, so a Skeleton is s and an Orc o
	r := initial(m.Type)
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}

func monsterStyle(m *entity.Monster) tcell.Style {
	switch {
	case m.IsDead():
		return corpseStyle
	case m.Tinted:
		return hitStyle
	default:
		return tcell.StyleDefault.Foreground(m.Def.Tint.TCellColor())
	}
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) renderHUD(v game.View) {
	for i, line := range v.HUD {
		r.screen.DrawText(1, i, " "+line+" ", textStyle)
	}
	_, h := r.screen.Size()
	for i, line := range v.Help {
		r.screen.DrawText(1, h-len(v.Help)+i, " "+line+" ", dimStyle)
	}
}

// renderMessages lists recent messages in the upper right corner.
func (r *Renderer) renderMessages(msgs []string) {
	w, _ := r.screen.Size()
	for i, m := range msgs {
		text := " " + m + " "
		r.screen.DrawText(w-textWidth(text)-1, i, text, goldStyle)
	}
}

func (r *Renderer) renderMenu(m *game.MenuView, overlay bool) {
	w, h := r.screen.Size()
	items := len(m.Items) * 2
	top := (h - items) / 2
	if overlay {
		r.box(w/2-14, top-3, 28, items+4)
	}

	r.centered(top-2, m.Title, titleStyle)
	for i, item := range m.Items {
		style := textStyle
		if i == m.Selected {
			item = "> " + item + " <"
			style = goldStyle.Bold(true)
		}
		r.centered(top+i*2, item, style)
	}
	if m.Footer != "" {
		r.screen.DrawText(1, h-1, m.Footer, dimStyle)
	}
}

func (r *Renderer) renderPanel(p *game.Panel) {
	w, h := r.screen.Size()
	width := textWidth(p.Title)
	for _, line := range p.Lines {
		width = max(width, textWidth(line))
	}
	width = max(width, textWidth(p.Footer)) + 4
	height := len(p.Lines) + 6
	x0, y0 := (w-width)/2, (h-height)/2

	r.box(x0, y0, width, height)
	r.centered(y0+1, p.Title, titleStyle)
	for i, line := range p.Lines {
		r.screen.DrawText(x0+2, y0+3+i, line, textStyle)
	}
	r.centered(y0+height-2, p.Footer, dimStyle)
}

// box draws a bordered, filled rectangle.
func (r *Renderer) box(x0, y0, width, height int) {
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			ch := ' '
			switch {
			case (x == x0 || x == x0+width-1) && (y == y0 || y == y0+height-1):
				ch = '+'
			case y == y0 || y == y0+height-1:
				ch = '-'
			case x == x0 || x == x0+width-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, textStyle)
		}
	}
}

func (r *Renderer) centered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.screen.DrawText((w-textWidth(text))/2, y, text, style)
}
