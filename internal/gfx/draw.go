package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/game"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// Debug font cell size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	backgroundColor = color.RGBA{0x10, 0x0e, 0x14, 0xff}
	wallColor       = color.RGBA{0x3a, 0x34, 0x40, 0xff}
	floorColor      = color.RGBA{0x6b, 0x5a, 0x48, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	panelColor      = color.RGBA{0x1c, 0x18, 0x24, 0xf0}
	borderColor     = color.RGBA{0xc8, 0xa8, 0x50, 0xff}
	highlightColor  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// view holds the world pixel at the screen's top-left corner.
type view struct {
	x, y float64
}

// origin returns the world pixel drawn at the top-left corner, keeping focus
// centered unless a map edge is in view. Maps smaller than the screen are
// centered.
func origin(focus, mapSize, viewSize float64) float64 {
	if mapSize <= viewSize {
		return -(viewSize - mapSize) / 2
	}
	return max(0, min(focus-viewSize/2, mapSize-viewSize))
}

func newView(d *world.Dungeon, focus world.Point) view {
	vw, vh := float64(screenWidth)/zoom, float64(screenHeight)/zoom
	mw, mh := d.PixelSize()
	return view{x: origin(focus.X, mw, vw), y: origin(focus.Y, mh, vh)}
}

// toScreen converts a world pixel position to screen coordinates.
func (v view) toScreen(p world.Point) (float32, float32) {
	return float32((p.X - v.x) * zoom), float32((p.Y - v.y) * zoom)
}

func (f *Frontend) draw(screen *ebiten.Image, v game.View) {
	screen.Fill(backgroundColor)

	if v.World != nil {
		f.drawWorld(screen, v.World, v.Marker)
		drawLines(screen, 8, 8, v.HUD)
		drawLines(screen, 8, screenHeight-8-len(v.Help)*glyphHeight, v.Help)
	}
	if v.Menu != nil {
		drawMenu(screen, v.Menu, v.World != nil)
	}
	if v.Panel != nil {
		drawPanel(screen, v.Panel)
	}
	for i, m := range v.Messages {
		ebitenutil.DebugPrintAt(screen, m, screenWidth-8-len(m)*glyphWidth, 8+i*glyphHeight)
	}
}

func (f *Frontend) drawWorld(screen *ebiten.Image, w *game.World, marker string) {
	d := w.Dungeon
	cam := newView(d, w.Player.Pos)
	size := float32(world.TileSize * zoom)

	x0, y0 := world.CellAt(world.Point{X: cam.x, Y: cam.y})
	x1, y1 := x0+screenWidth/(world.TileSize*zoom)+1, y0+screenHeight/(world.TileSize*zoom)+1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !d.InBounds(x, y) {
				continue
			}
			clr := wallColor
			if d.GetTile(x, y).IsPassable() {
				clr = floorColor
			}
			sx, sy := cam.toScreen(world.CellToPixel(x, y))
			vector.DrawFilledRect(screen, sx, sy, size, size, clr, false)
		}
	}

	for _, n := range w.NPCs {
		f.drawBody(screen, cam, &n.Body)
		if n.ShowIndicator {
			sx, sy := cam.toScreen(n.Pos)
			top := sy - float32(n.DisplaySize*zoom/2) - glyphHeight
			ebitenutil.DebugPrintAt(screen, marker, int(sx)-len(marker)*glyphWidth/2, int(top))
		}
	}
	for _, m := range w.Monsters {
		f.drawBody(screen, cam, &m.Body)
	}
	f.drawBody(screen, cam, &w.Player.Body)
}

// drawBody draws an entity's current frame centered on its position, or a
// placeholder rectangle when the texture is missing.
func (f *Frontend) drawBody(screen *ebiten.Image, cam view, b *entity.Body) {
	key, frame := b.Frame()
	sx, sy := cam.toScreen(b.Pos)
	size := b.DisplaySize * zoom

	img := f.textures.frame(key, frame)
	if img == nil {
		_, ph := f.game.Catalog().Resolve(key, b.Placeholder, int(b.Width), int(b.Height))
		c := ph.Color
		if b.Tinted {
			c = b.Tint
		}
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * max(0, min(1, b.Alpha)))}
		w, h := float32(ph.Width*zoom), float32(ph.Height*zoom)
		vector.DrawFilledRect(screen, sx-w/2, sy-h/2, w, h, clr, false)
		return
	}

	bounds := img.Bounds()
	fw, fh := float64(bounds.Dx()), float64(bounds.Dy())
	scale := size / fw
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	if b.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(sx), float64(sy))
	if b.Tinted {
		op.ColorScale.ScaleWithColor(b.Tint)
	}
	op.ColorScale.ScaleAlpha(float32(b.Alpha))
	screen.DrawImage(img, op)
}

func drawLines(screen *ebiten.Image, x, y int, lines []string) {
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*glyphHeight)
	}
}

func drawCentered(screen *ebiten.Image, y int, text string) {
	ebitenutil.DebugPrintAt(screen, text, (screenWidth-len(text)*glyphWidth)/2, y)
}

// drawBox draws a filled, bordered rectangle.
func drawBox(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
}

func drawMenu(screen *ebiten.Image, m *game.MenuView, overlay bool) {
	rows := len(m.Items) * 2
	top := screenHeight/2 - rows*glyphHeight/2
	if overlay {
		vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, overlayColor, false)
		drawBox(screen, screenWidth/2-160, float32(top-3*glyphHeight), 320, float32((rows+4)*glyphHeight))
	}

	drawCentered(screen, top-2*glyphHeight, m.Title)
	for i, item := range m.Items {
		y := top + i*2*glyphHeight
		if i == m.Selected {
			item = "> " + item + " <"
			w := float32(len(item)*glyphWidth + 16)
			vector.StrokeRect(screen, (screenWidth-w)/2, float32(y-2), w, glyphHeight+4, 1, highlightColor, false)
		}
		drawCentered(screen, y, item)
	}
	if m.Footer != "" {
		ebitenutil.DebugPrintAt(screen, m.Footer, 8, screenHeight-8-glyphHeight)
	}
}

func drawPanel(screen *ebiten.Image, p *game.Panel) {
	width := len(p.Title)
	for _, line := range p.Lines {
		width = max(width, len(line))
	}
	width = max(width, len(p.Footer))*glyphWidth + 48
	height := (len(p.Lines) + 6) * glyphHeight
	x0, y0 := (screenWidth-width)/2, (screenHeight-height)/2

	drawBox(screen, float32(x0), float32(y0), float32(width), float32(height))
	drawCentered(screen, y0+glyphHeight, p.Title)
	drawLines(screen, x0+24, y0+3*glyphHeight, p.Lines)
	drawCentered(screen, y0+height-2*glyphHeight, p.Footer)
}
