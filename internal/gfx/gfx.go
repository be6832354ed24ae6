// Package gfx is the windowed frontend. It draws the pack's pixel art at a
// fixed zoom and falls back to colored rectangles for missing textures.
package gfx

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samdwyer/pixelcrawler/internal/game"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	zoom         = 2
)

// Frontend adapts a game.Game to ebiten's game loop.
type Frontend struct {
	ctx      context.Context
	game     *game.Game
	keys     keyboard
	textures *textures
	logger   *log.Logger
	opened   bool
}

// New creates a frontend for g. Textures come from g's catalog.
func New(ctx context.Context, g *game.Game, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.Default()
	}
	return &Frontend{
		ctx:      ctx,
		game:     g,
		keys:     liveKeyboard(),
		textures: newTextures(g.Catalog(), logger),
		logger:   logger,
	}
}

// Run opens the window and blocks until the game quits, the window is
// closed or ctx is done.
func Run(ctx context.Context, g *game.Game, logger *log.Logger) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(g.Text().Get("PIXEL CRAWLER"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(New(ctx, g, logger))
}

// Update advances the game by one tick.
func (f *Frontend) Update() error {
	if !f.opened {
		f.opened = true
		w, h := ebiten.WindowSize()
		f.logger.Printf("gfx: window opened (%dx%d)", w, h)
	}
	if f.ctx.Err() != nil {
		return ebiten.Termination
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	if !f.game.Update(f.ctx, dt, f.keys.controls()) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.draw(screen, f.game.View())
}

// Layout keeps a fixed logical resolution and lets ebiten scale it.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
