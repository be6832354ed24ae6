package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelcrawler/internal/game"
)

const (
	frameRate = 60
	maxFrame  = 100 * time.Millisecond // Longer gaps are clamped so bodies do not tunnel
)

// App runs a game on a terminal screen.
type App struct {
	screen   *Screen
	renderer *Renderer
	keys     *keyState
}

// NewApp creates an app drawing on screen.
func NewApp(screen *Screen) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		keys:     newKeyState(),
	}
}

// Run drives g at a fixed frame rate until it quits or ctx is done.
func (a *App) Run(ctx context.Context, g *game.Game) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen.PollEvent, events, done)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a.keys.handle(ev, time.Now())
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last), maxFrame)
			last = now
			if !g.Update(ctx, dt, a.keys.controls(now)) {
				return nil
			}
			a.renderer.Render(g.View())
		}
	}
}

// pollEvents forwards events from poll until poll returns nil or done is
// closed. events is closed only when poll runs dry.
func pollEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
