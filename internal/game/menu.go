package game

import (
	"context"

	"github.com/samdwyer/pixelcrawler/internal/audio"
)

type menuPage int

const (
	pageMain menuPage = iota
	pageOptions
)

type menuState struct {
	page     menuPage
	selected int
}

var (
	mainItems  = []string{"NEW GAME", "CONTINUE", "OPTIONS"}
	pauseItems = []string{"RESUME", "SAVE", "MAIN MENU"}
)

const optionItems = 3 // Language, Sound, Back

// navigate moves the selection with up and down, wrapping at the ends, and
// returns the selected index when enter is pressed, or -1.
func (g *Game) navigate(c Controls, count int) int {
	if count == 0 {
		return -1
	}
	switch {
	case c.Pressed(KeyUp):
		g.menu.selected = (g.menu.selected + count - 1) % count
	case c.Pressed(KeyDown):
		g.menu.selected = (g.menu.selected + 1) % count
	case c.Pressed(KeyEnter):
		return g.menu.selected
	}
	return -1
}

func (g *Game) updateMenu(ctx context.Context, c Controls) {
	if g.menu.page == pageOptions {
		g.updateOptions(c)
		return
	}

	choice := g.navigate(c, len(mainItems))
	if choice >= 0 {
		g.play(audio.CueMenuSelect)
	}
	switch choice {
	case 0:
		g.NewGame(ctx)
	case 1:
		g.Continue(ctx)
	case 2:
		g.menu = menuState{page: pageOptions}
	}
}

func (g *Game) updateOptions(c Controls) {
	if c.Pressed(KeyEscape) {
		g.menu = menuState{page: pageMain, selected: 2}
		return
	}
	choice := g.navigate(c, optionItems)
	switch choice {
	case 0:
		g.text = g.text.Next()
		g.logger.Printf("game: locale %s", g.text.Locale())
	case 1:
		g.toggleSound()
	case 2:
		g.menu = menuState{page: pageMain, selected: 2}
	}
	if choice >= 0 {
		g.play(audio.CueMenuSelect)
	}
}

// menuLabels returns the translated entries of the active menu page.
func (g *Game) menuLabels() []string {
	switch {
	case g.scene == ScenePaused:
		return g.translateAll(pauseItems)
	case g.menu.page == pageOptions:
		sound := g.text.Get("OFF")
		if g.soundOn {
			sound = g.text.Get("ON")
		}
		return []string{
			g.text.Get("Language: %s", g.text.LanguageName()),
			g.text.Get("Sound: %s", sound),
			g.text.Get("BACK"),
		}
	default:
		return g.translateAll(mainItems)
	}
}

func (g *Game) translateAll(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.text.Get(id)
	}
	return out
}
