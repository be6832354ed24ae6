package ui

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelcrawler/internal/game"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held for a while after its last event. The first window covers
// the delay before auto-repeat starts.
const (
	initialHold = 300 * time.Millisecond
	repeatHold  = 100 * time.Millisecond
)

type keyHold struct {
	first, last time.Time
}

// keyState turns terminal key events into per-frame game.Controls.
type keyState struct {
	held    map[game.Key]keyHold
	pressed []game.Key
}

func newKeyState() *keyState {
	return &keyState{held: make(map[game.Key]keyHold)}
}

// mapKey returns the game keys an event stands for.
func mapKey(ev *tcell.EventKey) []game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return []game.Key{game.KeyUp}
	case tcell.KeyDown:
		return []game.Key{game.KeyDown}
	case tcell.KeyLeft:
		return []game.Key{game.KeyLeft}
	case tcell.KeyRight:
		return []game.Key{game.KeyRight}
	case tcell.KeyEscape:
		return []game.Key{game.KeyEscape}
	case tcell.KeyEnter:
		return []game.Key{game.KeyEnter}
	case tcell.KeyF5:
		return []game.Key{game.KeySave}
	case tcell.KeyCtrlC:
		return []game.Key{game.KeyQuit}
	case tcell.KeyRune:
	default:
		return nil
	}

	r := unicode.ToLower(ev.Rune())
	switch r {
	case 'w':
		return []game.Key{game.KeyUp}
	case 's':
		// Down in the dungeon, shop in a dialogue
		return []game.Key{game.KeyDown, game.KeyShop}
	case 'a':
		return []game.Key{game.KeyLeft}
	case 'd':
		return []game.Key{game.KeyRight}
	case ' ':
		return []game.Key{game.KeyAttack}
	case 'e':
		return []game.Key{game.KeyInteract}
	case 'i':
		return []game.Key{game.KeyInventory}
	}
	if r >= '1' && r <= '9' {
		if k, ok := game.DigitKey(int(r - '0')); ok {
			return []game.Key{k}
		}
	}
	return nil
}

// handle records a key event received at now.
func (ks *keyState) handle(ev *tcell.EventKey, now time.Time) {
	for _, k := range mapKey(ev) {
		h, down := ks.held[k]
		if !down || !ks.active(h, now) {
			ks.pressed = append(ks.pressed, k)
			h.first = now
		}
		h.last = now
		ks.held[k] = h
	}
}

func (ks *keyState) active(h keyHold, now time.Time) bool {
	if now.Sub(h.last) < repeatHold {
		return true
	}
	return h.first.Equal(h.last) && now.Sub(h.first) < initialHold
}

// controls returns the state for the frame at now and clears the edges.
func (ks *keyState) controls(now time.Time) game.Controls {
	var c game.Controls
	for k, h := range ks.held {
		if ks.active(h, now) {
			c.Hold(k)
		} else {
			delete(ks.held, k)
		}
	}
	for _, k := range ks.pressed {
		c.Press(k)
	}
	ks.pressed = ks.pressed[:0]
	return c
}
