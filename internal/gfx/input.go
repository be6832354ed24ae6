package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samdwyer/pixelcrawler/internal/game"
)

// bindings maps each game key to the physical keys that trigger it.
var bindings = []struct {
	key  game.Key
	keys []ebiten.Key
}{
	{game.KeyUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{game.KeyDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{game.KeyLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{game.KeyRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{game.KeyAttack, []ebiten.Key{ebiten.KeySpace}},
	{game.KeyInteract, []ebiten.Key{ebiten.KeyE}},
	{game.KeyInventory, []ebiten.Key{ebiten.KeyI}},
	{game.KeyShop, []ebiten.Key{ebiten.KeyS}},
	{game.KeyEscape, []ebiten.Key{ebiten.KeyEscape}},
	{game.KeyEnter, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{game.KeySave, []ebiten.Key{ebiten.KeyF5}},
	{game.Key1, []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
	{game.Key2, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	{game.Key3, []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}},
	{game.Key4, []ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}},
	{game.Key5, []ebiten.Key{ebiten.KeyDigit5, ebiten.KeyNumpad5}},
	{game.Key6, []ebiten.Key{ebiten.KeyDigit6, ebiten.KeyNumpad6}},
	{game.Key7, []ebiten.Key{ebiten.KeyDigit7, ebiten.KeyNumpad7}},
	{game.Key8, []ebiten.Key{ebiten.KeyDigit8, ebiten.KeyNumpad8}},
	{game.Key9, []ebiten.Key{ebiten.KeyDigit9, ebiten.KeyNumpad9}},
}

// keyboard reports physical key state. Tests swap in fakes.
type keyboard struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

func liveKeyboard() keyboard {
	return keyboard{pressed: ebiten.IsKeyPressed, justPressed: inpututil.IsKeyJustPressed}
}

// controls samples the keyboard for one tick.
func (kb keyboard) controls() game.Controls {
	var c game.Controls
	for _, b := range bindings {
		for _, k := range b.keys {
			if kb.justPressed(k) {
				c.Press(b.key)
			} else if kb.pressed(k) {
				c.Hold(b.key)
			}
		}
	}
	if kb.pressed(ebiten.KeyControl) && kb.justPressed(ebiten.KeyC) {
		c.Press(game.KeyQuit)
	}
	return c
}
